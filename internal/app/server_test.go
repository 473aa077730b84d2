package app

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	handler := http.NewServeMux()
	server := NewServer(handler, "8080")

	require.NotNil(t, server)
	assert.Equal(t, ":8080", server.httpServer.Addr)
	assert.Equal(t, 10*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 10*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 90*time.Second, server.httpServer.IdleTimeout)
	assert.Equal(t, 15*time.Second, server.shutdownTimeout)
}

func TestServerShutdownWithoutStart(t *testing.T) {
	server := NewServer(http.NewServeMux(), "0")
	assert.NoError(t, server.Shutdown())
}
