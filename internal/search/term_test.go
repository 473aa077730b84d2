package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTerm(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{
			name: "simple name",
			raw:  "John",
			want: "john",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  John Smith  ",
			want: "john smith",
		},
		{
			name: "whitespace runs collapsed",
			raw:  "john \t  smith",
			want: "john smith",
		},
		{
			name: "email characters preserved",
			raw:  "John.Smith@Example.COM",
			want: "john.smith@example.com",
		},
		{
			name: "special characters stripped",
			raw:  "j#o!h(n)",
			want: "john",
		},
		{
			name: "hyphen preserved",
			raw:  "Mary-Jane",
			want: "mary-jane",
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: ErrTermTooShort,
		},
		{
			name:    "two characters",
			raw:     "jo",
			wantErr: ErrTermTooShort,
		},
		{
			name:    "whitespace only",
			raw:     "     ",
			wantErr: ErrTermTooShort,
		},
		{
			name:    "long enough before normalization only",
			raw:     "!?!?!",
			wantErr: ErrTermTooShort,
		},
		{
			name:    "over maximum length",
			raw:     strings.Repeat("a", MaxTermLength+1),
			wantErr: ErrTermTooLong,
		},
		{
			name: "exactly maximum length",
			raw:  strings.Repeat("a", MaxTermLength),
			want: strings.Repeat("a", MaxTermLength),
		},
		{
			name: "exactly minimum length",
			raw:  "abc",
			want: "abc",
		},
		{
			// 100 runes but ~200 bytes: length bounds count characters
			name: "maximum length counted in runes not bytes",
			raw:  "jos" + strings.Repeat("é", MaxTermLength-3),
			want: "jos",
		},
		{
			name:    "over maximum length in runes",
			raw:     "jos" + strings.Repeat("é", MaxTermLength-2),
			wantErr: ErrTermTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, err := NewTerm(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, term.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, term.String())
			assert.False(t, term.IsZero())
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"JOHN", "john"},
		{"  a  b  ", "a b"},
		{"j.doe@corp.example", "j.doe@corp.example"},
		{"O'Brien", "obrien"},
		{"", ""},
		{"++--++", "--"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}
