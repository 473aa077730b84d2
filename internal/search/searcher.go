package search

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/guttosm/checkin-service/internal/metrics"
)

// errCorruptEntry marks a cached value that failed to round-trip as the
// expected type. Treated as a miss: the entry is deleted and the query
// degrades to empty.
var errCorruptEntry = errors.New("corrupt cache entry")

// Store is the external record source consumed by a Searcher. It performs
// its own case-insensitive substring matching and returns at most limit
// rows in no particular order; the ranker re-orders.
type Store[C any] interface {
	Search(ctx context.Context, term string, limit int) ([]C, error)
}

// Config holds Searcher tuning knobs.
type Config struct {
	// CacheCapacity bounds the ranked-result cache.
	CacheCapacity int
	// CacheTTL is short by design: workers and events mutate, and mutations
	// invalidate the cache anyway.
	CacheTTL time.Duration
	// MaxCandidates caps rows requested from the store per query.
	MaxCandidates int
	// FetchTimeout bounds a single store call.
	FetchTimeout time.Duration
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		CacheCapacity: DefaultCacheCapacity,
		CacheTTL:      2 * time.Minute,
		MaxCandidates: 10,
		FetchTimeout:  2 * time.Second,
	}
}

// Result is the outcome of one query: ranked matches plus their count.
type Result[C any] struct {
	Results    []Ranked[C] `json:"results"`
	TotalCount int         `json:"total_count"`
	Cached     bool        `json:"-"`
}

func emptyResult[C any]() Result[C] {
	return Result[C]{Results: []Ranked[C]{}}
}

// Searcher is the lookup façade for one candidate type: it validates the
// query, consults the cache, fetches from the store on a miss, ranks the
// candidates, caches the ranked result, and records timing.
//
// A Searcher never returns an error: validation failures and store faults
// both degrade to an empty result, with the failure visible only through
// the monitor and logs. Concurrent misses for the same key are coalesced so
// a burst of identical queries issues a single store call.
type Searcher[C any] struct {
	name    string
	store   Store[C]
	textsOf func(C) []string
	cache   *Cache[string, []Ranked[C]]
	monitor *Monitor
	group   singleflight.Group
	cfg     Config
}

// NewSearcher creates a Searcher named name (used for metric samples) over
// the given store. textsOf supplies each candidate's searchable projections.
func NewSearcher[C any](name string, store Store[C], textsOf func(C) []string, monitor *Monitor, cfg Config) *Searcher[C] {
	if cfg.CacheCapacity <= 0 {
		cfg.CacheCapacity = DefaultCacheCapacity
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultConfig().CacheTTL
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = DefaultConfig().MaxCandidates
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultConfig().FetchTimeout
	}

	return &Searcher[C]{
		name:    name,
		store:   store,
		textsOf: textsOf,
		cache:   NewCache[string, []Ranked[C]](cfg.CacheCapacity),
		monitor: monitor,
		cfg:     cfg,
	}
}

// Search runs one query. Filters participate in the cache key so admin
// views with different filter parameters do not share entries.
func (s *Searcher[C]) Search(ctx context.Context, rawQuery string, filters ...string) Result[C] {
	start := time.Now()

	term, err := NewTerm(rawQuery)
	if err != nil {
		// Under- and over-length queries are the tablet polling per
		// keystroke, not failures. No cache or store interaction.
		return emptyResult[C]()
	}

	key := s.cacheKey(term, filters)

	if ranked, ok := s.cache.Get(key); ok {
		s.monitor.Record(s.name+".cached", time.Since(start), true, nil)
		metrics.RecordSearch(time.Since(start), "cached")
		// Callers get their own slice; the cached one must survive any
		// mutation of the returned results.
		return Result[C]{Results: slices.Clone(ranked), TotalCount: len(ranked), Cached: true}
	}

	value, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.fetchAndRank(ctx, term, key)
	})
	if err != nil {
		log.Warn().
			Err(err).
			Str("search", s.name).
			Str("term", term.String()).
			Msg("Store lookup failed, degrading to empty result")
		s.monitor.Record(s.name, time.Since(start), false, err)
		metrics.RecordSearch(time.Since(start), "error")
		return emptyResult[C]()
	}

	ranked, ok := value.([]Ranked[C])
	if !ok {
		// A foreign value under our key is treated as a miss-shaped fault:
		// drop the entry and return empty rather than propagate.
		s.cache.Delete(key)
		s.monitor.Record(s.name, time.Since(start), false, errCorruptEntry)
		metrics.RecordSearch(time.Since(start), "error")
		return emptyResult[C]()
	}

	s.monitor.Record(s.name, time.Since(start), true, nil)
	metrics.RecordSearch(time.Since(start), "success")
	// The fetched slice is also the cached one, so it gets the same copy
	// treatment as the hit path.
	return Result[C]{Results: slices.Clone(ranked), TotalCount: len(ranked)}
}

// fetchAndRank performs the store call, ranking, and cache store for one
// cache key. Runs at most once per key across concurrent callers.
func (s *Searcher[C]) fetchAndRank(ctx context.Context, term Term, key string) ([]Ranked[C], error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	fetchStart := time.Now()
	candidates, err := s.store.Search(fetchCtx, term.String(), s.cfg.MaxCandidates)
	s.monitor.RecordStore(s.name+".store", time.Since(fetchStart), err == nil, err)
	if err != nil {
		return nil, err
	}

	ranked := Rank(candidates, term, s.textsOf)
	s.cache.Set(key, ranked, s.cfg.CacheTTL)
	return ranked, nil
}

// InvalidateAll drops every cached result. Called when the underlying
// records mutate.
func (s *Searcher[C]) InvalidateAll() {
	s.cache.Clear()
}

// StartCacheSweeper runs the cache's periodic cleanup until ctx is
// cancelled.
func (s *Searcher[C]) StartCacheSweeper(ctx context.Context, interval time.Duration) {
	s.cache.StartSweeper(ctx, interval)
}

// Monitor exposes the performance monitor for the stats endpoint.
func (s *Searcher[C]) Monitor() *Monitor {
	return s.monitor
}

func (s *Searcher[C]) cacheKey(term Term, filters []string) string {
	if len(filters) == 0 {
		return term.String()
	}
	return term.String() + "|" + strings.Join(filters, "|")
}
