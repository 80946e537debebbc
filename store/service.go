package store

import (
	"context"
	"log/slog"

	"github.com/stella3d/bloomer"
	"github.com/stella3d/bloomer/zstdutil"
)

// Service is the invocation surface over the filter core and a Registry:
// build a filter from a batch of items and persist it under a new id, then
// batch-query it by id later. Stored blobs are zstd-compressed unless
// compression is disabled; loads accept both compressed and raw blobs.
type Service struct {
	reg      Registry
	log      *slog.Logger
	level    int
	compress bool
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the structured logger. The default is slog.Default().
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) { s.log = l }
}

// WithCompressionLevel sets the zstd level used when storing filters.
func WithCompressionLevel(level int) ServiceOption {
	return func(s *Service) { s.level = level }
}

// WithoutCompression stores filter blobs uncompressed.
func WithoutCompression() ServiceOption {
	return func(s *Service) { s.compress = false }
}

// NewService creates a Service over reg.
func NewService(reg Registry, opts ...ServiceOption) *Service {
	s := &Service{
		reg:      reg,
		log:      slog.Default(),
		level:    zstdutil.DefaultLevel,
		compress: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateFilter builds a filter from items at the target false positive rate,
// persists it, and returns the new filter id.
func (s *Service) CreateFilter(ctx context.Context, fpRate float64, items [][]byte) (int64, error) {
	f, err := bloomer.Build(items, fpRate)
	if err != nil {
		return 0, err
	}

	blob, err := f.MarshalBinary()
	if err != nil {
		return 0, err
	}

	stored := blob
	if s.compress {
		stored, err = zstdutil.Compress(blob, s.level)
		if err != nil {
			return 0, err
		}
	}

	id, err := s.reg.Save(ctx, stored)
	if err != nil {
		return 0, err
	}

	s.log.Debug("filter created",
		"id", id,
		"items", len(items),
		"bits", f.BitCount(),
		"k", f.K(),
		"raw_bytes", len(blob),
		"stored_bytes", len(stored),
	)
	return id, nil
}

// QueryFilter tests every item against the filter stored under id and
// returns one verdict per item, in input order. The batch is atomic: an
// unknown id or corrupt blob fails the whole call with no partial results.
func (s *Service) QueryFilter(ctx context.Context, id int64, items [][]byte) ([]bool, error) {
	f, err := s.loadFilter(ctx, id)
	if err != nil {
		return nil, err
	}
	return f.ContainsBatch(items), nil
}

// FilterInfo describes a stored filter.
type FilterInfo struct {
	ID         int64
	BitCount   uint64  // m
	HashCount  uint32  // k
	ItemCount  uint64  // items supplied at build time
	FillRatio  float64 // proportion of set bits
	EstimateFP float64 // estimated false positive rate at current load
	BlobBytes  int     // stored size, after any compression
}

// Info loads the filter under id and reports its parameters.
func (s *Service) Info(ctx context.Context, id int64) (*FilterInfo, error) {
	blob, err := s.reg.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	f, err := bloomer.UnmarshalBinary(zstdutil.DecompressOrPassthrough(blob))
	if err != nil {
		return nil, err
	}

	return &FilterInfo{
		ID:         id,
		BitCount:   f.BitCount(),
		HashCount:  f.K(),
		ItemCount:  f.Count(),
		FillRatio:  f.EstimatedFillRatio(),
		EstimateFP: f.EstimatedFalsePositiveRate(),
		BlobBytes:  len(blob),
	}, nil
}

func (s *Service) loadFilter(ctx context.Context, id int64) (*bloomer.Filter, error) {
	blob, err := s.reg.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return bloomer.UnmarshalBinary(zstdutil.DecompressOrPassthrough(blob))
}
