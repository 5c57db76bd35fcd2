package search

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/dealey-labs/jfkdex"
	"github.com/dealey-labs/jfkdex/internal/domain"
	"github.com/dealey-labs/jfkdex/internal/domain/record"
	"github.com/dealey-labs/jfkdex/internal/domain/search/request"
	"github.com/dealey-labs/jfkdex/internal/logger"
)

// Operation descriptions used in caller-facing failure messages.
const (
	opTextSearch     = "text search"
	opVectorSearch   = "vector search"
	opMetadataSearch = "metadata search"
)

// Service forwards validated search requests to the archive backend.
// Requests arrive fully validated and results are relayed untouched;
// the service's job is operation identity: a backend failure is wrapped
// with its operation description for the response boundary to format.
type Service struct {
	backend Backend
}

// New creates a search service.
func New(backend Backend) *Service {
	return &Service{backend: backend}
}

// Text runs a full-text search.
func (s *Service) Text(ctx context.Context, req request.Text) (json.RawMessage, error) {
	logger.FromContext(ctx).Debug("Dispatching text search",
		zap.Int("query_len", len(req.Query())),
		zap.Int("filter_fields", len(req.Filters())),
	)
	res, err := s.backend.Text(ctx, searchQuery(req.Query(), req.Filters(), req.Limit()))
	if err != nil {
		logger.FromContext(ctx).Warn("text search failed", zap.Error(err))
		return nil, domain.NewOpError(opTextSearch, err)
	}
	return res, nil
}

// Vector runs a semantic search.
func (s *Service) Vector(ctx context.Context, req request.Vector) (json.RawMessage, error) {
	logger.FromContext(ctx).Debug("Dispatching vector search",
		zap.Int("query_len", len(req.Query())),
		zap.Int("filter_fields", len(req.Filters())),
	)
	res, err := s.backend.Vector(ctx, searchQuery(req.Query(), req.Filters(), req.Limit()))
	if err != nil {
		logger.FromContext(ctx).Warn("vector search failed", zap.Error(err))
		return nil, domain.NewOpError(opVectorSearch, err)
	}
	return res, nil
}

// Metadata runs a metadata-only search.
func (s *Service) Metadata(ctx context.Context, req request.Metadata) (json.RawMessage, error) {
	logger.FromContext(ctx).Debug("Dispatching metadata search",
		zap.Int("filter_fields", len(req.Filters())),
	)
	res, err := s.backend.Metadata(ctx, searchQuery("", req.Filters(), req.Limit()))
	if err != nil {
		logger.FromContext(ctx).Warn("metadata search failed", zap.Error(err))
		return nil, domain.NewOpError(opMetadataSearch, err)
	}
	return res, nil
}

// searchQuery builds the wire query. Absent fields stay absent: a nil
// filter and a nil limit are never serialized, so the backend applies
// its own defaults.
func searchQuery(query string, filters record.Filters, limit *int) jfkdex.SearchQuery {
	q := jfkdex.SearchQuery{Query: query}
	if filters != nil {
		q.Metadata = filters
	}
	if limit != nil {
		q.Limit = *limit
	}
	return q
}
