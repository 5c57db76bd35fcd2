// Package page relays page retrieval requests to the archive backend.
package page

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/dealey-labs/jfkdex/internal/domain"
	"github.com/dealey-labs/jfkdex/internal/domain/search/request"
	"github.com/dealey-labs/jfkdex/internal/logger"
)

// Operation descriptions used in caller-facing failure messages.
const (
	opPageText = "page text retrieval"
	opPagePNG  = "page image retrieval"
)

// Service forwards validated page requests to the archive backend.
type Service struct {
	backend Backend
}

// New creates a page service.
func New(backend Backend) *Service {
	return &Service{backend: backend}
}

// Text fetches the extracted text of the requested pages.
func (s *Service) Text(ctx context.Context, req request.Pages) (json.RawMessage, error) {
	logger.FromContext(ctx).Debug("Dispatching page text retrieval",
		zap.Int("page_count", len(req.IDs())),
	)
	res, err := s.backend.Text(ctx, req.IDs())
	if err != nil {
		logger.FromContext(ctx).Warn("page text retrieval failed", zap.Error(err))
		return nil, domain.NewOpError(opPageText, err)
	}
	return res, nil
}

// PNG fetches rendered page images for the requested pages.
func (s *Service) PNG(ctx context.Context, req request.Pages) (json.RawMessage, error) {
	logger.FromContext(ctx).Debug("Dispatching page image retrieval",
		zap.Int("page_count", len(req.IDs())),
	)
	res, err := s.backend.PNG(ctx, req.IDs())
	if err != nil {
		logger.FromContext(ctx).Warn("page image retrieval failed", zap.Error(err))
		return nil, domain.NewOpError(opPagePNG, err)
	}
	return res, nil
}
