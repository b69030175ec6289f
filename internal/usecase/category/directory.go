// Package category exposes the server-owned category set.
package category

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sneha3498/infosysproject/internal/entity"
	"github.com/sneha3498/infosysproject/internal/port"
)

// Directory fetches the active categories. The set is small, bounded
// reference data; it is re-fetched on every call rather than cached.
type Directory struct {
	api    port.CategoryAPI
	logger *zap.Logger
}

func NewDirectory(api port.CategoryAPI, logger *zap.Logger) *Directory {
	return &Directory{api: api, logger: logger}
}

// List returns the full ordered category set.
func (d *Directory) List(ctx context.Context) ([]entity.Category, error) {
	categories, err := d.api.Categories(ctx)
	if err != nil {
		d.logger.Warn("Failed to fetch categories", zap.Error(err))
		return nil, fmt.Errorf("category.Directory.List: %w", err)
	}
	return categories, nil
}

// ListOrEmpty degrades a fetch failure to an empty set so the rest of the
// view stays usable.
func (d *Directory) ListOrEmpty(ctx context.Context) []entity.Category {
	categories, err := d.List(ctx)
	if err != nil {
		return nil
	}
	return categories
}
