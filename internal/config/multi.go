package config

import (
	"context"

	"github.com/vk/visgallery/internal/ctxlog"
)

// MultiLoader runs several loaders over the same paths and merges their
// models in loader order. Each loader only picks up the file types it
// understands.
type MultiLoader []Loader

// Load implements the Loader interface.
func (ml MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &Model{}
	for _, l := range ml {
		m, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		model.Merge(m)
	}
	logger.Debug("Catalog loaders finished.", "loaders", len(ml), "visualizations", len(model.Visualizations), "routes", len(model.Routes))
	return model, nil
}
