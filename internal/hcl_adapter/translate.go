package hcl_adapter

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/visgallery/internal/config"
)

// translateVisualization evaluates every attribute of v into a config.Visualization.
func translateVisualization(ctx context.Context, v *Visualization, evalCtx *hcl.EvalContext) (*config.Visualization, error) {
	out := &config.Visualization{}
	fields := []struct {
		name string
		expr hcl.Expression
		dst  *string
	}{
		{"title", v.Title, &out.Title},
		{"subtitle", v.Subtitle, &out.Subtitle},
		{"date", v.Date, &out.Date},
		{"url", v.URL, &out.URL},
		{"image_filename", v.ImageFilename, &out.ImageFilename},
		{"description", v.Description, &out.Description},
		{"post_description", v.PostDescription, &out.PostDescription},
	}
	for _, f := range fields {
		s, err := evalString(ctx, f.expr, evalCtx, f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = s
	}
	return out, nil
}
