package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/visgallery/internal/config"
	"github.com/vk/visgallery/internal/ctxlog"
	"github.com/vk/visgallery/internal/fsutil"
)

// Extension is the file suffix this loader picks up.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths, in lexical path order, and
// appends their blocks to one model in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, Extension)
	if err != nil {
		return nil, fmt.Errorf("finding HCL catalog files: %w", err)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()
	evalCtx := evalContext()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, v := range root.Visualizations {
			vis, err := translateVisualization(ctx, v, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("in %s, visualization %d: %w", file, len(model.Visualizations), err)
			}
			vis.Source = file
			model.Visualizations = append(model.Visualizations, vis)
		}
		for _, r := range root.Routes {
			model.Routes = append(model.Routes, &config.RouteOverlay{Slug: r.Slug, Name: r.Name, Source: file})
		}
		logger.Debug("Loaded HCL catalog file.", "file", file, "visualizations", len(root.Visualizations), "routes", len(root.Routes))
	}

	logger.Debug("HCL loading complete.", "visualizations", len(model.Visualizations), "routes", len(model.Routes))
	return model, nil
}
