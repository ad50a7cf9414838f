// Package yaml_adapter reads gallery catalogs written in YAML and
// translates them into the format-agnostic config.Model.
//
//	visualizations:
//	  - title: Songs over Time by BPM
//	    subtitle: my music collection over time by bpm
//	    date: Jul 10, 2017
//	    url: bpm-3
//	    image_filename: bpm_visual_3_ss.png
//	routes:
//	  bpm-3:
//	    name: bpm3
package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/vk/visgallery/internal/config"
	"github.com/vk/visgallery/internal/ctxlog"
	"github.com/vk/visgallery/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Extensions are the file suffixes this loader picks up.
var Extensions = []string{".yaml", ".yml"}

type fileRoot struct {
	Visualizations []visualization  `yaml:"visualizations"`
	Routes         map[string]route `yaml:"routes"`
}

type visualization struct {
	Title           string `yaml:"title"`
	Subtitle        string `yaml:"subtitle"`
	Date            string `yaml:"date"`
	URL             string `yaml:"url"`
	ImageFilename   string `yaml:"image_filename"`
	Description     string `yaml:"description"`
	PostDescription string `yaml:"post_description"`
}

type route struct {
	Name string `yaml:"name"`
}

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every YAML file under paths in lexical path order. Unknown
// keys are rejected so that typos do not silently drop content.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(paths, Extensions...)
	if err != nil {
		return nil, fmt.Errorf("finding YAML catalog files: %w", err)
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}

		var root fileRoot
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}

		for _, v := range root.Visualizations {
			model.Visualizations = append(model.Visualizations, &config.Visualization{
				Title:           v.Title,
				Subtitle:        v.Subtitle,
				Date:            v.Date,
				URL:             v.URL,
				ImageFilename:   v.ImageFilename,
				Description:     v.Description,
				PostDescription: v.PostDescription,
				Source:          file,
			})
		}

		slugs := make([]string, 0, len(root.Routes))
		for slug := range root.Routes {
			slugs = append(slugs, slug)
		}
		sort.Strings(slugs)
		for _, slug := range slugs {
			model.Routes = append(model.Routes, &config.RouteOverlay{Slug: slug, Name: root.Routes[slug].Name, Source: file})
		}
	}

	logger.Debug("YAML loading complete.", "visualizations", len(model.Visualizations), "routes", len(model.Routes))
	return model, nil
}
