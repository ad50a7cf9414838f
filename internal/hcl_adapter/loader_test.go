package hcl_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return root
}

func TestLoad_CatalogInFileOrder(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"10-recent.hcl": `
			visualization {
				title          = "Weather in Boulder"
				subtitle       = "a look at the weather in 2019"
				date           = "Mar 28, 2020"
				url            = "weather"
				image_filename = "weather_ss.png"
			}
			visualization {
				title          = "Songs over Time by BPM"
				subtitle       = "my music collection over time by bpm"
				date           = "Jul 10, 2017"
				url            = "bpm-3"
				image_filename = "bpm_visual_3_ss.png"
				description    = join("\n", ["<p>First.</p>", "<p>Second.</p>"])
				post_description = format("<p>%s</p>", upper("fin"))
			}
			route "bpm-3" {
				name = "bpm3"
			}
		`,
		"20-legacy.hcl": `
			visualization {
				title          = "DC Snowfall"
				subtitle       = "yearly snowfall in dc"
				date           = "Nov 10, 2014"
				url            = "//jpecht.com/vis-old/dc_snowfall.html"
				image_filename = "dc_snowfall_ss.png"
			}
		`,
		"notes.txt": "ignored",
	})

	model, err := NewLoader().Load(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, model.Visualizations, 3)
	require.Equal(t, "weather", model.Visualizations[0].URL)
	require.Equal(t, "bpm-3", model.Visualizations[1].URL)
	require.Equal(t, "//jpecht.com/vis-old/dc_snowfall.html", model.Visualizations[2].URL)

	bpm := model.Visualizations[1]
	require.Equal(t, "<p>First.</p>\n<p>Second.</p>", bpm.Description)
	require.Equal(t, "<p>FIN</p>", bpm.PostDescription)
	require.Equal(t, filepath.Join(root, "10-recent.hcl"), bpm.Source)

	require.Empty(t, model.Visualizations[0].Description, "older entries omit optional fields")

	require.Len(t, model.Routes, 1)
	require.Equal(t, "bpm-3", model.Routes[0].Slug)
	require.Equal(t, "bpm3", model.Routes[0].Name)
}

func TestLoad_MissingFieldsAreLeftForValidation(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"catalog.hcl": `
			visualization {
				title = "Untitled"
			}
		`,
	})

	model, err := NewLoader().Load(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, model.Visualizations, 1)
	require.Equal(t, "", model.Visualizations[0].URL)
}

func TestLoad_NumbersConvertToText(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"catalog.hcl": `
			visualization {
				title = 2016
			}
		`,
	})

	model, err := NewLoader().Load(context.Background(), root)
	require.NoError(t, err)
	require.Equal(t, "2016", model.Visualizations[0].Title)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax error":       `visualization {`,
		"unknown attribute":  `visualization { colour = "red" }`,
		"unknown block":      `widget {}`,
		"non-text value":     `visualization { title = ["a", "b"] }`,
		"unknown function":   `visualization { title = shout("a") }`,
		"route without slug": `route {}`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			root := writeFiles(t, map[string]string{"catalog.hcl": src})
			_, err := NewLoader().Load(context.Background(), root)
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingPathIsEmpty(t *testing.T) {
	model, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	require.Empty(t, model.Visualizations)
}
