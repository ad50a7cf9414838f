package app

import (
	"fmt"
	"io"
)

// PrintSummary writes a short description of the loaded catalog to w.
func (a *App) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "catalog ok: %d visualizations, %d routes, %d external\n",
		a.registry.Len(), a.resolver.Table().Len(), len(a.registry.External()))
	for _, e := range a.resolver.Table().Entries() {
		if e.Name != "" {
			fmt.Fprintf(w, "  %-24s %s (%s)\n", e.Path, e.Descriptor.Title, e.Name)
			continue
		}
		fmt.Fprintf(w, "  %-24s %s\n", e.Path, e.Descriptor.Title)
	}
	for _, d := range a.registry.External() {
		fmt.Fprintf(w, "  %-24s %s (external)\n", d.URL, d.Title)
	}
}
