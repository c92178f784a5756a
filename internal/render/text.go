package render

import (
	"fmt"
	"io"

	"roomgen/pkg/core"
)

// WriteFrame prints a titled text rendering of grid.
func WriteFrame(w io.Writer, title string, grid *core.Grid) error {
	if title != "" {
		if _, err := fmt.Fprintf(w, "-- %s (%dx%d, open %.3f)\n", title, grid.W, grid.H, grid.OpenFraction()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, grid.String())
	return err
}

// WriteParameters prints a parameter snapshot one group at a time.
func WriteParameters(w io.Writer, snap core.ParameterSnapshot) error {
	for _, group := range snap.Groups {
		if _, err := fmt.Fprintf(w, "[%s]\n", group.Name); err != nil {
			return err
		}
		for _, p := range group.Params {
			if _, err := fmt.Fprintf(w, "  %-24s %-8s %s\n", p.Key, p.Type, p.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
