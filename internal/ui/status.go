package ui

import (
	"fmt"
	"image/color"

	"pixlogic/internal/core"
)

// Status describes the editor state shown next to the engine parameters.
type Status struct {
	Running bool
	Tool    string
	Color   color.RGBA
	// Hover is the network id under the cursor, 0 when off-wire.
	Hover int
}

var helpLines = []string{
	"P play/pause  N step  1 paint  2 pick  C colour",
	"G gates  H help  wheel zoom  middle-drag pan",
}

// statusLines renders the HUD text.
func statusLines(params core.ParameterSnapshot, st Status, help bool) []string {
	mode := "EDITING"
	if st.Running {
		mode = "RUNNING"
	}
	lines := []string{mode}
	if !st.Running {
		lines = append(lines, fmt.Sprintf("tool %s  colour #%02x%02x%02x", st.Tool, st.Color.R, st.Color.G, st.Color.B))
	}
	for _, g := range params.Groups {
		line := g.Name + ":"
		for _, p := range g.Params {
			line += fmt.Sprintf(" %s=%s", p.Key, p.Value)
		}
		lines = append(lines, line)
	}
	if st.Hover != 0 {
		lines = append(lines, fmt.Sprintf("network %d", st.Hover))
	}
	if help {
		lines = append(lines, helpLines...)
	}
	return lines
}
