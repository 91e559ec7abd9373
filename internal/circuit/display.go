package circuit

import (
	"strconv"

	"pixlogic/internal/core"
)

// Display values written by Cells.
const (
	CellEmpty uint8 = iota
	CellLow
	CellHigh
)

// Cells returns one display value per grid cell: CellEmpty off-wire, otherwise
// CellLow or CellHigh by the signal of the cell's network. The buffer is
// reused between calls.
func (e *Engine) Cells() []uint8 {
	cur := e.state.Current()
	for i, id := range e.nets.IDs() {
		switch {
		case id == NoNetwork:
			e.cells[i] = CellEmpty
		case cur[id]:
			e.cells[i] = CellHigh
		default:
			e.cells[i] = CellLow
		}
	}
	return e.cells
}

// Parameters summarises the engine for status displays.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Circuit",
			Params: []core.Parameter{
				intParam("size", "Size", e.grid.W),
				intParam("threshold", "Wire threshold", int(e.grid.Threshold)),
				intParam("steps", "Steps per tick", e.cfg.StepsPerTick),
			},
		},
		{
			Name: "Topology",
			Params: []core.Parameter{
				intParam("networks", "Networks", e.nets.Count()),
				intParam("gates", "Gates", len(e.gates)),
			},
		},
		{
			Name: "Simulation",
			Params: []core.Parameter{
				boolParam("running", "Running", e.running),
				{Key: "ticks", Label: "Ticks", Type: core.ParamTypeInt, Value: strconv.FormatUint(e.ticks, 10)},
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
