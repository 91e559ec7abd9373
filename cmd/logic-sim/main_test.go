package main

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"pixlogic/internal/circuit"
)

// loadRows builds a started engine from rows of '#' (white wire) and '.'.
func loadRows(t *testing.T, rows ...string) *circuit.Engine {
	t.Helper()
	side := len(rows)
	pix := make([]byte, side*side*4)
	for y, row := range rows {
		for x, ch := range row {
			i := (y*side + x) * 4
			if ch == '#' {
				pix[i+0], pix[i+1], pix[i+2] = 255, 255, 255
			}
			pix[i+3] = 255
		}
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	cfg := circuit.DefaultConfig()
	cfg.Seed = 1
	e := circuit.New(cfg, circuit.WithLogger(l))
	if err := e.Load(pix, side, side); err != nil {
		t.Fatal(err)
	}
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestHeldWireEndsHigh(t *testing.T) {
	e := loadRows(t,
		"##..",
		"....",
		"....",
		"....",
	)
	var high cellList
	if err := high.Set("0,0"); err != nil {
		t.Fatal(err)
	}
	simulate(e, 5, high, nil)

	if !e.High(e.NetworkAt(1, 0)) {
		t.Fatal("network held HIGH should end HIGH")
	}
	if got := countHigh(e.States()); got != 1 {
		t.Fatalf("countHigh=%d, expected 1", got)
	}
	if e.Ticks() != 5 {
		t.Fatalf("ran %d ticks, expected 5", e.Ticks())
	}
}

func TestHeldInputDrivesInverter(t *testing.T) {
	e := loadRows(t,
		"###",
		"#.#",
		".#.",
	)
	var high cellList
	if err := high.Set("0, 0"); err != nil {
		t.Fatal(err)
	}
	simulate(e, 3, high, nil)
	if e.High(e.NetworkAt(1, 2)) {
		t.Fatal("inverter output should be LOW while its input is held HIGH")
	}

	var low cellList
	if err := low.Set("0,0"); err != nil {
		t.Fatal(err)
	}
	simulate(e, 1, nil, low)
	if e.High(e.NetworkAt(0, 0)) {
		t.Fatal("input held LOW should end LOW")
	}
	if !e.High(e.NetworkAt(1, 2)) {
		t.Fatal("inverter output should be HIGH once its input is held LOW")
	}
}

func TestCellListRejectsMalformed(t *testing.T) {
	var l cellList
	for _, v := range []string{"3", "a,1", "1,b"} {
		if err := l.Set(v); err == nil {
			t.Fatalf("Set(%q) should fail", v)
		}
	}
	if len(l) != 0 {
		t.Fatalf("rejected cells were recorded: %v", l)
	}
}
