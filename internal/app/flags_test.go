package app

import (
	"flag"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"pixlogic/internal/circuit"
)

func newFlagSet(c *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c.Bind(fs)
	return fs
}

func TestParseFlags(t *testing.T) {
	c := NewConfig()
	fs := newFlagSet(c)
	if err := c.Parse(fs, []string{"-size", "32", "-seed", "9", "-image", "adder.png"}); err != nil {
		t.Fatal(err)
	}
	if c.Size != 32 || c.Seed != 9 || c.Image != "adder.png" {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.TPS != 60 || c.LogLevel != "info" {
		t.Fatalf("defaults lost: %+v", c)
	}
}

func TestConfigFileUnderFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logic.hjson")
	file := `{
  # comments are allowed
  size: 128
  tps: 30
  steps: 4
  log_level: debug
}`
	if err := os.WriteFile(path, []byte(file), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewConfig()
	fs := newFlagSet(c)
	if err := c.Parse(fs, []string{"-config", path, "-tps", "90"}); err != nil {
		t.Fatal(err)
	}
	if c.Size != 128 || c.Steps != 4 || c.LogLevel != "debug" {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.TPS != 90 {
		t.Fatalf("flag should override file, got tps=%d", c.TPS)
	}
}

type repeated []string

func (r *repeated) String() string     { return strings.Join(*r, ",") }
func (r *repeated) Set(v string) error { *r = append(*r, v); return nil }

func TestConfigFileParsesFlagsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logic.hjson")
	if err := os.WriteFile(path, []byte("{\n  size: 64\n  steps: 3\n  tps: 20\n}"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewConfig()
	fs := newFlagSet(c)
	var cells repeated
	fs.Var(&cells, "high", "")
	if err := c.Parse(fs, []string{"-size", "8", "--config=" + path, "-high", "1,2", "-high", "3,4", "-steps", "5"}); err != nil {
		t.Fatal(err)
	}
	if c.Size != 8 || c.Steps != 5 {
		t.Fatalf("flags should override the file: %+v", c)
	}
	if c.TPS != 20 {
		t.Fatalf("file value not applied, tps=%d", c.TPS)
	}
	if len(cells) != 2 {
		t.Fatalf("repeatable flag collected %v, expected two cells", cells)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	c := NewConfig()
	if err := c.Decode([]byte(`{ colour: red }`)); err == nil {
		t.Fatal("expected an error for an unknown key")
	}
	if err := c.Decode([]byte(`{ size: `)); err == nil {
		t.Fatal("expected an error for malformed hjson")
	}
}

func TestCircuitConfig(t *testing.T) {
	c := NewConfig()
	c.Size = 16
	c.Seed = 3
	c.Threshold = 999
	c.Steps = 0

	cc := c.CircuitConfig()
	def := circuit.DefaultConfig()
	if cc.Size != 16 || cc.Seed != 3 {
		t.Fatalf("unexpected circuit config %+v", cc)
	}
	if cc.Threshold != def.Threshold || cc.StepsPerTick != def.StepsPerTick {
		t.Fatalf("invalid values should fall back to defaults, got %+v", cc)
	}
}

func TestLogger(t *testing.T) {
	c := NewConfig()
	c.LogLevel = "warn"
	l, err := c.Logger()
	if err != nil {
		t.Fatal(err)
	}
	if l.GetLevel() != logrus.WarnLevel {
		t.Fatalf("level %v, expected warn", l.GetLevel())
	}
	c.LogLevel = "chatty"
	if _, err := c.Logger(); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestNextPaletteColor(t *testing.T) {
	if got := nextPaletteColor(palette[len(palette)-1]); got != palette[0] {
		t.Fatalf("palette should wrap, got %v", got)
	}
	if got := nextPaletteColor(color.RGBA{R: 1}); got != palette[0] {
		t.Fatalf("unknown colour should reset to the first entry, got %v", got)
	}
	if got := nextPaletteColor(palette[0]); got != palette[1] {
		t.Fatalf("expected the second entry, got %v", got)
	}
	if tool(toolPick).String() != "pick" || toolPaint.String() != "paint" {
		t.Fatal("unexpected tool names")
	}
}
