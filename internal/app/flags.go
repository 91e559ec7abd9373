package app

import (
	"flag"
	"os"
	"strconv"

	"github.com/hjson/hjson-go"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"pixlogic/internal/circuit"
)

// Config represents the command-line parameters for the application. Values
// can also come from an HJSON file named by -config; flags given on the
// command line win over the file.
type Config struct {
	Image     string `mapstructure:"image"`
	Size      int    `mapstructure:"size"`
	Scale     int    `mapstructure:"scale"`
	TPS       int    `mapstructure:"tps"`
	Steps     int    `mapstructure:"steps"`
	Seed      int64  `mapstructure:"seed"`
	Threshold int    `mapstructure:"threshold"`
	LogLevel  string `mapstructure:"log_level"`

	File string `mapstructure:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := circuit.DefaultConfig()
	return &Config{
		Size:      def.Size,
		Scale:     8,
		TPS:       60,
		Steps:     def.StepsPerTick,
		Seed:      def.Seed,
		Threshold: int(def.Threshold),
		LogLevel:  "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "HJSON configuration file")
	fs.StringVar(&c.Image, "image", c.Image, "square circuit image to load")
	fs.IntVar(&c.Size, "size", c.Size, "side length of the blank circuit")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.Steps, "steps", c.Steps, "simulation steps per tick")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "gate shuffle seed (0 picks one from the clock)")
	fs.IntVar(&c.Threshold, "threshold", c.Threshold, "channel value a wire pixel must exceed")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (panic, fatal, error, warn, info, debug, trace)")
}

// configFlags names the flags Bind registers for values a file can also set.
var configFlags = map[string]bool{
	"image": true, "size": true, "scale": true, "tps": true,
	"steps": true, "seed": true, "threshold": true, "log-level": true,
}

// Parse parses args into c. When -config is given the file is applied and the
// configuration flags given explicitly are set again so they override it.
// Other flags on fs are parsed exactly once.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.File == "" {
		return nil
	}
	explicit := make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		if configFlags[f.Name] {
			explicit[f.Name] = f.Value.String()
		}
	})
	if err := c.LoadFile(c.File); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "flag -%s", name)
		}
	}
	return nil
}

// LoadFile reads an HJSON configuration file into c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	return errors.Wrapf(c.Decode(data), "config %s", path)
}

// Decode applies HJSON (or plain JSON) configuration to c. Unknown keys are
// rejected.
func (c *Config) Decode(data []byte) error {
	var dat map[string]interface{}
	if err := hjson.Unmarshal(data, &dat); err != nil {
		return errors.Wrap(err, "parse hjson")
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      c,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return errors.Wrap(dec.Decode(dat), "decode config")
}

// CircuitConfig converts the command-line values into an engine
// configuration. Out-of-range values fall back to the engine defaults.
func (c *Config) CircuitConfig() circuit.Config {
	return circuit.FromMap(map[string]string{
		"size":      strconv.Itoa(c.Size),
		"seed":      strconv.FormatInt(c.Seed, 10),
		"threshold": strconv.Itoa(c.Threshold),
		"steps":     strconv.Itoa(c.Steps),
	})
}

// Logger builds a logger at the configured level.
func (c *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	l := logrus.New()
	l.SetLevel(level)
	return l, nil
}
