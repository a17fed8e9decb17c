package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Height int
	Width  int
	Scale  int
	TPS    int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Height: 64, Width: 64, Scale: 8, TPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "placements per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed for the trial")
}
