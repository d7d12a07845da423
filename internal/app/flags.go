package app

import "flag"

// Flags represents the command-line parameters shared by the drivers.
type Flags struct {
	Config      string
	Scale       int
	TPS         int
	Seed        int64
	Generations int
	HUDWidth    int
	LogFile     string
}

// NewFlags returns Flags populated with sensible defaults. A zero Seed, TPS
// or Generations means "use the config file value", as does an empty LogFile.
func NewFlags() *Flags {
	return &Flags{Scale: 4, HUDWidth: 240}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", f.Config, "path to a TOML config file")
	fs.IntVar(&f.Scale, "scale", f.Scale, "pixel scale multiplier")
	fs.IntVar(&f.TPS, "tps", f.TPS, "generations per second (0 = config)")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for colony reset (0 = config)")
	fs.IntVar(&f.Generations, "generations", f.Generations, "generations to run headless (0 = config)")
	fs.IntVar(&f.HUDWidth, "hud", f.HUDWidth, "width of the stats panel in pixels (0 hides it)")
	fs.StringVar(&f.LogFile, "log", f.LogFile, "write logs to this file instead of stderr")
}
