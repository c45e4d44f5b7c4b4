package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Scenario   string
	Payload    string
	Scale      int
	TPS        int
	Seed       int64
	PanelWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Payload: "fire", Scale: 4, TPS: 30, PanelWidth: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML arena config (defaults when empty)")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "catastrophe preset to start with")
	fs.StringVar(&c.Payload, "payload", c.Payload, "mouse brush payload: fire, water, explosive or oil")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "terrain and turret seed (0 uses the config seed)")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "HUD panel width in pixels (0 hides it)")
}
