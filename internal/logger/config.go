package logger

const (
	FormatJSON    = "json"
	FormatConsole = "console"

	defaultLevel = "info"
)

// Config controls logger construction.
type Config struct {
	Level       string   `mapstructure:"level"`
	Format      string   `mapstructure:"format"`
	Development bool     `mapstructure:"development"`
	OutputPaths []string `mapstructure:"output_paths"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Level == "" {
		c.Level = defaultLevel
	}
	if c.Format == "" {
		c.Format = FormatJSON
	}
	if len(c.OutputPaths) == 0 {
		c.OutputPaths = []string{"stdout"}
	}
}
