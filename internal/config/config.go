// Package config provides configuration structures and defaults for dbrs.
package config

const (
	defaultMaxPages = 100
	defaultPrompt   = "db> "
)

// Config holds the tunable parameters of a table and its front end.
type Config struct {
	// MaxPages bounds how many pages the table may allocate.
	// Inserts that would need a page at or beyond it fail.
	MaxPages int
	// Prompt is printed before every line read by the REPL.
	Prompt string
}

// DefaultConfig returns a Config struct populated with default values.
func DefaultConfig() *Config {
	return &Config{
		MaxPages: defaultMaxPages,
		Prompt:   defaultPrompt,
	}
}

// FillDefaults sets any zero-value fields in the Config to their default values.
func (c *Config) FillDefaults() {
	def := DefaultConfig()
	if c.MaxPages <= 0 {
		c.MaxPages = def.MaxPages
	}
	if c.Prompt == "" {
		c.Prompt = def.Prompt
	}
}
