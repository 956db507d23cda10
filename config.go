// SPDX-License-Identifier: Unlicense OR MIT

package glr

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

// Config carries the out-of-band settings consumed at construction
// time.
type Config struct {
	// TargetWidth and TargetHeight are the backbuffer dimensions used
	// for Y-flipping when a pass targets the default framebuffer.
	TargetWidth  int `toml:"target_width"`
	TargetHeight int `toml:"target_height"`

	// DefaultFramebuffer overrides handle 0 as the system backbuffer.
	// Some host integrations hand out a nonzero default framebuffer.
	DefaultFramebuffer uint `toml:"default_framebuffer"`

	// Logger receives executor diagnostics. Nil selects the default
	// logger.
	Logger *log.Logger `toml:"-"`
}

func (c *Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

// LoadConfig reads a TOML config file for host integrations that
// configure the executor out of band.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("glr: reading config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("glr: parsing config %q: %w", path, err)
	}
	return cfg, nil
}
