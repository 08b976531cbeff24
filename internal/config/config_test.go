package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tbrv/dbrs/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, 100, cfg.MaxPages)
	assert.Equal(t, "db> ", cfg.Prompt)
}

func TestFillDefaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.FillDefaults()
	assert.Equal(t, config.DefaultConfig(), cfg)

	cfg = &config.Config{MaxPages: 3, Prompt: "> "}
	cfg.FillDefaults()
	assert.Equal(t, 3, cfg.MaxPages, "explicit MaxPages should be kept")
	assert.Equal(t, "> ", cfg.Prompt, "explicit Prompt should be kept")

	cfg = &config.Config{MaxPages: -1}
	cfg.FillDefaults()
	assert.Equal(t, 100, cfg.MaxPages, "negative MaxPages should fall back to default")
}
