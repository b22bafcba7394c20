package main

import (
	"sortd/internal/config"
)

// commandContext lazily loads configuration once and shares it across
// commands.
type commandContext struct {
	configFlag *string

	cfg        *config.Config
	configPath string
	configSeen bool
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := ""
	if c.configFlag != nil {
		path = *c.configFlag
	}
	cfg, resolvedPath, exists, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.configPath = resolvedPath
	c.configSeen = exists
	return cfg, nil
}
