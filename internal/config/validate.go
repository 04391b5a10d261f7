package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateFacts(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validatePlatform(); err != nil {
		return err
	}
	if err := c.validateNotifications(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return errors.New("paths.output_dir must be set")
	}
	return nil
}

func (c *Config) validateFacts() error {
	if c.Facts.MaxPerRequest < 1 {
		return errors.New("facts.max_per_request must be positive")
	}
	if len(c.Facts.DefaultCategories) == 0 {
		return errors.New("facts.default_categories must not be empty")
	}
	return nil
}

func (c *Config) validateRender() error {
	if c.Render.TimeoutSeconds <= 0 {
		return errors.New("render.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validatePlatform() error {
	if c.Platform.TimeoutSeconds <= 0 {
		return errors.New("platform.timeout_seconds must be positive")
	}
	switch c.Platform.DefaultPrivacy {
	case "Public", "Unlisted", "Private":
	default:
		return fmt.Errorf("platform.default_privacy must be Public, Unlisted, or Private, got %q", c.Platform.DefaultPrivacy)
	}
	return nil
}

func (c *Config) validateNotifications() error {
	if c.Notifications.RequestTimeout <= 0 {
		return errors.New("notifications.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
