package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeFacts()
	c.normalizeScripts()
	c.normalizeRender()
	c.normalizePlatform()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.DataDir, err = ExpandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.OutputDir, err = ExpandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.AssetsDir, err = ExpandPath(c.Paths.AssetsDir); err != nil {
		return fmt.Errorf("paths.assets_dir: %w", err)
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	return nil
}

func (c *Config) normalizeFacts() {
	if c.Facts.MaxPerRequest == 0 {
		c.Facts.MaxPerRequest = defaultFactMaxPerRequest
	}
	cleaned := make([]string, 0, len(c.Facts.DefaultCategories))
	for _, category := range c.Facts.DefaultCategories {
		if trimmed := strings.TrimSpace(category); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		cleaned = append(cleaned, defaultFactCategories...)
	}
	c.Facts.DefaultCategories = cleaned
}

func (c *Config) normalizeScripts() {
	c.Scripts.DefaultFormat = strings.TrimSpace(c.Scripts.DefaultFormat)
	if c.Scripts.DefaultFormat == "" {
		c.Scripts.DefaultFormat = defaultScriptFormat
	}
	c.Scripts.DefaultTargetLength = strings.TrimSpace(c.Scripts.DefaultTargetLength)
	if c.Scripts.DefaultTargetLength == "" {
		c.Scripts.DefaultTargetLength = defaultScriptTargetLength
	}
}

func (c *Config) normalizeRender() {
	c.Render.DefaultResolution = strings.TrimSpace(c.Render.DefaultResolution)
	if c.Render.DefaultResolution == "" {
		c.Render.DefaultResolution = defaultRenderResolution
	}
	c.Render.DefaultVoice = strings.TrimSpace(c.Render.DefaultVoice)
	if c.Render.DefaultVoice == "" {
		c.Render.DefaultVoice = defaultRenderVoice
	}
	c.Render.DefaultVisualStyle = strings.TrimSpace(c.Render.DefaultVisualStyle)
	if c.Render.DefaultVisualStyle == "" {
		c.Render.DefaultVisualStyle = defaultRenderVisualStyle
	}
	if c.Render.TimeoutSeconds == 0 {
		c.Render.TimeoutSeconds = defaultRenderTimeout
	}
}

func (c *Config) normalizePlatform() {
	if c.Platform.APIKey == "" {
		if value, ok := os.LookupEnv("REEL_PLATFORM_API_KEY"); ok {
			c.Platform.APIKey = strings.TrimSpace(value)
		}
	}
	c.Platform.WatchBaseURL = strings.TrimSpace(c.Platform.WatchBaseURL)
	if c.Platform.WatchBaseURL == "" {
		c.Platform.WatchBaseURL = defaultPlatformWatchURL
	}
	c.Platform.DefaultPrivacy = strings.TrimSpace(c.Platform.DefaultPrivacy)
	if c.Platform.DefaultPrivacy == "" {
		c.Platform.DefaultPrivacy = defaultPlatformPrivacy
	}
	if c.Platform.TimeoutSeconds == 0 {
		c.Platform.TimeoutSeconds = defaultPlatformTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
