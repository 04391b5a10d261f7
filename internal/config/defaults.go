package config

const (
	defaultDataDir             = "~/.local/share/reel/data"
	defaultLogDir              = "~/.local/share/reel/logs"
	defaultOutputDir           = "~/.local/share/reel/output"
	defaultAssetsDir           = "~/.local/share/reel/assets"
	defaultAPIBind             = "127.0.0.1:7519"
	defaultFactMaxPerRequest   = 20
	defaultScriptFormat        = "Conversational"
	defaultScriptTargetLength  = "60 seconds"
	defaultRenderResolution    = "1080p"
	defaultRenderVoice         = "Male"
	defaultRenderVisualStyle   = "standard"
	defaultRenderTimeout       = 120
	defaultPlatformWatchURL    = "https://videos.example.com/watch"
	defaultPlatformPrivacy     = "Public"
	defaultPlatformTimeout     = 60
	defaultNotifyTimeout       = 10
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

var defaultFactCategories = []string{"Science", "History", "Nature", "Space", "Technology"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			OutputDir: defaultOutputDir,
			AssetsDir: defaultAssetsDir,
			APIBind:   defaultAPIBind,
		},
		Facts: Facts{
			MaxPerRequest:     defaultFactMaxPerRequest,
			DefaultCategories: append([]string{}, defaultFactCategories...),
			SeedSamples:       true,
		},
		Scripts: Scripts{
			DefaultFormat:       defaultScriptFormat,
			DefaultTargetLength: defaultScriptTargetLength,
		},
		Render: Render{
			DefaultResolution:  defaultRenderResolution,
			DefaultVoice:       defaultRenderVoice,
			DefaultVisualStyle: defaultRenderVisualStyle,
			TimeoutSeconds:     defaultRenderTimeout,
		},
		Platform: Platform{
			WatchBaseURL:   defaultPlatformWatchURL,
			DefaultPrivacy: defaultPlatformPrivacy,
			TimeoutSeconds: defaultPlatformTimeout,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyTimeout,
			Pipeline:       true,
			Publish:        true,
			Errors:         true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
