package config

const (
	defaultConfigPath   = "~/.config/cng2jpg/config.toml"
	projectConfigName   = "cng2jpg.toml"
	defaultJPEGQuality  = 75
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	envLogLevelOverride = "CNG2JPG_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Convert: Convert{
			JPEGQuality: defaultJPEGQuality,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
