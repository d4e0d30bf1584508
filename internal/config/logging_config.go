package config

// LoggingConfig — настройки логирования (BR_LOG_*).
type LoggingConfig struct {
	Level  string `yaml:"level" env:"BR_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"BR_LOG_FORMAT" env-default:"text"`

	// Output — "stderr" или "file".
	Output   string `yaml:"output" env:"BR_LOG_OUTPUT" env-default:"stderr"`
	FilePath string `yaml:"filePath" env:"BR_LOG_FILE_PATH"`

	MaxSize    int `yaml:"maxSize" env:"BR_LOG_MAX_SIZE" env-default:"50"`
	MaxBackups int `yaml:"maxBackups" env:"BR_LOG_MAX_BACKUPS" env-default:"3"`
	MaxAge     int `yaml:"maxAge" env:"BR_LOG_MAX_AGE" env-default:"7"`

	// Compress — сжимать архивы; по умолчанию true, см. newConfig.
	Compress bool `yaml:"compress" env:"BR_LOG_COMPRESS"`
}
