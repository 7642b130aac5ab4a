package config

// Config holds runtime settings for the CLI. S3Bucket enables snapshot
// export to object storage; ExportDir enables export to local files.
type Config struct {
	ServerURL    string `envconfig:"SERVER_URL"`
	DatabasePath string `envconfig:"DATABASE_PATH"`
	LogLevel     string `envconfig:"LOG_LEVEL"`
	ExportDir    string `envconfig:"EXPORT_DIR"`
	StaleGuard   bool   `envconfig:"STALE_GUARD"`
	Language     string `envconfig:"COLLATION_LANGUAGE"`

	S3Bucket       string `envconfig:"S3_BUCKET"`
	S3Region       string `envconfig:"S3_REGION"`
	S3BaseEndpoint string `envconfig:"S3_BASE_ENDPOINT"`
	S3AccessKey    string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey    string `envconfig:"S3_SECRET_KEY"`
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.DatabasePath = "carstorage.db"
	c.LogLevel = "warn"
	c.Language = "en"
	c.S3Region = "us-east-1"
}

// LoadConfig applies defaults, then JSON, environment and flags, each
// overriding the previous layer.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
