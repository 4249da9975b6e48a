package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
	SignedURLTTL  time.Duration `yaml:"signed_url_ttl"`
	Storage       StorageConfig `yaml:"storage"`
}

type StorageConfig struct {
	Region   string `yaml:"region"`
	Bucket   string `yaml:"bucket"`
	Endpoint string `yaml:"endpoint"` // optional, e.g. a localstack/minio URL
}

func LoadConfig(path string) (*Config, error) {
	apiTimeout := 15 * time.Second
	tokenDuration := 24 * time.Hour
	signedURLTTL := 1 * time.Hour

	cfg := &Config{
		Addr:          getEnv("CONDOHUB_ADDR", ":8080"),
		JWTSecret:     getEnv("CONDOHUB_JWT_SECRET", "supersecretkey"),
		APITimeout:    apiTimeout,
		DatabasePath:  getEnv("CONDOHUB_DATABASE_PATH", "condohub.db"),
		TokenDuration: tokenDuration,
		SignedURLTTL:  signedURLTTL,
		Storage: StorageConfig{
			Region:   getEnv("CONDOHUB_STORAGE_REGION", "us-east-1"),
			Bucket:   getEnv("CONDOHUB_STORAGE_BUCKET", "property-files"),
			Endpoint: getEnv("CONDOHUB_STORAGE_ENDPOINT", ""),
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations that are unsafe to run outside development.
func (c *Config) Validate() error {
	env := getEnv("CONDOHUB_ENV", "development")
	if c.JWTSecret == "" || (c.JWTSecret == "supersecretkey" && env != "development") {
		return fmt.Errorf("jwt_secret is insecure for env %q", env)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must be set")
	}
	if c.Storage.Bucket == "" || c.Storage.Region == "" {
		return fmt.Errorf("storage.bucket and storage.region must be set")
	}
	if c.TokenDuration <= 0 {
		return fmt.Errorf("token_duration must be positive")
	}
	if c.SignedURLTTL <= 0 {
		return fmt.Errorf("signed_url_ttl must be positive")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
