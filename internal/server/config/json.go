package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/akorlov/mapmark/internal/flagx"
	"github.com/akorlov/mapmark/internal/timex"
)

// JsonConfig is the JSON-file shape of Config. Duration fields use
// timex.Duration so both "30m" strings and integer nanoseconds parse.
type JsonConfig struct {
	EndpointAddr                 string         `json:"endpoint_addr"`
	ClientOrigin                 string         `json:"client_origin"`
	AccessTokenSecret            string         `json:"access_token_secret"`
	RefreshTokenSecret           string         `json:"refresh_token_secret"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	StoreBackend                 string         `json:"store_backend"`
	DatabaseDSN                  string         `json:"database_dsn"`
	RedisAddr                    string         `json:"redis_addr"`
	RedisPassword                string         `json:"redis_password"`
	UploadBackend                string         `json:"upload_backend"`
	UploadDir                    string         `json:"upload_dir"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags, if any, and overlays the non-empty values onto config.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlayString(&config.EndpointAddr, c.EndpointAddr)
	overlayString(&config.ClientOrigin, c.ClientOrigin)
	overlayString(&config.AccessTokenSecret, c.AccessTokenSecret)
	overlayString(&config.RefreshTokenSecret, c.RefreshTokenSecret)
	overlayDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration.Duration)
	overlayDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration.Duration)
	overlayString(&config.StoreBackend, c.StoreBackend)
	overlayString(&config.DatabaseDSN, c.DatabaseDSN)
	overlayString(&config.RedisAddr, c.RedisAddr)
	overlayString(&config.RedisPassword, c.RedisPassword)
	overlayString(&config.UploadBackend, c.UploadBackend)
	overlayString(&config.UploadDir, c.UploadDir)
	overlayString(&config.S3RootUser, c.S3RootUser)
	overlayString(&config.S3RootPassword, c.S3RootPassword)
	overlayString(&config.S3Bucket, c.S3Bucket)
	overlayString(&config.S3Region, c.S3Region)
	overlayString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}

func overlayString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func overlayDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}
