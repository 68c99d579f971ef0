package config

import "os"

// parseEnv overlays values from environment variables onto config. The two
// signing secrets are expected to arrive this way in deployments; everything
// else is a convenience override.
func parseEnv(config *Config) {
	overlayString(&config.EndpointAddr, os.Getenv("ADDRESS"))
	overlayString(&config.ClientOrigin, os.Getenv("CLIENT_ORIGIN"))
	overlayString(&config.AccessTokenSecret, os.Getenv("ACCESS_TOKEN_SECRET"))
	overlayString(&config.RefreshTokenSecret, os.Getenv("REFRESH_TOKEN_SECRET"))
	overlayString(&config.StoreBackend, os.Getenv("STORE_BACKEND"))
	overlayString(&config.DatabaseDSN, os.Getenv("DATABASE_DSN"))
	overlayString(&config.RedisAddr, os.Getenv("REDIS_ADDR"))
	overlayString(&config.RedisPassword, os.Getenv("REDIS_PASSWORD"))
	overlayString(&config.UploadBackend, os.Getenv("UPLOAD_BACKEND"))
	overlayString(&config.UploadDir, os.Getenv("UPLOAD_DIR"))
	overlayString(&config.S3RootUser, os.Getenv("S3_ROOT_USER"))
	overlayString(&config.S3RootPassword, os.Getenv("S3_ROOT_PASSWORD"))
	overlayString(&config.S3Bucket, os.Getenv("S3_BUCKET"))
	overlayString(&config.S3Region, os.Getenv("S3_REGION"))
	overlayString(&config.S3BaseEndpoint, os.Getenv("S3_BASE_ENDPOINT"))
}
