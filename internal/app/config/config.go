package config

import (
	"clinic-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:            utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:            utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username:        utils.GetEnvString("POSTGRES_USERNAME", "clinic"),
			Password:        utils.GetEnvString("POSTGRES_PASSWORD", "clinic"),
			DBName:          utils.GetEnvString("POSTGRES_DB_NAME", "clinic_management"),
			SSLMode:         utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
			MaxOpenConns:    utils.GetEnvInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    utils.GetEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: utils.GetEnvInt("POSTGRES_CONN_MAX_LIFETIME_IN_MINUTES", 30),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "production"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:             utils.GetEnvString("APP_ALLOWED_ORIGINS", "http://localhost:5173"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 10),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", ""),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Minio: AppMinio{
			BucketName:              utils.GetEnvString("MINIO_BUCKET_NAME", "clinic"),
			UploadMaxSizeInMegabyte: utils.GetEnvInt64("MINIO_UPLOAD_MAX_SIZE_IN_MEGABYTE", 10),
		},
		LoginThrottle: AppLoginThrottle{
			MaxAttempts:     utils.GetEnvInt("LOGIN_THROTTLE_MAX_ATTEMPTS", 5),
			WindowInSeconds: utils.GetEnvInt("LOGIN_THROTTLE_WINDOW_IN_SECONDS", 300),
		},
	}
}
