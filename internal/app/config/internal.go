package config

type InternalConfig struct {
	App           App
	JWT           AppJWT
	Minio         AppMinio
	LoginThrottle AppLoginThrottle
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Timezone                   string
	EndpointPrefix             string
	AllowedOrigins             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	BucketName              string
	UploadMaxSizeInMegabyte int64
}

// AppLoginThrottle bounds failed and successful login attempts per email and client IP.
type AppLoginThrottle struct {
	MaxAttempts     int
	WindowInSeconds int
}
