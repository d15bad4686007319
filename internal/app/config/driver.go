package config

type (
	DriverConfig struct {
		PostgresDB PostgresDB
		Redis      Redis
		Logger     Logger
		Minio      Minio
	}
	PostgresDB struct {
		Host            string
		Port            string
		Username        string
		Password        string
		DBName          string
		SSLMode         string
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime int
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}
)
