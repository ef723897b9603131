package config

type (
	DriverConfig struct {
		MongoDB    MongoDB
		PostgresDB PostgresDB
		Redis      Redis
		Logger     Logger
		RabbitMQ   RabbitMQ
		Minio      Minio
		SMTP       SMTP
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
		DbName   string
	}
	PostgresDB struct {
		Port     string
		Host     string
		Username string
		Password string
		DBName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
)
