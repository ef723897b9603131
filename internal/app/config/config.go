package config

import (
	"famhealth-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "famhealth"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		PostgresDB: PostgresDB{
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "famhealth"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "smtp_host"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                            utils.GetEnvString("APP_ENV", "development"),
			Port:                           utils.GetEnvString("APP_PORT", ":8080"),
			Version:                        utils.GetEnvString("APP_VERSION", "v1"),
			Address:                        utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                       utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:                 utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                    utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:                utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte:     utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			ReportMaxUploadSizeInMB:        utils.GetEnvInt64("APP_REPORT_UPLOAD_MAX_SIZE_IN_MB", 10),
			CertificateMaxUploadSizeInMB:   utils.GetEnvInt64("APP_CERTIFICATE_UPLOAD_MAX_SIZE_IN_MB", 5),
			ArticleCacheExpirationInMinute: utils.GetEnvInt("APP_ARTICLE_CACHE_EXP_IN_MINUTE", 15),
			PendingShareCacheExpInMinute:   utils.GetEnvInt("APP_PENDING_SHARE_CACHE_EXP_IN_MINUTE", 1),
			AdminAPIKey:                    utils.GetEnvString("APP_ADMIN_API_KEY", ""),
			QueryNotificationEmailReceiver: utils.GetEnvString("APP_QUERY_NOTIFICATION_EMAIL_RECEIVER", ""),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Mailer: AppMailer{
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", ""),
		},
		Minio: AppMinio{
			ReportBucketName:      utils.GetEnvString("MINIO_REPORT_BUCKET_NAME", "reports"),
			CertificateBucketName: utils.GetEnvString("MINIO_CERTIFICATE_BUCKET_NAME", "certificates"),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "mailer"),
		},
		DiagnosticCenter: AppDiagnosticCenter{
			BaseUrl:          utils.GetEnvString("DIAGNOSTIC_CENTER_BASE_URL", "http://localhost:5050"),
			TimeoutInSeconds: utils.GetEnvInt("DIAGNOSTIC_CENTER_TIMEOUT_IN_SECONDS", 15),
		},
		AdminService: AppAdminService{
			BaseUrl:          utils.GetEnvString("ADMIN_SERVICE_BASE_URL", "http://localhost:5060"),
			TimeoutInSeconds: utils.GetEnvInt("ADMIN_SERVICE_TIMEOUT_IN_SECONDS", 15),
		},
		PaymentGateway: AppPaymentGateway{
			BaseUrl:          utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://api.razorpay.com/v1"),
			KeyID:            utils.GetEnvString("PAYMENT_GATEWAY_KEY_ID", ""),
			KeySecret:        utils.GetEnvString("PAYMENT_GATEWAY_KEY_SECRET", ""),
			TimeoutInSeconds: utils.GetEnvInt("PAYMENT_GATEWAY_TIMEOUT_IN_SECONDS", 30),
		},
	}
}
