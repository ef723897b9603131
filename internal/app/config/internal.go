package config

type InternalConfig struct {
	App              App
	JWT              AppJWT
	Mailer           AppMailer
	Minio            AppMinio
	RabbitMQ         AppRabbitMQ
	DiagnosticCenter AppDiagnosticCenter
	AdminService     AppAdminService
	PaymentGateway   AppPaymentGateway
}

type App struct {
	Env                             string
	Port                            string
	Version                         string
	Address                         string
	Timezone                        string
	EndpointPrefix                  string
	MaxRequests                     int
	ShutdownTimeout                 int
	RequestBodyLimitInMegabyte      int
	ReportMaxUploadSizeInMB         int64
	CertificateMaxUploadSizeInMB    int64
	ArticleCacheExpirationInMinute  int
	PendingShareCacheExpInMinute    int
	AdminAPIKey                     string
	QueryNotificationEmailReceiver  string
}

type AppJWT struct {
	Secret string
}

type AppMailer struct {
	EmailSender string
}

type AppMinio struct {
	ReportBucketName      string
	CertificateBucketName string
}

type AppRabbitMQ struct {
	MailerQueue string
}

type AppDiagnosticCenter struct {
	BaseUrl          string
	TimeoutInSeconds int
}

type AppAdminService struct {
	BaseUrl          string
	TimeoutInSeconds int
}

type AppPaymentGateway struct {
	BaseUrl          string
	KeyID            string
	KeySecret        string
	TimeoutInSeconds int
}
