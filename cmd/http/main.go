package main

import (
	"context"
	"famhealth-service/internal/app/config"
	"famhealth-service/internal/app/delivery/http/middlewares"
	"famhealth-service/internal/app/delivery/http/routers"
	"famhealth-service/internal/app/drivers/database"
	"famhealth-service/internal/app/drivers/logger"
	smtpdriver "famhealth-service/internal/app/drivers/mailer"
	"famhealth-service/internal/app/drivers/messaging"
	"famhealth-service/internal/app/drivers/storage"
	"famhealth-service/internal/app/services/core/articles"
	"famhealth-service/internal/app/services/core/profiles"
	"famhealth-service/internal/app/services/core/queries"
	"famhealth-service/internal/app/services/core/references"
	"famhealth-service/internal/app/services/core/reports"
	"famhealth-service/internal/app/services/core/sharing"
	"famhealth-service/internal/app/services/core/subscriptions"
	"famhealth-service/internal/app/services/core/vaccines"
	"famhealth-service/internal/app/services/shared/diagnostic"
	"famhealth-service/internal/app/services/shared/mailer"
	"famhealth-service/internal/app/services/shared/payment_gateway"
	"famhealth-service/internal/app/services/shared/redis"
	sharedstorage "famhealth-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	logrusLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("error loading timezone", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrusLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("error closing drivers", zap.Error(err))
	}

	logrusLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	minioClient := storage.NewMinio(bootstrap.DriverConfig)
	minioStorage := sharedstorage.NewMinioStorage(minioClient)

	smtpClient := smtpdriver.NewSMTPClient(bootstrap.DriverConfig)
	mailerService, err := mailer.NewMailerService(smtpClient, bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.MailerQueue)
	if err != nil {
		bootstrap.Logger.Fatal("error initializing mailer service", zap.Error(err))
	}

	diagnosticCenterClient := diagnostic.NewDiagnosticCenterClient(
		bootstrap.InternalConfig.DiagnosticCenter.BaseUrl,
		bootstrap.InternalConfig.DiagnosticCenter.TimeoutInSeconds,
		bootstrap.Logger,
	)

	paymentGateway := payment_gateway.NewPaymentGateway(
		bootstrap.InternalConfig.PaymentGateway.BaseUrl,
		bootstrap.InternalConfig.PaymentGateway.KeyID,
		bootstrap.InternalConfig.PaymentGateway.KeySecret,
		bootstrap.InternalConfig.PaymentGateway.TimeoutInSeconds,
		bootstrap.Logger,
	)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Vaccine
	vaccineMongoRepository := vaccines.NewVaccineMongoRepository(bootstrap.MongoDB, dbName)
	vaccineUsecase := vaccines.NewVaccineUsecase(vaccineMongoRepository)
	vaccineController := vaccines.NewVaccineController(bootstrap.Logger, vaccineUsecase)

	// Profile
	profileMongoRepository := profiles.NewProfileMongoRepository(bootstrap.MongoDB, dbName)
	profileUsecase := profiles.NewProfileUsecase(profileMongoRepository, vaccineMongoRepository, bootstrap.InternalConfig)
	profileController := profiles.NewProfileController(bootstrap.Logger, profileUsecase, minioStorage, bootstrap.InternalConfig)

	// Sharing
	sharedMemberMongoRepository := sharing.NewSharedMemberMongoRepository(bootstrap.MongoDB, dbName)
	sharingUsecase := sharing.NewSharingUsecase(
		sharedMemberMongoRepository,
		profileMongoRepository,
		redisRepository,
		mailerService,
		diagnosticCenterClient,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	sharingController := sharing.NewSharingController(bootstrap.Logger, sharingUsecase)

	// Report
	reportMongoRepository := reports.NewReportMongoRepository(bootstrap.MongoDB, dbName)
	reportUsecase := reports.NewReportUsecase(
		reportMongoRepository,
		profileMongoRepository,
		minioStorage,
		diagnosticCenterClient,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	reportController := reports.NewReportController(bootstrap.Logger, reportUsecase, bootstrap.InternalConfig)

	// Article
	articlePostgresRepository := articles.NewArticlePostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	articleUsecase := articles.NewArticleUsecase(articlePostgresRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	articleController := articles.NewArticleController(bootstrap.Logger, articleUsecase)

	// Subscription
	subscriptionOrderMongoRepository := subscriptions.NewSubscriptionOrderMongoRepository(bootstrap.MongoDB, dbName)
	subscriptionUsecase := subscriptions.NewSubscriptionUsecase(
		subscriptionOrderMongoRepository,
		profileMongoRepository,
		paymentGateway,
		bootstrap.Logger,
	)
	subscriptionController := subscriptions.NewSubscriptionController(bootstrap.Logger, subscriptionUsecase)

	// Query
	queryMongoRepository := queries.NewQueryMongoRepository(bootstrap.MongoDB, dbName)
	queryUsecase := queries.NewQueryUsecase(queryMongoRepository, mailerService, bootstrap.InternalConfig, bootstrap.Logger)
	queryController := queries.NewQueryController(bootstrap.Logger, queryUsecase)

	// Reference data
	referenceMongoRepository := references.NewReferenceMongoRepository(bootstrap.MongoDB, dbName)
	referenceUsecase := references.NewReferenceUsecase(referenceMongoRepository)
	referenceController := references.NewReferenceController(bootstrap.Logger, referenceUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		profileController,
		sharingController,
		reportController,
		vaccineController,
		articleController,
		subscriptionController,
		queryController,
		referenceController,
	)
}
