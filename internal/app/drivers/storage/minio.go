package storage

import (
	"famhealth-service/internal/app/config"
	"fmt"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinio only constructs the client; report and certificate buckets are
// provisioned out of band.
func NewMinio(driverConfig *config.DriverConfig) *minio.Client {
	endpoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize minio client: %s", err.Error())
	}

	log.Println("Successfully connected to minio")
	return minioClient
}
