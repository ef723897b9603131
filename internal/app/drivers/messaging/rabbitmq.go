package messaging

import (
	"famhealth-service/internal/app/config"
	"fmt"
	"log"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	// Named connection so the broker UI can tell this service apart from the
	// mail worker consuming the same queue.
	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName("famhealth-service")

	conn, err := amqp091.DialConfig(connectionString, amqp091.Config{Properties: properties})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
