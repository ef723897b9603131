package mailer

import (
	"context"
	"famhealth-service/internal/app/contracts"
	smtpdriver "famhealth-service/internal/app/drivers/mailer"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/dto/requests"
	"famhealth-service/internal/pkg/exceptions"
	"fmt"
	"net/smtp"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type mailerService struct {
	Channel *amqp091.Channel
	Client  *smtpdriver.SMTPClient
	Queue   string
}

func NewMailerService(client *smtpdriver.SMTPClient, rabbitMQConnection *amqp091.Connection, queue string) (contracts.MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	return &mailerService{
		Channel: channel,
		Client:  client,
		Queue:   queue,
	}, nil
}

// SendEmail enqueues the payload; the mailer worker drains the queue and
// performs delivery so a slow SMTP hop never blocks a request.
func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	return nil
}

// SendEmailDirect bypasses the queue for callers that need synchronous
// delivery confirmation.
func (s *mailerService) SendEmailDirect(to, subject, body string) error {
	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s\r\n", to, subject, body))
	addr := fmt.Sprintf("%s:%d", s.Client.Host, s.Client.Port)
	err := smtp.SendMail(addr, s.Client.Auth, s.Client.EmailSender, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}
	return nil
}
