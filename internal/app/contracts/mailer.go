package contracts

import (
	"context"
	"famhealth-service/internal/pkg/dto/requests"
)

type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}
