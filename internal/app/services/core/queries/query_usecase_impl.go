package queries

import (
	"context"
	"famhealth-service/internal/app/config"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/dto/requests"
	"famhealth-service/internal/pkg/utils"
	"fmt"

	"go.uber.org/zap"
)

type queryUsecase struct {
	QueryRepository contracts.QueryRepository
	MailerService   contracts.MailerService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewQueryUsecase(
	queryMongoRepository contracts.QueryRepository,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.QueryUsecase {
	return &queryUsecase{
		QueryRepository: queryMongoRepository,
		MailerService:   mailerService,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *queryUsecase) CreateQuery(ctx context.Context, request *requests.CreateQuery) (*models.Query, error) {
	query := &models.Query{
		Name:        request.Name,
		Email:       request.Email,
		PhoneNumber: utils.NormalizePhoneNumber(request.PhoneNumber),
		Subject:     request.Subject,
		Message:     request.Message,
	}
	query.SetCreatedNow()

	queryID, err := uc.QueryRepository.Insert(ctx, query)
	if err != nil {
		return nil, err
	}
	query.ID = queryID

	// Support inbox notification. The query is stored regardless.
	payload := &requests.EmailPayload{
		ReceiverEmail: uc.InternalConfig.App.QueryNotificationEmailReceiver,
		Subject:       fmt.Sprintf("New contact query: %s", request.Subject),
		Body:          fmt.Sprintf("From: %s <%s>\n\n%s", request.Name, request.Email, request.Message),
	}
	err = uc.MailerService.SendEmail(ctx, payload)
	if err != nil {
		uc.Log.Warn("queryUsecase.CreateQuery failed enqueueing notification email",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}

	return query, nil
}
