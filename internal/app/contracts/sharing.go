package contracts

import (
	"context"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/dto/requests"
	"famhealth-service/internal/pkg/dto/responses"
)

type SharingUsecase interface {
	ShareMember(ctx context.Context, request *requests.ShareMember) (*models.SharedMember, error)
	ListPendingShares(ctx context.Context, phoneNumber string) ([]responses.PendingShare, error)
	AcceptSharedMember(ctx context.Context, request *requests.AcceptSharedMember) error
	RejectSharedMember(ctx context.Context, request *requests.RejectSharedMember) error
	UnshareMember(ctx context.Context, request *requests.UnshareMember) error
	AcceptSharedReport(ctx context.Context, request *requests.ReportShareAction) error
	RejectSharedReport(ctx context.Context, request *requests.ReportShareAction) error
}

type SharedMemberRepository interface {
	Insert(ctx context.Context, sharedMember *models.SharedMember) (shareID string, err error)
	FindByID(ctx context.Context, shareID string) (*models.SharedMember, error)
	FindPendingByReceiverContact(ctx context.Context, receiverContact string) ([]models.SharedMember, error)
	FindPendingByMemberAndReceiver(ctx context.Context, memberID, sharerProfileID, receiverContact string) (*models.SharedMember, error)
	UpdateStatus(ctx context.Context, shareID, status string) error
	DeleteByID(ctx context.Context, shareID string) error
	DeleteByMemberAndReceiver(ctx context.Context, memberID, sharerProfileID, receiverContact string) error
}
