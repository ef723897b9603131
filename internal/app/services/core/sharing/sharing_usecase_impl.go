package sharing

import (
	"context"
	"famhealth-service/internal/app/config"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/dto/requests"
	"famhealth-service/internal/pkg/dto/responses"
	"famhealth-service/internal/pkg/exceptions"
	"famhealth-service/internal/pkg/utils"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type sharingUsecase struct {
	SharedMemberRepository contracts.SharedMemberRepository
	ProfileRepository      contracts.ProfileRepository
	RedisRepository        contracts.RedisRepository
	MailerService          contracts.MailerService
	DiagnosticCenter       contracts.DiagnosticCenterClient
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewSharingUsecase(
	sharedMemberMongoRepository contracts.SharedMemberRepository,
	profileMongoRepository contracts.ProfileRepository,
	redisRepository contracts.RedisRepository,
	mailerService contracts.MailerService,
	diagnosticCenterClient contracts.DiagnosticCenterClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SharingUsecase {
	return &sharingUsecase{
		SharedMemberRepository: sharedMemberMongoRepository,
		ProfileRepository:      profileMongoRepository,
		RedisRepository:        redisRepository,
		MailerService:          mailerService,
		DiagnosticCenter:       diagnosticCenterClient,
		InternalConfig:         internalConfig,
		Log:                    logger,
	}
}

func (uc *sharingUsecase) ShareMember(ctx context.Context, request *requests.ShareMember) (*models.SharedMember, error) {
	sharerProfile, err := uc.ProfileRepository.FindByID(ctx, request.SharerProfileID)
	if err != nil {
		return nil, err
	}
	if sharerProfile == nil {
		return nil, exceptions.ErrProfileNotExist(nil)
	}

	if sharerProfile.FindMember(request.MemberID) == nil {
		return nil, exceptions.ErrMemberNotExist(nil)
	}

	receiverContact := utils.NormalizePhoneNumber(request.ReceiverContact)

	existingShare, err := uc.SharedMemberRepository.FindPendingByMemberAndReceiver(ctx, request.MemberID, request.SharerProfileID, receiverContact)
	if err != nil {
		return nil, err
	}
	if existingShare != nil {
		return nil, exceptions.ErrShareAlreadyPending(nil)
	}

	sharedMember := &models.SharedMember{
		MemberID:        request.MemberID,
		SharerProfileID: request.SharerProfileID,
		ReceiverContact: receiverContact,
		ReceiverName:    request.ReceiverName,
		Status:          constvars.ShareStatusPending,
		ShareType:       request.ShareType,
	}
	sharedMember.SetCreatedNow()

	shareID, err := uc.SharedMemberRepository.Insert(ctx, sharedMember)
	if err != nil {
		return nil, err
	}
	sharedMember.ID = shareID

	uc.invalidatePendingSharesCache(ctx, receiverContact)
	uc.notifyReceiver(ctx, sharerProfile, receiverContact)

	return sharedMember, nil
}

func (uc *sharingUsecase) ListPendingShares(ctx context.Context, phoneNumber string) ([]responses.PendingShare, error) {
	receiverContact := utils.NormalizePhoneNumber(phoneNumber)
	cacheKey := fmt.Sprintf(constvars.RedisKeyPendingSharesFmt, receiverContact)

	cached := []responses.PendingShare{}
	found, err := uc.RedisRepository.Get(ctx, cacheKey, &cached)
	if err != nil {
		uc.Log.Warn("sharingUsecase.ListPendingShares cache read failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
	if found {
		return cached, nil
	}

	sharedMembers, err := uc.SharedMemberRepository.FindPendingByReceiverContact(ctx, receiverContact)
	if err != nil {
		return nil, err
	}

	pendingShares := make([]responses.PendingShare, 0, len(sharedMembers))
	for _, sharedMember := range sharedMembers {
		pendingShares = append(pendingShares, responses.PendingShare{
			ShareID:         sharedMember.ID,
			MemberID:        sharedMember.MemberID,
			ReceiverContact: sharedMember.ReceiverContact,
			ReceiverName:    sharedMember.ReceiverName,
			ShareType:       sharedMember.ShareType,
			SharedAt:        sharedMember.CreatedAt,
			Sharer:          uc.resolveProfileSummary(ctx, sharedMember.SharerProfileID),
			Member:          uc.resolveProfileSummary(ctx, sharedMember.MemberID),
		})
	}

	expiration := time.Duration(uc.InternalConfig.App.PendingShareCacheExpInMinute) * time.Minute
	err = uc.RedisRepository.Set(ctx, cacheKey, pendingShares, expiration)
	if err != nil {
		uc.Log.Warn("sharingUsecase.ListPendingShares cache write failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}

	return pendingShares, nil
}

func (uc *sharingUsecase) AcceptSharedMember(ctx context.Context, request *requests.AcceptSharedMember) error {
	sharedMember, err := uc.SharedMemberRepository.FindByID(ctx, request.ShareID)
	if err != nil {
		return err
	}
	if sharedMember == nil {
		return exceptions.ErrShareNotExist(nil)
	}
	if sharedMember.Status != constvars.ShareStatusPending {
		return exceptions.ErrShareAlreadyResolved(nil)
	}

	receiverProfile, err := uc.ProfileRepository.FindByID(ctx, request.ReceiverProfileID)
	if err != nil {
		return err
	}
	if receiverProfile == nil {
		return exceptions.ErrProfileNotExist(nil)
	}

	err = uc.SharedMemberRepository.UpdateStatus(ctx, request.ShareID, constvars.ShareStatusAccepted)
	if err != nil {
		return err
	}

	now := time.Now()

	receiverProfile.SharedMembers = append(receiverProfile.SharedMembers, models.SharedMemberRef{
		MemberID: sharedMember.MemberID,
		SharedBy: sharedMember.SharerProfileID,
		Status:   constvars.ShareStatusAccepted,
		SharedAt: now,
	})
	receiverProfile.SetUpdatedNow()

	err = uc.ProfileRepository.UpdateProfile(ctx, receiverProfile)
	if err != nil {
		return err
	}

	// The sharer-side projection is best effort; the share row already
	// carries the accepted state.
	sharerProfile, err := uc.ProfileRepository.FindByID(ctx, sharedMember.SharerProfileID)
	if err != nil || sharerProfile == nil {
		uc.Log.Warn("sharingUsecase.AcceptSharedMember sharer profile not resolvable",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingProfileIDKey, sharedMember.SharerProfileID),
			zap.Error(err),
		)
	} else if member := sharerProfile.FindMember(sharedMember.MemberID); member != nil {
		member.SharedWith = append(member.SharedWith, models.MemberShare{
			ProfileID:   request.ReceiverProfileID,
			PhoneNumber: sharedMember.ReceiverContact,
			SharedAt:    now,
		})
		sharerProfile.SetUpdatedNow()
		err = uc.ProfileRepository.UpdateProfile(ctx, sharerProfile)
		if err != nil {
			uc.Log.Warn("sharingUsecase.AcceptSharedMember failed updating sharer projection",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.Error(err),
			)
		}
	}

	uc.invalidatePendingSharesCache(ctx, sharedMember.ReceiverContact)
	return nil
}

// RejectSharedMember handles both storage shapes a pending share can live in.
// A share row is deleted outright; an embedded profile entry is flipped to
// rejected so the recipient keeps a record of having declined.
func (uc *sharingUsecase) RejectSharedMember(ctx context.Context, request *requests.RejectSharedMember) error {
	if request.FromSharedMembersTable {
		sharedMember, err := uc.SharedMemberRepository.FindByID(ctx, request.ShareID)
		if err != nil {
			return err
		}
		if sharedMember == nil {
			return exceptions.ErrShareNotExist(nil)
		}
		if sharedMember.Status != constvars.ShareStatusPending {
			return exceptions.ErrShareAlreadyResolved(nil)
		}

		err = uc.SharedMemberRepository.DeleteByID(ctx, request.ShareID)
		if err != nil {
			return err
		}

		uc.invalidatePendingSharesCache(ctx, sharedMember.ReceiverContact)
		return nil
	}

	receiverProfile, err := uc.ProfileRepository.FindByID(ctx, request.ReceiverProfileID)
	if err != nil {
		return err
	}
	if receiverProfile == nil {
		return exceptions.ErrProfileNotExist(nil)
	}

	flipped := false
	for i := range receiverProfile.SharedMembers {
		if receiverProfile.SharedMembers[i].MemberID == request.MemberID {
			receiverProfile.SharedMembers[i].Status = constvars.ShareStatusRejected
			flipped = true
		}
	}
	if !flipped {
		return exceptions.ErrShareNotExist(nil)
	}

	receiverProfile.SetUpdatedNow()
	return uc.ProfileRepository.UpdateProfile(ctx, receiverProfile)
}

// UnshareMember revokes a grant across all three places it may live. The
// steps are independent on purpose: a missing row or an already-cleaned
// profile must not block cleanup of the rest.
func (uc *sharingUsecase) UnshareMember(ctx context.Context, request *requests.UnshareMember) error {
	requestID := utils.GetRequestID(ctx)
	recipientPhone := utils.NormalizePhoneNumber(request.RecipientPhoneNumber)

	err := uc.SharedMemberRepository.DeleteByMemberAndReceiver(ctx, request.MemberID, request.SharerProfileID, recipientPhone)
	if err != nil {
		uc.Log.Warn("sharingUsecase.UnshareMember failed deleting share rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	sharerProfile, err := uc.ProfileRepository.FindByID(ctx, request.SharerProfileID)
	if err != nil || sharerProfile == nil {
		uc.Log.Warn("sharingUsecase.UnshareMember sharer profile not resolvable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProfileIDKey, request.SharerProfileID),
			zap.Error(err),
		)
	} else if member := sharerProfile.FindMember(request.MemberID); member != nil {
		kept := make([]models.MemberShare, 0, len(member.SharedWith))
		for _, share := range member.SharedWith {
			if share.PhoneNumber == recipientPhone {
				continue
			}
			kept = append(kept, share)
		}
		member.SharedWith = kept
		sharerProfile.SetUpdatedNow()
		err = uc.ProfileRepository.UpdateProfile(ctx, sharerProfile)
		if err != nil {
			uc.Log.Warn("sharingUsecase.UnshareMember failed updating sharer profile",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	recipientProfile, err := uc.ProfileRepository.FindByPhoneNumber(ctx, recipientPhone)
	if err != nil || recipientProfile == nil {
		uc.Log.Warn("sharingUsecase.UnshareMember recipient profile not resolvable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPhoneNumberKey, recipientPhone),
			zap.Error(err),
		)
	} else {
		kept := make([]models.SharedMemberRef, 0, len(recipientProfile.SharedMembers))
		for _, ref := range recipientProfile.SharedMembers {
			if ref.MemberID == request.MemberID && ref.SharedBy == request.SharerProfileID {
				continue
			}
			kept = append(kept, ref)
		}
		recipientProfile.SharedMembers = kept
		recipientProfile.SetUpdatedNow()
		err = uc.ProfileRepository.UpdateProfile(ctx, recipientProfile)
		if err != nil {
			uc.Log.Warn("sharingUsecase.UnshareMember failed updating recipient profile",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	uc.invalidatePendingSharesCache(ctx, recipientPhone)
	return nil
}

func (uc *sharingUsecase) AcceptSharedReport(ctx context.Context, request *requests.ReportShareAction) error {
	phoneNumber := utils.NormalizePhoneNumber(request.PhoneNumber)
	return uc.DiagnosticCenter.AcceptSharedReport(ctx, phoneNumber, request.ReportID)
}

func (uc *sharingUsecase) RejectSharedReport(ctx context.Context, request *requests.ReportShareAction) error {
	phoneNumber := utils.NormalizePhoneNumber(request.PhoneNumber)
	return uc.DiagnosticCenter.RejectSharedReport(ctx, phoneNumber, request.ReportID)
}

func (uc *sharingUsecase) resolveProfileSummary(ctx context.Context, profileID string) *responses.ProfileSummary {
	profile, err := uc.ProfileRepository.FindByID(ctx, profileID)
	if err != nil || profile == nil {
		return nil
	}
	return &responses.ProfileSummary{
		ProfileID:   profile.ID,
		Name:        profile.Name,
		PhoneNumber: profile.PhoneNumber,
		Gender:      profile.Gender,
		IsPediatric: profile.IsPediatric,
	}
}

func (uc *sharingUsecase) invalidatePendingSharesCache(ctx context.Context, receiverContact string) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyPendingSharesFmt, receiverContact)
	err := uc.RedisRepository.Delete(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("sharingUsecase failed invalidating pending shares cache",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func (uc *sharingUsecase) notifyReceiver(ctx context.Context, sharerProfile *models.Profile, receiverContact string) {
	receiverProfile, err := uc.ProfileRepository.FindByPhoneNumber(ctx, receiverContact)
	if err != nil || receiverProfile == nil || receiverProfile.Email == "" {
		return
	}

	payload := &requests.EmailPayload{
		ReceiverEmail: receiverProfile.Email,
		Subject:       "A family member has been shared with you",
		Body:          fmt.Sprintf("%s shared a family member's health record with you. Open the app to accept or decline.", sharerProfile.Name),
	}
	err = uc.MailerService.SendEmail(ctx, payload)
	if err != nil {
		uc.Log.Warn("sharingUsecase failed enqueueing share notification email",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}
