package utils

import (
	"famhealth-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreateProfileRequest(request *requests.CreateProfile) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.PhoneNumber = NormalizePhoneNumber(request.PhoneNumber)
	request.Gender = strings.ToLower(strings.TrimSpace(request.Gender))
	request.BloodGroup = strings.ToUpper(strings.TrimSpace(request.BloodGroup))
}

func SanitizeUpdateProfileRequest(request *requests.UpdateProfile) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Gender = strings.ToLower(strings.TrimSpace(request.Gender))
	request.BloodGroup = strings.ToUpper(strings.TrimSpace(request.BloodGroup))
}

func SanitizeShareMemberRequest(request *requests.ShareMember) {
	request.SharerProfileID = strings.TrimSpace(request.SharerProfileID)
	request.MemberID = strings.TrimSpace(request.MemberID)
	request.ReceiverName = strings.TrimSpace(request.ReceiverName)
	request.ReceiverContact = NormalizePhoneNumber(request.ReceiverContact)
	request.ShareType = strings.ToLower(strings.TrimSpace(request.ShareType))
}

func SanitizeAddMemberRequest(request *requests.AddMember) {
	request.ProfileID = strings.TrimSpace(request.ProfileID)
	request.MemberID = strings.TrimSpace(request.MemberID)
	request.Relation = strings.ToLower(strings.TrimSpace(request.Relation))
	request.PhoneNumber = NormalizePhoneNumber(request.PhoneNumber)
}

func SanitizeUnshareMemberRequest(request *requests.UnshareMember) {
	request.SharerProfileID = strings.TrimSpace(request.SharerProfileID)
	request.MemberID = strings.TrimSpace(request.MemberID)
	request.RecipientPhoneNumber = NormalizePhoneNumber(request.RecipientPhoneNumber)
}

func SanitizeCreateQueryRequest(request *requests.CreateQuery) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	if request.PhoneNumber != "" {
		request.PhoneNumber = NormalizePhoneNumber(request.PhoneNumber)
	}
	request.Subject = strings.TrimSpace(request.Subject)
	request.Message = strings.TrimSpace(request.Message)
}
