package requests

type ShareMember struct {
	SharerProfileID string `json:"sharerProfileId" validate:"required"`
	MemberID        string `json:"memberId" validate:"required"`
	ReceiverContact string `json:"receiverContact" validate:"required"`
	ReceiverName    string `json:"receiverName" validate:"required"`
	ShareType       string `json:"shareType" validate:"required,share_type"`
}

type AcceptSharedMember struct {
	ShareID           string `json:"shareId" validate:"required"`
	ReceiverProfileID string `json:"receiverProfileId" validate:"required"`
}

// RejectSharedMember carries the bifurcation flag: when the record came from
// the sharedMembers collection the row is deleted, otherwise the embedded
// profile entry is flipped to rejected. Historical data lives in two places.
type RejectSharedMember struct {
	ShareID                string `json:"shareId" validate:"required_if=FromSharedMembersTable true"`
	ReceiverProfileID      string `json:"receiverProfileId" validate:"required_unless=FromSharedMembersTable true"`
	MemberID               string `json:"memberId" validate:"required_unless=FromSharedMembersTable true"`
	FromSharedMembersTable bool   `json:"fromSharedMembersTable"`
}

type UnshareMember struct {
	SharerProfileID      string `json:"sharerProfileId" validate:"required"`
	MemberID             string `json:"memberId" validate:"required"`
	RecipientPhoneNumber string `json:"recipientPhoneNumber" validate:"required"`
}

// ReportShareAction forwards an accept/reject intent to the diagnostic
// center, which owns report-sharing state.
type ReportShareAction struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	ReportID    string `json:"reportId" validate:"required"`
}
