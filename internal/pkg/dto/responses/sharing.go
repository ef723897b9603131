package responses

import "time"

// ProfileSummary is the enrichment attached to a pending share. Either
// pointer may be nil when the underlying profile no longer resolves;
// partial results are preferred over failure.
type ProfileSummary struct {
	ProfileID   string `json:"profileId"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Gender      string `json:"gender"`
	IsPediatric bool   `json:"isPediatric"`
}

type PendingShare struct {
	ShareID         string          `json:"shareId"`
	MemberID        string          `json:"memberId"`
	ReceiverContact string          `json:"receiverContact"`
	ReceiverName    string          `json:"receiverName"`
	ShareType       string          `json:"shareType"`
	SharedAt        time.Time       `json:"sharedAt"`
	Sharer          *ProfileSummary `json:"sharer"`
	Member          *ProfileSummary `json:"member"`
}
