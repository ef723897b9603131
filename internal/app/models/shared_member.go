package models

// SharedMember is a pending or resolved share invitation. One row per grant;
// the lifecycle is pending -> accepted | rejected, both terminal.
type SharedMember struct {
	ID              string `json:"id" bson:"_id,omitempty"`
	MemberID        string `json:"memberId" bson:"memberId"`
	SharerProfileID string `json:"sharerProfileId" bson:"sharerProfileId"`
	ReceiverContact string `json:"receiverContact" bson:"receiverContact"`
	ReceiverName    string `json:"receiverName" bson:"receiverName"`
	Status          string `json:"status" bson:"status"`
	ShareType       string `json:"shareType" bson:"shareType"`
	TimeModel       `bson:",inline"`
}
