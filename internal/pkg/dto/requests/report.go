package requests

type ShareReport struct {
	ReportID    string `json:"reportId" validate:"required"`
	ProfileID   string `json:"profileId" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone_number"`
}

type ReportsByMembers struct {
	MemberIDs []string `json:"memberIds" validate:"required,min=1,dive,required"`
}

type ReportsByIDs struct {
	ReportIDs []string `json:"reportIds" validate:"required,min=1,dive,required"`
}
