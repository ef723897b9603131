package requests

type CreateProfile struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone_number"`
	Email       string `json:"email" validate:"omitempty,email"`
	DOB         string `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup  string `json:"bloodGroup" validate:"omitempty,blood_group"`
}

type GrowthEntryPayload struct {
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	HeightCM float64 `json:"heightCm" validate:"omitempty,gt=0"`
	WeightKG float64 `json:"weightKg" validate:"omitempty,gt=0"`
}

// UpdateProfile is a partial update; zero values mean "leave unchanged"
// except GrowthChart, which replaces the stored list when present.
// IsPediatric is intentionally absent: it is derived, never client-set.
type UpdateProfile struct {
	Name        string               `json:"name" validate:"omitempty,min=2,max=100"`
	Email       string               `json:"email" validate:"omitempty,email"`
	DOB         string               `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Gender      string               `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup  string               `json:"bloodGroup" validate:"omitempty,blood_group"`
	GrowthChart []GrowthEntryPayload `json:"growthChart" validate:"omitempty,dive"`
}

type AddMember struct {
	ProfileID   string `json:"profileId" validate:"required"`
	MemberID    string `json:"memberId" validate:"required"`
	Relation    string `json:"relation" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone_number"`
}

type RemoveMember struct {
	ProfileID string `json:"profileId" validate:"required"`
	MemberID  string `json:"memberId" validate:"required"`
}

type UpdateVaccination struct {
	ProfileID        string `json:"profileId" validate:"required"`
	DoseID           string `json:"doseId" validate:"required"`
	DateAdministered string `json:"dateAdministered" validate:"omitempty,datetime=2006-01-02"`
	Remark           string `json:"remark" validate:"omitempty,max=500"`
	Completed        bool   `json:"completed"`
}
