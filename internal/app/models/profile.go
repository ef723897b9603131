package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// MemberShare records one recipient a member has been shared with.
type MemberShare struct {
	ProfileID   string    `json:"profileId" bson:"profileId"`
	PhoneNumber string    `json:"phoneNumber" bson:"phoneNumber"`
	SharedAt    time.Time `json:"sharedAt" bson:"sharedAt"`
}

// Member is an owned reference from a profile to another profile.
// MemberID must resolve to an existing Profile.
type Member struct {
	MemberID    string        `json:"memberId" bson:"memberId"`
	Relation    string        `json:"relation" bson:"relation"`
	PhoneNumber string        `json:"phoneNumber" bson:"phoneNumber"`
	SharedWith  []MemberShare `json:"sharedWith" bson:"sharedWith"`
}

// SharedMemberRef is the recipient-side projection of an accepted share.
// The sharedMembers collection stays authoritative for the lifecycle; this
// embedded view exists so a profile read needs no second query.
type SharedMemberRef struct {
	MemberID string    `json:"memberId" bson:"memberId"`
	SharedBy string    `json:"sharedBy" bson:"sharedBy"`
	Status   string    `json:"status" bson:"status"`
	SharedAt time.Time `json:"sharedAt" bson:"sharedAt"`
}

type DoseCompletion struct {
	DateAdministered *time.Time `json:"dateAdministered,omitempty" bson:"dateAdministered,omitempty"`
	Remark           string     `json:"remark" bson:"remark"`
	Completed        bool       `json:"completed" bson:"completed"`
}

type GrowthEntry struct {
	Date     time.Time `json:"date" bson:"date"`
	HeightCM float64   `json:"heightCm" bson:"heightCm"`
	WeightKG float64   `json:"weightKg" bson:"weightKg"`
}

type Profile struct {
	ID                string                    `json:"id" bson:"_id,omitempty"`
	Name              string                    `json:"name" bson:"name"`
	PhoneNumber       string                    `json:"phoneNumber" bson:"phoneNumber"`
	Email             string                    `json:"email" bson:"email"`
	DOB               time.Time                 `json:"dob" bson:"dob"`
	Gender            string                    `json:"gender" bson:"gender"`
	BloodGroup        string                    `json:"bloodGroup" bson:"bloodGroup"`
	IsPediatric       bool                      `json:"isPediatric" bson:"isPediatric"`
	Members           []Member                  `json:"members" bson:"members"`
	Reports           []string                  `json:"reports" bson:"reports"`
	SharedMembers     []SharedMemberRef         `json:"sharedMembers" bson:"sharedMembers"`
	SubscriptionTier  string                    `json:"subscriptionTier" bson:"subscriptionTier"`
	IsDoctor          bool                      `json:"isDoctor" bson:"isDoctor"`
	DoctorApproved    bool                      `json:"doctorApproved" bson:"doctorApproved"`
	CertificateURL    string                    `json:"certificateUrl,omitempty" bson:"certificateUrl,omitempty"`
	VaccineCompletion map[string]DoseCompletion `json:"vaccineCompletion" bson:"vaccineCompletion"`
	GrowthChart       []GrowthEntry             `json:"growthChart" bson:"growthChart"`
	TimeModel         `bson:",inline"`
}

// ConvertToBsonM builds the $set document for a full-profile update.
// ID is excluded; _id never changes.
func (p *Profile) ConvertToBsonM() bson.M {
	return bson.M{
		"name":              p.Name,
		"phoneNumber":       p.PhoneNumber,
		"email":             p.Email,
		"dob":               p.DOB,
		"gender":            p.Gender,
		"bloodGroup":        p.BloodGroup,
		"isPediatric":       p.IsPediatric,
		"members":           p.Members,
		"reports":           p.Reports,
		"sharedMembers":     p.SharedMembers,
		"subscriptionTier":  p.SubscriptionTier,
		"isDoctor":          p.IsDoctor,
		"doctorApproved":    p.DoctorApproved,
		"certificateUrl":    p.CertificateURL,
		"vaccineCompletion": p.VaccineCompletion,
		"growthChart":       p.GrowthChart,
		"updatedAt":         time.Now(),
	}
}

func (p *Profile) FindMember(memberID string) *Member {
	for i := range p.Members {
		if p.Members[i].MemberID == memberID {
			return &p.Members[i]
		}
	}
	return nil
}
