package models

import "time"

type ReportParameter struct {
	Name           string `json:"name" bson:"name"`
	Value          string `json:"value" bson:"value"`
	Unit           string `json:"unit" bson:"unit"`
	ReferenceRange string `json:"referenceRange" bson:"referenceRange"`
}

type ReportShare struct {
	ProfileID   string    `json:"profileId" bson:"profileId"`
	PhoneNumber string    `json:"phoneNumber" bson:"phoneNumber"`
	SharedAt    time.Time `json:"sharedAt" bson:"sharedAt"`
}

// Report is a diagnostic document record. Recipients of a share only ever
// hold a reference to this row; report data is never copied.
type Report struct {
	ID         string            `json:"id" bson:"_id,omitempty"`
	UserID     string            `json:"userId" bson:"userId"`
	FileName   string            `json:"fileName" bson:"fileName"`
	URL        string            `json:"url" bson:"url"`
	Status     string            `json:"status" bson:"status"`
	Parameters []ReportParameter `json:"parameters" bson:"parameters"`
	SharedWith []ReportShare     `json:"sharedWith" bson:"sharedWith"`
	TimeModel  `bson:",inline"`
}
