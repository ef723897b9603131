package models

type Query struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email" bson:"email"`
	PhoneNumber string `json:"phoneNumber" bson:"phoneNumber"`
	Subject     string `json:"subject" bson:"subject"`
	Message     string `json:"message" bson:"message"`
	TimeModel   `bson:",inline"`
}
