package models

type ReportType struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Category string `json:"category" bson:"category"`
}

type Keyword struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	Word         string `json:"word" bson:"word"`
	ReportTypeID string `json:"reportTypeId" bson:"reportTypeId"`
}

type HealthTopic struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	ImageURL    string `json:"imageUrl" bson:"imageUrl"`
}
