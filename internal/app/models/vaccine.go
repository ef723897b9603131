package models

// Duration is the recommended administration window for a dose.
type Duration struct {
	Label       string `json:"label" bson:"label"`
	StartMonths int    `json:"startMonths" bson:"startMonths"`
	EndMonths   int    `json:"endMonths" bson:"endMonths"`
}

type Dose struct {
	DoseID   string   `json:"doseId" bson:"doseId"`
	Label    string   `json:"label" bson:"label"`
	Sequence int      `json:"sequence" bson:"sequence"`
	Duration Duration `json:"duration" bson:"duration"`
}

type Vaccine struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Mandatory   bool   `json:"mandatory" bson:"mandatory"`
	Doses       []Dose `json:"doses" bson:"doses"`
}
