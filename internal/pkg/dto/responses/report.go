package responses

type UploadReport struct {
	ReportID string `json:"reportId"`
	FileName string `json:"fileName"`
	URL      string `json:"url"`
	Status   string `json:"status"`
}

// SharedReport is the diagnostic-center's view of a report shared with a
// phone number. The remote service owns this state; we only relay it.
type SharedReport struct {
	ReportID    string `json:"reportId"`
	SharedBy    string `json:"sharedBy"`
	PatientName string `json:"patientName"`
	URL         string `json:"url"`
	Status      string `json:"status"`
	SharedAt    string `json:"sharedAt"`
}
