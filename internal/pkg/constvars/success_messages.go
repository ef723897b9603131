package constvars

const (
	CreateProfileSuccessMessage      = "Successfully created profile"
	GetProfileSuccessMessage         = "Successfully fetched profile"
	UpdateProfileSuccessMessage      = "Successfully updated profile"
	DeleteProfileSuccessMessage      = "Successfully deleted profile"
	AddMemberSuccessMessage          = "Successfully added member"
	RemoveMemberSuccessMessage       = "Successfully removed member"
	ShareMemberSuccessMessage        = "Successfully shared member"
	GetPendingSharesSuccessMessage   = "Successfully fetched pending shares"
	AcceptSharedMemberSuccessMessage = "Successfully accepted shared member"
	RejectSharedMemberSuccessMessage = "Successfully rejected shared member"
	UnshareMemberSuccessMessage      = "Successfully unshared member"

	UploadReportSuccessMessage = "Successfully uploaded report"
	GetReportsSuccessMessage   = "Successfully fetched reports"
	ShareReportSuccessMessage  = "Successfully shared report"
	AcceptReportSuccessMessage = "Successfully accepted shared report"
	RejectReportSuccessMessage = "Successfully rejected shared report"

	GetVaccinesSuccessMessage       = "Successfully fetched vaccines"
	UpdateVaccinationSuccessMessage = "Successfully updated vaccination record"

	GetArticlesSuccessMessage = "Successfully fetched articles"
	GetArticleSuccessMessage  = "Successfully fetched article"

	CreateOrderSuccessMessage  = "Successfully created subscription order"
	ConfirmOrderSuccessMessage = "Successfully confirmed subscription order"

	CreateQuerySuccessMessage = "Successfully submitted query"

	GetReferenceDataSuccessMessage = "Successfully fetched reference data"

	DoctorVerificationSuccessMessage = "Successfully submitted doctor verification"
	ApproveDoctorSuccessMessage      = "Successfully approved doctor"
)
