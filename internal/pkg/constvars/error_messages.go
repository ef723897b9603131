package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"alphanum":     "must contain only alphanumeric characters",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"numeric":      "must be a number",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"lt":           "must be less than %s",
	"lte":          "must be less than or equal to %s",
	"url":          "must be a valid URL",
	"uuid":         "must be a valid UUID",
	"datetime":     "must be a valid date in %s format",
	"e164":         "must be a valid phone number with country code",
	"phone_number": "must be a valid phone number with country code",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientProfileNotFound               = "profile not found"
	ErrClientMemberNotFound                = "member not found"
	ErrClientReportNotFound                = "report not found"
	ErrClientShareNotFound                 = "share request not found"
	ErrClientSharedMemberNotFound          = "shared member not found"
	ErrClientPhoneAlreadyRegistered        = "a profile already exists for this phone number"
	ErrClientShareAlreadyPending           = "share already pending for this contact"
	ErrClientInvalidUploadFormat           = "the file you uploaded does not meet the specified standards"
	ErrClientUploadTooLarge                = "the file you uploaded is too large"
	ErrClientDiagnosticCenterFailure       = "the diagnostic center could not process your request"
	ErrClientPaymentFailure                = "payment could not be processed"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevBuildRequest             = "encountering error while building request DTO"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevServerProcess            = "error while processing the request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevUploadValidationFailed     = "upload validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Usecase messages
	ErrDevProfileNotExists           = "profile not exists in our system"
	ErrDevMemberNotExists            = "member reference does not resolve to a profile"
	ErrDevReportNotExists            = "report not exists in our system"
	ErrDevShareNotExists             = "shared member record not exists in our system"
	ErrDevShareAlreadyPending        = "a pending share already exists for this member and contact"
	ErrDevShareAlreadyResolved       = "shared member record is already in a terminal state"
	ErrDevPhoneAlreadyRegistered     = "a profile already exists for this phone number"
	ErrDevSubscriptionOrderNotExists = "subscription order not exists in our system"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthAPIKeyInvalid         = "invalid admin api key"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"
	ErrDevDBFailedToInsertData       = "failed to insert data into database"
	ErrDevDBFailedToUpdateData       = "failed to update data into database"
	ErrDevDBFailedToFindData         = "failed when do find data on database"
	ErrDevDBFailedToDeleteData       = "failed when do delete data on database"
	ErrDevDBFailedToIterateDataset   = "failed when iterating dataset from database"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObject    = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue '%s'"

	// SMTP
	ErrDevSMTPSendEmail = "failed to send email via SMTP client hostname %s"

	// Remote service messages
	ErrDevDiagnosticCenterRequest  = "diagnostic center request failed: %s"
	ErrDevDiagnosticCenterDecode   = "failed to decode diagnostic center response"
	ErrDevAdminServiceRequest      = "admin service request failed: %s"
	ErrDevPaymentGatewayRequest    = "payment gateway request failed: %s"
	ErrDevPaymentGatewayDecode     = "failed to decode payment gateway response"
	ErrDevPaymentSignatureMismatch = "payment signature verification failed"
)

const ResponseUnknown = "UNKNOWN"
