package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingProfileIDKey   = "profile_id"
	LoggingMemberIDKey    = "member_id"
	LoggingReportIDKey    = "report_id"
	LoggingPhoneNumberKey = "phone_number"
	LoggingOrderIDKey     = "order_id"
	LoggingDataKey        = "data"
	LoggingResponseKey    = "response"
	LoggingRequestKey     = "request"
)
