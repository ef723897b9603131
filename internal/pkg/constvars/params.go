package constvars

const (
	URLParamProfileID = "profile_id"
	URLParamArticleID = "article_id"
	URLParamReportID  = "report_id"
)

const (
	URLQueryParamPhoneNumber = "phoneNumber"
	URLQueryParamUserID      = "userId"
	URLQueryParamPage        = "page"
	URLQueryParamPageSize    = "pageSize"
)

const CONTEXT_REQUEST_ID_KEY = "requestID"
const ContextUserIDKey = "userID"
const ContextPhoneNumberKey = "phoneNumber"
