package constvars

// MongoDB collection names
const (
	MongoCollectionProfiles           = "profiles"
	MongoCollectionSharedMembers      = "sharedMembers"
	MongoCollectionReports            = "reports"
	MongoCollectionVaccines           = "vaccines"
	MongoCollectionReportTypes        = "reportTypes"
	MongoCollectionKeywords           = "keywords"
	MongoCollectionHealthTopics       = "healthTopics"
	MongoCollectionQueries            = "queries"
	MongoCollectionSubscriptionOrders = "subscriptionOrders"
)
