package constvars

// SharedMember lifecycle. Pending is the only non-terminal state.
const (
	ShareStatusPending  = "pending"
	ShareStatusAccepted = "accepted"
	ShareStatusRejected = "rejected"
)

const (
	ShareTypeDoctor       = "doctor"
	ShareTypeAcquaintance = "acquaintance"
)

// Report lifecycle as owned by this service. Remote (diagnostic-center) report
// sharing has its own states; we only filter on these two when passing through.
const (
	ReportStatusPending  = "pending"
	ReportStatusReviewed = "reviewed"
	ReportStatusBlocked  = "blocked"
	ReportStatusRejected = "rejected"
)

const (
	SubscriptionOrderStatusCreated = "created"
	SubscriptionOrderStatusPaid    = "paid"
	SubscriptionOrderStatusFailed  = "failed"
)

const (
	SubscriptionTierFree    = "free"
	SubscriptionTierPlus    = "plus"
	SubscriptionTierPremium = "premium"
)
