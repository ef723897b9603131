package constvars

// Redis key formats
const (
	RedisKeyPendingSharesFmt = "pendingShares:%s"
	RedisKeyArticleListFmt   = "articles:%d:%d"
	RedisKeyArticleFmt       = "article:%d"
)
