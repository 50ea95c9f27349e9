package sync

// Session carries the identity the synchronizer acts as.
type Session struct {
	UserID string
}
