package model

const (
	NotificationTagBroadcast    = "broadcast"
	NotificationTagDirectPrefix = "direct-"
)

// Notification is what the dispatcher hands to the notification surface.
// Tag lets the OS coalesce repeats per conversation; Channel is the
// conversation to open when the notification is activated.
type Notification struct {
	Title   string
	Body    string
	Icon    string
	Tag     string
	Channel string
}
