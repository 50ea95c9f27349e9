package notify

import (
	"github.com/click2025-space/clickers-workspace/internal/model"
)

const (
	// UnknownUserName is the display-name fallback on a directory miss.
	UnknownUserName = "Unknown User"

	attachmentPreview = "📎 Sent a file"
	previewLimit      = 50
	previewEllipsis   = "…"
)

// ShouldNotify applies the suppression rules: never for the viewer's own
// messages, and never while the viewer has focus on the conversation the
// sender occupies — viewing the broadcast channel covers broadcast
// messages, viewing a direct chat covers everything from that peer.
func ShouldNotify(m model.Message, viewerID, selectedChannel string, focused bool) bool {
	if m.SenderID == viewerID {
		return false
	}

	if focused {
		if selectedChannel == model.BroadcastChannel {
			if m.Channel == model.BroadcastChannel {
				return false
			}
		} else if m.SenderID == selectedChannel {
			return false
		}
	}

	return true
}

// Render builds the notification for a message. sender may be the zero
// Participant when the directory has no entry for the sender.
func Render(m model.Message, sender model.Participant, viewerID string) model.Notification {
	name := sender.Name
	if name == "" {
		name = UnknownUserName
	}

	conversation := m.ConversationFor(viewerID)

	tag := model.NotificationTagBroadcast
	if conversation != model.BroadcastChannel {
		tag = model.NotificationTagDirectPrefix + conversation
	}

	return model.Notification{
		Title:   name,
		Body:    preview(m.Body),
		Icon:    sender.AvatarURL,
		Tag:     tag,
		Channel: conversation,
	}
}

func preview(body model.Body) string {
	switch b := body.(type) {
	case model.AttachmentBody:
		return attachmentPreview
	case model.TextBody:
		runes := []rune(b.Text)
		if len(runes) <= previewLimit {
			return b.Text
		}
		return string(runes[:previewLimit]) + previewEllipsis
	default:
		return ""
	}
}
