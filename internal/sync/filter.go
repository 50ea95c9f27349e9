package sync

import (
	"github.com/samber/lo"

	"github.com/click2025-space/clickers-workspace/internal/model"
)

// visible selects the subsequence of messages belonging to the selected
// conversation, preserving the ascending order of the input.
func visible(all model.MessageList, userID, channel string) model.MessageList {
	return lo.Filter(all, func(m model.Message, _ int) bool {
		return m.InConversation(userID, channel)
	})
}
