package sync

import (
	"sort"

	"github.com/samber/lo"

	"github.com/click2025-space/clickers-workspace/internal/model"
)

// merge folds a freshly fetched server snapshot together with the
// provisional records still awaiting confirmation. The snapshot is
// authoritative for everything it contains; a provisional survives only
// while no server record carries its id.
func merge(server, pending model.MessageList) model.MessageList {
	merged := make(model.MessageList, 0, len(server)+len(pending))
	merged = append(merged, server...)

	for _, p := range pending {
		if !containsID(server, p.ID) {
			merged = append(merged, p)
		}
	}

	sortMessages(merged)
	return merged
}

func containsID(list model.MessageList, id string) bool {
	return lo.ContainsBy(list, func(m model.Message) bool {
		return m.ID == id
	})
}

// sortMessages orders ascending by timestamp, then by the store-assigned
// sequence, then by id. Provisional records carry seq 0 until confirmed.
func sortMessages(list model.MessageList) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if !a.SentAt.Equal(b.SentAt) {
			return a.SentAt.Before(b.SentAt)
		}
		if a.Seq != b.Seq {
			return a.Seq < b.Seq
		}
		return a.ID < b.ID
	})
}
