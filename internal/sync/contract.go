//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package sync

import (
	"context"

	"github.com/click2025-space/clickers-workspace/internal/model"
)

// MessageStore is the persistence collaborator. The caller never assumes
// an ordering from List and sorts on its side.
type MessageStore interface {
	List(ctx context.Context) (model.MessageList, error)
	Create(ctx context.Context, channel string, body model.Body) (*model.Message, error)
	Delete(ctx context.Context, messageID string) error
}

type Directory interface {
	ListParticipants(ctx context.Context) ([]model.Participant, error)
}

type Notifier interface {
	Notify(n model.Notification) error
}

// FocusProbe reports whether the viewer currently has input focus on the
// application; focus gates the active-conversation suppression rule.
type FocusProbe interface {
	Focused() bool
}
