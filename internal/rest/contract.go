//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	api "github.com/click2025-space/clickers-workspace/internal/generated"
	"github.com/click2025-space/clickers-workspace/internal/model"
)

type DBRepo interface {
	GetAllMessages(ctx context.Context) (*model.MessageList, error)
	SaveMessage(ctx context.Context, message *model.Message) error
	DeleteMessage(ctx context.Context, messageID, requesterID string) error
	GetMembers(ctx context.Context) (*model.ParticipantList, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type FeedPublisher interface {
	Publish(ctx context.Context, channel string, event model.ChangeEvent) error
}

type Validator interface {
	ValidateSendMessage(req *api.SendMessageRequest) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID, channel string) (string, int64, error)
	ValidateConnectToken(tokenString string) (*model.FeedConnectClaims, error)
	ValidateSubscribeToken(tokenString string) (*model.FeedSubscribeClaims, error)
}
