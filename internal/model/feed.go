package model

import "github.com/golang-jwt/jwt/v5"

const (
	// FeedChannel is the push channel carrying row-change notices for the
	// messages collection.
	FeedChannel = "messages"

	ChangeKindInsert = "INSERT"
	ChangeKindUpdate = "UPDATE"
	ChangeKindDelete = "DELETE"
)

// ChangeEvent is a notification-of-change, not a delta: consumers treat
// it as a trigger to re-fetch and never merge its payload into state.
type ChangeEvent struct {
	Kind      string `json:"kind"`
	Table     string `json:"table"`
	MessageID string `json:"message_id,omitempty"`
}

type FeedEvent struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type FeedEventParams struct {
	Channel string      `json:"channel"`
	Data    ChangeEvent `json:"data"`
}

type FeedConnectClaims struct {
	jwt.RegisteredClaims
}

type FeedSubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	UserID string `json:"user_id"`
}
