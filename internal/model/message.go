package model

import (
	"strings"
	"time"
)

const (
	// BroadcastChannel is the reserved sentinel for the shared all-members
	// conversation. Any other channel value is a participant id and marks
	// a 1:1 conversation.
	BroadcastChannel = "global"

	// ProvisionalIDPrefix keeps client-assigned ids outside the
	// server-assigned uuid space until the create call is confirmed.
	ProvisionalIDPrefix = "local-"
)

type MessageList []Message

type Message struct {
	ID       string    `db:"id" json:"id"`
	SenderID string    `db:"sender_id" json:"sender_id"`
	Channel  string    `db:"channel" json:"channel"`
	Body     Body      `db:"-" json:"-"`
	SentAt   time.Time `db:"sent_at" json:"sent_at"`
	// Seq is assigned by the store on insert and breaks ties between
	// messages sharing a timestamp. Zero while provisional.
	Seq int64 `db:"seq" json:"seq"`
}

func (m Message) Provisional() bool {
	return strings.HasPrefix(m.ID, ProvisionalIDPrefix)
}

// InConversation reports whether the message belongs to the conversation
// selected by channel, from the point of view of userID. The broadcast
// conversation keeps broadcast messages only; a direct conversation keeps
// both directions of the (userID, peer) pairing.
func (m Message) InConversation(userID, channel string) bool {
	if channel == BroadcastChannel {
		return m.Channel == BroadcastChannel
	}
	return (m.SenderID == userID && m.Channel == channel) ||
		(m.SenderID == channel && m.Channel == userID)
}

// ConversationFor returns the conversation selector this message lands in
// for userID: the broadcast sentinel, or the peer's id.
func (m Message) ConversationFor(userID string) string {
	if m.Channel == BroadcastChannel {
		return BroadcastChannel
	}
	if m.SenderID == userID {
		return m.Channel
	}
	return m.SenderID
}
