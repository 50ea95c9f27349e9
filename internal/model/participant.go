package model

type ParticipantList []Participant

// Participant is a read-only projection of a members directory entry.
type Participant struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Role      string `db:"role" json:"role"`
	AvatarURL string `db:"avatar_url" json:"avatar_url"`
	Status    string `db:"status" json:"status"`
}

type ParticipantUpdate struct {
	ID        string  `json:"id"`
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Status    *string `json:"status,omitempty"`
}
