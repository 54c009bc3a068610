package types

import "time"

type Created struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UserPreview is the public face of a user: enough to address them
// and nothing that identifies them outside the platform.
type UserPreview struct {
	ID       int64  `json:"id" db:"id"`
	Nickname string `json:"nickname" db:"nickname"`
}
