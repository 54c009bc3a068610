package types

import (
	"time"

	"github.com/hicampus/hicampus/validator"
)

type Conversation struct {
	ID        int64     `json:"id" db:"id"`
	MatchID   int64     `json:"match_id" db:"match_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Participant struct {
	ID             int64      `json:"id" db:"id"`
	ConversationID int64      `json:"conversation_id" db:"conversation_id"`
	UserID         int64      `json:"user_id" db:"user_id"`
	LastReadAt     *time.Time `json:"last_read_at" db:"last_read_at"`
}

// ConversationSummary is a conversation as seen by one of its two participants.
type ConversationSummary struct {
	ID         int64       `json:"id" db:"id"`
	MatchID    int64       `json:"match_id" db:"match_id"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	LastReadAt *time.Time  `json:"last_read_at" db:"last_read_at"`
	OtherUser  UserPreview `json:"other_user" db:"other_user"`
}

const ConversationsLimit = 50

type ListConversations struct {
	loggedInUserID int64
}

func (in *ListConversations) SetLoggedInUserID(userID int64) {
	in.loggedInUserID = userID
}

func (in ListConversations) LoggedInUserID() int64 {
	return in.loggedInUserID
}

func validConversationID(v *validator.Validator, conversationID int64) {
	v.Check(conversationID > 0, "conversation_id", "invalid conversation_id")
}
