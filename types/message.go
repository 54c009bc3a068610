package types

import (
	"time"

	"github.com/hicampus/hicampus/textutil"
	"github.com/hicampus/hicampus/validator"
)

const maxMessageLength = 2000

type Message struct {
	ID             int64     `json:"id" db:"id"`
	ConversationID int64     `json:"-" db:"conversation_id"`
	SenderUserID   int64     `json:"sender_user_id" db:"sender_user_id"`
	Content        string    `json:"content" db:"content"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

type SendMessage struct {
	ConversationID int64
	Content        string `json:"content"`

	loggedInUserID int64
}

func (in *SendMessage) SetLoggedInUserID(userID int64) {
	in.loggedInUserID = userID
}

func (in SendMessage) LoggedInUserID() int64 {
	return in.loggedInUserID
}

func (in *SendMessage) Validate() error {
	v := validator.New()

	in.Content = textutil.SmartTrim(in.Content)

	validConversationID(v, in.ConversationID)
	v.Check(in.Content != "", "content", "content required")
	v.Check(textutil.RuneCountAtMost(in.Content, maxMessageLength), "content", "content must be at most 2000 characters")

	return v.AsError()
}

type MessageCreated struct {
	MessageID int64     `json:"message_id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type ListMessages struct {
	ConversationID int64

	loggedInUserID int64
}

func (in *ListMessages) SetLoggedInUserID(userID int64) {
	in.loggedInUserID = userID
}

func (in ListMessages) LoggedInUserID() int64 {
	return in.loggedInUserID
}

func (in *ListMessages) Validate() error {
	v := validator.New()
	validConversationID(v, in.ConversationID)
	return v.AsError()
}
