package types

import (
	"time"

	"github.com/hicampus/hicampus/textutil"
	"github.com/hicampus/hicampus/validator"
)

const (
	PostsLimit      = 20
	maxTitleLength  = 200
	maxPostLength   = 5000
	AnonymousAuthor = "anonymous"
)

type Board struct {
	ID          int64   `json:"id" db:"id"`
	SchoolID    int64   `json:"school_id" db:"school_id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
}

type Post struct {
	ID           int64     `json:"id" db:"id"`
	BoardID      int64     `json:"board_id" db:"board_id"`
	UserID       *int64    `json:"user_id" db:"user_id"`
	Nickname     string    `json:"nickname" db:"nickname"`
	Title        string    `json:"title" db:"title"`
	Content      string    `json:"content" db:"content"`
	OriginalLang *string   `json:"original_lang" db:"original_lang"`
	IsAnonymous  bool      `json:"is_anonymous" db:"is_anonymous"`
	LikeCount    int32     `json:"like_count" db:"like_count"`
	CommentCount int32     `json:"comment_count" db:"comment_count"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type ListPosts struct {
	BoardID int64
}

func (in *ListPosts) Validate() error {
	v := validator.New()
	v.Check(in.BoardID > 0, "board_id", "invalid board_id")
	return v.AsError()
}

type CreatePost struct {
	BoardID     int64
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsAnonymous bool   `json:"is_anonymous"`

	loggedInUserID int64
	originalLang   string
}

func (in *CreatePost) SetLoggedInUserID(userID int64) {
	in.loggedInUserID = userID
}

func (in CreatePost) LoggedInUserID() int64 {
	return in.loggedInUserID
}

// SetOriginalLang records the author's main language at posting time.
func (in *CreatePost) SetOriginalLang(lang string) {
	in.originalLang = lang
}

func (in CreatePost) OriginalLang() string {
	return in.originalLang
}

func (in *CreatePost) Validate() error {
	v := validator.New()

	in.Title = textutil.SmartTrim(in.Title)
	in.Content = textutil.SmartTrim(in.Content)

	v.Check(in.BoardID > 0, "board_id", "invalid board_id")
	v.Check(in.Title != "", "title", "title required")
	v.Check(textutil.RuneCountAtMost(in.Title, maxTitleLength), "title", "title must be at most 200 characters")
	v.Check(in.Content != "", "content", "content required")
	v.Check(textutil.RuneCountAtMost(in.Content, maxPostLength), "content", "content must be at most 5000 characters")

	return v.AsError()
}
