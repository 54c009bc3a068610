package types

import (
	"regexp"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Role is derived from the helper flag. Helpers get matched as mentors,
// seekers are the ones asking for help.
type Role string

const (
	RoleHelper Role = "helper"
	RoleSeeker Role = "seeker"
)

type User struct {
	ID              int64     `json:"id" db:"id"`
	Email           string    `json:"email" db:"email"`
	Nickname        string    `json:"nickname" db:"nickname"`
	Realname        string    `json:"realname" db:"realname"`
	Gender          Gender    `json:"gender" db:"gender"`
	MainLanguage    string    `json:"main_language" db:"main_language"`
	NationalityISO2 string    `json:"nationality_iso2" db:"nationality_iso2"`
	SchoolID        int64     `json:"school_id" db:"school_id"`
	DepartmentID    int64     `json:"department_id" db:"department_id"`
	EnrollmentYear  int32     `json:"enrollment_year" db:"enrollment_year"`
	IsHelper        bool      `json:"is_helper" db:"is_helper"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

func (u User) Role() Role {
	if u.IsHelper {
		return RoleHelper
	}
	return RoleSeeker
}

// Credentials are only ever read to check a login attempt.
type Credentials struct {
	UserID       int64  `db:"id"`
	PasswordHash string `db:"password_hash"`
}

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(s string) bool {
	return reEmail.MatchString(s)
}

var reLanguageCode = regexp.MustCompile(`^[a-z]{2,3}(-[A-Za-z]{2,4})?$`)

func ValidLanguageCode(s string) bool {
	return reLanguageCode.MatchString(s)
}

var reISO2 = regexp.MustCompile(`^[A-Z]{2}$`)

func ValidISO2(s string) bool {
	return reISO2.MatchString(s)
}
