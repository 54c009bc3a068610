package types

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hicampus/hicampus/validator"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt ignores anything past 72 bytes.
)

type Register struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Nickname        string `json:"nickname"`
	Realname        string `json:"realname"`
	Gender          Gender `json:"gender"`
	MainLanguage    string `json:"main_language"`
	NationalityISO2 string `json:"nationality_iso2"`
	SchoolID        int64  `json:"school_id"`
	DepartmentID    int64  `json:"department_id"`
	EnrollmentYear  int32  `json:"enrollment_year"`
	IsHelper        bool   `json:"is_helper"`
	// HelperLanguages are only stored for helpers.
	HelperLanguages []string `json:"helper_languages"`
}

func (in *Register) Validate() error {
	v := validator.New()

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Nickname = strings.TrimSpace(in.Nickname)
	in.Realname = strings.TrimSpace(in.Realname)
	in.MainLanguage = strings.TrimSpace(in.MainLanguage)
	in.NationalityISO2 = strings.ToUpper(strings.TrimSpace(in.NationalityISO2))

	v.Check(ValidEmail(in.Email), "email", "invalid email")
	v.Check(len(in.Password) >= minPasswordLength, "password", "password must be at least 8 characters")
	v.Check(len(in.Password) <= maxPasswordLength, "password", "password must be at most 72 bytes")
	v.Check(in.Nickname != "", "nickname", "nickname required")
	v.Check(utf8.RuneCountInString(in.Nickname) <= 50, "nickname", "nickname must be at most 50 characters")
	v.Check(in.Realname != "", "realname", "realname required")
	v.Check(utf8.RuneCountInString(in.Realname) <= 100, "realname", "realname must be at most 100 characters")
	v.Check(in.Gender.Valid(), "gender", "gender must be male or female")
	v.Check(ValidLanguageCode(in.MainLanguage), "main_language", "invalid language code")
	v.Check(ValidISO2(in.NationalityISO2), "nationality_iso2", "invalid country code")
	v.Check(in.SchoolID > 0, "school_id", "school_id required")
	v.Check(in.DepartmentID > 0, "department_id", "department_id required")
	v.Check(in.EnrollmentYear >= 1900 && in.EnrollmentYear <= 2100, "enrollment_year", "invalid enrollment year")

	if !in.IsHelper {
		in.HelperLanguages = nil
	}

	seen := map[string]struct{}{}
	langs := in.HelperLanguages[:0]
	for _, lang := range in.HelperLanguages {
		lang = strings.TrimSpace(lang)
		if !ValidLanguageCode(lang) {
			v.AddError("helper_languages", "invalid language code")
			continue
		}
		if _, ok := seen[lang]; ok {
			continue
		}
		seen[lang] = struct{}{}
		langs = append(langs, lang)
	}
	in.HelperLanguages = langs

	return v.AsError()
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *Login) Validate() error {
	v := validator.New()

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	v.Check(in.Email != "", "email", "email required")
	v.Check(in.Password != "", "password", "password required")

	return v.AsError()
}

type AuthOutput struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}
