package cockroach

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nicolasparada/go-db"

	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/types"
)

const userColumns = `
	users.id
	, users.email
	, users.nickname
	, users.realname
	, users.gender
	, users.main_language
	, users.nationality_iso2
	, users.school_id
	, users.department_id
	, users.enrollment_year
	, users.is_helper
	, users.created_at
`

func (c *Cockroach) CreateUser(ctx context.Context, in types.Register, passwordHash string) (types.Created, error) {
	var out types.Created
	return out, c.runTx(ctx, func(ctx context.Context) error {
		created, err := c.createUser(ctx, in, passwordHash)
		if err != nil {
			return err
		}

		if in.IsHelper {
			if err := c.createHelperProfile(ctx, created.ID, in.HelperLanguages); err != nil {
				return err
			}
		}

		out = created
		return nil
	})
}

func (c *Cockroach) createUser(ctx context.Context, in types.Register, passwordHash string) (types.Created, error) {
	var out types.Created

	const insertUser = `
		INSERT INTO users (
			email
			, password_hash
			, nickname
			, realname
			, gender
			, main_language
			, nationality_iso2
			, school_id
			, department_id
			, enrollment_year
			, is_helper
		)
		SELECT @email
			, @password_hash
			, @nickname
			, @realname
			, @gender
			, @main_language
			, @nationality_iso2
			, colleges.school_id
			, departments.id
			, @enrollment_year::INT4
			, @is_helper::BOOLEAN
		FROM departments
		INNER JOIN colleges ON departments.college_id = colleges.id
		WHERE departments.id = @department_id
			AND colleges.school_id = @school_id
		RETURNING id, created_at
	`

	rows, err := c.db.Query(ctx, insertUser, pgx.StrictNamedArgs{
		"email":            in.Email,
		"password_hash":    passwordHash,
		"nickname":         in.Nickname,
		"realname":         in.Realname,
		"gender":           in.Gender,
		"main_language":    in.MainLanguage,
		"nationality_iso2": in.NationalityISO2,
		"school_id":        in.SchoolID,
		"department_id":    in.DepartmentID,
		"enrollment_year":  in.EnrollmentYear,
		"is_helper":        in.IsHelper,
	})
	if err != nil {
		return out, fmt.Errorf("sql insert user: %w", err)
	}

	out, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[types.Created])
	if db.IsNotFoundError(err) {
		return out, errs.NewInvalidArgumentError("department_id", "department does not belong to school")
	}

	if db.IsUniqueViolationError(err, "email") {
		return out, errs.NewAlreadyExistsError("email", "email already registered")
	}

	if db.IsForeignKeyViolationError(err) {
		return out, errs.NewInvalidArgumentError("", "unknown language or country")
	}

	if err != nil {
		return out, fmt.Errorf("sql collect inserted user: %w", err)
	}

	return out, nil
}

func (c *Cockroach) createHelperProfile(ctx context.Context, userID int64, languages []string) error {
	_, err := c.db.Exec(ctx, `INSERT INTO helper_profiles (user_id) VALUES (@user_id)`, pgx.StrictNamedArgs{
		"user_id": userID,
	})
	if err != nil {
		return fmt.Errorf("sql insert helper profile: %w", err)
	}

	if len(languages) == 0 {
		return nil
	}

	const q = `
		INSERT INTO helper_languages (user_id, language_code)
		SELECT @user_id::INT8, unnest(@languages::VARCHAR[])
	`
	_, err = c.db.Exec(ctx, q, pgx.StrictNamedArgs{
		"user_id":   userID,
		"languages": languages,
	})
	if db.IsForeignKeyViolationError(err) {
		return errs.NewInvalidArgumentError("helper_languages", "unknown language")
	}

	if err != nil {
		return fmt.Errorf("sql insert helper languages: %w", err)
	}

	return nil
}

func (c *Cockroach) User(ctx context.Context, userID int64) (types.User, error) {
	var out types.User
	return out, retry(ctx, func() error {
		var err error
		out, err = c.user(ctx, userID)
		return err
	})
}

func (c *Cockroach) user(ctx context.Context, userID int64) (types.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE users.id = @user_id`
	args := pgx.StrictNamedArgs{
		"user_id": userID,
	}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.User])
	if db.IsNotFoundError(err) {
		return out, errs.NewNotFoundError("user not found")
	}

	if err != nil {
		return out, fmt.Errorf("sql select user: %w", err)
	}

	return out, nil
}

func (c *Cockroach) CredentialsByEmail(ctx context.Context, email string) (types.Credentials, error) {
	var out types.Credentials
	return out, retry(ctx, func() error {
		query := `SELECT id, password_hash FROM users WHERE email = @email`
		args := pgx.StrictNamedArgs{
			"email": email,
		}

		var err error
		out, err = pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Credentials])
		if db.IsNotFoundError(err) {
			return errs.NewNotFoundError("user not found")
		}

		if err != nil {
			return fmt.Errorf("sql select credentials: %w", err)
		}

		return nil
	})
}
