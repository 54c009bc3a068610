package cockroach

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hicampus/hicampus/types"
)

// Helpers lists helpers matching every non nil filter, by ascending id.
func (c *Cockroach) Helpers(ctx context.Context, in types.HelperFilter) ([]types.UserPreview, error) {
	var out []types.UserPreview
	return out, retry(ctx, func() error {
		args := pgx.StrictNamedArgs{
			"limit": int64(in.Limit),
		}
		filters := []string{"users.is_helper = true"}

		if in.Language != nil {
			filters = append(filters, `EXISTS (
				SELECT 1 FROM helper_languages
				WHERE helper_languages.user_id = users.id
					AND helper_languages.language_code = @language
			)`)
			args["language"] = *in.Language
		}

		if in.Gender != nil {
			filters = append(filters, "users.gender = @gender")
			args["gender"] = *in.Gender
		}

		if in.CollegeID != nil {
			filters = append(filters, `EXISTS (
				SELECT 1 FROM departments
				WHERE departments.id = users.department_id
					AND departments.college_id = @college_id
			)`)
			args["college_id"] = *in.CollegeID
		}

		q := `SELECT users.id, users.nickname FROM users` + where(filters) + `ORDER BY users.id ASC LIMIT @limit`

		rows, err := c.db.Query(ctx, q, args)
		if err != nil {
			return fmt.Errorf("sql select helpers: %w", err)
		}

		out, err = pgx.CollectRows(rows, pgx.RowToStructByNameLax[types.UserPreview])
		if err != nil {
			return fmt.Errorf("sql collect helpers: %w", err)
		}

		return nil
	})
}
