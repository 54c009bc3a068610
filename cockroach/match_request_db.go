package cockroach

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/nicolasparada/go-db"

	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/types"
)

const matchRequestColumns = `
	match_requests.id
	, match_requests.requester_user_id
	, match_requests.preferred_college_id
	, match_requests.preferred_gender
	, match_requests.notes
	, match_requests.status
	, match_requests.offered_to_user_id
	, match_requests.created_at
	, match_requests.updated_at
`

// CreateMatchRequest relies on the partial unique index over pending
// requests so two concurrent calls cannot both leave a pending row behind.
func (c *Cockroach) CreateMatchRequest(ctx context.Context, in types.CreateMatchRequest) (types.MatchRequestCreated, error) {
	var out types.MatchRequestCreated
	return out, retry(ctx, func() error {
		const q = `
			INSERT INTO match_requests (requester_user_id, preferred_college_id, preferred_gender, notes)
			VALUES (@requester_user_id, @preferred_college_id, @preferred_gender, @notes)
			RETURNING id, status
		`

		rows, err := c.db.Query(ctx, q, pgx.StrictNamedArgs{
			"requester_user_id":    in.LoggedInUserID(),
			"preferred_college_id": in.PreferredCollegeID,
			"preferred_gender":     in.PreferredGender,
			"notes":                in.Notes,
		})
		if err != nil {
			return fmt.Errorf("sql insert match request: %w", err)
		}

		out, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[types.MatchRequestCreated])
		if db.IsUniqueViolationError(err) {
			return errs.NewAlreadyExistsError("", "you already have a pending match request")
		}

		if db.IsForeignKeyViolationError(err) {
			return errs.NewNotFoundError("college not found")
		}

		if err != nil {
			return fmt.Errorf("sql collect inserted match request: %w", err)
		}

		return nil
	})
}

func (c *Cockroach) MatchRequest(ctx context.Context, requestID int64) (types.MatchRequest, error) {
	var out types.MatchRequest
	return out, retry(ctx, func() error {
		var err error
		out, err = c.matchRequest(ctx, requestID)
		return err
	})
}

func (c *Cockroach) matchRequest(ctx context.Context, requestID int64) (types.MatchRequest, error) {
	var out types.MatchRequest

	q := `SELECT ` + matchRequestColumns + ` FROM match_requests WHERE match_requests.id = @request_id`
	rows, err := c.db.Query(ctx, q, pgx.StrictNamedArgs{
		"request_id": requestID,
	})
	if err != nil {
		return out, fmt.Errorf("sql select match request: %w", err)
	}

	out, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[types.MatchRequest])
	if db.IsNotFoundError(err) {
		return out, errs.NewNotFoundError("match request not found")
	}

	if err != nil {
		return out, fmt.Errorf("sql collect match request: %w", err)
	}

	return out, nil
}

func (c *Cockroach) MatchRequests(ctx context.Context, in types.ListMatchRequests) ([]types.MatchRequest, error) {
	var out []types.MatchRequest
	return out, retry(ctx, func() error {
		q := `SELECT ` + matchRequestColumns + ` FROM match_requests
			WHERE match_requests.requester_user_id = @requester_user_id
			ORDER BY match_requests.created_at DESC, match_requests.id DESC
			LIMIT @limit`

		rows, err := c.db.Query(ctx, q, pgx.StrictNamedArgs{
			"requester_user_id": in.LoggedInUserID(),
			"limit":             types.MatchRequestsLimit,
		})
		if err != nil {
			return fmt.Errorf("sql select match requests: %w", err)
		}

		out, err = pgx.CollectRows(rows, pgx.RowToStructByNameLax[types.MatchRequest])
		if err != nil {
			return fmt.Errorf("sql collect match requests: %w", err)
		}

		return nil
	})
}

// UpdateMatchRequest is a compare-and-set: the row only changes when
// its current status is one of in.To's source statuses. When nothing
// changes, the request is looked up again to tell a missing request
// apart from one in the wrong state.
func (c *Cockroach) UpdateMatchRequest(ctx context.Context, in types.UpdateMatchRequest) (types.MatchRequest, error) {
	var out types.MatchRequest
	return out, c.runTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = c.updateMatchRequest(ctx, in)
		return err
	})
}

func (c *Cockroach) updateMatchRequest(ctx context.Context, in types.UpdateMatchRequest) (types.MatchRequest, error) {
	var out types.MatchRequest

	from := in.To.SourceStatuses()
	if len(from) == 0 {
		return out, fmt.Errorf("match request cannot transition into %q", in.To)
	}

	q := `
		UPDATE match_requests
		SET status = @to
			, offered_to_user_id = COALESCE(@offered_to_user_id, match_requests.offered_to_user_id)
			, updated_at = now()
		WHERE match_requests.id = @request_id
			AND match_requests.status = ANY(@from::VARCHAR[])
		RETURNING ` + matchRequestColumns

	rows, err := c.db.Query(ctx, q, pgx.StrictNamedArgs{
		"to":                 in.To,
		"offered_to_user_id": in.OfferedToUserID,
		"request_id":         in.RequestID,
		"from":               statusStrings(from),
	})
	if err != nil {
		return out, fmt.Errorf("sql update match request status: %w", err)
	}

	out, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[types.MatchRequest])
	if db.IsNotFoundError(err) {
		if _, err := c.matchRequest(ctx, in.RequestID); err != nil {
			return out, err
		}

		return out, errs.NewFailedPreconditionError("match request must be " + joinStatuses(from))
	}

	if db.IsForeignKeyViolationError(err) {
		return out, errs.NewNotFoundError("mentor not found")
	}

	if err != nil {
		return out, fmt.Errorf("sql collect updated match request: %w", err)
	}

	return out, nil
}

func statusStrings(ss []types.MatchRequestStatus) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = string(s)
	}
	return out
}

func joinStatuses(ss []types.MatchRequestStatus) string {
	return strings.Join(statusStrings(ss), " or ")
}
