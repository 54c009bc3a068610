package cockroach

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nicolasparada/go-db"

	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/types"
)

type acceptStep string

const (
	acceptStepMatch        acceptStep = "match"
	acceptStepConversation acceptStep = "conversation"
)

// AcceptMatchRequest moves an offered request into accepted and creates
// the match, its conversation and both participants, all in one
// transaction. Only one of many concurrent accepts wins the status
// compare-and-set; the others get a failed precondition error.
func (c *Cockroach) AcceptMatchRequest(ctx context.Context, in types.AcceptMatch) (types.Accepted, error) {
	var out types.Accepted
	return out, c.runTx(ctx, func(ctx context.Context) error {
		req, err := c.updateMatchRequest(ctx, types.UpdateMatchRequest{
			RequestID: in.RequestID,
			To:        types.MatchRequestStatusAccepted,
		})
		if err != nil {
			return err
		}

		if err := in.MentorError(req.OfferedToUserID); err != nil {
			return err
		}

		match, err := c.createMatch(ctx, in.MentorUserID, req)
		if err != nil {
			return err
		}

		if err := c.acceptStepDone(acceptStepMatch); err != nil {
			return err
		}

		conversation, err := c.createConversation(ctx, match.ID)
		if err != nil {
			return err
		}

		if err := c.acceptStepDone(acceptStepConversation); err != nil {
			return err
		}

		if err := c.createParticipants(ctx, conversation.ID, match.MentorUserID, match.MenteeUserID); err != nil {
			return err
		}

		out = types.Accepted{
			MatchID:        match.ID,
			ConversationID: conversation.ID,
		}
		return nil
	})
}

func (c *Cockroach) acceptStepDone(step acceptStep) error {
	if c.afterAcceptStep == nil {
		return nil
	}
	return c.afterAcceptStep(step)
}

func (c *Cockroach) createMatch(ctx context.Context, mentorUserID int64, req types.MatchRequest) (types.Match, error) {
	var out types.Match

	const q = `
		INSERT INTO matches (mentor_user_id, mentee_user_id, school_id, request_id)
		SELECT @mentor_user_id::INT8, users.id, users.school_id, @request_id::INT8
		FROM users
		WHERE users.id = @mentee_user_id
		RETURNING id, mentor_user_id, mentee_user_id, school_id, request_id, status, started_at, ended_at
	`

	rows, err := c.db.Query(ctx, q, pgx.StrictNamedArgs{
		"mentor_user_id": mentorUserID,
		"mentee_user_id": req.RequesterUserID,
		"request_id":     req.ID,
	})
	if err != nil {
		return out, fmt.Errorf("sql insert match: %w", err)
	}

	out, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[types.Match])
	if db.IsNotFoundError(err) {
		return out, errs.NewNotFoundError("requester not found")
	}

	if db.IsForeignKeyViolationError(err) {
		return out, errs.NewNotFoundError("mentor not found")
	}

	if db.IsUniqueViolationError(err) {
		return out, errs.NewFailedPreconditionError("match request already has a match")
	}

	if err != nil {
		return out, fmt.Errorf("sql collect inserted match: %w", err)
	}

	return out, nil
}

func (c *Cockroach) createConversation(ctx context.Context, matchID int64) (types.Conversation, error) {
	var out types.Conversation

	const q = `
		INSERT INTO conversations (match_id)
		VALUES (@match_id)
		RETURNING id, match_id, created_at
	`

	rows, err := c.db.Query(ctx, q, pgx.StrictNamedArgs{
		"match_id": matchID,
	})
	if err != nil {
		return out, fmt.Errorf("sql insert conversation: %w", err)
	}

	out, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[types.Conversation])
	if err != nil {
		return out, fmt.Errorf("sql collect inserted conversation: %w", err)
	}

	return out, nil
}

func (c *Cockroach) createParticipants(ctx context.Context, conversationID, mentorUserID, menteeUserID int64) error {
	const q = `
		INSERT INTO conversation_participants (conversation_id, user_id)
		VALUES (@conversation_id, @mentor_user_id)
			 , (@conversation_id, @mentee_user_id)
	`

	_, err := c.db.Exec(ctx, q, pgx.StrictNamedArgs{
		"conversation_id": conversationID,
		"mentor_user_id":  mentorUserID,
		"mentee_user_id":  menteeUserID,
	})
	if err != nil {
		return fmt.Errorf("sql insert conversation participants: %w", err)
	}

	return nil
}
