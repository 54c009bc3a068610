package cockroach

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/types"
)

var errNotParticipant = errs.NewPermissionDeniedError("you are not a participant of this conversation")

func (c *Cockroach) Conversations(ctx context.Context, in types.ListConversations) ([]types.ConversationSummary, error) {
	var out []types.ConversationSummary
	return out, retry(ctx, func() error {
		const q = `
			SELECT conversations.id
				, conversations.match_id
				, conversations.created_at
				, me.last_read_at
				, json_build_object('id', others.id, 'nickname', others.nickname) AS other_user
			FROM conversation_participants AS me
			INNER JOIN conversations ON me.conversation_id = conversations.id
			INNER JOIN conversation_participants AS other
				ON other.conversation_id = conversations.id AND other.user_id != me.user_id
			INNER JOIN users AS others ON other.user_id = others.id
			WHERE me.user_id = @user_id
			ORDER BY conversations.created_at DESC, conversations.id DESC
			LIMIT @limit
		`

		rows, err := c.db.Query(ctx, q, pgx.StrictNamedArgs{
			"user_id": in.LoggedInUserID(),
			"limit":   types.ConversationsLimit,
		})
		if err != nil {
			return fmt.Errorf("sql select conversations: %w", err)
		}

		out, err = pgx.CollectRows(rows, pgx.RowToStructByNameLax[types.ConversationSummary])
		if err != nil {
			return fmt.Errorf("sql collect conversations: %w", err)
		}

		return nil
	})
}

// ensureParticipant fails with permission denied when the user is not
// one of the conversation's participants. A conversation that does not
// exist has no participants, so it fails the same way.
func (c *Cockroach) ensureParticipant(ctx context.Context, conversationID, userID int64) error {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM conversation_participants
			WHERE conversation_id = @conversation_id AND user_id = @user_id
		)
	`

	var ok bool
	err := c.db.QueryRow(ctx, q, pgx.StrictNamedArgs{
		"conversation_id": conversationID,
		"user_id":         userID,
	}).Scan(&ok)
	if err != nil {
		return fmt.Errorf("sql select conversation participant: %w", err)
	}

	if !ok {
		return errNotParticipant
	}

	return nil
}

func (c *Cockroach) markConversationAsRead(ctx context.Context, conversationID, userID int64) error {
	const q = `
		UPDATE conversation_participants
		SET last_read_at = now()
		WHERE conversation_id = @conversation_id AND user_id = @user_id
	`

	_, err := c.db.Exec(ctx, q, pgx.StrictNamedArgs{
		"conversation_id": conversationID,
		"user_id":         userID,
	})
	if err != nil {
		return fmt.Errorf("sql update participant last read at: %w", err)
	}

	return nil
}
