package cockroach

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hicampus/hicampus/types"
)

func (c *Cockroach) CreateMessage(ctx context.Context, in types.SendMessage) (types.MessageCreated, error) {
	var out types.MessageCreated
	return out, c.runTx(ctx, func(ctx context.Context) error {
		if err := c.ensureParticipant(ctx, in.ConversationID, in.LoggedInUserID()); err != nil {
			return err
		}

		const q = `
			INSERT INTO messages (conversation_id, sender_user_id, content)
			VALUES (@conversation_id, @sender_user_id, @content)
			RETURNING id, created_at
		`

		rows, err := c.db.Query(ctx, q, pgx.StrictNamedArgs{
			"conversation_id": in.ConversationID,
			"sender_user_id":  in.LoggedInUserID(),
			"content":         in.Content,
		})
		if err != nil {
			return fmt.Errorf("sql insert message: %w", err)
		}

		out, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[types.MessageCreated])
		if err != nil {
			return fmt.Errorf("sql collect inserted message: %w", err)
		}

		return nil
	})
}

// Messages returns the whole conversation oldest first
// and marks it as read for the caller.
func (c *Cockroach) Messages(ctx context.Context, in types.ListMessages) ([]types.Message, error) {
	var out []types.Message
	return out, c.runTx(ctx, func(ctx context.Context) error {
		if err := c.ensureParticipant(ctx, in.ConversationID, in.LoggedInUserID()); err != nil {
			return err
		}

		msgs, err := c.messages(ctx, in.ConversationID)
		if err != nil {
			return err
		}

		if err := c.markConversationAsRead(ctx, in.ConversationID, in.LoggedInUserID()); err != nil {
			return err
		}

		out = msgs
		return nil
	})
}

func (c *Cockroach) messages(ctx context.Context, conversationID int64) ([]types.Message, error) {
	const q = `
		SELECT id, conversation_id, sender_user_id, content, created_at
		FROM messages
		WHERE conversation_id = @conversation_id
		ORDER BY created_at ASC, id ASC
	`

	rows, err := c.db.Query(ctx, q, pgx.StrictNamedArgs{
		"conversation_id": conversationID,
	})
	if err != nil {
		return nil, fmt.Errorf("sql select messages: %w", err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[types.Message])
	if err != nil {
		return nil, fmt.Errorf("sql collect messages: %w", err)
	}

	return out, nil
}
