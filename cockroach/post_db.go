package cockroach

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nicolasparada/go-db"

	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/types"
)

var errBoardNotFound = errs.NewNotFoundError("board not found")

// Posts lists the latest posts of a board. Anonymous posts come back
// without their author.
func (c *Cockroach) Posts(ctx context.Context, in types.ListPosts) ([]types.Post, error) {
	var out []types.Post
	return out, retry(ctx, func() error {
		exists, err := c.boardExists(ctx, in.BoardID)
		if err != nil {
			return err
		}

		if !exists {
			return errBoardNotFound
		}

		const q = `
			SELECT posts.id
				, posts.board_id
				, CASE WHEN posts.is_anonymous THEN NULL ELSE posts.user_id END AS user_id
				, CASE WHEN posts.is_anonymous THEN @anonymous ELSE users.nickname END AS nickname
				, posts.title
				, posts.content
				, posts.original_lang
				, posts.is_anonymous
				, posts.like_count
				, posts.comment_count
				, posts.created_at
				, posts.updated_at
			FROM posts
			INNER JOIN users ON posts.user_id = users.id
			WHERE posts.board_id = @board_id
			ORDER BY posts.created_at DESC, posts.id DESC
			LIMIT @limit
		`

		rows, err := c.db.Query(ctx, q, pgx.StrictNamedArgs{
			"board_id":  in.BoardID,
			"anonymous": types.AnonymousAuthor,
			"limit":     types.PostsLimit,
		})
		if err != nil {
			return fmt.Errorf("sql select posts: %w", err)
		}

		out, err = pgx.CollectRows(rows, pgx.RowToStructByNameLax[types.Post])
		if err != nil {
			return fmt.Errorf("sql collect posts: %w", err)
		}

		return nil
	})
}

func (c *Cockroach) boardExists(ctx context.Context, boardID int64) (bool, error) {
	var exists bool
	err := c.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM boards WHERE id = @board_id)`, pgx.StrictNamedArgs{
		"board_id": boardID,
	}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("sql select board exists: %w", err)
	}

	return exists, nil
}

func (c *Cockroach) CreatePost(ctx context.Context, in types.CreatePost) (types.Created, error) {
	var out types.Created
	return out, retry(ctx, func() error {
		const q = `
			INSERT INTO posts (board_id, user_id, title, content, original_lang, is_anonymous)
			VALUES (@board_id, @user_id, @title, @content, @original_lang, @is_anonymous)
			RETURNING id, created_at
		`

		rows, err := c.db.Query(ctx, q, pgx.StrictNamedArgs{
			"board_id":      in.BoardID,
			"user_id":       in.LoggedInUserID(),
			"title":         in.Title,
			"content":       in.Content,
			"original_lang": in.OriginalLang(),
			"is_anonymous":  in.IsAnonymous,
		})
		if err != nil {
			return fmt.Errorf("sql insert post: %w", err)
		}

		out, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[types.Created])
		if db.IsForeignKeyViolationError(err) {
			return errBoardNotFound
		}

		if err != nil {
			return fmt.Errorf("sql collect inserted post: %w", err)
		}

		return nil
	})
}
