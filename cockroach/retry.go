package cockroach

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cockroachdb/cockroach-go/v2/crdb"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	retryInitialInterval = 50 * time.Millisecond
	retryMaxRetries      = 1
)

// retry runs a single statement read and, if it fails with a transient
// store fault, runs it once more after a short exponential backoff.
// Any other error is returned as is.
func retry(ctx context.Context, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInitialInterval

	return backoff.Retry(func() error {
		err := fn()
		if err != nil && !isTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(b, retryMaxRetries), ctx))
}

// runTx runs fn inside a transaction. RunTx restarts the transaction
// through crdb on serialization failures; the policy on ctx bounds that
// to a single retry with backoff.
func (c *Cockroach) runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return c.db.RunTx(withTxRetryPolicy(ctx), fn)
}

func withTxRetryPolicy(ctx context.Context) context.Context {
	return crdb.WithRetryPolicy(ctx, &crdb.ExpBackoffRetryPolicy{
		RetryLimit: retryMaxRetries,
		BaseDelay:  retryInitialInterval,
	})
}

func isTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsTransactionRollback(pgErr.Code) ||
			pgerrcode.IsConnectionException(pgErr.Code) ||
			pgErr.Code == pgerrcode.AdminShutdown
	}

	return pgconn.SafeToRetry(err)
}
