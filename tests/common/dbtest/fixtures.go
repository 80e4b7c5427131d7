//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type OutcomeRow struct {
	Kind   string
	Status string
}

// OutcomesFor lists the ledger rows of one order, final first
func OutcomesFor(t *testing.T, db DBLike, orderID string) []OutcomeRow {
	t.Helper()

	rows, err := db.Query(context.Background(),
		"SELECT kind, status FROM payment_outcomes WHERE order_id = $1 ORDER BY kind", orderID)
	require.NoError(t, err)
	defer rows.Close()

	var out []OutcomeRow
	for rows.Next() {
		var r OutcomeRow
		require.NoError(t, rows.Scan(&r.Kind, &r.Status))
		out = append(out, r)
	}
	require.NoError(t, rows.Err())
	return out
}

func InsertOutcome(t *testing.T, db DBLike, orderID, kind, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO payment_outcomes (order_id, kind, status) VALUES ($1, $2, $3)", orderID, kind, status)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every ledger table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('storefront_schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
