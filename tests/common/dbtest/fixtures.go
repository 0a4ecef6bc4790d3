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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func CreateWallet(t *testing.T, db DBLike, userID int64, balance, locked int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO wallets (user_id, balance, locked_balance) VALUES ($1, $2, $3)",
		userID, balance, locked)
	require.NoError(t, err)
}

// WalletBalances reads the durable balances of userID.
func WalletBalances(t *testing.T, db DBLike, userID int64) (balance, locked decimal.Decimal) {
	t.Helper()

	var b, l string
	err := db.QueryRow(context.Background(),
		"SELECT balance::text, locked_balance::text FROM wallets WHERE user_id = $1", userID).Scan(&b, &l)
	require.NoError(t, err)
	return decimal.RequireFromString(b), decimal.RequireFromString(l)
}

type AuctionRow struct {
	SellerID   int64
	CategoryID *int64
	StartPrice int64
	Deposit    int64
	Status     string
	StartAt    *time.Time
	EndAt      time.Time
	CreatedAt  time.Time
}

func CreateAuction(t *testing.T, db DBLike, a AuctionRow) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO auctions (item_id, seller_id, category_id, start_price, current_price, deposit, status, start_at, end_at, created_at)
		VALUES ($1, $2, $3, $4, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		a.SellerID*10, a.SellerID, a.CategoryID, a.StartPrice, a.Deposit, a.Status, a.StartAt, a.EndAt, a.CreatedAt,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
