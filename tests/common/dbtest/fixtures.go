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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()
	return createUser(t, db, email, role, nil)
}

// CreateTestVendorUser creates a vendor-role account operating the given stand.
func CreateTestVendorUser(t *testing.T, db DBLike, email string, vendorID uuid.UUID) uuid.UUID {
	t.Helper()
	return createUser(t, db, email, "vendor", &vendorID)
}

func createUser(t *testing.T, db DBLike, email, role string, vendorID *uuid.UUID) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, display_name, vendor_id, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, true)
		 ON CONFLICT (email) DO NOTHING`,
		userID, email, TestPasswordHash, role, "Test User", vendorID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

// DefaultVendorID returns the seeded stand used by most tests.
func DefaultVendorID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM vendors WHERE name = 'Barraca do Zé' LIMIT 1").Scan(&id)
	require.NoError(t, err)
	return id
}

// DefaultItemID returns the seeded stock-tracked item.
func DefaultItemID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM vendor_items WHERE name = 'Cadeira de praia' LIMIT 1").Scan(&id)
	require.NoError(t, err)
	return id
}

// SeedReferenceData inserts the browse tree most tests run against: one
// region, one beach, one stand with two items.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		WITH region AS (
		    INSERT INTO regions (name, slug) VALUES ('Litoral Norte', 'litoral-norte')
		    ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
		    RETURNING id
		), beach AS (
		    INSERT INTO beaches (region_id, name)
		    SELECT id, 'Praia Grande' FROM region
		    RETURNING id
		), vendor AS (
		    INSERT INTO vendors (beach_id, name, description, is_active)
		    SELECT id, 'Barraca do Zé', 'Cadeiras e guarda-sóis', true FROM beach
		    RETURNING id
		)
		INSERT INTO vendor_items (vendor_id, name, description, price_cents, is_active, track_stock, stock_total, stock_available)
		SELECT id, 'Cadeira de praia', '', 2500, true, true, 10, 10 FROM vendor
		UNION ALL
		SELECT id, 'Guarda-sol', '', 4000, true, false, 0, 0 FROM vendor;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
