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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		userID, "Test User", email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestApothecary inserts an apothecary at the given coordinates with a
// single Monday morning opening slot.
func CreateTestApothecary(t *testing.T, db DBLike, name string, latitude, longitude float32) uuid.UUID {
	t.Helper()

	apothecaryID := uuid.New()
	scheduleID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO apothecary (id, name, street, number, post_code, city, country, latitude, longitude)
		 VALUES ($1, $2, 'Teststrasse', '1', 1140, 'Vienna', 'Austria', $3, $4)`,
		apothecaryID, name, latitude, longitude)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO schedule (id, weekday, start_time, end_time) VALUES ($1, 1, '08:00', '12:00')",
		scheduleID)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO apothecary_schedule (apothecary_id, schedule_id) VALUES ($1, $2)",
		apothecaryID, scheduleID)
	require.NoError(t, err)

	return apothecaryID
}

func CreateTestMedication(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	medicationID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO medication (id, name) VALUES ($1, $2)", medicationID, name)
	require.NoError(t, err)

	return medicationID
}

func CreatePackageStock(t *testing.T, db DBLike, apothecaryID, medicationID uuid.UUID, quantity int64, price decimal.Decimal) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO apothecary_medication (apothecary_id, medication_id, quantity_type, medication_quantity, price)
		 VALUES ($1, $2, 'p', $3, $4)`,
		apothecaryID, medicationID, quantity, price)
	require.NoError(t, err)
}

func CreateUnknownStock(t *testing.T, db DBLike, apothecaryID, medicationID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO apothecary_medication (apothecary_id, medication_id, quantity_type)
		 VALUES ($1, $2, 'u')`,
		apothecaryID, medicationID)
	require.NoError(t, err)
}

func StockQuantity(t *testing.T, db DBLike, apothecaryID, medicationID uuid.UUID) int64 {
	t.Helper()

	var quantity int64
	err := db.QueryRow(context.Background(),
		"SELECT medication_quantity FROM apothecary_medication WHERE apothecary_id = $1 AND medication_id = $2",
		apothecaryID, medicationID).Scan(&quantity)
	require.NoError(t, err)
	return quantity
}

// SeedReferenceData is a no-op hook kept for harness symmetry; all fixtures
// in this suite are created per test.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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
