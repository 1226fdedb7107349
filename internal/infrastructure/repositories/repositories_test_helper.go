package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		email_verified_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createMerchantTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE merchants (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		parent_id TEXT,
		name TEXT NOT NULL,
		description TEXT,
		contact_phone TEXT,
		merchant_type TEXT NOT NULL,
		business_type_id TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		status_reason TEXT,
		status_changed_at DATETIME,
		approved_at DATETIME,
		accepted_terms_at DATETIME,
		can_sell_products BOOLEAN NOT NULL DEFAULT 0,
		can_take_bookings BOOLEAN NOT NULL DEFAULT 0,
		can_rent_units BOOLEAN NOT NULL DEFAULT 0,
		logo_url TEXT,
		documents TEXT DEFAULT '[]',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createStatusLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE merchant_status_logs (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		from_status TEXT,
		to_status TEXT NOT NULL,
		reason TEXT,
		changed_by TEXT,
		metadata TEXT DEFAULT '{}',
		created_at DATETIME
	);`)
}

func createBookingTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE bookings (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		service_id TEXT NOT NULL,
		customer_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		service_price TEXT NOT NULL,
		fee_rate TEXT NOT NULL,
		fee_amount TEXT NOT NULL,
		total_amount TEXT NOT NULL,
		scheduled_at DATETIME,
		confirmed_at DATETIME,
		cancelled_at DATETIME,
		completed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createReservationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reservations (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		unit_id TEXT NOT NULL,
		customer_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		total_price TEXT NOT NULL,
		fee_rate TEXT NOT NULL,
		fee_amount TEXT NOT NULL,
		total_amount TEXT NOT NULL,
		starts_at DATETIME,
		ends_at DATETIME,
		confirmed_at DATETIME,
		checked_in_at DATETIME,
		checked_out_at DATETIME,
		cancelled_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createServiceOrderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE service_orders (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		service_id TEXT NOT NULL,
		customer_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		quantity INTEGER NOT NULL,
		unit_price TEXT NOT NULL,
		fee_rate TEXT NOT NULL,
		fee_amount TEXT NOT NULL,
		total_amount TEXT NOT NULL,
		received_at DATETIME,
		completed_at DATETIME,
		cancelled_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
