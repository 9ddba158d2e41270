package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the test database. It expects a MySQL database named
// univadmin_test on localhost:3306 unless TEST_DB_DSN says otherwise, and
// skips the test when none is reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		dsn = "root:@tcp(localhost:3306)/univadmin_test?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test database not available: %v", err)
	}

	return db
}

var tables = []string{
	"students",
	"buyers",
	"gigs",
	"orders",
	"disputes",
	"transactions",
	"payouts",
	"categories",
	"email_templates",
	"admin_sessions",
	"admin_profile",
}

// CleanupTestDB empties every table and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the admin record tables.
func SetupTestTables(t *testing.T, db *sql.DB) {
	for _, stmt := range Schema {
		if _, err := db.Exec(stmt.Query); err != nil {
			t.Logf("failed to create table %s: %v", stmt.Table, err)
		}
	}
}

type TableDDL struct {
	Table string
	Query string
}

var Schema = []TableDDL{
	{"students", `
	CREATE TABLE IF NOT EXISTS students (
		id VARCHAR(32) NOT NULL PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		email VARCHAR(150) NOT NULL,
		registration_date DATE NOT NULL,
		status VARCHAR(20) NOT NULL,
		gigs_count INT NOT NULL DEFAULT 0,
		profile_level VARCHAR(20) NOT NULL
	)`},
	{"buyers", `
	CREATE TABLE IF NOT EXISTS buyers (
		id VARCHAR(32) NOT NULL PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		email VARCHAR(150) NOT NULL,
		registration_date DATE NOT NULL,
		status VARCHAR(20) NOT NULL,
		total_orders INT NOT NULL DEFAULT 0,
		last_order_date DATE NULL,
		total_spent DECIMAL(12,2) NOT NULL DEFAULT 0.00
	)`},
	{"gigs", `
	CREATE TABLE IF NOT EXISTS gigs (
		id VARCHAR(32) NOT NULL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		category VARCHAR(100) NOT NULL,
		seller_name VARCHAR(150) NOT NULL,
		seller_rating DOUBLE NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL,
		submission_date DATE NOT NULL,
		basic_price DECIMAL(10,2) NOT NULL,
		standard_price DECIMAL(10,2) NOT NULL,
		premium_price DECIMAL(10,2) NOT NULL,
		flags JSON NOT NULL,
		reports INT NOT NULL DEFAULT 0
	)`},
	{"orders", `
	CREATE TABLE IF NOT EXISTS orders (
		id VARCHAR(32) NOT NULL PRIMARY KEY,
		gig_title VARCHAR(255) NOT NULL,
		buyer_name VARCHAR(150) NOT NULL,
		seller_name VARCHAR(150) NOT NULL,
		status VARCHAR(20) NOT NULL,
		amount DECIMAL(10,2) NOT NULL,
		package VARCHAR(20) NOT NULL,
		payment_status VARCHAR(20) NOT NULL,
		order_date DATE NOT NULL,
		delivery_date DATE NOT NULL,
		has_dispute TINYINT(1) NOT NULL DEFAULT 0,
		messages INT NOT NULL DEFAULT 0,
		milestones_total INT NOT NULL DEFAULT 0,
		milestones_completed INT NOT NULL DEFAULT 0
	)`},
	{"disputes", `
	CREATE TABLE IF NOT EXISTS disputes (
		id VARCHAR(32) NOT NULL PRIMARY KEY,
		order_id VARCHAR(32) NOT NULL,
		gig_title VARCHAR(255) NOT NULL,
		buyer_name VARCHAR(150) NOT NULL,
		seller_name VARCHAR(150) NOT NULL,
		status VARCHAR(20) NOT NULL,
		priority VARCHAR(20) NOT NULL,
		reason VARCHAR(255) NOT NULL,
		amount DECIMAL(10,2) NOT NULL,
		opened_date DATE NOT NULL,
		last_activity_at DATETIME NOT NULL,
		description TEXT NOT NULL,
		evidence_count INT NOT NULL DEFAULT 0,
		admin_notes JSON NOT NULL
	)`},
	{"transactions", `
	CREATE TABLE IF NOT EXISTS transactions (
		id VARCHAR(32) NOT NULL PRIMARY KEY,
		type VARCHAR(20) NOT NULL,
		description VARCHAR(255) NOT NULL,
		party VARCHAR(255) NOT NULL,
		amount DECIMAL(12,2) NOT NULL,
		fee DECIMAL(12,2) NOT NULL,
		net_amount DECIMAL(12,2) NOT NULL,
		date DATE NOT NULL,
		status VARCHAR(20) NOT NULL,
		order_id VARCHAR(32) NULL
	)`},
	{"payouts", `
	CREATE TABLE IF NOT EXISTS payouts (
		id VARCHAR(32) NOT NULL PRIMARY KEY,
		seller VARCHAR(150) NOT NULL,
		amount DECIMAL(12,2) NOT NULL,
		status VARCHAR(20) NOT NULL,
		scheduled_date DATE NOT NULL,
		completed_date DATE NULL,
		method VARCHAR(50) NOT NULL,
		orders INT NOT NULL DEFAULT 0
	)`},
	{"categories", `
	CREATE TABLE IF NOT EXISTS categories (
		id VARCHAR(32) NOT NULL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		subcategories JSON NOT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1
	)`},
	{"email_templates", `
	CREATE TABLE IF NOT EXISTS email_templates (
		id VARCHAR(32) NOT NULL PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		subject VARCHAR(255) NOT NULL,
		type VARCHAR(20) NOT NULL,
		last_modified DATE NOT NULL
	)`},
	{"admin_profile", `
	CREATE TABLE IF NOT EXISTS admin_profile (
		id INT NOT NULL PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		email VARCHAR(150) NOT NULL,
		role VARCHAR(50) NOT NULL,
		phone VARCHAR(50) NOT NULL DEFAULT '',
		avatar_url VARCHAR(255) NOT NULL DEFAULT '',
		last_login DATETIME NOT NULL,
		two_factor_enabled TINYINT(1) NOT NULL DEFAULT 0
	)`},
	{"admin_sessions", `
	CREATE TABLE IF NOT EXISTS admin_sessions (
		id VARCHAR(32) NOT NULL PRIMARY KEY,
		profile_id INT NOT NULL,
		device VARCHAR(150) NOT NULL,
		location VARCHAR(150) NOT NULL,
		last_active DATETIME NOT NULL,
		is_current TINYINT(1) NOT NULL DEFAULT 0
	)`},
}
