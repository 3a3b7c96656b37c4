package database

import (
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// OpenDB initializes and returns the shared connection pool.
// The DSN comes from the DB_DSN environment variable, with a local
// development fallback.
func OpenDB() (*sql.DB, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(127.0.0.1:3306)/inventory_db?parseTime=true"
	}

	return OpenDBWithDSN(dsn)
}

// OpenDBWithDSN creates and configures a connection pool from any DSN.
func OpenDBWithDSN(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, err
	}

	log.Println("Database connection pool established successfully")
	return db, nil
}

// EnsureSchema creates the products and sales tables when they are missing.
// It runs at every startup and is a no-op once the tables exist.
func EnsureSchema(db *sql.DB) error {
	createProducts := `
		CREATE TABLE IF NOT EXISTS products (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(255) NOT NULL DEFAULT '',
			category VARCHAR(255),
			price DECIMAL(12,2) NOT NULL DEFAULT 0,
			stock INT NOT NULL DEFAULT 0,
			added_date DATETIME DEFAULT CURRENT_TIMESTAMP
		)`

	createSales := `
		CREATE TABLE IF NOT EXISTS sales (
			sale_id BIGINT AUTO_INCREMENT PRIMARY KEY,
			product_id BIGINT NOT NULL,
			quantity INT NOT NULL,
			total_price DECIMAL(12,2) NOT NULL,
			sale_date DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
		)`

	if _, err := db.Exec(createProducts); err != nil {
		return err
	}
	if _, err := db.Exec(createSales); err != nil {
		return err
	}
	return nil
}
