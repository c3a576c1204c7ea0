package database

import (
	"fmt"
	"log"
	"time"

	"cricket-booking/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// GetConnection opens the pool against the hosted Postgres. The service is
// useless without its database, so a failed connect is fatal at startup.
func GetConnection(cfg *config.DatabaseConfig) *sqlx.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Name, cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxConns / 2)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db
}
