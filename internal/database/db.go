package database

import (
	"database/sql"
	"embed"
	"log"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

var DB *sql.DB

func InitDB(dsn string) error {
	var err error
	DB, err = sql.Open("pgx", dsn)
	if err != nil {
		return err
	}

	if err = DB.Ping(); err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	goose.SetBaseFS(embedMigrations)
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err = goose.Up(DB, "migrations"); err != nil {
		return err
	}

	log.Println("Postgres database initialized")
	return nil
}

func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Println("DB closed")
	}
}
