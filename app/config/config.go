package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

type Config struct {
	DB        *sql.DB
	Port      string
	JWTSecret string
}

var AppConfig *Config

// Load reads the optional .env file and environment variables. Called
// once at process start, before InitDB.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:      getEnv("APP_PORT", "3000"),
		JWTSecret: getEnv("JWT_SECRET", "student-grading-system-dev-secret"),
	}
}

// InitDB opens the SQLite database file and configures the pool. The
// handle lives on AppConfig until main closes it at shutdown; every
// query function receives it as an explicit parameter.
func InitDB() {
	dbPath := getEnv("DB_PATH", "data/grading_system.db")
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		log.Fatal("Failed to create database directory:", err)
	}

	// foreign_keys must be on for every connection or none of the
	// cascade/restrict behavior the schema declares will happen.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	AppConfig.DB = db
	log.Printf("Connected to SQLite database at %s", dbPath)
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
