package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	PosDB   *pgxpool.Pool
	PosGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func initPgx() {
	posURL := os.Getenv("POS_DB_URL")
	if posURL == "" {
		// fallback to local
		posURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/pos_intelligence?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ POS_DB_URL not set, using local default")
	}

	var err error
	PosDB, err = pgxpool.New(context.Background(), posURL)
	if err != nil {
		log.Fatalf("❌ Unable to connect to POS database: %v", err)
	}

	if err = PosDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ POS database ping failed: %v", err)
	}

	log.Println("✅ POS database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var posDSN string
	if os.Getenv("POS_DB_URL") != "" {
		posDSN = os.Getenv("POS_DB_URL")
	} else {
		posDSN = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=pos_intelligence port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ POS_DB_URL not set, using local GORM default")
	}

	var err error
	PosGorm, err = gorm.Open(postgres.Open(posDSN), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to POS database with GORM: %v", err)
	}
	if sqlDB, err := PosGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ POS database connected (GORM)")
}

func CloseDB() {
	if PosDB != nil {
		PosDB.Close()
		log.Println("✅ POS database connection closed (pgx)")
	}
	if PosGorm != nil {
		sqlDB, _ := PosGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ POS database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
