// Seeds render_log with sample rows so the renders endpoint has data in a
// fresh development database. Run with: go run ./scripts
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/khoahotran/resume-studio/adapters/persistence"
	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
	"github.com/khoahotran/resume-studio/internal/domain/resume"
	"github.com/khoahotran/resume-studio/pkg/logger"
)

func main() {
	fmt.Println("seeding render log...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	count := 20
	if raw := os.Getenv("SEED_COUNT"); raw != "" {
		if count, err = strconv.Atoi(raw); err != nil {
			log.Fatalf("SEED_COUNT must be an integer: %v", err)
		}
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	repo := persistence.NewPostgresRenderLogRepo(pool, logger.NewNop())
	now := time.Now().UTC()
	for i := 0; i < count; i++ {
		status := renderlog.StatusSucceeded
		if i%7 == 6 {
			status = renderlog.StatusFailed
		}
		entry := &renderlog.Entry{
			ID:         uuid.New(),
			RequestID:  "seed-" + strconv.Itoa(i),
			Template:   string(resume.Templates[i%len(resume.Templates)]),
			Status:     status,
			SizeBytes:  8000 + i*137,
			DurationMs: int64(5 + i%11),
			OccurredAt: now.Add(-time.Duration(i) * time.Minute),
		}
		if status == renderlog.StatusFailed {
			entry.SizeBytes = 0
		}
		if err := repo.Save(context.Background(), entry); err != nil {
			log.Fatalf("cannot add render log row: %v", err)
		}
	}

	fmt.Printf("added %d render log rows successfully!\n", count)
}
