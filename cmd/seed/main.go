package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/oggyb/chat-archive/internal/config"
	"github.com/oggyb/chat-archive/internal/db/gormdb"
	mesgRepo "github.com/oggyb/chat-archive/internal/repository/gorm/message"
	"gorm.io/gorm"
)

// Seeds the chat_messages table with random archived exchanges spread
// over the last days, so the day/period/user queries have something to
// return right after a fresh install.
func main() {
	// Load application configuration (DB, Redis, etc.) from env/.env.
	cfg := config.New()

	// Open a Postgres connection through our GORM adapter.
	gormAdapter, err := gormdb.New(cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("[Seed] Failed to connect to database: %v", err)
	}

	log.Printf("[Seed] Connected to database %q", cfg.DB.Name)

	// 1) AutoMigrate: make sure the chat_messages table exists.
	// We go through the adapter to access the underlying *gorm.DB.
	rawDB := gormAdapter.Conn().(*gorm.DB)

	if err := rawDB.AutoMigrate(&mesgRepo.MessageModel{}); err != nil {
		log.Fatalf("[Seed] AutoMigrate failed: %v", err)
	}
	log.Println("[Seed] chat_messages table is up to date (AutoMigrate completed).")

	// 2) Primitive seeding: insert N random exchanges, backdated up to
	// two weeks so ranged queries have data across days.
	const seedCount = 50

	users := []string{"jdoe", "asmith", "mbrown", "kchen", "olopez"}
	names := []string{"John Doe", "Alice Smith", "Mark Brown", "Kim Chen", "Olivia Lopez"}

	log.Printf("[Seed] Inserting %d random messages...", seedCount)

	now := time.Now().UTC()
	for i := 0; i < seedCount; i++ {
		u := rand.Intn(len(users))

		// Backdate directly on the model; the domain path always stamps
		// "now", which would put every seeded row on the same day.
		row := &mesgRepo.MessageModel{
			UserID:    users[u],
			Name:      names[u],
			Question:  fmt.Sprintf("Seed question #%d?", i+1),
			Answer:    fmt.Sprintf("Seed answer #%d.", i+1),
			CreatedAt: now.AddDate(0, 0, -rand.Intn(14)).Add(-time.Duration(rand.Intn(86400)) * time.Second),
		}

		if err := rawDB.Create(row).Error; err != nil {
			log.Fatalf("[Seed] Failed to save message #%d: %v", i+1, err)
		}

		log.Printf("[Seed] Created message #%d: id=%s user=%s created_at=%s",
			i+1, row.ID.String(), row.UserID, row.CreatedAt.Format(time.RFC3339))
	}

	log.Printf("[Seed] Done. Inserted %d messages into table 'chat_messages'.", seedCount)
}
