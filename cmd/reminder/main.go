package main

import (
	"log"

	"moodcast.app/backend/config"
	"moodcast.app/backend/database"
	"moodcast.app/backend/handlers"
	"moodcast.app/backend/services"
)

func main() {
	cfg := config.Load()

	if !cfg.HasPushoverCredentials() {
		log.Fatal("Reminder: Pushover configuration missing")
	}

	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Reminder: DB connection failed: ", err)
	}
	defer db.Close()

	notifier := services.NewPushoverNotifier(cfg.PushoverAPIToken, cfg.PushoverUserKey)

	log.Println("⏰ Running mood reminder job")
	if err := handlers.RunReminderJob(db, notifier, cfg.Location()); err != nil {
		log.Fatal("Reminder: job failed: ", err)
	}
	log.Println("✅ Mood reminder job finished")
}
