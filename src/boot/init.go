package boot

import (
	"ers/src/db"
	"ers/src/models"
	"log"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Event{},
		&models.Ticket{},
		&models.Registration{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	// gorm tags cannot express a partial index, so one non-cancelled
	// registration per (user, event) is enforced here directly.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_registrations_user_event_active
		ON registrations (user_id, event_id) WHERE status <> 'cancelled'`).Error
	if err != nil {
		log.Fatalf("error creating registration index: %s", err.Error())
	}

	return db
}

func SeedCategories() {
	seeds := []models.Category{
		{Name: "Technology", Color: "#3B82F6"},
		{Name: "Marketing", Color: "#EC4899"},
		{Name: "Business", Color: "#10B981"},
	}
	db := db.GetDb()
	for i := range seeds {
		seeds[i].Slug = slug.Make(seeds[i].Name)
	}
	if err := db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).
		Create(&seeds).
		Error; err != nil {
		log.Printf("Error seeding categories: %s\n", err.Error())
	}
}
