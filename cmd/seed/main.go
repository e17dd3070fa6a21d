package main

import (
	"log"
	"os"
	"time"

	"fikrswap-academy-be/internal/content"
	"fikrswap-academy-be/internal/mapper"
	"fikrswap-academy-be/internal/model"
	"fikrswap-academy-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: Extensions (GORM AutoMigrate doesn't create these)
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Error: Failed to create pgcrypto extension:", err)
	}

	// 4. Schema
	if err := db.AutoMigrate(
		&model.User{},
		&model.UserProvider{},
		&model.EmailVerificationToken{},
		&model.PasswordResetToken{},
		&model.Course{},
		&model.CurriculumSection{},
		&model.Lesson{},
		&model.Enrollment{},
		&model.ContactMessage{},
		&model.LiveClass{},
		&model.ClassChatMessage{},
		&model.NotificationType{},
		&model.Notification{},
	); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}
	log.Println("Schema migrated.")

	// 5. Data
	SeedNotificationTypes(db)
	seedCatalog(db)

	log.Println("✅ Seeding complete.")
}

// seedCatalog loads the launch catalog: courses, the curriculum outline
// for the flagship course, and the upcoming live-class schedule.
// Idempotent; skips when courses already exist.
func seedCatalog(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Course{}).Count(&count).Error; err != nil {
		log.Printf("Warning: Failed to count courses: %v", err)
		return
	}
	if count > 0 {
		log.Println("Catalog already seeded, skipping.")
		return
	}

	courseMapper := mapper.NewCourseMapper()
	classMapper := mapper.NewLiveClassMapper()

	var flagship *model.Course
	for _, course := range content.SeedCourses() {
		m := courseMapper.ToModel(course)
		if err := db.Create(m).Error; err != nil {
			log.Printf("Warning: Failed to seed course %q: %v", course.Title, err)
			continue
		}
		if flagship == nil {
			flagship = m
		}
	}
	log.Println("Courses seeded.")

	if flagship != nil {
		for position, section := range content.SeedCurriculum() {
			m := &model.CurriculumSection{
				CourseId: flagship.Id,
				Title:    section.Section,
				Position: position,
			}
			for lessonPos, lesson := range section.Lessons {
				m.Lessons = append(m.Lessons, model.Lesson{
					Title:    lesson.Title,
					Duration: lesson.Duration,
					Position: lessonPos,
					Preview:  lesson.Preview,
				})
			}
			if err := db.Create(m).Error; err != nil {
				log.Printf("Warning: Failed to seed curriculum section %q: %v", section.Section, err)
			}
		}
		log.Println("Curriculum seeded.")
	}

	for _, class := range content.SeedLiveClasses(time.Now()) {
		if err := db.Create(classMapper.ToModel(class)).Error; err != nil {
			log.Printf("Warning: Failed to seed live class %q: %v", class.Title, err)
		}
	}
	log.Println("Live classes seeded.")
}
