package main

import (
	"log"

	"fikrswap-academy-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedNotificationTypes populates the registry that maps domain events
// onto inbox notifications.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "USER_SIGNED_UP",
			DisplayName: "Account Created",
			Template:    "Welcome to FikrSwap Academy! Please verify your email to get started.",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "USER_SIGNED_IN",
			DisplayName: "Login Activity",
			Template:    "You signed in at {time}",
			TargetType:  "SELF",
			Priority:    "LOW",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "COURSE_ENROLLED",
			DisplayName: "Course Enrollment",
			Template:    "You enrolled in \"{course_title}\"",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "CLASS_JOINED",
			DisplayName: "Class Joined",
			Template:    "You joined the live class \"{class_title}\"",
			TargetType:  "SELF",
			Priority:    "LOW",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "CLASS_LEFT",
			DisplayName: "Class Left",
			Template:    "You left the live class \"{class_title}\"",
			TargetType:  "SELF",
			Priority:    "LOW",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "CONTACT_SUBMITTED",
			DisplayName: "Contact Message Received",
			Template:    "New contact message from {name} ({email})",
			TargetType:  "ROLE",
			TargetRole:  "admin",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
	}

	for _, t := range types {
		// Upsert by code so reruns refresh templates without duplicating rows.
		var existing model.NotificationType
		err := db.Where("code = ?", t.Code).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&t).Error; err != nil {
				log.Printf("Warning: Failed to seed notification type %s: %v", t.Code, err)
			}
			continue
		}
		if err != nil {
			log.Printf("Warning: Failed to check notification type %s: %v", t.Code, err)
			continue
		}
		t.ID = existing.ID
		if err := db.Save(&t).Error; err != nil {
			log.Printf("Warning: Failed to update notification type %s: %v", t.Code, err)
		}
	}
	log.Println("Notification types seeded.")
}
