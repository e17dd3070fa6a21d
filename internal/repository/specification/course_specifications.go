package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

type ByCourse struct {
	CourseID uuid.UUID
}

func (s ByCourse) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("course_id = ?", s.CourseID)
}

type ByLiveClass struct {
	LiveClassID uuid.UUID
}

func (s ByLiveClass) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("live_class_id = ?", s.LiveClassID)
}

// StartingAfter keeps only class meetings that have not started yet.
type StartingAfter struct {
	Time time.Time
}

func (s StartingAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("start_time > ?", s.Time)
}
