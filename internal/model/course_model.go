package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Instructor  string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Level       string    `gorm:"type:varchar(50);not null"`
	Duration    string    `gorm:"type:varchar(50)"`
	Rating      float64   `gorm:"default:0"`
	Students    int       `gorm:"default:0"`
	CoverImage  string    `gorm:"type:text"`
	Featured    bool      `gorm:"default:false"`
	Status      string    `gorm:"type:varchar(50);not null;default:'draft';index"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Course) TableName() string {
	return "courses"
}

type CurriculumSection struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseId uuid.UUID `gorm:"type:uuid;not null;index"`
	Title    string    `gorm:"type:varchar(255);not null"`
	Position int       `gorm:"not null"`
	Lessons  []Lesson  `gorm:"foreignKey:SectionId"`
}

func (CurriculumSection) TableName() string {
	return "curriculum_sections"
}

type Lesson struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SectionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Duration  string    `gorm:"type:varchar(50)"`
	Position  int       `gorm:"not null"`
	Preview   bool      `gorm:"default:false"`
}

func (Lesson) TableName() string {
	return "lessons"
}

type Enrollment struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseId   uuid.UUID `gorm:"type:uuid;not null;index:idx_enrollments_course_user,unique,priority:1"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index:idx_enrollments_course_user,unique,priority:2"`
	Progress   int       `gorm:"default:0"`
	EnrolledAt time.Time `gorm:"autoCreateTime"`
	Course     *Course   `gorm:"foreignKey:CourseId"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

type ContactMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Subject   string    `gorm:"type:varchar(255)"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
