package entity

import (
	"time"

	"github.com/google/uuid"
)

type CourseStatus string
type CourseLevel string

const (
	CourseStatusDraft     CourseStatus = "draft"
	CourseStatusPublished CourseStatus = "published"
	CourseStatusArchived  CourseStatus = "archived"

	CourseLevelBeginner     CourseLevel = "Beginner"
	CourseLevelIntermediate CourseLevel = "Intermediate"
	CourseLevelAdvanced     CourseLevel = "Advanced"
)

type Course struct {
	Id          uuid.UUID
	Title       string
	Description string
	Instructor  string
	Category    string
	Level       CourseLevel
	Duration    string
	Rating      float64
	Students    int
	CoverImage  string
	Featured    bool
	Status      CourseStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CurriculumSection is one collapsible block of the course curriculum view.
type CurriculumSection struct {
	Id       uuid.UUID
	CourseId uuid.UUID
	Title    string
	Position int
	Lessons  []Lesson
}

type Lesson struct {
	Id        uuid.UUID
	SectionId uuid.UUID
	Title     string
	Duration  string
	Position  int
	Preview   bool
}

type Enrollment struct {
	Id         uuid.UUID
	CourseId   uuid.UUID
	UserId     uuid.UUID
	Progress   int // percent complete, 0-100
	EnrolledAt time.Time
	Course     *Course
}

type ContactMessage struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Subject   string
	Body      string
	CreatedAt time.Time
}
