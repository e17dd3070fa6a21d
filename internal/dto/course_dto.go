package dto

import (
	"time"

	"github.com/google/uuid"
)

type CourseResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Instructor  string    `json:"instructor"`
	Category    string    `json:"category"`
	Level       string    `json:"level"`
	Duration    string    `json:"duration"`
	Rating      float64   `json:"rating"`
	Students    int       `json:"students"`
	CoverImage  string    `json:"cover_image"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

type LessonDTO struct {
	Id       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Duration string    `json:"duration"`
	Preview  bool      `json:"preview"`
}

type CurriculumSectionDTO struct {
	Id      uuid.UUID   `json:"id"`
	Title   string      `json:"title"`
	Lessons []LessonDTO `json:"lessons"`
}

type CurriculumResponse struct {
	CourseId uuid.UUID              `json:"course_id"`
	Sections []CurriculumSectionDTO `json:"sections"`
}

type EnrollRequest struct {
	CourseId uuid.UUID `json:"course_id" validate:"required"`
}

type EnrollmentResponse struct {
	Id         uuid.UUID       `json:"id"`
	CourseId   uuid.UUID       `json:"course_id"`
	Progress   int             `json:"progress"`
	EnrolledAt time.Time       `json:"enrolled_at"`
	Course     *CourseResponse `json:"course,omitempty"`
}

type UpdateProgressRequest struct {
	Progress int `json:"progress" validate:"min=0,max=100"`
}
