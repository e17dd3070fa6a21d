package entity

import (
	"time"

	"github.com/google/uuid"
)

// LiveClass is a scheduled class meeting learners can join.
type LiveClass struct {
	Id          uuid.UUID
	CourseId    *uuid.UUID
	Title       string
	Instructor  string
	Category    string
	Description string
	Topics      []string
	StartTime   time.Time
	Duration    string
	Attendees   int
	CoverImage  string
	CreatedAt   time.Time
}

// ClassChatMessage is one entry of a class session's append-only chat log.
type ClassChatMessage struct {
	Id         uuid.UUID
	LiveClassId uuid.UUID
	UserId     uuid.UUID
	AuthorName string
	Body       string
	CreatedAt  time.Time
}
