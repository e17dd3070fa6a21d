package dto

import (
	"time"

	"github.com/google/uuid"

	"fikrswap-academy-be/internal/liveclass"
)

type LiveClassResponse struct {
	Id          uuid.UUID  `json:"id"`
	CourseId    *uuid.UUID `json:"course_id,omitempty"`
	Title       string     `json:"title"`
	Instructor  string     `json:"instructor"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Topics      []string   `json:"topics"`
	StartTime   time.Time  `json:"start_time"`
	Duration    string     `json:"duration"`
	Attendees   int        `json:"attendees"`
	CoverImage  string     `json:"cover_image"`
}

type JoinClassRequest struct {
	ClassId uuid.UUID `json:"class_id" validate:"required"`
}

type SessionStateResponse struct {
	InClass bool                    `json:"in_class"`
	State   *liveclass.SessionState `json:"state,omitempty"`
}

type ToggleRequest struct {
	Control string `json:"control" validate:"required,oneof=audio video screen_share hand_raise participants_panel chat_panel fullscreen"`
}

type FullscreenChangeRequest struct {
	Active bool `json:"active"`
}

type ChatMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
	IsSelf    bool      `json:"is_self"`
}

type KeyEventRequest struct {
	Key         string `json:"key" validate:"required"`
	Ctrl        bool   `json:"ctrl"`
	Alt         bool   `json:"alt"`
	Shift       bool   `json:"shift"`
	Meta        bool   `json:"meta"`
	InTextInput bool   `json:"in_text_input"`
}
