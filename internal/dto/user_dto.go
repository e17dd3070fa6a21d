package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id        uuid.UUID              `json:"id"`
	Email     string                 `json:"email"`
	FullName  string                 `json:"full_name"`
	Role      string                 `json:"role"`
	Status    string                 `json:"status"`
	AvatarURL string                 `json:"avatar_url,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName  string                 `json:"full_name" validate:"required,min=2"`
	AvatarURL *string                `json:"avatar_url" validate:"omitempty,url"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type DashboardResponse struct {
	Enrollments     []EnrollmentResponse `json:"enrollments"`
	UpcomingClasses []LiveClassResponse  `json:"upcoming_classes"`
	TotalCourses    int                  `json:"total_courses"`
	AverageProgress int                  `json:"average_progress"`
}
