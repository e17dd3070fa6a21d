package contract

import (
	"context"

	"fikrswap-academy-be/internal/entity"
	"fikrswap-academy-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	Update(ctx context.Context, course *entity.Course) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Course, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Course, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	FindCurriculum(ctx context.Context, courseId uuid.UUID) ([]*entity.CurriculumSection, error)
	CreateSection(ctx context.Context, section *entity.CurriculumSection) error
}

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *entity.Enrollment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Enrollment, error)
	// FindAllWithCourse preloads the joined course record for dashboard views.
	FindAllWithCourse(ctx context.Context, specs ...specification.Specification) ([]*entity.Enrollment, error)
	UpdateProgress(ctx context.Context, id uuid.UUID, progress int) error
}

type ContactRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
}
