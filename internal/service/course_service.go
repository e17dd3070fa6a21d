package service

import (
	"context"
	"errors"
	"time"

	"fikrswap-academy-be/internal/dto"
	"fikrswap-academy-be/internal/entity"
	"fikrswap-academy-be/internal/pkg/logger"
	"fikrswap-academy-be/internal/repository/specification"
	"fikrswap-academy-be/internal/repository/unitofwork"
	"fikrswap-academy-be/pkg/events"
	pktNats "fikrswap-academy-be/pkg/nats"

	"github.com/google/uuid"
)

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
)

type ICourseService interface {
	ListPublished(ctx context.Context) ([]dto.CourseResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.CourseResponse, error)
	GetCurriculum(ctx context.Context, courseId uuid.UUID) (*dto.CurriculumResponse, error)
	Enroll(ctx context.Context, userId, courseId uuid.UUID) (*dto.EnrollmentResponse, error)
	ListEnrollments(ctx context.Context, userId uuid.UUID) ([]dto.EnrollmentResponse, error)
	UpdateProgress(ctx context.Context, userId, enrollmentId uuid.UUID, progress int) error
}

type courseService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewCourseService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, log logger.ILogger) ICourseService {
	return &courseService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// ListPublished returns published courses, newest first.
func (s *courseService) ListPublished(ctx context.Context) ([]dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	courses, err := uow.CourseRepository().FindAll(ctx,
		specification.ByStatus{Status: string(entity.CourseStatusPublished)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, toCourseResponse(c))
	}
	return out, nil
}

func (s *courseService) GetById(ctx context.Context, id uuid.UUID) (*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	resp := toCourseResponse(course)
	return &resp, nil
}

func (s *courseService) GetCurriculum(ctx context.Context, courseId uuid.UUID) (*dto.CurriculumResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: courseId})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	sections, err := uow.CourseRepository().FindCurriculum(ctx, courseId)
	if err != nil {
		return nil, err
	}

	resp := &dto.CurriculumResponse{
		CourseId: courseId,
		Sections: make([]dto.CurriculumSectionDTO, 0, len(sections)),
	}
	for _, section := range sections {
		sectionDTO := dto.CurriculumSectionDTO{
			Id:      section.Id,
			Title:   section.Title,
			Lessons: make([]dto.LessonDTO, 0, len(section.Lessons)),
		}
		for _, lesson := range section.Lessons {
			sectionDTO.Lessons = append(sectionDTO.Lessons, dto.LessonDTO{
				Id:       lesson.Id,
				Title:    lesson.Title,
				Duration: lesson.Duration,
				Preview:  lesson.Preview,
			})
		}
		resp.Sections = append(resp.Sections, sectionDTO)
	}
	return resp, nil
}

func (s *courseService) Enroll(ctx context.Context, userId, courseId uuid.UUID) (*dto.EnrollmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: courseId})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	existing, err := uow.EnrollmentRepository().FindOne(ctx,
		specification.ByCourse{CourseID: courseId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyEnrolled
	}

	enrollment := &entity.Enrollment{
		Id:         uuid.New(),
		CourseId:   courseId,
		UserId:     userId,
		Progress:   0,
		EnrolledAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.EnrollmentRepository().Create(ctx, enrollment); err != nil {
		return nil, err
	}

	// Student counter rides along with the enrollment row.
	course.Students++
	if err := uow.CourseRepository().Update(ctx, course); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.New(events.TypeCourseEnrolled, map[string]interface{}{
			"user_id":      userId.String(),
			"course_id":    courseId.String(),
			"course_title": course.Title,
		})
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("CourseService", "Failed to publish COURSE_ENROLLED event", map[string]interface{}{"error": err.Error()})
		}
	}

	resp := toEnrollmentResponse(enrollment)
	return &resp, nil
}

func (s *courseService) ListEnrollments(ctx context.Context, userId uuid.UUID) ([]dto.EnrollmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	enrollments, err := uow.EnrollmentRepository().FindAllWithCourse(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "enrolled_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, toEnrollmentResponse(e))
	}
	return out, nil
}

func (s *courseService) UpdateProgress(ctx context.Context, userId, enrollmentId uuid.UUID, progress int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	enrollment, err := uow.EnrollmentRepository().FindOne(ctx,
		specification.ByID{ID: enrollmentId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return errors.New("enrollment not found")
	}

	return uow.EnrollmentRepository().UpdateProgress(ctx, enrollmentId, progress)
}

func toCourseResponse(c *entity.Course) dto.CourseResponse {
	return dto.CourseResponse{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		Instructor:  c.Instructor,
		Category:    c.Category,
		Level:       string(c.Level),
		Duration:    c.Duration,
		Rating:      c.Rating,
		Students:    c.Students,
		CoverImage:  c.CoverImage,
		Featured:    c.Featured,
		CreatedAt:   c.CreatedAt,
	}
}

func toEnrollmentResponse(e *entity.Enrollment) dto.EnrollmentResponse {
	resp := dto.EnrollmentResponse{
		Id:         e.Id,
		CourseId:   e.CourseId,
		Progress:   e.Progress,
		EnrolledAt: e.EnrolledAt,
	}
	if e.Course != nil {
		course := toCourseResponse(e.Course)
		resp.Course = &course
	}
	return resp
}
