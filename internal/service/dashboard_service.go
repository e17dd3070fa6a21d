package service

import (
	"context"

	"fikrswap-academy-be/internal/dto"
	"fikrswap-academy-be/internal/pkg/logger"

	"github.com/google/uuid"
)

type IDashboardService interface {
	GetDashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error)
}

// dashboardService aggregates the learner's enrollments and the
// upcoming class schedule into one view payload.
type dashboardService struct {
	courseService    ICourseService
	liveClassService ILiveClassService
	logger           logger.ILogger
}

func NewDashboardService(courseService ICourseService, liveClassService ILiveClassService, log logger.ILogger) IDashboardService {
	return &dashboardService{
		courseService:    courseService,
		liveClassService: liveClassService,
		logger:           log,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error) {
	enrollments, err := s.courseService.ListEnrollments(ctx, userId)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.liveClassService.ListUpcoming(ctx)
	if err != nil {
		// The schedule is secondary; an empty list keeps the dashboard usable.
		s.logger.Warn("DashboardService", "Failed to load upcoming classes", map[string]interface{}{"error": err.Error()})
		upcoming = []dto.LiveClassResponse{}
	}

	totalProgress := 0
	for _, e := range enrollments {
		totalProgress += e.Progress
	}
	averageProgress := 0
	if len(enrollments) > 0 {
		averageProgress = totalProgress / len(enrollments)
	}

	return &dto.DashboardResponse{
		Enrollments:     enrollments,
		UpcomingClasses: upcoming,
		TotalCourses:    len(enrollments),
		AverageProgress: averageProgress,
	}, nil
}
