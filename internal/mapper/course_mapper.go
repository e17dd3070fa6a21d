package mapper

import (
	"fikrswap-academy-be/internal/entity"
	"fikrswap-academy-be/internal/model"
)

type CourseMapper struct{}

func NewCourseMapper() *CourseMapper {
	return &CourseMapper{}
}

func (m *CourseMapper) ToModel(e *entity.Course) *model.Course {
	if e == nil {
		return nil
	}
	return &model.Course{
		Id:          e.Id,
		Title:       e.Title,
		Description: e.Description,
		Instructor:  e.Instructor,
		Category:    e.Category,
		Level:       string(e.Level),
		Duration:    e.Duration,
		Rating:      e.Rating,
		Students:    e.Students,
		CoverImage:  e.CoverImage,
		Featured:    e.Featured,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (m *CourseMapper) ToEntity(mo *model.Course) *entity.Course {
	if mo == nil {
		return nil
	}
	return &entity.Course{
		Id:          mo.Id,
		Title:       mo.Title,
		Description: mo.Description,
		Instructor:  mo.Instructor,
		Category:    mo.Category,
		Level:       entity.CourseLevel(mo.Level),
		Duration:    mo.Duration,
		Rating:      mo.Rating,
		Students:    mo.Students,
		CoverImage:  mo.CoverImage,
		Featured:    mo.Featured,
		Status:      entity.CourseStatus(mo.Status),
		CreatedAt:   mo.CreatedAt,
		UpdatedAt:   mo.UpdatedAt,
	}
}

func (m *CourseMapper) ToEntities(models []*model.Course) []*entity.Course {
	out := make([]*entity.Course, 0, len(models))
	for _, mo := range models {
		out = append(out, m.ToEntity(mo))
	}
	return out
}

func (m *CourseMapper) SectionToEntity(mo *model.CurriculumSection) *entity.CurriculumSection {
	if mo == nil {
		return nil
	}
	lessons := make([]entity.Lesson, 0, len(mo.Lessons))
	for _, l := range mo.Lessons {
		lessons = append(lessons, entity.Lesson{
			Id:        l.Id,
			SectionId: l.SectionId,
			Title:     l.Title,
			Duration:  l.Duration,
			Position:  l.Position,
			Preview:   l.Preview,
		})
	}
	return &entity.CurriculumSection{
		Id:       mo.Id,
		CourseId: mo.CourseId,
		Title:    mo.Title,
		Position: mo.Position,
		Lessons:  lessons,
	}
}

func (m *CourseMapper) SectionToModel(e *entity.CurriculumSection) *model.CurriculumSection {
	if e == nil {
		return nil
	}
	lessons := make([]model.Lesson, 0, len(e.Lessons))
	for _, l := range e.Lessons {
		lessons = append(lessons, model.Lesson{
			Id:        l.Id,
			SectionId: l.SectionId,
			Title:     l.Title,
			Duration:  l.Duration,
			Position:  l.Position,
			Preview:   l.Preview,
		})
	}
	return &model.CurriculumSection{
		Id:       e.Id,
		CourseId: e.CourseId,
		Title:    e.Title,
		Position: e.Position,
		Lessons:  lessons,
	}
}

func (m *CourseMapper) EnrollmentToModel(e *entity.Enrollment) *model.Enrollment {
	if e == nil {
		return nil
	}
	return &model.Enrollment{
		Id:         e.Id,
		CourseId:   e.CourseId,
		UserId:     e.UserId,
		Progress:   e.Progress,
		EnrolledAt: e.EnrolledAt,
	}
}

func (m *CourseMapper) EnrollmentToEntity(mo *model.Enrollment) *entity.Enrollment {
	if mo == nil {
		return nil
	}
	return &entity.Enrollment{
		Id:         mo.Id,
		CourseId:   mo.CourseId,
		UserId:     mo.UserId,
		Progress:   mo.Progress,
		EnrolledAt: mo.EnrolledAt,
		Course:     m.ToEntity(mo.Course),
	}
}
