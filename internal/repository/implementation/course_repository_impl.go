package implementation

import (
	"context"
	"errors"

	"fikrswap-academy-be/internal/entity"
	"fikrswap-academy-be/internal/mapper"
	"fikrswap-academy-be/internal/model"
	"fikrswap-academy-be/internal/repository/contract"
	"fikrswap-academy-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CourseMapper
}

func NewCourseRepository(db *gorm.DB) contract.CourseRepository {
	return &CourseRepositoryImpl{
		db:     db,
		mapper: mapper.NewCourseMapper(),
	}
}

func (r *CourseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CourseRepositoryImpl) Create(ctx context.Context, course *entity.Course) error {
	modelCourse := r.mapper.ToModel(course)
	if err := r.db.WithContext(ctx).Create(modelCourse).Error; err != nil {
		return err
	}
	*course = *r.mapper.ToEntity(modelCourse)
	return nil
}

func (r *CourseRepositoryImpl) Update(ctx context.Context, course *entity.Course) error {
	modelCourse := r.mapper.ToModel(course)
	if err := r.db.WithContext(ctx).Save(modelCourse).Error; err != nil {
		return err
	}
	*course = *r.mapper.ToEntity(modelCourse)
	return nil
}

func (r *CourseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Course, error) {
	var modelCourse model.Course
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelCourse).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelCourse), nil
}

func (r *CourseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Course, error) {
	var modelCourses []*model.Course
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelCourses).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelCourses), nil
}

func (r *CourseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Course{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CourseRepositoryImpl) FindCurriculum(ctx context.Context, courseId uuid.UUID) ([]*entity.CurriculumSection, error) {
	var sections []*model.CurriculumSection
	err := r.db.WithContext(ctx).
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("course_id = ?", courseId).
		Order("position ASC").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}

	out := make([]*entity.CurriculumSection, 0, len(sections))
	for _, s := range sections {
		out = append(out, r.mapper.SectionToEntity(s))
	}
	return out, nil
}

func (r *CourseRepositoryImpl) CreateSection(ctx context.Context, section *entity.CurriculumSection) error {
	modelSection := r.mapper.SectionToModel(section)
	if err := r.db.WithContext(ctx).Create(modelSection).Error; err != nil {
		return err
	}
	*section = *r.mapper.SectionToEntity(modelSection)
	return nil
}

type EnrollmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CourseMapper
}

func NewEnrollmentRepository(db *gorm.DB) contract.EnrollmentRepository {
	return &EnrollmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewCourseMapper(),
	}
}

func (r *EnrollmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EnrollmentRepositoryImpl) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	modelEnrollment := r.mapper.EnrollmentToModel(enrollment)
	if err := r.db.WithContext(ctx).Create(modelEnrollment).Error; err != nil {
		return err
	}
	*enrollment = *r.mapper.EnrollmentToEntity(modelEnrollment)
	return nil
}

func (r *EnrollmentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Enrollment, error) {
	var modelEnrollment model.Enrollment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelEnrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.EnrollmentToEntity(&modelEnrollment), nil
}

func (r *EnrollmentRepositoryImpl) FindAllWithCourse(ctx context.Context, specs ...specification.Specification) ([]*entity.Enrollment, error) {
	var modelEnrollments []*model.Enrollment
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Course"), specs...)

	if err := query.Find(&modelEnrollments).Error; err != nil {
		return nil, err
	}

	out := make([]*entity.Enrollment, 0, len(modelEnrollments))
	for _, mo := range modelEnrollments {
		out = append(out, r.mapper.EnrollmentToEntity(mo))
	}
	return out, nil
}

func (r *EnrollmentRepositoryImpl) UpdateProgress(ctx context.Context, id uuid.UUID, progress int) error {
	return r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("id = ?", id).
		Update("progress", progress).Error
}

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) contract.ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, message *entity.ContactMessage) error {
	m := &model.ContactMessage{
		Id:        message.Id,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Body:      message.Body,
		CreatedAt: message.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	message.Id = m.Id
	message.CreatedAt = m.CreatedAt
	return nil
}
