package unitofwork

import (
	"context"

	"fikrswap-academy-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CourseRepository() contract.CourseRepository
	EnrollmentRepository() contract.EnrollmentRepository
	ContactRepository() contract.ContactRepository
	LiveClassRepository() contract.LiveClassRepository
}
