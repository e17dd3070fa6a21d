package unitofwork

import (
	"context"
	"fmt"

	"fikrswap-academy-be/internal/repository/contract"
	"fikrswap-academy-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil when operating outside one
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CourseRepository() contract.CourseRepository {
	return implementation.NewCourseRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EnrollmentRepository() contract.EnrollmentRepository {
	return implementation.NewEnrollmentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ContactRepository() contract.ContactRepository {
	return implementation.NewContactRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LiveClassRepository() contract.LiveClassRepository {
	return implementation.NewLiveClassRepository(u.getDB())
}
