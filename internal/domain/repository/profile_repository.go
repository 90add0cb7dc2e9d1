package repository

import (
	"context"

	"medimatch/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorDetailsRepository interface {
	Create(ctx context.Context, db *gorm.DB, details *entity.DoctorDetails) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID int) (*entity.DoctorDetails, error)
	Search(ctx context.Context, db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorDetails, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, userID int, status entity.DoctorStatus) error
}

type PatientDetailsRepository interface {
	Create(ctx context.Context, db *gorm.DB, details *entity.PatientDetails) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID int) (*entity.PatientDetails, error)
}

type SpecializationRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Specialization, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Specialization, error)
}
