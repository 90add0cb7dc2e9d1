package repository

import (
	"context"
	"errors"

	"medimatch/internal/domain/entity"
	domainRepo "medimatch/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type patientDetailsRepository struct{}

func NewPatientDetailsRepository() domainRepo.PatientDetailsRepository {
	return &patientDetailsRepository{}
}

func (r *patientDetailsRepository) Create(ctx context.Context, db *gorm.DB, details *entity.PatientDetails) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(details).Error
}

func (r *patientDetailsRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID int) (*entity.PatientDetails, error) {
	var details entity.PatientDetails
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&details).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &details, nil
}
