package repository

import (
	"context"
	"errors"
	"strings"

	"medimatch/internal/domain/entity"
	domainRepo "medimatch/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorDetailsRepository struct{}

func NewDoctorDetailsRepository() domainRepo.DoctorDetailsRepository {
	return &doctorDetailsRepository{}
}

func (r *doctorDetailsRepository) Create(ctx context.Context, db *gorm.DB, details *entity.DoctorDetails) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(details).Error
}

func (r *doctorDetailsRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID int) (*entity.DoctorDetails, error) {
	var details entity.DoctorDetails
	err := db.WithContext(ctx).
		Preload("User").Preload("Specialization").
		Where("user_id = ?", userID).
		First(&details).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &details, nil
}

// Search returns active doctors matching filter.
// Supports optional filters: free-text query, specialization, language, fee range and minimum experience.
func (r *doctorDetailsRepository) Search(ctx context.Context, db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorDetails, error) {
	var doctors []entity.DoctorDetails
	query := db.WithContext(ctx).
		Joins("JOIN specializations ON specializations.id = doctor_details.specialization_id").
		Where("doctor_details.status = ?", entity.DoctorStatusActive)

	if filter != nil {
		if filter.Query != "" {
			pattern := "%" + escapeLike(filter.Query) + "%"
			query = query.Where("(doctor_details.full_name ILIKE ? OR specializations.name ILIKE ?)", pattern, pattern)
		}
		if filter.Specialization != "" {
			query = query.Where("specializations.name = ?", filter.Specialization)
		}
		if filter.Language != "" {
			query = query.Where("lower(?) = ANY(string_to_array(lower(doctor_details.languages), ','))", strings.TrimSpace(filter.Language))
		}
		if filter.MinFee != nil {
			query = query.Where("doctor_details.fees >= ?", *filter.MinFee)
		}
		if filter.MaxFee != nil {
			query = query.Where("doctor_details.fees <= ?", *filter.MaxFee)
		}
		if filter.MinExperience > 0 {
			query = query.Where("doctor_details.experience >= ?", filter.MinExperience)
		}
	}

	err := query.
		Preload("User").Preload("Specialization").
		Order("doctor_details.experience DESC, doctor_details.full_name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorDetailsRepository) UpdateStatus(ctx context.Context, db *gorm.DB, userID int, status entity.DoctorStatus) error {
	return db.WithContext(ctx).Model(&entity.DoctorDetails{}).
		Where("user_id = ?", userID).
		Update("status", status).Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
