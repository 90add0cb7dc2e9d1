package usecase

import (
	"context"
	"errors"

	"medimatch/internal/converter"
	"medimatch/internal/delivery/dto"
	"medimatch/internal/domain/entity"
	"medimatch/internal/domain/repository"
	"medimatch/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrInvalidFeeRange     = errors.New("min_fee must not exceed max_fee")
	ErrInvalidDoctorStatus = errors.New("invalid doctor status")
)

type DoctorUsecase interface {
	SearchDoctors(ctx context.Context, req *dto.SearchDoctorsRequest) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error)
	ListSpecializations(ctx context.Context) ([]dto.SpecializationResponse, error)
	UpdateDoctorStatus(ctx context.Context, adminID, doctorID int, status entity.DoctorStatus) error
}

type doctorUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	doctorRepo         repository.DoctorDetailsRepository
	specializationRepo repository.SpecializationRepository
	auditService       service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorDetailsRepository,
	specializationRepo repository.SpecializationRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:                 db,
		log:                log,
		doctorRepo:         doctorRepo,
		specializationRepo: specializationRepo,
		auditService:       auditService,
	}
}

// SearchDoctors lists active doctors matching the request filters
func (u *doctorUsecase) SearchDoctors(ctx context.Context, req *dto.SearchDoctorsRequest) (*dto.DoctorListResponse, error) {
	filter := &entity.DoctorFilter{
		Query:          req.Query,
		Specialization: req.Specialization,
		Language:       req.Language,
		MinExperience:  req.MinExperience,
	}

	if req.MinFee != "" {
		minFee, err := decimal.NewFromString(req.MinFee)
		if err != nil {
			return nil, ErrInvalidFeeRange
		}
		filter.MinFee = &minFee
	}
	if req.MaxFee != "" {
		maxFee, err := decimal.NewFromString(req.MaxFee)
		if err != nil {
			return nil, ErrInvalidFeeRange
		}
		filter.MaxFee = &maxFee
	}
	if filter.MinFee != nil && filter.MaxFee != nil && filter.MinFee.GreaterThan(*filter.MaxFee) {
		return nil, ErrInvalidFeeRange
	}

	doctors, err := u.doctorRepo.Search(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to search doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// GetDoctor only exposes active doctors
func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsActive() {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) ListSpecializations(ctx context.Context) ([]dto.SpecializationResponse, error) {
	specializations, err := u.specializationRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find specializations: %+v", err)
		return nil, err
	}

	return converter.SpecializationsToResponses(specializations), nil
}

// UpdateDoctorStatus lets an admin verify, activate or deactivate a doctor
func (u *doctorUsecase) UpdateDoctorStatus(ctx context.Context, adminID, doctorID int, status entity.DoctorStatus) error {
	if !status.Valid() {
		return ErrInvalidDoctorStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByUserID(ctx, tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	if err := u.doctorRepo.UpdateStatus(ctx, tx, doctorID, status); err != nil {
		u.log.Warnf("Failed to update doctor %d status: %+v", doctorID, err)
		return err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionDoctorStatusUpdate, "doctor_details", doctorID,
		string(doctor.Status), string(status)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
