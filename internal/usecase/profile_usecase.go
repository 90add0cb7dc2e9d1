package usecase

import (
	"context"
	"errors"
	"strings"

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
	ErrUserNotFound           = errors.New("user not found")
	ErrDoctorProfileExists    = errors.New("doctor profile already exists")
	ErrDoctorProfileNotFound  = errors.New("doctor profile not found")
	ErrPatientProfileExists   = errors.New("patient profile already exists")
	ErrPatientProfileNotFound = errors.New("patient profile not found")
	ErrRegNoAlreadyExists     = errors.New("registration number already exists")
	ErrSpecializationNotFound = errors.New("specialization not found")
	ErrInvalidFees            = errors.New("fees must be a non-negative amount")
	ErrInvalidLanguages       = errors.New("at least one language is required")
)

// fees are stored as numeric(10,2)
var maxFees = decimal.New(1, 8)

type ProfileUsecase interface {
	CreateDoctorProfile(ctx context.Context, userID int, req *dto.CreateDoctorProfileRequest) (*dto.DoctorProfileResponse, error)
	GetDoctorProfile(ctx context.Context, userID int) (*dto.DoctorProfileResponse, error)
	CreatePatientProfile(ctx context.Context, userID int, req *dto.CreatePatientProfileRequest) (*dto.PatientProfileResponse, error)
	GetPatientProfile(ctx context.Context, userID int) (*dto.PatientProfileResponse, error)
}

type profileUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	doctorRepo         repository.DoctorDetailsRepository
	patientRepo        repository.PatientDetailsRepository
	specializationRepo repository.SpecializationRepository
	auditService       service.AuditService
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorDetailsRepository,
	patientRepo repository.PatientDetailsRepository,
	specializationRepo repository.SpecializationRepository,
	auditService service.AuditService,
) ProfileUsecase {
	return &profileUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		doctorRepo:         doctorRepo,
		patientRepo:        patientRepo,
		specializationRepo: specializationRepo,
		auditService:       auditService,
	}
}

// CreateDoctorProfile stores the doctor details as unverified and promotes the
// user to the doctor role in one transaction.
func (u *profileUsecase) CreateDoctorProfile(ctx context.Context, userID int, req *dto.CreateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	fees, err := decimal.NewFromString(req.Fees)
	if err != nil {
		return nil, ErrInvalidFees
	}
	fees = fees.Round(2)
	if fees.IsNegative() || fees.GreaterThanOrEqual(maxFees) {
		return nil, ErrInvalidFees
	}

	languages := entity.ParseLanguages(req.Languages)
	if len(languages) == 0 {
		return nil, ErrInvalidLanguages
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	existing, err := u.doctorRepo.FindByUserID(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDoctorProfileExists
	}

	specialization, err := u.specializationRepo.FindByName(ctx, tx, strings.TrimSpace(req.Specialization))
	if err != nil {
		u.log.Warnf("Failed to find specialization: %+v", err)
		return nil, err
	}
	if specialization == nil {
		return nil, ErrSpecializationNotFound
	}

	picture := req.Picture
	if picture == "" {
		picture = user.Picture
	}

	details := &entity.DoctorDetails{
		UserID:           userID,
		FullName:         strings.TrimSpace(req.FullName),
		Age:              req.Age,
		Gender:           req.Gender,
		Phone:            req.Phone,
		Picture:          picture,
		Address:          req.Address,
		Experience:       req.Experience,
		Location:         req.Location,
		Fees:             fees,
		SpecializationID: specialization.ID,
		Languages:        languages,
		Bio:              req.Bio,
		RegNo:            strings.TrimSpace(req.RegNo),
		Status:           entity.DoctorStatusUnverified,
	}

	if err := u.doctorRepo.Create(ctx, tx, details); err != nil {
		if isDuplicateKeyError(err, "reg_no") {
			return nil, ErrRegNoAlreadyExists
		}
		if isDuplicateKeyError(err, "pkey") {
			return nil, ErrDoctorProfileExists
		}
		if isForeignKeyError(err, "specialization") {
			return nil, ErrSpecializationNotFound
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	// admins keep their role
	role := user.Role
	if role != entity.RoleAdmin {
		role = entity.RoleDoctor
		if err := u.userRepo.UpdateRole(ctx, tx, userID, role); err != nil {
			u.log.Warnf("Failed to promote user %d to doctor: %+v", userID, err)
			return nil, err
		}
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionDoctorProfileCreate, "doctor_details", userID, entity.JSON{
		"reg_no":         details.RegNo,
		"specialization": specialization.Name,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	details.User = *user
	details.User.Role = role
	details.Specialization = *specialization

	return converter.DoctorToProfileResponse(details), nil
}

func (u *profileUsecase) GetDoctorProfile(ctx context.Context, userID int) (*dto.DoctorProfileResponse, error) {
	details, err := u.doctorRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if details == nil {
		return nil, ErrDoctorProfileNotFound
	}

	return converter.DoctorToProfileResponse(details), nil
}

func (u *profileUsecase) CreatePatientProfile(ctx context.Context, userID int, req *dto.CreatePatientProfileRequest) (*dto.PatientProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.patientRepo.FindByUserID(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPatientProfileExists
	}

	details := &entity.PatientDetails{
		UserID:   userID,
		FullName: strings.TrimSpace(req.FullName),
		Phone:    req.Phone,
		Age:      req.Age,
		Gender:   req.Gender,
	}

	if err := u.patientRepo.Create(ctx, tx, details); err != nil {
		if isDuplicateKeyError(err, "pkey") {
			return nil, ErrPatientProfileExists
		}
		if isForeignKeyError(err, "user_id") {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionPatientProfileCreate, "patient_details", userID, nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(details), nil
}

func (u *profileUsecase) GetPatientProfile(ctx context.Context, userID int) (*dto.PatientProfileResponse, error) {
	details, err := u.patientRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if details == nil {
		return nil, ErrPatientProfileNotFound
	}

	return converter.PatientToResponse(details), nil
}
