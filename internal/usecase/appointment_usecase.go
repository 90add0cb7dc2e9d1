package usecase

import (
	"context"
	"errors"
	"time"

	"medimatch/config"
	"medimatch/internal/converter"
	"medimatch/internal/delivery/dto"
	"medimatch/internal/domain/entity"
	"medimatch/internal/domain/repository"
	"medimatch/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrAppointmentNotOwned     = errors.New("appointment does not belong to you")
	ErrAppointmentInPast       = errors.New("appointment time must be in the future")
	ErrInvalidSlot             = errors.New("appointment time is not a bookable slot")
	ErrSlotTaken               = errors.New("doctor already has an appointment at this time")
	ErrPatientProfileRequired  = errors.New("complete your patient profile before booking")
	ErrCannotBookSelf          = errors.New("doctors cannot book themselves")
	ErrInvalidStatusTransition = errors.New("appointment is no longer scheduled")
)

type AppointmentUsecase interface {
	GetTodaysAppointments(ctx context.Context, doctorID int, window entity.DayWindow) ([]dto.DoctorAppointmentResponse, error)
	BookAppointment(ctx context.Context, patientID int, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, patientID int) ([]dto.PatientAppointmentResponse, error)
	CompleteAppointment(ctx context.Context, doctorID, appointmentID int) error
	CancelAppointment(ctx context.Context, userID, appointmentID int) error
	GetAvailableSlots(ctx context.Context, doctorID int, day entity.DayWindow) (*dto.AvailableSlotsResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorDetailsRepository
	patientRepo     repository.PatientDetailsRepository
	auditService    service.AuditService
	slot            config.SlotConfig
	now             func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorDetailsRepository,
	patientRepo repository.PatientDetailsRepository,
	auditService service.AuditService,
	slot config.SlotConfig,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		auditService:    auditService,
		slot:            slot,
		now:             time.Now,
	}
}

// GetTodaysAppointments lists a doctor's appointments inside window, earliest
// first. A day without appointments yields an empty slice.
func (u *appointmentUsecase) GetTodaysAppointments(ctx context.Context, doctorID int, window entity.DayWindow) ([]dto.DoctorAppointmentResponse, error) {
	rows, err := u.appointmentRepo.FindByDoctorInWindow(ctx, u.db, doctorID, window)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return converter.DoctorAppointmentsToResponses(rows), nil
}

// BookAppointment schedules a patient with an active doctor.
// The only double-booking guard is a check for an existing scheduled
// appointment of the same doctor at the same time.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, patientID int, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	if req.DoctorID == patientID {
		return nil, ErrCannotBookSelf
	}

	// TIMESTAMP columns keep the wall clock, so every booking is compared in one zone
	at := req.AppointmentTime.In(time.Local)
	if !at.After(u.now()) {
		return nil, ErrAppointmentInPast
	}
	if !u.isSlot(at) {
		return nil, ErrInvalidSlot
	}

	patient, err := u.patientRepo.FindByUserID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientProfileRequired
	}

	doctor, err := u.doctorRepo.FindByUserID(ctx, u.db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsActive() {
		return nil, ErrDoctorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	taken, err := u.appointmentRepo.ExistsScheduled(ctx, tx, req.DoctorID, at)
	if err != nil {
		u.log.Warnf("Failed to check doctor %d availability: %+v", req.DoctorID, err)
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	appointment := &entity.Appointment{
		PatientID:       patientID,
		DoctorID:        req.DoctorID,
		AppointmentTime: at,
		Status:          entity.AppointmentStatusScheduled,
	}
	if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
		if isForeignKeyError(err, "doctor_id") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &patientID, entity.AuditActionAppointmentBook, "appointment", appointment.ID, entity.JSON{
		"doctor_id":        appointment.DoctorID,
		"appointment_time": appointment.AppointmentTime,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%d, doctor=%d, patient=%d", appointment.ID, appointment.DoctorID, patientID)
	return converter.AppointmentToResponse(appointment), nil
}

// GetMyAppointments returns a patient's appointments, newest first
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context, patientID int) ([]dto.PatientAppointmentResponse, error) {
	rows, err := u.appointmentRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	return converter.PatientAppointmentsToResponses(rows), nil
}

// CompleteAppointment is called by the appointment's doctor
func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, doctorID, appointmentID int) error {
	appointment, err := u.findAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment.DoctorID != doctorID {
		return ErrAppointmentNotOwned
	}

	return u.transition(ctx, doctorID, appointment, entity.AppointmentStatusCompleted, entity.AuditActionAppointmentComplete)
}

// CancelAppointment may be called by either the patient or the doctor
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, userID, appointmentID int) error {
	appointment, err := u.findAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}
	if !appointment.InvolvesUser(userID) {
		return ErrAppointmentNotOwned
	}

	return u.transition(ctx, userID, appointment, entity.AppointmentStatusCancelled, entity.AuditActionAppointmentCancel)
}

// GetAvailableSlots returns the free future slots of a doctor on day
func (u *appointmentUsecase) GetAvailableSlots(ctx context.Context, doctorID int, day entity.DayWindow) (*dto.AvailableSlotsResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsActive() {
		return nil, ErrDoctorNotFound
	}

	taken, err := u.appointmentRepo.FindScheduledTimes(ctx, u.db, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to find scheduled times for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	now := u.now()
	free := []time.Time{}
	for _, slot := range day.Slots(u.slot.StartHour, u.slot.EndHour, u.slotStep()) {
		if !slot.After(now) || containsTime(taken, slot) {
			continue
		}
		free = append(free, slot)
	}

	return &dto.AvailableSlotsResponse{
		DoctorID: doctorID,
		Date:     day.Start.Format("2006-01-02"),
		Slots:    free,
	}, nil
}

func (u *appointmentUsecase) findAppointment(ctx context.Context, appointmentID int) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

// transition applies a status change with a conditional update, so a
// concurrent change makes this call fail instead of overwriting it.
func (u *appointmentUsecase) transition(ctx context.Context, actorID int, appointment *entity.Appointment, to entity.AppointmentStatus, action string) error {
	if !appointment.Status.CanTransitionTo(to) {
		return ErrInvalidStatusTransition
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.UpdateStatus(ctx, tx, appointment.ID, appointment.Status, to)
	if err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", appointment.ID, err)
		return err
	}
	if affected == 0 {
		return ErrInvalidStatusTransition
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, action, "appointment", appointment.ID,
		string(appointment.Status), string(to)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *appointmentUsecase) slotStep() time.Duration {
	return time.Duration(u.slot.Minutes) * time.Minute
}

// isSlot reports whether t starts one of the configured slots of its day.
func (u *appointmentUsecase) isSlot(t time.Time) bool {
	slots := entity.DayWindowAt(t).Slots(u.slot.StartHour, u.slot.EndHour, u.slotStep())
	return containsTime(slots, t)
}

func containsTime(times []time.Time, t time.Time) bool {
	for _, v := range times {
		if v.Equal(t) {
			return true
		}
	}
	return false
}
