package repository

import (
	"context"
	"errors"
	"time"

	"medimatch/internal/domain/entity"
	domainRepo "medimatch/internal/domain/repository"

	"gorm.io/gorm"
)

// Appointment times are TIMESTAMP columns holding the server's local wall
// clock. Values are bound in time.Local and scanned back into it.
type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	if appointment.Status == "" {
		appointment.Status = entity.AppointmentStatusScheduled
	}
	appointment.AppointmentTime = appointment.AppointmentTime.In(time.Local)
	return db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	appointment.AppointmentTime = entity.LocalWallClock(appointment.AppointmentTime)
	return &appointment, nil
}

// FindByDoctorInWindow returns a doctor's appointments inside window, joined with
// the patient's details and picture, earliest first.
func (r *appointmentRepository) FindByDoctorInWindow(ctx context.Context, db *gorm.DB, doctorID int, window entity.DayWindow) ([]entity.DoctorAppointmentRow, error) {
	rows := []entity.DoctorAppointmentRow{}
	err := db.WithContext(ctx).Table("appointments").
		Select(`appointments.id, appointments.appointment_time, appointments.status,
			patient_details.full_name AS patient_full_name,
			patient_details.phone AS patient_phone,
			patient_details.age AS patient_age,
			patient_details.gender AS patient_gender,
			users.picture AS patient_picture`).
		Joins("JOIN patient_details ON patient_details.user_id = appointments.user_id").
		Joins("JOIN users ON users.user_id = appointments.user_id").
		Where("appointments.doctor_id = ? AND appointments.appointment_time >= ? AND appointments.appointment_time < ?",
			doctorID, window.Start.In(time.Local), window.End.In(time.Local)).
		Order("appointments.appointment_time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].AppointmentTime = entity.LocalWallClock(rows[i].AppointmentTime)
	}
	return rows, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int) ([]entity.PatientAppointmentRow, error) {
	rows := []entity.PatientAppointmentRow{}
	err := db.WithContext(ctx).Table("appointments").
		Select(`appointments.id, appointments.appointment_time, appointments.status, appointments.doctor_id,
			doctor_details.full_name AS doctor_full_name,
			doctor_details.picture AS doctor_picture,
			specializations.name AS specialization`).
		Joins("JOIN doctor_details ON doctor_details.user_id = appointments.doctor_id").
		Joins("LEFT JOIN specializations ON specializations.id = doctor_details.specialization_id").
		Where("appointments.user_id = ?", patientID).
		Order("appointments.appointment_time DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].AppointmentTime = entity.LocalWallClock(rows[i].AppointmentTime)
	}
	return rows, nil
}

func (r *appointmentRepository) FindScheduledTimes(ctx context.Context, db *gorm.DB, doctorID int, window entity.DayWindow) ([]time.Time, error) {
	times := []time.Time{}
	err := db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("doctor_id = ? AND status = ? AND appointment_time >= ? AND appointment_time < ?",
			doctorID, entity.AppointmentStatusScheduled, window.Start.In(time.Local), window.End.In(time.Local)).
		Order("appointment_time ASC").
		Pluck("appointment_time", &times).Error
	if err != nil {
		return nil, err
	}
	for i := range times {
		times[i] = entity.LocalWallClock(times[i])
	}
	return times, nil
}

// ExistsScheduled is the single uniqueness check applied before booking.
func (r *appointmentRepository) ExistsScheduled(ctx context.Context, db *gorm.DB, doctorID int, at time.Time) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("doctor_id = ? AND appointment_time = ? AND status = ?", doctorID, at.In(time.Local), entity.AppointmentStatusScheduled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatus moves an appointment from one status to another only if it is
// still in from. Returns affected rows: 0 means the appointment was no longer in from.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id int, from, to entity.AppointmentStatus) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}
