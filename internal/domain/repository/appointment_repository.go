package repository

import (
	"context"
	"time"

	"medimatch/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error)
	FindByDoctorInWindow(ctx context.Context, db *gorm.DB, doctorID int, window entity.DayWindow) ([]entity.DoctorAppointmentRow, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int) ([]entity.PatientAppointmentRow, error)
	FindScheduledTimes(ctx context.Context, db *gorm.DB, doctorID int, window entity.DayWindow) ([]time.Time, error)
	ExistsScheduled(ctx context.Context, db *gorm.DB, doctorID int, at time.Time) (bool, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id int, from, to entity.AppointmentStatus) (int64, error)
}
