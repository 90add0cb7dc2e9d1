package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "S"
	AppointmentStatusCompleted AppointmentStatus = "C"
	AppointmentStatusCancelled AppointmentStatus = "X"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is reachable from s.
// Only scheduled appointments move, and only to completed or cancelled.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s != AppointmentStatusScheduled {
		return false
	}
	return next == AppointmentStatusCompleted || next == AppointmentStatusCancelled
}

// Appointment represents a booking between a patient and a doctor
type Appointment struct {
	ID              int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       int               `gorm:"column:user_id;not null;index" json:"user_id"`
	DoctorID        int               `gorm:"not null;index" json:"doctor_id"`
	AppointmentTime time.Time         `gorm:"not null;index" json:"appointment_time"`
	Status          AppointmentStatus `gorm:"type:char(1);not null;default:'S'" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// InvolvesUser reports whether userID is the patient or the doctor of the appointment.
func (a *Appointment) InvolvesUser(userID int) bool {
	return a.PatientID == userID || a.DoctorID == userID
}

// DoctorAppointmentRow is a doctor's appointment joined with patient data.
type DoctorAppointmentRow struct {
	ID              int
	AppointmentTime time.Time
	Status          AppointmentStatus
	PatientFullName string
	PatientPhone    string
	PatientAge      int
	PatientGender   string
	PatientPicture  string
}

// PatientAppointmentRow is a patient's appointment joined with doctor data.
type PatientAppointmentRow struct {
	ID              int
	AppointmentTime time.Time
	Status          AppointmentStatus
	DoctorID        int
	DoctorFullName  string
	DoctorPicture   string
	Specialization  string
}
