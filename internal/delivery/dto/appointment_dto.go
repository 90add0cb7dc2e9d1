package dto

import "time"

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID        int       `json:"doctor_id" validate:"required,min=1"`
	AppointmentTime time.Time `json:"appointment_time" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              int       `json:"id"`
	PatientID       int       `json:"patient_id"`
	DoctorID        int       `json:"doctor_id"`
	AppointmentTime time.Time `json:"appointment_time"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type AppointmentPatient struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Picture  string `json:"picture"`
}

// DoctorAppointmentResponse is one row of a doctor's daily schedule.
type DoctorAppointmentResponse struct {
	ID              int                `json:"id"`
	AppointmentTime time.Time          `json:"appointment_time"`
	Status          string             `json:"status"`
	Patient         AppointmentPatient `json:"patient"`
}

type AppointmentDoctor struct {
	ID             int    `json:"id"`
	FullName       string `json:"full_name"`
	Picture        string `json:"picture"`
	Specialization string `json:"specialization"`
}

type PatientAppointmentResponse struct {
	ID              int               `json:"id"`
	AppointmentTime time.Time         `json:"appointment_time"`
	Status          string            `json:"status"`
	Doctor          AppointmentDoctor `json:"doctor"`
}
