package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateDoctorProfileRequest is submitted as a form by the doctor onboarding page.
type CreateDoctorProfileRequest struct {
	FullName       string `json:"fullName" validate:"required,min=2,max=100"`
	Age            int    `json:"age" validate:"required,gte=21,lte=100"`
	Gender         string `json:"gender" validate:"required,oneof=M F O"`
	Phone          string `json:"phone" validate:"required,min=7,max=20"`
	Specialization string `json:"specialization" validate:"required"`
	Experience     int    `json:"experience" validate:"gte=0,lte=80"`
	RegNo          string `json:"regNo" validate:"required,max=50"`
	Languages      string `json:"languages" validate:"required"`
	Address        string `json:"address" validate:"required"`
	Bio            string `json:"bio" validate:"omitempty,max=2000"`
	Picture        string `json:"picture" validate:"omitempty,url"`
	Location       string `json:"location" validate:"required"`
	Fees           string `json:"fees" validate:"required,numeric"`
}

type SearchDoctorsRequest struct {
	Query          string `json:"q" validate:"omitempty,max=100"`
	Specialization string `json:"specialization" validate:"omitempty"`
	Language       string `json:"language" validate:"omitempty"`
	MinFee         string `json:"min_fee" validate:"omitempty,numeric"`
	MaxFee         string `json:"max_fee" validate:"omitempty,numeric"`
	MinExperience  int    `json:"min_experience" validate:"gte=0"`
}

type UpdateDoctorStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=U I A"`
}

// Response DTOs

type DoctorResponse struct {
	ID             int             `json:"id"`
	FullName       string          `json:"full_name"`
	Age            int             `json:"age"`
	Gender         string          `json:"gender"`
	Picture        string          `json:"picture"`
	Experience     int             `json:"experience"`
	Location       string          `json:"location"`
	Fees           decimal.Decimal `json:"fees"`
	Specialization string          `json:"specialization"`
	Languages      []string        `json:"languages"`
	Bio            string          `json:"bio,omitempty"`
	Status         string          `json:"status"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type DoctorProfileResponse struct {
	DoctorResponse
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	RegNo     string    `json:"reg_no"`
	CreatedAt time.Time `json:"created_at"`
}

type SpecializationResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type AvailableSlotsResponse struct {
	DoctorID int         `json:"doctor_id"`
	Date     string      `json:"date"`
	Slots    []time.Time `json:"slots"`
}
