package dto

// Request DTOs

type CreatePatientProfileRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=100"`
	Age      int    `json:"age" validate:"gte=0,lte=150"`
	Gender   string `json:"gender" validate:"required,oneof=M F O"`
	Phone    string `json:"phone" validate:"required,min=7,max=20"`
}

// Response DTOs

type PatientProfileResponse struct {
	UserID   int    `json:"user_id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}
