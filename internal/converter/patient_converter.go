package converter

import (
	"medimatch/internal/delivery/dto"
	"medimatch/internal/domain/entity"
)

func PatientToResponse(patient *entity.PatientDetails) *dto.PatientProfileResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientProfileResponse{
		UserID:   patient.UserID,
		FullName: patient.FullName,
		Phone:    patient.Phone,
		Age:      patient.Age,
		Gender:   patient.Gender,
	}
}
