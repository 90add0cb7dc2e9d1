package converter

import (
	"medimatch/internal/delivery/dto"
	"medimatch/internal/domain/entity"
)

// DoctorToResponse converts DoctorDetails to its public listing shape
func DoctorToResponse(doctor *entity.DoctorDetails) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	languages := []string(doctor.Languages)
	if languages == nil {
		languages = []string{}
	}

	return &dto.DoctorResponse{
		ID:             doctor.UserID,
		FullName:       doctor.FullName,
		Age:            doctor.Age,
		Gender:         doctor.Gender,
		Picture:        doctor.Picture,
		Experience:     doctor.Experience,
		Location:       doctor.Location,
		Fees:           doctor.Fees,
		Specialization: doctor.Specialization.Name,
		Languages:      languages,
		Bio:            doctor.Bio,
		Status:         string(doctor.Status),
	}
}

func DoctorsToResponses(doctors []entity.DoctorDetails) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorToProfileResponse includes the contact fields only the owner sees
func DoctorToProfileResponse(doctor *entity.DoctorDetails) *dto.DoctorProfileResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorProfileResponse{
		DoctorResponse: *DoctorToResponse(doctor),
		Phone:          doctor.Phone,
		Address:        doctor.Address,
		RegNo:          doctor.RegNo,
		CreatedAt:      doctor.CreatedAt,
	}
}

func SpecializationsToResponses(specializations []entity.Specialization) []dto.SpecializationResponse {
	responses := make([]dto.SpecializationResponse, len(specializations))
	for i, s := range specializations {
		responses[i] = dto.SpecializationResponse{ID: s.ID, Name: s.Name}
	}
	return responses
}
