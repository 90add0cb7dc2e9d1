package converter

import (
	"medimatch/internal/delivery/dto"
	"medimatch/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentTime: appointment.AppointmentTime,
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
	}
}

// DoctorAppointmentsToResponses never returns nil so an empty day encodes as [].
func DoctorAppointmentsToResponses(rows []entity.DoctorAppointmentRow) []dto.DoctorAppointmentResponse {
	responses := make([]dto.DoctorAppointmentResponse, len(rows))
	for i, row := range rows {
		responses[i] = dto.DoctorAppointmentResponse{
			ID:              row.ID,
			AppointmentTime: row.AppointmentTime,
			Status:          string(row.Status),
			Patient: dto.AppointmentPatient{
				FullName: row.PatientFullName,
				Phone:    row.PatientPhone,
				Age:      row.PatientAge,
				Gender:   row.PatientGender,
				Picture:  row.PatientPicture,
			},
		}
	}
	return responses
}

func PatientAppointmentsToResponses(rows []entity.PatientAppointmentRow) []dto.PatientAppointmentResponse {
	responses := make([]dto.PatientAppointmentResponse, len(rows))
	for i, row := range rows {
		responses[i] = dto.PatientAppointmentResponse{
			ID:              row.ID,
			AppointmentTime: row.AppointmentTime,
			Status:          string(row.Status),
			Doctor: dto.AppointmentDoctor{
				ID:             row.DoctorID,
				FullName:       row.DoctorFullName,
				Picture:        row.DoctorPicture,
				Specialization: row.Specialization,
			},
		}
	}
	return responses
}
