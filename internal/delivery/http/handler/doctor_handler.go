package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"medimatch/internal/delivery/dto"
	"medimatch/internal/domain/entity"
	"medimatch/internal/usecase"
	"medimatch/pkg/response"
	"medimatch/pkg/validator"
)

const dateLayout = "2006-01-02"

type DoctorHandler struct {
	doctorUsecase      usecase.DoctorUsecase
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	now                func() time.Time
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase:      doctorUsecase,
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		now:                time.Now,
	}
}

func (h *DoctorHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.SearchDoctorsRequest{
		Query:          query.Get("q"),
		Specialization: query.Get("specialization"),
		Language:       query.Get("language"),
		MinFee:         query.Get("min_fee"),
		MaxFee:         query.Get("max_fee"),
	}
	if raw := query.Get("min_experience"); raw != "" {
		minExperience, err := strconv.Atoi(raw)
		if err != nil {
			response.ValidationError(w, map[string]string{"min_experience": "min_experience must be a number"})
			return
		}
		req.MinExperience = minExperience
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.doctorUsecase.SearchDoctors(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidFeeRange:
			response.BadRequest(w, "Invalid fee range")
		default:
			response.InternalServerError(w, "Failed to search doctors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// GetAvailableSlots lists free slots for ?date=YYYY-MM-DD, today by default
func (h *DoctorHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	day := entity.DayWindowAt(h.now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
			return
		}
		day = entity.DayWindowAt(date)
	}

	slots, err := h.appointmentUsecase.GetAvailableSlots(r.Context(), doctorID, day)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get available slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

func (h *DoctorHandler) ListSpecializations(w http.ResponseWriter, r *http.Request) {
	specializations, err := h.doctorUsecase.ListSpecializations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get specializations")
		return
	}

	response.Success(w, http.StatusOK, "Specializations retrieved successfully", specializations)
}

// UpdateDoctorStatus is used by admins to activate or deactivate doctors
func (h *DoctorHandler) UpdateDoctorStatus(w http.ResponseWriter, r *http.Request) {
	admin, ok := currentUser(w, r)
	if !ok {
		return
	}

	doctorID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	var req dto.UpdateDoctorStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	err := h.doctorUsecase.UpdateDoctorStatus(r.Context(), admin.ID, doctorID, entity.DoctorStatus(req.Status))
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidDoctorStatus:
			response.BadRequest(w, "Invalid doctor status")
		default:
			response.InternalServerError(w, "Failed to update doctor status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor status updated successfully", nil)
}
