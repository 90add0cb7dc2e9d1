package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"medimatch/internal/delivery/dto"
	"medimatch/internal/usecase"
	"medimatch/pkg/response"
	"medimatch/pkg/validator"
)

const maxFormMemory = 10 << 20

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

// CreateDoctorProfile accepts multipart/form-data or urlencoded forms
func (h *ProfileHandler) CreateDoctorProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxFormMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid form data", nil)
		return
	}

	numbers := map[string]int{}
	formErrors := map[string]string{}
	for _, field := range []string{"age", "experience"} {
		raw := strings.TrimSpace(r.FormValue(field))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			formErrors[field] = field + " must be a number"
			continue
		}
		numbers[field] = n
	}
	if len(formErrors) > 0 {
		response.ValidationError(w, formErrors)
		return
	}

	req := dto.CreateDoctorProfileRequest{
		FullName:       r.FormValue("fullName"),
		Age:            numbers["age"],
		Gender:         r.FormValue("gender"),
		Phone:          r.FormValue("phone"),
		Specialization: r.FormValue("specialization"),
		Experience:     numbers["experience"],
		RegNo:          r.FormValue("regNo"),
		Languages:      r.FormValue("languages"),
		Address:        r.FormValue("address"),
		Bio:            r.FormValue("bio"),
		Picture:        r.FormValue("picture"),
		Location:       r.FormValue("location"),
		Fees:           strings.TrimSpace(r.FormValue("fees")),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.CreateDoctorProfile(r.Context(), user.ID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorProfileExists:
			response.Conflict(w, "Doctor profile already exists")
		case usecase.ErrRegNoAlreadyExists:
			response.Conflict(w, "Registration number already exists")
		case usecase.ErrSpecializationNotFound:
			response.BadRequest(w, "Unknown specialization")
		case usecase.ErrInvalidFees:
			response.BadRequest(w, "Fees must be a non-negative amount")
		case usecase.ErrInvalidLanguages:
			response.BadRequest(w, "At least one language is required")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to save doctor profile")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor profile saved successfully", profile)
}

func (h *ProfileHandler) GetDoctorProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.profileUsecase.GetDoctorProfile(r.Context(), user.ID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorProfileNotFound:
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to get doctor profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor profile retrieved successfully", profile)
}

func (h *ProfileHandler) CreatePatientProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.CreatePatientProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.CreatePatientProfile(r.Context(), user.ID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileExists:
			response.Conflict(w, "Patient profile already exists")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to save patient profile")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient profile saved successfully", profile)
}

func (h *ProfileHandler) GetPatientProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.profileUsecase.GetPatientProfile(r.Context(), user.ID)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to get patient profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient profile retrieved successfully", profile)
}
