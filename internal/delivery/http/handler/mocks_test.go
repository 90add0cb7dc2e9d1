package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"medimatch/internal/delivery/dto"
	"medimatch/internal/delivery/http/middleware"
	"medimatch/internal/domain/entity"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthUsecase struct{ mock.Mock }

func (m *mockAuthUsecase) BeginGoogleLogin(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockAuthUsecase) CompleteGoogleLogin(ctx context.Context, code, state string) (*dto.LoginResult, error) {
	args := m.Called(ctx, code, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResult), args.Error(1)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID int, sessionID string) error {
	args := m.Called(ctx, userID, sessionID)
	return args.Error(0)
}

func (m *mockAuthUsecase) GetActivity(ctx context.Context, userID int, limit int) (*dto.ActivityListResponse, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ActivityListResponse), args.Error(1)
}

type mockDoctorUsecase struct{ mock.Mock }

func (m *mockDoctorUsecase) SearchDoctors(ctx context.Context, req *dto.SearchDoctorsRequest) (*dto.DoctorListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DoctorListResponse), args.Error(1)
}

func (m *mockDoctorUsecase) GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DoctorResponse), args.Error(1)
}

func (m *mockDoctorUsecase) ListSpecializations(ctx context.Context) ([]dto.SpecializationResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SpecializationResponse), args.Error(1)
}

func (m *mockDoctorUsecase) UpdateDoctorStatus(ctx context.Context, adminID, doctorID int, status entity.DoctorStatus) error {
	args := m.Called(ctx, adminID, doctorID, status)
	return args.Error(0)
}

type mockProfileUsecase struct{ mock.Mock }

func (m *mockProfileUsecase) CreateDoctorProfile(ctx context.Context, userID int, req *dto.CreateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DoctorProfileResponse), args.Error(1)
}

func (m *mockProfileUsecase) GetDoctorProfile(ctx context.Context, userID int) (*dto.DoctorProfileResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DoctorProfileResponse), args.Error(1)
}

func (m *mockProfileUsecase) CreatePatientProfile(ctx context.Context, userID int, req *dto.CreatePatientProfileRequest) (*dto.PatientProfileResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientProfileResponse), args.Error(1)
}

func (m *mockProfileUsecase) GetPatientProfile(ctx context.Context, userID int) (*dto.PatientProfileResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientProfileResponse), args.Error(1)
}

type mockAppointmentUsecase struct{ mock.Mock }

func (m *mockAppointmentUsecase) GetTodaysAppointments(ctx context.Context, doctorID int, window entity.DayWindow) ([]dto.DoctorAppointmentResponse, error) {
	args := m.Called(ctx, doctorID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.DoctorAppointmentResponse), args.Error(1)
}

func (m *mockAppointmentUsecase) BookAppointment(ctx context.Context, patientID int, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, patientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentResponse), args.Error(1)
}

func (m *mockAppointmentUsecase) GetMyAppointments(ctx context.Context, patientID int) ([]dto.PatientAppointmentResponse, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PatientAppointmentResponse), args.Error(1)
}

func (m *mockAppointmentUsecase) CompleteAppointment(ctx context.Context, doctorID, appointmentID int) error {
	args := m.Called(ctx, doctorID, appointmentID)
	return args.Error(0)
}

func (m *mockAppointmentUsecase) CancelAppointment(ctx context.Context, userID, appointmentID int) error {
	args := m.Called(ctx, userID, appointmentID)
	return args.Error(0)
}

func (m *mockAppointmentUsecase) GetAvailableSlots(ctx context.Context, doctorID int, day entity.DayWindow) (*dto.AvailableSlotsResponse, error) {
	args := m.Called(ctx, doctorID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AvailableSlotsResponse), args.Error(1)
}

// --- Request helpers ---

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func newRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func asUser(req *http.Request, user *dto.CurrentUser) *http.Request {
	return req.WithContext(middleware.WithCurrentUser(req.Context(), user, "session-token"))
}

func withVars(req *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(req, vars)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

var (
	patientUser = &dto.CurrentUser{ID: 5, Name: "Meera", Email: "meera@example.com", Role: "U"}
	doctorUser  = &dto.CurrentUser{ID: 2, Name: "Asha", Email: "asha@example.com", Role: "D"}
	adminUser   = &dto.CurrentUser{ID: 1, Name: "Root", Email: "root@example.com", Role: "A"}
)
