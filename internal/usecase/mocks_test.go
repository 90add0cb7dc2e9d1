package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"medimatch/internal/domain/entity"
	"medimatch/pkg/oauth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, sqlMock
}

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// pinLocal swaps time.Local for the duration of the test.
func pinLocal(t *testing.T, loc *time.Location) {
	t.Helper()
	previous := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = previous })
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// --- Repository mocks ---

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	args := m.Called(ctx, db, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindByGoogleID(ctx context.Context, db *gorm.DB, googleID string) (*entity.User, error) {
	args := m.Called(ctx, db, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.User, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) UpdateRole(ctx context.Context, db *gorm.DB, id int, role entity.Role) error {
	args := m.Called(ctx, db, id, role)
	return args.Error(0)
}

type mockSessionRepository struct{ mock.Mock }

func (m *mockSessionRepository) Create(ctx context.Context, db *gorm.DB, session *entity.Session) error {
	args := m.Called(ctx, db, session)
	return args.Error(0)
}

func (m *mockSessionRepository) FindActiveUser(ctx context.Context, db *gorm.DB, sessionID string, now time.Time) (*entity.SessionUser, error) {
	args := m.Called(ctx, db, sessionID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SessionUser), args.Error(1)
}

func (m *mockSessionRepository) Delete(ctx context.Context, db *gorm.DB, sessionID string) error {
	args := m.Called(ctx, db, sessionID)
	return args.Error(0)
}

type mockAppointmentRepository struct{ mock.Mock }

func (m *mockAppointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(ctx, db, appointment)
	return args.Error(0)
}

func (m *mockAppointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) FindByDoctorInWindow(ctx context.Context, db *gorm.DB, doctorID int, window entity.DayWindow) ([]entity.DoctorAppointmentRow, error) {
	args := m.Called(ctx, db, doctorID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DoctorAppointmentRow), args.Error(1)
}

func (m *mockAppointmentRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int) ([]entity.PatientAppointmentRow, error) {
	args := m.Called(ctx, db, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PatientAppointmentRow), args.Error(1)
}

func (m *mockAppointmentRepository) FindScheduledTimes(ctx context.Context, db *gorm.DB, doctorID int, window entity.DayWindow) ([]time.Time, error) {
	args := m.Called(ctx, db, doctorID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *mockAppointmentRepository) ExistsScheduled(ctx context.Context, db *gorm.DB, doctorID int, at time.Time) (bool, error) {
	args := m.Called(ctx, db, doctorID, at)
	return args.Bool(0), args.Error(1)
}

func (m *mockAppointmentRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id int, from, to entity.AppointmentStatus) (int64, error) {
	args := m.Called(ctx, db, id, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type mockDoctorDetailsRepository struct{ mock.Mock }

func (m *mockDoctorDetailsRepository) Create(ctx context.Context, db *gorm.DB, details *entity.DoctorDetails) error {
	args := m.Called(ctx, db, details)
	return args.Error(0)
}

func (m *mockDoctorDetailsRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID int) (*entity.DoctorDetails, error) {
	args := m.Called(ctx, db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DoctorDetails), args.Error(1)
}

func (m *mockDoctorDetailsRepository) Search(ctx context.Context, db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorDetails, error) {
	args := m.Called(ctx, db, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DoctorDetails), args.Error(1)
}

func (m *mockDoctorDetailsRepository) UpdateStatus(ctx context.Context, db *gorm.DB, userID int, status entity.DoctorStatus) error {
	args := m.Called(ctx, db, userID, status)
	return args.Error(0)
}

type mockPatientDetailsRepository struct{ mock.Mock }

func (m *mockPatientDetailsRepository) Create(ctx context.Context, db *gorm.DB, details *entity.PatientDetails) error {
	args := m.Called(ctx, db, details)
	return args.Error(0)
}

func (m *mockPatientDetailsRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID int) (*entity.PatientDetails, error) {
	args := m.Called(ctx, db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PatientDetails), args.Error(1)
}

type mockSpecializationRepository struct{ mock.Mock }

func (m *mockSpecializationRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Specialization, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Specialization), args.Error(1)
}

func (m *mockSpecializationRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Specialization, error) {
	args := m.Called(ctx, db, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Specialization), args.Error(1)
}

// --- Service mocks ---

type mockAuditService struct{ mock.Mock }

func (m *mockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *int, action string, entityName string, entityID interface{}, newValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, newValue)
	return args.Error(0)
}

func (m *mockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *int, action string, entityName string, entityID interface{}, oldValue, newValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, oldValue, newValue)
	return args.Error(0)
}

func (m *mockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *int, action string, entityName string, entityID interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID)
	return args.Error(0)
}

func (m *mockAuditService) RecentActivity(ctx context.Context, userID int, limit int) ([]entity.AuditLog, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AuditLog), args.Error(1)
}

type mockStateStore struct{ mock.Mock }

func (m *mockStateStore) Save(ctx context.Context, nonce string, ttl time.Duration) error {
	args := m.Called(ctx, nonce, ttl)
	return args.Error(0)
}

func (m *mockStateStore) Consume(ctx context.Context, nonce string) (bool, error) {
	args := m.Called(ctx, nonce)
	return args.Bool(0), args.Error(1)
}

type mockIdentityProvider struct{ mock.Mock }

func (m *mockIdentityProvider) AuthCodeURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *mockIdentityProvider) Exchange(ctx context.Context, code string) (*oauth.Identity, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth.Identity), args.Error(1)
}
