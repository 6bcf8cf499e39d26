package usecase

import (
	"context"
	"database/sql"
	"io"
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// stubTxPool satisfies gorm's connection pool interfaces so usecases can run
// their Begin/Commit/Rollback flow against mocked repositories without a
// database behind them.
type stubTxPool struct{}

func (p *stubTxPool) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, nil
}

func (p *stubTxPool) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (p *stubTxPool) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (p *stubTxPool) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (p *stubTxPool) BeginTx(ctx context.Context, opts *sql.TxOptions) (gorm.ConnPool, error) {
	return p, nil
}

func (p *stubTxPool) Commit() error   { return nil }
func (p *stubTxPool) Rollback() error { return nil }

func newTestDB() *gorm.DB {
	return &gorm.DB{
		Config:    &gorm.Config{},
		Statement: &gorm.Statement{ConnPool: &stubTxPool{}},
	}
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type MockDoctorProfileRepository struct {
	mock.Mock
}

func (m *MockDoctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return m.Called(db, profile).Error(0)
}

func (m *MockDoctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DoctorProfile), args.Error(1)
}

func (m *MockDoctorProfileRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DoctorProfile, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DoctorProfile), args.Error(1)
}

type MockPatientProfileRepository struct {
	mock.Mock
}

func (m *MockPatientProfileRepository) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	return m.Called(db, profile).Error(0)
}

func (m *MockPatientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PatientProfile), args.Error(1)
}

func (m *MockPatientProfileRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.PatientProfile, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PatientProfile), args.Error(1)
}

func (m *MockPatientProfileRepository) FindByDoctor(db *gorm.DB, doctorProfileID uuid.UUID, filter entity.PatientFilter) ([]entity.PatientProfile, int64, error) {
	args := m.Called(db, doctorProfileID, filter)
	var patients []entity.PatientProfile
	if args.Get(0) != nil {
		patients = args.Get(0).([]entity.PatientProfile)
	}
	return patients, args.Get(1).(int64), args.Error(2)
}

func (m *MockPatientProfileRepository) CountHighRiskByDoctor(db *gorm.DB, doctorProfileID uuid.UUID) (int64, error) {
	args := m.Called(db, doctorProfileID)
	return args.Get(0).(int64), args.Error(1)
}

type MockConsultationRepository struct {
	mock.Mock
}

func (m *MockConsultationRepository) Create(db *gorm.DB, consultation *entity.Consultation) error {
	return m.Called(db, consultation).Error(0)
}

func (m *MockConsultationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) FindByIDWithDetail(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) Update(db *gorm.DB, id uuid.UUID, updates map[string]interface{}) (*entity.Consultation, error) {
	args := m.Called(db, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) CountCompletedBetween(db *gorm.DB, doctorProfileID uuid.UUID, from, to time.Time) (int64, error) {
	args := m.Called(db, doctorProfileID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConsultationRepository) DistinctPatientIDsSince(db *gorm.DB, doctorProfileID uuid.UUID, since time.Time) ([]uuid.UUID, error) {
	args := m.Called(db, doctorProfileID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockConsultationRepository) FindHistory(db *gorm.DB, doctorProfileID, patientProfileID uuid.UUID, from, to *time.Time, limit int) ([]entity.Consultation, error) {
	args := m.Called(db, doctorProfileID, patientProfileID, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) FindLatestForPatient(db *gorm.DB, doctorProfileID, patientProfileID uuid.UUID) (*entity.Consultation, error) {
	args := m.Called(db, doctorProfileID, patientProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Consultation), args.Error(1)
}

type MockLabOrderRepository struct {
	mock.Mock
}

func (m *MockLabOrderRepository) CreateBatch(db *gorm.DB, orders []entity.LabOrder) error {
	return m.Called(db, orders).Error(0)
}

func (m *MockLabOrderRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.LabOrder, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LabOrder), args.Error(1)
}

func (m *MockLabOrderRepository) FindByIDWithPatient(db *gorm.DB, id uuid.UUID) (*entity.LabOrder, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LabOrder), args.Error(1)
}

func (m *MockLabOrderRepository) CountByStatus(db *gorm.DB, doctorProfileID uuid.UUID, status entity.LabOrderStatus) (int64, error) {
	args := m.Called(db, doctorProfileID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLabOrderRepository) CountUrgentOpen(db *gorm.DB, doctorProfileID uuid.UUID) (int64, error) {
	args := m.Called(db, doctorProfileID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLabOrderRepository) FindByDoctor(db *gorm.DB, doctorProfileID uuid.UUID, filter entity.LabOrderFilter) ([]entity.LabOrder, int64, error) {
	args := m.Called(db, doctorProfileID, filter)
	var orders []entity.LabOrder
	if args.Get(0) != nil {
		orders = args.Get(0).([]entity.LabOrder)
	}
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *MockLabOrderRepository) FindHistory(db *gorm.DB, doctorProfileID, patientProfileID uuid.UUID, from, to *time.Time, limit int) ([]entity.LabOrder, error) {
	args := m.Called(db, doctorProfileID, patientProfileID, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LabOrder), args.Error(1)
}

func (m *MockLabOrderRepository) Approve(db *gorm.DB, orderID uuid.UUID, approvedBy uuid.UUID, approvedAt time.Time) (int64, error) {
	args := m.Called(db, orderID, approvedBy, approvedAt)
	return args.Get(0).(int64), args.Error(1)
}

type MockLabResultRepository struct {
	mock.Mock
}

func (m *MockLabResultRepository) FindByPatient(db *gorm.DB, patientProfileID uuid.UUID, filter entity.LabResultFilter) ([]entity.LabResult, error) {
	args := m.Called(db, patientProfileID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LabResult), args.Error(1)
}

func (m *MockLabResultRepository) FindOwnedByPatient(db *gorm.DB, id, patientProfileID uuid.UUID) (*entity.LabResult, error) {
	args := m.Called(db, id, patientProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LabResult), args.Error(1)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return m.Called(db, appointment).Error(0)
}

func (m *MockAppointmentRepository) FindOwnedByPatient(db *gorm.DB, id, patientProfileID uuid.UUID) (*entity.Appointment, error) {
	args := m.Called(db, id, patientProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return m.Called(db, appointment).Error(0)
}

func (m *MockAppointmentRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return m.Called(db, id).Error(0)
}

func (m *MockAppointmentRepository) CountForDoctorBetween(db *gorm.DB, doctorUserID uuid.UUID, from, to time.Time) (int64, error) {
	args := m.Called(db, doctorUserID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) FindForDoctorBetween(db *gorm.DB, doctorUserID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	args := m.Called(db, doctorUserID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindUpcomingByPatient(db *gorm.DB, patientProfileID uuid.UUID, now time.Time, limit int) ([]entity.Appointment, error) {
	args := m.Called(db, patientProfileID, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatient(db *gorm.DB, patientProfileID uuid.UUID, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	args := m.Called(db, patientProfileID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindHistory(db *gorm.DB, doctorUserID, patientProfileID uuid.UUID, from, to *time.Time, limit int) ([]entity.Appointment, error) {
	args := m.Called(db, doctorUserID, patientProfileID, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) Create(db *gorm.DB, conversation *entity.Conversation) error {
	return m.Called(db, conversation).Error(0)
}

func (m *MockConversationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Conversation, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Conversation), args.Error(1)
}

func (m *MockConversationRepository) FindByPair(db *gorm.DB, patientProfileID, doctorProfileID uuid.UUID) (*entity.Conversation, error) {
	args := m.Called(db, patientProfileID, doctorProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Conversation), args.Error(1)
}

func (m *MockConversationRepository) TouchLastMessage(db *gorm.DB, id uuid.UUID, at time.Time) error {
	return m.Called(db, id, at).Error(0)
}

func (m *MockConversationRepository) FindIDsByDoctor(db *gorm.DB, doctorProfileID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(db, doctorProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockConversationRepository) FindByDoctor(db *gorm.DB, doctorProfileID uuid.UUID, unreadOnly bool, offset, limit int) ([]entity.Conversation, int64, error) {
	args := m.Called(db, doctorProfileID, unreadOnly, offset, limit)
	var conversations []entity.Conversation
	if args.Get(0) != nil {
		conversations = args.Get(0).([]entity.Conversation)
	}
	return conversations, args.Get(1).(int64), args.Error(2)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(db *gorm.DB, message *entity.Message) error {
	return m.Called(db, message).Error(0)
}

func (m *MockMessageRepository) FindPage(db *gorm.DB, conversationID uuid.UUID, offset, limit int) ([]entity.Message, int64, error) {
	args := m.Called(db, conversationID, offset, limit)
	var messages []entity.Message
	if args.Get(0) != nil {
		messages = args.Get(0).([]entity.Message)
	}
	return messages, args.Get(1).(int64), args.Error(2)
}

func (m *MockMessageRepository) FindLatest(db *gorm.DB, conversationID uuid.UUID) (*entity.Message, error) {
	args := m.Called(db, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Message), args.Error(1)
}

func (m *MockMessageRepository) MarkPatientMessagesRead(db *gorm.DB, conversationID uuid.UUID, at time.Time) (int64, error) {
	args := m.Called(db, conversationID, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) CountUnread(db *gorm.DB, conversationIDs []uuid.UUID, since *time.Time) (int64, error) {
	args := m.Called(db, conversationIDs, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) CountUnreadByConversation(db *gorm.DB, conversationID uuid.UUID) (int64, error) {
	args := m.Called(db, conversationID)
	return args.Get(0).(int64), args.Error(1)
}

type MockVitalRepository struct {
	mock.Mock
}

func (m *MockVitalRepository) FindLatestByType(db *gorm.DB, patientProfileID uuid.UUID, vitalType entity.VitalType) (*entity.PatientVital, error) {
	args := m.Called(db, patientProfileID, vitalType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PatientVital), args.Error(1)
}

func (m *MockVitalRepository) FindLatestPerType(db *gorm.DB, patientProfileID uuid.UUID) ([]entity.PatientVital, error) {
	args := m.Called(db, patientProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PatientVital), args.Error(1)
}

func (m *MockVitalRepository) FindByPatient(db *gorm.DB, patientProfileID uuid.UUID, filter entity.VitalFilter) ([]entity.PatientVital, error) {
	args := m.Called(db, patientProfileID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PatientVital), args.Error(1)
}

type MockMedicationRepository struct {
	mock.Mock
}

func (m *MockMedicationRepository) FindByPatient(db *gorm.DB, patientProfileID uuid.UUID) ([]entity.Medication, error) {
	args := m.Called(db, patientProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Medication), args.Error(1)
}

func (m *MockMedicationRepository) FindSchedules(db *gorm.DB, patientProfileID uuid.UUID) ([]entity.MedicationSchedule, error) {
	args := m.Called(db, patientProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MedicationSchedule), args.Error(1)
}

func (m *MockMedicationRepository) FindSchedulesDue(db *gorm.DB, patientProfileID uuid.UUID, from, to time.Time, limit int) ([]entity.MedicationSchedule, error) {
	args := m.Called(db, patientProfileID, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MedicationSchedule), args.Error(1)
}

func (m *MockMedicationRepository) FindScheduleByID(db *gorm.DB, scheduleID, patientProfileID uuid.UUID) (*entity.MedicationSchedule, error) {
	args := m.Called(db, scheduleID, patientProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MedicationSchedule), args.Error(1)
}

func (m *MockMedicationRepository) FindNextPendingSchedule(db *gorm.DB, patientProfileID, medicationID uuid.UUID) (*entity.MedicationSchedule, error) {
	args := m.Called(db, patientProfileID, medicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MedicationSchedule), args.Error(1)
}

func (m *MockMedicationRepository) MarkTaken(db *gorm.DB, scheduleID uuid.UUID, taken bool) (*entity.MedicationSchedule, error) {
	args := m.Called(db, scheduleID, taken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MedicationSchedule), args.Error(1)
}

type MockDoctorScheduleRepository struct {
	mock.Mock
}

func (m *MockDoctorScheduleRepository) FindActiveByDoctor(db *gorm.DB, doctorProfileID uuid.UUID, rng entity.ScheduleRange) ([]entity.DoctorSchedule, error) {
	args := m.Called(db, doctorProfileID, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DoctorSchedule), args.Error(1)
}

func (m *MockDoctorScheduleRepository) DeleteByDoctor(db *gorm.DB, doctorProfileID uuid.UUID) error {
	return m.Called(db, doctorProfileID).Error(0)
}

func (m *MockDoctorScheduleRepository) CreateBatch(db *gorm.DB, schedules []entity.DoctorSchedule) error {
	return m.Called(db, schedules).Error(0)
}

type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) FindCriticalForDoctor(db *gorm.DB, doctorProfileID uuid.UUID, since time.Time, limit int) ([]entity.Alert, error) {
	args := m.Called(db, doctorProfileID, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Alert), args.Error(1)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return m.Called(ctx, tx, userID, action, entityName, entityID, newValue).Error(0)
}

func (m *MockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return m.Called(ctx, tx, userID, action, entityName, entityID, oldValue, newValue).Error(0)
}

func (m *MockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return m.Called(ctx, tx, userID, action, entityName, entityID, oldValue).Error(0)
}
