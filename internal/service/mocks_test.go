package service

import (
	"context"

	"bragnetic-backend/internal/domain"
	"bragnetic-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockCreatorRepo
type MockCreatorRepo struct {
	mock.Mock
}

func (m *MockCreatorRepo) Create(ctx context.Context, app *domain.CreatorApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockCreatorRepo) List(ctx context.Context, f repository.ListFilter) ([]domain.CreatorApplication, int32, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.CreatorApplication), int32(args.Int(1)), args.Error(2)
}
func (m *MockCreatorRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return int32(args.Int(0)), args.Error(1)
}
func (m *MockCreatorRepo) UpdateModeration(ctx context.Context, id string, upd repository.ModerationUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}
func (m *MockCreatorRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBrandRepo
type MockBrandRepo struct {
	mock.Mock
}

func (m *MockBrandRepo) Create(ctx context.Context, enq *domain.BrandEnquiry) error {
	args := m.Called(ctx, enq)
	return args.Error(0)
}
func (m *MockBrandRepo) List(ctx context.Context, f repository.ListFilter) ([]domain.BrandEnquiry, int32, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.BrandEnquiry), int32(args.Int(1)), args.Error(2)
}
func (m *MockBrandRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return int32(args.Int(0)), args.Error(1)
}
func (m *MockBrandRepo) UpdateModeration(ctx context.Context, id string, upd repository.ModerationUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}
func (m *MockBrandRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContactRepo
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockContactRepo) List(ctx context.Context, f repository.ListFilter) ([]domain.ContactMessage, int32, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.ContactMessage), int32(args.Int(1)), args.Error(2)
}
func (m *MockContactRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return int32(args.Int(0)), args.Error(1)
}
func (m *MockContactRepo) UpdateModeration(ctx context.Context, id string, upd repository.ModerationUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}
func (m *MockContactRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWaitlistRepo
type MockWaitlistRepo struct {
	mock.Mock
}

func (m *MockWaitlistRepo) Create(ctx context.Context, entry *domain.WaitlistEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockWaitlistRepo) GetByEmail(ctx context.Context, email string) (*domain.WaitlistEntry, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WaitlistEntry), args.Error(1)
}
func (m *MockWaitlistRepo) List(ctx context.Context, f repository.ListFilter) ([]domain.WaitlistEntry, int32, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.WaitlistEntry), int32(args.Int(1)), args.Error(2)
}
func (m *MockWaitlistRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return int32(args.Int(0)), args.Error(1)
}
func (m *MockWaitlistRepo) UpdateModeration(ctx context.Context, id string, upd repository.ModerationUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}
func (m *MockWaitlistRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVerifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, token string) bool {
	args := m.Called(ctx, token)
	return args.Bool(0)
}

// MockEmailService signals sent on every notify call so tests can wait for
// the fire-and-forget goroutine.
type MockEmailService struct {
	mock.Mock
	sent chan string
}

func NewMockEmailService() *MockEmailService {
	return &MockEmailService{sent: make(chan string, 4)}
}

func (m *MockEmailService) NotifyCreatorApplication(ctx context.Context, app *domain.CreatorApplication) error {
	args := m.Called(ctx, app)
	m.sent <- "creator"
	return args.Error(0)
}
func (m *MockEmailService) NotifyBrandEnquiry(ctx context.Context, enq *domain.BrandEnquiry) error {
	args := m.Called(ctx, enq)
	m.sent <- "brand"
	return args.Error(0)
}
func (m *MockEmailService) NotifyContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	args := m.Called(ctx, msg)
	m.sent <- "contact"
	return args.Error(0)
}
