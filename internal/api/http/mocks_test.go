package http

import (
	"context"

	"bragnetic-backend/internal/domain"
	"bragnetic-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockSubmissionService
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) SubmitCreator(ctx context.Context, in service.CreatorInput) (*service.SubmitResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmitResult), args.Error(1)
}

func (m *MockSubmissionService) SubmitBrand(ctx context.Context, in service.BrandInput) (*service.SubmitResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmitResult), args.Error(1)
}

func (m *MockSubmissionService) SubmitContact(ctx context.Context, in service.ContactInput) (*service.SubmitResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmitResult), args.Error(1)
}

func (m *MockSubmissionService) JoinWaitlist(ctx context.Context, in service.WaitlistInput) (*service.SubmitResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmitResult), args.Error(1)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Verify(token string) bool {
	args := m.Called(token)
	return args.Bool(0)
}

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) List(ctx context.Context, kind domain.SubmissionKind, q service.ListQuery) (*service.ListResult, error) {
	args := m.Called(ctx, kind, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult), args.Error(1)
}

func (m *MockAdminService) Counts(ctx context.Context) (*domain.Counts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counts), args.Error(1)
}

func (m *MockAdminService) Update(ctx context.Context, kind domain.SubmissionKind, id string, status, notes *string) error {
	args := m.Called(ctx, kind, id, status, notes)
	return args.Error(0)
}

func (m *MockAdminService) Delete(ctx context.Context, kind domain.SubmissionKind, id string) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}
