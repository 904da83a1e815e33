package usecases

import (
	"context"

	"fieldops/internal/domain/technician"
	"fieldops/internal/shared/logger"
)

type mockTechnicianRepository struct {
	SaveFunc          func(ctx context.Context, t *technician.Technician) error
	UpdateFunc        func(ctx context.Context, t *technician.Technician) error
	DeleteFunc        func(ctx context.Context, technicianID string) error
	GetByIDFunc       func(ctx context.Context, technicianID string) (*technician.Technician, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*technician.Technician, error)
	ListFunc          func(ctx context.Context) ([]*technician.Technician, error)
}

func (m *mockTechnicianRepository) Save(ctx context.Context, t *technician.Technician) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTechnicianRepository) Update(ctx context.Context, t *technician.Technician) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTechnicianRepository) Delete(ctx context.Context, technicianID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, technicianID)
	}
	return nil
}

func (m *mockTechnicianRepository) GetByID(ctx context.Context, technicianID string) (*technician.Technician, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, technicianID)
	}
	return nil, nil
}

func (m *mockTechnicianRepository) GetByUsername(ctx context.Context, username string) (*technician.Technician, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockTechnicianRepository) List(ctx context.Context) ([]*technician.Technician, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockHasher struct {
	HashFunc func(password string) (string, error)
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "$2a$12$" + password, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)      {}
func (m *mockLogger) Info(msg string, args ...any)       {}
func (m *mockLogger) Warn(msg string, args ...any)       {}
func (m *mockLogger) Error(msg string, args ...any)      {}
func (m *mockLogger) Fatal(msg string, args ...any)      {}
func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
