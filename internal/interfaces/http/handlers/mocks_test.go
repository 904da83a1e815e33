package handlers

import (
	"context"

	authUsecases "fieldops/internal/application/auth/usecases"
	ticketDto "fieldops/internal/application/ticket/dto"
	ticketUsecases "fieldops/internal/application/ticket/usecases"
	"fieldops/internal/shared/logger"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)      {}
func (m *mockLogger) Info(msg string, args ...any)       {}
func (m *mockLogger) Warn(msg string, args ...any)       {}
func (m *mockLogger) Error(msg string, args ...any)      {}
func (m *mockLogger) Fatal(msg string, args ...any)      {}
func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

type mockLoginExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd authUsecases.LoginCommand) (*authUsecases.LoginResult, error)
}

func (m *mockLoginExecutor) Execute(ctx context.Context, cmd authUsecases.LoginCommand) (*authUsecases.LoginResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return nil, nil
}

type mockSubmitTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ticketUsecases.SubmitTicketCommand) (*ticketUsecases.SubmitTicketResult, error)
}

func (m *mockSubmitTicketExecutor) Execute(ctx context.Context, cmd ticketUsecases.SubmitTicketCommand) (*ticketUsecases.SubmitTicketResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return nil, nil
}

type mockAcceptTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ticketUsecases.AcceptTicketCommand) (*ticketUsecases.AcceptTicketResult, error)
}

func (m *mockAcceptTicketExecutor) Execute(ctx context.Context, cmd ticketUsecases.AcceptTicketCommand) (*ticketUsecases.AcceptTicketResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return nil, nil
}

type mockRejectTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ticketUsecases.RejectTicketCommand) (*ticketUsecases.RejectTicketResult, error)
}

func (m *mockRejectTicketExecutor) Execute(ctx context.Context, cmd ticketUsecases.RejectTicketCommand) (*ticketUsecases.RejectTicketResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return nil, nil
}

type mockChangeTicketStatusExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ticketUsecases.ChangeTicketStatusCommand) (*ticketDto.TicketDTO, error)
}

func (m *mockChangeTicketStatusExecutor) Execute(ctx context.Context, cmd ticketUsecases.ChangeTicketStatusCommand) (*ticketDto.TicketDTO, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return nil, nil
}

type mockListTicketsExecutor struct {
	ExecuteFunc func(ctx context.Context, query ticketUsecases.ListTicketsQuery) ([]*ticketDto.TicketDTO, error)
}

func (m *mockListTicketsExecutor) Execute(ctx context.Context, query ticketUsecases.ListTicketsQuery) ([]*ticketDto.TicketDTO, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, query)
	}
	return nil, nil
}

type mockGetTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, query ticketUsecases.GetTicketQuery) (*ticketDto.TicketDTO, error)
}

func (m *mockGetTicketExecutor) Execute(ctx context.Context, query ticketUsecases.GetTicketQuery) (*ticketDto.TicketDTO, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, query)
	}
	return nil, nil
}

type mockTrackTicketsExecutor struct {
	ExecuteFunc func(ctx context.Context, query ticketUsecases.TrackTicketsQuery) ([]*ticketUsecases.TrackedTicket, error)
}

func (m *mockTrackTicketsExecutor) Execute(ctx context.Context, query ticketUsecases.TrackTicketsQuery) ([]*ticketUsecases.TrackedTicket, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, query)
	}
	return nil, nil
}
