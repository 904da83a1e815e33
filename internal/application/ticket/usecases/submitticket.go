package usecases

import (
	"context"
	"time"

	"fieldops/internal/domain/ticket"
	"fieldops/internal/infrastructure/blobstore"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/id"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

type SubmitTicketCommand struct {
	ClientName   string
	ContactPhone string
	Location     string
	Description  string
	PhotoURLs    []string
}

type SubmitTicketResult struct {
	TicketID  string
	Status    string
	CreatedAt time.Time
}

// SubmitTicketUseCase handles the public client submission form.
type SubmitTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	countryCode string
	logger      logger.Interface
}

func NewSubmitTicketUseCase(
	ticketRepo ticket.TicketRepository,
	countryCode string,
	logger logger.Interface,
) *SubmitTicketUseCase {
	return &SubmitTicketUseCase{
		ticketRepo:  ticketRepo,
		countryCode: countryCode,
		logger:      logger,
	}
}

func (uc *SubmitTicketUseCase) Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	phone := utils.NormalizePhone(cmd.ContactPhone, uc.countryCode)

	newTicket, err := ticket.NewTicket(
		id.NewTicketID(),
		cmd.ClientName,
		phone,
		cmd.Location,
		cmd.Description,
		cmd.PhotoURLs,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Error("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Info("ticket submitted", "ticket_id", newTicket.ID(), "client", newTicket.ClientName())

	return &SubmitTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *SubmitTicketUseCase) validateCommand(cmd SubmitTicketCommand) error {
	if len(cmd.ClientName) == 0 {
		return errors.NewValidationError("client name is required")
	}
	if len(cmd.ClientName) > 200 {
		return errors.NewValidationError("client name exceeds maximum length of 200 characters")
	}
	if len(cmd.ContactPhone) == 0 {
		return errors.NewValidationError("contact phone is required")
	}
	if utils.NormalizePhone(cmd.ContactPhone, uc.countryCode) == "" {
		return errors.NewValidationError("contact phone must contain digits")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}
	if err := blobstore.ValidateBatch(len(cmd.PhotoURLs)); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}
