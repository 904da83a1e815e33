package technician

import "context"

type TechnicianRepository interface {
	Save(ctx context.Context, technician *Technician) error
	Update(ctx context.Context, technician *Technician) error
	Delete(ctx context.Context, technicianID string) error
	GetByID(ctx context.Context, technicianID string) (*Technician, error)
	GetByUsername(ctx context.Context, username string) (*Technician, error)
	List(ctx context.Context) ([]*Technician, error)
}
