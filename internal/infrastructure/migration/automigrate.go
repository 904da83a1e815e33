package migration

import (
	"fieldops/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AppUserModel{},
		&models.TicketModel{},
		&models.ServiceOrderModel{},
		&models.TechnicianModel{},
		&models.ExpenseModel{},
	}
}
