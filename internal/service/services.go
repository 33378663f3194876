package service

import (
	"github.com/ddanshin/staffdir/internal/config"
	"github.com/ddanshin/staffdir/internal/identity"
	"github.com/ddanshin/staffdir/internal/logger"
	"github.com/ddanshin/staffdir/internal/store"
)

type Services struct {
	AuthService     AuthService
	EmployeeService EmployeeService
}

func NewServices(storages *store.Storages, identityClient identity.Client, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(identityClient, cfg.App, logger),
		EmployeeService: NewEmployeeService(storages.EmployeeRepository, logger),
	}
}
