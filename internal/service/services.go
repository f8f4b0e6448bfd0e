package service

import (
	"github.com/MKhiriev/go-balance-keeper/internal/config"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/store"
)

type Services struct {
	AuthService        AuthService
	UserService        UserService
	TransactionService TransactionService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, storages, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg, logger),
		UserService:        NewUserService(storages.UserRepository, storages.TransactionRepository, logger),
		TransactionService: NewTransactionService(storages.TransactionRepository, logger),
		AppInfoService:     appInfoService,
	}, nil
}
