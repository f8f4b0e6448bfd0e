package service

import (
	"github.com/MKhiriev/go-balance-keeper/internal/adapter"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/store"
)

type ClientServices struct {
	AuthService   ClientAuthService
	LedgerService ClientLedgerService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(storages.SessionStorage, serverAdapter, logger)

	return &ClientServices{
		AuthService:   authSvc,
		LedgerService: NewClientLedgerService(authSvc, storages.SessionStorage, serverAdapter, logger),
	}
}
