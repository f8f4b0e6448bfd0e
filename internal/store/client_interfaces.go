package store

import (
	"context"

	"github.com/MKhiriev/go-balance-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionStorage caches the signed-in user on the client device.
type LocalSessionStorage interface {
	SaveSession(ctx context.Context, session models.LocalSession) error
	LoadSession(ctx context.Context) (models.LocalSession, error)
	ClearSession(ctx context.Context) error
}
