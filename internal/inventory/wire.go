//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/stock-ledger/internal/inventory/delivery/http"
	"github.com/tair/stock-ledger/internal/inventory/domain"
	"github.com/tair/stock-ledger/internal/inventory/repository"
	"github.com/tair/stock-ledger/kafka"
)

// ProvideLedgerRepository provides the gorm-backed ledger repository
func ProvideLedgerRepository(db *gorm.DB) domain.LedgerRepository {
	return repository.NewGormLedgerRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideLedgerRepository,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) (*http.LedgerHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewLedgerHandler,
	)
	return nil, nil
}
