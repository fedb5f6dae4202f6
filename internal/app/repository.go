package app

import (
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/repository"
)

func (a *application) InitRepositories(store domain.Store) (
	domain.BalanceRepository,
	domain.InventoryRepository,
	domain.CredentialRepository,
	domain.SettingsRepository,
	domain.ReceiptRepository,
	domain.SentValueRepository,
) {
	return repository.NewBalanceRepository(store),
		repository.NewInventoryRepository(store),
		repository.NewCredentialRepository(store),
		repository.NewSettingsRepository(store),
		repository.NewReceiptRepository(store),
		repository.NewSentValueRepository(store)
}
