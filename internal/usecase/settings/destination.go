package settings

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"go.uber.org/zap"
)

var classicAddress = regexp.MustCompile(`^r[1-9A-HJ-NP-Za-km-z]{24,34}$`)

// DestinationService manages the payment destination setting
type DestinationService struct {
	repo     domain.SettingsRepository
	fallback string
	logger   *logger.Logger
}

// NewDestinationService creates a destination service; fallback is used while unset
func NewDestinationService(repo domain.SettingsRepository, fallback string, logger *logger.Logger) *DestinationService {
	return &DestinationService{
		repo:     repo,
		fallback: fallback,
		logger:   logger,
	}
}

// Get returns the stored destination or the fallback
func (s *DestinationService) Get(ctx context.Context) domain.Destination {
	value, err := s.repo.Get(ctx, domain.KeyDestination)
	if err != nil {
		s.logger.Warn("Failed to read destination, using default", zap.Error(err))
		value = ""
	}
	if value == "" {
		return domain.Destination{Address: s.fallback, IsDefault: true}
	}
	return describe(value)
}

// Set stores address. The reserved value "spin" is accepted in any case
// and marks the rewards menu; anything else must be a classic address.
func (s *DestinationService) Set(ctx context.Context, address string) (domain.Destination, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Destination{}, domain.NewAppError(domain.ErrCodeRequiredField, "Enter a destination address.", http.StatusBadRequest, nil)
	}
	if strings.EqualFold(address, domain.DestinationSpin) {
		address = domain.DestinationSpin
	} else if !classicAddress.MatchString(address) {
		return domain.Destination{}, domain.NewAppError(domain.ErrCodeInvalidFormat, "Destination is not a valid XRP address.", http.StatusBadRequest, nil)
	}

	if err := s.repo.Set(ctx, domain.KeyDestination, address); err != nil {
		return domain.Destination{}, domain.NewStorageError("save destination", err)
	}

	s.logger.Info("Destination updated", zap.String("address", address))
	return describe(address), nil
}

func describe(address string) domain.Destination {
	return domain.Destination{
		Address:  address,
		SpinMenu: address == domain.DestinationSpin,
	}
}
