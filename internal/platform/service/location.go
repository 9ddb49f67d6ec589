package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/store"
	"github.com/sitewatch/sitewatch/pkg/idx"
)

// LocationService manages the shared location lookup table.
type LocationService struct {
	Store store.Store
}

// Create adds a location. Names are unique; re-creating an existing name
// returns the existing row rather than failing, matching the inline
// add-location flow the observation form uses.
func (s *LocationService) Create(ctx context.Context, name string) (domain.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Location{}, fmt.Errorf("%w: location name is required", ErrValidation)
	}

	loc := domain.Location{
		ID:        idx.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	err := s.Store.Locations().CreateLocation(ctx, loc)
	if errors.Is(err, store.ErrAlreadyExists) {
		existing, lookupErr := s.findByName(ctx, name)
		if lookupErr != nil {
			return domain.Location{}, lookupErr
		}
		return existing, nil
	}
	if err != nil {
		return domain.Location{}, err
	}
	return loc, nil
}

// List returns all locations, name order.
func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	return s.Store.Locations().ListLocations(ctx)
}

func (s *LocationService) findByName(ctx context.Context, name string) (domain.Location, error) {
	locations, err := s.Store.Locations().ListLocations(ctx)
	if err != nil {
		return domain.Location{}, err
	}
	for _, l := range locations {
		if strings.EqualFold(l.Name, name) {
			return l, nil
		}
	}
	return domain.Location{}, ErrNotFound
}
