package services

import (
	"fmt"

	"rentwheels/internal/models"
	"rentwheels/internal/repositories"

	"github.com/google/uuid"
)

// VehicleService handles vehicle discovery and the ownership-guarded
// mutation paths.
type VehicleService struct {
	repo repositories.VehicleRepository
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(repo repositories.VehicleRepository) *VehicleService {
	return &VehicleService{
		repo: repo,
	}
}

// ListVehicles retrieves the vehicles matching the query.
func (s *VehicleService) ListVehicles(query models.VehicleQuery) ([]models.Vehicle, error) {
	return s.repo.List(query)
}

// GetVehicleByID retrieves a vehicle, rejecting malformed identifiers
// before the store is consulted.
func (s *VehicleService) GetVehicleByID(id string) (*models.Vehicle, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("malformed vehicle ID %q: %w", id, models.ErrInvalidInput)
	}
	return s.repo.GetByID(id)
}

// CreateVehicle inserts a new listing. The owning identity is forced to
// the verified caller no matter what the request body claimed; this is
// what makes the ownership guard trustworthy later.
func (s *VehicleService) CreateVehicle(vehicle *models.Vehicle, identity VerifiedIdentity) error {
	vehicle.ID = ""
	vehicle.UserEmail = identity.Email
	if vehicle.Availability == "" {
		vehicle.Availability = models.DefaultAvailability
	}
	return s.repo.Create(vehicle)
}

// UpdateVehicle applies a partial update after the ownership guard passes.
// Returns the number of rows modified.
func (s *VehicleService) UpdateVehicle(id string, patch models.VehiclePatch, identity VerifiedIdentity) (int64, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty patch: %w", models.ErrInvalidInput)
	}
	if _, err := s.authorizeOwner(id, identity); err != nil {
		return 0, err
	}
	return s.repo.Update(id, fields)
}

// DeleteVehicle hard-deletes a listing after the ownership guard passes.
// Returns the number of rows removed.
func (s *VehicleService) DeleteVehicle(id string, identity VerifiedIdentity) (int64, error) {
	if _, err := s.authorizeOwner(id, identity); err != nil {
		return 0, err
	}
	return s.repo.Delete(id)
}

// authorizeOwner runs the ownership guard: fetch the vehicle, then compare
// its stored owning identity to the verified caller. The read happens
// strictly before any write. The read-then-write pair is not atomic; the
// only race it admits is the true owner's own write landing late, since a
// non-owner has already been rejected here.
func (s *VehicleService) authorizeOwner(id string, identity VerifiedIdentity) (*models.Vehicle, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("malformed vehicle ID %q: %w", id, models.ErrInvalidInput)
	}
	vehicle, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle.UserEmail != identity.Email {
		return nil, fmt.Errorf("vehicle %s is not owned by %s: %w", id, identity.Email, models.ErrForbidden)
	}
	return vehicle, nil
}
