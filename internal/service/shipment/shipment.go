package shipment

import (
	"context"
	"fmt"

	"service/internal/entities"
)

// Service composes the status resolver and the visibility filter over one
// snapshot read per call. Derived statuses are memoized; any write to the
// underlying collections must go through Invalidate.
type Service struct {
	bookings  BookingRepository
	manifests ManifestRepository
	trips     TripRepository
	pods      PODRepository
	branches  BranchDirectory
	cities    CityDirectory
	vehicles  VehicleDirectory

	cache *statusCache
}

func New(
	bookings BookingRepository,
	manifests ManifestRepository,
	trips TripRepository,
	pods PODRepository,
	branches BranchDirectory,
	cities CityDirectory,
	vehicles VehicleDirectory,
) *Service {
	return &Service{
		bookings:  bookings,
		manifests: manifests,
		trips:     trips,
		pods:      pods,
		branches:  branches,
		cities:    cities,
		vehicles:  vehicles,
		cache:     newStatusCache(),
	}
}

// Worklist returns the shipments the viewer may see, each with its derived
// status.
func (s *Service) Worklist(ctx context.Context, viewer entities.Viewer) ([]entities.ShipmentView, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	views := make([]entities.ShipmentView, 0, len(snap.Bookings))
	for _, booking := range snap.Bookings {
		if !IsVisible(booking, snap, viewer) {
			continue
		}
		views = append(views, s.view(booking, snap, viewer.BranchID))
	}
	return views, nil
}

// GetShipment returns a single booking's derived view. A booking hidden
// from the viewer is reported as not found.
func (s *Service) GetShipment(ctx context.Context, bookingID string, viewer entities.Viewer) (*entities.ShipmentView, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	booking, ok := bookingByID(bookingID, snap.Bookings)
	if !ok || !IsVisible(booking, snap, viewer) {
		return nil, ErrBookingNotFound
	}

	view := s.view(booking, snap, viewer.BranchID)
	return &view, nil
}

// Invalidate drops all memoized statuses. Called after any write to the
// booking/manifest/trip/POD collections, locally or via a consumed change
// event.
func (s *Service) Invalidate() {
	s.cache.invalidate()
}

// RefreshStatuses re-reads the full snapshot and re-derives every booking's
// unscoped status. It keeps the worklist eventually consistent even if a
// change event is missed, and returns the number of bookings refreshed.
func (s *Service) RefreshStatuses(ctx context.Context) (int, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("load snapshot: %w", err)
	}

	s.cache.invalidate()
	for _, booking := range snap.Bookings {
		s.cache.resolve(booking, snap, "")
	}
	return len(snap.Bookings), nil
}

func (s *Service) view(booking entities.Booking, snap *Snapshot, viewerBranchID string) entities.ShipmentView {
	resolution := s.cache.resolve(booking, snap, viewerBranchID)
	return entities.ShipmentView{
		Booking:             booking,
		Status:              resolution.Status,
		ManifestID:          resolution.ManifestID,
		DestinationBranchID: resolution.DestinationBranchID,
		VehicleNumber:       resolution.VehicleNumber,
		Discrepancies:       resolution.Discrepancies,
	}
}

func (s *Service) loadSnapshot(ctx context.Context) (*Snapshot, error) {
	bookings, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("bookings: %w", err)
	}
	manifests, err := s.manifests.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("manifests: %w", err)
	}
	trips, err := s.trips.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("trips: %w", err)
	}
	pods, err := s.pods.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("pods: %w", err)
	}
	branches, err := s.branches.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("branches: %w", err)
	}
	cities, err := s.cities.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("cities: %w", err)
	}
	vehicles, err := s.vehicles.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("vehicles: %w", err)
	}

	return &Snapshot{
		Bookings:  bookings,
		Manifests: manifests,
		Trips:     trips,
		PODs:      pods,
		Branches:  branches,
		Cities:    cities,
		Vehicles:  vehicles,
	}, nil
}
