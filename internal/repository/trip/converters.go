package trip

import (
	"time"

	"service/internal/entities"
)

type TripDB struct {
	ID             string
	ManifestID     *string
	ManifestNumber *string
	VehicleID      *string
	VehicleNumber  *string
	DriverName     *string
	CreatedAt      time.Time
}

func ToDomain(t *TripDB) *entities.Trip {
	if t == nil {
		return nil
	}

	// source rows reference the manifest by id or by display number,
	// never both; id wins when an import carries both
	var manifestRef entities.RecordRef
	switch {
	case t.ManifestID != nil && *t.ManifestID != "":
		manifestRef = entities.IDRef(*t.ManifestID)
	case t.ManifestNumber != nil && *t.ManifestNumber != "":
		manifestRef = entities.NumberRef(*t.ManifestNumber)
	}

	return &entities.Trip{
		ID:            t.ID,
		ManifestRef:   manifestRef,
		VehicleID:     orEmpty(t.VehicleID),
		VehicleNumber: orEmpty(t.VehicleNumber),
		DriverName:    orEmpty(t.DriverName),
		CreatedAt:     t.CreatedAt,
	}
}

func ToDomainList(tripModels []TripDB) []entities.Trip {
	trips := make([]entities.Trip, 0, len(tripModels))
	for i := range tripModels {
		trips = append(trips, *ToDomain(&tripModels[i]))
	}
	return trips
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
