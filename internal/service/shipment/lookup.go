package shipment

import (
	"strings"

	"service/internal/entities"
)

// VehicleNumberUnknown is the sentinel shown when a vehicle reference does
// not resolve. Resolution misses degrade, they never error.
const VehicleNumberUnknown = "N/A"

// manifestFor returns the first manifest carrying the booking.
func manifestFor(booking entities.Booking, manifests []entities.Manifest) (entities.Manifest, bool) {
	for _, manifest := range manifests {
		if manifest.Contains(booking.ID) {
			return manifest, true
		}
	}
	return entities.Manifest{}, false
}

// tripFor returns the first trip referencing the manifest, matching by
// manifest id or by manifest number.
func tripFor(manifest entities.Manifest, trips []entities.Trip) (entities.Trip, bool) {
	for _, trip := range trips {
		if trip.ManifestRef.Matches(manifest.ID, manifest.Number) {
			return trip, true
		}
	}
	return entities.Trip{}, false
}

// podFor returns the first POD resolving to the booking, matching by booking
// id or by LR number.
func podFor(booking entities.Booking, pods []entities.ProofOfDelivery) (entities.ProofOfDelivery, bool) {
	for _, pod := range pods {
		if pod.BookingRef.Matches(booking.ID, booking.LRNumber) {
			return pod, true
		}
	}
	return entities.ProofOfDelivery{}, false
}

// destinationBranchID resolves where a manifest is headed. An explicit
// destination branch wins; otherwise the first LR's destination city is
// matched against branch city/state. The city/state match is a best-effort
// approximation carried over from the source data: it is not guaranteed
// unique, and the first matching branch wins.
func destinationBranchID(manifest entities.Manifest, snap *Snapshot) string {
	if manifest.DestinationBranchID != "" {
		return manifest.DestinationBranchID
	}

	if len(manifest.BookingIDs) == 0 {
		return ""
	}

	firstLR, ok := bookingByID(manifest.BookingIDs[0], snap.Bookings)
	if !ok {
		return ""
	}

	city, ok := cityByID(firstLR.DestinationCityID, snap.Cities)
	if !ok {
		return ""
	}

	for _, branch := range snap.Branches {
		if strings.EqualFold(branch.City, city.Name) && strings.EqualFold(branch.State, city.State) {
			return branch.ID
		}
	}
	return ""
}

func bookingByID(id string, bookings []entities.Booking) (entities.Booking, bool) {
	for _, booking := range bookings {
		if booking.ID == id {
			return booking, true
		}
	}
	return entities.Booking{}, false
}

func cityByID(id string, cities []entities.City) (entities.City, bool) {
	for _, city := range cities {
		if city.ID == id {
			return city, true
		}
	}
	return entities.City{}, false
}

func vehicleNumber(trip entities.Trip, vehicles []entities.Vehicle) string {
	if trip.VehicleNumber != "" {
		return trip.VehicleNumber
	}
	for _, vehicle := range vehicles {
		if vehicle.ID == trip.VehicleID {
			return vehicle.Number
		}
	}
	return VehicleNumberUnknown
}
