package shipment

import "service/internal/entities"

// Snapshot is one synchronous read of every collection the resolver and the
// visibility filter need. Reads are not transactional with respect to
// concurrent writers; the snapshot is simply whatever each collection held
// at load time.
type Snapshot struct {
	Bookings  []entities.Booking
	Manifests []entities.Manifest
	Trips     []entities.Trip
	PODs      []entities.ProofOfDelivery
	Branches  []entities.Branch
	Cities    []entities.City
	Vehicles  []entities.Vehicle
}

// Resolution is everything Resolve derives for one booking.
type Resolution struct {
	Status              entities.ShipmentStatus
	ManifestID          string
	DestinationBranchID string
	VehicleNumber       string
	Discrepancies       []string
}
