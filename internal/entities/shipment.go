package entities

// ShipmentStatus is the presentation state of a booking, derived on every
// read from the manifest/trip/POD collections. There is no stored status
// field; delivery evidence outranks manifest and trip evidence, which
// outranks raw booking-branch membership.
type ShipmentStatus string

const (
	ShipmentDelivered       ShipmentStatus = "Delivered - POD Uploaded"
	ShipmentPendingDispatch ShipmentStatus = "Pending for Dispatch"
	ShipmentNotManifested   ShipmentStatus = "Not Manifested"
	ShipmentInTransit       ShipmentStatus = "In Transit - Trip Created"
	ShipmentManifestedOther ShipmentStatus = "Manifested - Other Branch"
	ShipmentPendingDelivery ShipmentStatus = "Pending Delivery"
	ShipmentManifested      ShipmentStatus = "Manifested"
)

func (s ShipmentStatus) String() string {
	return string(s)
}

// ShipmentView is one worklist row: the booking plus everything the
// resolver derived for the current viewer.
type ShipmentView struct {
	Booking             Booking
	Status              ShipmentStatus
	ManifestID          string
	DestinationBranchID string
	VehicleNumber       string // "N/A" when unresolvable
	Discrepancies       []string
}
