package entities

import "time"

// Booking is the LR (lorry receipt), the core shipment record. It is created
// by the external booking application and treated as read-only here except
// for the PODUploaded flag set once by the POD sub-workflow.
type Booking struct {
	ID                string
	LRNumber          string
	BranchID          string
	OriginCityID      string
	DestinationCityID string
	Pieces            int
	Weight            float64
	Mode              BookingMode
	Consignor         ContactBlock
	Consignee         ContactBlock
	PODUploaded       bool
	CreatedAt         time.Time
}

type BookingMode string

const (
	ModePTL BookingMode = "ptl"
	ModeFTL BookingMode = "ftl"
)

func (m BookingMode) String() string {
	return string(m)
}

type ContactBlock struct {
	Name    string
	Mobile  string
	Address string
	GSTIN   string
}
