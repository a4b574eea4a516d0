package entities

import "time"

// Manifest batches bookings dispatched together on one vehicle movement.
// BookingIDs are canonical ids: converters normalize the mixed raw-id /
// embedded-object entries the source collection carries.
type Manifest struct {
	ID                  string
	Number              string
	BookingIDs          []string
	DestinationBranchID string // optional; empty means infer from the first LR
	Receipts            map[string]ManifestReceipt
	CreatedAt           time.Time
}

// ManifestReceipt records the receiving branch's acknowledgement for one LR.
type ManifestReceipt struct {
	Received       bool
	ReceivedPieces int
	ReceivedBy     string
	ReceivedAt     time.Time
	Discrepancy    string
}

// Contains reports whether the manifest carries the given booking.
func (m Manifest) Contains(bookingID string) bool {
	for _, id := range m.BookingIDs {
		if id == bookingID {
			return true
		}
	}
	return false
}

// ReceiptFor returns the receipt for the given booking, if any.
func (m Manifest) ReceiptFor(bookingID string) (ManifestReceipt, bool) {
	receipt, ok := m.Receipts[bookingID]
	return receipt, ok
}
