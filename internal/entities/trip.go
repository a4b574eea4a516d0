package entities

import "time"

// Trip is the physical vehicle movement executing a manifest. Source records
// reference the manifest inconsistently, by id or by manifest number, so the
// reference stays a RecordRef and matching tries both.
type Trip struct {
	ID            string
	ManifestRef   RecordRef
	VehicleID     string
	VehicleNumber string
	DriverName    string
	CreatedAt     time.Time
}
