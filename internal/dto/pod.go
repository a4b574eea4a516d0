package dto

import "time"

// PODSave carries a create-or-update POD submission. Pointer fields are
// omitted to leave the stored value untouched on update.
type PODSave struct {
	DeliveredAt     *time.Time `json:"deliveredAt,omitempty"`
	ReceiverName    *string    `json:"receiverName,omitempty"`
	ReceiverMobile  *string    `json:"receiverMobile,omitempty"`
	ReceiverIDProof *string    `json:"receiverIdProof,omitempty"`
	PiecesDelivered *int       `json:"piecesDelivered,omitempty"`
	Condition       *string    `json:"condition,omitempty"`

	DispatchStatus *string `json:"podDispatchStatus,omitempty"`
	DispatchMode   *string `json:"podDispatchMode,omitempty"`

	CourierName           *string `json:"courierName,omitempty"`
	TrackingNumber        *string `json:"trackingNumber,omitempty"`
	CourierReceiverName   *string `json:"courierReceiverName,omitempty"`
	CourierReceiverNumber *string `json:"courierReceiverNumber,omitempty"`

	StaffID *string `json:"staffId,omitempty"`
}

type PODDispatch struct {
	DispatchStatus string `json:"podDispatchStatus"`
}

type POD struct {
	ID              string    `json:"id"`
	Number          string    `json:"number"`
	BookingID       string    `json:"bookingId,omitempty"`
	LRNumber        string    `json:"lrNumber,omitempty"`
	DeliveredAt     time.Time `json:"deliveredAt"`
	ReceiverName    string    `json:"receiverName"`
	ReceiverMobile  string    `json:"receiverMobile,omitempty"`
	ReceiverIDProof string    `json:"receiverIdProof,omitempty"`
	PiecesDelivered *int      `json:"piecesDelivered,omitempty"`
	Condition       string    `json:"condition"`

	DispatchStatus string `json:"podDispatchStatus"`
	DispatchMode   string `json:"podDispatchMode,omitempty"`

	CourierName           string `json:"courierName,omitempty"`
	TrackingNumber        string `json:"trackingNumber,omitempty"`
	CourierReceiverName   string `json:"courierReceiverName,omitempty"`
	CourierReceiverNumber string `json:"courierReceiverNumber,omitempty"`

	StaffID   string `json:"staffId,omitempty"`
	StaffName string `json:"staffName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
