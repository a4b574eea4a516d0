package entities

import "time"

// ProofOfDelivery closes a booking: a booking is delivered if and only if a
// POD resolving to it exists. Created once at delivery time, edited in place
// afterwards. BookingRef may carry the booking id or the display LR number.
type ProofOfDelivery struct {
	ID              string
	Number          string
	BookingRef      RecordRef
	DeliveredAt     time.Time
	ReceiverName    string
	ReceiverMobile  string
	ReceiverIDProof string
	PiecesDelivered *int
	Condition       DeliveryCondition

	DispatchStatus PODDispatchStatus
	DispatchMode   PODDispatchMode // FTL bookings only

	// courier dispatch fields
	CourierName           string
	TrackingNumber        string
	CourierReceiverName   string
	CourierReceiverNumber string

	// hand dispatch fields
	StaffID   string
	StaffName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PODModify carries the caller-supplied fields of a POD save. Nil means
// "leave as is" on update and "unset" on create.
type PODModify struct {
	BookingID       *string
	DeliveredAt     *time.Time
	ReceiverName    *string
	ReceiverMobile  *string
	ReceiverIDProof *string
	PiecesDelivered *int
	Condition       *DeliveryCondition

	DispatchStatus *PODDispatchStatus
	DispatchMode   *PODDispatchMode

	CourierName           *string
	TrackingNumber        *string
	CourierReceiverName   *string
	CourierReceiverNumber *string

	StaffID *string
}

type DeliveryCondition string

const (
	ConditionGood          DeliveryCondition = "good"
	ConditionDamaged       DeliveryCondition = "damaged"
	ConditionShortDelivery DeliveryCondition = "short_delivery"
	ConditionOther         DeliveryCondition = "other"
)

func (c DeliveryCondition) String() string {
	return string(c)
}

type PODDispatchStatus string

const (
	DispatchPending   PODDispatchStatus = "pending"
	DispatchSent      PODDispatchStatus = "dispatched"
	DispatchDelivered PODDispatchStatus = "delivered_to_client"
)

const DefaultDispatchStatus = DispatchPending

func (s PODDispatchStatus) String() string {
	return string(s)
}

type PODDispatchMode string

const (
	DispatchByCourier PODDispatchMode = "courier"
	DispatchByHand    PODDispatchMode = "hand"
)

func (m PODDispatchMode) String() string {
	return string(m)
}
