package entities

import "time"

// Inquiry is an FTL freight inquiry moving through an explicit confirmation
// state machine before it becomes a booking. It is the only record in this
// core with a stored status field.
type Inquiry struct {
	ID                string
	Number            string
	VehicleType       string
	Weight            float64
	ContainerType     ContainerType
	OriginCityID      string
	DestinationCityID string
	FreightAmount     float64
	ClientID          string
	BranchID          string
	Status            InquiryStatus

	// denormalized on vehicle assignment for display
	AssignedVehicleID     string
	AssignedVehicleNumber string
	AssignedDriverID      string
	AssignedDriverName    string
	AssignedDriverMobile  string

	// linked LR once converted
	BookingID string

	ConfirmedAt       *time.Time
	ConfirmedBy       string
	VehicleAssignedAt *time.Time
	VehicleAssignedBy string
	OrderConfirmedAt  *time.Time
	OrderConfirmedBy  string
	CancelledAt       *time.Time
	CancelledBy       string
	CancelReason      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type InquiryStatus string

const (
	InquiryPending         InquiryStatus = "pending"
	InquiryConfirmed       InquiryStatus = "confirmed"
	InquiryVehicleAssigned InquiryStatus = "vehicle_assigned"
	InquiryOrderConfirmed  InquiryStatus = "order_confirmed"
	InquiryCancelled       InquiryStatus = "cancelled"
)

func (s InquiryStatus) String() string {
	return string(s)
}

type ContainerType string

const (
	ContainerOpen   ContainerType = "open"
	ContainerClosed ContainerType = "closed"
)

func (t ContainerType) String() string {
	return string(t)
}

// InquiryModify carries the fields of an inquiry creation request.
type InquiryModify struct {
	VehicleType       *string
	Weight            *float64
	ContainerType     *ContainerType
	OriginCityID      *string
	DestinationCityID *string
	FreightAmount     *float64
	ClientID          *string
	BranchID          *string
}
