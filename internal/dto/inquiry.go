package dto

import "time"

type InquiryCreate struct {
	VehicleType       string  `json:"vehicleType"`
	Weight            float64 `json:"weight"`
	ContainerType     string  `json:"containerType"`
	OriginCityID      string  `json:"originCityId"`
	DestinationCityID string  `json:"destinationCityId"`
	FreightAmount     float64 `json:"freightAmount"`
	ClientID          string  `json:"clientId,omitempty"`
	BranchID          string  `json:"branchId,omitempty"`
}

type InquiryAssignVehicle struct {
	VehicleID string `json:"vehicleId"`
	DriverID  string `json:"driverId"`
}

type InquiryCancel struct {
	Reason string `json:"reason"`
}

type Inquiry struct {
	ID                string  `json:"id"`
	Number            string  `json:"number"`
	VehicleType       string  `json:"vehicleType"`
	Weight            float64 `json:"weight"`
	ContainerType     string  `json:"containerType"`
	OriginCityID      string  `json:"originCityId"`
	DestinationCityID string  `json:"destinationCityId"`
	FreightAmount     float64 `json:"freightAmount"`
	ClientID          string  `json:"clientId,omitempty"`
	BranchID          string  `json:"branchId,omitempty"`
	Status            string  `json:"status"`

	AssignedVehicleID     string `json:"assignedVehicleId,omitempty"`
	AssignedVehicleNumber string `json:"assignedVehicleNumber,omitempty"`
	AssignedDriverID      string `json:"assignedDriverId,omitempty"`
	AssignedDriverName    string `json:"assignedDriverName,omitempty"`
	AssignedDriverMobile  string `json:"assignedDriverMobile,omitempty"`

	BookingID string `json:"bookingId,omitempty"`

	ConfirmedAt       *time.Time `json:"confirmedAt,omitempty"`
	ConfirmedBy       string     `json:"confirmedBy,omitempty"`
	VehicleAssignedAt *time.Time `json:"vehicleAssignedAt,omitempty"`
	VehicleAssignedBy string     `json:"vehicleAssignedBy,omitempty"`
	OrderConfirmedAt  *time.Time `json:"orderConfirmedAt,omitempty"`
	OrderConfirmedBy  string     `json:"orderConfirmedBy,omitempty"`
	CancelledAt       *time.Time `json:"cancelledAt,omitempty"`
	CancelledBy       string     `json:"cancelledBy,omitempty"`
	CancelReason      string     `json:"cancelReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
