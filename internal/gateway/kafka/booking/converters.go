package booking

import "service/internal/entities"

// inquiryConvertedEvent is the payload the external booking application
// consumes to create the LR. Field names follow its intake contract.
type inquiryConvertedEvent struct {
	InquiryID         string  `json:"inquiryId"`
	InquiryNumber     string  `json:"inquiryNumber"`
	VehicleType       string  `json:"vehicleType"`
	Weight            float64 `json:"weight"`
	ContainerType     string  `json:"containerType"`
	OriginCityID      string  `json:"originCityId"`
	DestinationCityID string  `json:"destinationCityId"`
	FreightAmount     float64 `json:"freightAmount"`
	ClientID          string  `json:"clientId,omitempty"`
	BranchID          string  `json:"branchId,omitempty"`
	VehicleID         string  `json:"vehicleId,omitempty"`
	VehicleNumber     string  `json:"vehicleNumber,omitempty"`
	DriverID          string  `json:"driverId,omitempty"`
	DriverName        string  `json:"driverName,omitempty"`
	DriverMobile      string  `json:"driverMobile,omitempty"`
}

func toEvent(inquiry entities.Inquiry) inquiryConvertedEvent {
	return inquiryConvertedEvent{
		InquiryID:         inquiry.ID,
		InquiryNumber:     inquiry.Number,
		VehicleType:       inquiry.VehicleType,
		Weight:            inquiry.Weight,
		ContainerType:     inquiry.ContainerType.String(),
		OriginCityID:      inquiry.OriginCityID,
		DestinationCityID: inquiry.DestinationCityID,
		FreightAmount:     inquiry.FreightAmount,
		ClientID:          inquiry.ClientID,
		BranchID:          inquiry.BranchID,
		VehicleID:         inquiry.AssignedVehicleID,
		VehicleNumber:     inquiry.AssignedVehicleNumber,
		DriverID:          inquiry.AssignedDriverID,
		DriverName:        inquiry.AssignedDriverName,
		DriverMobile:      inquiry.AssignedDriverMobile,
	}
}
