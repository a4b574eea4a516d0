package inquiry

import (
	"time"

	"service/internal/entities"
)

type InquiryDB struct {
	ID                string
	Number            string
	VehicleType       string
	Weight            float64
	ContainerType     string
	OriginCityID      string
	DestinationCityID string
	FreightAmount     float64
	ClientID          *string
	BranchID          *string
	Status            string

	AssignedVehicleID     *string
	AssignedVehicleNumber *string
	AssignedDriverID      *string
	AssignedDriverName    *string
	AssignedDriverMobile  *string

	BookingID *string

	ConfirmedAt       *time.Time
	ConfirmedBy       *string
	VehicleAssignedAt *time.Time
	VehicleAssignedBy *string
	OrderConfirmedAt  *time.Time
	OrderConfirmedBy  *string
	CancelledAt       *time.Time
	CancelledBy       *string
	CancelReason      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ToDomain(i *InquiryDB) *entities.Inquiry {
	if i == nil {
		return nil
	}
	return &entities.Inquiry{
		ID:                i.ID,
		Number:            i.Number,
		VehicleType:       i.VehicleType,
		Weight:            i.Weight,
		ContainerType:     entities.ContainerType(i.ContainerType),
		OriginCityID:      i.OriginCityID,
		DestinationCityID: i.DestinationCityID,
		FreightAmount:     i.FreightAmount,
		ClientID:          orEmpty(i.ClientID),
		BranchID:          orEmpty(i.BranchID),
		Status:            entities.InquiryStatus(i.Status),

		AssignedVehicleID:     orEmpty(i.AssignedVehicleID),
		AssignedVehicleNumber: orEmpty(i.AssignedVehicleNumber),
		AssignedDriverID:      orEmpty(i.AssignedDriverID),
		AssignedDriverName:    orEmpty(i.AssignedDriverName),
		AssignedDriverMobile:  orEmpty(i.AssignedDriverMobile),

		BookingID: orEmpty(i.BookingID),

		ConfirmedAt:       i.ConfirmedAt,
		ConfirmedBy:       orEmpty(i.ConfirmedBy),
		VehicleAssignedAt: i.VehicleAssignedAt,
		VehicleAssignedBy: orEmpty(i.VehicleAssignedBy),
		OrderConfirmedAt:  i.OrderConfirmedAt,
		OrderConfirmedBy:  orEmpty(i.OrderConfirmedBy),
		CancelledAt:       i.CancelledAt,
		CancelledBy:       orEmpty(i.CancelledBy),
		CancelReason:      orEmpty(i.CancelReason),

		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func ToDomainList(inquiryModels []InquiryDB) []entities.Inquiry {
	inquiries := make([]entities.Inquiry, 0, len(inquiryModels))
	for i := range inquiryModels {
		inquiries = append(inquiries, *ToDomain(&inquiryModels[i]))
	}
	return inquiries
}

func FromDomain(i *entities.Inquiry) *InquiryDB {
	if i == nil {
		return nil
	}
	return &InquiryDB{
		ID:                i.ID,
		Number:            i.Number,
		VehicleType:       i.VehicleType,
		Weight:            i.Weight,
		ContainerType:     i.ContainerType.String(),
		OriginCityID:      i.OriginCityID,
		DestinationCityID: i.DestinationCityID,
		FreightAmount:     i.FreightAmount,
		ClientID:          orNil(i.ClientID),
		BranchID:          orNil(i.BranchID),
		Status:            i.Status.String(),

		AssignedVehicleID:     orNil(i.AssignedVehicleID),
		AssignedVehicleNumber: orNil(i.AssignedVehicleNumber),
		AssignedDriverID:      orNil(i.AssignedDriverID),
		AssignedDriverName:    orNil(i.AssignedDriverName),
		AssignedDriverMobile:  orNil(i.AssignedDriverMobile),

		BookingID: orNil(i.BookingID),

		ConfirmedAt:       i.ConfirmedAt,
		ConfirmedBy:       orNil(i.ConfirmedBy),
		VehicleAssignedAt: i.VehicleAssignedAt,
		VehicleAssignedBy: orNil(i.VehicleAssignedBy),
		OrderConfirmedAt:  i.OrderConfirmedAt,
		OrderConfirmedBy:  orNil(i.OrderConfirmedBy),
		CancelledAt:       i.CancelledAt,
		CancelledBy:       orNil(i.CancelledBy),
		CancelReason:      orNil(i.CancelReason),

		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
