package pod

import (
	"time"

	"service/internal/entities"
)

type PodDB struct {
	ID                    string
	Number                string
	BookingID             *string
	BookingLR             *string
	DeliveredAt           time.Time
	ReceiverName          string
	ReceiverMobile        *string
	ReceiverIDProof       *string
	PiecesDelivered       *int
	Condition             string
	DispatchStatus        string
	DispatchMode          *string
	CourierName           *string
	TrackingNumber        *string
	CourierReceiverName   *string
	CourierReceiverNumber *string
	StaffID               *string
	StaffName             *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func ToDomain(p *PodDB) *entities.ProofOfDelivery {
	if p == nil {
		return nil
	}

	// legacy rows reference the booking by LR number instead of id
	var bookingRef entities.RecordRef
	switch {
	case p.BookingID != nil && *p.BookingID != "":
		bookingRef = entities.IDRef(*p.BookingID)
	case p.BookingLR != nil && *p.BookingLR != "":
		bookingRef = entities.NumberRef(*p.BookingLR)
	}

	return &entities.ProofOfDelivery{
		ID:                    p.ID,
		Number:                p.Number,
		BookingRef:            bookingRef,
		DeliveredAt:           p.DeliveredAt,
		ReceiverName:          p.ReceiverName,
		ReceiverMobile:        orEmpty(p.ReceiverMobile),
		ReceiverIDProof:       orEmpty(p.ReceiverIDProof),
		PiecesDelivered:       p.PiecesDelivered,
		Condition:             entities.DeliveryCondition(p.Condition),
		DispatchStatus:        entities.PODDispatchStatus(p.DispatchStatus),
		DispatchMode:          entities.PODDispatchMode(orEmpty(p.DispatchMode)),
		CourierName:           orEmpty(p.CourierName),
		TrackingNumber:        orEmpty(p.TrackingNumber),
		CourierReceiverName:   orEmpty(p.CourierReceiverName),
		CourierReceiverNumber: orEmpty(p.CourierReceiverNumber),
		StaffID:               orEmpty(p.StaffID),
		StaffName:             orEmpty(p.StaffName),
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func ToDomainList(podModels []PodDB) []entities.ProofOfDelivery {
	pods := make([]entities.ProofOfDelivery, 0, len(podModels))
	for i := range podModels {
		pods = append(pods, *ToDomain(&podModels[i]))
	}
	return pods
}

func FromDomain(p *entities.ProofOfDelivery) *PodDB {
	if p == nil {
		return nil
	}

	podModel := &PodDB{
		ID:                    p.ID,
		Number:                p.Number,
		DeliveredAt:           p.DeliveredAt,
		ReceiverName:          p.ReceiverName,
		ReceiverMobile:        orNil(p.ReceiverMobile),
		ReceiverIDProof:       orNil(p.ReceiverIDProof),
		PiecesDelivered:       p.PiecesDelivered,
		Condition:             p.Condition.String(),
		DispatchStatus:        p.DispatchStatus.String(),
		DispatchMode:          orNil(p.DispatchMode.String()),
		CourierName:           orNil(p.CourierName),
		TrackingNumber:        orNil(p.TrackingNumber),
		CourierReceiverName:   orNil(p.CourierReceiverName),
		CourierReceiverNumber: orNil(p.CourierReceiverNumber),
		StaffID:               orNil(p.StaffID),
		StaffName:             orNil(p.StaffName),
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}

	switch p.BookingRef.Kind {
	case entities.RefID:
		podModel.BookingID = orNil(p.BookingRef.Value)
	case entities.RefNumber:
		podModel.BookingLR = orNil(p.BookingRef.Value)
	}

	return podModel
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
