package dto

import "service/internal/entities"

func InquiryFromEntity(inquiry entities.Inquiry) Inquiry {
	return Inquiry{
		ID:                inquiry.ID,
		Number:            inquiry.Number,
		VehicleType:       inquiry.VehicleType,
		Weight:            inquiry.Weight,
		ContainerType:     inquiry.ContainerType.String(),
		OriginCityID:      inquiry.OriginCityID,
		DestinationCityID: inquiry.DestinationCityID,
		FreightAmount:     inquiry.FreightAmount,
		ClientID:          inquiry.ClientID,
		BranchID:          inquiry.BranchID,
		Status:            inquiry.Status.String(),

		AssignedVehicleID:     inquiry.AssignedVehicleID,
		AssignedVehicleNumber: inquiry.AssignedVehicleNumber,
		AssignedDriverID:      inquiry.AssignedDriverID,
		AssignedDriverName:    inquiry.AssignedDriverName,
		AssignedDriverMobile:  inquiry.AssignedDriverMobile,

		BookingID: inquiry.BookingID,

		ConfirmedAt:       inquiry.ConfirmedAt,
		ConfirmedBy:       inquiry.ConfirmedBy,
		VehicleAssignedAt: inquiry.VehicleAssignedAt,
		VehicleAssignedBy: inquiry.VehicleAssignedBy,
		OrderConfirmedAt:  inquiry.OrderConfirmedAt,
		OrderConfirmedBy:  inquiry.OrderConfirmedBy,
		CancelledAt:       inquiry.CancelledAt,
		CancelledBy:       inquiry.CancelledBy,
		CancelReason:      inquiry.CancelReason,

		CreatedAt: inquiry.CreatedAt,
		UpdatedAt: inquiry.UpdatedAt,
	}
}

func InquiryListFromEntities(inquiries []entities.Inquiry) []Inquiry {
	list := make([]Inquiry, 0, len(inquiries))
	for _, inquiry := range inquiries {
		list = append(list, InquiryFromEntity(inquiry))
	}
	return list
}

func ShipmentViewFromEntity(view entities.ShipmentView) ShipmentView {
	return ShipmentView{
		BookingID:           view.Booking.ID,
		LRNumber:            view.Booking.LRNumber,
		BranchID:            view.Booking.BranchID,
		OriginCityID:        view.Booking.OriginCityID,
		DestinationCityID:   view.Booking.DestinationCityID,
		Pieces:              view.Booking.Pieces,
		Weight:              view.Booking.Weight,
		Mode:                view.Booking.Mode.String(),
		Status:              view.Status.String(),
		ManifestID:          view.ManifestID,
		DestinationBranchID: view.DestinationBranchID,
		VehicleNumber:       view.VehicleNumber,
		Discrepancies:       view.Discrepancies,
	}
}

func ShipmentViewListFromEntities(views []entities.ShipmentView) []ShipmentView {
	list := make([]ShipmentView, 0, len(views))
	for _, view := range views {
		list = append(list, ShipmentViewFromEntity(view))
	}
	return list
}

func PODFromEntity(pod entities.ProofOfDelivery) POD {
	podDTO := POD{
		ID:              pod.ID,
		Number:          pod.Number,
		DeliveredAt:     pod.DeliveredAt,
		ReceiverName:    pod.ReceiverName,
		ReceiverMobile:  pod.ReceiverMobile,
		ReceiverIDProof: pod.ReceiverIDProof,
		PiecesDelivered: pod.PiecesDelivered,
		Condition:       pod.Condition.String(),

		DispatchStatus: pod.DispatchStatus.String(),
		DispatchMode:   pod.DispatchMode.String(),

		CourierName:           pod.CourierName,
		TrackingNumber:        pod.TrackingNumber,
		CourierReceiverName:   pod.CourierReceiverName,
		CourierReceiverNumber: pod.CourierReceiverNumber,

		StaffID:   pod.StaffID,
		StaffName: pod.StaffName,

		CreatedAt: pod.CreatedAt,
		UpdatedAt: pod.UpdatedAt,
	}

	switch pod.BookingRef.Kind {
	case entities.RefID:
		podDTO.BookingID = pod.BookingRef.Value
	case entities.RefNumber:
		podDTO.LRNumber = pod.BookingRef.Value
	}

	return podDTO
}
