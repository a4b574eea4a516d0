package inquiry

import (
	"context"
	"fmt"
	"time"

	"service/internal/entities"
)

// Inquiry drives the FTL inquiry confirmation state machine. All mutations
// require the acting viewer to hold the operator capability; transitions
// attempted from the wrong state are silent no-ops, matching the forgiving
// behavior the surrounding application expects.
type Inquiry struct {
	repository     Repository
	vehicles       VehicleDirectory
	drivers        DriverDirectory
	bookingGateway BookingGateway
	numberFactory  NumberFactory
	txManager      TxManager
}

func New(
	repository Repository,
	vehicles VehicleDirectory,
	drivers DriverDirectory,
	bookingGateway BookingGateway,
	numberFactory NumberFactory,
	txManager TxManager,
) *Inquiry {
	return &Inquiry{
		repository:     repository,
		vehicles:       vehicles,
		drivers:        drivers,
		bookingGateway: bookingGateway,
		numberFactory:  numberFactory,
		txManager:      txManager,
	}
}

func (s *Inquiry) CreateInquiry(ctx context.Context, actor entities.Viewer, modify entities.InquiryModify) (*entities.Inquiry, error) {
	if !actor.CanOperate() {
		return nil, ErrOperatorRequired
	}
	if !hasRequiredCreateFields(modify) {
		return nil, ErrMissingRequiredFields
	}
	if *modify.Weight <= 0 {
		return nil, ErrInvalidWeight
	}
	if !isValidContainerType(modify.ContainerType.String()) {
		return nil, ErrInvalidContainerType
	}

	now := time.Now().UTC()

	existing, err := s.repository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count inquiries: %w", err)
	}

	inquiry := entities.Inquiry{
		// display convenience only: concurrent sessions can allocate the
		// same number, identity stays on the id
		Number:            s.numberFactory.InquiryNumber(now, existing),
		VehicleType:       *modify.VehicleType,
		Weight:            *modify.Weight,
		ContainerType:     *modify.ContainerType,
		OriginCityID:      *modify.OriginCityID,
		DestinationCityID: *modify.DestinationCityID,
		ClientID:          *modify.ClientID,
		BranchID:          *modify.BranchID,
		Status:            entities.InquiryPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if modify.FreightAmount != nil {
		inquiry.FreightAmount = *modify.FreightAmount
	}

	id, err := s.repository.Create(ctx, inquiry)
	if err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	inquiry.ID = id

	return &inquiry, nil
}

// Confirm advances the inquiry one step: Pending becomes Confirmed, Vehicle
// Assigned becomes Order Confirmed. The operator-facing action is the same
// button for both gates, dispatching on current status. Any other state is
// left untouched.
func (s *Inquiry) Confirm(ctx context.Context, actor entities.Viewer, id string) (*entities.Inquiry, error) {
	if !actor.CanOperate() {
		return nil, ErrOperatorRequired
	}
	if !isValidID(id) {
		return nil, ErrMissingRequiredFields
	}

	var result *entities.Inquiry
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		inquiry, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get inquiry: %w", err)
		}

		now := time.Now().UTC()
		switch inquiry.Status {
		case entities.InquiryPending:
			inquiry.Status = entities.InquiryConfirmed
			inquiry.ConfirmedAt = &now
			inquiry.ConfirmedBy = actor.Name
		case entities.InquiryVehicleAssigned:
			inquiry.Status = entities.InquiryOrderConfirmed
			inquiry.OrderConfirmedAt = &now
			inquiry.OrderConfirmedBy = actor.Name
		default:
			// wrong state: the UI is expected to have hidden the action
			result = inquiry
			return nil
		}
		inquiry.UpdatedAt = now

		result, err = s.repository.Update(ctx, *inquiry)
		if err != nil {
			return fmt.Errorf("update inquiry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AssignVehicle moves a Confirmed inquiry to Vehicle Assigned. Both the
// vehicle and the driver must resolve against their directories; on any
// miss the inquiry is not touched.
func (s *Inquiry) AssignVehicle(ctx context.Context, actor entities.Viewer, id, vehicleID, driverID string) (*entities.Inquiry, error) {
	if !actor.CanOperate() {
		return nil, ErrOperatorRequired
	}
	if !isValidID(id) || !isValidID(vehicleID) || !isValidID(driverID) {
		return nil, ErrMissingRequiredFields
	}

	var result *entities.Inquiry
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		inquiry, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get inquiry: %w", err)
		}

		if inquiry.Status != entities.InquiryConfirmed {
			result = inquiry
			return nil
		}

		vehicle, err := s.vehicles.GetByID(ctx, vehicleID)
		if err != nil {
			return fmt.Errorf("resolve vehicle %s: %w", vehicleID, ErrVehicleNotFound)
		}
		driver, err := s.drivers.GetByID(ctx, driverID)
		if err != nil {
			return fmt.Errorf("resolve driver %s: %w", driverID, ErrDriverNotFound)
		}

		now := time.Now().UTC()
		inquiry.Status = entities.InquiryVehicleAssigned
		inquiry.AssignedVehicleID = vehicle.ID
		inquiry.AssignedVehicleNumber = vehicle.Number
		inquiry.AssignedDriverID = driver.ID
		inquiry.AssignedDriverName = driver.Name
		inquiry.AssignedDriverMobile = driver.Mobile
		inquiry.VehicleAssignedAt = &now
		inquiry.VehicleAssignedBy = actor.Name
		inquiry.UpdatedAt = now

		result, err = s.repository.Update(ctx, *inquiry)
		if err != nil {
			return fmt.Errorf("update inquiry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Cancel terminates the inquiry from any non-terminal state. The reason is
// whatever the user supplied, empty string included; an aborted prompt never
// reaches this call. A cancelled or order-confirmed inquiry stays as is.
func (s *Inquiry) Cancel(ctx context.Context, actor entities.Viewer, id, reason string) (*entities.Inquiry, error) {
	if !actor.CanOperate() {
		return nil, ErrOperatorRequired
	}
	if !isValidID(id) {
		return nil, ErrMissingRequiredFields
	}

	var result *entities.Inquiry
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		inquiry, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get inquiry: %w", err)
		}

		switch inquiry.Status {
		case entities.InquiryPending, entities.InquiryConfirmed, entities.InquiryVehicleAssigned:
		default:
			result = inquiry
			return nil
		}

		now := time.Now().UTC()
		inquiry.Status = entities.InquiryCancelled
		inquiry.CancelledAt = &now
		inquiry.CancelledBy = actor.Name
		inquiry.CancelReason = reason
		inquiry.UpdatedAt = now

		result, err = s.repository.Update(ctx, *inquiry)
		if err != nil {
			return fmt.Errorf("update inquiry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ConvertToBooking hands an order-confirmed inquiry to the external booking
// application. The inquiry is left in place for audit; the LR id comes back
// asynchronously through AttachBooking. Repeating the call for an already
// converted inquiry does nothing.
func (s *Inquiry) ConvertToBooking(ctx context.Context, actor entities.Viewer, id string) (*entities.Inquiry, error) {
	if !actor.CanOperate() {
		return nil, ErrOperatorRequired
	}
	if !isValidID(id) {
		return nil, ErrMissingRequiredFields
	}

	inquiry, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get inquiry: %w", err)
	}

	if inquiry.Status != entities.InquiryOrderConfirmed || inquiry.BookingID != "" {
		return inquiry, nil
	}

	if err := s.bookingGateway.PublishInquiryConverted(ctx, *inquiry); err != nil {
		return nil, fmt.Errorf("publish inquiry converted: %w", err)
	}

	return inquiry, nil
}

// AttachBooking records the LR created by the booking application for this
// inquiry. Called from the booking.created event handler.
func (s *Inquiry) AttachBooking(ctx context.Context, inquiryID, bookingID string) (*entities.Inquiry, error) {
	if !isValidID(inquiryID) || !isValidID(bookingID) {
		return nil, ErrMissingRequiredFields
	}

	var result *entities.Inquiry
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		inquiry, err := s.repository.GetByID(ctx, inquiryID)
		if err != nil {
			return fmt.Errorf("get inquiry: %w", err)
		}

		if inquiry.BookingID != "" {
			result = inquiry
			return nil
		}

		inquiry.BookingID = bookingID
		inquiry.UpdatedAt = time.Now().UTC()

		result, err = s.repository.Update(ctx, *inquiry)
		if err != nil {
			return fmt.Errorf("update inquiry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Inquiry) GetInquiry(ctx context.Context, id string) (*entities.Inquiry, error) {
	inquiry, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}
	return inquiry, nil
}

func (s *Inquiry) GetInquiries(ctx context.Context) ([]entities.Inquiry, error) {
	inquiries, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get inquiries: %w", err)
	}
	return inquiries, nil
}
