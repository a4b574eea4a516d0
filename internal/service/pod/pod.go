package pod

import (
	"context"
	"fmt"
	"time"

	"service/internal/entities"
)

// POD manages proof-of-delivery records and their paper-dispatch
// sub-workflow. It is the only writer of POD records in this service;
// bookings, manifests and trips stay read-only. A save is a read-modify-
// write of the record; concurrent saves from two sessions race and the
// last writer wins, which is accepted behavior, not a bug to fix here.
type POD struct {
	repository    Repository
	bookings      BookingRepository
	staff         StaffDirectory
	invalidator   StatusInvalidator
	numberFactory NumberFactory
	txManager     TxManager
}

func New(
	repository Repository,
	bookings BookingRepository,
	staff StaffDirectory,
	invalidator StatusInvalidator,
	numberFactory NumberFactory,
	txManager TxManager,
) *POD {
	return &POD{
		repository:    repository,
		bookings:      bookings,
		staff:         staff,
		invalidator:   invalidator,
		numberFactory: numberFactory,
		txManager:     txManager,
	}
}

// Save creates or updates the POD for a booking. Whether it is a create or
// an update is decided solely by whether a POD already resolves for the
// booking; the POD number is allocated once and survives updates.
func (s *POD) Save(ctx context.Context, bookingID string, modify entities.PODModify) (*entities.ProofOfDelivery, error) {
	if !isValidID(bookingID) {
		return nil, ErrMissingRequiredFields
	}
	if modify.Condition != nil && !isValidCondition(modify.Condition.String()) {
		return nil, ErrInvalidCondition
	}
	if modify.DispatchStatus != nil && !isValidDispatchStatus(modify.DispatchStatus.String()) {
		return nil, ErrInvalidDispatchStatus
	}
	if modify.DispatchMode != nil && !isValidDispatchMode(modify.DispatchMode.String()) {
		return nil, ErrInvalidDispatchMode
	}

	var result *entities.ProofOfDelivery
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookings.GetByID(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("get booking %s: %w", bookingID, ErrBookingNotFound)
		}

		pods, err := s.repository.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("load pods: %w", err)
		}

		existing, found := findPOD(*booking, pods)

		draft := existing
		if !found {
			if modify.DeliveredAt == nil || modify.ReceiverName == nil || modify.Condition == nil {
				return ErrMissingRequiredFields
			}
			count, err := s.repository.Count(ctx)
			if err != nil {
				return fmt.Errorf("count pods: %w", err)
			}
			draft = entities.ProofOfDelivery{
				Number:         s.numberFactory.PODNumber(count),
				BookingRef:     entities.IDRef(booking.ID),
				DispatchStatus: entities.DefaultDispatchStatus,
				CreatedAt:      time.Now().UTC(),
			}
		}

		applyModify(&draft, modify)

		if err := s.validateDispatch(ctx, *booking, &draft); err != nil {
			return err
		}
		draft.UpdatedAt = time.Now().UTC()

		if found {
			result, err = s.repository.Update(ctx, draft)
			if err != nil {
				return fmt.Errorf("update pod: %w", err)
			}
			return nil
		}

		id, err := s.repository.Create(ctx, draft)
		if err != nil {
			return fmt.Errorf("create pod: %w", err)
		}
		draft.ID = id
		result = &draft

		// flag set once; from here on the booking resolves as delivered
		if err := s.bookings.MarkPODUploaded(ctx, booking.ID); err != nil {
			return fmt.Errorf("mark pod uploaded: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate()
	return result, nil
}

// SetDispatchStatus sets the paper-POD dispatch status. Any value may be
// set from any other; this is a status field, not a guarded machine.
func (s *POD) SetDispatchStatus(ctx context.Context, bookingID string, status entities.PODDispatchStatus) (*entities.ProofOfDelivery, error) {
	if !isValidID(bookingID) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidDispatchStatus(status.String()) {
		return nil, ErrInvalidDispatchStatus
	}

	var result *entities.ProofOfDelivery
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookings.GetByID(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("get booking %s: %w", bookingID, ErrBookingNotFound)
		}

		pods, err := s.repository.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("load pods: %w", err)
		}

		pod, found := findPOD(*booking, pods)
		if !found {
			return ErrPODNotFound
		}

		pod.DispatchStatus = status
		pod.UpdatedAt = time.Now().UTC()

		result, err = s.repository.Update(ctx, pod)
		if err != nil {
			return fmt.Errorf("update pod: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate()
	return result, nil
}

func (s *POD) GetPODs(ctx context.Context) ([]entities.ProofOfDelivery, error) {
	pods, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pods: %w", err)
	}
	return pods, nil
}

// validateDispatch enforces the FTL dispatch-mode rules on the merged
// record: a mode must be chosen, and once chosen its fields are mandatory.
// Hand dispatch also denormalizes the staff name for display.
func (s *POD) validateDispatch(ctx context.Context, booking entities.Booking, draft *entities.ProofOfDelivery) error {
	if booking.Mode != entities.ModeFTL {
		return nil
	}
	if draft.DispatchMode == "" {
		return ErrDispatchModeRequired
	}

	switch draft.DispatchMode {
	case entities.DispatchByCourier:
		if draft.CourierName == "" ||
			draft.TrackingNumber == "" ||
			draft.CourierReceiverName == "" ||
			draft.CourierReceiverNumber == "" {
			return ErrCourierDetailsRequired
		}
	case entities.DispatchByHand:
		if draft.StaffID == "" {
			return ErrMissingRequiredFields
		}
		staff, err := s.staff.GetByID(ctx, draft.StaffID)
		if err != nil {
			return fmt.Errorf("resolve staff %s: %w", draft.StaffID, ErrStaffNotFound)
		}
		draft.StaffName = staff.Name
	}
	return nil
}

// applyModify merges the caller's fields onto the draft. Switching the
// dispatch mode deliberately clears the other mode's fields.
func applyModify(draft *entities.ProofOfDelivery, modify entities.PODModify) {
	if modify.DispatchMode != nil && *modify.DispatchMode != draft.DispatchMode {
		switch *modify.DispatchMode {
		case entities.DispatchByHand:
			draft.CourierName = ""
			draft.TrackingNumber = ""
			draft.CourierReceiverName = ""
			draft.CourierReceiverNumber = ""
		case entities.DispatchByCourier:
			draft.StaffID = ""
			draft.StaffName = ""
		}
		draft.DispatchMode = *modify.DispatchMode
	}

	if modify.DeliveredAt != nil {
		draft.DeliveredAt = *modify.DeliveredAt
	}
	if modify.ReceiverName != nil {
		draft.ReceiverName = *modify.ReceiverName
	}
	if modify.ReceiverMobile != nil {
		draft.ReceiverMobile = *modify.ReceiverMobile
	}
	if modify.ReceiverIDProof != nil {
		draft.ReceiverIDProof = *modify.ReceiverIDProof
	}
	if modify.PiecesDelivered != nil {
		draft.PiecesDelivered = modify.PiecesDelivered
	}
	if modify.Condition != nil {
		draft.Condition = *modify.Condition
	}
	if modify.DispatchStatus != nil {
		draft.DispatchStatus = *modify.DispatchStatus
	}
	if modify.CourierName != nil {
		draft.CourierName = *modify.CourierName
	}
	if modify.TrackingNumber != nil {
		draft.TrackingNumber = *modify.TrackingNumber
	}
	if modify.CourierReceiverName != nil {
		draft.CourierReceiverName = *modify.CourierReceiverName
	}
	if modify.CourierReceiverNumber != nil {
		draft.CourierReceiverNumber = *modify.CourierReceiverNumber
	}
	if modify.StaffID != nil {
		draft.StaffID = *modify.StaffID
	}
}

func findPOD(booking entities.Booking, pods []entities.ProofOfDelivery) (entities.ProofOfDelivery, bool) {
	for _, pod := range pods {
		if pod.BookingRef.Matches(booking.ID, booking.LRNumber) {
			return pod, true
		}
	}
	return entities.ProofOfDelivery{}, false
}
