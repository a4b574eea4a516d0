package pod

import "errors"

var (
	ErrMissingRequiredFields  = errors.New("missing required fields")
	ErrInvalidCondition       = errors.New("invalid delivery condition")
	ErrInvalidDispatchStatus  = errors.New("invalid dispatch status")
	ErrInvalidDispatchMode    = errors.New("invalid dispatch mode")
	ErrDispatchModeRequired   = errors.New("dispatch mode required for FTL booking")
	ErrCourierDetailsRequired = errors.New("courier dispatch details required")

	ErrBookingNotFound  = errors.New("booking not found")
	ErrPODNotFound      = errors.New("pod not found")
	ErrPODAlreadyExists = errors.New("pod already exists for booking")
	ErrStaffNotFound    = errors.New("staff not found")
)
