package inquiry

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidContainerType  = errors.New("invalid container type")
	ErrOperatorRequired      = errors.New("operator capability required")

	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrDriverNotFound  = errors.New("driver not found")
)
