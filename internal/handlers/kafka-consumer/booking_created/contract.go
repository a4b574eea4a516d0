package booking_created

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type InquiryService interface {
	AttachBooking(ctx context.Context, inquiryID, bookingID string) (*entities.Inquiry, error)
}

// StatusInvalidator drops memoized shipment statuses once a new booking
// lands; the next worklist read picks it up.
type StatusInvalidator interface {
	Invalidate()
}
