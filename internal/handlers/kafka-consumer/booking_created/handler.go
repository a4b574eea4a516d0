package booking_created

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	inquiryservice "service/internal/service/inquiry"
	"service/pkg/logger"
)

// createdEvent is the booking.created payload emitted by the external
// booking application. InquiryID is empty for walk-in bookings that did not
// start as an inquiry.
type createdEvent struct {
	BookingID string `json:"bookingId"`
	LRNumber  string `json:"lrNumber"`
	InquiryID string `json:"inquiryId"`
}

type Handler struct {
	inquiryService           InquiryService
	invalidator              StatusInvalidator
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, inquiryService InquiryService, invalidator StatusInvalidator, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		inquiryService:           inquiryService,
		invalidator:              invalidator,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("booking.created: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// session closed on rebalance or consumer group stop
			h.log.Info("booking.created: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one Kafka message. Returns true when
// ConsumeClaim should stop (context cancelled), false to keep consuming.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event createdEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("booking.created handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("booking", event.BookingID),
		logger.NewField("lr_number", event.LRNumber),
		logger.NewField("inquiry", event.InquiryID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("booking.created processing")

	// every new booking changes worklists regardless of inquiry linkage
	h.invalidator.Invalidate()

	if event.InquiryID == "" {
		msgLog.Info("booking.created: no originating inquiry, nothing to link")
		sess.MarkMessage(message, "")
		return false
	}

	inquiry, err := h.inquiryService.AttachBooking(ctx, event.InquiryID, event.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.created handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, inquiryservice.ErrInquiryNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.created handler unknown inquiry for booking")

		case errors.Is(err, inquiryservice.ErrMissingRequiredFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.created handler event missing ids")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.created handler failed to link booking")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("inquiry", inquiry.ID),
		logger.NewField("booking", inquiry.BookingID),
		logger.NewField("status", inquiry.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("booking.created: linked")

	sess.MarkMessage(message, "")
	return false
}
