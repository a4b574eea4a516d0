package pod_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/dto"
	"service/internal/entities"
	"service/internal/service/pod"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var saveDTO dto.PODSave
	err := json.NewDecoder(r.Body).Decode(&saveDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	modify := toModify(saveDTO)

	podEntity, err := h.service.Save(r.Context(), bookingID, modify)
	if err != nil {
		switch {
		case errors.Is(err, pod.ErrMissingRequiredFields),
			errors.Is(err, pod.ErrInvalidCondition),
			errors.Is(err, pod.ErrInvalidDispatchStatus),
			errors.Is(err, pod.ErrInvalidDispatchMode),
			errors.Is(err, pod.ErrDispatchModeRequired),
			errors.Is(err, pod.ErrCourierDetailsRequired):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, pod.ErrBookingNotFound),
			errors.Is(err, pod.ErrStaffNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, pod.ErrPODAlreadyExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PODFromEntity(*podEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toModify(saveDTO dto.PODSave) entities.PODModify {
	modify := entities.PODModify{
		DeliveredAt:           saveDTO.DeliveredAt,
		ReceiverName:          saveDTO.ReceiverName,
		ReceiverMobile:        saveDTO.ReceiverMobile,
		ReceiverIDProof:       saveDTO.ReceiverIDProof,
		PiecesDelivered:       saveDTO.PiecesDelivered,
		CourierName:           saveDTO.CourierName,
		TrackingNumber:        saveDTO.TrackingNumber,
		CourierReceiverName:   saveDTO.CourierReceiverName,
		CourierReceiverNumber: saveDTO.CourierReceiverNumber,
		StaffID:               saveDTO.StaffID,
	}

	if saveDTO.Condition != nil {
		condition := entities.DeliveryCondition(*saveDTO.Condition)
		modify.Condition = &condition
	}
	if saveDTO.DispatchStatus != nil {
		status := entities.PODDispatchStatus(*saveDTO.DispatchStatus)
		modify.DispatchStatus = &status
	}
	if saveDTO.DispatchMode != nil {
		mode := entities.PODDispatchMode(*saveDTO.DispatchMode)
		modify.DispatchMode = &mode
	}

	return modify
}
