package pod_dispatch_put

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

	var dispatchDTO dto.PODDispatch
	err := json.NewDecoder(r.Body).Decode(&dispatchDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	status := entities.PODDispatchStatus(dispatchDTO.DispatchStatus)

	podEntity, err := h.service.SetDispatchStatus(r.Context(), bookingID, status)
	if err != nil {
		switch {
		case errors.Is(err, pod.ErrInvalidDispatchStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, pod.ErrPODNotFound),
			errors.Is(err, pod.ErrBookingNotFound):
			w.WriteHeader(http.StatusNotFound)
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
