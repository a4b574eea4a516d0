package inquiry_confirm_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/dto"
	"service/internal/entities"
	"service/internal/service/inquiry"
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
	id := mux.Vars(r)["id"]

	actor := entities.Viewer{
		Role:     entities.ParseRole(r.URL.Query().Get("role")),
		BranchID: r.URL.Query().Get("branch"),
		Name:     r.URL.Query().Get("user"),
	}

	inquiryEntity, err := h.service.Confirm(r.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, inquiry.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, inquiry.ErrOperatorRequired):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, inquiry.ErrInquiryNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.InquiryFromEntity(*inquiryEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
