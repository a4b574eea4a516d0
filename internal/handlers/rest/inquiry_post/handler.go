package inquiry_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var createDTO dto.InquiryCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actor := entities.Viewer{
		Role:     entities.ParseRole(r.URL.Query().Get("role")),
		BranchID: r.URL.Query().Get("branch"),
		Name:     r.URL.Query().Get("user"),
	}

	containerType := entities.ContainerType(createDTO.ContainerType)
	modify := entities.InquiryModify{
		VehicleType:       &createDTO.VehicleType,
		Weight:            &createDTO.Weight,
		ContainerType:     &containerType,
		OriginCityID:      &createDTO.OriginCityID,
		DestinationCityID: &createDTO.DestinationCityID,
		FreightAmount:     &createDTO.FreightAmount,
		ClientID:          &createDTO.ClientID,
		BranchID:          &createDTO.BranchID,
	}

	inquiryEntity, err := h.service.CreateInquiry(r.Context(), actor, modify)
	if err != nil {
		switch {
		case errors.Is(err, inquiry.ErrMissingRequiredFields),
			errors.Is(err, inquiry.ErrInvalidWeight),
			errors.Is(err, inquiry.ErrInvalidContainerType):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, inquiry.ErrOperatorRequired):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.InquiryFromEntity(*inquiryEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
