package inquiry

import (
	"strings"

	"service/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidContainerType(containerType string) bool {
	switch containerType {
	case "open", "closed":
		return true
	default:
		return false
	}
}

func hasRequiredCreateFields(modify entities.InquiryModify) bool {
	return modify.VehicleType != nil &&
		modify.Weight != nil &&
		modify.ContainerType != nil &&
		modify.OriginCityID != nil &&
		modify.DestinationCityID != nil &&
		modify.ClientID != nil &&
		modify.BranchID != nil
}
