package pod

import "strings"

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidCondition(condition string) bool {
	switch condition {
	case "good", "damaged", "short_delivery", "other":
		return true
	default:
		return false
	}
}

func isValidDispatchStatus(status string) bool {
	switch status {
	case "pending", "dispatched", "delivered_to_client":
		return true
	default:
		return false
	}
}

func isValidDispatchMode(mode string) bool {
	switch mode {
	case "courier", "hand":
		return true
	default:
		return false
	}
}
