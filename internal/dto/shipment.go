package dto

type ShipmentView struct {
	BookingID           string   `json:"bookingId"`
	LRNumber            string   `json:"lrNumber"`
	BranchID            string   `json:"branchId"`
	OriginCityID        string   `json:"originCityId,omitempty"`
	DestinationCityID   string   `json:"destinationCityId,omitempty"`
	Pieces              int      `json:"pieces"`
	Weight              float64  `json:"weight"`
	Mode                string   `json:"mode"`
	Status              string   `json:"status"`
	ManifestID          string   `json:"manifestId,omitempty"`
	DestinationBranchID string   `json:"destinationBranchId,omitempty"`
	VehicleNumber       string   `json:"vehicleNumber"`
	Discrepancies       []string `json:"discrepancies,omitempty"`
}
