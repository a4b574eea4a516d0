package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	"service/internal/entities"
)

type ManifestDB struct {
	ID                  string
	Number              string
	DestinationBranchID *string
	Bookings            []byte
	Receipts            []byte
	CreatedAt           time.Time
}

// receiptDB mirrors one lrReceipts entry as imported from the source
// collection, keyed by booking id in the surrounding object.
type receiptDB struct {
	Received       bool       `json:"received"`
	ReceivedPieces int        `json:"receivedPieces"`
	ReceivedBy     string     `json:"receivedBy"`
	ReceivedAt     *time.Time `json:"receivedAt"`
	Discrepancy    string     `json:"discrepancy"`
}

// embeddedBookingDB is the object shape of a selectedLRs entry. Older
// imports carry "_id", newer ones "id"; either identifies the booking.
type embeddedBookingDB struct {
	ID      string `json:"id"`
	MongoID string `json:"_id"`
}

func ToDomain(m *ManifestDB) (*entities.Manifest, error) {
	if m == nil {
		return nil, nil
	}

	bookingIDs, err := normalizeBookingEntries(m.Bookings)
	if err != nil {
		return nil, fmt.Errorf("manifest %s bookings: %w", m.ID, err)
	}

	receipts, err := toReceipts(m.Receipts)
	if err != nil {
		return nil, fmt.Errorf("manifest %s receipts: %w", m.ID, err)
	}

	destinationBranchID := ""
	if m.DestinationBranchID != nil {
		destinationBranchID = *m.DestinationBranchID
	}

	return &entities.Manifest{
		ID:                  m.ID,
		Number:              m.Number,
		BookingIDs:          bookingIDs,
		DestinationBranchID: destinationBranchID,
		Receipts:            receipts,
		CreatedAt:           m.CreatedAt,
	}, nil
}

func ToDomainList(manifestModels []ManifestDB) ([]entities.Manifest, error) {
	manifests := make([]entities.Manifest, 0, len(manifestModels))
	for i := range manifestModels {
		manifest, err := ToDomain(&manifestModels[i])
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, *manifest)
	}
	return manifests, nil
}

// normalizeBookingEntries collapses the mixed selectedLRs shapes to booking
// ids. An entry is either a raw id string or an embedded booking object;
// entries carrying no id at all are dropped rather than failing the row.
func normalizeBookingEntries(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode booking entries: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		var id string
		if err := json.Unmarshal(entry, &id); err == nil {
			if id != "" {
				ids = append(ids, id)
			}
			continue
		}

		var embedded embeddedBookingDB
		if err := json.Unmarshal(entry, &embedded); err != nil {
			return nil, fmt.Errorf("decode booking entry: %w", err)
		}
		switch {
		case embedded.ID != "":
			ids = append(ids, embedded.ID)
		case embedded.MongoID != "":
			ids = append(ids, embedded.MongoID)
		}
	}

	return ids, nil
}

func toReceipts(raw []byte) (map[string]entities.ManifestReceipt, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var receiptModels map[string]receiptDB
	if err := json.Unmarshal(raw, &receiptModels); err != nil {
		return nil, fmt.Errorf("decode receipts: %w", err)
	}

	receipts := make(map[string]entities.ManifestReceipt, len(receiptModels))
	for bookingID, receiptModel := range receiptModels {
		receipt := entities.ManifestReceipt{
			Received:       receiptModel.Received,
			ReceivedPieces: receiptModel.ReceivedPieces,
			ReceivedBy:     receiptModel.ReceivedBy,
			Discrepancy:    receiptModel.Discrepancy,
		}
		if receiptModel.ReceivedAt != nil {
			receipt.ReceivedAt = *receiptModel.ReceivedAt
		}
		receipts[bookingID] = receipt
	}

	return receipts, nil
}
