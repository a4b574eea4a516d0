package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"service/internal/entities"
)

type BookingDB struct {
	ID                string
	LRNumber          string
	BranchID          string
	OriginCityID      *string
	DestinationCityID *string
	Pieces            int
	Weight            float64
	Mode              string
	Consignor         []byte
	Consignee         []byte
	PODUploaded       bool
	CreatedAt         time.Time
}

// contactDB mirrors the jsonb contact blocks imported from the source
// collection; field names follow the source payload.
type contactDB struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`
}

func ToDomain(b *BookingDB) (*entities.Booking, error) {
	if b == nil {
		return nil, nil
	}

	consignor, err := toContact(b.Consignor)
	if err != nil {
		return nil, fmt.Errorf("booking %s consignor: %w", b.ID, err)
	}
	consignee, err := toContact(b.Consignee)
	if err != nil {
		return nil, fmt.Errorf("booking %s consignee: %w", b.ID, err)
	}

	return &entities.Booking{
		ID:                b.ID,
		LRNumber:          b.LRNumber,
		BranchID:          b.BranchID,
		OriginCityID:      orEmpty(b.OriginCityID),
		DestinationCityID: orEmpty(b.DestinationCityID),
		Pieces:            b.Pieces,
		Weight:            b.Weight,
		Mode:              entities.BookingMode(b.Mode),
		Consignor:         consignor,
		Consignee:         consignee,
		PODUploaded:       b.PODUploaded,
		CreatedAt:         b.CreatedAt,
	}, nil
}

func ToDomainList(bookingModels []BookingDB) ([]entities.Booking, error) {
	bookings := make([]entities.Booking, 0, len(bookingModels))
	for i := range bookingModels {
		booking, err := ToDomain(&bookingModels[i])
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *booking)
	}
	return bookings, nil
}

func toContact(raw []byte) (entities.ContactBlock, error) {
	if len(raw) == 0 {
		return entities.ContactBlock{}, nil
	}

	var contact contactDB
	if err := json.Unmarshal(raw, &contact); err != nil {
		return entities.ContactBlock{}, fmt.Errorf("decode contact: %w", err)
	}

	return entities.ContactBlock{
		Name:    contact.Name,
		Mobile:  contact.Mobile,
		Address: contact.Address,
		GSTIN:   contact.GSTIN,
	}, nil
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
