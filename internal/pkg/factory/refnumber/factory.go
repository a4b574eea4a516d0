package refnumber

import (
	"fmt"
	"time"
)

// NumberFactory allocates display numbers for inquiries and PODs. Numbers
// are sequence-per-count, carried over from the source system: they are a
// presentation aid, not a uniqueness guarantee.
type NumberFactory struct{}

func New() *NumberFactory {
	return &NumberFactory{}
}

// InquiryNumber formats INQ-{yyyymmdd}-{seq}, seq being one past the number
// of inquiries that already exist.
func (f *NumberFactory) InquiryNumber(at time.Time, existing int64) string {
	return fmt.Sprintf("INQ-%s-%04d", at.Format("20060102"), existing+1)
}

// PODNumber formats POD{seq}, seq being one past the number of PODs that
// already exist. Allocated once at creation and preserved across updates.
func (f *NumberFactory) PODNumber(existing int64) string {
	return fmt.Sprintf("POD%06d", existing+1)
}
