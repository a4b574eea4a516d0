package entities

// RecordRef is a reference between collection records. Source data carries
// foreign keys in several shapes (a raw id, a display number such as an LR
// or manifest number, or an embedded object with an id inside). Repository
// converters collapse embedded objects to ids at ingestion, so downstream
// code only ever deals with the id/number distinction.
type RecordRef struct {
	Kind  RefKind
	Value string
}

type RefKind string

const (
	RefID     RefKind = "id"
	RefNumber RefKind = "number"
)

func IDRef(id string) RecordRef {
	return RecordRef{Kind: RefID, Value: id}
}

func NumberRef(number string) RecordRef {
	return RecordRef{Kind: RefNumber, Value: number}
}

func (r RecordRef) IsZero() bool {
	return r.Value == ""
}

// Matches reports whether the reference points at a record with the given
// id and display number.
func (r RecordRef) Matches(id, number string) bool {
	switch r.Kind {
	case RefID:
		return r.Value != "" && r.Value == id
	case RefNumber:
		return r.Value != "" && r.Value == number
	default:
		return false
	}
}
