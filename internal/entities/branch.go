package entities

// Branch is an organizational unit that both originates and receives
// shipments. Read-only to this service.
type Branch struct {
	ID    string
	Code  string
	Name  string
	City  string
	State string
}

// City is a master-data city record, used for destination-branch inference.
type City struct {
	ID    string
	Name  string
	State string
}

type Vehicle struct {
	ID          string
	Number      string
	VehicleType string
}

type Driver struct {
	ID            string
	Name          string
	Mobile        string
	LicenseNumber string
}

type Staff struct {
	ID     string
	Name   string
	Mobile string
}
