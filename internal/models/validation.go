package models

import "regexp"

// ValidationError is a client error detected before any write
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid builds a ValidationError
func Invalid(message string) error {
	return &ValidationError{Message: message}
}

// Validator checks a create (creating=true) or update body before it is written.
// On update only the fields present in the body are checked.
type Validator func(rec Record, creating bool) error

const (
	MinCapacity = 1
	MaxCapacity = 1000
)

var (
	seatPattern    = regexp.MustCompile(`(?i)^\d{1,3}[A-F]$`)
	contactPattern = regexp.MustCompile(`^\d{10,15}$`)
	contactStrip   = regexp.MustCompile(`[\s\-+]`)
)

// Roles an admin account may hold
var Roles = []string{"Employee", "Airport_Manager", "CEO"}

// ValidateAircraft enforces 1 <= Capacity <= 1000
func ValidateAircraft(rec Record, creating bool) error {
	if !creating && !rec.Has(FieldCapacity) {
		return nil
	}
	if !rec.Filled(FieldCapacity) {
		return Invalid("Invalid capacity. Aircraft capacity must be greater than 0.")
	}
	capacity, ok := rec.Int(FieldCapacity)
	if !ok {
		return Invalid("Invalid capacity. Aircraft capacity must be a whole number.")
	}
	if capacity < MinCapacity {
		return Invalid("Invalid capacity. Aircraft capacity must be greater than 0.")
	}
	if capacity > MaxCapacity {
		return Invalid("Invalid capacity. Aircraft capacity cannot exceed 1000 passengers.")
	}
	return nil
}

// ValidateFlight enforces departure before arrival and distinct airports
func ValidateFlight(rec Record, _ bool) error {
	if rec.Filled(FieldDeptTime) && rec.Filled(FieldArrTime) {
		dept, okDept := rec.Time(FieldDeptTime)
		arr, okArr := rec.Time(FieldArrTime)
		if !okDept || !okArr {
			return Invalid("Invalid flight times. Departure and arrival must be valid date-times.")
		}
		if !dept.Before(arr) {
			return Invalid("Invalid flight times. Departure time must be before arrival time.")
		}
	}

	if rec.Filled(FieldDeptAirport) && rec.Filled(FieldArrAirport) {
		from, _ := rec.String(FieldDeptAirport)
		to, _ := rec.String(FieldArrAirport)
		if from == to {
			return Invalid("Invalid airports. Departure and arrival airports must be different.")
		}
	}
	return nil
}

// ValidatePassenger checks the contact number and ticket count
func ValidatePassenger(rec Record, _ bool) error {
	if rec.Filled(FieldContactNo) {
		contact, _ := rec.String(FieldContactNo)
		if !contactPattern.MatchString(contactStrip.ReplaceAllString(contact, "")) {
			return Invalid("Invalid contact number. Must be 10-15 digits.")
		}
	}

	if rec.Has(FieldTotalTickets) {
		n, ok := rec.Int(FieldTotalTickets)
		if !ok {
			return Invalid("Invalid ticket count. Total tickets must be a whole number.")
		}
		if n < 0 {
			return Invalid("Invalid ticket count. Total tickets cannot be negative.")
		}
	}
	return nil
}

// ValidateTicket checks the seat number format. Seat conflicts need the
// store and are checked by the booking service.
func ValidateTicket(rec Record, _ bool) error {
	if rec.Filled(FieldSeatNo) {
		seat, _ := rec.String(FieldSeatNo)
		if !seatPattern.MatchString(seat) {
			return Invalid("Invalid seat number format. Must be in format like 12A, 5B, etc.")
		}
	}
	return nil
}

// ValidateAdmin restricts Roles to the known set
func ValidateAdmin(rec Record, _ bool) error {
	if !rec.Filled(FieldRoles) {
		return nil
	}
	role, _ := rec.String(FieldRoles)
	for _, r := range Roles {
		if r == role {
			return nil
		}
	}
	return Invalid("Invalid role. Must be one of Employee, Airport_Manager, CEO.")
}

// ValidateFinance requires a positive amount
func ValidateFinance(rec Record, creating bool) error {
	if !creating && !rec.Has(FieldAmount) {
		return nil
	}
	amount, ok := rec.Float(FieldAmount)
	if !ok || amount <= 0 {
		return Invalid("Invalid transaction amount. Amount must be greater than 0.")
	}
	return nil
}
