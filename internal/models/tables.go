package models

// Column names shared by more than one package
const (
	FieldAircraftID   = "Aircraft_ID"
	FieldCapacity     = "Capacity"
	FieldFlightNo     = "Flight_No"
	FieldDeptTime     = "Dept_Time"
	FieldArrTime      = "Arr_Time"
	FieldDeptAirport  = "Dept_Airport_ID"
	FieldArrAirport   = "Arr_Airport_ID"
	FieldPassengerID  = "Passenger_ID"
	FieldFirstName    = "First_Name"
	FieldLastName     = "Last_Name"
	FieldContactNo    = "Contact_No"
	FieldTotalTickets = "Total_Tickets"
	FieldTicketID     = "Ticket_ID"
	FieldSeatNo       = "Seat_No"
	FieldBookingDate  = "Booking_Date"
	FieldAdminID      = "Admin_ID"
	FieldRoles        = "Roles"
	FieldUsername     = "Username"
	FieldOTP          = "OTP"
	FieldAmount       = "Amount"
	FieldTxType       = "Transaction_Type"
)

// Join projects Fields from Table, matched on a column with the same name
// in both tables.
type Join struct {
	Table  string
	Alias  string
	On     string
	Fields []string
}

// OrderTerm is one ORDER BY column of the base table
type OrderTerm struct {
	Column string
	Desc   bool
}

// Table describes one table-backed resource. All SQL identifiers used by the
// repository come from a Table, never from request input.
type Table struct {
	// Name is the singular used in messages ("Flight not found").
	Name string
	// Resource is the route segment and change-event resource name.
	Resource string
	Table    string
	Alias    string
	Key      string
	Columns  []string
	// Times lists columns holding timestamps.
	Times []string
	// Numbers lists numeric columns; every other column is stored as text.
	Numbers  []string
	Joins    []Join
	Order    []OrderTerm
	Validate Validator
}

// Writable reports whether column may be set from a request body
func (t Table) Writable(column string) bool {
	return contains(t.Columns, column)
}

// IsTime reports whether column holds a timestamp
func (t Table) IsTime(column string) bool {
	return contains(t.Times, column)
}

// IsNumber reports whether column holds a number
func (t Table) IsNumber(column string) bool {
	return contains(t.Numbers, column)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

var (
	AircraftTable = Table{
		Name:     "Aircraft",
		Resource: "airlines",
		Table:    "Aircraft",
		Alias:    "a",
		Key:      FieldAircraftID,
		Columns:  []string{FieldAircraftID, "Model", FieldCapacity, "Manufacturer"},
		Numbers:  []string{FieldCapacity},
		Order:    []OrderTerm{{Column: "Model"}},
		Validate: ValidateAircraft,
	}

	AirportTable = Table{
		Name:     "Airport",
		Resource: "airports",
		Table:    "Airport",
		Alias:    "ap",
		Key:      "Airport_ID",
		Columns:  []string{"Airport_ID", "Name", "Location"},
		Order:    []OrderTerm{{Column: "Name"}},
	}

	FlightTable = Table{
		Name:     "Flight",
		Resource: "flights",
		Table:    "Flight",
		Alias:    "f",
		Key:      FieldFlightNo,
		Columns: []string{
			FieldFlightNo, FieldAircraftID, FieldDeptAirport, FieldArrAirport,
			FieldDeptTime, FieldArrTime, "Duration",
		},
		Times:    []string{FieldDeptTime, FieldArrTime},
		Numbers:  []string{"Duration"},
		Order:    []OrderTerm{{Column: FieldDeptTime, Desc: true}},
		Validate: ValidateFlight,
	}

	PassengerTable = Table{
		Name:     "Passenger",
		Resource: "passengers",
		Table:    "Passenger",
		Alias:    "p",
		Key:      FieldPassengerID,
		Columns: []string{
			FieldPassengerID, FieldFirstName, FieldLastName, "Gender",
			"Nationality", FieldContactNo, FieldTotalTickets,
		},
		Numbers:  []string{FieldTotalTickets},
		Order:    []OrderTerm{{Column: FieldLastName}, {Column: FieldFirstName}},
		Validate: ValidatePassenger,
	}

	TicketTable = Table{
		Name:     "Ticket",
		Resource: "bookings",
		Table:    "Tickets",
		Alias:    "t",
		Key:      FieldTicketID,
		Columns: []string{
			FieldTicketID, "Class", FieldSeatNo, FieldFlightNo,
			FieldPassengerID, FieldBookingDate,
		},
		Times: []string{FieldBookingDate},
		Joins: []Join{
			{Table: "Passenger", Alias: "p", On: FieldPassengerID, Fields: []string{FieldFirstName, FieldLastName}},
			{Table: "Flight", Alias: "f", On: FieldFlightNo, Fields: []string{FieldDeptTime, FieldArrTime}},
		},
		Order:    []OrderTerm{{Column: FieldBookingDate, Desc: true}},
		Validate: ValidateTicket,
	}

	AdminTable = Table{
		Name:     "Admin",
		Resource: "crew",
		Table:    "Admin",
		Alias:    "ad",
		Key:      FieldAdminID,
		Columns:  []string{FieldAdminID, FieldRoles, FieldUsername, "Password"},
		Order:    []OrderTerm{{Column: FieldUsername}},
		Validate: ValidateAdmin,
	}

	TwoFATable = Table{
		Name:    "Two-factor code",
		Table:   "TwoFA",
		Alias:   "tf",
		Key:     FieldAdminID,
		Columns: []string{FieldAdminID, FieldOTP},
	}

	FinanceTable = Table{
		Name:     "Finance record",
		Resource: "finance",
		Table:    "Finance",
		Alias:    "fi",
		Key:      "Transaction_ID",
		Columns: []string{
			"Transaction_ID", FieldAmount, "Date", FieldTxType,
			FieldPassengerID, FieldTicketID,
		},
		Times:   []string{"Date"},
		Numbers: []string{FieldAmount},
		Joins: []Join{
			{Table: "Passenger", Alias: "p", On: FieldPassengerID, Fields: []string{FieldFirstName, FieldLastName}},
			{Table: "Tickets", Alias: "t", On: FieldTicketID, Fields: []string{"Class", FieldSeatNo}},
		},
		Order:    []OrderTerm{{Column: "Date", Desc: true}},
		Validate: ValidateFinance,
	}
)

// DashboardTables lists the tables counted on the dashboard, keyed by the
// JSON field the count is reported under.
var DashboardTables = []struct {
	Field string
	Table Table
}{
	{"totalFlights", FlightTable},
	{"totalPassengers", PassengerTable},
	{"totalBookings", TicketTable},
	{"totalAirlines", AircraftTable},
	{"totalAirports", AirportTable},
	{"totalCrew", AdminTable},
}
