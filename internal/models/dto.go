package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username"`
	OTP      string `json:"otp"`
	Role     string `json:"role"`

	// NumericOTP marks a code sent as a JSON number. Stored codes are
	// strings, so such a code never matches.
	NumericOTP bool `json:"-"`
}

// UnmarshalJSON accepts otp as a string or a number. A zero number counts
// as absent.
func (r *LoginRequest) UnmarshalJSON(data []byte) error {
	var body struct {
		Username string          `json:"username"`
		OTP      json.RawMessage `json:"otp"`
		Role     string          `json:"role"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	*r = LoginRequest{Username: body.Username, Role: body.Role}

	raw := bytes.TrimSpace(body.OTP)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] == '"' {
		return json.Unmarshal(raw, &r.OTP)
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("otp must be a string or number: %w", err)
	}
	if f, err := n.Float64(); err == nil && f == 0 {
		return nil
	}
	r.OTP = n.String()
	r.NumericOTP = true
	return nil
}

// Account is the identity returned by a successful login. No token is issued.
type Account struct {
	AdminID  any    `json:"adminId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse wraps the authenticated account
type LoginResponse struct {
	Message string   `json:"message"`
	User    *Account `json:"user"`
}

// DashboardStats is the payload of GET /api/dashboard/stats
type DashboardStats struct {
	TotalFlights    int64    `json:"totalFlights"`
	TotalPassengers int64    `json:"totalPassengers"`
	TotalBookings   int64    `json:"totalBookings"`
	TotalAirlines   int64    `json:"totalAirlines"`
	TotalAirports   int64    `json:"totalAirports"`
	TotalCrew       int64    `json:"totalCrew"`
	RecentBookings  []Record `json:"recentBookings"`
	UpcomingFlights []Record `json:"upcomingFlights"`
}

// SetCount stores a table count under its dashboard field name
func (s *DashboardStats) SetCount(field string, n int64) {
	switch field {
	case "totalFlights":
		s.TotalFlights = n
	case "totalPassengers":
		s.TotalPassengers = n
	case "totalBookings":
		s.TotalBookings = n
	case "totalAirlines":
		s.TotalAirlines = n
	case "totalAirports":
		s.TotalAirports = n
	case "totalCrew":
		s.TotalCrew = n
	}
}

// FlightSearch holds the optional filters of GET /api/flights/search/query
type FlightSearch struct {
	Origin      string
	Destination string
	Date        string
}

// RoutineType distinguishes stored procedures from functions
type RoutineType string

const (
	RoutineProcedure RoutineType = "PROCEDURE"
	RoutineFunction  RoutineType = "FUNCTION"
)

// ExecuteRequest is the body of POST /api/procedures/execute
type ExecuteRequest struct {
	ProcedureName string `json:"procedureName"`
	Parameters    []any  `json:"parameters"`
}

// ExecuteResponse carries whatever rows the procedure produced
type ExecuteResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Result  []Record `json:"result"`
}

// RoutineDetails describes one procedure or function and its parameters
type RoutineDetails struct {
	Routine    Record   `json:"routine"`
	Parameters []Record `json:"parameters"`
}

// MessageResponse is the body of successful update/delete and auth calls
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is the body of a successful create
type CreatedResponse struct {
	Message string `json:"message"`
	ID      any    `json:"id"`
}
