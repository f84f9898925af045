package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) Record {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var rec Record
	require.NoError(t, dec.Decode(&rec))
	return rec
}

func assertInvalid(t *testing.T, err error, contains string) {
	t.Helper()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, contains)
}

func TestValidateAircraft(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		creating bool
		wantErr  string
	}{
		{"valid capacity", `{"Aircraft_ID":"AC100","Capacity":180}`, true, ""},
		{"lower bound", `{"Capacity":1}`, true, ""},
		{"upper bound", `{"Capacity":1000}`, true, ""},
		{"numeric string", `{"Capacity":"250"}`, true, ""},
		{"over limit", `{"Aircraft_ID":"AC100","Model":"737","Capacity":1200}`, true, "cannot exceed 1000 passengers"},
		{"zero", `{"Capacity":0}`, true, "greater than 0"},
		{"negative", `{"Capacity":-5}`, true, "greater than 0"},
		{"missing on create", `{"Model":"737"}`, true, "greater than 0"},
		{"fractional", `{"Capacity":12.5}`, true, "whole number"},
		{"not a number", `{"Capacity":"lots"}`, true, "whole number"},
		{"missing on update", `{"Model":"737"}`, false, ""},
		{"over limit on update", `{"Capacity":1001}`, false, "cannot exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAircraft(decode(t, tt.body), tt.creating)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assertInvalid(t, err, tt.wantErr)
		})
	}
}

func TestValidateFlight(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"Dept_Time":"2026-11-01T08:00","Arr_Time":"2026-11-01T10:30","Dept_Airport_ID":"JFK","Arr_Airport_ID":"LAX"}`, ""},
		{"arrival before departure", `{"Dept_Time":"2026-11-01T10:00","Arr_Time":"2026-11-01T08:00"}`, "Departure time must be before arrival time"},
		{"equal times", `{"Dept_Time":"2026-11-01 10:00:00","Arr_Time":"2026-11-01T10:00:00Z"}`, "Departure time must be before arrival time"},
		{"same airports", `{"Dept_Airport_ID":"JFK","Arr_Airport_ID":"JFK"}`, "airports must be different"},
		{"same airports with valid times", `{"Dept_Time":"2026-11-01T08:00","Arr_Time":"2026-11-01T10:00","Dept_Airport_ID":"JFK","Arr_Airport_ID":"JFK"}`, "airports must be different"},
		{"unparseable time", `{"Dept_Time":"tomorrow","Arr_Time":"2026-11-01T10:00"}`, "valid date-times"},
		{"only one time", `{"Dept_Time":"2026-11-01T10:00"}`, ""},
		{"only one airport", `{"Dept_Airport_ID":"JFK"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFlight(decode(t, tt.body), true)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assertInvalid(t, err, tt.wantErr)
		})
	}
}

func TestValidatePassenger(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"ten digits", `{"Contact_No":"0123456789"}`, ""},
		{"separators stripped", `{"Contact_No":"+1 555-123-4567"}`, ""},
		{"fifteen digits", `{"Contact_No":"123456789012345"}`, ""},
		{"numeric contact", `{"Contact_No":5551234567}`, ""},
		{"too short", `{"Contact_No":"555-1234"}`, "10-15 digits"},
		{"too long", `{"Contact_No":"1234567890123456"}`, "10-15 digits"},
		{"letters", `{"Contact_No":"555ABC12345"}`, "10-15 digits"},
		{"zero tickets", `{"Total_Tickets":0}`, ""},
		{"negative tickets", `{"Total_Tickets":-1}`, "cannot be negative"},
		{"null tickets ignored", `{"Total_Tickets":null}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassenger(decode(t, tt.body), true)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assertInvalid(t, err, tt.wantErr)
		})
	}
}

func TestValidateTicket_SeatFormat(t *testing.T) {
	valid := []string{"1A", "12B", "123F", "7c", "45f"}
	for _, seat := range valid {
		assert.NoError(t, ValidateTicket(Record{FieldSeatNo: seat}, true), seat)
	}

	invalid := []string{"A1", "1234A", "12G", "12", "B", "12AB", " 12A", "12A ", "1 2A"}
	for _, seat := range invalid {
		assertInvalid(t, ValidateTicket(Record{FieldSeatNo: seat}, true), "Invalid seat number format")
	}
}

func TestValidateAdmin_Roles(t *testing.T) {
	for _, role := range Roles {
		assert.NoError(t, ValidateAdmin(Record{FieldRoles: role}, true))
	}
	assertInvalid(t, ValidateAdmin(Record{FieldRoles: "Pilot"}, true), "Invalid role")
	assert.NoError(t, ValidateAdmin(Record{FieldUsername: "ops"}, false))
}

func TestValidateFinance(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		creating bool
		wantErr  bool
	}{
		{"positive", `{"Amount":249.99}`, true, false},
		{"positive string", `{"Amount":"10"}`, true, false},
		{"zero", `{"Amount":0}`, true, true},
		{"negative", `{"Amount":-3}`, true, true},
		{"non numeric", `{"Amount":"free"}`, true, true},
		{"missing on create", `{"Transaction_Type":"Card"}`, true, true},
		{"missing on update", `{"Transaction_Type":"Card"}`, false, false},
		{"zero on update", `{"Amount":0}`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFinance(decode(t, tt.body), tt.creating)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assertInvalid(t, err, "Amount must be greater than 0")
		})
	}
}

func TestRecord_Only(t *testing.T) {
	rec := decode(t, `{"Aircraft_ID":"AC1","Capacity":180,"Bogus":"x","Weight":12.5}`)
	out := rec.Only([]string{"Aircraft_ID", "Capacity", "Model", "Weight"})

	assert.Equal(t, Record{"Aircraft_ID": "AC1", "Capacity": int64(180), "Weight": 12.5}, out)
}

func TestParseTime(t *testing.T) {
	for _, s := range []string{"2026-11-01T08:00:00Z", "2026-11-01T08:00:00", "2026-11-01T08:00", "2026-11-01 08:00:00", "2026-11-01"} {
		_, err := ParseTime(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseTime("01/11/2026")
	assert.Error(t, err)
}
