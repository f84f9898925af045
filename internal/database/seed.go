package database

import (
	"context"
	"time"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

// Seed inserts a small demo data set. Flight times are relative to now so the
// dashboard always has upcoming flights to show.
func Seed(ctx context.Context, repo *Repository) error {
	now := time.Now().UTC().Truncate(time.Hour)
	at := func(d time.Duration) any { return repo.Dialect().BindTime(now.Add(d)) }

	rows := []struct {
		table models.Table
		rec   models.Record
	}{
		{models.AircraftTable, models.Record{"Aircraft_ID": "AC100", "Model": "A320neo", "Capacity": 180, "Manufacturer": "Airbus"}},
		{models.AircraftTable, models.Record{"Aircraft_ID": "AC200", "Model": "737 MAX 8", "Capacity": 178, "Manufacturer": "Boeing"}},
		{models.AircraftTable, models.Record{"Aircraft_ID": "AC300", "Model": "787-9", "Capacity": 296, "Manufacturer": "Boeing"}},

		{models.AirportTable, models.Record{"Airport_ID": "BLR", "Name": "Kempegowda International", "Location": "Bengaluru"}},
		{models.AirportTable, models.Record{"Airport_ID": "BOM", "Name": "Chhatrapati Shivaji Maharaj International", "Location": "Mumbai"}},
		{models.AirportTable, models.Record{"Airport_ID": "DEL", "Name": "Indira Gandhi International", "Location": "Delhi"}},
		{models.AirportTable, models.Record{"Airport_ID": "DXB", "Name": "Dubai International", "Location": "Dubai"}},

		{models.FlightTable, models.Record{"Flight_No": "FL101", "Aircraft_ID": "AC100", "Dept_Airport_ID": "BLR", "Arr_Airport_ID": "DEL",
			"Dept_Time": at(-48 * time.Hour), "Arr_Time": at(-45 * time.Hour), "Duration": 180}},
		{models.FlightTable, models.Record{"Flight_No": "FL202", "Aircraft_ID": "AC200", "Dept_Airport_ID": "BOM", "Arr_Airport_ID": "BLR",
			"Dept_Time": at(24 * time.Hour), "Arr_Time": at(26 * time.Hour), "Duration": 120}},
		{models.FlightTable, models.Record{"Flight_No": "FL303", "Aircraft_ID": "AC300", "Dept_Airport_ID": "DEL", "Arr_Airport_ID": "DXB",
			"Dept_Time": at(72 * time.Hour), "Arr_Time": at(76 * time.Hour), "Duration": 240}},

		{models.PassengerTable, models.Record{"Passenger_ID": "P001", "First_Name": "Asha", "Last_Name": "Rao", "Gender": "Female",
			"Nationality": "Indian", "Contact_No": "9876543210", "Total_Tickets": 1}},
		{models.PassengerTable, models.Record{"Passenger_ID": "P002", "First_Name": "Omar", "Last_Name": "Haddad", "Gender": "Male",
			"Nationality": "Emirati", "Contact_No": "971501234567", "Total_Tickets": 1}},
		{models.PassengerTable, models.Record{"Passenger_ID": "P003", "First_Name": "Lena", "Last_Name": "Fischer", "Gender": "Female",
			"Nationality": "German", "Contact_No": "4915123456789", "Total_Tickets": 0}},

		{models.TicketTable, models.Record{"Ticket_ID": "T001", "Class": "Economy", "Seat_No": "12A", "Flight_No": "FL202",
			"Passenger_ID": "P001", "Booking_Date": at(-2 * time.Hour)}},
		{models.TicketTable, models.Record{"Ticket_ID": "T002", "Class": "Business", "Seat_No": "2C", "Flight_No": "FL303",
			"Passenger_ID": "P002", "Booking_Date": at(-time.Hour)}},

		{models.AdminTable, models.Record{"Admin_ID": "A001", "Roles": "CEO", "Username": "ceo", "Password": "changeme"}},
		{models.AdminTable, models.Record{"Admin_ID": "A002", "Roles": "Airport_Manager", "Username": "manager", "Password": "changeme"}},
		{models.AdminTable, models.Record{"Admin_ID": "A003", "Roles": "Employee", "Username": "agent", "Password": "changeme"}},
		{models.TwoFATable, models.Record{"Admin_ID": "A001", "OTP": "123456"}},
		{models.TwoFATable, models.Record{"Admin_ID": "A002", "OTP": "654321"}},

		{models.FinanceTable, models.Record{"Transaction_ID": "TX001", "Amount": 5400.00, "Date": at(-2 * time.Hour),
			"Transaction_Type": "Card", "Passenger_ID": "P001", "Ticket_ID": "T001"}},
		{models.FinanceTable, models.Record{"Transaction_ID": "TX002", "Amount": 21850.50, "Date": at(-time.Hour),
			"Transaction_Type": "UPI", "Passenger_ID": "P002", "Ticket_ID": "T002"}},
	}

	for _, row := range rows {
		if err := repo.Insert(ctx, row.table, row.rec); err != nil {
			return err
		}
	}
	return nil
}
