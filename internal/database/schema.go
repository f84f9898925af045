package database

// Identifiers are quoted because the console addresses tables and columns in
// mixed case.

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS "Aircraft" (
		"Aircraft_ID"  VARCHAR(20) PRIMARY KEY,
		"Model"        VARCHAR(100),
		"Capacity"     INTEGER CHECK ("Capacity" BETWEEN 1 AND 1000),
		"Manufacturer" VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS "Airport" (
		"Airport_ID" VARCHAR(10) PRIMARY KEY,
		"Name"       VARCHAR(100),
		"Location"   VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS "Flight" (
		"Flight_No"       VARCHAR(20) PRIMARY KEY,
		"Aircraft_ID"     VARCHAR(20) REFERENCES "Aircraft" ("Aircraft_ID"),
		"Dept_Airport_ID" VARCHAR(10) REFERENCES "Airport" ("Airport_ID"),
		"Arr_Airport_ID"  VARCHAR(10) REFERENCES "Airport" ("Airport_ID"),
		"Dept_Time"       TIMESTAMPTZ,
		"Arr_Time"        TIMESTAMPTZ,
		"Duration"        INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS idx_flight_dept_time ON "Flight" ("Dept_Time")`,
	`CREATE TABLE IF NOT EXISTS "Passenger" (
		"Passenger_ID"  VARCHAR(20) PRIMARY KEY,
		"First_Name"    VARCHAR(50),
		"Last_Name"     VARCHAR(50),
		"Gender"        VARCHAR(10),
		"Nationality"   VARCHAR(50),
		"Contact_No"    VARCHAR(20),
		"Total_Tickets" INTEGER DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS "Tickets" (
		"Ticket_ID"    VARCHAR(20) PRIMARY KEY,
		"Class"        VARCHAR(20),
		"Seat_No"      VARCHAR(5),
		"Flight_No"    VARCHAR(20) REFERENCES "Flight" ("Flight_No"),
		"Passenger_ID" VARCHAR(20) REFERENCES "Passenger" ("Passenger_ID"),
		"Booking_Date" TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tickets_flight ON "Tickets" ("Flight_No")`,
	`CREATE TABLE IF NOT EXISTS "Admin" (
		"Admin_ID" VARCHAR(20) PRIMARY KEY,
		"Roles"    VARCHAR(20) CHECK ("Roles" IN ('Employee', 'Airport_Manager', 'CEO')),
		"Username" VARCHAR(50) UNIQUE,
		"Password" VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS "TwoFA" (
		"Admin_ID" VARCHAR(20) PRIMARY KEY REFERENCES "Admin" ("Admin_ID") ON DELETE CASCADE,
		"OTP"      VARCHAR(10)
	)`,
	`CREATE TABLE IF NOT EXISTS "Finance" (
		"Transaction_ID"   VARCHAR(20) PRIMARY KEY,
		"Amount"           NUMERIC(10, 2),
		"Date"             TIMESTAMPTZ DEFAULT NOW(),
		"Transaction_Type" VARCHAR(20),
		"Passenger_ID"     VARCHAR(20) REFERENCES "Passenger" ("Passenger_ID"),
		"Ticket_ID"        VARCHAR(20) REFERENCES "Tickets" ("Ticket_ID")
	)`,
	`CREATE OR REPLACE PROCEDURE refresh_total_tickets(p_passenger_id VARCHAR)
	LANGUAGE SQL
	AS $$
		UPDATE "Passenger"
		SET "Total_Tickets" = (SELECT COUNT(*) FROM "Tickets" t WHERE t."Passenger_ID" = p_passenger_id)
		WHERE "Passenger_ID" = p_passenger_id
	$$`,
	`CREATE OR REPLACE FUNCTION flight_ticket_count(p_flight_no VARCHAR)
	RETURNS BIGINT
	LANGUAGE SQL STABLE
	AS $$
		SELECT COUNT(*) FROM "Tickets" WHERE "Flight_No" = p_flight_no
	$$`,
	`CREATE OR REPLACE FUNCTION passenger_total_tickets_check()
	RETURNS TRIGGER
	LANGUAGE plpgsql
	AS $$
	BEGIN
		IF NEW."Total_Tickets" < 0 THEN
			RAISE EXCEPTION 'Total tickets cannot be negative';
		END IF;
		RETURN NEW;
	END
	$$`,
	`DROP TRIGGER IF EXISTS passenger_total_tickets_check ON "Passenger"`,
	`CREATE TRIGGER passenger_total_tickets_check
	BEFORE INSERT OR UPDATE ON "Passenger"
	FOR EACH ROW EXECUTE FUNCTION passenger_total_tickets_check()`,
}

var mysqlSchema = []string{
	"CREATE TABLE IF NOT EXISTS `Aircraft` (" +
		" `Aircraft_ID` VARCHAR(20) PRIMARY KEY," +
		" `Model` VARCHAR(100)," +
		" `Capacity` INT CHECK (`Capacity` BETWEEN 1 AND 1000)," +
		" `Manufacturer` VARCHAR(100)" +
		")",
	"CREATE TABLE IF NOT EXISTS `Airport` (" +
		" `Airport_ID` VARCHAR(10) PRIMARY KEY," +
		" `Name` VARCHAR(100)," +
		" `Location` VARCHAR(100)" +
		")",
	"CREATE TABLE IF NOT EXISTS `Flight` (" +
		" `Flight_No` VARCHAR(20) PRIMARY KEY," +
		" `Aircraft_ID` VARCHAR(20)," +
		" `Dept_Airport_ID` VARCHAR(10)," +
		" `Arr_Airport_ID` VARCHAR(10)," +
		" `Dept_Time` DATETIME," +
		" `Arr_Time` DATETIME," +
		" `Duration` INT," +
		" INDEX idx_flight_dept_time (`Dept_Time`)," +
		" FOREIGN KEY (`Aircraft_ID`) REFERENCES `Aircraft` (`Aircraft_ID`)," +
		" FOREIGN KEY (`Dept_Airport_ID`) REFERENCES `Airport` (`Airport_ID`)," +
		" FOREIGN KEY (`Arr_Airport_ID`) REFERENCES `Airport` (`Airport_ID`)" +
		")",
	"CREATE TABLE IF NOT EXISTS `Passenger` (" +
		" `Passenger_ID` VARCHAR(20) PRIMARY KEY," +
		" `First_Name` VARCHAR(50)," +
		" `Last_Name` VARCHAR(50)," +
		" `Gender` VARCHAR(10)," +
		" `Nationality` VARCHAR(50)," +
		" `Contact_No` VARCHAR(20)," +
		" `Total_Tickets` INT DEFAULT 0" +
		")",
	"CREATE TABLE IF NOT EXISTS `Tickets` (" +
		" `Ticket_ID` VARCHAR(20) PRIMARY KEY," +
		" `Class` VARCHAR(20)," +
		" `Seat_No` VARCHAR(5)," +
		" `Flight_No` VARCHAR(20)," +
		" `Passenger_ID` VARCHAR(20)," +
		" `Booking_Date` DATETIME DEFAULT CURRENT_TIMESTAMP," +
		" FOREIGN KEY (`Flight_No`) REFERENCES `Flight` (`Flight_No`)," +
		" FOREIGN KEY (`Passenger_ID`) REFERENCES `Passenger` (`Passenger_ID`)" +
		")",
	"CREATE TABLE IF NOT EXISTS `Admin` (" +
		" `Admin_ID` VARCHAR(20) PRIMARY KEY," +
		" `Roles` ENUM('Employee', 'Airport_Manager', 'CEO')," +
		" `Username` VARCHAR(50) UNIQUE," +
		" `Password` VARCHAR(100)" +
		")",
	"CREATE TABLE IF NOT EXISTS `TwoFA` (" +
		" `Admin_ID` VARCHAR(20) PRIMARY KEY," +
		" `OTP` VARCHAR(10)," +
		" FOREIGN KEY (`Admin_ID`) REFERENCES `Admin` (`Admin_ID`) ON DELETE CASCADE" +
		")",
	"CREATE TABLE IF NOT EXISTS `Finance` (" +
		" `Transaction_ID` VARCHAR(20) PRIMARY KEY," +
		" `Amount` DECIMAL(10, 2)," +
		" `Date` DATETIME DEFAULT CURRENT_TIMESTAMP," +
		" `Transaction_Type` VARCHAR(20)," +
		" `Passenger_ID` VARCHAR(20)," +
		" `Ticket_ID` VARCHAR(20)," +
		" FOREIGN KEY (`Passenger_ID`) REFERENCES `Passenger` (`Passenger_ID`)," +
		" FOREIGN KEY (`Ticket_ID`) REFERENCES `Tickets` (`Ticket_ID`)" +
		")",
	"DROP PROCEDURE IF EXISTS refresh_total_tickets",
	"CREATE PROCEDURE refresh_total_tickets(IN p_passenger_id VARCHAR(20))" +
		" BEGIN" +
		" UPDATE `Passenger`" +
		" SET `Total_Tickets` = (SELECT COUNT(*) FROM `Tickets` t WHERE t.`Passenger_ID` = p_passenger_id)" +
		" WHERE `Passenger_ID` = p_passenger_id;" +
		" END",
	"DROP FUNCTION IF EXISTS flight_ticket_count",
	"CREATE FUNCTION flight_ticket_count(p_flight_no VARCHAR(20)) RETURNS BIGINT" +
		" READS SQL DATA" +
		" RETURN (SELECT COUNT(*) FROM `Tickets` WHERE `Flight_No` = p_flight_no)",
	"DROP TRIGGER IF EXISTS passenger_total_tickets_insert",
	"CREATE TRIGGER passenger_total_tickets_insert BEFORE INSERT ON `Passenger`" +
		" FOR EACH ROW BEGIN" +
		" IF NEW.`Total_Tickets` < 0 THEN" +
		" SIGNAL SQLSTATE '45000' SET MESSAGE_TEXT = 'Total tickets cannot be negative';" +
		" END IF;" +
		" END",
	"DROP TRIGGER IF EXISTS passenger_total_tickets_update",
	"CREATE TRIGGER passenger_total_tickets_update BEFORE UPDATE ON `Passenger`" +
		" FOR EACH ROW BEGIN" +
		" IF NEW.`Total_Tickets` < 0 THEN" +
		" SIGNAL SQLSTATE '45000' SET MESSAGE_TEXT = 'Total tickets cannot be negative';" +
		" END IF;" +
		" END",
}

// sqliteSchema stores times as UTC text in sqliteTimeLayout
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS "Aircraft" (
		"Aircraft_ID"  TEXT PRIMARY KEY,
		"Model"        TEXT,
		"Capacity"     INTEGER CHECK ("Capacity" BETWEEN 1 AND 1000),
		"Manufacturer" TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS "Airport" (
		"Airport_ID" TEXT PRIMARY KEY,
		"Name"       TEXT,
		"Location"   TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS "Flight" (
		"Flight_No"       TEXT PRIMARY KEY,
		"Aircraft_ID"     TEXT REFERENCES "Aircraft" ("Aircraft_ID"),
		"Dept_Airport_ID" TEXT REFERENCES "Airport" ("Airport_ID"),
		"Arr_Airport_ID"  TEXT REFERENCES "Airport" ("Airport_ID"),
		"Dept_Time"       TEXT,
		"Arr_Time"        TEXT,
		"Duration"        INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS idx_flight_dept_time ON "Flight" ("Dept_Time")`,
	`CREATE TABLE IF NOT EXISTS "Passenger" (
		"Passenger_ID"  TEXT PRIMARY KEY,
		"First_Name"    TEXT,
		"Last_Name"     TEXT,
		"Gender"        TEXT,
		"Nationality"   TEXT,
		"Contact_No"    TEXT,
		"Total_Tickets" INTEGER DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS "Tickets" (
		"Ticket_ID"    TEXT PRIMARY KEY,
		"Class"        TEXT,
		"Seat_No"      TEXT,
		"Flight_No"    TEXT REFERENCES "Flight" ("Flight_No"),
		"Passenger_ID" TEXT REFERENCES "Passenger" ("Passenger_ID"),
		"Booking_Date" TEXT DEFAULT (datetime('now'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tickets_flight ON "Tickets" ("Flight_No")`,
	`CREATE TABLE IF NOT EXISTS "Admin" (
		"Admin_ID" TEXT PRIMARY KEY,
		"Roles"    TEXT CHECK ("Roles" IN ('Employee', 'Airport_Manager', 'CEO')),
		"Username" TEXT UNIQUE,
		"Password" TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS "TwoFA" (
		"Admin_ID" TEXT PRIMARY KEY REFERENCES "Admin" ("Admin_ID") ON DELETE CASCADE,
		"OTP"      TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS "Finance" (
		"Transaction_ID"   TEXT PRIMARY KEY,
		"Amount"           REAL,
		"Date"             TEXT DEFAULT (datetime('now')),
		"Transaction_Type" TEXT,
		"Passenger_ID"     TEXT REFERENCES "Passenger" ("Passenger_ID"),
		"Ticket_ID"        TEXT REFERENCES "Tickets" ("Ticket_ID")
	)`,
	`CREATE TRIGGER IF NOT EXISTS passenger_total_tickets_insert
	BEFORE INSERT ON "Passenger"
	WHEN NEW."Total_Tickets" < 0
	BEGIN
		SELECT RAISE(ABORT, 'Total tickets cannot be negative');
	END`,
	`CREATE TRIGGER IF NOT EXISTS passenger_total_tickets_update
	BEFORE UPDATE ON "Passenger"
	WHEN NEW."Total_Tickets" < 0
	BEGIN
		SELECT RAISE(ABORT, 'Total tickets cannot be negative');
	END`,
}
