package resource

// Schema describes one CRUD-managed table: its identity column, the
// writable columns, which of them are required on create and which one
// (if any) backs name search.
type Schema struct {
	Name         string
	Table        string
	IDColumn     string
	Columns      []string
	Required     []string
	SearchColumn string
}

func TripSchema() Schema {
	return Schema{
		Name:         "trip",
		Table:        "trip",
		IDColumn:     "idx",
		Columns:      []string{"name", "country", "destinationid", "coverimage", "detail", "price", "duration"},
		Required:     []string{"name", "country"},
		SearchColumn: "name",
	}
}

func DestinationSchema() Schema {
	return Schema{
		Name:     "destination",
		Table:    "destination",
		IDColumn: "idx",
		Columns:  []string{"zone"},
	}
}

func CustomerSchema() Schema {
	return Schema{
		Name:         "customer",
		Table:        "customer",
		IDColumn:     "idx",
		Columns:      []string{"fullname", "phone", "email", "image", "password"},
		Required:     []string{"phone"},
		SearchColumn: "fullname",
	}
}

func MeetingSchema() Schema {
	return Schema{
		Name:     "meeting",
		Table:    "meeting",
		IDColumn: "idx",
		Columns:  []string{"detail", "meetingdatetime", "latitude", "longitude"},
	}
}

func BookingSchema() Schema {
	return Schema{
		Name:     "booking",
		Table:    "booking",
		IDColumn: "idx",
		Columns:  []string{"customerid", "bookdatetime", "tripid", "meetingid"},
	}
}
