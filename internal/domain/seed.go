package domain

// DefaultServices returns the seed catalogue used when nothing has been stored yet.
// A fresh slice is returned on every call.
func DefaultServices() []Service {
	return []Service{
		{
			ID:              "1",
			Name:            "Luxury Swedish Massage",
			Description:     "A relaxing full-body massage using gentle strokes to improve circulation and relieve tension.",
			DurationMinutes: 60,
			Price:           85,
			Category:        CategoryMassage,
			ImageURL:        "https://picsum.photos/400/300?random=1",
		},
		{
			ID:              "2",
			Name:            "Gel Manicure Deluxe",
			Description:     "Premium gel polish application with cuticle care, hand massage, and exfoliation.",
			DurationMinutes: 45,
			Price:           50,
			Category:        CategoryNails,
			ImageURL:        "https://picsum.photos/400/300?random=2",
		},
		{
			ID:              "3",
			Name:            "Deep Cleansing Facial",
			Description:     "Rejuvenating facial treatment that cleanses pores, exfoliates dead skin cells, and treats common skin concerns.",
			DurationMinutes: 75,
			Price:           120,
			Category:        CategorySpa,
			ImageURL:        "https://picsum.photos/400/300?random=3",
		},
		{
			ID:              "4",
			Name:            "Omakase Dinner",
			Description:     "Chef's choice seasonal tasting menu featuring the finest ingredients available today.",
			DurationMinutes: 120,
			Price:           150,
			Category:        CategoryRestaurant,
			ImageURL:        "https://picsum.photos/400/300?random=4",
		},
	}
}

// DefaultSettings returns the seed business record
func DefaultSettings() BusinessSettings {
	return BusinessSettings{
		Name:      "LuxeBook Sanctuary",
		OpenTime:  "09:00",
		CloseTime: "20:00",
	}
}

// DefaultAppointments returns the empty appointment list
func DefaultAppointments() []Appointment {
	return []Appointment{}
}
