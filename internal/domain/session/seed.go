package session

import "time"

// Contenido demo: el usuario que devuelve el login y las historias que se cargan
// cuando la clave correspondiente todavía no existe en el store.

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func intPtr(v int) *int              { return &v }
func floatPtr(v float64) *float64    { return &v }
func timePtr(t time.Time) *time.Time { return &t }

// DemoUser devuelve una copia nueva en cada llamada.
func DemoUser() User {
	return User{
		ID:      "demo-user-1",
		Name:    "Sarah Wijaya",
		Email:   "demo@example.com",
		Phone:   "+62 812-3456-7890",
		Address: "Jl. Sudirman No. 123, Jakarta Selatan",
		Avatar:  "https://images.pexels.com/photos/3763188/pexels-photo-3763188.jpeg?auto=compress&cs=tinysrgb&w=300",
		Pets: []Pet{
			{
				ID:        "pet-1",
				Name:      "Milo",
				Species:   SpeciesCat,
				Gender:    GenderMale,
				Age:       intPtr(2),
				Breed:     "Persian",
				Weight:    floatPtr(4.5),
				Image:     "https://images.pexels.com/photos/45201/kitty-cat-kitten-pet-45201.jpeg?auto=compress&cs=tinysrgb&w=300",
				CreatedAt: day(2023, time.January, 15),
			},
			{
				ID:        "pet-2",
				Name:      "Luna",
				Species:   SpeciesDog,
				Gender:    GenderFemale,
				Age:       intPtr(3),
				Breed:     "Golden Retriever",
				Weight:    floatPtr(25),
				Image:     "https://images.pexels.com/photos/1108099/pexels-photo-1108099.jpeg?auto=compress&cs=tinysrgb&w=300",
				CreatedAt: day(2023, time.March, 20),
			},
		},
		CreatedAt: day(2023, time.January, 1),
	}
}

func seedBookings() []Booking {
	return []Booking{
		{
			ID:          "booking-1",
			ServiceType: ServiceConsultation,
			ServiceName: "Konsultasi Online",
			PetID:       "pet-1",
			PetName:     "Milo",
			DoctorName:  "Dr. Sarah Wijaya",
			Date:        day(2024, time.January, 10),
			Time:        "14:00",
			Status:      StatusCompleted,
			Price:       75000,
			Notes:       "Konsultasi rutin, kondisi sehat",
		},
		{
			ID:          "booking-2",
			ServiceType: ServiceHomeService,
			ServiceName: "Vaksinasi",
			PetID:       "pet-2",
			PetName:     "Luna",
			DoctorName:  "Dr. Ahmad Pratama",
			Date:        day(2024, time.January, 15),
			Time:        "10:00",
			Status:      StatusCompleted,
			Price:       200000,
			Notes:       "Vaksin rabies dan distemper",
		},
		{
			ID:          "booking-3",
			ServiceType: ServiceConsultation,
			ServiceName: "Konsultasi Online",
			PetID:       "pet-1",
			PetName:     "Milo",
			DoctorName:  "Dr. Rina Sari",
			Date:        day(2024, time.January, 20),
			Time:        "16:00",
			Status:      StatusUpcoming,
			Price:       75000,
		},
	}
}

func seedConsultations() []ConsultationHistory {
	start := at(2024, time.January, 10, 14, 0)
	return []ConsultationHistory{
		{
			ID:               "consultation-history-1",
			ConsultationID:   "consultation-1",
			DoctorName:       "Dr. Sarah Wijaya",
			PetName:          "Milo",
			ConsultationType: ConsultationGeneral,
			Date:             start,
			Duration:         15,
			Status:           StatusCompleted,
			Price:            75000,
			Notes:            "Konsultasi rutin, kondisi sehat",
			Messages: []ChatMessage{
				{ID: "1", Sender: SenderSystem, Text: "Konsultasi dimulai dengan Dr. Sarah Wijaya untuk Milo", Timestamp: start, Kind: MessageSystem},
				{ID: "2", Sender: SenderDoctor, Text: "Halo! Apa yang bisa saya bantu dengan Milo hari ini?", Timestamp: start, Kind: MessageText},
				{ID: "3", Sender: SenderUser, Text: "Milo kurang nafsu makan sejak kemarin.", Timestamp: start.Add(time.Minute), Kind: MessageText},
				{ID: "4", Sender: SenderDoctor, Text: "Apakah ada perubahan dalam rutinitas atau lingkungan Milo belakangan ini?", Timestamp: start.Add(2 * time.Minute), Kind: MessageText},
			},
		},
	}
}

func seedHomeServices() []HomeServiceHistory {
	return []HomeServiceHistory{
		{
			ID:          "home-service-1",
			BookingID:   "booking-2",
			PetID:       "pet-2",
			PetName:     "Luna",
			ServiceType: HomeServiceVaccination,
			ServiceName: "Vaksinasi",
			DoctorName:  "Dr. Ahmad Pratama",
			Date:        day(2024, time.January, 15),
			Time:        "10:00",
			Status:      StatusCompleted,
			Price:       200000,
			Address:     "Jl. Sudirman No. 123, Jakarta Selatan",
			Notes:       "Vaksin rabies dan distemper",
			CompletedAt: timePtr(at(2024, time.January, 15, 10, 45)),
		},
	}
}
