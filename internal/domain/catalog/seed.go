package catalog

import (
	"fmt"

	"petcare-marketplace/internal/domain/session"
)

const (
	productImg = 400
	doctorImg  = 300
)

// pexels arma la URL de una foto de pexels con el ancho pedido.
func pexels(id string, width int) string {
	return fmt.Sprintf("https://images.pexels.com/photos/%[1]s/pexels-photo-%[1]s.jpeg?auto=compress&cs=tinysrgb&w=%d", id, width)
}

func seedCategories() []Category {
	return []Category{
		{ID: "food", Name: "Makanan"},
		{ID: "medicine", Name: "Obat-obatan"},
		{ID: "accessories", Name: "Aksesoris"},
		{ID: "toys", Name: "Mainan"},
		{ID: "grooming", Name: "Perawatan"},
	}
}

func seedProducts() []Product {
	return []Product{
		{
			ID:            1,
			Name:          "Royal Canin Adult Cat Food",
			Category:      "food",
			Price:         "Rp 285.000",
			OriginalPrice: "Rp 320.000",
			Rating:        4.8,
			Reviews:       124,
			Image:         pexels("1359307", productImg),
			Discount:      "11%",
			InStock:       true,
		},
		{
			ID:            2,
			Name:          "Vitamin Kucing Multivitamin",
			Category:      "medicine",
			Price:         "Rp 45.000",
			OriginalPrice: "Rp 55.000",
			Rating:        4.6,
			Reviews:       89,
			Image:         pexels("6131071", productImg),
			Discount:      "18%",
			InStock:       true,
		},
		{
			ID:       3,
			Name:     "Kalung Anjing Premium Leather",
			Category: "accessories",
			Price:    "Rp 125.000",
			Rating:   4.9,
			Reviews:  67,
			Image:    pexels("1108099", productImg),
			InStock:  true,
		},
		{
			ID:            4,
			Name:          "Mainan Kucing Interactive Ball",
			Category:      "toys",
			Price:         "Rp 35.000",
			OriginalPrice: "Rp 45.000",
			Rating:        4.7,
			Reviews:       156,
			Image:         pexels("1404819", productImg),
			Discount:      "22%",
			InStock:       false,
		},
		{
			ID:       5,
			Name:     "Shampoo Anjing Anti Kutu",
			Category: "grooming",
			Price:    "Rp 65.000",
			Rating:   4.5,
			Reviews:  93,
			Image:    pexels("6568946", productImg),
			InStock:  true,
		},
		{
			ID:            6,
			Name:          "Whiskas Adult Dry Food",
			Category:      "food",
			Price:         "Rp 95.000",
			OriginalPrice: "Rp 110.000",
			Rating:        4.4,
			Reviews:       201,
			Image:         pexels("1359307", productImg),
			Discount:      "14%",
			InStock:       true,
		},
	}
}

func seedServices() []HomeService {
	return []HomeService{
		{
			ID:          "checkup",
			Name:        "Pemeriksaan Kesehatan",
			Description: "Pemeriksaan rutin untuk memastikan kesehatan hewan peliharaan Anda",
			Price:       "Rp 150.000",
			Duration:    "45 menit",
			Image:       "https://images.pexels.com/photos/5487067/pexels-photo-5487067.jpeg",
			Includes: []string{
				"Pemeriksaan fisik lengkap",
				"Pengecekan suhu tubuh",
				"Pemeriksaan mata, telinga, mulut",
				"Konsultasi kesehatan",
				"Laporan hasil pemeriksaan",
			},
			Type: session.HomeServiceHealthCheckup,
		},
		{
			ID:          "vaccination",
			Name:        "Vaksinasi",
			Description: "Layanan vaksinasi lengkap untuk melindungi hewan peliharaan dari penyakit",
			Price:       "Rp 200.000",
			Duration:    "30 menit",
			Image:       "https://images.pexels.com/photos/7474852/pexels-photo-7474852.jpeg",
			Includes: []string{
				"Vaksin sesuai jadwal",
				"Pemeriksaan pre-vaksinasi",
				"Sertifikat vaksinasi",
				"Konsultasi jadwal vaksin berikutnya",
				"Monitoring post-vaksinasi",
			},
			Type: session.HomeServiceVaccination,
		},
		{
			ID:          "grooming",
			Name:        "Grooming & Perawatan",
			Description: "Layanan grooming profesional untuk menjaga kebersihan dan penampilan hewan",
			Price:       "Rp 100.000",
			Duration:    "60 menit",
			Image:       "https://images.pexels.com/photos/19145897/pexels-photo-19145897.jpeg",
			Includes: []string{
				"Mandi dengan shampoo khusus",
				"Pemotongan kuku",
				"Pembersihan telinga",
				"Penyisiran dan styling",
				"Parfum hewan yang aman",
			},
			Type: session.HomeServiceGrooming,
		},
		{
			ID:          "emergency",
			Name:        "Layanan Darurat",
			Description: "Layanan darurat 24/7 untuk kondisi medis yang memerlukan penanganan segera",
			Price:       "Rp 300.000",
			Duration:    "Sesuai kebutuhan",
			Image:       "https://images.pexels.com/photos/6131096/pexels-photo-6131096.jpeg",
			Includes: []string{
				"Respon cepat 24/7",
				"Pemeriksaan darurat",
				"Pertolongan pertama",
				"Rujukan ke klinik jika diperlukan",
				"Follow-up perawatan",
			},
			Type: session.HomeServiceEmergency,
		},
	}
}

func seedTimeSlots() []string {
	return []string{"08:00", "09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00"}
}

func seedDoctors() []Doctor {
	return []Doctor{
		{
			ID:           1,
			Name:         "Dr. Sarah Wijaya",
			Specialty:    "Dokter Hewan Umum",
			Experience:   "8 tahun",
			Rating:       4.9,
			Price:        25000,
			Image:        pexels("5327585", doctorImg),
			Status:       DoctorOnline,
			ResponseTime: "< 2 menit",
		},
		{
			ID:           2,
			Name:         "Dr. Ahmad Pratama",
			Specialty:    "Spesialis Kucing",
			Experience:   "12 tahun",
			Rating:       4.8,
			Price:        35000,
			Image:        pexels("6749778", doctorImg),
			Status:       DoctorOnline,
			ResponseTime: "< 3 menit",
		},
		{
			ID:           3,
			Name:         "Dr. Rina Sari",
			Specialty:    "Spesialis Anjing",
			Experience:   "10 tahun",
			Rating:       4.9,
			Price:        30000,
			Image:        pexels("5452268", doctorImg),
			Status:       DoctorBusy,
			ResponseTime: "< 5 menit",
		},
	}
}
