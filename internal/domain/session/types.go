package session

// Species de mascota soportadas.
type Species string

const (
	SpeciesCat     Species = "cat"
	SpeciesDog     Species = "dog"
	SpeciesBird    Species = "bird"
	SpeciesRabbit  Species = "rabbit"
	SpeciesHamster Species = "hamster"
	SpeciesOther   Species = "other"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ServiceType string

const (
	ServiceConsultation ServiceType = "consultation"
	ServiceHomeService  ServiceType = "home-service"
)

// BookingStatus aplica a bookings, consultas y visitas a domicilio.
// StatusOngoing solo lo usan las historias extendidas (consulta / home service).
type BookingStatus string

const (
	StatusCompleted BookingStatus = "completed"
	StatusUpcoming  BookingStatus = "upcoming"
	StatusOngoing   BookingStatus = "ongoing"
	StatusCancelled BookingStatus = "cancelled"
)

type ConsultationType string

const (
	ConsultationGeneral    ConsultationType = "general"
	ConsultationEmergency  ConsultationType = "emergency"
	ConsultationFollowUp   ConsultationType = "follow-up"
	ConsultationSpecialist ConsultationType = "specialist"
)

type HomeServiceType string

const (
	HomeServiceHealthCheckup HomeServiceType = "health-checkup"
	HomeServiceGrooming      HomeServiceType = "grooming"
	HomeServiceVaccination   HomeServiceType = "vaccination"
	HomeServiceEmergency     HomeServiceType = "emergency-service"
	HomeServiceDentalCare    HomeServiceType = "dental-care"
)

type Sender string

const (
	SenderUser   Sender = "user"
	SenderDoctor Sender = "doctor"
	SenderSystem Sender = "system"
)

type MessageKind string

const (
	MessageText   MessageKind = "text"
	MessageImage  MessageKind = "image"
	MessageSystem MessageKind = "system"
)

type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)
