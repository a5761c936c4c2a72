package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"petcare-marketplace/internal/middleware"
	"petcare-marketplace/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, st *Store) {
	r.Route("/session", func(sr chi.Router) {
		sr.Post("/login", loginHandler(st))
		sr.Post("/logout", logoutHandler(st))
		sr.Get("/", getSessionHandler(st))
	})

	// Todo /me exige sesión activa.
	r.Route("/me", func(mr chi.Router) {
		mr.Use(middleware.RequireLogin(st))

		mr.Patch("/", updateProfileHandler(st))

		mr.Get("/pets", listPetsHandler(st))
		mr.Post("/pets", addPetHandler(st))
		mr.Patch("/pets/{petID}", updatePetHandler(st))
		mr.Delete("/pets/{petID}", deletePetHandler(st))

		mr.Get("/bookings", listBookingsHandler(st))
		mr.Post("/bookings", addBookingHandler(st))

		mr.Get("/consultations", listConsultationsHandler(st))
		mr.Post("/consultations", addConsultationHandler(st))
		mr.Patch("/consultations/{consultationID}", updateConsultationHandler(st))

		mr.Get("/home-services", listHomeServicesHandler(st))
		mr.Post("/home-services", addHomeServiceHandler(st))
		mr.Patch("/home-services/{serviceID}", updateHomeServiceHandler(st))

		mr.Get("/orders", listOrdersHandler(st))
	})
}

// -------------------------
// Requests
// -------------------------

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Avatar  *string `json:"avatar"`
}

type addPetRequest struct {
	Name   string   `json:"name" validate:"required"`
	Type   Species  `json:"type" validate:"required,oneof=cat dog bird rabbit hamster other"`
	Gender Gender   `json:"gender" validate:"required,oneof=male female"`
	Age    *int     `json:"age" validate:"omitempty,gte=0"`
	Breed  string   `json:"breed"`
	Weight *float64 `json:"weight" validate:"omitempty,gte=0"`
	Image  string   `json:"image"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name   *string  `json:"name" validate:"omitempty,min=1"`
	Type   *Species `json:"type" validate:"omitempty,oneof=cat dog bird rabbit hamster other"`
	Gender *Gender  `json:"gender" validate:"omitempty,oneof=male female"`
	Age    *int     `json:"age" validate:"omitempty,gte=0"`
	Breed  *string  `json:"breed"`
	Weight *float64 `json:"weight" validate:"omitempty,gte=0"`
	Image  *string  `json:"image"`
}

type addBookingRequest struct {
	ServiceType ServiceType   `json:"service_type" validate:"required,oneof=consultation home-service"`
	ServiceName string        `json:"service_name" validate:"required"`
	PetID       string        `json:"pet_id"`
	PetName     string        `json:"pet_name"`
	DoctorName  string        `json:"doctor_name"`
	Date        string        `json:"date"` // YYYY-MM-DD o RFC3339; vacío = ahora
	Time        string        `json:"time"`
	Status      BookingStatus `json:"status" validate:"required,oneof=completed upcoming cancelled"`
	Price       int64         `json:"price" validate:"gte=0"`
	Notes       string        `json:"notes"`
}

type chatMessageRequest struct {
	ID        string      `json:"id" validate:"required"`
	Sender    Sender      `json:"sender" validate:"required,oneof=user doctor system"`
	Message   string      `json:"message"`
	Timestamp string      `json:"timestamp"`
	Type      MessageKind `json:"type" validate:"required,oneof=text image system"`
}

type addConsultationRequest struct {
	ConsultationID   string               `json:"consultation_id" validate:"required"`
	DoctorName       string               `json:"doctor_name" validate:"required"`
	DoctorImage      string               `json:"doctor_image"`
	PetName          string               `json:"pet_name"`
	ConsultationType ConsultationType     `json:"consultation_type" validate:"required,oneof=general emergency follow-up specialist"`
	Date             string               `json:"date"`
	Duration         int                  `json:"duration" validate:"gte=0"`
	Status           BookingStatus        `json:"status" validate:"required,oneof=completed upcoming ongoing cancelled"`
	Price            int64                `json:"price" validate:"gte=0"`
	Notes            string               `json:"notes"`
	ChatMessages     []chatMessageRequest `json:"chat_messages" validate:"dive"`
}

type updateConsultationRequest struct {
	DoctorName       *string              `json:"doctor_name" validate:"omitempty,min=1"`
	DoctorImage      *string              `json:"doctor_image"`
	PetName          *string              `json:"pet_name"`
	ConsultationType *ConsultationType    `json:"consultation_type" validate:"omitempty,oneof=general emergency follow-up specialist"`
	Date             *string              `json:"date"`
	Status           *BookingStatus       `json:"status" validate:"omitempty,oneof=completed upcoming ongoing cancelled"`
	Duration         *int                 `json:"duration" validate:"omitempty,gte=0"`
	Price            *int64               `json:"price" validate:"omitempty,gte=0"`
	Notes            *string              `json:"notes"`
	ChatMessages     []chatMessageRequest `json:"chat_messages" validate:"omitempty,dive"`
}

type addHomeServiceRequest struct {
	BookingID   string          `json:"booking_id" validate:"required"`
	PetID       string          `json:"pet_id"`
	PetName     string          `json:"pet_name"`
	ServiceType HomeServiceType `json:"service_type" validate:"required,oneof=health-checkup grooming vaccination emergency-service dental-care"`
	ServiceName string          `json:"service_name" validate:"required"`
	DoctorName  string          `json:"doctor_name"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Status      BookingStatus   `json:"status" validate:"required,oneof=completed upcoming ongoing cancelled"`
	Price       int64           `json:"price" validate:"gte=0"`
	Address     string          `json:"address" validate:"required"`
	Notes       string          `json:"notes"`
}

type updateHomeServiceRequest struct {
	BookingID   *string          `json:"booking_id" validate:"omitempty,min=1"`
	PetID       *string          `json:"pet_id"`
	PetName     *string          `json:"pet_name"`
	ServiceType *HomeServiceType `json:"service_type" validate:"omitempty,oneof=health-checkup grooming vaccination emergency-service dental-care"`
	ServiceName *string          `json:"service_name" validate:"omitempty,min=1"`
	DoctorName  *string          `json:"doctor_name"`
	Price       *int64           `json:"price" validate:"omitempty,gte=0"`
	Status      *BookingStatus   `json:"status" validate:"omitempty,oneof=completed upcoming ongoing cancelled"`
	Date        *string          `json:"date"`
	Time        *string          `json:"time"`
	Address     *string          `json:"address"`
	Notes       *string          `json:"notes"`
	CompletedAt *string          `json:"completed_at"`
}

// Query strings de los listados de historial.
type historyQuery struct {
	Status string `json:"status" validate:"omitempty,oneof=all completed upcoming ongoing cancelled"`
	Type   string `json:"type" validate:"omitempty,oneof=all consultation home-service"`
	Q      string `json:"q"`
}

type orderQuery struct {
	Status string `json:"status" validate:"omitempty,oneof=all processing shipped delivered cancelled"`
	Q      string `json:"q"`
}

// -------------------------
// Responses
// -------------------------

type sessionResponse struct {
	LoggedIn bool          `json:"logged_in"`
	User     *userResponse `json:"user,omitempty"`
}

type userResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Address   string        `json:"address,omitempty"`
	Avatar    string        `json:"avatar,omitempty"`
	Pets      []petResponse `json:"pets"`
	CreatedAt time.Time     `json:"created_at"`
}

type petResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      Species   `json:"type"`
	Gender    Gender    `json:"gender"`
	Age       *int      `json:"age,omitempty"`
	Breed     string    `json:"breed,omitempty"`
	Weight    *float64  `json:"weight,omitempty"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type bookingResponse struct {
	ID          string        `json:"id"`
	ServiceType ServiceType   `json:"service_type"`
	ServiceName string        `json:"service_name"`
	PetID       string        `json:"pet_id,omitempty"`
	PetName     string        `json:"pet_name,omitempty"`
	DoctorName  string        `json:"doctor_name,omitempty"`
	Date        time.Time     `json:"date"`
	Time        string        `json:"time"`
	Status      BookingStatus `json:"status"`
	Price       int64         `json:"price"`
	Notes       string        `json:"notes,omitempty"`
}

type chatMessageResponse struct {
	ID        string      `json:"id"`
	Sender    Sender      `json:"sender"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
	Type      MessageKind `json:"type"`
}

type consultationResponse struct {
	ID               string                `json:"id"`
	ConsultationID   string                `json:"consultation_id"`
	DoctorName       string                `json:"doctor_name"`
	DoctorImage      string                `json:"doctor_image,omitempty"`
	PetName          string                `json:"pet_name"`
	ConsultationType ConsultationType      `json:"consultation_type"`
	Date             time.Time             `json:"date"`
	Duration         int                   `json:"duration"`
	Status           BookingStatus         `json:"status"`
	Price            int64                 `json:"price"`
	Notes            string                `json:"notes,omitempty"`
	ChatMessages     []chatMessageResponse `json:"chat_messages"`
}

type HomeServiceResponse struct {
	ID          string          `json:"id"`
	BookingID   string          `json:"booking_id"`
	PetID       string          `json:"pet_id"`
	PetName     string          `json:"pet_name"`
	ServiceType HomeServiceType `json:"service_type"`
	ServiceName string          `json:"service_name"`
	DoctorName  string          `json:"doctor_name"`
	Date        time.Time       `json:"date"`
	Time        string          `json:"time"`
	Status      BookingStatus   `json:"status"`
	Price       int64           `json:"price"`
	Address     string          `json:"address"`
	Notes       string          `json:"notes,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

type OrderItemResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"order_number"`
	Date            time.Time           `json:"date"`
	Status          OrderStatus         `json:"status"`
	Items           []OrderItemResponse `json:"items"`
	Total           int64               `json:"total"`
	ShippingAddress string              `json:"shipping_address"`
	PaymentMethod   string              `json:"payment_method"`
}

// -------------------------
// Sesión
// -------------------------

// loginHandler godoc
// @Summary Iniciar sesión demo
// @Description Solo acepta el par de credenciales demo configurado. En éxito carga el usuario demo.
// @Tags session
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} sessionResponse
// @Failure 400 {string} string "invalid json / validation failed"
// @Failure 401 {string} string "invalid credentials"
// @Router /session/login [post]
func loginHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ok, err := st.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		writeJSON(w, http.StatusOK, toSessionResponse(st))
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Tags session
// @Success 204
// @Router /session/logout [post]
func logoutHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Logout(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// getSessionHandler godoc
// @Summary Estado de la sesión
// @Tags session
// @Produce json
// @Success 200 {object} sessionResponse
// @Router /session [get]
func getSessionHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, toSessionResponse(st))
	}
}

// -------------------------
// Perfil y mascotas
// -------------------------

// updateProfileHandler godoc
// @Summary Actualizar perfil (merge parcial)
// @Tags profile
// @Accept json
// @Produce json
// @Param payload body updateProfileRequest true "Campos a cambiar"
// @Success 200 {object} userResponse
// @Failure 400 {string} string "invalid json / validation failed"
// @Failure 401 {string} string "unauthorized"
// @Router /me [patch]
func updateProfileHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateProfileRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err := st.UpdateProfile(r.Context(), ProfilePatch{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
			Avatar:  req.Avatar,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeCurrentUser(w, st)
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas del usuario
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/pets [get]
func listPetsHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		u, ok := st.User()
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(u.Pets))
	}
}

// addPetHandler godoc
// @Summary Agregar mascota
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body addPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / validation failed"
// @Failure 401 {string} string "unauthorized"
// @Router /me/pets [post]
func addPetHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addPetRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := st.AddPet(r.Context(), PetInput{
			Name:    req.Name,
			Species: req.Type,
			Gender:  req.Gender,
			Age:     req.Age,
			Breed:   req.Breed,
			Weight:  req.Weight,
			Image:   req.Image,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if p.ID == "" {
			// la sesión se cerró entre el middleware y el store
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota (merge parcial)
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a cambiar"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json / validation failed"
// @Failure 404 {string} string "pet not found"
// @Router /me/pets/{petID} [patch]
func updatePetHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if _, ok := findPet(st, petID); !ok {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		var req updatePetRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err := st.UpdatePet(r.Context(), petID, PetPatch{
			Name:    req.Name,
			Species: req.Type,
			Gender:  req.Gender,
			Age:     req.Age,
			Breed:   req.Breed,
			Weight:  req.Weight,
			Image:   req.Image,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		p, _ := findPet(st, petID)
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Description Un id inexistente no es error (idempotente).
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Router /me/pets/{petID} [delete]
func deletePetHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.DeletePet(r.Context(), chi.URLParam(r, "petID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// -------------------------
// Historias
// -------------------------

// listBookingsHandler godoc
// @Summary Historial de reservas (más reciente primero)
// @Tags history
// @Produce json
// @Param status query string false "all | completed | upcoming | ongoing | cancelled"
// @Param type query string false "all | consultation | home-service"
// @Param q query string false "Busca en servicio, mascota y doctor"
// @Success 200 {array} bookingResponse
// @Failure 400 {string} string "validation failed"
// @Router /me/bookings [get]
func listBookingsHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := historyFilter(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, mapResponses(filterSlice(st.Bookings(), f.Booking), toBookingResponse))
	}
}

// addBookingHandler godoc
// @Summary Registrar reserva
// @Tags history
// @Accept json
// @Produce json
// @Param payload body addBookingRequest true "Reserva; date en YYYY-MM-DD o RFC3339"
// @Success 201 {object} bookingResponse
// @Failure 400 {string} string "invalid json / validation failed / invalid date"
// @Router /me/bookings [post]
func addBookingHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addBookingRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		date, err := parseTimestamp(req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD or RFC3339", http.StatusBadRequest)
			return
		}

		b, err := st.AddBooking(r.Context(), BookingInput{
			ServiceType: req.ServiceType,
			ServiceName: req.ServiceName,
			PetID:       req.PetID,
			PetName:     req.PetName,
			DoctorName:  req.DoctorName,
			Date:        date,
			Time:        req.Time,
			Status:      req.Status,
			Price:       req.Price,
			Notes:       req.Notes,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toBookingResponse(b))
	}
}

// listConsultationsHandler godoc
// @Summary Historial de consultas online
// @Tags history
// @Produce json
// @Param status query string false "all | completed | upcoming | ongoing | cancelled"
// @Param q query string false "Busca en mascota, doctor y tipo de consulta"
// @Success 200 {array} consultationResponse
// @Failure 400 {string} string "validation failed"
// @Router /me/consultations [get]
func listConsultationsHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := historyFilter(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, mapResponses(filterSlice(st.Consultations(), f.Consultation), toConsultationResponse))
	}
}

// addConsultationHandler godoc
// @Summary Registrar consulta
// @Tags history
// @Accept json
// @Produce json
// @Param payload body addConsultationRequest true "Consulta con su transcripción"
// @Success 201 {object} consultationResponse
// @Failure 400 {string} string "invalid json / validation failed / invalid date"
// @Router /me/consultations [post]
func addConsultationHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addConsultationRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		date, err := parseTimestamp(req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD or RFC3339", http.StatusBadRequest)
			return
		}
		msgs, err := toChatMessages(req.ChatMessages)
		if err != nil {
			http.Error(w, "timestamp must be RFC3339", http.StatusBadRequest)
			return
		}

		c, err := st.AddConsultationHistory(r.Context(), ConsultationInput{
			ConsultationID:   req.ConsultationID,
			DoctorName:       req.DoctorName,
			DoctorImage:      req.DoctorImage,
			PetName:          req.PetName,
			ConsultationType: req.ConsultationType,
			Date:             date,
			Duration:         req.Duration,
			Status:           req.Status,
			Price:            req.Price,
			Notes:            req.Notes,
			Messages:         msgs,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toConsultationResponse(c))
	}
}

// updateConsultationHandler godoc
// @Summary Actualizar consulta por consultation_id
// @Description Busca por el id de dominio de la consulta, no por el id de almacenamiento.
// @Tags history
// @Accept json
// @Produce json
// @Param consultationID path string true "consultation_id"
// @Param payload body updateConsultationRequest true "Campos a cambiar"
// @Success 200 {object} consultationResponse
// @Failure 404 {string} string "consultation not found"
// @Router /me/consultations/{consultationID} [patch]
func updateConsultationHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "consultationID")
		if _, ok := findBy(st.Consultations(), func(c ConsultationHistory) bool { return c.ConsultationID == id }); !ok {
			http.Error(w, "consultation not found", http.StatusNotFound)
			return
		}

		var req updateConsultationRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		msgs, err := toChatMessages(req.ChatMessages)
		if err != nil {
			http.Error(w, "timestamp must be RFC3339", http.StatusBadRequest)
			return
		}

		date, err := optionalTimestamp(req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD or RFC3339", http.StatusBadRequest)
			return
		}

		err = st.UpdateConsultationHistory(r.Context(), id, ConsultationPatch{
			DoctorName:       req.DoctorName,
			DoctorImage:      req.DoctorImage,
			PetName:          req.PetName,
			ConsultationType: req.ConsultationType,
			Date:             date,
			Status:           req.Status,
			Duration:         req.Duration,
			Price:            req.Price,
			Notes:            req.Notes,
			Messages:         msgs,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		c, _ := findBy(st.Consultations(), func(c ConsultationHistory) bool { return c.ConsultationID == id })
		writeJSON(w, http.StatusOK, toConsultationResponse(c))
	}
}

// listHomeServicesHandler godoc
// @Summary Historial de visitas a domicilio
// @Tags history
// @Produce json
// @Param status query string false "all | completed | upcoming | ongoing | cancelled"
// @Param q query string false "Busca en mascota, servicio y doctor"
// @Success 200 {array} HomeServiceResponse
// @Failure 400 {string} string "validation failed"
// @Router /me/home-services [get]
func listHomeServicesHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := historyFilter(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, mapResponses(filterSlice(st.HomeServices(), f.HomeService), ToHomeServiceResponse))
	}
}

// addHomeServiceHandler godoc
// @Summary Registrar visita a domicilio
// @Tags history
// @Accept json
// @Produce json
// @Param payload body addHomeServiceRequest true "Visita"
// @Success 201 {object} HomeServiceResponse
// @Failure 400 {string} string "invalid json / validation failed / invalid date"
// @Router /me/home-services [post]
func addHomeServiceHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addHomeServiceRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		date, err := parseTimestamp(req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD or RFC3339", http.StatusBadRequest)
			return
		}

		h, err := st.AddHomeServiceHistory(r.Context(), HomeServiceInput{
			BookingID:   req.BookingID,
			PetID:       req.PetID,
			PetName:     req.PetName,
			ServiceType: req.ServiceType,
			ServiceName: req.ServiceName,
			DoctorName:  req.DoctorName,
			Date:        date,
			Time:        req.Time,
			Status:      req.Status,
			Price:       req.Price,
			Address:     req.Address,
			Notes:       req.Notes,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, ToHomeServiceResponse(h))
	}
}

// updateHomeServiceHandler godoc
// @Summary Actualizar visita a domicilio por id
// @Tags history
// @Accept json
// @Produce json
// @Param serviceID path string true "ID de la visita"
// @Param payload body updateHomeServiceRequest true "Campos a cambiar"
// @Success 200 {object} HomeServiceResponse
// @Failure 404 {string} string "home service not found"
// @Router /me/home-services/{serviceID} [patch]
func updateHomeServiceHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "serviceID")
		if _, ok := findBy(st.HomeServices(), func(h HomeServiceHistory) bool { return h.ID == id }); !ok {
			http.Error(w, "home service not found", http.StatusNotFound)
			return
		}

		var req updateHomeServiceRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		patch := HomeServicePatch{
			BookingID:   req.BookingID,
			PetID:       req.PetID,
			PetName:     req.PetName,
			ServiceType: req.ServiceType,
			ServiceName: req.ServiceName,
			DoctorName:  req.DoctorName,
			Price:       req.Price,
			Status:      req.Status,
			Time:        req.Time,
			Address:     req.Address,
			Notes:       req.Notes,
		}
		var err error
		if patch.Date, err = optionalTimestamp(req.Date); err != nil {
			http.Error(w, "date must be YYYY-MM-DD or RFC3339", http.StatusBadRequest)
			return
		}
		if patch.CompletedAt, err = optionalTimestamp(req.CompletedAt); err != nil {
			http.Error(w, "completed_at must be RFC3339", http.StatusBadRequest)
			return
		}

		if err := st.UpdateHomeServiceHistory(r.Context(), id, patch); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		h, _ := findBy(st.HomeServices(), func(h HomeServiceHistory) bool { return h.ID == id })
		writeJSON(w, http.StatusOK, ToHomeServiceResponse(h))
	}
}

// listOrdersHandler godoc
// @Summary Órdenes de la tienda (más reciente primero)
// @Tags history
// @Produce json
// @Param status query string false "all | processing | shipped | delivered | cancelled"
// @Param q query string false "Busca en número de orden y productos"
// @Success 200 {array} OrderResponse
// @Failure 400 {string} string "validation failed"
// @Router /me/orders [get]
func listOrdersHandler(st *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := orderQuery{Status: r.URL.Query().Get("status"), Q: r.URL.Query().Get("q")}
		if err := validate.Struct(q); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f := HistoryFilter{Status: q.Status, Query: q.Q}
		writeJSON(w, http.StatusOK, mapResponses(filterSlice(st.Orders(), f.Order), ToOrderResponse))
	}
}

// -------------------------
// Helpers
// -------------------------

var errInvalidTimestamp = errors.New("invalid timestamp")

func optionalTimestamp(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseTimestamp(*s)
	if err != nil {
		return nil, errInvalidTimestamp
	}
	return &t, nil
}

func toChatMessages(in []chatMessageRequest) ([]ChatMessage, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]ChatMessage, 0, len(in))
	for _, m := range in {
		ts, err := parseTimestamp(m.Timestamp)
		if err != nil {
			return nil, errInvalidTimestamp
		}
		out = append(out, ChatMessage{ID: m.ID, Sender: m.Sender, Text: m.Message, Timestamp: ts, Kind: m.Type})
	}
	return out, nil
}

func findPet(st *Store, petID string) (Pet, bool) {
	u, ok := st.User()
	if !ok {
		return Pet{}, false
	}
	return findBy(u.Pets, func(p Pet) bool { return p.ID == petID })
}

func findBy[T any](items []T, match func(T) bool) (T, bool) {
	for _, it := range items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// mapResponses nunca devuelve nil para que el JSON sea [] y no null.
func historyFilter(w http.ResponseWriter, r *http.Request) (HistoryFilter, bool) {
	v := r.URL.Query()
	q := historyQuery{Status: v.Get("status"), Type: v.Get("type"), Q: v.Get("q")}
	if err := validate.Struct(q); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return HistoryFilter{}, false
	}
	return HistoryFilter{Status: q.Status, Query: q.Q, ServiceType: q.Type}, true
}

func mapResponses[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func writeCurrentUser(w http.ResponseWriter, st *Store) {
	u, ok := st.User()
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func toSessionResponse(st *Store) sessionResponse {
	u, ok := st.User()
	if !ok {
		return sessionResponse{}
	}
	ur := toUserResponse(u)
	return sessionResponse{LoggedIn: true, User: &ur}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		Avatar:    u.Avatar,
		Pets:      toPetResponses(u.Pets),
		CreatedAt: u.CreatedAt,
	}
}

func toPetResponses(pets []Pet) []petResponse {
	return mapResponses(pets, toPetResponse)
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Species,
		Gender:    p.Gender,
		Age:       p.Age,
		Breed:     p.Breed,
		Weight:    p.Weight,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
	}
}

func toBookingResponse(b Booking) bookingResponse {
	return bookingResponse{
		ID:          b.ID,
		ServiceType: b.ServiceType,
		ServiceName: b.ServiceName,
		PetID:       b.PetID,
		PetName:     b.PetName,
		DoctorName:  b.DoctorName,
		Date:        b.Date,
		Time:        b.Time,
		Status:      b.Status,
		Price:       b.Price,
		Notes:       b.Notes,
	}
}

func toChatMessageResponse(m ChatMessage) chatMessageResponse {
	return chatMessageResponse{ID: m.ID, Sender: m.Sender, Message: m.Text, Timestamp: m.Timestamp, Type: m.Kind}
}

func toConsultationResponse(c ConsultationHistory) consultationResponse {
	return consultationResponse{
		ID:               c.ID,
		ConsultationID:   c.ConsultationID,
		DoctorName:       c.DoctorName,
		DoctorImage:      c.DoctorImage,
		PetName:          c.PetName,
		ConsultationType: c.ConsultationType,
		Date:             c.Date,
		Duration:         c.Duration,
		Status:           c.Status,
		Price:            c.Price,
		Notes:            c.Notes,
		ChatMessages:     mapResponses(c.Messages, toChatMessageResponse),
	}
}

// ToHomeServiceResponse: la reserva de servicios del catálogo responde con la misma forma.
func ToHomeServiceResponse(h HomeServiceHistory) HomeServiceResponse {
	return HomeServiceResponse{
		ID:          h.ID,
		BookingID:   h.BookingID,
		PetID:       h.PetID,
		PetName:     h.PetName,
		ServiceType: h.ServiceType,
		ServiceName: h.ServiceName,
		DoctorName:  h.DoctorName,
		Date:        h.Date,
		Time:        h.Time,
		Status:      h.Status,
		Price:       h.Price,
		Address:     h.Address,
		Notes:       h.Notes,
		CompletedAt: h.CompletedAt,
	}
}

// ToOrderResponse: checkout responde con la misma forma que /me/orders.
func ToOrderResponse(o Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}
	return OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		Date:            o.Date,
		Status:          o.Status,
		Items:           items,
		Total:           o.Total,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
	}
}

// writeJSON está duplicado intencionalmente en cada módulo (session/cart/checkout/chat)
// para no crear un paquete compartido solo por esto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
