package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"petcare-marketplace/internal/domain/cart"
	"petcare-marketplace/internal/domain/session"
	"petcare-marketplace/internal/middleware"
	"petcare-marketplace/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

// El catálogo es público; solo reservar un servicio pide sesión.
func RegisterRoutes(r chi.Router, c *Catalog, booker *Booker, sessions middleware.SessionChecker) {
	r.Get("/categories", listCategoriesHandler(c))
	r.Get("/products", listProductsHandler(c))
	r.Get("/products/{productID}", getProductHandler(c))
	r.Get("/time-slots", listTimeSlotsHandler(c))
	r.Get("/doctors", listDoctorsHandler(c))
	r.Get("/doctors/{doctorID}", getDoctorHandler(c))

	r.Route("/services", func(sr chi.Router) {
		sr.Get("/", listServicesHandler(c))
		sr.Get("/{serviceID}", getServiceHandler(c))
		sr.With(middleware.RequireLogin(sessions)).Post("/{serviceID}/book", bookServiceHandler(booker))
	})
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type productResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         string  `json:"price"`
	PriceValue    int64   `json:"price_value"`
	OriginalPrice string  `json:"original_price,omitempty"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Image         string  `json:"image"`
	Discount      string  `json:"discount,omitempty"`
	InStock       bool    `json:"in_stock"`
}

type serviceResponse struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Price       string                  `json:"price"`
	PriceValue  int64                   `json:"price_value"`
	Duration    string                  `json:"duration"`
	Image       string                  `json:"image"`
	Includes    []string                `json:"includes"`
	Type        session.HomeServiceType `json:"service_type"`
}

type doctorResponse struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Specialty    string       `json:"specialty"`
	Experience   string       `json:"experience"`
	Rating       float64      `json:"rating"`
	Price        int64        `json:"price"`
	Image        string       `json:"image"`
	Status       DoctorStatus `json:"status"`
	ResponseTime string       `json:"response_time"`
}

type productQuery struct {
	Category string `json:"category"`
	Q        string `json:"q" validate:"max=100"`
}

type bookServiceRequest struct {
	PetID   string `json:"pet_id"`
	Date    string `json:"date" validate:"required"` // YYYY-MM-DD
	Time    string `json:"time" validate:"required"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// listCategoriesHandler godoc
// @Summary Categorías de productos
// @Tags catalog
// @Produce json
// @Success 200 {array} categoryResponse
// @Router /categories [get]
func listCategoriesHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		out := make([]categoryResponse, 0)
		for _, cat := range c.Categories() {
			out = append(out, categoryResponse{ID: cat.ID, Name: cat.Name})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listProductsHandler godoc
// @Summary Productos de la tienda
// @Description Filtra por categoría y por texto en el nombre.
// @Tags catalog
// @Produce json
// @Param category query string false "all | food | medicine | accessories | toys | grooming"
// @Param q query string false "Texto a buscar en el nombre"
// @Success 200 {array} productResponse
// @Failure 400 {string} string "unknown category"
// @Router /products [get]
func listProductsHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := r.URL.Query()
		q := productQuery{Category: v.Get("category"), Q: v.Get("q")}
		if err := validate.Struct(q); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if q.Category != "" && !c.HasCategory(q.Category) {
			http.Error(w, "unknown category", http.StatusBadRequest)
			return
		}

		ps := c.Products(ProductFilter{Category: q.Category, Query: q.Q})
		out := make([]productResponse, 0, len(ps))
		for _, p := range ps {
			out = append(out, toProductResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getProductHandler godoc
// @Summary Detalle de producto
// @Tags catalog
// @Produce json
// @Param productID path int true "ID del producto"
// @Success 200 {object} productResponse
// @Failure 400 {string} string "invalid productID"
// @Failure 404 {string} string "product not found"
// @Router /products/{productID} [get]
func getProductHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid productID", http.StatusBadRequest)
			return
		}
		p, ok := c.Product(id)
		if !ok {
			http.Error(w, cart.ErrProductNotFound.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toProductResponse(p))
	}
}

// listServicesHandler godoc
// @Summary Servicios a domicilio
// @Tags catalog
// @Produce json
// @Success 200 {array} serviceResponse
// @Router /services [get]
func listServicesHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ss := c.Services()
		out := make([]serviceResponse, 0, len(ss))
		for _, s := range ss {
			out = append(out, toServiceResponse(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getServiceHandler godoc
// @Summary Detalle de servicio
// @Tags catalog
// @Produce json
// @Param serviceID path string true "ID del servicio"
// @Success 200 {object} serviceResponse
// @Failure 404 {string} string "service not found"
// @Router /services/{serviceID} [get]
func getServiceHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := c.Service(chi.URLParam(r, "serviceID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toServiceResponse(s))
	}
}

// listTimeSlotsHandler godoc
// @Summary Horarios disponibles para servicios
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /time-slots [get]
func listTimeSlotsHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, c.TimeSlots())
	}
}

// bookServiceHandler godoc
// @Summary Reservar servicio a domicilio
// @Description Crea un booking y una visita a domicilio en estado upcoming. Sin pet_id usa la primera mascota; sin address usa la del perfil.
// @Tags catalog
// @Accept json
// @Produce json
// @Param serviceID path string true "ID del servicio"
// @Param payload body bookServiceRequest true "Fecha (YYYY-MM-DD) y horario"
// @Success 201 {object} session.HomeServiceResponse
// @Failure 400 {string} string "invalid json / validation failed / time slot not available"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "service not found / pet not found"
// @Router /services/{serviceID}/book [post]
func bookServiceHandler(b *Booker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bookServiceRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		date, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		h, err := b.Book(r.Context(), BookInput{
			ServiceID: chi.URLParam(r, "serviceID"),
			PetID:     req.PetID,
			Date:      date,
			Time:      req.Time,
			Address:   req.Address,
			Notes:     req.Notes,
		})
		switch {
		case errors.Is(err, ErrNotLoggedIn):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		case errors.Is(err, ErrServiceNotFound), errors.Is(err, ErrPetNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		case errors.Is(err, ErrInvalidSlot):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case err != nil && h.ID == "":
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, session.ToHomeServiceResponse(h))
	}
}

// listDoctorsHandler godoc
// @Summary Doctores para consulta online
// @Tags catalog
// @Produce json
// @Success 200 {array} doctorResponse
// @Router /doctors [get]
func listDoctorsHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ds := c.Doctors()
		out := make([]doctorResponse, 0, len(ds))
		for _, d := range ds {
			out = append(out, toDoctorResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getDoctorHandler godoc
// @Summary Detalle de doctor
// @Tags catalog
// @Produce json
// @Param doctorID path int true "ID del doctor"
// @Success 200 {object} doctorResponse
// @Failure 400 {string} string "invalid doctorID"
// @Failure 404 {string} string "doctor not found"
// @Router /doctors/{doctorID} [get]
func getDoctorHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "doctorID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid doctorID", http.StatusBadRequest)
			return
		}
		d, err := c.Doctor(id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toDoctorResponse(d))
	}
}

func toProductResponse(p Product) productResponse {
	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		PriceValue:    cart.ParsePrice(p.Price),
		OriginalPrice: p.OriginalPrice,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Image:         p.Image,
		Discount:      p.Discount,
		InStock:       p.InStock,
	}
}

func toServiceResponse(s HomeService) serviceResponse {
	return serviceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		PriceValue:  cart.ParsePrice(s.Price),
		Duration:    s.Duration,
		Image:       s.Image,
		Includes:    s.Includes,
		Type:        s.Type,
	}
}

func toDoctorResponse(d Doctor) doctorResponse {
	return doctorResponse{
		ID:           d.ID,
		Name:         d.Name,
		Specialty:    d.Specialty,
		Experience:   d.Experience,
		Rating:       d.Rating,
		Price:        d.Price,
		Image:        d.Image,
		Status:       d.Status,
		ResponseTime: d.ResponseTime,
	}
}

// writeJSON duplicado a propósito (ver session).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
