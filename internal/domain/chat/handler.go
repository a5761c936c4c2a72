package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"petcare-marketplace/internal/domain/session"
	"petcare-marketplace/internal/middleware"
	"petcare-marketplace/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, sessions middleware.SessionChecker) {
	r.Route("/chat", func(cr chi.Router) {
		cr.Use(middleware.RequireLogin(sessions))

		cr.Post("/", startHandler(svc))
		cr.Get("/{chatID}", getHandler(svc))
		cr.Post("/{chatID}/messages", sendHandler(svc))
		cr.Post("/{chatID}/finish", finishHandler(svc))
	})
}

// doctor_id (catálogo) o doctor_name (libre); con doctor_id se ignoran nombre, foto y precio.
type startRequest struct {
	DoctorID         int64                    `json:"doctor_id" validate:"omitempty,gt=0"`
	DoctorName       string                   `json:"doctor_name" validate:"required_without=DoctorID"`
	DoctorImage      string                   `json:"doctor_image"`
	PetID            string                   `json:"pet_id"`
	PetName          string                   `json:"pet_name"`
	ConsultationType session.ConsultationType `json:"consultation_type" validate:"omitempty,oneof=general emergency follow-up specialist"`
	Price            int64                    `json:"price" validate:"gte=0"`
}

type sendRequest struct {
	Message string `json:"message" validate:"required"`
}

type messageResponse struct {
	ID        string              `json:"id"`
	Sender    session.Sender      `json:"sender"`
	Message   string              `json:"message"`
	Timestamp time.Time           `json:"timestamp"`
	Type      session.MessageKind `json:"type"`
}

type conversationResponse struct {
	ID               string                   `json:"id"`
	DoctorName       string                   `json:"doctor_name"`
	DoctorImage      string                   `json:"doctor_image,omitempty"`
	PetName          string                   `json:"pet_name"`
	ConsultationType session.ConsultationType `json:"consultation_type"`
	StartedAt        time.Time                `json:"started_at"`
	Typing           bool                     `json:"typing"` // hay respuestas pendientes
	Messages         []messageResponse        `json:"messages"`
}

type finishResponse struct {
	HistoryID      string `json:"history_id"`
	ConsultationID string `json:"consultation_id"`
	Duration       int    `json:"duration"`
	Messages       int    `json:"messages"`
}

// startHandler godoc
// @Summary Iniciar chat con doctor
// @Description Abre una conversación simulada con mensaje de sistema y saludo del doctor, y registra una reserva "Konsultasi Online" en estado upcoming.
// @Tags chat
// @Accept json
// @Produce json
// @Param payload body startRequest true "Doctor y mascota"
// @Success 201 {object} conversationResponse
// @Failure 400 {string} string "invalid json / validation failed"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "doctor not found / pet not found"
// @Router /chat [post]
func startHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req startRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		c, err := svc.Start(r.Context(), StartInput{
			DoctorID:         req.DoctorID,
			DoctorName:       req.DoctorName,
			DoctorImage:      req.DoctorImage,
			PetID:            req.PetID,
			PetName:          req.PetName,
			ConsultationType: req.ConsultationType,
			Price:            req.Price,
		})
		switch {
		case errors.Is(err, ErrNotLoggedIn):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		case errors.Is(err, ErrUnknownDoctor), errors.Is(err, ErrUnknownPet):
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		case err != nil:
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toConversationResponse(c))
	}
}

// getHandler godoc
// @Summary Ver conversación
// @Tags chat
// @Produce json
// @Param chatID path string true "ID de la conversación"
// @Success 200 {object} conversationResponse
// @Failure 404 {string} string "conversation not found"
// @Router /chat/{chatID} [get]
func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := svc.Get(chi.URLParam(r, "chatID"))
		if !ok {
			http.Error(w, ErrNotFound.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toConversationResponse(c))
	}
}

// sendHandler godoc
// @Summary Enviar mensaje al doctor
// @Description Devuelve el mensaje del usuario de inmediato; la respuesta del doctor llega después (consultar GET /chat/{chatID}).
// @Tags chat
// @Accept json
// @Produce json
// @Param chatID path string true "ID de la conversación"
// @Param payload body sendRequest true "Mensaje"
// @Success 202 {object} messageResponse
// @Failure 400 {string} string "invalid json / message is empty"
// @Failure 404 {string} string "conversation not found"
// @Failure 409 {string} string "conversation is closed"
// @Router /chat/{chatID}/messages [post]
func sendHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := svc.Get(chi.URLParam(r, "chatID"))
		if !ok {
			http.Error(w, ErrNotFound.Error(), http.StatusNotFound)
			return
		}

		var req sendRequest
		if err := validate.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		m, err := c.Send(req.Message)
		switch {
		case errors.Is(err, ErrEmptyMessage):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, ErrClosed):
			http.Error(w, err.Error(), http.StatusConflict)
			return
		case err != nil:
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusAccepted, toMessageResponse(m))
	}
}

// finishHandler godoc
// @Summary Terminar consulta
// @Description Cierra la conversación (descarta respuestas pendientes) y la guarda en el historial de consultas.
// @Tags chat
// @Produce json
// @Param chatID path string true "ID de la conversación"
// @Success 201 {object} finishResponse
// @Failure 404 {string} string "conversation not found"
// @Router /chat/{chatID}/finish [post]
func finishHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := svc.Finish(r.Context(), chi.URLParam(r, "chatID"))
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		case errors.Is(err, ErrNotLoggedIn):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		case err != nil && h.ID == "":
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, finishResponse{
			HistoryID:      h.ID,
			ConsultationID: h.ConsultationID,
			Duration:       h.Duration,
			Messages:       len(h.Messages),
		})
	}
}

func toMessageResponse(m session.ChatMessage) messageResponse {
	return messageResponse{ID: m.ID, Sender: m.Sender, Message: m.Text, Timestamp: m.Timestamp, Type: m.Kind}
}

func toConversationResponse(c *Conversation) conversationResponse {
	msgs := c.Messages()
	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageResponse(m))
	}
	return conversationResponse{
		ID:               c.ID,
		DoctorName:       c.DoctorName,
		DoctorImage:      c.DoctorImage,
		PetName:          c.PetName,
		ConsultationType: c.ConsultationType,
		StartedAt:        c.StartedAt,
		Typing:           c.Pending() > 0,
		Messages:         out,
	}
}

// writeJSON duplicado a propósito (ver session).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
