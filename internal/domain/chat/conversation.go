package chat

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"petcare-marketplace/internal/domain/session"
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrClosed       = errors.New("conversation is closed")
)

// Conversation es el log de una consulta en curso. Las respuestas del doctor
// llegan desde goroutines de timer, en orden de finalización (que puede no
// coincidir con el orden de envío).
type Conversation struct {
	ID               string
	DoctorName       string
	DoctorImage      string
	PetName          string
	ConsultationType session.ConsultationType
	Price            int64
	StartedAt        time.Time

	mu       sync.Mutex
	messages []session.ChatMessage
	pending  map[int]*time.Timer
	seq      int
	closed   bool

	responder Responder
	delay     func() time.Duration
	now       func() time.Time
	onReply   func(session.ChatMessage) // hook para tests; nil = nada
}

// greet carga el mensaje de sistema y el saludo del doctor.
func (c *Conversation) greet(userName string) {
	doctor := fallback(c.DoctorName, "Dokter")
	pet := fallback(c.PetName, "hewan peliharaan Anda")
	now := c.now()

	c.appendLocked(session.SenderSystem, session.MessageSystem, "Konsultasi dimulai dengan "+doctor+" untuk "+pet, now)
	c.appendLocked(session.SenderDoctor, session.MessageText,
		"Halo "+userName+"! Saya "+doctor+". Apa yang bisa saya bantu dengan "+pet+" hari ini?", now)
}

// Send agrega el mensaje del usuario y programa una respuesta diferida
// independiente. No espera la respuesta.
func (c *Conversation) Send(text string) (session.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return session.ChatMessage{}, ErrEmptyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return session.ChatMessage{}, ErrClosed
	}
	m := c.appendLocked(session.SenderUser, session.MessageText, text, c.now())

	// la clave es el seq del mensaje del usuario, ya fijo antes de armar el timer
	key := c.seq
	c.pending[key] = time.AfterFunc(c.delay(), func() { c.reply(key, text) })

	return m, nil
}

func (c *Conversation) reply(key int, userText string) {
	text := c.responder.Reply(userText)

	c.mu.Lock()
	delete(c.pending, key)
	if c.closed {
		c.mu.Unlock()
		return
	}
	m := c.appendLocked(session.SenderDoctor, session.MessageText, text, c.now())
	hook := c.onReply
	c.mu.Unlock()

	if hook != nil {
		hook(m)
	}
}

// Messages devuelve una copia del log.
func (c *Conversation) Messages() []session.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]session.ChatMessage(nil), c.messages...)
}

// Pending cuenta respuestas programadas que todavía no llegaron.
func (c *Conversation) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Close frena los timers pendientes; las respuestas que no llegaron se pierden.
// Es idempotente.
func (c *Conversation) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	for key, t := range c.pending {
		t.Stop()
		delete(c.pending, key)
	}
}

func (c *Conversation) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Conversation) appendLocked(sender session.Sender, kind session.MessageKind, text string, at time.Time) session.ChatMessage {
	c.seq++
	m := session.ChatMessage{
		ID:        strconv.Itoa(c.seq),
		Sender:    sender,
		Text:      text,
		Timestamp: at,
		Kind:      kind,
	}
	c.messages = append(c.messages, m)
	return m
}

func fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
