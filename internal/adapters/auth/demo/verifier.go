package demo

import (
	"context"

	"petcare-marketplace/internal/config"
)

// Verifier acepta exactamente un par de credenciales configurado.
// Comparación de texto plano, sin hash ni lockout: es un login de demo.
type Verifier struct {
	email    string
	password string
}

func NewVerifier(cfg config.DemoConfig) *Verifier {
	return &Verifier{email: cfg.Email, password: cfg.Password}
}

func (v *Verifier) Verify(ctx context.Context, email, password string) bool {
	if v == nil || v.email == "" {
		return false
	}
	return email == v.email && password == v.password
}
