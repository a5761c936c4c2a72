package auth

import "context"

// CredentialVerifier decide si un par email/password es válido.
// No hay proveedor de identidad real: la implementación demo compara strings.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) bool
}
