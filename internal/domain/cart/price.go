package cart

import (
	"strconv"
	"strings"
)

// ParsePrice convierte un precio formateado a entero en la unidad mínima de la
// moneda: descarta todo lo que no sea dígito y parsea el resto.
//
//	"Rp 125.000" -> 125000
//	"$1,299"     -> 1299
//	"gratis"     -> 0
//
// Los decimales no se interpretan ("12.50" -> 1250). Sin dígitos o con un
// número que no entra en int64 devuelve 0.
func ParsePrice(s string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseOptionalPrice: vacío (o solo espacios) = sin precio original.
func parseOptionalPrice(s string) *int64 {
	if !strings.ContainsAny(s, "0123456789") {
		return nil
	}
	v := ParsePrice(s)
	return &v
}
