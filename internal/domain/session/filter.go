package session

import "strings"

// HistoryFilter filtra los listados de historial.
// Status vacío o "all" acepta todo. Query compara sin distinguir mayúsculas.
type HistoryFilter struct {
	Status      string
	Query       string
	ServiceType string // solo bookings; vacío o "all" = ambos tipos
}

func (f HistoryFilter) statusOK(status string) bool {
	return f.Status == "" || f.Status == "all" || f.Status == status
}

// queryOK: alcanza con que un campo contenga el texto buscado.
func (f HistoryFilter) queryOK(fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	for _, v := range fields {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

func (f HistoryFilter) Booking(b Booking) bool {
	typeOK := f.ServiceType == "" || f.ServiceType == "all" || f.ServiceType == string(b.ServiceType)
	return typeOK && f.statusOK(string(b.Status)) && f.queryOK(b.ServiceName, b.PetName, b.DoctorName)
}

func (f HistoryFilter) Consultation(c ConsultationHistory) bool {
	return f.statusOK(string(c.Status)) && f.queryOK(c.PetName, c.DoctorName, string(c.ConsultationType))
}

func (f HistoryFilter) HomeService(h HomeServiceHistory) bool {
	return f.statusOK(string(h.Status)) && f.queryOK(h.PetName, h.ServiceName, h.DoctorName)
}

// Order busca por número de orden o por nombre de algún producto.
func (f HistoryFilter) Order(o Order) bool {
	if !f.statusOK(string(o.Status)) {
		return false
	}
	names := make([]string, 0, len(o.Items)+1)
	names = append(names, o.OrderNumber)
	for _, it := range o.Items {
		names = append(names, it.Name)
	}
	return f.queryOK(names...)
}

func filterSlice[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
