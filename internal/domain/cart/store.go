package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"petcare-marketplace/internal/platform/logger"
	"petcare-marketplace/internal/ports/kv"
)

// Store es el carrito. Es independiente de la sesión: existe antes del login y
// sobrevive al logout. Cada mutación reescribe la colección completa en kv.
type Store struct {
	mu    sync.Mutex
	kv    kv.Store
	log   logger.Logger
	items []Item
}

// NewStore hidrata desde kv. Clave ausente = carrito vacío.
func NewStore(ctx context.Context, store kv.Store, log logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{
		kv:  store,
		log: log.With(map[string]any{"store": "cart"}),
	}

	raw, ok, err := store.Get(ctx, kv.KeyCart)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", kv.KeyCart, err)
	}
	if ok {
		var items []Item
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, fmt.Errorf("decode %s: %w", kv.KeyCart, err)
		}
		if len(items) > 0 {
			s.items = items
		}
	}
	return s, nil
}

// AddToCart suma 1 si el producto ya está; si no, crea la línea con cantidad 1
// y seleccionada.
func (s *Store) AddToCart(ctx context.Context, p Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID); i >= 0 {
		s.items[i].Quantity++
		return s.persist(ctx)
	}

	s.items = append(s.items, Item{
		ID:            p.ID,
		Name:          p.Name,
		Price:         ParsePrice(p.Price),
		OriginalPrice: parseOptionalPrice(p.OriginalPrice),
		Image:         p.Image,
		Category:      p.Category,
		Quantity:      1,
		Selected:      true,
	})
	return s.persist(ctx)
}

func (s *Store) RemoveFromCart(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(ctx, id)
}

// UpdateQuantity con quantity <= 0 elimina la línea. Sin tope superior.
func (s *Store) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.remove(ctx, id)
	}
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.items[i].Quantity = quantity
	return s.persist(ctx)
}

func (s *Store) ToggleSelection(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.items[i].Selected = !s.items[i].Selected
	return s.persist(ctx)
}

func (s *Store) SelectAll(ctx context.Context, selected bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].Selected = selected
	}
	return s.persist(ctx)
}

func (s *Store) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persist(ctx)
}

// RemovePurchased descuenta del carrito exactamente lo comprado: por cada línea
// de bought resta su cantidad y quita la línea si llega a 0. Lo que se agregó o
// seleccionó después de armar la orden queda en el carrito.
func (s *Store) RemovePurchased(ctx context.Context, bought []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for _, b := range bought {
		i := s.indexOf(b.ID)
		if i < 0 || b.Quantity <= 0 {
			continue
		}
		changed = true
		if s.items[i].Quantity > b.Quantity {
			s.items[i].Quantity -= b.Quantity
			continue
		}
		s.items = append(s.items[:i:i], s.items[i+1:]...)
	}
	if !changed {
		return nil
	}
	if len(s.items) == 0 {
		s.items = nil
	}
	return s.persist(ctx)
}

// -------------------------
// Lecturas
// -------------------------

func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(Item) bool { return true })
}

// TotalItems suma cantidades, no líneas.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice ignora la selección.
func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sum(s.items, func(Item) bool { return true })
}

// SelectedItems conserva el orden del carrito.
func (s *Store) SelectedItems() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(it Item) bool { return it.Selected })
}

func (s *Store) SelectedTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sum(s.items, func(it Item) bool { return it.Selected })
}

// -------------------------
// Internos (con mu tomado)
// -------------------------

func (s *Store) indexOf(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) remove(ctx context.Context, id int64) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	if len(s.items) == 0 {
		s.items = nil
	}
	return s.persist(ctx)
}

func (s *Store) filter(keep func(Item) bool) []Item {
	var out []Item
	for _, it := range s.items {
		if keep(it) {
			out = append(out, it.clone())
		}
	}
	return out
}

func sum(items []Item, keep func(Item) bool) int64 {
	var total int64
	for _, it := range items {
		if keep(it) {
			total += it.Subtotal()
		}
	}
	return total
}

func (s *Store) persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []Item{}
	}
	b, err := json.Marshal(items)
	if err == nil {
		err = s.kv.Set(ctx, kv.KeyCart, string(b))
	}
	if err != nil {
		s.log.Error("persist failed", map[string]any{"key": kv.KeyCart, "err": err})
		return fmt.Errorf("persist %s: %w", kv.KeyCart, err)
	}
	return nil
}
