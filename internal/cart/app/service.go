package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dwikikusuma/storefront-llm/internal/cart/domain"
)

// StorageKey is the versioned slot cart snapshots live under. An
// incompatible future shape gets a new key, not migration logic.
const StorageKey = "cart:items:v1"

// Service owns the authoritative cart state. Every mutation happens under
// one lock as a single read-modify-write step and is followed by a best
// effort snapshot write; memory stays authoritative whether or not the
// write lands.
type Service struct {
	log       *slog.Logger
	snapshots SnapshotStore

	mu    sync.Mutex
	items []domain.Item
}

func NewService(log *slog.Logger, snapshots SnapshotStore) *Service {
	if log == nil {
		panic("cart: nil logger")
	}
	if snapshots == nil {
		panic("cart: nil snapshot store")
	}

	s := &Service{
		log:       log,
		snapshots: snapshots,
	}
	s.rehydrate()
	return s
}

// rehydrate loads the persisted snapshot. A missing, unreadable or
// malformed slot means a fresh empty cart; initialization never fails.
func (s *Service) rehydrate() {
	raw, err := s.snapshots.Get(context.Background(), StorageKey)
	if err != nil {
		return
	}

	var items []domain.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Debug("discarding unreadable cart snapshot", slog.Any("err", err))
		return
	}

	s.items = items
}

// AddToCart merges by product name: an existing item keeps its id and
// position and gains quantity 1, a new product is appended with a fresh id.
func (s *Service) AddToCart(ctx context.Context, p domain.Product) domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Name == p.Name {
			s.items[i].Quantity++
			s.persist(ctx)
			return s.items[i]
		}
	}

	item := domain.Item{
		Product:  p,
		ID:       p.Name + "-" + uuid.NewString(),
		Quantity: 1,
	}
	s.items = append(s.items, item)
	s.persist(ctx)
	return item
}

// RemoveFromCart drops the item with the given id. Unknown ids are a no-op.
func (s *Service) RemoveFromCart(ctx context.Context, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(ctx, itemID)
}

// UpdateQuantity sets an item's quantity. Zero or below removes the item;
// unknown ids are a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, itemID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(ctx, itemID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

func (s *Service) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// Items returns the cart lines in insertion order.
func (s *Service) Items() []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Item, len(s.items))
	copy(out, s.items)
	return out
}

// TotalPrice sums price times quantity over all items in cents and renders
// it with two decimals. Unparseable prices contribute nothing.
func (s *Service) TotalPrice() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, item := range s.items {
		if cents, ok := domain.ParseAmount(item.Price); ok {
			total += cents * int64(item.Quantity)
		}
	}
	return domain.FormatAmount(total)
}

// TotalItems sums quantities across all items.
func (s *Service) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

func (s *Service) removeLocked(ctx context.Context, itemID string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persist(ctx)
}

// persist writes the full snapshot. Failures are swallowed: the in-memory
// cart stays authoritative for the session either way. Callers hold mu.
func (s *Service) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []domain.Item{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		s.log.Debug("cart snapshot marshal failed", slog.Any("err", err))
		return
	}

	if err := s.snapshots.Set(ctx, StorageKey, raw); err != nil {
		s.log.Debug("cart snapshot write failed", slog.Any("err", err))
	}
}
