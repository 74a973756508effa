package app

import (
	"context"
	"strconv"
	"testing"

	"github.com/dwikikusuma/storefront-llm/internal/assistant/domain"
	"github.com/dwikikusuma/storefront-llm/pkg/logger"
)

type fakeCatalog []Product

func (f fakeCatalog) Resolve(selector string) (Product, bool) {
	for i, p := range f {
		if strconv.Itoa(i) == selector {
			return p, true
		}
	}
	for _, p := range f {
		if p.Name == selector {
			return p, true
		}
	}
	return Product{}, false
}

type fakeCart struct {
	added []Product
}

func (f *fakeCart) AddToCart(_ context.Context, p Product) {
	f.added = append(f.added, p)
}

type fakeToaster struct {
	successes []string
	errors    []string
}

func (f *fakeToaster) Success(message string) { f.successes = append(f.successes, message) }
func (f *fakeToaster) Error(message string)   { f.errors = append(f.errors, message) }

func newTestDispatcher(t *testing.T, catalog fakeCatalog) (*Dispatcher, *fakeCart, *fakeToaster) {
	t.Helper()
	cart := &fakeCart{}
	toasts := &fakeToaster{}
	return NewDispatcher(logger.Discard(), catalog, cart, toasts), cart, toasts
}

func TestDispatchCartAdd(t *testing.T) {
	ctx := context.Background()
	catalog := fakeCatalog{
		{Name: "Desk Lamp", Price: "$9.99"},
		{Name: "Mug", Price: "$4.50"},
	}

	t.Run("by name", func(t *testing.T) {
		d, cart, toasts := newTestDispatcher(t, catalog)

		d.Dispatch(ctx, domain.Action{Type: domain.TypeCartAdd, SelectedProductID: "Mug"})

		if len(cart.added) != 1 || cart.added[0].Name != "Mug" {
			t.Fatalf("unexpected cart writes: %+v", cart.added)
		}
		if len(toasts.successes) != 1 || toasts.successes[0] != "Mug added to cart" {
			t.Fatalf("unexpected toasts: %+v", toasts.successes)
		}
		if len(toasts.errors) != 0 {
			t.Fatalf("unexpected error toasts: %+v", toasts.errors)
		}
	})

	t.Run("by index string", func(t *testing.T) {
		d, cart, _ := newTestDispatcher(t, catalog)

		d.Dispatch(ctx, domain.Action{Type: domain.TypeCartAdd, SelectedProductID: "0"})

		if len(cart.added) != 1 || cart.added[0].Name != "Desk Lamp" {
			t.Fatalf("unexpected cart writes: %+v", cart.added)
		}
	})

	t.Run("unresolvable selector", func(t *testing.T) {
		d, cart, toasts := newTestDispatcher(t, catalog)

		d.Dispatch(ctx, domain.Action{Type: domain.TypeCartAdd, SelectedProductID: "Spoon"})

		if len(cart.added) != 0 {
			t.Fatalf("cart must stay untouched, got %+v", cart.added)
		}
		if len(toasts.errors) != 1 || toasts.errors[0] != "Product not found" {
			t.Fatalf("expected exactly one error toast, got %+v", toasts.errors)
		}
		if len(toasts.successes) != 0 {
			t.Fatalf("unexpected success toasts: %+v", toasts.successes)
		}
	})
}

func TestDispatchIndexBeatsCollidingName(t *testing.T) {
	ctx := context.Background()
	d, cart, _ := newTestDispatcher(t, fakeCatalog{
		{Name: "1", Price: "$1.00"},
		{Name: "Mug", Price: "$4.50"},
	})

	d.Dispatch(ctx, domain.Action{Type: domain.TypeCartAdd, SelectedProductID: "1"})

	if len(cart.added) != 1 || cart.added[0].Name != "Mug" {
		t.Fatalf("index match must win, got %+v", cart.added)
	}
}

func TestDispatchUnknownTypeIsInert(t *testing.T) {
	ctx := context.Background()
	d, cart, toasts := newTestDispatcher(t, fakeCatalog{{Name: "Mug"}})

	d.Dispatch(ctx, domain.Action{Type: "theme.set", SelectedProductID: "Mug"})

	if len(cart.added) != 0 || len(toasts.successes) != 0 || len(toasts.errors) != 0 {
		t.Fatalf("unknown action must have no effect: %+v %+v %+v",
			cart.added, toasts.successes, toasts.errors)
	}
}

func TestRegisterExtendsDispatch(t *testing.T) {
	ctx := context.Background()
	d, _, _ := newTestDispatcher(t, fakeCatalog{})

	var got domain.Action
	d.Register("cart.clear", func(_ context.Context, action domain.Action) {
		got = action
	})

	d.Dispatch(ctx, domain.Action{Type: "cart.clear"})
	if got.Type != "cart.clear" {
		t.Fatalf("registered handler not invoked, got %+v", got)
	}
}

func TestNewDispatcherRejectsNilCapabilities(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil capability")
		}
	}()
	NewDispatcher(logger.Discard(), nil, &fakeCart{}, &fakeToaster{})
}
