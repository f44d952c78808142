package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Vitnet1814/qrmenu-sub000/entity"
)

func newCategoryFixture() (*CategoryService, *MenuItemService, *entity.Restaurant, *fakeResolver) {
	registry := &fakeRegistry{}
	resolver := newFakeResolver(registry)
	rest := newTestRestaurant(registry, "Test Cafe", "test-cafe")
	return NewCategoryService(resolver), NewMenuItemService(resolver), rest, resolver
}

func TestCategoryService_CreateAppendsToSequence(t *testing.T) {
	ctx := context.Background()
	svc, _, rest, _ := newCategoryFixture()

	first, err := svc.Create(ctx, rest.ID, entity.Category{Name: "Starters", Description: "cold and hot"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Order != 1 {
		t.Errorf("first category: expected order 1, got %d", first.Order)
	}

	second, err := svc.Create(ctx, rest.ID, entity.Category{Name: "Mains"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.Order != 2 {
		t.Errorf("second category: expected order 2, got %d", second.Order)
	}

	got, err := svc.Get(ctx, rest.ID, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	cat := got.Data.(entity.Category)
	if cat.Name != "Starters" || cat.Description != "cold and hot" {
		t.Errorf("round trip lost fields: %+v", cat)
	}
}

func TestCategoryService_CreateRequiresName(t *testing.T) {
	svc, _, rest, _ := newCategoryFixture()

	_, err := svc.Create(context.Background(), rest.ID, entity.Category{})
	if !errors.Is(err, entity.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestCategoryService_DeleteCascadesOnlyItsItems(t *testing.T) {
	ctx := context.Background()
	catSvc, itemSvc, rest, _ := newCategoryFixture()

	catA, _ := catSvc.Create(ctx, rest.ID, entity.Category{Name: "A"})
	catB, _ := catSvc.Create(ctx, rest.ID, entity.Category{Name: "B"})

	mustCreateItem := func(name string, cat *entity.TenantRecord) {
		t.Helper()
		if _, err := itemSvc.Create(ctx, rest.ID, entity.MenuItem{Name: name, CategoryID: cat.ID, Price: 100}); err != nil {
			t.Fatalf("create item %q: %v", name, err)
		}
	}
	mustCreateItem("x", catA)
	mustCreateItem("y", catA)
	mustCreateItem("z", catB)

	deleted, err := catSvc.Delete(ctx, rest.ID, catA.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 cascaded items, got %d", deleted)
	}

	remaining, err := itemSvc.ListAll(ctx, rest.ID)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 surviving item, got %d", len(remaining))
	}
	if item := remaining[0].Data.(entity.MenuItem); item.Name != "z" {
		t.Errorf("wrong survivor: %q", item.Name)
	}

	if _, err := catSvc.List(ctx, rest.ID); err != nil {
		t.Fatalf("list categories: %v", err)
	}
}

func TestCategoryService_DeleteMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, rest, _ := newCategoryFixture()

	cat, _ := svc.Create(ctx, rest.ID, entity.Category{Name: "A"})
	if _, err := svc.Delete(ctx, rest.ID, cat.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if _, err := svc.Delete(ctx, rest.ID, cat.ID); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("second delete: expected not found, got %v", err)
	}
}

func TestCategoryService_UpdateKeepsOrder(t *testing.T) {
	ctx := context.Background()
	svc, _, rest, _ := newCategoryFixture()

	cat, _ := svc.Create(ctx, rest.ID, entity.Category{Name: "Old"})
	modified, err := svc.Update(ctx, rest.ID, cat.ID, entity.Category{Name: "New"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if modified != 1 {
		t.Errorf("expected 1 modified, got %d", modified)
	}

	got, _ := svc.Get(ctx, rest.ID, cat.ID)
	if got.Data.(entity.Category).Name != "New" {
		t.Errorf("update not applied: %+v", got.Data)
	}
	if got.Order != cat.Order {
		t.Errorf("update must not touch order: %d -> %d", cat.Order, got.Order)
	}
}

func TestCategoryService_ReorderThroughResolver(t *testing.T) {
	ctx := context.Background()
	svc, _, rest, _ := newCategoryFixture()

	a, _ := svc.Create(ctx, rest.ID, entity.Category{Name: "a"})
	svc.Create(ctx, rest.ID, entity.Category{Name: "b"})
	svc.Create(ctx, rest.ID, entity.Category{Name: "c"})

	result, err := svc.Reorder(ctx, rest.ID, ReorderRequest{ID: a.ID, Direction: "down"})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if !result.Moved {
		t.Fatal("expected the move to apply")
	}

	recs, _ := svc.List(ctx, rest.ID)
	want := []string{"b", "a", "c"}
	for i, rec := range recs {
		if rec.Data.(entity.Category).Name != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], rec.Data.(entity.Category).Name)
		}
	}
}

func TestCategoryService_UnknownRestaurant(t *testing.T) {
	registry := &fakeRegistry{}
	svc := NewCategoryService(newFakeResolver(registry))

	_, err := svc.List(context.Background(), newTestRestaurant(&fakeRegistry{}, "Other", "other").ID)
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
