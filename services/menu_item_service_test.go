package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Vitnet1814/qrmenu-sub000/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMenuItemService_CreateValidation(t *testing.T) {
	_, svc, rest, _ := newCategoryFixture()
	ctx := context.Background()

	cases := []struct {
		name string
		item entity.MenuItem
	}{
		{"missing name", entity.MenuItem{CategoryID: primitive.NewObjectID(), Price: 10}},
		{"missing category", entity.MenuItem{Name: "Soup", Price: 10}},
		{"negative price", entity.MenuItem{Name: "Soup", CategoryID: primitive.NewObjectID(), Price: -1}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, rest.ID, tc.item); !errors.Is(err, entity.ErrInvalidInput) {
			t.Errorf("%s: expected invalid input, got %v", tc.name, err)
		}
	}
}

func TestMenuItemService_ListByCategoryFilters(t *testing.T) {
	catSvc, itemSvc, rest, _ := newCategoryFixture()
	ctx := context.Background()

	catA, _ := catSvc.Create(ctx, rest.ID, entity.Category{Name: "A"})
	catB, _ := catSvc.Create(ctx, rest.ID, entity.Category{Name: "B"})

	itemSvc.Create(ctx, rest.ID, entity.MenuItem{Name: "a1", CategoryID: catA.ID, Price: 1})
	itemSvc.Create(ctx, rest.ID, entity.MenuItem{Name: "b1", CategoryID: catB.ID, Price: 2})
	itemSvc.Create(ctx, rest.ID, entity.MenuItem{Name: "a2", CategoryID: catA.ID, Price: 3})

	recs, err := itemSvc.ListByCategory(ctx, rest.ID, catA.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 items, got %d", len(recs))
	}
	for _, rec := range recs {
		item := rec.Data.(entity.MenuItem)
		if item.CategoryID != catA.ID {
			t.Errorf("item %q belongs to the wrong category", item.Name)
		}
	}
}

func TestMenuItemService_OrderIsPerType(t *testing.T) {
	catSvc, itemSvc, rest, _ := newCategoryFixture()
	ctx := context.Background()

	// two categories first; item ordering must start at 1 regardless
	catSvc.Create(ctx, rest.ID, entity.Category{Name: "A"})
	cat, _ := catSvc.Create(ctx, rest.ID, entity.Category{Name: "B"})

	item, err := itemSvc.Create(ctx, rest.ID, entity.MenuItem{Name: "first", CategoryID: cat.ID, Price: 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Order != 1 {
		t.Errorf("expected order 1 for first menu item, got %d", item.Order)
	}
}

func TestMenuItemService_DeleteMissing(t *testing.T) {
	_, svc, rest, _ := newCategoryFixture()

	err := svc.Delete(context.Background(), rest.ID, primitive.NewObjectID())
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMenuItemService_ReorderMove(t *testing.T) {
	catSvc, itemSvc, rest, _ := newCategoryFixture()
	ctx := context.Background()

	cat, _ := catSvc.Create(ctx, rest.ID, entity.Category{Name: "A"})
	itemSvc.Create(ctx, rest.ID, entity.MenuItem{Name: "x", CategoryID: cat.ID, Price: 1})
	y, _ := itemSvc.Create(ctx, rest.ID, entity.MenuItem{Name: "y", CategoryID: cat.ID, Price: 2})

	result, err := itemSvc.Reorder(ctx, rest.ID, ReorderRequest{ID: y.ID, Direction: "up"})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if result.Modified != result.Expected {
		t.Errorf("modified %d != expected %d", result.Modified, result.Expected)
	}

	recs, _ := itemSvc.ListAll(ctx, rest.ID)
	if recs[0].Data.(entity.MenuItem).Name != "y" {
		t.Errorf("expected y first after move, got %q", recs[0].Data.(entity.MenuItem).Name)
	}
}
