package services

import (
	"context"
	"fmt"

	"github.com/Vitnet1814/qrmenu-sub000/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReorderRequest carries either the client-computed full renumbering
// (Items) or a single-step move (ID + Direction) computed server-side.
type ReorderRequest struct {
	Items     []entity.OrderUpdate `json:"items,omitempty"`
	ID        primitive.ObjectID   `json:"id,omitempty"`
	Direction string               `json:"direction,omitempty"`
}

type ReorderResult struct {
	Expected int64 `json:"expected"`
	Modified int64 `json:"modified"`
	Moved    bool  `json:"moved"`
}

// reorderRecords persists a new sibling ordering for one record type.
// A move past either end of the sequence is a silent no-op.
func reorderRecords(ctx context.Context, store TenantStore, t entity.RecordType, req ReorderRequest) (*ReorderResult, error) {
	if len(req.Items) > 0 {
		modified, err := store.UpdateOrder(ctx, req.Items)
		if err != nil {
			return nil, err
		}
		return &ReorderResult{Expected: int64(len(req.Items)), Modified: modified, Moved: true}, nil
	}

	if req.ID.IsZero() || req.Direction == "" {
		return nil, fmt.Errorf("reorder needs items or id+direction: %w", entity.ErrInvalidInput)
	}

	recs, err := store.GetByType(ctx, t)
	if err != nil {
		return nil, err
	}

	moved, swapped, err := moveRecord(recs, req.ID, req.Direction)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return &ReorderResult{}, nil
	}

	updates := renumber(moved)
	modified, err := store.UpdateOrder(ctx, updates)
	if err != nil {
		return nil, err
	}
	return &ReorderResult{Expected: int64(len(updates)), Modified: modified, Moved: true}, nil
}

// moveRecord swaps the record with its immediate neighbor in the given
// direction. It returns the new sequence and whether a swap happened;
// moving past either end leaves the sequence untouched.
func moveRecord(recs []entity.TenantRecord, id primitive.ObjectID, direction string) ([]entity.TenantRecord, bool, error) {
	var delta int
	switch direction {
	case "left", "up":
		delta = -1
	case "right", "down":
		delta = 1
	default:
		return nil, false, fmt.Errorf("direction %q: %w", direction, entity.ErrInvalidInput)
	}

	idx := -1
	for i, rec := range recs {
		if rec.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false, fmt.Errorf("record %s: %w", id.Hex(), entity.ErrNotFound)
	}

	j := idx + delta
	if j < 0 || j >= len(recs) {
		return recs, false, nil
	}

	out := make([]entity.TenantRecord, len(recs))
	copy(out, recs)
	out[idx], out[j] = out[j], out[idx]
	return out, true, nil
}

// renumber assigns order 1..N to the whole sequence. Renumbering
// everything after each move keeps the sequence contiguous even when an
// earlier partial batch failure left gaps or duplicates behind.
func renumber(recs []entity.TenantRecord) []entity.OrderUpdate {
	updates := make([]entity.OrderUpdate, len(recs))
	for i, rec := range recs {
		updates[i] = entity.OrderUpdate{ID: rec.ID, Order: i + 1}
	}
	return updates
}
