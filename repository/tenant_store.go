package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Vitnet1814/qrmenu-sub000/entity"
	"github.com/Vitnet1814/qrmenu-sub000/prometheus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TenantStore is a generic record accessor over one restaurant's
// dynamically-named collection. An instance is built per request from a
// resolved slug and holds nothing beyond the collection handle.
type TenantStore struct {
	col *mongo.Collection
}

func NewTenantStore(db *mongo.Database, slug string) *TenantStore {
	return &TenantStore{col: db.Collection(slug)}
}

// rawRecord carries the data subdocument undecoded so the variant can be
// picked by recordType.
type rawRecord struct {
	ID         primitive.ObjectID `bson:"_id"`
	RecordType entity.RecordType  `bson:"recordType"`
	Data       bson.Raw           `bson:"data"`
	Order      int                `bson:"order"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

func (raw rawRecord) decode() (entity.TenantRecord, error) {
	data, err := entity.DecodeRecordData(raw.RecordType, raw.Data)
	if err != nil {
		return entity.TenantRecord{}, fmt.Errorf("record %s: %w", raw.ID.Hex(), err)
	}
	return entity.TenantRecord{
		ID:         raw.ID,
		RecordType: raw.RecordType,
		Data:       data,
		Order:      raw.Order,
		CreatedAt:  raw.CreatedAt,
		UpdatedAt:  raw.UpdatedAt,
	}, nil
}

// Create inserts a record, appending it to the end of its type's sequence
// when no explicit order is given.
func (s *TenantStore) Create(ctx context.Context, t entity.RecordType, data entity.RecordData, order *int) (*entity.TenantRecord, error) {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	ord := 0
	if order != nil {
		ord = *order
	} else {
		count, err := s.CountByType(ctx, t)
		if err != nil {
			return nil, err
		}
		ord = int(count) + 1
	}

	now := time.Now().UTC()
	rec := entity.TenantRecord{
		RecordType: t,
		Data:       data,
		Order:      ord,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	res, err := s.col.InsertOne(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = res.InsertedID.(primitive.ObjectID)
	return &rec, nil
}

// GetByType returns all records of a type sorted ascending by order.
func (s *TenantStore) GetByType(ctx context.Context, t entity.RecordType) ([]entity.TenantRecord, error) {
	return s.find(ctx, bson.M{"recordType": t})
}

// GetByID returns one record regardless of type.
func (s *TenantStore) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.TenantRecord, error) {
	var raw rawRecord
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("record %s: %w", id.Hex(), entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	rec, err := raw.decode()
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update replaces the data payload and bumps updatedAt. Order and
// recordType are left untouched; a missing record reports zero modified.
func (s *TenantStore) Update(ctx context.Context, id primitive.ObjectID, data entity.RecordData) (int64, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())

	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"data": data, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *TenantStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// UpdateOrder applies a batch of order reassignments as one unordered bulk
// write. Each item is an independent point-update; the batch is not atomic.
func (s *TenantStore) UpdateOrder(ctx context.Context, items []entity.OrderUpdate) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	defer prometheus.TrackDBOperation("bulk_update")(time.Now())

	now := time.Now().UTC()
	models := make([]mongo.WriteModel, 0, len(items))
	for _, it := range items {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": it.ID}).
			SetUpdate(bson.M{"$set": bson.M{"order": it.Order, "updatedAt": now}}))
	}

	res, err := s.col.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *TenantStore) CountByType(ctx context.Context, t entity.RecordType) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"recordType": t})
}

func (s *TenantStore) MenuItemsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]entity.TenantRecord, error) {
	return s.find(ctx, bson.M{
		"recordType":      entity.RecordMenuItem,
		"data.categoryId": categoryID,
	})
}

// DeleteMenuItemsByCategory is the cascade primitive used by the
// category-specific delete path; the generic Delete never cascades.
func (s *TenantStore) DeleteMenuItemsByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error) {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	res, err := s.col.DeleteMany(ctx, bson.M{
		"recordType":      entity.RecordMenuItem,
		"data.categoryId": categoryID,
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// LatestUpdate returns the most recent updatedAt among records of a type,
// or nil when none exist.
func (s *TenantStore) LatestUpdate(ctx context.Context, t entity.RecordType) (*time.Time, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	var raw rawRecord
	err := s.col.FindOne(ctx, bson.M{"recordType": t}, opts).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &raw.UpdatedAt, nil
}

func (s *TenantStore) find(ctx context.Context, filter bson.M) ([]entity.TenantRecord, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var recs []entity.TenantRecord
	for cur.Next(ctx) {
		var raw rawRecord
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		rec, err := raw.decode()
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, cur.Err()
}
