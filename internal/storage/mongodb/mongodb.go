// Package mongodb implements the storage interfaces on top of MongoDB.
package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/lakeviewsainik/hostel-gobackend/internal/models"
	"github.com/lakeviewsainik/hostel-gobackend/internal/storage"
)

var (
	_ storage.ResidentStore = (*ResidentStore)(nil)
	_ storage.AdminStore    = (*AdminStore)(nil)
)

// Connect opens a client for the given URI and verifies the connection
// with a ping before returning.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client, nil
}

// ResidentStore is the residents collection. The resident id is the
// document _id.
type ResidentStore struct {
	collection *mongo.Collection
}

func NewResidentStore(db *mongo.Database) *ResidentStore {
	return &ResidentStore{collection: db.Collection("residents")}
}

func (s *ResidentStore) List(ctx context.Context, limit int64) ([]models.Resident, error) {
	cur, err := s.collection.Find(ctx, bson.D{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	residents := []models.Resident{}
	if err := cur.All(ctx, &residents); err != nil {
		return nil, err
	}
	return residents, nil
}

func (s *ResidentStore) Get(ctx context.Context, id string) (*models.Resident, error) {
	var resident models.Resident
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&resident)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &resident, nil
}

func (s *ResidentStore) Insert(ctx context.Context, r *models.Resident) error {
	_, err := s.collection.InsertOne(ctx, r)
	return err
}

func (s *ResidentStore) InsertMany(ctx context.Context, residents []models.Resident) error {
	docs := make([]any, len(residents))
	for i := range residents {
		docs[i] = residents[i]
	}
	_, err := s.collection.InsertMany(ctx, docs)
	return err
}

func (s *ResidentStore) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *ResidentStore) SetBills(ctx context.Context, id string, bills []models.Bill) error {
	return s.UpdateFields(ctx, id, map[string]any{"bills": bills})
}

func (s *ResidentStore) Delete(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *ResidentStore) Count(ctx context.Context) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.D{})
}

// AdminStore is the admin collection, holding a single document.
type AdminStore struct {
	collection *mongo.Collection
}

func NewAdminStore(db *mongo.Database) *AdminStore {
	return &AdminStore{collection: db.Collection("admin")}
}

func (s *AdminStore) Get(ctx context.Context) (*models.Admin, error) {
	var admin models.Admin
	err := s.collection.FindOne(ctx, bson.D{}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminStore) Insert(ctx context.Context, a *models.Admin) error {
	_, err := s.collection.InsertOne(ctx, a)
	return err
}

func (s *AdminStore) Count(ctx context.Context) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.D{})
}
