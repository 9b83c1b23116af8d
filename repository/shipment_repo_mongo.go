package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"freightdash/filter"
	"freightdash/models"
)

const mongoDatabase = "freightdash"

type MongoShipmentRepo struct {
	DB *mongo.Client
}

func NewMongoShipmentRepo(db *mongo.Client) *MongoShipmentRepo {
	return &MongoShipmentRepo{DB: db}
}

func (r *MongoShipmentRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("shipment")
}

// List narrows on status and mode with a bson query, then runs the filter
// engine over the result.
func (r *MongoShipmentRepo) List(filters models.FilterOptions) ([]models.Shipment, error) {
	ctx := context.Background()

	query := bson.M{}
	if len(filters.ShipmentStatus) > 0 {
		query["status"] = bson.M{"$in": filters.ShipmentStatus}
	}
	if len(filters.ShipmentMode) > 0 {
		query["mode"] = bson.M{"$in": filters.ShipmentMode}
	}

	cur, err := r.collection().Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "load_number", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.Shipment
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return filter.Shipments(list, filters), nil
}

func (r *MongoShipmentRepo) GetByID(id string) (*models.Shipment, error) {
	ctx := context.Background()
	var s models.Shipment
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, ErrShipmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MongoShipmentRepo) Create(s *models.Shipment) error {
	ctx := context.Background()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.LoadNumber == 0 {
		var top models.Shipment
		err := r.collection().FindOne(ctx, bson.M{},
			options.FindOne().SetSort(bson.D{{Key: "load_number", Value: -1}})).Decode(&top)
		switch err {
		case nil:
			s.LoadNumber = top.LoadNumber + 1
		case mongo.ErrNoDocuments:
			s.LoadNumber = 2024001
		default:
			return err
		}
	}
	_, err := r.collection().InsertOne(ctx, s)
	return err
}

func (r *MongoShipmentRepo) Delete(id string) error {
	ctx := context.Background()
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrShipmentNotFound
	}
	return nil
}

func (r *MongoShipmentRepo) BulkUpdateStatus(ids []string, status models.ShipmentStatus) error {
	ctx := context.Background()
	_, err := r.collection().UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"status": status}})
	return err
}

func (r *MongoShipmentRepo) UpdateDocuments(id string, docs models.Documents) error {
	ctx := context.Background()
	res, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"documents": docs}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrShipmentNotFound
	}
	return nil
}
