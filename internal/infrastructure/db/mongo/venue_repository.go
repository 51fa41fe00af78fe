package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
)

const venuesCollection = "venues"

type MongoVenueRepository struct {
	coll *mongo.Collection
}

func NewVenueRepository(db *mongo.Database) *MongoVenueRepository {
	return &MongoVenueRepository{coll: db.Collection(venuesCollection)}
}

type mongoVenue struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	VenueName    string             `bson:"venuename"`
	Location     string             `bson:"location"`
	Capacity     int                `bson:"capacity"`
	VenueManager string             `bson:"venuemanager"`
	UserID       string             `bson:"user_id"`
	CreatedAt    int64              `bson:"created_at"`
}

func toMongoVenue(v *domain.Venue) mongoVenue {
	return mongoVenue{
		VenueName:    v.VenueName,
		Location:     v.Location,
		Capacity:     v.Capacity,
		VenueManager: v.VenueManager,
		UserID:       v.UserID,
		CreatedAt:    v.CreatedAt.Unix(),
	}
}

func (mv mongoVenue) toDomain() *domain.Venue {
	return &domain.Venue{
		ID:           mv.ID.Hex(),
		VenueName:    mv.VenueName,
		Location:     mv.Location,
		Capacity:     mv.Capacity,
		VenueManager: mv.VenueManager,
		UserID:       mv.UserID,
		CreatedAt:    unixToTime(mv.CreatedAt),
	}
}

func (r *MongoVenueRepository) Insert(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	res, err := r.coll.InsertOne(ctx, toMongoVenue(v))
	if err != nil {
		return nil, fmt.Errorf("insert venue: %w", err)
	}

	created := *v
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoVenueRepository) FindByID(ctx context.Context, id string) (*domain.Venue, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrVenueNotFound
	}

	var mv mongoVenue
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("find venue: %w", err)
	}
	return mv.toDomain(), nil
}

func (r *MongoVenueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "venuename", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer cur.Close(ctx)

	var venues []*domain.Venue
	for cur.Next(ctx) {
		var mv mongoVenue
		if err := cur.Decode(&mv); err != nil {
			return nil, fmt.Errorf("decode venue: %w", err)
		}
		venues = append(venues, mv.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}
	return venues, nil
}

func (r *MongoVenueRepository) Update(ctx context.Context, v *domain.Venue) error {
	oid, err := primitive.ObjectIDFromHex(v.ID)
	if err != nil {
		return domain.ErrVenueNotFound
	}

	doc := toMongoVenue(v)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update venue: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrVenueNotFound
	}
	return nil
}

func (r *MongoVenueRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrVenueNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVenueNotFound
	}
	return nil
}
