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

const showsCollection = "shows"

type MongoShowRepository struct {
	coll *mongo.Collection
}

func NewShowRepository(db *mongo.Database) *MongoShowRepository {
	return &MongoShowRepository{coll: db.Collection(showsCollection)}
}

type mongoShow struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ShowDate        string             `bson:"showdate"`
	ShowTime        string             `bson:"showtime"`
	ShowDescription string             `bson:"showdescription"`
	Location        string             `bson:"location"`
	BandsPlaying    []string           `bson:"bandsplaying"`
	TicketPrice     float64            `bson:"ticketprice"`
	UserID          string             `bson:"user_id"`
	CreatedAt       int64              `bson:"created_at"`
}

func toMongoShow(s *domain.Show) mongoShow {
	return mongoShow{
		ShowDate:        s.ShowDate,
		ShowTime:        s.ShowTime,
		ShowDescription: s.ShowDescription,
		Location:        s.Location,
		BandsPlaying:    s.BandsPlaying,
		TicketPrice:     s.TicketPrice,
		UserID:          s.UserID,
		CreatedAt:       s.CreatedAt.Unix(),
	}
}

func (ms mongoShow) toDomain() *domain.Show {
	return &domain.Show{
		ID:              ms.ID.Hex(),
		ShowDate:        ms.ShowDate,
		ShowTime:        ms.ShowTime,
		ShowDescription: ms.ShowDescription,
		Location:        ms.Location,
		BandsPlaying:    ms.BandsPlaying,
		TicketPrice:     ms.TicketPrice,
		UserID:          ms.UserID,
		CreatedAt:       unixToTime(ms.CreatedAt),
	}
}

func (r *MongoShowRepository) Insert(ctx context.Context, s *domain.Show) (*domain.Show, error) {
	res, err := r.coll.InsertOne(ctx, toMongoShow(s))
	if err != nil {
		return nil, fmt.Errorf("insert show: %w", err)
	}

	created := *s
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoShowRepository) FindByID(ctx context.Context, id string) (*domain.Show, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrShowNotFound
	}

	var ms mongoShow
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShowNotFound
		}
		return nil, fmt.Errorf("find show: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *MongoShowRepository) List(ctx context.Context) ([]*domain.Show, error) {
	sort := bson.D{{Key: "showdate", Value: 1}, {Key: "showtime", Value: 1}}
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer cur.Close(ctx)

	var shows []*domain.Show
	for cur.Next(ctx) {
		var ms mongoShow
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode show: %w", err)
		}
		shows = append(shows, ms.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}
	return shows, nil
}

func (r *MongoShowRepository) Update(ctx context.Context, s *domain.Show) error {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return domain.ErrShowNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoShow(s))
	if err != nil {
		return fmt.Errorf("update show: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrShowNotFound
	}
	return nil
}

func (r *MongoShowRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrShowNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete show: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrShowNotFound
	}
	return nil
}
