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

const bandsCollection = "bands"

type MongoBandRepository struct {
	coll *mongo.Collection
}

func NewBandRepository(db *mongo.Database) *MongoBandRepository {
	return &MongoBandRepository{coll: db.Collection(bandsCollection)}
}

type mongoBand struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	BandName        string             `bson:"bandname"`
	Hometown        string             `bson:"hometown"`
	Genre           string             `bson:"genre"`
	YearStarted     int                `bson:"yearstarted"`
	MemberNames     []string           `bson:"membernames"`
	BandPhoto       string             `bson:"bandphoto"`
	BandDescription string             `bson:"banddescription"`
	UserID          string             `bson:"user_id"`
	CreatedAt       int64              `bson:"created_at"`
}

func toMongoBand(b *domain.Band) mongoBand {
	return mongoBand{
		BandName:        b.BandName,
		Hometown:        b.Hometown,
		Genre:           b.Genre,
		YearStarted:     b.YearStarted,
		MemberNames:     b.MemberNames,
		BandPhoto:       b.BandPhoto,
		BandDescription: b.BandDescription,
		UserID:          b.UserID,
		CreatedAt:       b.CreatedAt.Unix(),
	}
}

func (mb mongoBand) toDomain() *domain.Band {
	return &domain.Band{
		ID:              mb.ID.Hex(),
		BandName:        mb.BandName,
		Hometown:        mb.Hometown,
		Genre:           mb.Genre,
		YearStarted:     mb.YearStarted,
		MemberNames:     mb.MemberNames,
		BandPhoto:       mb.BandPhoto,
		BandDescription: mb.BandDescription,
		UserID:          mb.UserID,
		CreatedAt:       unixToTime(mb.CreatedAt),
	}
}

func (r *MongoBandRepository) Insert(ctx context.Context, b *domain.Band) (*domain.Band, error) {
	res, err := r.coll.InsertOne(ctx, toMongoBand(b))
	if err != nil {
		return nil, fmt.Errorf("insert band: %w", err)
	}

	created := *b
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoBandRepository) FindByID(ctx context.Context, id string) (*domain.Band, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBandNotFound
	}

	var mb mongoBand
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBandNotFound
		}
		return nil, fmt.Errorf("find band: %w", err)
	}
	return mb.toDomain(), nil
}

func (r *MongoBandRepository) List(ctx context.Context) ([]*domain.Band, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "bandname", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list bands: %w", err)
	}
	defer cur.Close(ctx)

	var bands []*domain.Band
	for cur.Next(ctx) {
		var mb mongoBand
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode band: %w", err)
		}
		bands = append(bands, mb.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate bands: %w", err)
	}
	return bands, nil
}

func (r *MongoBandRepository) Update(ctx context.Context, b *domain.Band) error {
	oid, err := primitive.ObjectIDFromHex(b.ID)
	if err != nil {
		return domain.ErrBandNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoBand(b))
	if err != nil {
		return fmt.Errorf("update band: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBandNotFound
	}
	return nil
}

func (r *MongoBandRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBandNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete band: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBandNotFound
	}
	return nil
}
