package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cornerstone/chores-api/internal/core/domain"
)

const childrenCollection = "children"

type ChildRepository struct {
	coll *mongo.Collection
}

func NewChildRepository(db *mongo.Database) *ChildRepository {
	return &ChildRepository{coll: db.Collection(childrenCollection)}
}

type mongoChild struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	ParentID  string             `bson:"parent_id"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *ChildRepository) Create(ctx context.Context, child *domain.Child) (*domain.Child, error) {
	doc := mongoChild{
		UserID:    child.UserID,
		ParentID:  child.ParentID,
		CreatedAt: child.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrChildExists
		}
		return nil, fmt.Errorf("insert child: %w", err)
	}

	created := *child
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ChildRepository) FindByID(ctx context.Context, id string) (*domain.Child, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrChildNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *ChildRepository) FindByUserID(ctx context.Context, userID string) (*domain.Child, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *ChildRepository) findOne(ctx context.Context, filter bson.M) (*domain.Child, error) {
	var mc mongoChild
	if err := r.coll.FindOne(ctx, filter).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrChildNotFound
		}
		return nil, fmt.Errorf("find child: %w", err)
	}
	return &domain.Child{
		ID:        mc.ID.Hex(),
		UserID:    mc.UserID,
		ParentID:  mc.ParentID,
		CreatedAt: unixToTime(mc.CreatedAt),
	}, nil
}

// EnsureIndexes enforces one child record per identity.
func (r *ChildRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "parent_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
