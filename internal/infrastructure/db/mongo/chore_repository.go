package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cornerstone/chores-api/internal/core/domain"
)

const choresCollection = "chores"

type ChoreRepository struct {
	coll *mongo.Collection
}

func NewChoreRepository(db *mongo.Database) *ChoreRepository {
	return &ChoreRepository{coll: db.Collection(choresCollection)}
}

type mongoChore struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ParentID     string             `bson:"parent_id"`
	ChildID      string             `bson:"child_id"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description,omitempty"`
	RewardAmount int                `bson:"reward_amount"`
	Status       string             `bson:"status"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

// Save inserts the chore when it has no id yet, otherwise replaces the stored
// document. Single-document writes are atomic in Mongo; concurrent updates to
// the same chore are last-write-wins.
func (r *ChoreRepository) Save(ctx context.Context, chore *domain.Chore) (*domain.Chore, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoChore{
		ParentID:     chore.ParentID,
		ChildID:      chore.ChildID,
		Title:        chore.Title,
		Description:  chore.Description,
		RewardAmount: chore.RewardAmount,
		Status:       string(chore.Status),
		CreatedAt:    chore.CreatedAt.Unix(),
		UpdatedAt:    chore.UpdatedAt.Unix(),
	}

	if chore.ID == "" {
		res, err := r.coll.InsertOne(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("insert chore: %w", err)
		}
		saved := *chore
		saved.ID = res.InsertedID.(primitive.ObjectID).Hex()
		return &saved, nil
	}

	oid, err := primitive.ObjectIDFromHex(chore.ID)
	if err != nil {
		return nil, domain.ErrChoreNotFound
	}
	doc.ID = oid

	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc); err != nil {
		return nil, fmt.Errorf("update chore: %w", err)
	}
	saved := *chore
	return &saved, nil
}

func (r *ChoreRepository) FindByID(ctx context.Context, id string) (*domain.Chore, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrChoreNotFound
	}

	var mc mongoChore
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrChoreNotFound
		}
		return nil, fmt.Errorf("find chore: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *ChoreRepository) FindByChildID(ctx context.Context, childID string) ([]*domain.Chore, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"child_id": childID})
	if err != nil {
		return nil, fmt.Errorf("list chores: %w", err)
	}
	defer cur.Close(ctx)

	var chores []*domain.Chore
	for cur.Next(ctx) {
		var mc mongoChore
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode chore: %w", err)
		}
		chores = append(chores, mc.toDomain())
	}
	return chores, cur.Err()
}

// EnsureIndexes creates the lookup indexes for the chores collection.
func (r *ChoreRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "child_id", Value: 1}}},
		{Keys: bson.D{{Key: "parent_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (mc *mongoChore) toDomain() *domain.Chore {
	return &domain.Chore{
		ID:           mc.ID.Hex(),
		ParentID:     mc.ParentID,
		ChildID:      mc.ChildID,
		Title:        mc.Title,
		Description:  mc.Description,
		RewardAmount: mc.RewardAmount,
		Status:       domain.ChoreStatus(mc.Status),
		CreatedAt:    unixToTime(mc.CreatedAt),
		UpdatedAt:    unixToTime(mc.UpdatedAt),
	}
}
