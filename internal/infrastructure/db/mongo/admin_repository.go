package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/meridianbank/admin-portal/internal/core/domain"
)

const adminCollection = "administrators"

type AdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{coll: db.Collection(adminCollection)}
}

type mongoAdmin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    int64              `bson:"created_at"`
}

func (m mongoAdmin) toDomain() *domain.Administrator {
	return &domain.Administrator{
		ID:           m.ID.Hex(),
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    unixToTime(m.CreatedAt),
	}
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*domain.Administrator, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAdminNotFound
	}

	var ma mongoAdmin
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin by id: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*domain.Administrator, error) {
	var ma mongoAdmin
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin by username: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *AdminRepository) List(ctx context.Context) ([]domain.Administrator, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Administrator
	for cursor.Next(ctx) {
		var ma mongoAdmin
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode admin: %w", err)
		}
		out = append(out, *ma.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return out, nil
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}

func (r *AdminRepository) Create(ctx context.Context, admin *domain.Administrator) (*domain.Administrator, error) {
	doc := mongoAdmin{
		Username:     admin.Username,
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		CreatedAt:    admin.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if dup := mapDuplicateKey(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}

	created := *admin
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AdminRepository) Update(ctx context.Context, admin *domain.Administrator) error {
	oid, err := primitive.ObjectIDFromHex(admin.ID)
	if err != nil {
		return domain.ErrAdminNotFound
	}

	update := bson.M{"$set": bson.M{
		"username":      admin.Username,
		"email":         admin.Email,
		"password_hash": admin.PasswordHash,
	}}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		if dup := mapDuplicateKey(err); dup != nil {
			return dup
		}
		return fmt.Errorf("update admin: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAdminNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
