package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/meridianbank/admin-portal/internal/core/domain"
)

const customerCollection = "customers"

type CustomerRepository struct {
	coll *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{coll: db.Collection(customerCollection)}
}

type mongoCustomer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	FullName      string             `bson:"full_name"`
	Email         string             `bson:"email"`
	PasswordHash  string             `bson:"password_hash"`
	AccountNumber string             `bson:"account_number"`
	AccountType   string             `bson:"account_type"`
	Balance       float64            `bson:"balance"`
	Status        string             `bson:"status"`
	CreatedAt     int64              `bson:"created_at"`
}

func (m mongoCustomer) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:            m.ID.Hex(),
		FullName:      m.FullName,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		AccountNumber: m.AccountNumber,
		AccountType:   m.AccountType,
		Balance:       m.Balance,
		Status:        domain.CustomerStatus(m.Status),
		CreatedAt:     unixToTime(m.CreatedAt),
	}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCustomerNotFound
	}

	var mc mongoCustomer
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer by id: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var mc mongoCustomer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer by email: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Customer
	for cursor.Next(ctx) {
		var mc mongoCustomer
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode customer: %w", err)
		}
		out = append(out, *mc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

func (r *CustomerRepository) CountByStatus(ctx context.Context, status domain.CustomerStatus) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"status": string(status)})
	if err != nil {
		return 0, fmt.Errorf("count customers by status: %w", err)
	}
	return n, nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	doc := mongoCustomer{
		FullName:      customer.FullName,
		Email:         customer.Email,
		PasswordHash:  customer.PasswordHash,
		AccountNumber: customer.AccountNumber,
		AccountType:   customer.AccountType,
		Balance:       customer.Balance,
		Status:        string(customer.Status),
		CreatedAt:     customer.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if dup := mapDuplicateKey(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}

	created := *customer
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	oid, err := primitive.ObjectIDFromHex(customer.ID)
	if err != nil {
		return domain.ErrCustomerNotFound
	}

	// The account number is immutable after creation and deliberately absent
	// from the update document.
	update := bson.M{"$set": bson.M{
		"full_name":     customer.FullName,
		"email":         customer.Email,
		"password_hash": customer.PasswordHash,
		"account_type":  customer.AccountType,
		"balance":       customer.Balance,
		"status":        string(customer.Status),
	}}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		if dup := mapDuplicateKey(err); dup != nil {
			return dup
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCustomerNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
