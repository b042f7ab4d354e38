package store

import (
	"context"
	"errors"
	"time"

	"github.com/jobboard/apiserver/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const accountsCollection = "accounts"

// MongoAccountRepository persists accounts in a MongoDB collection.
type MongoAccountRepository struct {
	collection *mongo.Collection
}

func NewMongoAccountRepository(db *mongo.Database) *MongoAccountRepository {
	return &MongoAccountRepository{collection: db.Collection(accountsCollection)}
}

// EnsureIndexes creates the unique email index. The index is the
// authoritative uniqueness guard; callers treat the pre-insert existence
// check only as a fast path.
func (r *MongoAccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoAccountRepository) GetByEmail(ctx context.Context, email string) (types.Account, error) {
	var doc mongoAccount
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.Account{}, ErrNotFound
		}
		return types.Account{}, err
	}
	return doc.toAccount(), nil
}

func (r *MongoAccountRepository) Create(ctx context.Context, account types.Account) (types.Account, error) {
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	doc := mongoAccount{
		ID:               primitive.NewObjectID(),
		Name:             account.Name,
		Email:            account.Email,
		Role:             account.Role,
		PasswordHash:     account.PasswordHash,
		CandidateProfile: account.CandidateProfile,
		RecruiterProfile: account.RecruiterProfile,
		CreatedAt:        account.CreatedAt,
		UpdatedAt:        account.UpdatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return types.Account{}, mapMongoError(err)
	}

	account.ID = doc.ID.Hex()
	return account, nil
}

func mapMongoError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

// mongoAccount is the collection document shape. It exists so the
// ObjectID stays typed in the store while the rest of the app works with
// string IDs.
type mongoAccount struct {
	ID               primitive.ObjectID      `bson:"_id"`
	Name             string                  `bson:"name,omitempty"`
	Email            string                  `bson:"email"`
	Role             types.Role              `bson:"role"`
	PasswordHash     string                  `bson:"password_hash"`
	CandidateProfile *types.CandidateProfile `bson:"candidate_profile,omitempty"`
	RecruiterProfile *types.RecruiterProfile `bson:"recruiter_profile,omitempty"`
	CreatedAt        time.Time               `bson:"created_at"`
	UpdatedAt        time.Time               `bson:"updated_at"`
}

func (d mongoAccount) toAccount() types.Account {
	return types.Account{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		Email:            d.Email,
		Role:             d.Role,
		PasswordHash:     d.PasswordHash,
		CandidateProfile: d.CandidateProfile,
		RecruiterProfile: d.RecruiterProfile,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}
