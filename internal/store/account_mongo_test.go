package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jobboard/apiserver/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestMapMongoError(t *testing.T) {
	t.Parallel()

	duplicate := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	if got := mapMongoError(duplicate); !errors.Is(got, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail for duplicate key, got %v", got)
	}

	wrapped := fmt.Errorf("insert account: %w", duplicate)
	if got := mapMongoError(wrapped); !errors.Is(got, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail for wrapped duplicate key, got %v", got)
	}

	other := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 2, Message: "bad value"}},
	}
	if got := mapMongoError(other); errors.Is(got, ErrDuplicateEmail) {
		t.Fatalf("expected non-duplicate write error to pass through, got %v", got)
	}
}

func TestMongoAccountDocumentShape(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := mongoAccount{
		ID:           primitive.NewObjectID(),
		Email:        "a@x.com",
		Role:         types.RoleCandidate,
		PasswordHash: "bcrypt-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}

	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}

	for _, key := range []string{"_id", "email", "role", "password_hash", "created_at", "updated_at"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("expected document field %q, got %v", key, fields)
		}
	}
	if _, ok := fields["name"]; ok {
		t.Fatalf("expected empty name to be omitted, got %v", fields)
	}
	if _, ok := fields["password"]; ok {
		t.Fatalf("plaintext password field must never exist, got %v", fields)
	}

	round := doc.toAccount()
	if round.ID != doc.ID.Hex() || round.Email != doc.Email || round.PasswordHash != doc.PasswordHash {
		t.Fatalf("account projection mismatch: %+v", round)
	}
}
