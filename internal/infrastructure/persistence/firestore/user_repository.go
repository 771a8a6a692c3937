package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"jobskills/internal/domain/user"
)

const usersCollection = "users"

type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) col() *firestore.CollectionRef {
	return r.client.client.Collection(usersCollection)
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := r.col().Doc(u.ID).Create(ctx, u); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	return decodeUser(doc)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	iter := r.col().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("query user by email: %w", err)
	}
	return decodeUser(doc)
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	u.UpdatedAt = time.Now().UTC()

	if _, err := r.col().Doc(u.ID).Set(ctx, u); err != nil {
		if status.Code(err) == codes.NotFound {
			return user.ErrNotFound
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes the user document; embedded apply logs and the sent-job
// ledger go with it.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return user.ErrNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepository) ListNotifiable(ctx context.Context, cadence user.Cadence) ([]user.User, error) {
	q := r.col().Where("settings.emailNotif", "==", true)
	if cadence != "" {
		q = q.Where("settings.notifFrequency", "==", string(cadence))
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var users []user.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list notifiable users: %w", err)
		}
		u, err := decodeUser(doc)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// AppendSentJobKeys uses ArrayUnion so the ledger append is atomic and
// append-if-absent on the server; a concurrent settings save cannot undo it.
func (r *UserRepository) AppendSentJobKeys(ctx context.Context, id string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	vals := make([]any, len(keys))
	for i, k := range keys {
		vals[i] = k
	}

	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "lastSentJobs", Value: firestore.ArrayUnion(vals...)},
		{Path: "updatedAt", Value: time.Now().UTC()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return user.ErrNotFound
		}
		return fmt.Errorf("append sent job keys: %w", err)
	}
	return nil
}

func decodeUser(doc *firestore.DocumentSnapshot) (user.User, error) {
	var u user.User
	if err := doc.DataTo(&u); err != nil {
		return user.User{}, fmt.Errorf("decode user: %w", err)
	}
	u.ID = doc.Ref.ID
	return u, nil
}
