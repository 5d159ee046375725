package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inotes-app/inotes-backend/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type sessionDoc struct {
	ID     bson.ObjectID `bson:"_id,omitempty"`
	Hash   string        `bson:"hash"`
	UserID string        `bson:"user_id"`
	Expiry time.Time     `bson:"expiry"`
}

type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{coll: db.db.Collection(collSessions)}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	doc := sessionDoc{
		Hash:   session.Hash,
		UserID: session.UserID,
		Expiry: session.Expiry,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindByHash(ctx context.Context, hash string) (*domain.Session, error) {
	var doc sessionDoc
	err := r.coll.FindOne(ctx, bson.M{"hash": hash}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionInvalid
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &domain.Session{Hash: doc.Hash, UserID: doc.UserID, Expiry: doc.Expiry}, nil
}

func (r *SessionRepository) ExistsHash(ctx context.Context, hash string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"hash": hash})
	if err != nil {
		return false, fmt.Errorf("count sessions: %w", err)
	}
	return count > 0, nil
}

func (r *SessionRepository) ExtendExpiry(ctx context.Context, hash string, expiry time.Time) error {
	update := bson.M{"$set": bson.M{"expiry": expiry}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"hash": hash}, update)
	if err != nil {
		return fmt.Errorf("extend session expiry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSessionInvalid
	}
	return nil
}

func (r *SessionRepository) DeleteByHash(ctx context.Context, hash string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"hash": hash})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSessionInvalid
	}
	return nil
}

func (r *SessionRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete sessions by user: %w", err)
	}
	return nil
}

// DeleteExpired scans for expired sessions and deletes them one by one.
// A row already removed by a concurrent sweep simply reports zero
// deletions and is skipped.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"expiry": bson.M{"$lt": now}})
	if err != nil {
		return 0, fmt.Errorf("find expired sessions: %w", err)
	}

	var docs []sessionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return 0, fmt.Errorf("decode expired sessions: %w", err)
	}

	deleted := 0
	for _, doc := range docs {
		res, err := r.coll.DeleteOne(ctx, bson.M{"_id": doc.ID})
		if err != nil {
			return deleted, fmt.Errorf("delete expired session: %w", err)
		}
		deleted += int(res.DeletedCount)
	}
	return deleted, nil
}
