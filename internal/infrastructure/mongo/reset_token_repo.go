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

type resetTokenDoc struct {
	ID     bson.ObjectID `bson:"_id,omitempty"`
	Token  string        `bson:"token"`
	UserID string        `bson:"user_id"`
	Expiry time.Time     `bson:"expiry"`
}

type ResetTokenRepository struct {
	coll *mongo.Collection
}

func NewResetTokenRepository(db *DB) *ResetTokenRepository {
	return &ResetTokenRepository{coll: db.db.Collection(collResetTokens)}
}

func (r *ResetTokenRepository) Create(ctx context.Context, token *domain.ResetPasswordToken) error {
	doc := resetTokenDoc{
		Token:  token.Token,
		UserID: token.UserID,
		Expiry: token.Expiry,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert reset token: %w", err)
	}
	return nil
}

func (r *ResetTokenRepository) FindByToken(ctx context.Context, token string) (*domain.ResetPasswordToken, error) {
	var doc resetTokenDoc
	err := r.coll.FindOne(ctx, bson.M{"token": token}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResetTokenInvalid
		}
		return nil, fmt.Errorf("find reset token: %w", err)
	}
	return &domain.ResetPasswordToken{Token: doc.Token, UserID: doc.UserID, Expiry: doc.Expiry}, nil
}

func (r *ResetTokenRepository) ExistsToken(ctx context.Context, token string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"token": token})
	if err != nil {
		return false, fmt.Errorf("count reset tokens: %w", err)
	}
	return count > 0, nil
}

func (r *ResetTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"token": token}); err != nil {
		return fmt.Errorf("delete reset token: %w", err)
	}
	return nil
}

func (r *ResetTokenRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete reset tokens by user: %w", err)
	}
	return nil
}

func (r *ResetTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"expiry": bson.M{"$lt": now}})
	if err != nil {
		return 0, fmt.Errorf("find expired reset tokens: %w", err)
	}

	var docs []resetTokenDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return 0, fmt.Errorf("decode expired reset tokens: %w", err)
	}

	deleted := 0
	for _, doc := range docs {
		res, err := r.coll.DeleteOne(ctx, bson.M{"_id": doc.ID})
		if err != nil {
			return deleted, fmt.Errorf("delete expired reset token: %w", err)
		}
		deleted += int(res.DeletedCount)
	}
	return deleted, nil
}
