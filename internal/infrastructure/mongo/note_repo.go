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

type noteDoc struct {
	ID          string    `bson:"_id"`
	UserID      string    `bson:"user_id"`
	Title       string    `bson:"title"`
	Body        string    `bson:"body"`
	CreatedAt   time.Time `bson:"created_at"`
	LastUpdated time.Time `bson:"last_updated"`
}

func (d noteDoc) toDomain() domain.Note {
	return domain.Note{
		ID:          d.ID,
		UserID:      d.UserID,
		Title:       d.Title,
		Body:        d.Body,
		CreatedAt:   d.CreatedAt,
		LastUpdated: d.LastUpdated,
	}
}

type NoteRepository struct {
	coll *mongo.Collection
}

func NewNoteRepository(db *DB) *NoteRepository {
	return &NoteRepository{coll: db.db.Collection(collNotes)}
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	doc := noteDoc{
		ID:          note.ID,
		UserID:      note.UserID,
		Title:       note.Title,
		Body:        note.Body,
		CreatedAt:   note.CreatedAt,
		LastUpdated: note.LastUpdated,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

func (r *NoteRepository) FindByID(ctx context.Context, userID, id string) (*domain.Note, error) {
	var doc noteDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	note := doc.toDomain()
	return &note, nil
}

func (r *NoteRepository) ListByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	var docs []noteDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}

	notes := make([]domain.Note, 0, len(docs))
	for _, doc := range docs {
		notes = append(notes, doc.toDomain())
	}
	return notes, nil
}

func (r *NoteRepository) ExistsID(ctx context.Context, id string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("count notes by id: %w", err)
	}
	return count > 0, nil
}

func (r *NoteRepository) Update(ctx context.Context, note *domain.Note) error {
	update := bson.M{"$set": bson.M{
		"title":        note.Title,
		"body":         note.Body,
		"last_updated": note.LastUpdated,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": note.ID, "user_id": note.UserID}, update)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

func (r *NoteRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete notes by user: %w", err)
	}
	return nil
}
