package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inotes-app/inotes-backend/internal/domain"
	"github.com/inotes-app/inotes-backend/internal/transport/http/middleware"
)

type noteUsecaser interface {
	List(ctx context.Context, userID string) ([]domain.Note, error)
	Get(ctx context.Context, userID, noteID string) (*domain.Note, error)
	Create(ctx context.Context, userID, title, body string) (*domain.Note, error)
	Update(ctx context.Context, userID, noteID, title, body string) (*domain.Note, error)
	Delete(ctx context.Context, userID, noteID string) error
}

type NoteHandler struct {
	notes  noteUsecaser
	logger *slog.Logger
}

func NewNoteHandler(notes noteUsecaser, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		notes:  notes,
		logger: logger.With("component", "note_handler"),
	}
}

type noteResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		ID:          n.ID,
		UserID:      n.UserID,
		Title:       n.Title,
		Body:        n.Body,
		CreatedAt:   n.CreatedAt,
		LastUpdated: n.LastUpdated,
	}
}

type noteRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"  binding:"required"`
}

// GET /notes
func (h *NoteHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	notes, err := h.notes.List(c.Request.Context(), userID)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list notes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	resp := make([]noteResponse, 0, len(notes))
	for i := range notes {
		resp = append(resp, toNoteResponse(&notes[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notes successfully retrieved",
		"data":    resp,
	})
}

// GET /notes/:id
func (h *NoteHandler) GetByID(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	noteID := c.Param("id")

	note, err := h.notes.Get(c.Request.Context(), userID, noteID)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": errNoteNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get note", "note_id", noteID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Note successfully retrieved",
		"data":    toNoteResponse(note),
	})
}

// POST /notes
func (h *NoteHandler) Create(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errNoteFieldsRequired})
		return
	}

	note, err := h.notes.Create(c.Request.Context(), userID, req.Title, req.Body)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "create note", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Note successfully created",
		"data":    toNoteResponse(note),
	})
}

// PATCH /notes/:id
func (h *NoteHandler) Update(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	noteID := c.Param("id")

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errNoteFieldsRequired})
		return
	}

	note, err := h.notes.Update(c.Request.Context(), userID, noteID, req.Title, req.Body)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": errNoteNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "update note", "note_id", noteID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Note successfully modified",
		"data":    toNoteResponse(note),
	})
}

// DELETE /notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	noteID := c.Param("id")

	if err := h.notes.Delete(c.Request.Context(), userID, noteID); err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": errNoteNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete note", "note_id", noteID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note successfully deleted"})
}
