package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inotes-app/inotes-backend/internal/domain"
	"github.com/inotes-app/inotes-backend/internal/transport/http/handler"
	"github.com/inotes-app/inotes-backend/internal/transport/http/middleware"
)

type fakeUserUsecase struct {
	get            func(ctx context.Context, userID string) (*domain.User, error)
	updateInfo     func(ctx context.Context, userID, email, firstName, lastName string) (*domain.User, error)
	changePassword func(ctx context.Context, userID, oldPassword, newPassword string) error
	delete         func(ctx context.Context, userID string) error
}

func (f *fakeUserUsecase) Get(ctx context.Context, userID string) (*domain.User, error) {
	if f.get == nil {
		return nil, domain.ErrUserNotFound
	}
	return f.get(ctx, userID)
}

func (f *fakeUserUsecase) UpdateInfo(ctx context.Context, userID, email, firstName, lastName string) (*domain.User, error) {
	if f.updateInfo == nil {
		return nil, domain.ErrUserNotFound
	}
	return f.updateInfo(ctx, userID, email, firstName, lastName)
}

func (f *fakeUserUsecase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if f.changePassword == nil {
		return nil
	}
	return f.changePassword(ctx, userID, oldPassword, newPassword)
}

func (f *fakeUserUsecase) Delete(ctx context.Context, userID string) error {
	if f.delete == nil {
		return nil
	}
	return f.delete(ctx, userID)
}

func userRouter(users *fakeUserUsecase) *gin.Engine {
	h := handler.NewUserHandler(users, discardLogger)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.ContextUserID, "u1") })
	r.GET("/users", h.Get)
	r.PATCH("/users", h.Update)
	r.DELETE("/users", h.Delete)
	r.POST("/users/change-password", h.ChangePassword)
	return r
}

func TestGetUser_NeverExposesPasswordDigest(t *testing.T) {
	users := &fakeUserUsecase{
		get: func(_ context.Context, userID string) (*domain.User, error) {
			return &domain.User{
				ID:           userID,
				Email:        "a@x.com",
				FirstName:    "Ada",
				LastName:     "Lovelace",
				Password:     "$2a$10$secretdigestsecretdigestsecret",
				RegisteredAt: time.Now(),
			}, nil
		},
	}

	w := doJSON(userRouter(users), http.MethodGet, "/users", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if strings.Contains(w.Body.String(), "secretdigest") {
		t.Fatalf("password digest leaked: %s", w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		Data    struct {
			ID        string `json:"id"`
			Email     string `json:"email"`
			FirstName string `json:"first_name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Message != "User successfully retrieved" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Data.ID != "u1" || resp.Data.Email != "a@x.com" || resp.Data.FirstName != "Ada" {
		t.Errorf("data = %+v", resp.Data)
	}
}

func TestUpdateUser_MissingEmail(t *testing.T) {
	w := doJSON(userRouter(&fakeUserUsecase{}), http.MethodPatch, "/users", `{"first_name":"Ada"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := message(t, w); got != "Email is required" {
		t.Errorf("message = %q", got)
	}
}

func TestUpdateUser_EmailInUse(t *testing.T) {
	users := &fakeUserUsecase{
		updateInfo: func(_ context.Context, _, _, _, _ string) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	w := doJSON(userRouter(users), http.MethodPatch, "/users", `{"email":"taken@x.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := message(t, w); got != "Email already in use" {
		t.Errorf("message = %q", got)
	}
}

func TestChangePassword_MissingFields(t *testing.T) {
	w := doJSON(userRouter(&fakeUserUsecase{}), http.MethodPost, "/users/change-password", `{"new_password":"password1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := message(t, w); got != "Current and new password are required" {
		t.Errorf("message = %q", got)
	}
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	users := &fakeUserUsecase{
		changePassword: func(_ context.Context, _, _, _ string) error {
			return domain.ErrPasswordMismatch
		},
	}
	w := doJSON(userRouter(users), http.MethodPost, "/users/change-password", `{"current_password":"wrong","new_password":"password1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := message(t, w); got != "Incorrect old password" {
		t.Errorf("message = %q", got)
	}
}

func TestChangePassword_ShortNewPassword(t *testing.T) {
	users := &fakeUserUsecase{
		changePassword: func(_ context.Context, _, _, _ string) error {
			return domain.ErrPasswordTooShort
		},
	}
	w := doJSON(userRouter(users), http.MethodPost, "/users/change-password", `{"current_password":"password1","new_password":"short"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := message(t, w); got != "New password must be at least 8 characters" {
		t.Errorf("message = %q", got)
	}
}

func TestChangePassword_Success(t *testing.T) {
	w := doJSON(userRouter(&fakeUserUsecase{}), http.MethodPost, "/users/change-password", `{"current_password":"password1","new_password":"password2"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := message(t, w); got != "Password successfully changed" {
		t.Errorf("message = %q", got)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	var deleted string
	users := &fakeUserUsecase{
		delete: func(_ context.Context, userID string) error {
			deleted = userID
			return nil
		},
	}
	w := doJSON(userRouter(users), http.MethodDelete, "/users", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if deleted != "u1" {
		t.Errorf("deleted = %q, want u1", deleted)
	}
	if got := message(t, w); got != "User successfully deleted" {
		t.Errorf("message = %q", got)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	users := &fakeUserUsecase{
		delete: func(_ context.Context, _ string) error {
			return domain.ErrUserNotFound
		},
	}
	w := doJSON(userRouter(users), http.MethodDelete, "/users", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if got := message(t, w); got != "User not found" {
		t.Errorf("message = %q", got)
	}
}
