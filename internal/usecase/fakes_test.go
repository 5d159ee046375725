package usecase_test

import (
	"context"
	"time"

	"github.com/inotes-app/inotes-backend/internal/domain"
)

// Func-field fakes for the repository interfaces. Unset fields fall
// back to empty-store behavior so each test only wires what it checks.

type fakeUserRepo struct {
	create         func(ctx context.Context, user *domain.User) error
	findByID       func(ctx context.Context, id string) (*domain.User, error)
	findByEmail    func(ctx context.Context, email string) (*domain.User, error)
	existsID       func(ctx context.Context, id string) (bool, error)
	updateInfo     func(ctx context.Context, id, email, firstName, lastName string) error
	updatePassword func(ctx context.Context, id, passwordHash string) error
	delete         func(ctx context.Context, id string) error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if f.create == nil {
		return nil
	}
	return f.create(ctx, user)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if f.findByID == nil {
		return nil, domain.ErrUserNotFound
	}
	return f.findByID(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.findByEmail == nil {
		return nil, domain.ErrUserNotFound
	}
	return f.findByEmail(ctx, email)
}

func (f *fakeUserRepo) ExistsID(ctx context.Context, id string) (bool, error) {
	if f.existsID == nil {
		return false, nil
	}
	return f.existsID(ctx, id)
}

func (f *fakeUserRepo) UpdateInfo(ctx context.Context, id, email, firstName, lastName string) error {
	if f.updateInfo == nil {
		return nil
	}
	return f.updateInfo(ctx, id, email, firstName, lastName)
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if f.updatePassword == nil {
		return nil
	}
	return f.updatePassword(ctx, id, passwordHash)
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if f.delete == nil {
		return nil
	}
	return f.delete(ctx, id)
}

type fakeSessionRepo struct {
	create        func(ctx context.Context, session *domain.Session) error
	findByHash    func(ctx context.Context, hash string) (*domain.Session, error)
	existsHash    func(ctx context.Context, hash string) (bool, error)
	extendExpiry  func(ctx context.Context, hash string, expiry time.Time) error
	deleteByHash  func(ctx context.Context, hash string) error
	deleteByUser  func(ctx context.Context, userID string) error
	deleteExpired func(ctx context.Context, now time.Time) (int, error)
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *domain.Session) error {
	if f.create == nil {
		return nil
	}
	return f.create(ctx, session)
}

func (f *fakeSessionRepo) FindByHash(ctx context.Context, hash string) (*domain.Session, error) {
	if f.findByHash == nil {
		return nil, domain.ErrSessionInvalid
	}
	return f.findByHash(ctx, hash)
}

func (f *fakeSessionRepo) ExistsHash(ctx context.Context, hash string) (bool, error) {
	if f.existsHash == nil {
		return false, nil
	}
	return f.existsHash(ctx, hash)
}

func (f *fakeSessionRepo) ExtendExpiry(ctx context.Context, hash string, expiry time.Time) error {
	if f.extendExpiry == nil {
		return nil
	}
	return f.extendExpiry(ctx, hash, expiry)
}

func (f *fakeSessionRepo) DeleteByHash(ctx context.Context, hash string) error {
	if f.deleteByHash == nil {
		return nil
	}
	return f.deleteByHash(ctx, hash)
}

func (f *fakeSessionRepo) DeleteByUser(ctx context.Context, userID string) error {
	if f.deleteByUser == nil {
		return nil
	}
	return f.deleteByUser(ctx, userID)
}

func (f *fakeSessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	if f.deleteExpired == nil {
		return 0, nil
	}
	return f.deleteExpired(ctx, now)
}

type fakeResetTokenRepo struct {
	create        func(ctx context.Context, token *domain.ResetPasswordToken) error
	findByToken   func(ctx context.Context, token string) (*domain.ResetPasswordToken, error)
	existsToken   func(ctx context.Context, token string) (bool, error)
	deleteByToken func(ctx context.Context, token string) error
	deleteByUser  func(ctx context.Context, userID string) error
	deleteExpired func(ctx context.Context, now time.Time) (int, error)
}

func (f *fakeResetTokenRepo) Create(ctx context.Context, token *domain.ResetPasswordToken) error {
	if f.create == nil {
		return nil
	}
	return f.create(ctx, token)
}

func (f *fakeResetTokenRepo) FindByToken(ctx context.Context, token string) (*domain.ResetPasswordToken, error) {
	if f.findByToken == nil {
		return nil, domain.ErrResetTokenInvalid
	}
	return f.findByToken(ctx, token)
}

func (f *fakeResetTokenRepo) ExistsToken(ctx context.Context, token string) (bool, error) {
	if f.existsToken == nil {
		return false, nil
	}
	return f.existsToken(ctx, token)
}

func (f *fakeResetTokenRepo) DeleteByToken(ctx context.Context, token string) error {
	if f.deleteByToken == nil {
		return nil
	}
	return f.deleteByToken(ctx, token)
}

func (f *fakeResetTokenRepo) DeleteByUser(ctx context.Context, userID string) error {
	if f.deleteByUser == nil {
		return nil
	}
	return f.deleteByUser(ctx, userID)
}

func (f *fakeResetTokenRepo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	if f.deleteExpired == nil {
		return 0, nil
	}
	return f.deleteExpired(ctx, now)
}

type fakeNoteRepo struct {
	create       func(ctx context.Context, note *domain.Note) error
	findByID     func(ctx context.Context, userID, id string) (*domain.Note, error)
	listByUser   func(ctx context.Context, userID string) ([]domain.Note, error)
	existsID     func(ctx context.Context, id string) (bool, error)
	update       func(ctx context.Context, note *domain.Note) error
	delete       func(ctx context.Context, userID, id string) error
	deleteByUser func(ctx context.Context, userID string) error
}

func (f *fakeNoteRepo) Create(ctx context.Context, note *domain.Note) error {
	if f.create == nil {
		return nil
	}
	return f.create(ctx, note)
}

func (f *fakeNoteRepo) FindByID(ctx context.Context, userID, id string) (*domain.Note, error) {
	if f.findByID == nil {
		return nil, domain.ErrNoteNotFound
	}
	return f.findByID(ctx, userID, id)
}

func (f *fakeNoteRepo) ListByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	if f.listByUser == nil {
		return nil, nil
	}
	return f.listByUser(ctx, userID)
}

func (f *fakeNoteRepo) ExistsID(ctx context.Context, id string) (bool, error) {
	if f.existsID == nil {
		return false, nil
	}
	return f.existsID(ctx, id)
}

func (f *fakeNoteRepo) Update(ctx context.Context, note *domain.Note) error {
	if f.update == nil {
		return nil
	}
	return f.update(ctx, note)
}

func (f *fakeNoteRepo) Delete(ctx context.Context, userID, id string) error {
	if f.delete == nil {
		return nil
	}
	return f.delete(ctx, userID, id)
}

func (f *fakeNoteRepo) DeleteByUser(ctx context.Context, userID string) error {
	if f.deleteByUser == nil {
		return nil
	}
	return f.deleteByUser(ctx, userID)
}

type fakeEmailSender struct {
	send func(ctx context.Context, to, subject, body string) error
}

func (s *fakeEmailSender) Send(ctx context.Context, to, subject, body string) error {
	if s.send == nil {
		return nil
	}
	return s.send(ctx, to, subject, body)
}
