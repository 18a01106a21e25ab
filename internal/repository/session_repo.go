package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/model"
)

// SessionRepository data access for academic sessions. Writes that touch the
// current flag must run inside Repository.Transaction.
type SessionRepository interface {
	// LockCurrency serializes writers of the current flag until the
	// surrounding transaction ends.
	LockCurrency(ctx context.Context) error
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	// GetForUpdate reads the row under a FOR UPDATE lock.
	GetForUpdate(ctx context.Context, id int64) (*model.Session, error)
	GetCurrent(ctx context.Context) (*model.Session, error)
	List(ctx context.Context) ([]model.Session, error)
	UpdateDate(ctx context.Context, id int64, date string) (int64, error)
	ClearCurrent(ctx context.Context) error
	MarkCurrent(ctx context.Context, id int64) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type sessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

// currencyLockKey is the pg_advisory_xact_lock key guarding sessions.current.
const currencyLockKey = 7_340_001

func (r *sessionRepo) LockCurrency(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", currencyLockKey).Error
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) GetByID(ctx context.Context, id int64) (*model.Session, error) {
	var session model.Session
	if err := r.db.WithContext(ctx).First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) GetForUpdate(ctx context.Context, id int64) (*model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) GetCurrent(ctx context.Context) (*model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).
		Where("current = ?", true).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) List(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) UpdateDate(ctx context.Context, id int64, date string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ?", id).
		Update("date", date)
	return res.RowsAffected, res.Error
}

// ClearCurrent unsets the flag on every current session.
func (r *sessionRepo) ClearCurrent(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("current = ?", true).
		Update("current", false).Error
}

func (r *sessionRepo) MarkCurrent(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ?", id).
		Update("current", true)
	return res.RowsAffected, res.Error
}

func (r *sessionRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Session{}, id)
	return res.RowsAffected, res.Error
}
