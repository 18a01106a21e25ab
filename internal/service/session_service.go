package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/model"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/repository"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/database"
)

// SessionService manages academic sessions and keeps at most one of them
// current. Every write to the current flag happens inside one transaction
// holding the currency lock.
type SessionService interface {
	List(ctx context.Context) ([]dto.SessionResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.SessionResponse, error)
	GetCurrent(ctx context.Context) (*dto.SessionResponse, error)
	Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	SetCurrent(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type sessionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewSessionService(repo *repository.Repository, logger *zap.Logger) SessionService {
	return &sessionService{repo: repo, logger: logger}
}

// ────────────────────── reads ──────────────────────

func (s *sessionService) List(ctx context.Context) ([]dto.SessionResponse, error) {
	sessions, err := s.repo.Session.List(ctx)
	if err != nil {
		s.logger.Error("list sessions failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		result = append(result, *toSessionResponse(&sessions[i]))
	}
	return result, nil
}

func (s *sessionService) GetByID(ctx context.Context, id int64) (*dto.SessionResponse, error) {
	session, err := s.repo.Session.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("get session failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toSessionResponse(session), nil
}

func (s *sessionService) GetCurrent(ctx context.Context) (*dto.SessionResponse, error) {
	session, err := s.repo.Session.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("get current session failed", zap.Error(err))
		return nil, err
	}
	return toSessionResponse(session), nil
}

// ────────────────────── Create ──────────────────────

// Create inserts a session. With Current set, every other session is
// cleared in the same transaction so creation cannot produce two.
func (s *sessionService) Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	if blank(req.Date) {
		return nil, ErrMissingFields
	}

	session := &model.Session{Date: strings.TrimSpace(req.Date), Current: req.Current}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if session.Current {
			if err := tx.Session.LockCurrency(ctx); err != nil {
				return err
			}
			if err := tx.Session.ClearCurrent(ctx); err != nil {
				return err
			}
		}
		return tx.Session.Create(ctx, session)
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrSessionExists
		}
		s.logger.Error("create session failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("session created", zap.Int64("id", session.ID), zap.Bool("current", session.Current))
	return toSessionResponse(session), nil
}

// ────────────────────── Update ──────────────────────

func (s *sessionService) Update(ctx context.Context, id int64, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	if blank(req.Date) {
		return nil, ErrMissingFields
	}

	rows, err := s.repo.Session.UpdateDate(ctx, id, strings.TrimSpace(req.Date))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrSessionExists
		}
		s.logger.Error("update session failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if rows == 0 {
		return nil, ErrSessionNotFound
	}
	return s.GetByID(ctx, id)
}

// ────────────────────── SetCurrent ──────────────────────

// SetCurrent makes id the only current session. A missing id rolls back
// before anything is cleared.
func (s *sessionService) SetCurrent(ctx context.Context, id int64) error {
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Session.LockCurrency(ctx); err != nil {
			return err
		}
		if _, err := tx.Session.GetForUpdate(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}
		if err := tx.Session.ClearCurrent(ctx); err != nil {
			return err
		}
		rows, err := tx.Session.MarkCurrent(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrSessionNotFound
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			s.logger.Error("set current session failed", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}

	s.logger.Info("current session changed", zap.Int64("id", id))
	return nil
}

// ────────────────────── Delete ──────────────────────

// Delete removes a non-current session. The current one must first be
// superseded through SetCurrent.
func (s *sessionService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		session, err := tx.Session.GetForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}
		if session.Current {
			return ErrDeleteCurrentSession
		}
		rows, err := tx.Session.Delete(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrSessionNotFound
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrDeleteCurrentSession) {
			s.logger.Error("delete session failed", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}
	return nil
}
