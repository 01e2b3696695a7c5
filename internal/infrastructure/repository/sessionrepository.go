package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/infrastructure/persistence/models"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(gormDB *gorm.DB) *SessionRepository {
	return &SessionRepository{db: gormDB}
}

func (r *SessionRepository) Create(session *user.Session) error {
	model := r.toModel(session)
	if err := r.db.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(sessionID string) (*user.Session, error) {
	var model models.SessionModel
	if err := r.db.Where("id = ?", sessionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return r.toDomain(&model), nil
}

func (r *SessionRepository) GetByUserID(userID uint) ([]*user.Session, error) {
	var sessionModels []models.SessionModel
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&sessionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]*user.Session, 0, len(sessionModels))
	for i := range sessionModels {
		sessions = append(sessions, r.toDomain(&sessionModels[i]))
	}
	return sessions, nil
}

func (r *SessionRepository) Update(session *user.Session) error {
	model := r.toModel(session)
	if err := r.db.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(sessionID string) error {
	if err := r.db.Delete(&models.SessionModel{}, "id = ?", sessionID).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteByUserID(userID uint) error {
	if err := r.db.Delete(&models.SessionModel{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete user sessions: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired() error {
	if err := r.db.Delete(&models.SessionModel{}, "expires_at < ?", time.Now()).Error; err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}

func (r *SessionRepository) toModel(s *user.Session) *models.SessionModel {
	return &models.SessionModel{
		ID:             s.ID,
		UserID:         s.UserID,
		IPAddress:      s.IPAddress,
		UserAgent:      s.UserAgent,
		ExpiresAt:      s.ExpiresAt,
		LastActivityAt: s.LastActivityAt,
		CreatedAt:      s.CreatedAt,
	}
}

func (r *SessionRepository) toDomain(model *models.SessionModel) *user.Session {
	return &user.Session{
		ID:             model.ID,
		UserID:         model.UserID,
		IPAddress:      model.IPAddress,
		UserAgent:      model.UserAgent,
		ExpiresAt:      model.ExpiresAt,
		LastActivityAt: model.LastActivityAt,
		CreatedAt:      model.CreatedAt,
	}
}
