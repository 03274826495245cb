package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"punchcard/internal/models"
)

// Order fixes the check_in sort direction for ListSessions
type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)

// SessionPatch carries the fields of a partial session update.
// Nil fields are left untouched.
type SessionPatch struct {
	CheckIn    *time.Time
	CheckOut   *time.Time
	TotalHours *float64
}

// ListSessions returns every session owned by userID ordered by check_in
func ListSessions(userID string, order Order) ([]models.WorkSession, error) {
	var sessions []models.WorkSession

	err := DB.Where("user_id = ?", userID).
		Order("check_in " + string(order)).
		Find(&sessions).Error
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to fetch work sessions")
		return nil, err
	}

	return sessions, nil
}

// StartSession opens a new work session for userID checked in at the current
// time. Refuses when the user already has an open session.
func StartSession(userID string) (*models.WorkSession, error) {
	// Check if there's already an open session
	var open models.WorkSession
	err := DB.Where("user_id = ? AND check_out IS NULL", userID).First(&open).Error
	if err == nil {
		return nil, fmt.Errorf("session #%d is already running. Stop it first with 'punchcard stop'", open.ID)
	}

	session := models.WorkSession{
		UserID:  userID,
		CheckIn: time.Now(),
	}

	if err := DB.Create(&session).Error; err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to start session")
		return nil, err
	}

	return &session, nil
}

// InsertSession stores a fully-specified session, e.g. one entered manually
// with both timestamps. The store assigns the id.
func InsertSession(session *models.WorkSession) error {
	if err := DB.Create(session).Error; err != nil {
		log.Error().Err(err).Str("user_id", session.UserID).Msg("failed to insert session")
		return err
	}
	return nil
}

// FindOpenSession returns the user's open session, if any
func FindOpenSession(userID string) (*models.WorkSession, error) {
	var session models.WorkSession

	err := DB.Where("user_id = ? AND check_out IS NULL", userID).
		Order("check_in ASC").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // No open session is not an error
	}
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to look up open session")
		return nil, err
	}

	return &session, nil
}

// StopOpenSession closes the user's open session at the current time and
// stores the computed duration
func StopOpenSession(userID string) (*models.WorkSession, error) {
	session, err := FindOpenSession(userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("no active session found")
	}

	now := time.Now()
	hours := now.Sub(session.CheckIn).Hours()
	if err := UpdateSession(session.ID, SessionPatch{CheckOut: &now, TotalHours: &hours}); err != nil {
		return nil, err
	}

	session.CheckOut = &now
	session.TotalHours = &hours
	return session, nil
}

// GetSession retrieves a session by id
func GetSession(id uint) (*models.WorkSession, error) {
	var session models.WorkSession

	if err := DB.First(&session, id).Error; err != nil {
		return nil, fmt.Errorf("session #%d not found", id)
	}

	return &session, nil
}

// UpdateSession applies a partial update to the session with the given id
func UpdateSession(id uint, patch SessionPatch) error {
	fields := map[string]interface{}{}
	if patch.CheckIn != nil {
		fields["check_in"] = *patch.CheckIn
	}
	if patch.CheckOut != nil {
		fields["check_out"] = *patch.CheckOut
	}
	if patch.TotalHours != nil {
		fields["total_hours"] = *patch.TotalHours
	}
	if len(fields) == 0 {
		return nil
	}

	err := DB.Model(&models.WorkSession{}).Where("id = ?", id).Updates(fields).Error
	if err != nil {
		log.Error().Err(err).Uint("session_id", id).Msg("failed to update session")
		return err
	}

	return nil
}

// DeleteSession removes the session with the given id
func DeleteSession(id uint) error {
	if err := DB.Delete(&models.WorkSession{}, id).Error; err != nil {
		log.Error().Err(err).Uint("session_id", id).Msg("failed to delete session")
		return err
	}
	return nil
}
