package services

import (
	"time"

	"github.com/zenott/boilerplate-project-exercisetracker/apperrors"
	"github.com/zenott/boilerplate-project-exercisetracker/models"
	"github.com/zenott/boilerplate-project-exercisetracker/utils"

	"gorm.io/gorm"
)

type LogService struct {
	DB *gorm.DB
}

func NewLogService(db *gorm.DB) *LogService {
	return &LogService{DB: db}
}

// CreateLog persists one exercise entry. A zero date defaults to the moment
// of creation. The caller is responsible for checking that userID names an
// existing user.
func (s *LogService) CreateLog(userID, description string, duration float64, date time.Time) (*models.Log, error) {
	if description == "" {
		return nil, apperrors.NewValidation("description is required")
	}
	if duration == 0 {
		return nil, apperrors.NewValidation("duration is required")
	}
	if date.IsZero() {
		date = time.Now()
	}

	entry := models.Log{
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, apperrors.NewStore("create log", err)
	}
	return &entry, nil
}

// QueryLogs returns the user's logs with date in [from, to] inclusive. Zero
// bounds open the range; limit <= 0 means unlimited, so the Limit clause is
// only added for positive values and can never produce LIMIT 0.
func (s *LogService) QueryLogs(userID string, from, to time.Time, limit int) ([]models.Log, error) {
	if from.IsZero() {
		from = utils.MinDate
	}
	if to.IsZero() {
		to = utils.MaxDate
	}

	q := s.DB.Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to)
	if limit > 0 {
		q = q.Limit(limit)
	}

	var logs []models.Log
	if err := q.Find(&logs).Error; err != nil {
		return nil, apperrors.NewStore("query logs", err)
	}
	return logs, nil
}
