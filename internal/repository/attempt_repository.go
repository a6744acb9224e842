package repository

import (
	"github.com/learnhub-edu/learnhub-api/internal/model"
	"gorm.io/gorm"
)

// AttemptRepository is append-only: attempts are created once at
// submission time and never updated or deleted.
type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	FindByID(id uint) (*model.Attempt, error)
	FindAllByUser(userID uint) ([]model.Attempt, error)
	FindAllByTestAndUser(testID, userID uint) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.Preload("Test").First(&attempt, id).Error
	return &attempt, err
}

// FindAllByUser returns the user's score history, newest first.
func (r *attemptRepository) FindAllByUser(userID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Preload("Test").
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindAllByTestAndUser(testID, userID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("test_id = ? AND user_id = ?", testID, userID).
		Order("completed_at DESC").
		Find(&attempts).Error
	return attempts, err
}
