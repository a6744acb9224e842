package repository

import (
	"github.com/learnhub-edu/learnhub-api/internal/model"
	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(video *model.Video) error
	FindByTopicID(topicID uint) ([]model.Video, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

func (r *videoRepository) FindByTopicID(topicID uint) ([]model.Video, error) {
	var videos []model.Video
	if err := r.db.Where("topic_id = ?", topicID).Order("order_index ASC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}
