package repository

import (
	"github.com/learnhub-edu/learnhub-api/internal/model"
	"gorm.io/gorm"
)

type TopicRepository interface {
	Create(topic *model.Topic) error
	FindByID(id uint) (*model.Topic, error)
	FindBySlugWithContent(slug string) (*model.Topic, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(topic *model.Topic) error {
	return r.db.Create(topic).Error
}

func (r *topicRepository) FindByID(id uint) (*model.Topic, error) {
	var topic model.Topic
	err := r.db.First(&topic, id).Error
	return &topic, err
}

func (r *topicRepository) FindBySlugWithContent(slug string) (*model.Topic, error) {
	var topic model.Topic
	err := r.db.
		Preload("Subject").
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("videos.order_index ASC")
		}).
		Preload("Tests").
		Where("slug = ?", slug).First(&topic).Error
	return &topic, err
}
