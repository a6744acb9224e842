package repository

import (
	"github.com/learnhub-edu/learnhub-api/internal/model"
	"gorm.io/gorm"
)

// SubjectWithTopicCount is a subject row joined with the number of its
// topics, as listed on the subjects index.
type SubjectWithTopicCount struct {
	model.Subject
	TopicCount int
}

type SubjectRepository interface {
	Create(subject *model.Subject) error
	FindAllWithTopicCount() ([]SubjectWithTopicCount, error)
	FindByID(id uint) (*model.Subject, error)
	FindBySlugWithTopics(slug string) (*model.Subject, error)
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(subject *model.Subject) error {
	return r.db.Create(subject).Error
}

func (r *subjectRepository) FindAllWithTopicCount() ([]SubjectWithTopicCount, error) {
	var results []SubjectWithTopicCount
	err := r.db.Model(&model.Subject{}).
		Select("subjects.*, (SELECT COUNT(*) FROM topics WHERE topics.subject_id = subjects.id AND topics.deleted_at IS NULL) as topic_count").
		Where("subjects.deleted_at IS NULL").
		Order("subjects.name ASC").
		Scan(&results).Error
	return results, err
}

func (r *subjectRepository) FindByID(id uint) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.First(&subject, id).Error
	return &subject, err
}

func (r *subjectRepository) FindBySlugWithTopics(slug string) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.Preload("Topics", func(db *gorm.DB) *gorm.DB {
		return db.Order("topics.order_index ASC")
	}).Where("slug = ?", slug).First(&subject).Error
	return &subject, err
}
