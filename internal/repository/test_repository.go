package repository

import (
	"github.com/learnhub-edu/learnhub-api/internal/model"
	"gorm.io/gorm"
)

// TestWithContext is a test row joined with its topic/subject names and
// question count, as listed on the tests index.
type TestWithContext struct {
	model.Test
	QuestionCount int
	TopicName     string
	SubjectName   string
}

type TestRepository interface {
	Create(test *model.Test) error
	FindByID(id uint) (*model.Test, error)
	FindByIDWithQuestions(id uint) (*model.Test, error)
	FindAllWithContext() ([]TestWithContext, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	// GORM creates the associated questions when test.Questions is populated.
	return r.db.Create(test).Error
}

func (r *testRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.First(&test, id).Error
	return &test, err
}

func (r *testRepository) FindByIDWithQuestions(id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_index ASC")
	}).First(&test, id).Error
	return &test, err
}

func (r *testRepository) FindAllWithContext() ([]TestWithContext, error) {
	var results []TestWithContext
	err := r.db.Model(&model.Test{}).
		Select("tests.*, "+
			"(SELECT COUNT(*) FROM questions WHERE questions.test_id = tests.id AND questions.deleted_at IS NULL) as question_count, "+
			"topics.name as topic_name, subjects.name as subject_name").
		Joins("LEFT JOIN topics ON topics.id = tests.topic_id").
		Joins("LEFT JOIN subjects ON subjects.id = topics.subject_id").
		Where("tests.deleted_at IS NULL").
		Order("tests.created_at DESC").
		Scan(&results).Error
	return results, err
}
