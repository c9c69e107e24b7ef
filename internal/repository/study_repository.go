package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"student-assist/internal/model"
)

// StudyRepository handles flashcards, quizzes and goals.
type StudyRepository struct {
	db *gorm.DB
}

func NewStudyRepository(db *gorm.DB) *StudyRepository {
	return &StudyRepository{db: db}
}

func (r *StudyRepository) CreateFlashcard(ctx context.Context, card *model.Flashcard) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return fmt.Errorf("create flashcard: %w", err)
	}
	return nil
}

func (r *StudyRepository) ListFlashcards(ctx context.Context, userID uint) ([]model.Flashcard, error) {
	var cards []model.Flashcard
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("id DESC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *StudyRepository) CreateQuiz(ctx context.Context, quiz *model.Quiz) error {
	if err := r.db.WithContext(ctx).Create(quiz).Error; err != nil {
		return fmt.Errorf("create quiz: %w", err)
	}
	return nil
}

func (r *StudyRepository) ListQuizzes(ctx context.Context, userID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("id DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *StudyRepository) CreateGoal(ctx context.Context, goal *model.Goal) error {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

func (r *StudyRepository) ListGoals(ctx context.Context, userID uint) ([]model.Goal, error) {
	var goals []model.Goal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *StudyRepository) FindGoal(ctx context.Context, userID, goalID uint) (*model.Goal, error) {
	var goal model.Goal
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, goalID).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *StudyRepository) UpdateGoalProgress(ctx context.Context, goal *model.Goal, progress int) error {
	goal.Progress = progress
	if err := r.db.WithContext(ctx).Save(goal).Error; err != nil {
		return fmt.Errorf("update goal progress: %w", err)
	}
	return nil
}
