package service

import (
	"context"
	"fmt"

	"student-assist/internal/model"
	"student-assist/internal/repository"
)

// StudyService wraps flashcards, quizzes and goals.
type StudyService struct {
	studyRepo *repository.StudyRepository
}

func NewStudyService(studyRepo *repository.StudyRepository) *StudyService {
	return &StudyService{studyRepo: studyRepo}
}

func (s *StudyService) AddFlashcard(ctx context.Context, user *model.User, question, answer string) (*model.Flashcard, error) {
	if question == "" || answer == "" {
		return nil, fmt.Errorf("question and answer are required")
	}
	card := model.Flashcard{UserID: user.ID, Question: question, Answer: answer}
	if err := s.studyRepo.CreateFlashcard(ctx, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *StudyService) ListFlashcards(ctx context.Context, user *model.User) ([]model.Flashcard, error) {
	return s.studyRepo.ListFlashcards(ctx, user.ID)
}

func (s *StudyService) AddQuiz(ctx context.Context, user *model.User, title, questions string) (*model.Quiz, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	quiz := model.Quiz{UserID: user.ID, Title: title, Questions: questions}
	if err := s.studyRepo.CreateQuiz(ctx, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *StudyService) ListQuizzes(ctx context.Context, user *model.User) ([]model.Quiz, error) {
	return s.studyRepo.ListQuizzes(ctx, user.ID)
}

func (s *StudyService) AddGoal(ctx context.Context, user *model.User, text string, target int) (*model.Goal, error) {
	if text == "" {
		return nil, fmt.Errorf("goal text is required")
	}
	if target < 1 {
		return nil, fmt.Errorf("target value must be positive")
	}
	goal := model.Goal{UserID: user.ID, Goal: text, TargetValue: target}
	if err := s.studyRepo.CreateGoal(ctx, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *StudyService) ListGoals(ctx context.Context, user *model.User) ([]model.Goal, error) {
	return s.studyRepo.ListGoals(ctx, user.ID)
}

// UpdateGoalProgress clamps progress to [0, target] before saving.
func (s *StudyService) UpdateGoalProgress(ctx context.Context, user *model.User, goalID uint, progress int) (*model.Goal, error) {
	goal, err := s.studyRepo.FindGoal(ctx, user.ID, goalID)
	if err != nil {
		return nil, err
	}
	if progress < 0 {
		progress = 0
	}
	if progress > goal.TargetValue {
		progress = goal.TargetValue
	}
	if err := s.studyRepo.UpdateGoalProgress(ctx, goal, progress); err != nil {
		return nil, err
	}
	return goal, nil
}
