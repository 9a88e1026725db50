package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"lastminute/internal/auth"
	"lastminute/internal/model"
	"lastminute/internal/repository"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so login failures don't reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

// SignupInput represents data required to register an account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Semester int
}

// ProfileUpdate carries partial profile changes. Nil fields are untouched.
type ProfileUpdate struct {
	Name           *string
	Semester       *int
	TelegramChatID *int64
}

// UserService wraps account registration, login and profile management.
type UserService struct {
	userRepo     *repository.UserRepository
	categoryRepo *repository.CategoryRepository
	tokens       *auth.TokenManager
}

func NewUserService(userRepo *repository.UserRepository, categoryRepo *repository.CategoryRepository, tokens *auth.TokenManager) *UserService {
	return &UserService{userRepo: userRepo, categoryRepo: categoryRepo, tokens: tokens}
}

// Signup registers a student account, seeds its default planner category and
// returns a bearer token.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*model.User, string, error) {
	if len(input.Password) < 8 {
		return nil, "", fmt.Errorf("password must be at least 8 characters")
	}
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}
	user := model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         model.RoleStudent,
		Semester:     input.Semester,
	}
	if err := model.ValidateStruct(&user); err != nil {
		return nil, "", fmt.Errorf("invalid user: %w", err)
	}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		return nil, "", err
	}
	if err := s.categoryRepo.Create(ctx, &model.Category{UserID: user.ID, Name: "General"}); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) Get(ctx context.Context, userID uint) (*model.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Semester != nil {
		updates["semester"] = *update.Semester
	}
	if update.TelegramChatID != nil {
		updates["telegram_chat_id"] = *update.TelegramChatID
	}
	if len(updates) == 0 {
		return user, nil
	}
	if err := s.userRepo.Update(ctx, user, updates); err != nil {
		return nil, err
	}
	return user, nil
}
