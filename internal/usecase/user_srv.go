package usecase

import (
	"context"
	"fmt"
	"time"

	"bike-service/internal/data/entity"
	"bike-service/internal/data/repository"
	"bike-service/internal/dto/request"
	"bike-service/internal/dto/response"
	"bike-service/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error)
	PromoteToMechanic(ctx context.Context, userID string) (*response.MechanicResponse, error)
	GetUser(ctx context.Context, userID string) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrMissingFields, utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleCustomer,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to register user",
			zap.Error(err),
			zap.String("email", req.Email),
		)
		return nil, fmt.Errorf("register user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", req.Email),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingFields, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// PromoteToMechanic turns an existing account into a mechanic: a mechanic
// record is created from the account's name and phone, and the account's
// role is switched.
func (s *userService) PromoteToMechanic(ctx context.Context, userID string) (*response.MechanicResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	existing, err := s.repo.Mechanic.FindByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check mechanic record: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyMechanic
	}

	now := time.Now()
	mechanic := &entity.Mechanic{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        user.FullName,
		PhoneNumber: user.PhoneNumber,
		UserID:      &id,
	}

	if err := s.repo.Mechanic.Create(ctx, mechanic); err != nil {
		s.log.Error("Failed to create mechanic record",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("create mechanic: %w", err)
	}

	if err := s.repo.User.UpdateRole(ctx, id, entity.RoleMechanic); err != nil {
		return nil, fmt.Errorf("update user role: %w", err)
	}

	s.log.Info("User promoted to mechanic",
		zap.String("user_id", userID),
		zap.String("mechanic_id", mechanic.ID.String()),
	)

	resp := response.MechanicToResponse(mechanic, nil)
	return &resp, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// DeleteUser removes the account and all of its bookings.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.repo.Booking.DeleteByUserID(ctx, id); err != nil {
		return fmt.Errorf("delete bookings for user %s: %w", userID, err)
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("delete user %s: %w", userID, err)
	}

	s.log.Info("User deleted", zap.String("user_id", userID))
	return nil
}
