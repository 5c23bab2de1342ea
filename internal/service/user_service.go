package service

import (
	"context"
	"fmt"
	"io"

	"github.com/niiakoadjei/BlogApp/internal/auth"
	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/models"
	"github.com/niiakoadjei/BlogApp/internal/repository"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// UserService handles profile reads and updates.
type UserService struct {
	userRepo       repository.UserRepository
	sessionRepo    repository.SessionRepository
	imageService   *ImageService
	passwordConfig *auth.PasswordConfig
}

// NewUserService creates a user service from its dependencies.
func NewUserService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	imageService *ImageService,
	passwordConfig *auth.PasswordConfig,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		imageService:   imageService,
		passwordConfig: passwordConfig,
	}
}

// GetUserByID returns a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserByUsername returns a user by exact username.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

// UpdateUser applies a profile update. A new username or email must be
// unused, except that keeping the current value is always allowed.
func (s *UserService) UpdateUser(ctx context.Context, id int64, update *models.UserUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Username != "" && update.Username != user.Username {
		exists, err := s.userRepo.ExistsByUsername(ctx, update.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, utils.NewDuplicateError("User", constants.ColumnUsername, update.Username)
		}
		user.Username = update.Username
	}

	if update.Email != "" && update.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, update.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, utils.NewDuplicateError("User", constants.ColumnEmail, update.Email)
		}
		user.Email = update.Email
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateProfilePicture stores a new picture and replaces the old one. The
// previous file is removed after the database points at the new one.
func (s *UserService) UpdateProfilePicture(ctx context.Context, id int64, picture io.Reader, filename string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newFile, err := s.imageService.SavePicture(picture, filename)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateImage(ctx, id, newFile); err != nil {
		if removeErr := s.imageService.Remove(newFile); removeErr != nil {
			return nil, fmt.Errorf("failed to clean up image after update error: %w", removeErr)
		}
		return nil, err
	}

	oldFile := user.ImageFile
	user.ImageFile = newFile

	if err := s.imageService.Remove(oldFile); err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePassword verifies the current password and stores a new hash. All
// sessions of the user are invalidated so stolen refresh tokens die with
// the old password.
func (s *UserService) ChangePassword(ctx context.Context, id int64, change *models.PasswordChange) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := auth.CheckPassword(change.CurrentPassword, user.PasswordHash); err != nil {
		return err
	}

	hash, err := auth.HashPassword(change.NewPassword, s.passwordConfig)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ChangePassword(ctx, id, hash); err != nil {
		return err
	}

	if _, err := s.sessionRepo.DeleteByUserID(ctx, id); err != nil {
		return err
	}

	return nil
}
