package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
	"github.com/MKhiriev/go-biz-reviews/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{userRepository: userRepository, logger: logger}
}

// GetUser fetches a user profile by id.
//
// Returns store.ErrNoUserWasFound (wrapped) when no user has the given id.
// The returned record still carries the password hash; it is stripped at the
// serialization boundary by the model's JSON tags.
func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}
