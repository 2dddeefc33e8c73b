package service

import (
	"github.com/MKhiriev/go-biz-reviews/internal/config"
	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	BusinessService BusinessService
	PhotoService    PhotoService
	ReviewService   ReviewService
}

func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(repositories.UserRepository, cfg, logger),
		UserService:     NewUserService(repositories.UserRepository, logger),
		BusinessService: NewBusinessService(repositories.BusinessRepository, logger),
		PhotoService:    NewPhotoService(repositories.PhotoRepository, logger),
		ReviewService:   NewReviewService(repositories.ReviewRepository, logger),
	}
}
