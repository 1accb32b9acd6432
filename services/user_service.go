package services

import (
	"errors"

	"github.com/zenott/boilerplate-project-exercisetracker/apperrors"
	"github.com/zenott/boilerplate-project-exercisetracker/models"

	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) CreateUser(username string) (*models.User, error) {
	if username == "" {
		return nil, apperrors.NewValidation("username is required")
	}

	user := models.User{Username: username}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, apperrors.NewStore("create user", err)
	}
	return &user, nil
}

// FindUserByID returns (nil, nil) when no user has the given id.
func (s *UserService) FindUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewStore("find user", err)
	}
	return &user, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, apperrors.NewStore("list users", err)
	}
	return users, nil
}
