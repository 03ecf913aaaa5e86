package vocab

import (
	"context"
	"errors"

	"github.com/ilystsov/vocabulary-builder/internal/model"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser stores a new user. The password must already be hashed;
// plaintext never reaches this layer.
func (s *UserService) CreateUser(ctx context.Context, username, hashedPassword string) (*model.User, error) {
	user := model.User{
		Username:       username,
		HashedPassword: hashedPassword,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByUsername returns (nil, nil) when no such user exists.
func (s *UserService) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
