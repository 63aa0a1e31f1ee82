package store

import (
	"errors"

	"github.com/tastebook-dev/tastebook/internal/models"
	"gorm.io/gorm"
)

// UserStore holds user records. Identity fields are immutable after
// registration; there is no update or delete path.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user. Returns ErrConflict when the username or email
// is already taken.
func (s *UserStore) Create(user *models.User) error {
	var existing models.User

	err := s.db.Where("username = ? OR email = ?", user.Username, user.Email).First(&existing).Error

	if err == nil {
		return ErrConflict
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.db.Create(user).Error
}

// FindByIdentifier looks a user up by username or email.
func (s *UserStore) FindByIdentifier(identifier string) (*models.User, error) {
	var user models.User

	err := s.db.Where("username = ? OR email = ?", identifier, identifier).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User

	err := s.db.First(&user, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}
