package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/QuantumLuke/QuantumShopsBE/models"
	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type UpdateUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser registers a new user. The email must be unused and the password
// is bcrypt-hashed before it ever touches storage.
func (s *UserService) CreateUser(req CreateUserRequest) (*models.User, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, shoperr.Internal(err)
	}
	if count > 0 {
		return nil, shoperr.AlreadyExists("user with email %s already exists", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shoperr.Internal(err)
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hash),
		Role:      models.RoleUser,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// a concurrent signup can slip past the count check and land on
		// the unique email index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shoperr.AlreadyExists("user with email %s already exists", req.Email)
		}
		return nil, shoperr.Internal(err)
	}
	return &user, nil
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Cart.Items").Preload("Orders").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shoperr.NotFound("user not found with id: %d", id)
		}
		return nil, shoperr.Internal(err)
	}
	return &user, nil
}

func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shoperr.NotFound("user not found with email: %s", email)
		}
		return nil, shoperr.Internal(err)
	}
	return &user, nil
}

func (s *UserService) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, shoperr.Internal(err)
	}
	return users, nil
}

// UpdateUser changes profile fields only; email and password are fixed here.
func (s *UserService) UpdateUser(id uint, req UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shoperr.NotFound("user not found with id: %d", id)
		}
		return nil, shoperr.Internal(err)
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if err := s.db.Save(&user).Error; err != nil {
		return nil, shoperr.Internal(err)
	}
	return &user, nil
}

func (s *UserService) DeleteUser(id uint) error {
	result := s.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return shoperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return shoperr.NotFound("user not found with id: %d", id)
	}
	return nil
}
