package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/QuantumLuke/QuantumShopsBE/models"
	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

const tokenTTL = 24 * time.Hour

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserID uint   `json:"user_id"`
	Token  string `json:"token"`
}

type AuthService struct {
	db     *gorm.DB
	secret []byte
}

func NewAuthService(db *gorm.DB, secret []byte) *AuthService {
	return &AuthService{db: db, secret: secret}
}

// Login verifies credentials and issues a signed session token. The failure
// message never reveals whether the email or the password was wrong.
func (s *AuthService) Login(req LoginRequest) (*LoginResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shoperr.Unauthorized("invalid email or password")
		}
		return nil, shoperr.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, shoperr.Unauthorized("invalid email or password")
	}

	token, err := s.generateToken(&user)
	if err != nil {
		return nil, shoperr.Internal(err)
	}
	return &LoginResponse{UserID: user.ID, Token: token}, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
