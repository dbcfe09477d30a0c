package service

import (
	"errors"

	"quiz_api_backend/internal/config"
	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/repository"
	"quiz_api_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, Cfg: cfg}
}

func (s *AuthService) Register(user *model.User) (*util.TokenPair, error) {
	_, err := s.UserRepo.FindByUsername(user.Username)
	if err == nil {
		return nil, util.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashedPassword)

	if user.Role == "" {
		user.Role = model.NormalUser
	}

	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	return util.GenerateTokenPair(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime, s.Cfg.JWT.RefreshExpire)
}

func (s *AuthService) Login(username, password string) (*model.User, *util.TokenPair, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		return nil, nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, util.ErrInvalidCredentials
	}

	pair, err := util.GenerateTokenPair(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime, s.Cfg.JWT.RefreshExpire)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh 用刷新令牌换取新的访问令牌
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := util.ParseJWT(refreshToken, s.Cfg.JWT.Secret)
	if err != nil || claims.TokenType != util.TokenTypeRefresh {
		return "", util.ErrInvalidRefresh
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return "", util.ErrInvalidRefresh
	}

	return util.GenerateAccessToken(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}
