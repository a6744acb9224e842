package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/learnhub-edu/learnhub-api/config"
	"github.com/learnhub-edu/learnhub-api/internal/dto"
	"github.com/learnhub-edu/learnhub-api/internal/model"
	"github.com/learnhub-edu/learnhub-api/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on a failed login, without
// distinguishing an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService is the session provider: it creates accounts, issues
// bearer tokens and resolves them back to a user identity.
type AuthService interface {
	Register(req dto.RegisterDTO) (*dto.UserDTO, error)
	Login(req dto.LoginDTO) (*dto.TokenDTO, error)
	ParseToken(token string) (uint, error)
	GetUser(id uint) (*dto.UserDTO, error)
}

type authService struct {
	userRepo repository.UserRepository
	secret   []byte
	ttl      time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		secret:   []byte(cfg.JWT.Secret),
		ttl:      time.Duration(cfg.JWT.TTLHours) * time.Hour,
	}
}

func (s *authService) Register(req dto.RegisterDTO) (*dto.UserDTO, error) {
	if existing, err := s.userRepo.FindByEmail(req.Email); err == nil && existing.ID != 0 {
		return nil, fmt.Errorf("an account with email %s already exists", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Register: failed to hash password")
		return nil, fmt.Errorf("error processing password: %w", err)
	}

	user := model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to create user")
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	return &dto.UserDTO{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

func (s *authService) Login(req dto.LoginDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: failed to sign token")
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &dto.TokenDTO{Token: signed, ExpiresIn: int64(s.ttl.Seconds())}, nil
}

// ParseToken validates a bearer token and returns the user id it names.
func (s *authService) ParseToken(token string) (uint, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("parsing token: %w", err)
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return 0, errors.New("invalid token claims")
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid subject in token: %w", err)
	}
	return uint(id), nil
}

func (s *authService) GetUser(id uint) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("user not found with ID %d: %w", id, err)
	}
	return &dto.UserDTO{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}
