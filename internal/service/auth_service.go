package service

import (
	"context"
	"errors"
	"time"

	"jf-travels-be/internal/dto"
	"jf-travels-be/internal/entity"
	"jf-travels-be/internal/pkg/logger"
	"jf-travels-be/internal/repository/contract"
	"jf-travels-be/pkg/identity"
	"jf-travels-be/pkg/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserBlocked        = errors.New("account is blocked")
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RevokeToken(ctx context.Context, token string)
	CheckAdmin(ctx context.Context, req *dto.CheckAdminRequest) (*dto.CheckAdminResponse, error)
}

type authService struct {
	userRepo    contract.UserRepository
	sessionRepo contract.SessionRepository
	provider    identity.Provider
	jwtSecret   []byte
	sessionTTL  time.Duration
	logger      logger.ILogger
}

func NewAuthService(
	userRepo contract.UserRepository,
	sessionRepo contract.SessionRepository,
	provider identity.Provider,
	jwtSecret string,
	sessionTTL time.Duration,
	sysLogger logger.ILogger,
) IAuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		provider:    provider,
		jwtSecret:   []byte(jwtSecret),
		sessionTTL:  sessionTTL,
		logger:      sysLogger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &hashStr,
		Role:         entity.UserRoleUser,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Auth", "User registered", map[string]interface{}{"email": user.Email})
	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status == entity.UserStatusBlocked {
		return nil, ErrUserBlocked
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokenId := uuid.NewString()
	claims := jwt.MapClaims{
		"jti":     tokenId,
		"user_id": user.Id.String(),
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.sessionTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	s.sessionRepo.Save(&store.Session{
		ID:        tokenId,
		UserID:    user.Id.String(),
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: time.Now(),
	})

	// Tell the identity bus a user is present; the session subscriber picks
	// this up and kicks off its role lookup.
	if err := s.provider.SignIn(&identity.UserRecord{Identity: user.Id.String(), Email: user.Email}); err != nil {
		s.logger.Warn("Auth", "Failed to publish sign-in notification", map[string]interface{}{"error": err.Error()})
	}

	return &dto.LoginResponse{Token: signed, Email: user.Email, Role: string(user.Role)}, nil
}

// RevokeToken drops the server-side session behind a token. Parse failures
// are ignored: revoking an invalid token is a no-op, not an error.
func (s *authService) RevokeToken(ctx context.Context, token string) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return
	}
	if jti, ok := claims["jti"].(string); ok {
		s.sessionRepo.Delete(jti)
	}
}

// CheckAdmin backs the role-lookup endpoint. Unknown identities are plain
// non-admins, not errors.
func (s *authService) CheckAdmin(ctx context.Context, req *dto.CheckAdminRequest) (*dto.CheckAdminResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	isAdmin := user != nil && user.Role == entity.UserRoleAdmin
	return &dto.CheckAdminResponse{IsAdmin: isAdmin}, nil
}
