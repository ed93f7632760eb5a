package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/config"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/repository"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/worker"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// EmailDispatcher is the slice of worker.Dispatcher the auth flow needs.
// Nil disables notifications (tests, setups without Redis/SMTP).
type EmailDispatcher interface {
	EnqueueEmail(ctx context.Context, payload worker.EmailJobPayload) error
}

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)

	// Admin operations
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	ListPending(ctx context.Context) ([]dto.UserResponse, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error

	// EnsureAdmin creates the default admin account at startup if missing.
	EnsureAdmin(ctx context.Context) error
}

type authService struct {
	repo       repository.UserRepository
	cfg        *config.Config
	dispatcher EmailDispatcher
}

func NewAuthService(repo repository.UserRepository, cfg *config.Config, dispatcher EmailDispatcher) AuthService {
	return &authService{repo: repo, cfg: cfg, dispatcher: dispatcher}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, errors.New("El email ya está registrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		IsAdmin:      false,
		IsApproved:   false,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Message: "Usuario registrado. Esperando aprobación del administrador.",
		UserID:  user.ID.String(),
	}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, errors.New("Credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("Credenciales inválidas")
	}
	if !user.IsApproved {
		return nil, ErrCuentaPendiente
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.New("Usuario no encontrado")
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out, nil
}

func (s *authService) ListPending(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out, nil
}

func (s *authService) Approve(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("Usuario no encontrado")
	}
	if user.IsApproved {
		return nil
	}
	user.IsApproved = true
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	if s.dispatcher != nil {
		payload := worker.EmailJobPayload{
			ToEmail: user.Email,
			Subject: "Cuenta aprobada - HubManager",
			Body:    fmt.Sprintf("Hola %s, tu cuenta ha sido aprobada. Ya puedes iniciar sesión.", user.FullName),
		}
		if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
			log.Error().Err(err).Str("user", user.Email).Msg("failed to enqueue approval email")
		}
	}
	return nil
}

func (s *authService) Reject(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *authService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *authService) EnsureAdmin(ctx context.Context) error {
	if _, err := s.repo.FindByEmail(ctx, s.cfg.AdminEmail); err == nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &model.User{
		Email:        s.cfg.AdminEmail,
		PasswordHash: string(hash),
		FullName:     "Administrador",
		IsAdmin:      true,
		IsApproved:   true,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Info().Str("email", admin.Email).Msg("default admin created")
	return nil
}

// ErrCuentaPendiente distinguishes 403 (unapproved account) from 401.
var ErrCuentaPendiente = errors.New("Tu cuenta está pendiente de aprobación")

func (s *authService) generateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID.String(),
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID.String(),
		Email:      u.Email,
		FullName:   u.FullName,
		IsAdmin:    u.IsAdmin,
		IsApproved: u.IsApproved,
		CreatedAt:  u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
