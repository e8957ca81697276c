package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"sakhi-support-be/internal/config"
	"sakhi-support-be/internal/dto"
	"sakhi-support-be/internal/entity"
	"sakhi-support-be/internal/pkg/logger"
	"sakhi-support-be/internal/pkg/mailer"
	"sakhi-support-be/internal/pkg/serverutils"
	"sakhi-support-be/internal/repository/specification"
	"sakhi-support-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// disposableEmailDomains are throwaway providers we refuse registrations from.
var disposableEmailDomains = []string{
	"10minutemail.com",
	"tempmail.org",
	"guerrillamail.com",
	"mailinator.com",
	"temp-mail.org",
	"throwaway.email",
	"fakeinbox.com",
	"getnada.com",
	"getairmail.com",
}

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	Me(ctx context.Context, email string) (*dto.MeResponse, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	jwtConfig    config.JWTConfig
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	jwtConfig config.JWTConfig,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		jwtConfig:    jwtConfig,
		emailService: emailService,
		logger:       log,
	}
}

func validatePasswordStrength(password string) error {
	if len(password) < 8 {
		return serverutils.NewValidationError("Password must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return serverutils.NewValidationError("Password must contain at least one uppercase letter")
	}
	if !hasLower {
		return serverutils.NewValidationError("Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return serverutils.NewValidationError("Password must contain at least one digit")
	}
	if !hasSpecial {
		return serverutils.NewValidationError("Password must contain at least one special character")
	}
	return nil
}

func isDisposableEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	for _, blocked := range disposableEmailDomains {
		if domain == blocked {
			return true
		}
	}
	return false
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := validatePasswordStrength(req.Password); err != nil {
		return nil, err
	}
	if isDisposableEmail(req.Email) {
		return nil, serverutils.NewValidationError("Disposable email addresses are not allowed")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewValidationError("Email already registered")
	}

	existing, err = uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewValidationError("Username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		IsActive:     true,
		IsVerified:   false,
	}
	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	verification := entity.EmailVerification{
		Id:        uuid.New(),
		Email:     user.Email,
		Token:     code,
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}
	if err := uow.UserRepository().CreateEmailVerification(ctx, &verification); err != nil {
		s.logger.Warn("AuthService", "Failed to persist verification code", map[string]interface{}{
			"email": user.Email,
			"error": err.Error(),
		})
	}

	// Registration must not block on SMTP.
	go func(email, code string) {
		if err := s.emailService.SendVerificationCode(email, code); err != nil {
			s.logger.Warn("AuthService", "Failed to send verification email", map[string]interface{}{
				"email": email,
				"error": err.Error(),
			})
		}
	}(user.Email, code)

	s.logger.Info("AuthService", "User registered", map[string]interface{}{
		"user_id": user.Id.String(),
		"email":   user.Email,
	})

	return &dto.RegisterResponse{
		Id:         user.Id,
		Email:      user.Email,
		Username:   user.Username,
		IsActive:   user.IsActive,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}, nil
}

func (s *authService) issueTokenPair(email string) (*dto.TokenResponse, error) {
	accessTTL := time.Duration(s.jwtConfig.AccessTokenExpireMinutes) * time.Minute
	refreshTTL := time.Duration(s.jwtConfig.RefreshTokenExpireDays) * 24 * time.Hour

	accessToken, err := serverutils.IssueToken(s.jwtConfig.Secret, email, serverutils.TokenTypeAccess, accessTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := serverutils.IssueToken(s.jwtConfig.Secret, email, serverutils.TokenTypeRefresh, refreshTTL)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewUnauthorizedError("Incorrect email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewUnauthorizedError("Incorrect email or password")
	}

	if !user.IsActive {
		return nil, serverutils.NewValidationError("Inactive user")
	}

	return s.issueTokenPair(user.Email)
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	email, err := serverutils.VerifyToken(s.jwtConfig.Secret, req.RefreshToken, serverutils.TokenTypeRefresh)
	if err != nil {
		return nil, serverutils.NewUnauthorizedError("Invalid refresh token")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewUnauthorizedError("User not found")
	}
	if !user.IsActive {
		return nil, serverutils.NewValidationError("Inactive user")
	}

	return s.issueTokenPair(user.Email)
}

func (s *authService) Me(ctx context.Context, email string) (*dto.MeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}

	return &dto.MeResponse{
		Id:         user.Id,
		Email:      user.Email,
		Username:   user.Username,
		IsActive:   user.IsActive,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}, nil
}
