package services

import (
	"context"
	"net/http"
	"strings"

	"marketplace/collections"
	apperrors "marketplace/errors"
	"marketplace/models"
	"marketplace/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration and email verification. Account access
// control and session issuance live in the auth framework, not here.
type UserService struct {
	users     repository.UserRepository
	serverURL string
	logger    *zap.Logger
}

func NewUserService(users repository.UserRepository, serverURL string, logger *zap.Logger) *UserService {
	return &UserService{users: users, serverURL: serverURL, logger: logger}
}

// Register creates an unverified user with the collection's default role
// and returns the user together with the verification email body. Sending
// the email is delegated to the mail layer.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, string, *apperrors.Error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", apperrors.InvalidArgument("Email and password are required")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", apperrors.New(http.StatusConflict, "Email already registered", nil)
	} else if err != mongo.ErrNoDocuments {
		return nil, "", apperrors.Internal("Failed to look up user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.Internal("Failed to hash password", err)
	}

	user := &models.User{
		ID:                uuid.NewString(),
		Email:             email,
		Password:          string(hash),
		Role:              collections.Users.DefaultValue("role"),
		Verified:          false,
		VerificationToken: uuid.NewString(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", apperrors.Internal("Failed to create user", err)
	}

	emailHTML := collections.VerificationEmailHTML(s.serverURL, user.VerificationToken)
	s.logger.Info("Verification email generated",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
	)
	return user, emailHTML, nil
}

// VerifyEmail marks the user owning the token as verified.
func (s *UserService) VerifyEmail(ctx context.Context, token string) *apperrors.Error {
	if token == "" {
		return apperrors.InvalidArgument("Verification token is required")
	}

	user, err := s.users.FindByVerificationToken(ctx, token)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return apperrors.NotFound("Invalid verification token")
		}
		return apperrors.Internal("Failed to look up verification token", err)
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return apperrors.Internal("Failed to verify user", err)
	}
	return nil
}
