package usecase

import (
	"context"

	"barber-booking/internal/infra"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type LoginOutput struct {
	Token string
	Admin *AdminView
}

// TokenValidator is the narrow surface the auth middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (*LoginOutput, error)
	Me(ctx context.Context, adminID uuid.UUID) (*AdminView, error)
}

type authCommandsImpl struct {
	admins AdminRepository
	tokens *jwt.Service
}

func NewAuthCommands(admins AdminRepository, tokens *jwt.Service) AuthCommands {
	return &authCommandsImpl{admins: admins, tokens: tokens}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, password string) (*LoginOutput, error) {
	record, err := a.admins.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateToken(record.ID, record.Email)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginOutput{
		Token: token,
		Admin: &AdminView{ID: record.ID, Email: record.Email},
	}, nil
}

func (a *authCommandsImpl) Me(ctx context.Context, adminID uuid.UUID) (*AdminView, error) {
	record, err := a.admins.FindByID(ctx, adminID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &AdminView{ID: record.ID, Email: record.Email}, nil
}
