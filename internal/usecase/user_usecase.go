package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidUserInput  = errors.New("invalid user input")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidNationalID = errors.New("national id must be 9 to 17 digits")
)

// IUserUseCase manages the minimal user profiles backing the identity
// resolver. National ids only get a format check; registry verification is
// out of scope, so NIDVerified stays false.

type IUserUseCase interface {
	Register(ctx context.Context, cmd RegisterUserCommand) (entities.UserProfile, error)
	GetByID(ctx context.Context, id string) (entities.UserProfile, error)
}

type RegisterUserCommand struct {
	Username   string
	Role       entities.Role
	NationalID string
}

type UserUseCase struct {
	users interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(users interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

func (u *UserUseCase) Register(ctx context.Context, cmd RegisterUserCommand) (entities.UserProfile, error) {
	cmd.Username = strings.TrimSpace(cmd.Username)
	if cmd.Username == "" {
		return entities.UserProfile{}, ErrInvalidUserInput
	}
	if !entities.ValidRole(cmd.Role) {
		return entities.UserProfile{}, ErrInvalidRole
	}
	cmd.NationalID = strings.TrimSpace(cmd.NationalID)
	if cmd.NationalID != "" && !validNationalID(cmd.NationalID) {
		return entities.UserProfile{}, ErrInvalidNationalID
	}

	profile := entities.UserProfile{
		ID:         uuid.NewString(),
		Username:   cmd.Username,
		Role:       cmd.Role,
		NationalID: cmd.NationalID,
	}
	return u.users.Create(ctx, profile)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.UserProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.UserProfile{}, ErrUserNotFound
	}
	p, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if p.ID == "" {
		return entities.UserProfile{}, ErrUserNotFound
	}
	return p, nil
}

func validNationalID(nid string) bool {
	if len(nid) < 9 || len(nid) > 17 {
		return false
	}
	for _, r := range nid {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
