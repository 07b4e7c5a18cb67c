package usecase

import (
	"context"
	"errors"
	"testing"

	"fundtracker/internal/domain/entities"
	mock_interfaces "fundtracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_Register(t *testing.T) {
	t.Run("missing username", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.Register(context.Background(), RegisterUserCommand{Username: "  ", Role: entities.RoleCitizen})
		if !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.Register(context.Background(), RegisterUserCommand{Username: "ana", Role: "WIZARD"})
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("national id format", func(t *testing.T) {
		cases := []struct {
			name string
			nid  string
			ok   bool
		}{
			{name: "too short", nid: "12345678", ok: false},
			{name: "nine digits", nid: "123456789", ok: true},
			{name: "seventeen digits", nid: "12345678901234567", ok: true},
			{name: "eighteen digits", nid: "123456789012345678", ok: false},
			{name: "letters", nid: "12345678X", ok: false},
			{name: "absent is allowed", nid: "", ok: true},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				repo := mock_interfaces.NewMockIUserRepository(ctrl)
				uc := NewUserUseCase(repo)

				if tc.ok {
					repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.UserProfile{})).DoAndReturn(
						func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) {
							if p.ID == "" || p.NIDVerified {
								t.Fatalf("unexpected profile: %+v", p)
							}
							return p, nil
						},
					)
				}

				_, err := uc.Register(context.Background(), RegisterUserCommand{Username: "ana", Role: entities.RoleCitizen, NationalID: tc.nid})
				if tc.ok && err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !tc.ok && !errors.Is(err, ErrInvalidNationalID) {
					t.Fatalf("expected ErrInvalidNationalID, got %v", err)
				}
			})
		}
	})
}

func TestUserUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.UserProfile{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.UserProfile{ID: "u-1", Username: "ana", Role: entities.RoleGovernment}, nil)

		got, err := uc.GetByID(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Role != entities.RoleGovernment {
			t.Fatalf("unexpected profile: %+v", got)
		}
	})
}
