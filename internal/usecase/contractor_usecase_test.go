package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fundtracker/internal/domain/entities"
	mock_interfaces "fundtracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type contractorFixtures struct {
	repo     *mock_interfaces.MockIContractorRepository
	identity *mock_interfaces.MockIIdentityResolver
	uc       *ContractorUseCase
}

func newContractorFixtures(t *testing.T) contractorFixtures {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIContractorRepository(ctrl)
	identity := mock_interfaces.NewMockIIdentityResolver(ctrl)
	audit := mock_interfaces.NewMockIAuditSink(ctrl)
	clock := mock_interfaces.NewMockIClock(ctrl)

	audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	clock.EXPECT().Now().Return(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)).AnyTimes()

	return contractorFixtures{repo: repo, identity: identity, uc: NewContractorUseCase(repo, identity, audit, clock)}
}

func TestContractorUseCase_Register(t *testing.T) {
	t.Run("missing user id", func(t *testing.T) {
		f := newContractorFixtures(t)
		_, err := f.uc.Register(context.Background(), RegisterContractorCommand{UserID: "  "})
		if !errors.Is(err, ErrInvalidContractorInput) {
			t.Fatalf("expected ErrInvalidContractorInput, got %v", err)
		}
	})

	t.Run("negative experience", func(t *testing.T) {
		f := newContractorFixtures(t)
		_, err := f.uc.Register(context.Background(), RegisterContractorCommand{UserID: "u-1", YearsOfExperience: -1})
		if !errors.Is(err, ErrInvalidContractorInput) {
			t.Fatalf("expected ErrInvalidContractorInput, got %v", err)
		}
	})

	t.Run("starts at the initial rating, unsuspended", func(t *testing.T) {
		f := newContractorFixtures(t)
		f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Contractor{})).DoAndReturn(
			func(_ context.Context, c entities.Contractor) (entities.Contractor, error) {
				if c.ID == "" || c.UserID != "u-1" {
					t.Fatalf("unexpected contractor: %+v", c)
				}
				if c.Rating != entities.InitialRating || c.IsSuspended {
					t.Fatalf("expected fresh account at %.2f, got %+v", entities.InitialRating, c)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		created, err := f.uc.Register(context.Background(), RegisterContractorCommand{UserID: " u-1 ", YearsOfExperience: 4, SkillLevel: "SENIOR", ActorID: "gov-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestContractorUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		f := newContractorFixtures(t)
		_, err := f.uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrContractorNotFound) {
			t.Fatalf("expected ErrContractorNotFound, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newContractorFixtures(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Contractor{}, nil)

		_, err := f.uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrContractorNotFound) {
			t.Fatalf("expected ErrContractorNotFound, got %v", err)
		}
	})
}

func TestContractorUseCase_Reinstate(t *testing.T) {
	t.Run("non-government actor", func(t *testing.T) {
		f := newContractorFixtures(t)
		f.identity.EXPECT().ResolveRole(gomock.Any(), "cit-1").Return(entities.RoleCitizen, nil)

		_, err := f.uc.Reinstate(context.Background(), "c-1", "cit-1")
		if !errors.Is(err, ErrActorNotAuthorized) {
			t.Fatalf("expected ErrActorNotAuthorized, got %v", err)
		}
	})

	t.Run("not suspended", func(t *testing.T) {
		f := newContractorFixtures(t)
		f.identity.EXPECT().ResolveRole(gomock.Any(), "gov-1").Return(entities.RoleGovernment, nil)
		f.repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contractor{ID: "c-1", Rating: 4.20}, nil)

		_, err := f.uc.Reinstate(context.Background(), "c-1", "gov-1")
		if !errors.Is(err, ErrContractorNotSuspended) {
			t.Fatalf("expected ErrContractorNotSuspended, got %v", err)
		}
	})

	t.Run("clears the suspension", func(t *testing.T) {
		f := newContractorFixtures(t)
		f.identity.EXPECT().ResolveRole(gomock.Any(), "gov-1").Return(entities.RoleGovernment, nil)
		f.repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contractor{ID: "c-1", Rating: 3.10, IsSuspended: true}, nil)
		f.repo.EXPECT().Reinstate(gomock.Any(), "c-1").Return(entities.Contractor{ID: "c-1", Rating: 3.10}, nil)

		got, err := f.uc.Reinstate(context.Background(), "c-1", "gov-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.IsSuspended {
			t.Fatalf("expected cleared suspension, got %+v", got)
		}
	})
}
