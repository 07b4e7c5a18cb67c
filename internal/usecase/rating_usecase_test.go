package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase/interfaces"
	mock_interfaces "fundtracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type ratingFixtures struct {
	ratings     *mock_interfaces.MockIRatingRepository
	contractors *mock_interfaces.MockIContractorRepository
	identity    *mock_interfaces.MockIIdentityResolver
	ledger      *stubLedger
	uc          *RatingUseCase
}

func newRatingFixtures(t *testing.T) ratingFixtures {
	ctrl := gomock.NewController(t)
	ratings := mock_interfaces.NewMockIRatingRepository(ctrl)
	contractors := mock_interfaces.NewMockIContractorRepository(ctrl)
	identity := mock_interfaces.NewMockIIdentityResolver(ctrl)
	audit := mock_interfaces.NewMockIAuditSink(ctrl)
	clock := mock_interfaces.NewMockIClock(ctrl)
	ledger := &stubLedger{}

	audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	clock.EXPECT().Now().Return(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)).AnyTimes()

	return ratingFixtures{
		ratings:     ratings,
		contractors: contractors,
		identity:    identity,
		ledger:      ledger,
		uc:          NewRatingUseCase(ratings, contractors, ledger, identity, audit, clock),
	}
}

func TestRatingUseCase_Create(t *testing.T) {
	t.Run("missing ids", func(t *testing.T) {
		f := newRatingFixtures(t)
		_, err := f.uc.Create(context.Background(), CreateRatingCommand{ContractorID: "c-1", RatingValue: 4})
		if !errors.Is(err, ErrInvalidRatingInput) {
			t.Fatalf("expected ErrInvalidRatingInput, got %v", err)
		}
	})

	t.Run("value out of range", func(t *testing.T) {
		for _, value := range []int{0, 6, -1} {
			f := newRatingFixtures(t)
			_, err := f.uc.Create(context.Background(), CreateRatingCommand{
				ContractorID: "c-1", ProjectID: "p-1", RatingValue: value, ActorID: "cit-1",
			})
			if !errors.Is(err, ErrRatingValueOutOfRange) {
				t.Fatalf("value %d: expected ErrRatingValueOutOfRange, got %v", value, err)
			}
		}
	})

	t.Run("unknown contractor", func(t *testing.T) {
		f := newRatingFixtures(t)
		f.contractors.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Contractor{}, nil)

		_, err := f.uc.Create(context.Background(), CreateRatingCommand{
			ContractorID: "missing", ProjectID: "p-1", RatingValue: 4, ActorID: "cit-1",
		})
		if !errors.Is(err, ErrContractorNotFound) {
			t.Fatalf("expected ErrContractorNotFound, got %v", err)
		}
	})

	t.Run("duplicate review for the same triple", func(t *testing.T) {
		f := newRatingFixtures(t)
		f.contractors.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contractor{ID: "c-1"}, nil)
		f.ratings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ContractorRating{}, interfaces.ErrUniqueKeyViolation)

		_, err := f.uc.Create(context.Background(), CreateRatingCommand{
			ContractorID: "c-1", ProjectID: "p-1", RatingValue: 4, ActorID: "cit-1",
		})
		if !errors.Is(err, ErrDuplicateReview) {
			t.Fatalf("expected ErrDuplicateReview, got %v", err)
		}
	})

	t.Run("negative value arms the evidence gate", func(t *testing.T) {
		cases := []struct {
			value    int
			negative bool
		}{
			{value: 1, negative: true},
			{value: 2, negative: true},
			{value: 3, negative: false},
			{value: 4, negative: false},
			{value: 5, negative: false},
		}

		for _, tc := range cases {
			f := newRatingFixtures(t)
			f.contractors.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contractor{ID: "c-1"}, nil)
			f.ratings.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ContractorRating{})).DoAndReturn(
				func(_ context.Context, r entities.ContractorRating) (entities.ContractorRating, error) {
					if r.IsNegative != tc.negative || r.EvidenceRequired != tc.negative {
						t.Fatalf("value %d: unexpected gate flags: %+v", tc.value, r)
					}
					if r.EvidenceProvided || r.IsVerified {
						t.Fatalf("value %d: fresh review must start unlatched and unverified", tc.value)
					}
					return r, nil
				},
			)

			_, err := f.uc.Create(context.Background(), CreateRatingCommand{
				ContractorID: "c-1", ProjectID: "p-1", RatingValue: tc.value, ActorID: "cit-1",
			})
			if err != nil {
				t.Fatalf("value %d: unexpected error: %v", tc.value, err)
			}
		}
	})
}

func TestRatingUseCase_RecordEvidence(t *testing.T) {
	t.Run("blank file ref", func(t *testing.T) {
		f := newRatingFixtures(t)
		_, err := f.uc.RecordEvidence(context.Background(), "r-1", "  ", "cit-1")
		if !errors.Is(err, ErrInvalidRatingInput) {
			t.Fatalf("expected ErrInvalidRatingInput, got %v", err)
		}
	})

	t.Run("latches the stored flag", func(t *testing.T) {
		f := newRatingFixtures(t)
		f.ratings.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ContractorRating{ID: "r-1", IsNegative: true, EvidenceRequired: true}, nil)
		f.ratings.EXPECT().AddEvidence(gomock.Any(), "r-1", gomock.AssignableToTypeOf(entities.RatingEvidence{})).DoAndReturn(
			func(_ context.Context, _ string, ev entities.RatingEvidence) (entities.ContractorRating, error) {
				if ev.ID == "" || ev.FileRef != "s3://bucket/invoice.pdf" {
					t.Fatalf("unexpected evidence: %+v", ev)
				}
				return entities.ContractorRating{ID: "r-1", IsNegative: true, EvidenceRequired: true, EvidenceProvided: true}, nil
			},
		)

		got, err := f.uc.RecordEvidence(context.Background(), "r-1", "s3://bucket/invoice.pdf", "cit-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.EvidenceProvided {
			t.Fatalf("expected latched evidence flag, got %+v", got)
		}
	})
}

func TestRatingUseCase_VerifyAndApply(t *testing.T) {
	t.Run("non-government actor", func(t *testing.T) {
		f := newRatingFixtures(t)
		f.identity.EXPECT().ResolveRole(gomock.Any(), "cit-1").Return(entities.RoleCitizen, nil)

		_, err := f.uc.VerifyAndApply(context.Background(), "r-1", "cit-1")
		if !errors.Is(err, ErrActorNotAuthorized) {
			t.Fatalf("expected ErrActorNotAuthorized, got %v", err)
		}
	})

	t.Run("negative review without evidence is blocked", func(t *testing.T) {
		f := newRatingFixtures(t)
		f.identity.EXPECT().ResolveRole(gomock.Any(), "gov-1").Return(entities.RoleGovernment, nil)
		f.ratings.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ContractorRating{
			ID: "r-1", ContractorID: "c-1", RatingValue: 1, IsNegative: true, EvidenceRequired: true,
		}, nil)

		_, err := f.uc.VerifyAndApply(context.Background(), "r-1", "gov-1")
		if !errors.Is(err, ErrEvidenceMissing) {
			t.Fatalf("expected ErrEvidenceMissing, got %v", err)
		}
		if f.ledger.calls != 0 {
			t.Fatalf("ledger must not be touched when the gate blocks")
		}
	})

	t.Run("negative review with evidence applies an amplifiable loss", func(t *testing.T) {
		f := newRatingFixtures(t)
		f.identity.EXPECT().ResolveRole(gomock.Any(), "gov-1").Return(entities.RoleGovernment, nil)
		stored := entities.ContractorRating{
			ID: "r-1", ContractorID: "c-1", ProjectID: "p-1", RatingValue: 1,
			IsNegative: true, EvidenceRequired: true, EvidenceProvided: true,
		}
		f.ratings.EXPECT().GetByID(gomock.Any(), "r-1").Return(stored, nil)
		verified := stored
		verified.IsVerified = true
		verified.VerifiedBy = "gov-1"
		f.ratings.EXPECT().MarkVerified(gomock.Any(), "r-1", "gov-1").Return(verified, nil)
		f.ledger.result = 4.70

		outcome, err := f.uc.VerifyAndApply(context.Background(), "r-1", "gov-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Value 1 -> points -0.2, routed as a negative magnitude 0.2.
		if !almostEqual(f.ledger.magnitude, 0.2) || f.ledger.isPositive || f.ledger.contractorID != "c-1" {
			t.Fatalf("unexpected ledger call: %+v", f.ledger)
		}
		if !outcome.Applied || !almostEqual(outcome.NewRating, 4.70) {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
	})

	t.Run("neutral review still routes through the ledger", func(t *testing.T) {
		f := newRatingFixtures(t)
		f.identity.EXPECT().ResolveRole(gomock.Any(), "gov-1").Return(entities.RoleGovernment, nil)
		stored := entities.ContractorRating{ID: "r-1", ContractorID: "c-1", ProjectID: "p-1", RatingValue: 3}
		f.ratings.EXPECT().GetByID(gomock.Any(), "r-1").Return(stored, nil)
		verified := stored
		verified.IsVerified = true
		f.ratings.EXPECT().MarkVerified(gomock.Any(), "r-1", "gov-1").Return(verified, nil)
		f.ledger.result = 4.50

		outcome, err := f.uc.VerifyAndApply(context.Background(), "r-1", "gov-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.ledger.calls != 1 || !almostEqual(f.ledger.magnitude, 0) || !f.ledger.isPositive {
			t.Fatalf("expected an auditable zero-magnitude adjustment, got %+v", f.ledger)
		}
		if !outcome.Applied {
			t.Fatalf("expected applied outcome, got %+v", outcome)
		}
	})

	t.Run("positive review applies a dampened gain", func(t *testing.T) {
		f := newRatingFixtures(t)
		f.identity.EXPECT().ResolveRole(gomock.Any(), "gov-1").Return(entities.RoleGovernment, nil)
		stored := entities.ContractorRating{ID: "r-1", ContractorID: "c-1", ProjectID: "p-1", RatingValue: 5}
		f.ratings.EXPECT().GetByID(gomock.Any(), "r-1").Return(stored, nil)
		verified := stored
		verified.IsVerified = true
		f.ratings.EXPECT().MarkVerified(gomock.Any(), "r-1", "gov-1").Return(verified, nil)
		f.ledger.result = 4.85

		outcome, err := f.uc.VerifyAndApply(context.Background(), "r-1", "gov-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(f.ledger.magnitude, 0.2) || !f.ledger.isPositive {
			t.Fatalf("unexpected ledger call: %+v", f.ledger)
		}
		if !almostEqual(outcome.NewRating, 4.85) {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
	})
}
