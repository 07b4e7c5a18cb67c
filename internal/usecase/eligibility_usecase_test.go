package usecase

import (
	"context"
	"errors"
	"testing"

	"fundtracker/internal/domain/entities"
	mock_interfaces "fundtracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEligibilityUseCase_Check(t *testing.T) {
	t.Run("empty contractor id", func(t *testing.T) {
		uc := NewEligibilityUseCase(nil)
		_, err := uc.Check(context.Background(), "  ", entities.ContractSizeSmall)
		if !errors.Is(err, ErrContractorNotFound) {
			t.Fatalf("expected ErrContractorNotFound, got %v", err)
		}
	})

	t.Run("unknown contractor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractorRepository(ctrl)
		uc := NewEligibilityUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Contractor{}, nil)

		_, err := uc.Check(context.Background(), "missing", entities.ContractSizeSmall)
		if !errors.Is(err, ErrContractorNotFound) {
			t.Fatalf("expected ErrContractorNotFound, got %v", err)
		}
	})

	t.Run("suspension outranks a perfect rating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractorRepository(ctrl)
		uc := NewEligibilityUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contractor{ID: "c-1", Rating: 5.00, IsSuspended: true}, nil)

		res, err := uc.Check(context.Background(), "c-1", entities.ContractSizeSmall)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Eligible || res.Reason != ReasonSuspended {
			t.Fatalf("expected suspended refusal, got %+v", res)
		}
	})

	t.Run("thresholds per contract size", func(t *testing.T) {
		cases := []struct {
			name     string
			rating   float64
			size     entities.ContractSize
			eligible bool
			required float64
		}{
			{name: "3.00 takes small", rating: 3.00, size: entities.ContractSizeSmall, eligible: true, required: 3.00},
			{name: "2.99 refused small", rating: 2.99, size: entities.ContractSizeSmall, eligible: false, required: 3.00},
			{name: "3.50 takes medium", rating: 3.50, size: entities.ContractSizeMedium, eligible: true, required: 3.50},
			{name: "3.49 refused medium", rating: 3.49, size: entities.ContractSizeMedium, eligible: false, required: 3.50},
			{name: "4.00 takes large", rating: 4.00, size: entities.ContractSizeLarge, eligible: true, required: 4.00},
			{name: "3.99 refused large", rating: 3.99, size: entities.ContractSizeLarge, eligible: false, required: 4.00},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				repo := mock_interfaces.NewMockIContractorRepository(ctrl)
				uc := NewEligibilityUseCase(repo)

				repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contractor{ID: "c-1", Rating: tc.rating}, nil)

				res, err := uc.Check(context.Background(), "c-1", tc.size)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if res.Eligible != tc.eligible {
					t.Fatalf("expected eligible=%v, got %+v", tc.eligible, res)
				}
				if res.RequiredRating != tc.required {
					t.Fatalf("expected required %v, got %v", tc.required, res.RequiredRating)
				}
				if !tc.eligible && res.Reason != ReasonRatingBelowMinimum {
					t.Fatalf("expected rating refusal reason, got %q", res.Reason)
				}
			})
		}
	})
}

func TestEligibilityUseCase_CheckAll(t *testing.T) {
	t.Run("one result per size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractorRepository(ctrl)
		uc := NewEligibilityUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contractor{ID: "c-1", Rating: 3.70}, nil)

		res, err := uc.CheckAll(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.BySize) != 3 {
			t.Fatalf("expected 3 size results, got %d", len(res.BySize))
		}
		if !res.BySize[entities.ContractSizeSmall].Eligible {
			t.Fatalf("3.70 should take a small contract")
		}
		if !res.BySize[entities.ContractSizeMedium].Eligible {
			t.Fatalf("3.70 should take a medium contract")
		}
		if res.BySize[entities.ContractSizeLarge].Eligible {
			t.Fatalf("3.70 should not take a large contract")
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractorRepository(ctrl)
		uc := NewEligibilityUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contractor{}, errors.New("db"))

		_, err := uc.CheckAll(context.Background(), "c-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
