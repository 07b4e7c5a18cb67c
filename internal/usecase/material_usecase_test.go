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

type materialFixtures struct {
	materials *mock_interfaces.MockIMaterialRepository
	payments  *mock_interfaces.MockIMaterialPaymentRepository
	projects  *mock_interfaces.MockIProjectRepository
	identity  *mock_interfaces.MockIIdentityResolver
	uc        *MaterialUseCase
}

func newMaterialFixtures(t *testing.T) materialFixtures {
	ctrl := gomock.NewController(t)
	materials := mock_interfaces.NewMockIMaterialRepository(ctrl)
	payments := mock_interfaces.NewMockIMaterialPaymentRepository(ctrl)
	projects := mock_interfaces.NewMockIProjectRepository(ctrl)
	identity := mock_interfaces.NewMockIIdentityResolver(ctrl)
	audit := mock_interfaces.NewMockIAuditSink(ctrl)
	clock := mock_interfaces.NewMockIClock(ctrl)

	audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	clock.EXPECT().Now().Return(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)).AnyTimes()

	return materialFixtures{materials: materials, payments: payments, projects: projects, identity: identity, uc: NewMaterialUseCase(materials, payments, projects, identity, audit, clock)}
}

func TestMaterialUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		f := newMaterialFixtures(t)
		_, err := f.uc.Create(context.Background(), CreateMaterialCommand{ProjectID: "p-1", Name: "  "})
		if !errors.Is(err, ErrInvalidMaterialInput) {
			t.Fatalf("expected ErrInvalidMaterialInput, got %v", err)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		f := newMaterialFixtures(t)
		_, err := f.uc.Create(context.Background(), CreateMaterialCommand{ProjectID: "p-1", Name: "Cement", PlannedQuantity: -1})
		if !errors.Is(err, ErrInvalidMaterialInput) {
			t.Fatalf("expected ErrInvalidMaterialInput, got %v", err)
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		f := newMaterialFixtures(t)
		f.projects.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Project{}, nil)

		_, err := f.uc.Create(context.Background(), CreateMaterialCommand{ProjectID: "missing", Name: "Cement"})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("totals derive from quantities and unit price", func(t *testing.T) {
		f := newMaterialFixtures(t)
		f.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1"}, nil)
		f.materials.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Material{})).DoAndReturn(
			func(_ context.Context, m entities.Material) (entities.Material, error) {
				if !almostEqual(m.TotalPlannedCost, 5000) || !almostEqual(m.TotalActualCost, 4500) {
					t.Fatalf("unexpected totals: %+v", m)
				}
				return m, nil
			},
		)

		_, err := f.uc.Create(context.Background(), CreateMaterialCommand{
			ProjectID: "p-1", Name: "Cement", Unit: "bag",
			PlannedQuantity: 100, ActualQuantity: 90, UnitPrice: 50, ActorID: "gov-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMaterialUseCase_UpdateQuantities(t *testing.T) {
	t.Run("recomputes totals after a quantity change", func(t *testing.T) {
		f := newMaterialFixtures(t)
		stored := entities.Material{ID: "m-1", ProjectID: "p-1", Name: "Cement", PlannedQuantity: 100, ActualQuantity: 90, UnitPrice: 50}
		stored.RecomputeTotals()
		f.materials.EXPECT().GetByID(gomock.Any(), "m-1").Return(stored, nil)
		f.materials.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Material{})).DoAndReturn(
			func(_ context.Context, m entities.Material) (entities.Material, error) {
				if !almostEqual(m.TotalActualCost, 6000) {
					t.Fatalf("expected actual cost 6000, got %v", m.TotalActualCost)
				}
				if !almostEqual(m.CostVariance(), 1000) {
					t.Fatalf("expected variance 1000, got %v", m.CostVariance())
				}
				return m, nil
			},
		)

		actual := 120.0
		_, err := f.uc.UpdateQuantities(context.Background(), "m-1", UpdateMaterialCommand{ActualQuantity: &actual, ActorID: "gov-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative unit price rejected", func(t *testing.T) {
		f := newMaterialFixtures(t)
		f.materials.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Material{ID: "m-1"}, nil)

		price := -1.0
		_, err := f.uc.UpdateQuantities(context.Background(), "m-1", UpdateMaterialCommand{UnitPrice: &price})
		if !errors.Is(err, ErrInvalidMaterialInput) {
			t.Fatalf("expected ErrInvalidMaterialInput, got %v", err)
		}
	})
}

func TestMaterialUseCase_Verify(t *testing.T) {
	t.Run("non-government actor", func(t *testing.T) {
		f := newMaterialFixtures(t)
		f.identity.EXPECT().ResolveRole(gomock.Any(), "ctr-1").Return(entities.RoleContractor, nil)

		_, err := f.uc.Verify(context.Background(), "m-1", "ctr-1")
		if !errors.Is(err, ErrActorNotAuthorized) {
			t.Fatalf("expected ErrActorNotAuthorized, got %v", err)
		}
	})

	t.Run("marks verified", func(t *testing.T) {
		f := newMaterialFixtures(t)
		f.identity.EXPECT().ResolveRole(gomock.Any(), "gov-1").Return(entities.RoleGovernment, nil)
		f.materials.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Material{ID: "m-1", ProjectID: "p-1", Name: "Cement"}, nil)
		f.materials.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Material{})).DoAndReturn(
			func(_ context.Context, m entities.Material) (entities.Material, error) {
				if !m.Verified || m.VerifiedBy != "gov-1" {
					t.Fatalf("unexpected verification fields: %+v", m)
				}
				return m, nil
			},
		)

		if _, err := f.uc.Verify(context.Background(), "m-1", "gov-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMaterialUseCase_RecordPayment(t *testing.T) {
	t.Run("non-positive amount", func(t *testing.T) {
		f := newMaterialFixtures(t)
		_, err := f.uc.RecordPayment(context.Background(), "m-1", RecordPaymentCommand{Amount: 0})
		if !errors.Is(err, ErrInvalidPaymentInput) {
			t.Fatalf("expected ErrInvalidPaymentInput, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newMaterialFixtures(t)
		_, err := f.uc.RecordPayment(context.Background(), "m-1", RecordPaymentCommand{Amount: 100, Status: "REFUNDED"})
		if !errors.Is(err, ErrInvalidPaymentInput) {
			t.Fatalf("expected ErrInvalidPaymentInput, got %v", err)
		}
	})

	t.Run("unknown material", func(t *testing.T) {
		f := newMaterialFixtures(t)
		f.materials.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Material{}, nil)

		_, err := f.uc.RecordPayment(context.Background(), "missing", RecordPaymentCommand{Amount: 100})
		if !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
	})

	t.Run("empty status defaults to pending", func(t *testing.T) {
		f := newMaterialFixtures(t)
		f.materials.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Material{ID: "m-1", Name: "Cement"}, nil)
		f.payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.MaterialPayment{})).DoAndReturn(
			func(_ context.Context, p entities.MaterialPayment) (entities.MaterialPayment, error) {
				if p.Status != entities.MaterialPaymentStatusPending {
					t.Fatalf("expected PENDING, got %s", p.Status)
				}
				if p.ID == "" || p.MaterialID != "m-1" {
					t.Fatalf("unexpected payment fields: %+v", p)
				}
				return p, nil
			},
		)

		_, err := f.uc.RecordPayment(context.Background(), "m-1", RecordPaymentCommand{Amount: 250, ActorID: "gov-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("completed payment keeps reference and recorder", func(t *testing.T) {
		f := newMaterialFixtures(t)
		f.materials.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Material{ID: "m-1", Name: "Cement"}, nil)
		f.payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.MaterialPayment{})).DoAndReturn(
			func(_ context.Context, p entities.MaterialPayment) (entities.MaterialPayment, error) {
				return p, nil
			},
		)

		p, err := f.uc.RecordPayment(context.Background(), "m-1", RecordPaymentCommand{
			Amount: 1200.50, Status: entities.MaterialPaymentStatusCompleted,
			PaymentReference: " INV-42 ", ActorID: "gov-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.MaterialPaymentStatusCompleted || p.PaymentReference != "INV-42" || p.RecordedBy != "gov-1" {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if !almostEqual(p.Amount, 1200.50) {
			t.Fatalf("expected amount 1200.50, got %v", p.Amount)
		}
	})
}

func TestMaterialUseCase_ListPayments(t *testing.T) {
	t.Run("unknown material", func(t *testing.T) {
		f := newMaterialFixtures(t)
		f.materials.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Material{}, nil)

		_, err := f.uc.ListPayments(context.Background(), "missing")
		if !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
	})

	t.Run("returns records for the material", func(t *testing.T) {
		f := newMaterialFixtures(t)
		f.materials.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Material{ID: "m-1"}, nil)
		f.payments.EXPECT().ListByMaterialID(gomock.Any(), "m-1").Return([]entities.MaterialPayment{
			{ID: "pay-1", MaterialID: "m-1", Amount: 250},
		}, nil)

		payments, err := f.uc.ListPayments(context.Background(), "m-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 1 || payments[0].ID != "pay-1" {
			t.Fatalf("unexpected payments: %+v", payments)
		}
	})
}
