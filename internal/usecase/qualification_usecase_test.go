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

type qualificationFixtures struct {
	certificates *mock_interfaces.MockICertificateRepository
	skills       *mock_interfaces.MockISkillRepository
	contractors  *mock_interfaces.MockIContractorRepository
	identity     *mock_interfaces.MockIIdentityResolver
	uc           *QualificationUseCase
}

func newQualificationFixtures(t *testing.T) qualificationFixtures {
	ctrl := gomock.NewController(t)
	certificates := mock_interfaces.NewMockICertificateRepository(ctrl)
	skills := mock_interfaces.NewMockISkillRepository(ctrl)
	contractors := mock_interfaces.NewMockIContractorRepository(ctrl)
	identity := mock_interfaces.NewMockIIdentityResolver(ctrl)
	audit := mock_interfaces.NewMockIAuditSink(ctrl)
	clock := mock_interfaces.NewMockIClock(ctrl)

	audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	clock.EXPECT().Now().Return(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)).AnyTimes()

	return qualificationFixtures{
		certificates: certificates,
		skills:       skills,
		contractors:  contractors,
		identity:     identity,
		uc:           NewQualificationUseCase(certificates, skills, contractors, identity, audit, clock),
	}
}

func TestQualificationUseCase_AddCertificate(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		f := newQualificationFixtures(t)
		_, err := f.uc.AddCertificate(context.Background(), AddCertificateCommand{ContractorID: "ctr-1", Name: "  "})
		if !errors.Is(err, ErrInvalidQualificationInput) {
			t.Fatalf("expected ErrInvalidQualificationInput, got %v", err)
		}
	})

	t.Run("unknown contractor", func(t *testing.T) {
		f := newQualificationFixtures(t)
		f.contractors.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Contractor{}, nil)

		_, err := f.uc.AddCertificate(context.Background(), AddCertificateCommand{ContractorID: "missing", Name: "ISO 9001"})
		if !errors.Is(err, ErrContractorNotFound) {
			t.Fatalf("expected ErrContractorNotFound, got %v", err)
		}
	})

	t.Run("new certificate starts unverified", func(t *testing.T) {
		f := newQualificationFixtures(t)
		f.contractors.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(entities.Contractor{ID: "ctr-1"}, nil)
		f.certificates.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ContractorCertificate{})).DoAndReturn(
			func(_ context.Context, c entities.ContractorCertificate) (entities.ContractorCertificate, error) {
				if c.Verified || c.VerifiedBy != "" {
					t.Fatalf("certificate must not be pre-verified: %+v", c)
				}
				if c.ID == "" || c.IssuingAuthority != "City Works Board" {
					t.Fatalf("unexpected certificate fields: %+v", c)
				}
				return c, nil
			},
		)

		cert, err := f.uc.AddCertificate(context.Background(), AddCertificateCommand{
			ContractorID: "ctr-1", Name: "ISO 9001", IssuingAuthority: " City Works Board ", ActorID: "ctr-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cert.Name != "ISO 9001" || cert.ContractorID != "ctr-1" {
			t.Fatalf("unexpected certificate: %+v", cert)
		}
	})
}

func TestQualificationUseCase_VerifyCertificate(t *testing.T) {
	t.Run("non-government actor", func(t *testing.T) {
		f := newQualificationFixtures(t)
		f.identity.EXPECT().ResolveRole(gomock.Any(), "ctr-1").Return(entities.RoleContractor, nil)

		_, err := f.uc.VerifyCertificate(context.Background(), "cert-1", "ctr-1")
		if !errors.Is(err, ErrActorNotAuthorized) {
			t.Fatalf("expected ErrActorNotAuthorized, got %v", err)
		}
	})

	t.Run("unknown certificate", func(t *testing.T) {
		f := newQualificationFixtures(t)
		f.identity.EXPECT().ResolveRole(gomock.Any(), "gov-1").Return(entities.RoleGovernment, nil)
		f.certificates.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ContractorCertificate{}, nil)

		_, err := f.uc.VerifyCertificate(context.Background(), "missing", "gov-1")
		if !errors.Is(err, ErrCertificateNotFound) {
			t.Fatalf("expected ErrCertificateNotFound, got %v", err)
		}
	})

	t.Run("marks verified", func(t *testing.T) {
		f := newQualificationFixtures(t)
		f.identity.EXPECT().ResolveRole(gomock.Any(), "gov-1").Return(entities.RoleGovernment, nil)
		f.certificates.EXPECT().GetByID(gomock.Any(), "cert-1").Return(entities.ContractorCertificate{ID: "cert-1", ContractorID: "ctr-1", Name: "ISO 9001"}, nil)
		f.certificates.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.ContractorCertificate{})).DoAndReturn(
			func(_ context.Context, c entities.ContractorCertificate) (entities.ContractorCertificate, error) {
				if !c.Verified || c.VerifiedBy != "gov-1" {
					t.Fatalf("unexpected verification fields: %+v", c)
				}
				return c, nil
			},
		)

		if _, err := f.uc.VerifyCertificate(context.Background(), "cert-1", "gov-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQualificationUseCase_AddSkill(t *testing.T) {
	t.Run("negative years of practice", func(t *testing.T) {
		f := newQualificationFixtures(t)
		_, err := f.uc.AddSkill(context.Background(), AddSkillCommand{ContractorID: "ctr-1", SkillName: "Masonry", YearsOfPractice: -1})
		if !errors.Is(err, ErrInvalidQualificationInput) {
			t.Fatalf("expected ErrInvalidQualificationInput, got %v", err)
		}
	})

	t.Run("unknown contractor", func(t *testing.T) {
		f := newQualificationFixtures(t)
		f.contractors.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Contractor{}, nil)

		_, err := f.uc.AddSkill(context.Background(), AddSkillCommand{ContractorID: "missing", SkillName: "Masonry"})
		if !errors.Is(err, ErrContractorNotFound) {
			t.Fatalf("expected ErrContractorNotFound, got %v", err)
		}
	})

	t.Run("new skill starts unverified", func(t *testing.T) {
		f := newQualificationFixtures(t)
		f.contractors.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(entities.Contractor{ID: "ctr-1"}, nil)
		f.skills.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ContractorSkill{})).DoAndReturn(
			func(_ context.Context, s entities.ContractorSkill) (entities.ContractorSkill, error) {
				if s.Verified || s.VerifiedBy != "" {
					t.Fatalf("skill must not be pre-verified: %+v", s)
				}
				return s, nil
			},
		)

		skill, err := f.uc.AddSkill(context.Background(), AddSkillCommand{
			ContractorID: "ctr-1", SkillName: "Masonry", ProficiencyLevel: "EXPERT", YearsOfPractice: 12, ActorID: "ctr-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if skill.SkillName != "Masonry" || skill.YearsOfPractice != 12 {
			t.Fatalf("unexpected skill: %+v", skill)
		}
	})
}

func TestQualificationUseCase_VerifySkill(t *testing.T) {
	t.Run("non-government actor", func(t *testing.T) {
		f := newQualificationFixtures(t)
		f.identity.EXPECT().ResolveRole(gomock.Any(), "ctz-1").Return(entities.RoleCitizen, nil)

		_, err := f.uc.VerifySkill(context.Background(), "skill-1", "ctz-1")
		if !errors.Is(err, ErrActorNotAuthorized) {
			t.Fatalf("expected ErrActorNotAuthorized, got %v", err)
		}
	})

	t.Run("marks verified", func(t *testing.T) {
		f := newQualificationFixtures(t)
		f.identity.EXPECT().ResolveRole(gomock.Any(), "gov-1").Return(entities.RoleGovernment, nil)
		f.skills.EXPECT().GetByID(gomock.Any(), "skill-1").Return(entities.ContractorSkill{ID: "skill-1", ContractorID: "ctr-1", SkillName: "Masonry"}, nil)
		f.skills.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.ContractorSkill{})).DoAndReturn(
			func(_ context.Context, s entities.ContractorSkill) (entities.ContractorSkill, error) {
				if !s.Verified || s.VerifiedBy != "gov-1" {
					t.Fatalf("unexpected verification fields: %+v", s)
				}
				return s, nil
			},
		)

		if _, err := f.uc.VerifySkill(context.Background(), "skill-1", "gov-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestContractorCertificate_IsValid(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	t.Run("no expiry never lapses", func(t *testing.T) {
		cert := entities.ContractorCertificate{ID: "cert-1"}
		if !cert.IsValid(now) {
			t.Fatal("certificate without expiry should be valid")
		}
	})

	t.Run("future expiry is valid", func(t *testing.T) {
		expiry := now.AddDate(1, 0, 0)
		cert := entities.ContractorCertificate{ID: "cert-1", ExpiryDate: &expiry}
		if !cert.IsValid(now) {
			t.Fatal("certificate expiring next year should be valid")
		}
	})

	t.Run("past expiry is invalid", func(t *testing.T) {
		expiry := now.AddDate(0, -1, 0)
		cert := entities.ContractorCertificate{ID: "cert-1", ExpiryDate: &expiry}
		if cert.IsValid(now) {
			t.Fatal("expired certificate should not be valid")
		}
	})
}
