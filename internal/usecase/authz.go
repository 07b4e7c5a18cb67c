package usecase

import (
	"context"
	"errors"
	"strings"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase/interfaces"
)

var ErrActorNotAuthorized = errors.New("actor not authorized for this action")

// requireGovernment gates forgiveness, penalty, verification and review
// actions on the government role resolved from the opaque actor id.
func requireGovernment(ctx context.Context, identity interfaces.IIdentityResolver, actorID string) error {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return ErrActorNotAuthorized
	}
	role, err := identity.ResolveRole(ctx, actorID)
	if err != nil {
		return err
	}
	if role != entities.RoleGovernment {
		return ErrActorNotAuthorized
	}
	return nil
}
