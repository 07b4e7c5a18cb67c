package interfaces

import (
	"context"
	"errors"

	"fundtracker/internal/domain/entities"
)

// ErrUnknownActor is returned by ResolveRole when the actor id does not map
// to any registered user.
var ErrUnknownActor = errors.New("unknown actor")

// IIdentityResolver maps an opaque actor id to a role. Authentication
// itself happens outside this service; usecases only gate on the role.

type IIdentityResolver interface {
	ResolveRole(ctx context.Context, actorID string) (entities.Role, error)
}

// IUserRepository abstracts DynamoDB persistence for UserProfile.

type IUserRepository interface {
	Create(ctx context.Context, u entities.UserProfile) (entities.UserProfile, error)
	GetByID(ctx context.Context, id string) (entities.UserProfile, error)
}
