package handlers

import (
	"errors"
	"net/http"
	"strings"

	"fundtracker/internal/usecase"
	"fundtracker/internal/usecase/interfaces"
	"fundtracker/pkg"

	"github.com/gin-gonic/gin"
)

// ActorHeader carries the opaque actor id resolved to a role by the
// identity layer. Authentication happens upstream of this service.
const ActorHeader = "X-Actor-ID"

func actorID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(ActorHeader))
}

// mapAuthzError handles the error cases shared by every gated endpoint.
// Returns nil when err is not an authorization failure.
func mapAuthzError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrActorNotAuthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, interfaces.ErrUnknownActor):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Unknown actor", http.StatusForbidden)
	default:
		return nil
	}
}
