package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pokeolivos/pokeolivos-api/internal/api/handler/v1/response"
	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/service"
)

// ContextKeyProfile is the gin context key the guard stores the caller's
// profile under.
const ContextKeyProfile = "profile"

type ProfileLoader interface {
	GetProfile(ctx context.Context, id string) (domain.Profile, error)
}

// Guard is the single access-control point behind the authenticator. Every
// guarded route loads the caller's profile once and checks it here; handlers
// never re-derive roles on their own.
type Guard struct {
	profiles ProfileLoader
}

func NewGuard(profiles ProfileLoader) *Guard {
	return &Guard{
		profiles: profiles,
	}
}

// RequireProfile loads the authenticated caller's profile and rejects
// missing or inactive ones. Deactivating a profile locks the account out on
// its next request even if its token is still valid.
func (g *Guard) RequireProfile() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := UserID(ctx)

		profile, err := g.profiles.GetProfile(ctx.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, service.ErrProfileNotFound) {
				response.RenderErr(ctx, response.ErrForbidden(errors.New("no profile for this account")))
				ctx.Abort()

				return
			}

			err = fmt.Errorf("middleware.RequireProfile -> g.profiles.GetProfile -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			ctx.Abort()

			return
		}

		if !profile.Active {
			response.RenderErr(ctx, response.ErrForbidden(errors.New("profile is pending approval or disabled")))
			ctx.Abort()

			return
		}

		ctx.Set(ContextKeyProfile, profile)
		ctx.Next()
	}
}

// RequireRoles allows only callers whose profile holds one of the given
// roles. Must run after RequireProfile.
func (g *Guard) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		profile, ok := Profile(ctx)
		if !ok {
			response.RenderErr(ctx, response.ErrForbidden(errors.New("no profile for this account")))
			ctx.Abort()

			return
		}

		for _, role := range roles {
			if profile.Role == role {
				ctx.Next()

				return
			}
		}

		response.RenderErr(ctx, response.ErrForbidden(errors.New("insufficient role")))
		ctx.Abort()
	}
}

// Profile reads the profile stored by RequireProfile.
func Profile(ctx *gin.Context) (domain.Profile, bool) {
	value, exists := ctx.Get(ContextKeyProfile)
	if !exists {
		return domain.Profile{}, false
	}

	profile, ok := value.(domain.Profile)

	return profile, ok
}
