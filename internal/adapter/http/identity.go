package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"crowdfund/internal/core/domain"
)

// IdentityHeader carries the calling identity. It is taken at face value.
const IdentityHeader = "X-Identity"

type identityKey struct{}

// requireIdentity rejects requests without an identity header and stores the
// identity in the request context.
func requireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(IdentityHeader))
		if id == "" {
			writeProblem(w, http.StatusBadRequest, "INVALID_IDENTITY", "missing identity", "the "+IdentityHeader+" header is required")
			return
		}
		ctx := context.WithValue(r.Context(), identityKey{}, domain.Identity(id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFrom(ctx context.Context) domain.Identity {
	id, _ := ctx.Value(identityKey{}).(domain.Identity)
	return id
}
