package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fleet_dispatch/internal/dispatch"
	"fleet_dispatch/internal/middleware"
	"fleet_dispatch/internal/models"
	"fleet_dispatch/internal/store"
)

// Resolver carries the per-process collaborators the schema closes over. The
// caller identity is NOT here: it travels in the request context, rebuilt per
// request by the auth middleware.
type Resolver struct {
	DB       *gorm.DB
	Computes *store.ComputeStore
	Routes   *store.RouteStore

	// Publisher is optional; when nil (tests, dispatch disabled) created jobs
	// simply stay in the initial state.
	Publisher *dispatch.Publisher
}

// requireViewer resolves the caller or fails with the unauthenticated kind.
func requireViewer(ctx context.Context) (middleware.Viewer, error) {
	viewer, ok := middleware.ViewerFrom(ctx)
	if !ok {
		return middleware.Viewer{}, store.ErrUnauthenticated
	}
	return viewer, nil
}

// requireMinRole additionally gates on role rank; underprivileged callers get
// the forbidden kind, distinguishable from unauthenticated.
func requireMinRole(ctx context.Context, min models.AccountRole) (middleware.Viewer, error) {
	viewer, err := requireViewer(ctx)
	if err != nil {
		return viewer, err
	}
	if !viewer.Role.AtLeast(min) {
		return viewer, store.ErrForbidden
	}
	return viewer, nil
}

// parseID coerces a GraphQL ID argument into a database id.
func parseID(v interface{}) (uint, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("%w: id must be a string", store.ErrValidation)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad id %q", store.ErrValidation, s)
	}
	return uint(n), nil
}

// jsonArg converts a decoded JSON scalar argument into a storable column
// value. Absent arguments stay nil.
func jsonArg(v interface{}, present bool) (datatypes.JSON, error) {
	if !present || v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrValidation, err)
	}
	return datatypes.JSON(b), nil
}

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}
