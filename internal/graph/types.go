package graph

import (
	"github.com/graphql-go/graphql"

	"fleet_dispatch/internal/models"
)

var statusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "Status",
	Values: graphql.EnumValueConfigMap{
		"inactive": {Value: models.StatusInactive},
		"active":   {Value: models.StatusActive},
		"deleted":  {Value: models.StatusDeleted},
	},
})

var computeStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "ComputeStatus",
	Values: graphql.EnumValueConfigMap{
		"initial":   {Value: models.ComputeInitial},
		"pending":   {Value: models.ComputePending},
		"computing": {Value: models.ComputeComputing},
		"completed": {Value: models.ComputeCompleted},
		"failed":    {Value: models.ComputeFailed},
		"cancelled": {Value: models.ComputeCancelled},
	},
})

var accountRoleEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "AccountRole",
	Values: graphql.EnumValueConfigMap{
		"admin":     {Value: models.RoleAdmin},
		"manager":   {Value: models.RoleManager},
		"normal":    {Value: models.RoleNormal},
		"guest":     {Value: models.RoleGuest},
		"just_view": {Value: models.RoleJustView},
	},
})

// sourceAs unwraps a parent value that may arrive as a value (list elements)
// or a pointer (single-object resolvers).
func sourceAs[T any](src interface{}) (T, bool) {
	if v, ok := src.(T); ok {
		return v, true
	}
	if v, ok := src.(*T); ok && v != nil {
		return *v, true
	}
	var zero T
	return zero, false
}

// schemaTypes bundles the object types so nested-field closures can reach the
// resolver without package globals.
type schemaTypes struct {
	account           *graphql.Object
	authPayload       *graphql.Object
	destination       *graphql.Object
	customVehicleType *graphql.Object
	vehicle           *graphql.Object
	order             *graphql.Object
	compute           *graphql.Object
	route             *graphql.Object
	routeStop         *graphql.Object
}

func newTypes(r *Resolver) *schemaTypes {
	t := &schemaTypes{}

	commonMeta := func() graphql.Fields {
		return graphql.Fields{
			"id":                  &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"account_id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"status":              &graphql.Field{Type: graphql.NewNonNull(statusEnum)},
			"data":                &graphql.Field{Type: jsonScalar},
			"created_at":          &graphql.Field{Type: graphql.Float},
			"updated_at":          &graphql.Field{Type: graphql.Float},
			"comment_for_account": &graphql.Field{Type: graphql.String},
		}
	}

	merge := func(base graphql.Fields, extra graphql.Fields) graphql.Fields {
		for name, f := range extra {
			base[name] = f
		}
		return base
	}

	t.account = graphql.NewObject(graphql.ObjectConfig{
		Name: "Account",
		Fields: graphql.Fields{
			"account_id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"status":           &graphql.Field{Type: graphql.NewNonNull(statusEnum)},
			"account_role":     &graphql.Field{Type: graphql.NewNonNull(accountRoleEnum)},
			"account":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"company_name":     &graphql.Field{Type: graphql.String},
			"company_industry": &graphql.Field{Type: graphql.String},
			"people_name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"phone":            &graphql.Field{Type: graphql.String},
			"point":            &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"created_at":       &graphql.Field{Type: graphql.Float},
			"updated_at":       &graphql.Field{Type: graphql.Float},
			"data":             &graphql.Field{Type: jsonScalar},
		},
	})

	t.authPayload = graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"account": &graphql.Field{Type: graphql.NewNonNull(t.account)},
		},
	})

	t.destination = graphql.NewObject(graphql.ObjectConfig{
		Name: "Destination",
		Fields: merge(commonMeta(), graphql.Fields{
			"name":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"address": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"lat":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"lng":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		}),
	})

	t.customVehicleType = graphql.NewObject(graphql.ObjectConfig{
		Name: "CustomVehicleType",
		Fields: merge(commonMeta(), graphql.Fields{
			"name":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"capacity": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		}),
	})

	t.vehicle = graphql.NewObject(graphql.ObjectConfig{
		Name: "Vehicle",
		Fields: merge(commonMeta(), graphql.Fields{
			"vehicle_number": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"vehicle_type":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"depot_id":       &graphql.Field{Type: graphql.Int},
			"vehicleTypeInfo": &graphql.Field{
				Type:    t.customVehicleType,
				Resolve: r.resolveVehicleTypeInfo,
			},
			"depot": &graphql.Field{
				Type:    t.destination,
				Resolve: r.resolveVehicleDepot,
			},
		}),
	})

	t.routeStop = graphql.NewObject(graphql.ObjectConfig{
		Name: "RouteStop",
		Fields: graphql.Fields{
			"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"route_id":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"destination_id": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"sequence":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"arrival_time":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"demand":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"created_at":     &graphql.Field{Type: graphql.Float},
			"destination": &graphql.Field{
				Type:    t.destination,
				Resolve: r.resolveStopDestination,
			},
		},
	})

	t.route = graphql.NewObject(graphql.ObjectConfig{
		Name: "Route",
		Fields: graphql.Fields{
			"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"compute_id":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"vehicle_id":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"status":         &graphql.Field{Type: graphql.NewNonNull(statusEnum)},
			"total_distance": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"total_time":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"total_load":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"created_at":     &graphql.Field{Type: graphql.Float},
			"vehicle": &graphql.Field{
				Type:    t.vehicle,
				Resolve: r.resolveRouteVehicle,
			},
			"stops": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.routeStop))),
				Resolve: r.resolveRouteStops,
			},
		},
	})

	t.compute = graphql.NewObject(graphql.ObjectConfig{
		Name: "Compute",
		Fields: merge(commonMeta(), graphql.Fields{
			"order_id":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"compute_status": &graphql.Field{Type: graphql.NewNonNull(computeStatusEnum)},
			"start_time":     &graphql.Field{Type: graphql.Float},
			"end_time":       &graphql.Field{Type: graphql.Float},
			"fail_reason":    &graphql.Field{Type: graphql.String},
			"routes": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.route))),
				Resolve: r.resolveComputeRoutes,
			},
		}),
	})

	t.order = graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: merge(commonMeta(), graphql.Fields{
			"destination_snapshot": &graphql.Field{Type: graphql.NewNonNull(jsonScalar)},
			"vehicle_snapshot":     &graphql.Field{Type: graphql.NewNonNull(jsonScalar)},
			"computes": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.compute))),
				Resolve: r.resolveOrderComputes,
			},
		}),
	})

	return t
}
