package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema assembles the full query/mutation surface over the resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	t := newTypes(r)

	statusFilterArg := graphql.FieldConfigArgument{
		"status": &graphql.ArgumentConfig{Type: statusEnum},
	}
	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:    t.account,
				Resolve: r.meQuery,
			},
			"destinations": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.destination))),
				Args:    statusFilterArg,
				Resolve: r.destinationsQuery,
			},
			"destination": &graphql.Field{
				Type:    t.destination,
				Args:    idArg,
				Resolve: r.destinationQuery,
			},
			"customVehicleTypes": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.customVehicleType))),
				Args:    statusFilterArg,
				Resolve: r.customVehicleTypesQuery,
			},
			"customVehicleType": &graphql.Field{
				Type:    t.customVehicleType,
				Args:    idArg,
				Resolve: r.customVehicleTypeQuery,
			},
			"vehicles": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.vehicle))),
				Args:    statusFilterArg,
				Resolve: r.vehiclesQuery,
			},
			"vehicle": &graphql.Field{
				Type:    t.vehicle,
				Args:    idArg,
				Resolve: r.vehicleQuery,
			},
			"orders": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.order))),
				Args:    statusFilterArg,
				Resolve: r.ordersQuery,
			},
			"order": &graphql.Field{
				Type:    t.order,
				Args:    idArg,
				Resolve: r.orderQuery,
			},
			"computes": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.compute))),
				Args: graphql.FieldConfigArgument{
					"orderId": &graphql.ArgumentConfig{Type: graphql.ID},
					"status":  &graphql.ArgumentConfig{Type: computeStatusEnum},
				},
				Resolve: r.computesQuery,
			},
			"compute": &graphql.Field{
				Type:    t.compute,
				Args:    idArg,
				Resolve: r.computeQuery,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: graphql.NewNonNull(t.authPayload),
				Args: graphql.FieldConfigArgument{
					"account":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"people_name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.registerMutation,
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(t.authPayload),
				Args: graphql.FieldConfigArgument{
					"account":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.loginMutation,
			},
			"createDestination": &graphql.Field{
				Type: graphql.NewNonNull(t.destination),
				Args: graphql.FieldConfigArgument{
					"name":                &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"address":             &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"lat":                 &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"lng":                 &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"data":                &graphql.ArgumentConfig{Type: jsonScalar},
					"comment_for_account": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.createDestinationMutation,
			},
			"updateDestination": &graphql.Field{
				Type: graphql.NewNonNull(t.destination),
				Args: graphql.FieldConfigArgument{
					"id":                  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name":                &graphql.ArgumentConfig{Type: graphql.String},
					"address":             &graphql.ArgumentConfig{Type: graphql.String},
					"lat":                 &graphql.ArgumentConfig{Type: graphql.String},
					"lng":                 &graphql.ArgumentConfig{Type: graphql.String},
					"data":                &graphql.ArgumentConfig{Type: jsonScalar},
					"comment_for_account": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.updateDestinationMutation,
			},
			"deleteDestination": &graphql.Field{
				Type:    graphql.NewNonNull(t.destination),
				Args:    idArg,
				Resolve: r.deleteDestinationMutation,
			},
			"createCustomVehicleType": &graphql.Field{
				Type: graphql.NewNonNull(t.customVehicleType),
				Args: graphql.FieldConfigArgument{
					"name":                &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"capacity":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"data":                &graphql.ArgumentConfig{Type: jsonScalar},
					"comment_for_account": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.createCustomVehicleTypeMutation,
			},
			"updateCustomVehicleType": &graphql.Field{
				Type: graphql.NewNonNull(t.customVehicleType),
				Args: graphql.FieldConfigArgument{
					"id":                  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name":                &graphql.ArgumentConfig{Type: graphql.String},
					"capacity":            &graphql.ArgumentConfig{Type: graphql.Int},
					"data":                &graphql.ArgumentConfig{Type: jsonScalar},
					"comment_for_account": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.updateCustomVehicleTypeMutation,
			},
			"deleteCustomVehicleType": &graphql.Field{
				Type:    graphql.NewNonNull(t.customVehicleType),
				Args:    idArg,
				Resolve: r.deleteCustomVehicleTypeMutation,
			},
			"createVehicle": &graphql.Field{
				Type: graphql.NewNonNull(t.vehicle),
				Args: graphql.FieldConfigArgument{
					"vehicle_number":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"vehicle_type":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"depot_id":            &graphql.ArgumentConfig{Type: graphql.ID},
					"data":                &graphql.ArgumentConfig{Type: jsonScalar},
					"comment_for_account": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.createVehicleMutation,
			},
			"updateVehicle": &graphql.Field{
				Type: graphql.NewNonNull(t.vehicle),
				Args: graphql.FieldConfigArgument{
					"id":                  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"vehicle_number":      &graphql.ArgumentConfig{Type: graphql.String},
					"vehicle_type":        &graphql.ArgumentConfig{Type: graphql.ID},
					"depot_id":            &graphql.ArgumentConfig{Type: graphql.ID},
					"data":                &graphql.ArgumentConfig{Type: jsonScalar},
					"comment_for_account": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.updateVehicleMutation,
			},
			"deleteVehicle": &graphql.Field{
				Type:    graphql.NewNonNull(t.vehicle),
				Args:    idArg,
				Resolve: r.deleteVehicleMutation,
			},
			"createOrder": &graphql.Field{
				Type: graphql.NewNonNull(t.order),
				Args: graphql.FieldConfigArgument{
					"destination_snapshot": &graphql.ArgumentConfig{Type: graphql.NewNonNull(jsonScalar)},
					"vehicle_snapshot":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(jsonScalar)},
					"data":                 &graphql.ArgumentConfig{Type: jsonScalar},
					"comment_for_account":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.createOrderMutation,
			},
			"deleteOrder": &graphql.Field{
				Type:    graphql.NewNonNull(t.order),
				Args:    idArg,
				Resolve: r.deleteOrderMutation,
			},
			"createCompute": &graphql.Field{
				Type: graphql.NewNonNull(t.compute),
				Args: graphql.FieldConfigArgument{
					"order_id":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"data":                &graphql.ArgumentConfig{Type: jsonScalar},
					"comment_for_account": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.createComputeMutation,
			},
			"cancelCompute": &graphql.Field{
				Type:    graphql.NewNonNull(t.compute),
				Args:    idArg,
				Resolve: r.cancelComputeMutation,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
