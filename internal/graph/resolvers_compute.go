package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/sirupsen/logrus"

	"fleet_dispatch/internal/models"
	"fleet_dispatch/internal/store"
)

// computesQuery lists the caller's compute jobs. Both filters are conjunctive
// and results come back ordered by id ascending.
func (r *Resolver) computesQuery(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireViewer(p.Context)
	if err != nil {
		return nil, err
	}

	var filter store.ComputeFilter
	if raw, ok := p.Args["orderId"]; ok {
		orderID, err := parseID(raw)
		if err != nil {
			return nil, err
		}
		filter.OrderID = &orderID
	}
	if raw, ok := p.Args["status"].(models.ComputeStatus); ok {
		filter.Status = &raw
	}

	return r.Computes.List(p.Context, viewer.AccountID, filter)
}

// computeQuery returns null for missing and foreign ids alike.
func (r *Resolver) computeQuery(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireViewer(p.Context)
	if err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	compute, err := r.Computes.Get(p.Context, viewer.AccountID, id)
	if err != nil {
		return nil, err
	}
	if compute == nil {
		return nil, nil
	}
	return compute, nil
}

// createComputeMutation inserts the job and hands it to the solver. If the
// dispatch publish fails the row stays in the initial state so the failure is
// visible, and the client may retry with a fresh createCompute.
func (r *Resolver) createComputeMutation(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireMinRole(p.Context, models.RoleNormal)
	if err != nil {
		return nil, err
	}
	orderID, err := parseID(p.Args["order_id"])
	if err != nil {
		return nil, err
	}
	dataRaw, dataPresent := p.Args["data"]
	data, err := jsonArg(dataRaw, dataPresent)
	if err != nil {
		return nil, err
	}

	compute, err := r.Computes.Create(p.Context, viewer.AccountID, orderID, data, stringArg(p.Args, "comment_for_account"))
	if err != nil {
		return nil, err
	}

	if r.Publisher != nil {
		var order models.Order
		if err := r.DB.WithContext(p.Context).First(&order, orderID).Error; err != nil {
			return nil, err
		}
		if err := r.Publisher.PublishCompute(p.Context, compute, &order); err != nil {
			logrus.WithError(err).WithField("compute_id", compute.ID).Warn("createCompute: dispatch publish failed, job stays initial")
			return compute, nil
		}
		if err := r.Computes.MarkPending(p.Context, compute.ID); err == nil {
			compute.ComputeStatus = models.ComputePending
		}
	}

	return compute, nil
}

// cancelComputeMutation is one conditional UPDATE; the WHERE clause enforces
// ownership, so concurrent cancels cannot partially apply.
func (r *Resolver) cancelComputeMutation(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireMinRole(p.Context, models.RoleNormal)
	if err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	compute, err := r.Computes.Cancel(p.Context, viewer.AccountID, id)
	if err != nil {
		return nil, err
	}
	return compute, nil
}

func (r *Resolver) resolveComputeRoutes(p graphql.ResolveParams) (interface{}, error) {
	compute, ok := sourceAs[models.Compute](p.Source)
	if !ok {
		return nil, fmt.Errorf("routes: unexpected source %T", p.Source)
	}
	return r.Routes.ByCompute(p.Context, compute.ID)
}

func (r *Resolver) resolveRouteVehicle(p graphql.ResolveParams) (interface{}, error) {
	route, ok := sourceAs[models.Route](p.Source)
	if !ok {
		return nil, fmt.Errorf("vehicle: unexpected source %T", p.Source)
	}
	vehicle, err := r.Routes.Vehicle(p.Context, route.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, nil
	}
	return vehicle, nil
}

func (r *Resolver) resolveRouteStops(p graphql.ResolveParams) (interface{}, error) {
	route, ok := sourceAs[models.Route](p.Source)
	if !ok {
		return nil, fmt.Errorf("stops: unexpected source %T", p.Source)
	}
	return r.Routes.Stops(p.Context, route.ID)
}

func (r *Resolver) resolveStopDestination(p graphql.ResolveParams) (interface{}, error) {
	stop, ok := sourceAs[models.RouteStop](p.Source)
	if !ok {
		return nil, fmt.Errorf("destination: unexpected source %T", p.Source)
	}
	destination, err := r.Routes.Destination(p.Context, stop.DestinationID)
	if err != nil {
		return nil, err
	}
	if destination == nil {
		return nil, nil
	}
	return destination, nil
}

func (r *Resolver) resolveOrderComputes(p graphql.ResolveParams) (interface{}, error) {
	order, ok := sourceAs[models.Order](p.Source)
	if !ok {
		return nil, fmt.Errorf("computes: unexpected source %T", p.Source)
	}
	return r.Computes.ListByOrder(p.Context, order.AccountID, order.ID)
}
