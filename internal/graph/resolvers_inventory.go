package graph

import (
	"time"

	"github.com/graphql-go/graphql"
	"gorm.io/gorm"

	"fleet_dispatch/internal/models"
	"fleet_dispatch/internal/store"
)

// scopedList applies account scoping and the status filter convention: an
// explicit status argument wins, otherwise soft-deleted rows are hidden.
func (r *Resolver) scopedList(p graphql.ResolveParams, accountID uint) *gorm.DB {
	q := r.DB.WithContext(p.Context).Where("account_id = ?", accountID)
	if status, ok := p.Args["status"].(models.Status); ok {
		q = q.Where("status = ?", status)
	} else {
		q = q.Where("status <> ?", models.StatusDeleted)
	}
	return q.Order("id ASC")
}

// scopedFirst loads one live row owned by the account into dest. Missing,
// foreign and deleted rows all come back as ErrNotFound.
func (r *Resolver) scopedFirst(p graphql.ResolveParams, accountID, id uint, dest interface{}) error {
	err := r.DB.WithContext(p.Context).
		Where("id = ? AND account_id = ? AND status <> ?", id, accountID, models.StatusDeleted).
		First(dest).Error
	if err == gorm.ErrRecordNotFound {
		return store.ErrNotFound
	}
	return err
}

// softDelete flips status in a single ownership-scoped UPDATE.
func (r *Resolver) softDelete(p graphql.ResolveParams, accountID, id uint, model interface{}) error {
	res := r.DB.WithContext(p.Context).Model(model).
		Where("id = ? AND account_id = ? AND status <> ?", id, accountID, models.StatusDeleted).
		Updates(map[string]interface{}{
			"status":     models.StatusDeleted,
			"updated_at": time.Now().Unix(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// --- Destination ---

func (r *Resolver) destinationsQuery(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireViewer(p.Context)
	if err != nil {
		return nil, err
	}
	var destinations []models.Destination
	if err := r.scopedList(p, viewer.AccountID).Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *Resolver) destinationQuery(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireViewer(p.Context)
	if err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	var destination models.Destination
	if err := r.scopedFirst(p, viewer.AccountID, id, &destination); err != nil {
		if err == store.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *Resolver) createDestinationMutation(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireMinRole(p.Context, models.RoleNormal)
	if err != nil {
		return nil, err
	}
	dataRaw, dataPresent := p.Args["data"]
	data, err := jsonArg(dataRaw, dataPresent)
	if err != nil {
		return nil, err
	}
	destination := models.Destination{
		AccountID:         viewer.AccountID,
		Status:            models.StatusActive,
		Name:              stringArg(p.Args, "name"),
		Address:           stringArg(p.Args, "address"),
		Lat:               stringArg(p.Args, "lat"),
		Lng:               stringArg(p.Args, "lng"),
		Data:              data,
		CommentForAccount: stringArg(p.Args, "comment_for_account"),
	}
	if err := r.DB.WithContext(p.Context).Create(&destination).Error; err != nil {
		return nil, err
	}
	return destination, nil
}

func (r *Resolver) updateDestinationMutation(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireMinRole(p.Context, models.RoleNormal)
	if err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	var destination models.Destination
	if err := r.scopedFirst(p, viewer.AccountID, id, &destination); err != nil {
		return nil, err
	}
	for _, field := range []string{"name", "address", "lat", "lng", "comment_for_account"} {
		if v, ok := p.Args[field].(string); ok {
			switch field {
			case "name":
				destination.Name = v
			case "address":
				destination.Address = v
			case "lat":
				destination.Lat = v
			case "lng":
				destination.Lng = v
			case "comment_for_account":
				destination.CommentForAccount = v
			}
		}
	}
	if raw, ok := p.Args["data"]; ok {
		data, err := jsonArg(raw, true)
		if err != nil {
			return nil, err
		}
		destination.Data = data
	}
	if err := r.DB.WithContext(p.Context).Save(&destination).Error; err != nil {
		return nil, err
	}
	return destination, nil
}

func (r *Resolver) deleteDestinationMutation(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireMinRole(p.Context, models.RoleNormal)
	if err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	if err := r.softDelete(p, viewer.AccountID, id, &models.Destination{}); err != nil {
		return nil, err
	}
	var destination models.Destination
	if err := r.DB.WithContext(p.Context).First(&destination, id).Error; err != nil {
		return nil, err
	}
	return destination, nil
}

// --- CustomVehicleType ---

func (r *Resolver) customVehicleTypesQuery(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireViewer(p.Context)
	if err != nil {
		return nil, err
	}
	var vehicleTypes []models.CustomVehicleType
	if err := r.scopedList(p, viewer.AccountID).Find(&vehicleTypes).Error; err != nil {
		return nil, err
	}
	return vehicleTypes, nil
}

func (r *Resolver) customVehicleTypeQuery(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireViewer(p.Context)
	if err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	var vehicleType models.CustomVehicleType
	if err := r.scopedFirst(p, viewer.AccountID, id, &vehicleType); err != nil {
		if err == store.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &vehicleType, nil
}

func (r *Resolver) createCustomVehicleTypeMutation(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireMinRole(p.Context, models.RoleNormal)
	if err != nil {
		return nil, err
	}
	dataRaw, dataPresent := p.Args["data"]
	data, err := jsonArg(dataRaw, dataPresent)
	if err != nil {
		return nil, err
	}
	capacity, _ := p.Args["capacity"].(int)
	vehicleType := models.CustomVehicleType{
		AccountID:         viewer.AccountID,
		Status:            models.StatusActive,
		Name:              stringArg(p.Args, "name"),
		Capacity:          capacity,
		Data:              data,
		CommentForAccount: stringArg(p.Args, "comment_for_account"),
	}
	if err := r.DB.WithContext(p.Context).Create(&vehicleType).Error; err != nil {
		return nil, err
	}
	return vehicleType, nil
}

func (r *Resolver) updateCustomVehicleTypeMutation(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireMinRole(p.Context, models.RoleNormal)
	if err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	var vehicleType models.CustomVehicleType
	if err := r.scopedFirst(p, viewer.AccountID, id, &vehicleType); err != nil {
		return nil, err
	}
	if v, ok := p.Args["name"].(string); ok {
		vehicleType.Name = v
	}
	if v, ok := p.Args["capacity"].(int); ok {
		vehicleType.Capacity = v
	}
	if v, ok := p.Args["comment_for_account"].(string); ok {
		vehicleType.CommentForAccount = v
	}
	if raw, ok := p.Args["data"]; ok {
		data, err := jsonArg(raw, true)
		if err != nil {
			return nil, err
		}
		vehicleType.Data = data
	}
	if err := r.DB.WithContext(p.Context).Save(&vehicleType).Error; err != nil {
		return nil, err
	}
	return vehicleType, nil
}

func (r *Resolver) deleteCustomVehicleTypeMutation(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireMinRole(p.Context, models.RoleNormal)
	if err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	if err := r.softDelete(p, viewer.AccountID, id, &models.CustomVehicleType{}); err != nil {
		return nil, err
	}
	var vehicleType models.CustomVehicleType
	if err := r.DB.WithContext(p.Context).First(&vehicleType, id).Error; err != nil {
		return nil, err
	}
	return vehicleType, nil
}

// --- Vehicle ---

func (r *Resolver) vehiclesQuery(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireViewer(p.Context)
	if err != nil {
		return nil, err
	}
	var vehicles []models.Vehicle
	if err := r.scopedList(p, viewer.AccountID).Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *Resolver) vehicleQuery(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireViewer(p.Context)
	if err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	var vehicle models.Vehicle
	if err := r.scopedFirst(p, viewer.AccountID, id, &vehicle); err != nil {
		if err == store.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *Resolver) createVehicleMutation(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireMinRole(p.Context, models.RoleNormal)
	if err != nil {
		return nil, err
	}
	vehicleType, err := parseID(p.Args["vehicle_type"])
	if err != nil {
		return nil, err
	}
	var depotID *uint
	if raw, ok := p.Args["depot_id"]; ok {
		id, err := parseID(raw)
		if err != nil {
			return nil, err
		}
		depotID = &id
	}
	dataRaw, dataPresent := p.Args["data"]
	data, err := jsonArg(dataRaw, dataPresent)
	if err != nil {
		return nil, err
	}
	vehicle := models.Vehicle{
		AccountID:         viewer.AccountID,
		Status:            models.StatusActive,
		VehicleNumber:     stringArg(p.Args, "vehicle_number"),
		VehicleType:       vehicleType,
		DepotID:           depotID,
		Data:              data,
		CommentForAccount: stringArg(p.Args, "comment_for_account"),
	}
	if err := r.DB.WithContext(p.Context).Create(&vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (r *Resolver) updateVehicleMutation(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireMinRole(p.Context, models.RoleNormal)
	if err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	var vehicle models.Vehicle
	if err := r.scopedFirst(p, viewer.AccountID, id, &vehicle); err != nil {
		return nil, err
	}
	if v, ok := p.Args["vehicle_number"].(string); ok {
		vehicle.VehicleNumber = v
	}
	if raw, ok := p.Args["vehicle_type"]; ok {
		vehicleType, err := parseID(raw)
		if err != nil {
			return nil, err
		}
		vehicle.VehicleType = vehicleType
	}
	if raw, ok := p.Args["depot_id"]; ok {
		depotID, err := parseID(raw)
		if err != nil {
			return nil, err
		}
		vehicle.DepotID = &depotID
	}
	if v, ok := p.Args["comment_for_account"].(string); ok {
		vehicle.CommentForAccount = v
	}
	if raw, ok := p.Args["data"]; ok {
		data, err := jsonArg(raw, true)
		if err != nil {
			return nil, err
		}
		vehicle.Data = data
	}
	if err := r.DB.WithContext(p.Context).Save(&vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (r *Resolver) deleteVehicleMutation(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireMinRole(p.Context, models.RoleNormal)
	if err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	if err := r.softDelete(p, viewer.AccountID, id, &models.Vehicle{}); err != nil {
		return nil, err
	}
	var vehicle models.Vehicle
	if err := r.DB.WithContext(p.Context).First(&vehicle, id).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (r *Resolver) resolveVehicleTypeInfo(p graphql.ResolveParams) (interface{}, error) {
	vehicle, ok := sourceAs[models.Vehicle](p.Source)
	if !ok {
		return nil, nil
	}
	var vehicleType models.CustomVehicleType
	err := r.DB.WithContext(p.Context).
		Where("id = ? AND status <> ?", vehicle.VehicleType, models.StatusDeleted).
		First(&vehicleType).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &vehicleType, nil
}

func (r *Resolver) resolveVehicleDepot(p graphql.ResolveParams) (interface{}, error) {
	vehicle, ok := sourceAs[models.Vehicle](p.Source)
	if !ok || vehicle.DepotID == nil {
		return nil, nil
	}
	destination, err := r.Routes.Destination(p.Context, *vehicle.DepotID)
	if err != nil {
		return nil, err
	}
	if destination == nil {
		return nil, nil
	}
	return destination, nil
}

// --- Order ---

func (r *Resolver) ordersQuery(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireViewer(p.Context)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := r.scopedList(p, viewer.AccountID).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Resolver) orderQuery(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireViewer(p.Context)
	if err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	var order models.Order
	if err := r.scopedFirst(p, viewer.AccountID, id, &order); err != nil {
		if err == store.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *Resolver) createOrderMutation(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireMinRole(p.Context, models.RoleNormal)
	if err != nil {
		return nil, err
	}
	destSnap, err := jsonArg(p.Args["destination_snapshot"], true)
	if err != nil {
		return nil, err
	}
	vehicleSnap, err := jsonArg(p.Args["vehicle_snapshot"], true)
	if err != nil {
		return nil, err
	}
	dataRaw, dataPresent := p.Args["data"]
	data, err := jsonArg(dataRaw, dataPresent)
	if err != nil {
		return nil, err
	}
	order := models.Order{
		AccountID:           viewer.AccountID,
		Status:              models.StatusActive,
		DestinationSnapshot: destSnap,
		VehicleSnapshot:     vehicleSnap,
		Data:                data,
		CommentForAccount:   stringArg(p.Args, "comment_for_account"),
	}
	if err := r.DB.WithContext(p.Context).Create(&order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *Resolver) deleteOrderMutation(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireMinRole(p.Context, models.RoleNormal)
	if err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	if err := r.softDelete(p, viewer.AccountID, id, &models.Order{}); err != nil {
		return nil, err
	}
	var order models.Order
	if err := r.DB.WithContext(p.Context).First(&order, id).Error; err != nil {
		return nil, err
	}
	return order, nil
}
