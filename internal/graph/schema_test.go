package graph

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/graphql-go/graphql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fleet_dispatch/internal/config"
	"fleet_dispatch/internal/middleware"
	"fleet_dispatch/internal/models"
	"fleet_dispatch/internal/store"
)

// testSchema builds the full schema over an in-memory database with dispatch
// disabled, mirroring how main wires everything except the publisher.
func testSchema(t *testing.T) (graphql.Schema, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// a second connection to :memory: would be a second, empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := &Resolver{
		DB:       db,
		Computes: store.NewComputeStore(db, store.CancelPolicy{AllowCancelTerminal: true}),
		Routes:   store.NewRouteStore(db),
	}
	schema, err := NewSchema(r)
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	return schema, db
}

func viewerCtx(accountID uint, role models.AccountRole) context.Context {
	return middleware.WithViewer(context.Background(), middleware.Viewer{AccountID: accountID, Role: role})
}

func exec(t *testing.T, schema graphql.Schema, ctx context.Context, query string) *graphql.Result {
	t.Helper()
	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       ctx,
	})
	return result
}

func mustExec(t *testing.T, schema graphql.Schema, ctx context.Context, query string) map[string]interface{} {
	t.Helper()
	result := exec(t, schema, ctx, query)
	if len(result.Errors) > 0 {
		t.Fatalf("query %q failed: %v", query, result.Errors)
	}
	return result.Data.(map[string]interface{})
}

func mustExecVars(t *testing.T, schema graphql.Schema, ctx context.Context, query string, vars map[string]interface{}) map[string]interface{} {
	t.Helper()
	result := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		Context:        ctx,
		VariableValues: vars,
	})
	if len(result.Errors) > 0 {
		t.Fatalf("query %q failed: %v", query, result.Errors)
	}
	return result.Data.(map[string]interface{})
}

func hasErrorContaining(result *graphql.Result, substr string) bool {
	for _, e := range result.Errors {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestQueriesRequireAuthentication(t *testing.T) {
	schema, _ := testSchema(t)

	result := exec(t, schema, context.Background(), `{ destinations { id } }`)
	if !hasErrorContaining(result, "unauthenticated") {
		t.Errorf("anonymous destinations: errors = %v, want unauthenticated", result.Errors)
	}

	result = exec(t, schema, context.Background(), `{ me { account } }`)
	if !hasErrorContaining(result, "unauthenticated") {
		t.Errorf("anonymous me: errors = %v, want unauthenticated", result.Errors)
	}
}

func TestDestinationsScopedToViewer(t *testing.T) {
	schema, db := testSchema(t)

	for _, d := range []models.Destination{
		{AccountID: 1, Status: models.StatusActive, Name: "Mine A", Address: "a", Lat: "0", Lng: "0"},
		{AccountID: 1, Status: models.StatusActive, Name: "Mine B", Address: "b", Lat: "0", Lng: "0"},
		{AccountID: 2, Status: models.StatusActive, Name: "Theirs", Address: "c", Lat: "0", Lng: "0"},
	} {
		if err := db.Create(&d).Error; err != nil {
			t.Fatalf("seed destination: %v", err)
		}
	}

	data := mustExec(t, schema, viewerCtx(1, models.RoleNormal), `{ destinations { name } }`)
	list := data["destinations"].([]interface{})
	if len(list) != 2 {
		t.Fatalf("destinations len = %d, want 2", len(list))
	}
	for _, item := range list {
		name := item.(map[string]interface{})["name"].(string)
		if name == "Theirs" {
			t.Error("foreign destination leaked into list")
		}
	}

	// the foreign row by id resolves to null, not an error
	data = mustExec(t, schema, viewerCtx(1, models.RoleNormal), `{ destination(id: "3") { name } }`)
	if data["destination"] != nil {
		t.Errorf("foreign destination = %v, want null", data["destination"])
	}
}

func TestWriteRoleGate(t *testing.T) {
	schema, _ := testSchema(t)
	mutation := `mutation { createDestination(name: "Depot", address: "x", lat: "35.0", lng: "139.0") { id name } }`

	for _, role := range []models.AccountRole{models.RoleGuest, models.RoleJustView} {
		result := exec(t, schema, viewerCtx(1, role), mutation)
		if !hasErrorContaining(result, "forbidden") {
			t.Errorf("role %s: errors = %v, want forbidden", role, result.Errors)
		}
	}
	for _, role := range []models.AccountRole{models.RoleNormal, models.RoleManager, models.RoleAdmin} {
		data := mustExec(t, schema, viewerCtx(1, role), mutation)
		created := data["createDestination"].(map[string]interface{})
		if created["name"] != "Depot" {
			t.Errorf("role %s: created = %v", role, created)
		}
	}
}

func TestComputeLifecycleWithoutDispatcher(t *testing.T) {
	schema, db := testSchema(t)

	order := models.Order{
		AccountID:           1,
		Status:              models.StatusActive,
		DestinationSnapshot: []byte(`[]`),
		VehicleSnapshot:     []byte(`[]`),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	ctx := viewerCtx(1, models.RoleNormal)
	data := mustExec(t, schema, ctx, `mutation { createCompute(order_id: "1", data: {max_runtime: 300}) { id compute_status } }`)
	created := data["createCompute"].(map[string]interface{})
	if created["compute_status"] != "initial" {
		t.Fatalf("compute_status = %v, want initial (no publisher configured)", created["compute_status"])
	}

	data = mustExec(t, schema, ctx, `{ compute(id: "1") { data } }`)
	raw, err := json.Marshal(data["compute"].(map[string]interface{})["data"])
	if err != nil {
		t.Fatalf("marshal data: %v", err)
	}
	var jobData map[string]interface{}
	if err := json.Unmarshal(raw, &jobData); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if jobData["max_runtime"] != float64(300) {
		t.Errorf("max_runtime = %v, want 300", jobData["max_runtime"])
	}

	data = mustExec(t, schema, ctx, `mutation { cancelCompute(id: "1") { compute_status } }`)
	cancelled := data["cancelCompute"].(map[string]interface{})
	if cancelled["compute_status"] != "cancelled" {
		t.Fatalf("compute_status = %v, want cancelled", cancelled["compute_status"])
	}

	// another account can neither see nor cancel the job
	data = mustExec(t, schema, viewerCtx(2, models.RoleNormal), `{ compute(id: "1") { id } }`)
	if data["compute"] != nil {
		t.Errorf("foreign compute = %v, want null", data["compute"])
	}
	result := exec(t, schema, viewerCtx(2, models.RoleNormal), `mutation { cancelCompute(id: "1") { id } }`)
	if !hasErrorContaining(result, "not found") {
		t.Errorf("foreign cancel: errors = %v, want not found", result.Errors)
	}
}

func TestCreateComputeRejectsForeignOrder(t *testing.T) {
	schema, db := testSchema(t)

	order := models.Order{
		AccountID:           2,
		Status:              models.StatusActive,
		DestinationSnapshot: []byte(`[]`),
		VehicleSnapshot:     []byte(`[]`),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	result := exec(t, schema, viewerCtx(1, models.RoleNormal), `mutation { createCompute(order_id: "1") { id } }`)
	if !hasErrorContaining(result, "not found") {
		t.Errorf("foreign order: errors = %v, want not found", result.Errors)
	}
}

func TestComputeRouteComposition(t *testing.T) {
	schema, db := testSchema(t)

	order := models.Order{AccountID: 1, Status: models.StatusActive, DestinationSnapshot: []byte(`[]`), VehicleSnapshot: []byte(`[]`)}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	compute := models.Compute{AccountID: 1, OrderID: order.ID, ComputeStatus: models.ComputeCompleted, Status: models.StatusActive}
	if err := db.Create(&compute).Error; err != nil {
		t.Fatalf("seed compute: %v", err)
	}
	vehicle := models.Vehicle{AccountID: 1, Status: models.StatusActive, VehicleNumber: "TRUCK-7", VehicleType: 1}
	if err := db.Create(&vehicle).Error; err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	live := models.Destination{AccountID: 1, Status: models.StatusActive, Name: "Alive", Address: "a", Lat: "0", Lng: "0"}
	gone := models.Destination{AccountID: 1, Status: models.StatusDeleted, Name: "Gone", Address: "b", Lat: "0", Lng: "0"}
	for _, d := range []*models.Destination{&live, &gone} {
		if err := db.Create(d).Error; err != nil {
			t.Fatalf("seed destination: %v", err)
		}
	}
	route := models.Route{ComputeID: compute.ID, VehicleID: vehicle.ID, Status: models.StatusActive, TotalDistance: 900}
	if err := db.Create(&route).Error; err != nil {
		t.Fatalf("seed route: %v", err)
	}
	for i, destID := range []uint{gone.ID, live.ID} {
		stop := models.RouteStop{RouteID: route.ID, DestinationID: destID, Sequence: i + 1}
		if err := db.Create(&stop).Error; err != nil {
			t.Fatalf("seed stop: %v", err)
		}
	}

	data := mustExec(t, schema, viewerCtx(1, models.RoleNormal), `{
		compute(id: "1") {
			compute_status
			routes {
				total_distance
				vehicle { vehicle_number }
				stops { sequence destination { name } }
			}
		}
	}`)

	computeData := data["compute"].(map[string]interface{})
	routes := computeData["routes"].([]interface{})
	if len(routes) != 1 {
		t.Fatalf("routes len = %d, want 1", len(routes))
	}
	routeData := routes[0].(map[string]interface{})
	vehicleData := routeData["vehicle"].(map[string]interface{})
	if vehicleData["vehicle_number"] != "TRUCK-7" {
		t.Errorf("vehicle_number = %v", vehicleData["vehicle_number"])
	}
	stops := routeData["stops"].([]interface{})
	if len(stops) != 2 {
		t.Fatalf("stops len = %d, want 2", len(stops))
	}
	first := stops[0].(map[string]interface{})
	if first["destination"] != nil {
		t.Errorf("deleted destination = %v, want null", first["destination"])
	}
	second := stops[1].(map[string]interface{})
	if second["destination"].(map[string]interface{})["name"] != "Alive" {
		t.Errorf("live destination = %v", second["destination"])
	}
}

func TestJSONDataRoundTrip(t *testing.T) {
	schema, _ := testSchema(t)
	ctx := viewerCtx(1, models.RoleNormal)

	mustExec(t, schema, ctx, `mutation {
		createDestination(name: "Depot", address: "x", lat: "0", lng: "0",
			data: {capacity: 40, tags: ["cold", "fragile"], priority: true}) { id }
	}`)

	data := mustExec(t, schema, ctx, `{ destination(id: "1") { data } }`)
	raw, err := json.Marshal(data["destination"].(map[string]interface{})["data"])
	if err != nil {
		t.Fatalf("marshal data: %v", err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if got["capacity"] != float64(40) {
		t.Errorf("capacity = %v, want 40", got["capacity"])
	}
	tags, _ := got["tags"].([]interface{})
	if len(tags) != 2 || tags[0] != "cold" {
		t.Errorf("tags = %v", tags)
	}
	if got["priority"] != true {
		t.Errorf("priority = %v, want true", got["priority"])
	}
}

// Literal query syntax has no null token in this parser, so null values reach
// the JSON scalar through variables.
func TestNullArrivesThroughVariables(t *testing.T) {
	schema, _ := testSchema(t)
	ctx := viewerCtx(1, models.RoleNormal)

	mustExecVars(t, schema, ctx, `mutation($data: JSON) {
		createDestination(name: "Depot", address: "x", lat: "0", lng: "0", data: $data) { id }
	}`, map[string]interface{}{
		"data": map[string]interface{}{
			"note":   nil,
			"window": []interface{}{nil, float64(600)},
		},
	})

	data := mustExec(t, schema, ctx, `{ destination(id: "1") { data } }`)
	raw, err := json.Marshal(data["destination"].(map[string]interface{})["data"])
	if err != nil {
		t.Fatalf("marshal data: %v", err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	note, present := got["note"]
	if !present || note != nil {
		t.Errorf("note = %v (present %v), want stored null", note, present)
	}
	window, _ := got["window"].([]interface{})
	if len(window) != 2 || window[0] != nil || window[1] != float64(600) {
		t.Errorf("window = %v, want [null, 600]", window)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	schema, _ := testSchema(t)

	data := mustExec(t, schema, context.Background(), `mutation {
		register(account: "acme", email: "ops@acme.test", password: "s3cret", people_name: "Ops") {
			token
			account { account account_role }
		}
	}`)
	payload := data["register"].(map[string]interface{})
	if payload["token"] == "" {
		t.Fatal("register returned empty token")
	}
	accountData := payload["account"].(map[string]interface{})
	if accountData["account"] != "acme" {
		t.Errorf("account = %v", accountData["account"])
	}
	if accountData["account_role"] != "normal" {
		t.Errorf("account_role = %v, want normal", accountData["account_role"])
	}

	data = mustExec(t, schema, context.Background(), `mutation {
		login(account: "acme", password: "s3cret") { token }
	}`)
	if data["login"].(map[string]interface{})["token"] == "" {
		t.Error("login returned empty token")
	}

	result := exec(t, schema, context.Background(), `mutation {
		login(account: "acme", password: "wrong") { token }
	}`)
	if !hasErrorContaining(result, "unauthenticated") {
		t.Errorf("bad password: errors = %v, want unauthenticated", result.Errors)
	}
}

func TestSoftDeleteHidesFromDefaultList(t *testing.T) {
	schema, _ := testSchema(t)
	ctx := viewerCtx(1, models.RoleNormal)

	mustExec(t, schema, ctx, `mutation { createCustomVehicleType(name: "reefer", capacity: 12) { id } }`)
	mustExec(t, schema, ctx, `mutation { deleteCustomVehicleType(id: "1") { status } }`)

	data := mustExec(t, schema, ctx, `{ customVehicleTypes { id } }`)
	if list := data["customVehicleTypes"].([]interface{}); len(list) != 0 {
		t.Errorf("default list len = %d, want 0 after delete", len(list))
	}

	data = mustExec(t, schema, ctx, `{ customVehicleTypes(status: deleted) { name status } }`)
	list := data["customVehicleTypes"].([]interface{})
	if len(list) != 1 {
		t.Fatalf("deleted list len = %d, want 1", len(list))
	}
	item := list[0].(map[string]interface{})
	if item["status"] != "deleted" {
		t.Errorf("status = %v, want deleted", item["status"])
	}
}
