package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/automatamexico/Restaurante/internal/handlers"
	"github.com/automatamexico/Restaurante/internal/middleware"
	"github.com/automatamexico/Restaurante/internal/models"
	"github.com/automatamexico/Restaurante/internal/repositories"
	"github.com/automatamexico/Restaurante/internal/services"
)

const testJWTSecret = "test_jwt_secret"

// newTestApp wires the full HTTP surface against an in-memory SQLite database.
// The kitchen ticket publisher is nil: orders must flow without a broker.
// Each test passes its own database name so tests stay isolated.
func newTestApp(t *testing.T, dbName string) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderLine{},
		&models.Payment{},
		&models.InventoryItem{},
	)
	require.NoError(t, err)

	userRepo := repositories.NewGORMUserRepository(db)
	tableRepo := repositories.NewGORMTableRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	menuRepo := repositories.NewGORMMenuItemRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	paymentRepo := repositories.NewGORMPaymentRepository(db)
	inventoryRepo := repositories.NewGORMInventoryRepository(db)

	authService := services.NewAuthService(userRepo, testJWTSecret)
	tableService := services.NewTableService(tableRepo)
	menuService := services.NewMenuService(menuRepo, categoryRepo)
	inventoryService := services.NewInventoryService(inventoryRepo)
	dashboardService := services.NewDashboardService(orderRepo, tableRepo, paymentRepo, inventoryRepo)
	billingService := services.NewBillingService(orderRepo, paymentRepo, 0)
	orderService := services.NewOrderService(orderRepo, menuRepo, tableRepo, nil)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	handlers.NewAuthHandler(authService).RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	handlers.NewTableHandler(tableService).RegisterRoutes(protected)
	handlers.NewMenuHandler(menuService).RegisterRoutes(protected)
	handlers.NewOrderHandler(orderService).RegisterRoutes(protected)
	handlers.NewKitchenHandler(orderService).RegisterRoutes(protected)
	handlers.NewPaymentHandler(billingService).RegisterRoutes(protected)
	handlers.NewInventoryHandler(inventoryService).RegisterRoutes(protected)
	handlers.NewDashboardHandler(dashboardService).RegisterRoutes(protected)

	return app
}

// doJSON performs a request against the app and decodes the JSON response into
// out (which may be nil when the body does not matter).
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}, out interface{}) int {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// loginAs registers a staff member and returns a bearer token for them.
func loginAs(t *testing.T, app *fiber.App, username, role string) string {
	t.Helper()

	code := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
		"role":     role,
	}, nil)
	require.Equal(t, http.StatusCreated, code)

	var loginResp struct {
		Token string `json:"token"`
	}
	code = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": username,
		"password": "password123",
	}, &loginResp)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, loginResp.Token)
	return loginResp.Token
}

// seedMenu creates a table and one available menu item, returning their IDs.
func seedMenu(t *testing.T, app *fiber.App, token string, price float64) (tableID, itemID string) {
	t.Helper()

	var table models.Table
	code := doJSON(t, app, http.MethodPost, "/api/v1/tables", token, fiber.Map{
		"name":     "Mesa 1",
		"capacity": 4,
	}, &table)
	require.Equal(t, http.StatusCreated, code)

	var category models.Category
	code = doJSON(t, app, http.MethodPost, "/api/v1/menu/categories", token, fiber.Map{
		"name": "Tacos",
	}, &category)
	require.Equal(t, http.StatusCreated, code)

	var item models.MenuItem
	code = doJSON(t, app, http.MethodPost, "/api/v1/menu/items", token, fiber.Map{
		"name":         "Tacos al pastor",
		"price":        price,
		"category_id":  category.ID,
		"is_available": true,
	}, &item)
	require.Equal(t, http.StatusCreated, code)

	return table.ID, item.ID
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t, "auth_guard")

	code := doJSON(t, app, http.MethodGet, "/api/v1/orders", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code = doJSON(t, app, http.MethodGet, "/api/v1/tables", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestOrderLifecycleAndSettlement(t *testing.T) {
	app := newTestApp(t, "lifecycle")
	token := loginAs(t, app, "admin", models.RoleAdmin)
	tableID, itemID := seedMenu(t, app, token, 50.00)

	// Create an order of 2 x 50.00
	var order models.Order
	code := doJSON(t, app, http.MethodPost, "/api/v1/orders", token, fiber.Map{
		"table_id": tableID,
		"lines":    []fiber.Map{{"menu_item_id": itemID, "quantity": 2}},
	}, &order)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, models.StatusPreparing, order.Status)
	assert.Equal(t, 100.00, order.TotalAmount)
	require.NotEmpty(t, order.ID)

	// The full amount is due before any payment
	var due struct {
		Due float64 `json:"due"`
	}
	code = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+order.ID+"/due", token, nil, &due)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 100.00, due.Due)

	// A partial cash payment leaves the order open and reports the change
	var payResp struct {
		Payment models.Payment `json:"payment"`
		Change  float64        `json:"change"`
	}
	code = doJSON(t, app, http.MethodPost, "/api/v1/payments", token, fiber.Map{
		"order_id":       order.ID,
		"amount":         60.00,
		"payment_method": models.MethodCash,
		"tendered":       100.00,
	}, &payResp)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, 40.00, payResp.Change)

	var fetched models.Order
	code = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+order.ID, token, nil, &fetched)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.StatusPreparing, fetched.Status)

	// The order shows up in pending bills with the running paid amount
	var bills []services.PendingBill
	code = doJSON(t, app, http.MethodGet, "/api/v1/bills/pending", token, nil, &bills)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, bills, 1)
	assert.Equal(t, order.ID, bills[0].OrderID)
	assert.Equal(t, 60.00, bills[0].Paid)
	assert.Equal(t, 40.00, bills[0].Due)

	// Covering the remainder settles the order
	code = doJSON(t, app, http.MethodPost, "/api/v1/payments", token, fiber.Map{
		"order_id":       order.ID,
		"amount":         40.00,
		"payment_method": models.MethodCard,
	}, &payResp)
	require.Equal(t, http.StatusCreated, code)
	secondPaymentID := payResp.Payment.ID

	code = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+order.ID, token, nil, &fetched)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.StatusPaid, fetched.Status)

	// A settled order locks its ledger and its lines
	code = doJSON(t, app, http.MethodPost, "/api/v1/payments", token, fiber.Map{
		"order_id":       order.ID,
		"amount":         5.00,
		"payment_method": models.MethodCash,
	}, nil)
	assert.Equal(t, http.StatusConflict, code)

	code = doJSON(t, app, http.MethodDelete, "/api/v1/payments/"+secondPaymentID, token, nil, nil)
	assert.Equal(t, http.StatusConflict, code)

	code = doJSON(t, app, http.MethodPut, "/api/v1/orders/"+order.ID, token, fiber.Map{
		"table_id": tableID,
		"lines":    []fiber.Map{{"menu_item_id": itemID, "quantity": 5}},
	}, nil)
	assert.Equal(t, http.StatusConflict, code)

	// Settled orders no longer appear as pending bills
	code = doJSON(t, app, http.MethodGet, "/api/v1/bills/pending", token, nil, &bills)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, bills)
}

func TestOverpaymentRejected(t *testing.T) {
	app := newTestApp(t, "overpay")
	token := loginAs(t, app, "cashier", models.RoleCashier)
	tableID, itemID := seedMenu(t, app, token, 30.00)

	var order models.Order
	code := doJSON(t, app, http.MethodPost, "/api/v1/orders", token, fiber.Map{
		"table_id": tableID,
		"lines":    []fiber.Map{{"menu_item_id": itemID, "quantity": 1}},
	}, &order)
	require.Equal(t, http.StatusCreated, code)

	code = doJSON(t, app, http.MethodPost, "/api/v1/payments", token, fiber.Map{
		"order_id":       order.ID,
		"amount":         50.00,
		"payment_method": models.MethodCash,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+order.ID, token, nil, &order)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.StatusPreparing, order.Status)
}

func TestKitchenFlowAndStatusRules(t *testing.T) {
	app := newTestApp(t, "kitchen")
	token := loginAs(t, app, "chef", models.RoleKitchen)
	tableID, itemID := seedMenu(t, app, token, 45.00)

	var order models.Order
	code := doJSON(t, app, http.MethodPost, "/api/v1/orders", token, fiber.Map{
		"table_id": tableID,
		"lines":    []fiber.Map{{"menu_item_id": itemID, "quantity": 1, "notes": "sin cebolla"}},
	}, &order)
	require.Equal(t, http.StatusCreated, code)

	// New orders show up on the kitchen display
	var kitchen []models.Order
	code = doJSON(t, app, http.MethodGet, "/api/v1/kitchen/orders", token, nil, &kitchen)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, kitchen, 1)
	assert.Equal(t, order.ID, kitchen[0].ID)
	require.Len(t, kitchen[0].Lines, 1)
	assert.Equal(t, "sin cebolla", kitchen[0].Lines[0].Notes)

	// preparing -> ready is allowed
	code = doJSON(t, app, http.MethodPatch, "/api/v1/orders/"+order.ID+"/status", token, fiber.Map{
		"status": models.StatusReady,
	}, nil)
	assert.Equal(t, http.StatusOK, code)

	// ready -> preparing is not
	code = doJSON(t, app, http.MethodPatch, "/api/v1/orders/"+order.ID+"/status", token, fiber.Map{
		"status": models.StatusPreparing,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	// "paid" can never be requested over HTTP
	code = doJSON(t, app, http.MethodPatch, "/api/v1/orders/"+order.ID+"/status", token, fiber.Map{
		"status": models.StatusPaid,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	// Served orders leave the kitchen display
	code = doJSON(t, app, http.MethodPatch, "/api/v1/orders/"+order.ID+"/status", token, fiber.Map{
		"status": models.StatusServed,
	}, nil)
	assert.Equal(t, http.StatusOK, code)

	code = doJSON(t, app, http.MethodGet, "/api/v1/kitchen/orders", token, nil, &kitchen)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, kitchen)
}

func TestOrderEditReplacesLines(t *testing.T) {
	app := newTestApp(t, "order_edit")
	token := loginAs(t, app, "waiter", models.RoleWaiter)
	tableID, itemID := seedMenu(t, app, token, 50.00)

	var order models.Order
	code := doJSON(t, app, http.MethodPost, "/api/v1/orders", token, fiber.Map{
		"table_id": tableID,
		"lines":    []fiber.Map{{"menu_item_id": itemID, "quantity": 2}},
	}, &order)
	require.Equal(t, http.StatusCreated, code)

	code = doJSON(t, app, http.MethodPut, "/api/v1/orders/"+order.ID, token, fiber.Map{
		"table_id": tableID,
		"lines":    []fiber.Map{{"menu_item_id": itemID, "quantity": 5}},
	}, &order)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 250.00, order.TotalAmount)

	var fetched models.Order
	code = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+order.ID, token, nil, &fetched)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, fetched.Lines, 1)
	assert.Equal(t, 5, fetched.Lines[0].Quantity)
	assert.Equal(t, 250.00, fetched.TotalAmount)
}

func TestUnavailableItemRejected(t *testing.T) {
	app := newTestApp(t, "unavailable")
	token := loginAs(t, app, "waiter2", models.RoleWaiter)

	var table models.Table
	code := doJSON(t, app, http.MethodPost, "/api/v1/tables", token, fiber.Map{
		"name":     "Mesa 2",
		"capacity": 2,
	}, &table)
	require.Equal(t, http.StatusCreated, code)

	var item models.MenuItem
	code = doJSON(t, app, http.MethodPost, "/api/v1/menu/items", token, fiber.Map{
		"name":         "Pozole",
		"price":        80.00,
		"is_available": false,
	}, &item)
	require.Equal(t, http.StatusCreated, code)

	code = doJSON(t, app, http.MethodPost, "/api/v1/orders", token, fiber.Map{
		"table_id": table.ID,
		"lines":    []fiber.Map{{"menu_item_id": item.ID, "quantity": 1}},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDestructiveConfigIsAdminOnly(t *testing.T) {
	app := newTestApp(t, "role_guard")
	adminToken := loginAs(t, app, "boss", models.RoleAdmin)
	waiterToken := loginAs(t, app, "mesero", models.RoleWaiter)

	var table models.Table
	code := doJSON(t, app, http.MethodPost, "/api/v1/tables", adminToken, fiber.Map{
		"name":     "Mesa 9",
		"capacity": 6,
	}, &table)
	require.Equal(t, http.StatusCreated, code)

	code = doJSON(t, app, http.MethodDelete, "/api/v1/tables/"+table.ID, waiterToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code = doJSON(t, app, http.MethodDelete, "/api/v1/tables/"+table.ID, adminToken, nil, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestInventoryAndDashboard(t *testing.T) {
	app := newTestApp(t, "dashboard")
	token := loginAs(t, app, "manager", models.RoleAdmin)

	var item models.InventoryItem
	code := doJSON(t, app, http.MethodPost, "/api/v1/inventory", token, fiber.Map{
		"name":            "Tortillas",
		"unit":            "kg",
		"quantity":        2.0,
		"min_stock_level": 5.0,
	}, &item)
	require.Equal(t, http.StatusCreated, code)

	code = doJSON(t, app, http.MethodPost, "/api/v1/inventory", token, fiber.Map{
		"name":            "Limones",
		"unit":            "kg",
		"quantity":        20.0,
		"min_stock_level": 3.0,
	}, nil)
	require.Equal(t, http.StatusCreated, code)

	var lowStock []models.InventoryItem
	code = doJSON(t, app, http.MethodGet, "/api/v1/inventory/low-stock", token, nil, &lowStock)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, lowStock, 1)
	assert.Equal(t, "Tortillas", lowStock[0].Name)

	var stats services.DashboardStats
	code = doJSON(t, app, http.MethodGet, "/api/v1/dashboard", token, nil, &stats)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(0), stats.PendingOrders)
	assert.Equal(t, 1, stats.LowStockItems)
	assert.Equal(t, 0.0, stats.TodaySales)

	// Record a settled sale and watch it land in today's numbers
	tableID, itemID := seedMenu(t, app, token, 25.00)
	var order models.Order
	code = doJSON(t, app, http.MethodPost, "/api/v1/orders", token, fiber.Map{
		"table_id": tableID,
		"lines":    []fiber.Map{{"menu_item_id": itemID, "quantity": 2}},
	}, &order)
	require.Equal(t, http.StatusCreated, code)

	code = doJSON(t, app, http.MethodPost, "/api/v1/payments", token, fiber.Map{
		"order_id":       order.ID,
		"amount":         50.00,
		"payment_method": models.MethodCash,
	}, nil)
	require.Equal(t, http.StatusCreated, code)

	code = doJSON(t, app, http.MethodGet, "/api/v1/dashboard", token, nil, &stats)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 50.00, stats.TodaySales)
	assert.NotEmpty(t, stats.RecentOrders)
}
