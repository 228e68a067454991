package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gikibites/handlers"
	"gikibites/middleware"
	"gikibites/nav"
	"gikibites/routes"
	"gikibites/session"
	"gikibites/state"
	"gikibites/storage"
)

func newTestServer(t *testing.T) (*gin.Engine, storage.KV) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := storage.NewMemory()
	logger := zap.NewNop()

	sessions := session.NewStore(kv, logger)
	auth := middleware.NewAuth([]byte("test-secret"), sessions)

	h := handlers.New(
		logger,
		auth,
		sessions,
		nav.NewGuard(sessions),
		nav.NewTracker(),
		state.NewCart(kv, logger),
		state.NewCatalog(kv, logger),
		state.NewOrders(kv, logger),
		state.NewVendors(),
	)

	r := gin.New()
	routes.SetupRoutes(r, h, auth)
	return r, kv
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func signIn(t *testing.T, r *gin.Engine, name, role string) (string, map[string]any) {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/session", gin.H{"name": name, "role": role}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token, resp
}

func TestNavigateOpenDestination(t *testing.T) {
	r, _ := newTestServer(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/navigate", gin.H{"destination": "menu"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "menu", resp["destination"])
}

func TestNavigateUnknownDestination(t *testing.T) {
	r, _ := newTestServer(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/navigate", gin.H{"destination": "checkout"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeniedNavigationResumesAfterMatchingSignIn(t *testing.T) {
	r, _ := newTestServer(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/navigate", gin.H{"destination": "vendor-add"}, "")
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "vendor", resp["required_role"])
	prompt := resp["auth_prompt"].(map[string]any)
	assert.Equal(t, "vendor", prompt["role_hint"])
	assert.Equal(t, []any{"vendor"}, prompt["allowed_roles"])

	// view still shows home while the intent is pending
	_, view := doJSON(t, r, http.MethodGet, "/api/view", nil, "")
	assert.Equal(t, "home", view["destination"])

	_, resp = signIn(t, r, "Ayesha", "vendor")
	assert.Equal(t, "vendor-add", resp["destination"])

	_, view = doJSON(t, r, http.MethodGet, "/api/view", nil, "")
	assert.Equal(t, "vendor-add", view["destination"])
	sess := view["session"].(map[string]any)
	assert.Equal(t, "Ayesha", sess["name"])
	assert.Equal(t, "vendor", sess["role"])
}

func TestRoleMismatchSignsInButDoesNotNavigate(t *testing.T) {
	r, _ := newTestServer(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/navigate", gin.H{"destination": "admin"}, "")
	require.Equal(t, http.StatusForbidden, w.Code)

	_, resp := signIn(t, r, "Ali", "customer")
	assert.Equal(t, "admin", resp["required_role"])
	assert.Contains(t, resp["warning"], "admin")
	assert.Nil(t, resp["destination"])

	_, view := doJSON(t, r, http.MethodGet, "/api/view", nil, "")
	assert.Equal(t, "home", view["destination"])

	// the mismatched intent was dropped; a later admin sign-in stands alone
	_, resp = signIn(t, r, "Sara", "admin")
	assert.Nil(t, resp["destination"])
}

func TestSignInValidation(t *testing.T) {
	r, _ := newTestServer(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/session", gin.H{"name": "   ", "role": "customer"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/session", gin.H{"name": "Ali", "role": "driver"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthPrompt(t *testing.T) {
	r, _ := newTestServer(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/prompt", gin.H{"role_hint": "vendor"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	prompt := resp["auth_prompt"].(map[string]any)
	assert.Equal(t, "vendor", prompt["role_hint"])
	assert.Nil(t, prompt["allowed_roles"])

	// a prompt-only intent never resumes navigation
	_, resp = signIn(t, r, "Ayesha", "vendor")
	assert.Nil(t, resp["destination"])
}

func TestSignOutFromGatedAreaRedirectsHome(t *testing.T) {
	r, _ := newTestServer(t)

	token, _ := signIn(t, r, "Ayesha", "vendor")
	w, _ := doJSON(t, r, http.MethodPost, "/api/navigate", gin.H{"destination": "vendor-home"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, r, http.MethodDelete, "/api/auth/session", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "home", resp["destination"])

	_, view := doJSON(t, r, http.MethodGet, "/api/view", nil, "")
	assert.Equal(t, "home", view["destination"])
	assert.Nil(t, view["session"])

	// the old token is dead
	w, _ = doJSON(t, r, http.MethodGet, "/api/vendor/products", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartAddMergesAndNavigates(t *testing.T) {
	r, _ := newTestServer(t)

	dish := gin.H{"id": 2, "name": "Club Sandwich", "price": 12, "image": "club.jpg"}
	w, resp := doJSON(t, r, http.MethodPost, "/api/cart/items", dish, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cart", resp["destination"])

	_, resp = doJSON(t, r, http.MethodPost, "/api/cart/items", dish, "")
	items := resp["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(2), items[0].(map[string]any)["quantity"])
}

func TestCartQuantityAndRemoval(t *testing.T) {
	r, _ := newTestServer(t)

	doJSON(t, r, http.MethodPost, "/api/cart/items", gin.H{"id": 2, "name": "Club Sandwich", "price": 12}, "")

	w, _ := doJSON(t, r, http.MethodPut, "/api/cart/items/2", gin.H{"quantity": 0}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	_, cart := doJSON(t, r, http.MethodGet, "/api/cart", nil, "")
	assert.Equal(t, float64(1), cart["items"].([]any)[0].(map[string]any)["quantity"])

	w, _ = doJSON(t, r, http.MethodPut, "/api/cart/items/2", gin.H{"quantity": 3}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	_, cart = doJSON(t, r, http.MethodGet, "/api/cart", nil, "")
	assert.InDelta(t, 36, cart["total"].(float64), 1e-9)

	w, resp := doJSON(t, r, http.MethodDelete, "/api/cart/items/2", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp["items"])
}

func TestVendorProductLifecycle(t *testing.T) {
	r, _ := newTestServer(t)
	token, _ := signIn(t, r, "Ayesha", "vendor")

	// missing fields refused at the boundary
	w, _ := doJSON(t, r, http.MethodPost, "/api/vendor/products", gin.H{"name": "Pulao"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp := doJSON(t, r, http.MethodPost, "/api/vendor/products",
		gin.H{"name": "Chicken Pulao", "category": "Pulao", "price": 250}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	product := resp["product"].(map[string]any)
	id := int64(product["id"].(float64))
	require.Greater(t, id, int64(0))

	// vendor products appear on the public menu
	_, menu := doJSON(t, r, http.MethodGet, "/api/menu?vendor_only=true", nil, "")
	dishes := menu["dishes"].([]any)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Chicken Pulao", dishes[0].(map[string]any)["name"])
	assert.Equal(t, true, dishes[0].(map[string]any)["isVendorItem"])

	w, _ = doJSON(t, r, http.MethodDelete, "/api/vendor/products/"+itoa(id), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/vendor/products/"+itoa(id), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVendorOrders(t *testing.T) {
	r, _ := newTestServer(t)
	token, _ := signIn(t, r, "Ayesha", "vendor")

	_, resp := doJSON(t, r, http.MethodGet, "/api/vendor/orders", nil, token)
	assert.Equal(t, float64(3), resp["count"])
	summary := resp["order_summary"].(map[string]any)
	assert.Equal(t, float64(2), summary["Food Processing"])

	w, resp := doJSON(t, r, http.MethodPut, "/api/vendor/orders/1/status", gin.H{"status": "On the way"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "On the way", resp["order"].(map[string]any)["status"])

	w, _ = doJSON(t, r, http.MethodPut, "/api/vendor/orders/1/status", gin.H{"status": "Cancelled"}, token)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, _ = doJSON(t, r, http.MethodPut, "/api/vendor/orders/42/status", gin.H{"status": "Delivered"}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, resp = doJSON(t, r, http.MethodGet, "/api/vendor/orders?status=On+the+way", nil, token)
	assert.Equal(t, float64(2), resp["count"])
}

func TestVendorRoutesRequireVendorRole(t *testing.T) {
	r, _ := newTestServer(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/vendor/orders", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, _ := signIn(t, r, "Ali", "customer")
	w, _ = doJSON(t, r, http.MethodGet, "/api/vendor/orders", nil, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminVendorApproval(t *testing.T) {
	r, _ := newTestServer(t)
	token, _ := signIn(t, r, "Sara", "admin")

	_, resp := doJSON(t, r, http.MethodGet, "/api/admin/vendors?tab=pending", nil, token)
	assert.Equal(t, float64(2), resp["count"])

	w, resp := doJSON(t, r, http.MethodPut, "/api/admin/vendors/101/approve", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, resp["message"], "Pizza Corner")

	_, resp = doJSON(t, r, http.MethodGet, "/api/admin/vendors?tab=active", nil, token)
	assert.Equal(t, float64(7), resp["count"])

	w, _ = doJSON(t, r, http.MethodDelete, "/api/admin/vendors/102", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	_, resp = doJSON(t, r, http.MethodGet, "/api/admin/vendors?tab=pending", nil, token)
	assert.Equal(t, float64(0), resp["count"])

	// add with missing fields
	w, resp = doJSON(t, r, http.MethodPost, "/api/admin/vendors", gin.H{"name": "New Spot"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please fill all fields", resp["error"])

	w, _ = doJSON(t, r, http.MethodPost, "/api/admin/vendors", gin.H{
		"name": "New Spot", "cuisines": "Desi, BBQ", "estimatedTime": "20 min", "minOrder": 150, "type": "Non-veg",
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAdminVendorSearchAndFilter(t *testing.T) {
	r, _ := newTestServer(t)
	token, _ := signIn(t, r, "Sara", "admin")

	_, resp := doJSON(t, r, http.MethodGet, "/api/admin/vendors?q=biryani", nil, token)
	assert.Equal(t, float64(1), resp["count"])

	_, resp = doJSON(t, r, http.MethodGet, "/api/admin/vendors?type=Veg", nil, token)
	assert.Equal(t, float64(3), resp["count"])
}

func TestMenuMergesBaseAndVendorDishes(t *testing.T) {
	r, _ := newTestServer(t)
	token, _ := signIn(t, r, "Ayesha", "vendor")

	doJSON(t, r, http.MethodPost, "/api/vendor/products",
		gin.H{"name": "Chicken Pulao", "category": "Pulao", "price": 250}, token)

	_, resp := doJSON(t, r, http.MethodGet, "/api/menu", nil, "")
	assert.Equal(t, float64(7), resp["count"])

	_, resp = doJSON(t, r, http.MethodGet, "/api/menu?category=Pasta", nil, "")
	assert.Equal(t, float64(2), resp["count"])

	_, resp = doJSON(t, r, http.MethodGet, "/api/menu?q=pulao", nil, "")
	assert.Equal(t, float64(1), resp["count"])
}

func TestOrderStatusDocs(t *testing.T) {
	r, _ := newTestServer(t)

	w, resp := doJSON(t, r, http.MethodGet, "/api/order-statuses", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	statuses := resp["statuses"].([]any)
	require.Len(t, statuses, 3)
	assert.Equal(t, "Food Processing", statuses[0])

	progression := resp["progression"].(map[string]any)
	assert.Equal(t, "On the way", progression["Food Processing"])
	assert.NotContains(t, progression, "Delivered")
}

func TestStatePersistsAcrossServerRestart(t *testing.T) {
	r, kv := newTestServer(t)

	token, _ := signIn(t, r, "Ayesha", "vendor")
	doJSON(t, r, http.MethodPost, "/api/cart/items", gin.H{"id": 2, "name": "Club Sandwich", "price": 12}, "")
	doJSON(t, r, http.MethodPost, "/api/vendor/products",
		gin.H{"name": "Chicken Pulao", "category": "Pulao", "price": 250}, token)

	// a second server over the same storage sees the same state
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	sessions := session.NewStore(kv, logger)
	auth := middleware.NewAuth([]byte("test-secret"), sessions)
	h := handlers.New(logger, auth, sessions, nav.NewGuard(sessions), nav.NewTracker(),
		state.NewCart(kv, logger), state.NewCatalog(kv, logger), state.NewOrders(kv, logger), state.NewVendors())
	r2 := gin.New()
	routes.SetupRoutes(r2, h, auth)

	_, view := doJSON(t, r2, http.MethodGet, "/api/view", nil, "")
	assert.Equal(t, "Ayesha", view["session"].(map[string]any)["name"])
	assert.Equal(t, float64(1), view["cart_count"])
	assert.Len(t, view["vendor_products"].([]any), 1)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
