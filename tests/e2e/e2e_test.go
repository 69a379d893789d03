package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/paneldb/paneldb/internal/config"
	"github.com/paneldb/paneldb/internal/database"
	"github.com/paneldb/paneldb/internal/server"
	"github.com/paneldb/paneldb/internal/services"
	"github.com/paneldb/paneldb/tests/helpers"
)

func setDefaultEnv(key, value string) {
	if os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}

// TestE2E runs the full service stack in-process against a containerized
// database and exercises it over real HTTP
func TestE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	setDefaultEnv("DB_TYPE", "mariadb")
	setDefaultEnv("DB_IMAGE", "mariadb:11")
	setDefaultEnv("DB_HOST", "paneldb-db")
	setDefaultEnv("DB_PORT", "3306")
	setDefaultEnv("DB_DATABASE", "paneldb")
	setDefaultEnv("DB_USER", "paneldb")
	setDefaultEnv("DB_PASSWORD", "paneldb")
	setDefaultEnv("DB_ROOT_PASSWORD", "rootpass")

	tc, err := helpers.CreateDBContainer(t)
	if err != nil {
		t.Fatalf("Failed to start test containers: %v", err)
	}
	defer tc.Terminate(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Point at the mapped port on localhost, not the network alias
	cfg.DBHost = tc.DBHost
	cfg.DBPort = tc.DBPort.Port()

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	defer database.Close(db)

	// Serve the app on an ephemeral local port
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	prometheus := fiberprometheus.New("paneldb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)
	server.RegisterRoutes(app, db)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to open listener: %v", err)
	}
	go func() {
		_ = app.Listener(ln)
	}()
	defer func() {
		_ = app.Shutdown()
	}()
	baseURL := fmt.Sprintf("http://%s", ln.Addr().String())

	// Wait a bit for everything to stabilize
	time.Sleep(1 * time.Second)

	t.Run("HealthCheck", func(t *testing.T) {
		testHealthCheck(t, cfg, baseURL)
	})
	t.Run("PrometheusMetrics", func(t *testing.T) {
		testPrometheusMetrics(t, baseURL)
	})
	t.Run("DashboardFlow", func(t *testing.T) {
		testDashboardFlow(t, baseURL)
	})
	t.Run("NotFoundJSON", func(t *testing.T) {
		testNotFoundJSON(t, baseURL)
	})
}

func testHealthCheck(t *testing.T, cfg *config.Config, baseURL string) {
	resp, err := http.Get(baseURL + "/api/healthcheck")
	if err != nil {
		t.Fatalf("Failed to get healthcheck: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)
	if result["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", result["status"])
	}

	// The CLI-level check against the same database should agree
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect for health check: %v", err)
	}
	defer database.Close(db)

	check := services.HealthCheck(cfg, db)
	if check.Status != "healthy" {
		t.Errorf("Health check failed: %+v", check)
	}
}

func testPrometheusMetrics(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/metrics")
	if err != nil {
		t.Fatalf("Failed to get metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for metrics, got %d. Body: %s", resp.StatusCode, string(body))
	}

	t.Logf("Metrics endpoint working, found %d bytes of metrics", len(body))
}

// testDashboardFlow drives the typed api over the wire: user, track,
// favorite toggle, weather, then the aggregation
func testDashboardFlow(t *testing.T, baseURL string) {
	user := postForObject(t, baseURL+"/api/createUser", map[string]interface{}{
		"name":  "End ToEnd",
		"email": "e2e@example.com",
	})
	userID := user["id"].(float64)

	track := postForObject(t, baseURL+"/api/createMusicTrack", map[string]interface{}{
		"user_id":          userID,
		"title":            "Take Five",
		"artist":           "Dave Brubeck",
		"duration_seconds": 324,
	})

	postForObject(t, baseURL+"/api/updateMusicTrack", map[string]interface{}{
		"id":          track["id"],
		"is_favorite": true,
	})

	postForObject(t, baseURL+"/api/createWeatherRecord", map[string]interface{}{
		"user_id":     userID,
		"location":    "Lisbon",
		"temperature": 27.123,
		"condition":   "sunny",
		"humidity":    40,
		"wind_speed":  5.5,
	})

	resp, err := http.Get(fmt.Sprintf("%s/api/getDashboardData?userId=%.0f", baseURL, userID))
	if err != nil {
		t.Fatalf("Failed to get dashboard: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var dashboard map[string]interface{}
	helpers.ParseJSON(t, resp, &dashboard)

	weather, ok := dashboard["currentWeather"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected currentWeather object, got %v", dashboard["currentWeather"])
	}
	if weather["temperature"] != 27.12 {
		t.Errorf("Expected rounded temperature 27.12, got %v", weather["temperature"])
	}

	favorites, ok := dashboard["favoriteTracks"].([]interface{})
	if !ok || len(favorites) != 1 {
		t.Fatalf("Expected 1 favorite track, got %v", dashboard["favoriteTracks"])
	}
}

func testNotFoundJSON(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/api/getDashboardData?userId=999999")
	if err != nil {
		t.Fatalf("Failed to call api: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)

	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)
	if result["ok"] != false {
		t.Errorf("Expected ok=false in error body, got %v", result["ok"])
	}
}

func postForObject(t *testing.T, url string, payload interface{}) map[string]interface{} {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to post to %s: %v", url, err)
	}
	helpers.AssertStatus(t, resp, 200)

	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)
	return result
}
