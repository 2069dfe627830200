package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lojinha/catalog-api/internal/domain/entity"
	"github.com/lojinha/catalog-api/internal/router"
	"github.com/lojinha/catalog-api/pkg/helpers"
	"github.com/lojinha/catalog-api/pkg/validation"
)

type testApp struct {
	engine *gin.Engine
	db     *gorm.DB
	jwt    *helpers.JWTManager
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	jwtM := helpers.NewJWTManager("test-secret", time.Hour)

	engine := gin.New()
	reg := router.NewRegistry(engine)
	router.InitModules(reg, router.Deps{Logger: logger, DB: db, JWT: jwtM})
	reg.RegisterAll()

	return &testApp{engine: engine, db: db, jwt: jwtM}
}

func (a *testApp) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

// register creates an account through the API and returns the issued token
// and user id.
func (a *testApp) register(t *testing.T, email, password string) (string, uint) {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/auth/register", `{"email":"`+email+`","password":"`+password+`"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d (%s)", email, rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("register %s: no token in response", email)
	}
	user, _ := body["user"].(map[string]any)
	id, _ := user["id"].(float64)
	return token, uint(id)
}

func issuePaths(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	body := decodeBody(t, rec)
	raw, _ := body["issues"].([]any)
	paths := make([]string, 0, len(raw))
	for _, it := range raw {
		m, _ := it.(map[string]any)
		p, _ := m["path"].(string)
		paths = append(paths, p)
	}
	return paths
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func containsPath(paths []string, want string) bool {
	for _, p := range paths {
		if p == want {
			return true
		}
	}
	return false
}
