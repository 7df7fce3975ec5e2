package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MyelinBots/stillalive-go/config"
	"github.com/MyelinBots/stillalive-go/internal/db/dbtest"
	"github.com/gin-gonic/gin"
)

func TestRouter_RequiresSecret(t *testing.T) {
	app := newAppWithDB(dbtest.NewSQLite(t), config.AuthConfig{})
	if app.Authenticator != nil {
		t.Error("authenticator built without a secret")
	}
	if _, err := app.Router(); err == nil {
		t.Error("expected an error without a JWT secret")
	}
}

func TestRouter_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app := newAppWithDB(dbtest.NewSQLite(t), config.AuthConfig{JWTSecret: "s", TokenTTL: "1h"})
	if app.Tokens == nil {
		t.Fatal("tokens not configured")
	}

	router, err := app.Router()
	if err != nil {
		t.Fatal(err)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health = %d", rec.Code)
	}
}
