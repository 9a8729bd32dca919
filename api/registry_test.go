package api

import (
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/amanda-debetaz/PandaExpressPOS/core/registry"
)

func resetAPIRegistry() {
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryAPI)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryAPI, nil)
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryRoutes)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryRoutes, nil)
}

func TestRegisterModuleAndApply(t *testing.T) {
	resetAPIRegistry()
	called := 0
	RegisterModule(func(g *echo.Group, db *gorm.DB) {
		called++
	})
	RegisterModule(func(g *echo.Group, db *gorm.DB) {
		called++
	})

	e := echo.New()
	ApplyModules(e.Group("/api"), nil)
	if called != 2 {
		t.Errorf("expected 2 modules applied, got %d", called)
	}
}

func TestRegisterModuleAfterLockPanics(t *testing.T) {
	resetAPIRegistry()
	e := echo.New()
	ApplyModules(e.Group("/api"), nil)

	defer func() {
		if recover() == nil {
			t.Error("expected panic when registering after lock")
		}
	}()
	RegisterModule(func(g *echo.Group, db *gorm.DB) {})
}

func TestRegisterRouteShorthand(t *testing.T) {
	resetAPIRegistry()
	RegisterGET("/ping", func(c echo.Context) error { return nil })
	RegisterPOST("/ping", func(c echo.Context) error { return nil })

	e := echo.New()
	ApplyRoutes(e, nil)

	found := 0
	for _, r := range e.Routes() {
		if r.Path == "/ping" {
			found++
		}
	}
	if found != 2 {
		t.Errorf("expected GET+POST /ping registered, found %d routes", found)
	}
}
