// Package router builds the Echo instance: global middleware, the error
// handler, system routes and the versioned API groups.
package router

import (
	"net/http"

	"github.com/deppfellow/acm/internal/handler"
	"github.com/deppfellow/acm/internal/middleware"
	"github.com/deppfellow/acm/internal/model"
	"github.com/deppfellow/acm/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires middleware in execution order: rate limit, CORS, secure
// headers, request id, New Relic, tracing attributes, request context,
// request logging, panic recovery.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)

	v1 := router.Group("/api/v1", middlewares.Auth.RequireAuth, middlewares.ContextEnhancer.EnhanceContext())
	registerV1Routes(v1, h)

	return router
}

func registerV1Routes(v1 *echo.Group, h *handler.Handlers) {
	employees := v1.Group("/employees")
	employees.GET("", handler.Handle(h.Employee.Handler, h.Employee.GetEmployees, http.StatusOK, &model.GetEmployeesRequest{}))
	employees.POST("", handler.Handle(h.Employee.Handler, h.Employee.CreateEmployee, http.StatusCreated, &model.CreateEmployeeRequest{}))
	employees.GET("/:id", handler.Handle(h.Employee.Handler, h.Employee.GetEmployee, http.StatusOK, &model.EmployeeIDRequest{}))
	employees.PUT("/:id", handler.Handle(h.Employee.Handler, h.Employee.UpdateEmployee, http.StatusOK, &model.UpdateEmployeeRequest{}))
	employees.DELETE("/:id", handler.HandleNoContent(h.Employee.Handler, h.Employee.DeleteEmployee, http.StatusNoContent, &model.EmployeeIDRequest{}))

	v1.GET("/modules", handler.Handle(h.Module.Handler, h.Module.GetModules, http.StatusOK, &model.GetModulesRequest{}))
}
