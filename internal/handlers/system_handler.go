package handlers

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	*BaseHandler
	// Снимок таблицы маршрутов берется у движка лениво,
	// т.к. на момент конструирования хендлеров она еще не полна
	routes func() gin.RoutesInfo
}

func NewSystemHandler(base *BaseHandler, routes func() gin.RoutesInfo) *SystemHandler {
	return &SystemHandler{
		BaseHandler: base,
		routes:      routes,
	}
}

func (h *SystemHandler) RegisterRoutes(r *gin.RouterGroup) {
	system := r.Group("/system")
	{
		system.GET("/health", h.Health)
		system.GET("/routes", h.Routes)
	}
}

// Health - статус процесса и базы данных
func (h *SystemHandler) Health(c *gin.Context) {
	dbStatus := "ok"
	sqlDB, err := h.GetDB(c).DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		dbStatus = "error: " + err.Error()
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	status := http.StatusOK
	overall := "ok"
	if dbStatus != "ok" {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	c.JSON(status, gin.H{
		"status":   overall,
		"database": dbStatus,
		"runtime": gin.H{
			"goroutines":     runtime.NumGoroutine(),
			"heap_alloc_mb":  mem.HeapAlloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
	})
}

// Routes - таблица зарегистрированных маршрутов
func (h *SystemHandler) Routes(c *gin.Context) {
	type routeInfo struct {
		Method string `json:"method"`
		Path   string `json:"path"`
	}

	all := h.routes()
	out := make([]routeInfo, 0, len(all))
	for _, r := range all {
		out = append(out, routeInfo{Method: r.Method, Path: r.Path})
	}

	c.JSON(http.StatusOK, gin.H{"routes": out})
}
