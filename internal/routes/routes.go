package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"norhamtrans/internal/rules"
	"norhamtrans/internal/store"
)

// SetupRouter wires every controller onto one engine. The store and rules
// engine are created in main and injected here; controllers never reach for
// ambient state. Middleware goes on before any route is registered because
// gin freezes each route's handler chain at registration time.
func SetupRouter(s *store.Store, e *rules.Engine) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	DriverRoutes(r, s, e)
	InventoryRoutes(r, s, e)
	VehicleRoutes(r, s, e)
	TourRoutes(r, s, e)
	ReportRoutes(r, s)

	return r
}
