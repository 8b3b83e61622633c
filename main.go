package main

import (
	"go.uber.org/zap"

	"peminjaman-console/app"
	"peminjaman-console/routes"
)

func main() {
	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	port := application.Config.Port
	application.Log.Info("listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		application.Log.Fatal("server", zap.Error(err))
	}
}
