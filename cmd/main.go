package main

import (
	"github.com/gin-gonic/gin"

	"github.com/msetrainings/nutrition/config"
	"github.com/msetrainings/nutrition/routes"
)

func main() {
	log := config.NewLogger()
	cfg := config.Load(log)
	config.ApplyLogLevel(log, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("database init failed")
	}

	r := routes.SetupRouter(db, log)
	log.WithField("port", cfg.Port).Info("food log listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
