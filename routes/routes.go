package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/msetrainings/nutrition/controllers"
	"github.com/msetrainings/nutrition/middlewares"
	"github.com/msetrainings/nutrition/templates"
)

func SetupRouter(db *gorm.DB, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	// match on the escaped path so %2F inside a food name stays one segment
	r.UseRawPath = true
	r.Use(middlewares.Recovery(log), middlewares.RequestLogger(log), middlewares.DBSession(db))
	r.SetHTMLTemplate(templates.MustLoad())

	h := controllers.NewController(log)

	// Every mutating POST redirects back to a GET page.
	r.GET("/", h.Home)
	r.POST("/", h.CreateDate)

	r.GET("/view/:date", h.ViewDay)
	r.POST("/view/:date", h.UpdateDay)

	r.GET("/food", h.FoodPage)
	r.POST("/food", h.CreateFood)

	r.GET("/details", h.FoodDetails)
	r.POST("/details", h.FoodDetails)
	r.GET("/details/:name", h.FoodItem)
	r.POST("/details/:name", h.UpdateFoodItem)

	r.GET("/api", h.API)
	r.GET("/healthz", h.Health)

	return r
}
