package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/msetrainings/nutrition/middlewares"
	"github.com/msetrainings/nutrition/services"
)

type Controller struct {
	Log logrus.FieldLogger
}

func NewController(log logrus.FieldLogger) *Controller {
	return &Controller{Log: log}
}

// repos are built per request over the request's DB session.
type repos struct {
	dates   *services.LogDateService
	foods   *services.FoodService
	entries *services.EntryService
	days    *services.DayService
}

func (h *Controller) repos(c *gin.Context) repos {
	db := middlewares.DB(c)
	r := repos{
		dates:   services.NewLogDateService(db, h.Log),
		foods:   services.NewFoodService(db, h.Log),
		entries: services.NewEntryService(db, h.Log),
	}
	r.days = services.NewDayService(r.dates, r.entries)
	return r
}

// renderError is the single error page every route uses.
func renderError(c *gin.Context, status int, title, message, back string) {
	c.HTML(status, "error.html", gin.H{
		"title":   title,
		"message": message,
		"back":    back,
	})
}

// fail maps a service error to a status and the shared error page.
func (h *Controller) fail(c *gin.Context, err error, notFoundMsg, back string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		renderError(c, http.StatusNotFound, "Not found", notFoundMsg, back)
	case errors.Is(err, services.ErrInvalidDateFormat):
		renderError(c, http.StatusBadRequest, "Invalid date", err.Error(), back)
	case errors.Is(err, services.ErrInvalidFood):
		renderError(c, http.StatusBadRequest, "Invalid food", err.Error(), back)
	default:
		_ = c.Error(err)
		renderError(c, http.StatusInternalServerError, "Something went wrong", "The request could not be completed.", back)
	}
}

func badRequest(c *gin.Context, message, back string) {
	renderError(c, http.StatusBadRequest, "Bad request", message, back)
}
