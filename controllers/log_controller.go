package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GET /
func (h *Controller) Home(c *gin.Context) {
	rows, err := h.repos(c).dates.ListWithTotals(c.Request.Context())
	if err != nil {
		h.fail(c, err, "", "/")
		return
	}
	c.HTML(http.StatusOK, "home.html", gin.H{"results": rows})
}

// POST /  date=YYYY-MM-DD
func (h *Controller) CreateDate(c *gin.Context) {
	if _, err := h.repos(c).dates.Create(c.Request.Context(), c.PostForm("date")); err != nil {
		h.fail(c, err, "", "/")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// GET /view/:date
func (h *Controller) ViewDay(c *gin.Context) {
	date := c.Param("date")
	r := h.repos(c)
	ctx := c.Request.Context()

	day, err := r.days.Detail(ctx, date)
	if err != nil {
		h.fail(c, err, noDateMessage(date), "/")
		return
	}
	foods, err := r.foods.List(ctx)
	if err != nil {
		h.fail(c, err, "", "/")
		return
	}
	c.HTML(http.StatusOK, "day.html", gin.H{
		"title": day.PrettyDate,
		"day":   day,
		"foods": foods,
	})
}

// POST /view/:date
//
//	remove=Remove                 delete the whole day
//	delete=Delete food-select=ID  unlink one food
//	food-select=ID                log a food on the day
func (h *Controller) UpdateDay(c *gin.Context) {
	date := c.Param("date")
	r := h.repos(c)
	ctx := c.Request.Context()

	ld, err := r.dates.Get(ctx, date)
	if err != nil {
		h.fail(c, err, noDateMessage(date), "/")
		return
	}

	if c.PostForm("remove") == "Remove" {
		if err := r.dates.Delete(ctx, ld.EntryDate); err != nil {
			h.fail(c, err, "", "/")
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	back := "/view/" + ld.EntryDate
	foodID, err := strconv.ParseUint(c.PostForm("food-select"), 10, 64)
	if err != nil {
		badRequest(c, "Select a food first.", back)
		return
	}

	if c.PostForm("delete") == "Delete" {
		err = r.entries.Remove(ctx, uint(foodID), ld.ID)
	} else {
		_, err = r.entries.Add(ctx, uint(foodID), ld.ID)
	}
	if err != nil {
		h.fail(c, err, fmt.Sprintf("No food with id %d", foodID), back)
		return
	}
	c.Redirect(http.StatusSeeOther, back)
}

func noDateMessage(date string) string {
	return fmt.Sprintf("No available information for date: %s", date)
}
