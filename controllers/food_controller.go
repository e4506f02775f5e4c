package controllers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/msetrainings/nutrition/services"
	"github.com/msetrainings/nutrition/utils"
)

type macroForm struct {
	Protein       float64 `form:"protein"`
	Carbohydrates float64 `form:"carbohydrates"`
	Fat           float64 `form:"fat"`
}

type foodForm struct {
	Name          string  `form:"food-name" binding:"required"`
	Protein       float64 `form:"protein"`
	Carbohydrates float64 `form:"carbohydrates"`
	Fat           float64 `form:"fat"`
}

// GET /food
func (h *Controller) FoodPage(c *gin.Context) {
	foods, err := h.repos(c).foods.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "", "/food")
		return
	}
	c.HTML(http.StatusOK, "add_food.html", gin.H{"title": "Add Food", "foods": foods})
}

// POST /food
func (h *Controller) CreateFood(c *gin.Context) {
	var form foodForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "A name and numeric protein, carbohydrates and fat are required.", "/food")
		return
	}
	_, err := h.repos(c).foods.Create(c.Request.Context(), services.FoodInput{
		Name:          form.Name,
		Protein:       form.Protein,
		Carbohydrates: form.Carbohydrates,
		Fat:           form.Fat,
	})
	if err != nil {
		h.fail(c, err, "", "/food")
		return
	}
	c.Redirect(http.StatusSeeOther, "/food")
}

// GET|POST /details
func (h *Controller) FoodDetails(c *gin.Context) {
	foods, err := h.repos(c).foods.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "", "/")
		return
	}
	if len(foods) == 0 {
		c.HTML(http.StatusOK, "details.html", gin.H{"title": "Food Details", "message": "No food registered"})
		return
	}
	c.HTML(http.StatusOK, "details.html", gin.H{"title": "Food Details", "foods": foods})
}

// GET /details/:name
func (h *Controller) FoodItem(c *gin.Context) {
	name := c.Param("name")
	food, err := h.repos(c).foods.Get(c.Request.Context(), name)
	if err != nil {
		h.fail(c, err, notRegisteredMessage(name), "/details")
		return
	}
	c.HTML(http.StatusOK, "food_item.html", gin.H{"title": food.Name, "food": food})
}

// POST /details/:name  delete=Delete | update=Update + macros
func (h *Controller) UpdateFoodItem(c *gin.Context) {
	name := c.Param("name")
	r := h.repos(c)
	ctx := c.Request.Context()

	switch {
	case c.PostForm("delete") == "Delete":
		if err := r.foods.Delete(ctx, name); err != nil {
			h.fail(c, err, "", "/details")
			return
		}
	case c.PostForm("update") == "Update":
		var form macroForm
		if err := c.ShouldBind(&form); err != nil {
			badRequest(c, "Protein, carbohydrates and fat must be numbers.", foodPath(name))
			return
		}
		err := r.foods.Update(ctx, name, services.FoodInput{
			Protein:       form.Protein,
			Carbohydrates: form.Carbohydrates,
			Fat:           form.Fat,
		})
		if err != nil {
			h.fail(c, err, "", foodPath(name))
			return
		}
	default:
		h.FoodItem(c)
		return
	}
	c.Redirect(http.StatusSeeOther, "/details")
}

// foodPath links to a food's detail page; names may contain '/', '?' or '#'.
func foodPath(name string) string {
	return "/details/" + url.PathEscape(utils.CapitalizeName(name))
}

func notRegisteredMessage(name string) string {
	return fmt.Sprintf("Not registered food: %s", name)
}
