package controllers

import (
	"project/backend/models"

	"github.com/gofiber/fiber/v2"
)

type LevelsController struct {
	Catalog models.LevelCatalog
}

func NewLevelsController(catalog models.LevelCatalog) *LevelsController {
	return &LevelsController{Catalog: catalog}
}

// [+] GetLevels godoc
// @Summary List levels for a topic
// @Description Returns the static level list; unknown topic yields an empty array
// @Tags levels
// @Produce json
// @Param topic path string true "Topic key (stack, queue, linkedlist, tree, graph)"
// @Success 200 {array} models.LevelDefinition
// @Router /levels/{topic} [get]
func (lc *LevelsController) GetLevels(c *fiber.Ctx) error {
	return c.JSON(lc.Catalog.Levels(c.Params("topic")))
}
