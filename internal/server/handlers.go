package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/hullscope/hullscope/internal/compute"
	"github.com/hullscope/hullscope/internal/wire"
)

func RegisterRoutes(r fiber.Router, provider compute.Provider) {
	r.Post("/compare", func(c *fiber.Ctx) error {
		var req wire.CompareRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		res, err := provider.Compare(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(res)
	})

	r.Post("/performance-analysis", func(c *fiber.Ctx) error {
		var req wire.AnalysisRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		res, err := provider.Analyze(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(res)
	})

	r.Get("/generate-points/:num_points", func(c *fiber.Ctx) error {
		n, err := strconv.Atoi(c.Params("num_points"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "num_points must be an integer")
		}
		res, err := provider.GeneratePoints(c.Context(), n, c.QueryInt("bbox_size"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(res)
	})
}
