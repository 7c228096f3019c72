package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/premkumardevadason/chess-go/internal/service"
)

type TrainingController struct {
	training *service.TrainingService
}

func NewTrainingController(training *service.TrainingService) *TrainingController {
	return &TrainingController{training: training}
}

type selfPlayRequest struct {
	Count int `json:"count"`
}

// SelfPlay enqueues self-play games. The pool accepts what its buffer
// can hold; the response reports both numbers so callers can retry the
// remainder.
func (tc *TrainingController) SelfPlay(c *fiber.Ctx) error {
	var req selfPlayRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}
	if req.Count <= 0 {
		req.Count = 1
	}

	accepted := tc.training.StartSelfPlay(req.Count)
	status := fiber.StatusAccepted
	if accepted < req.Count {
		status = fiber.StatusTooManyRequests
	}
	return c.Status(status).JSON(fiber.Map{
		"requested": req.Count,
		"accepted":  accepted,
	})
}
