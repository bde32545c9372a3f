package controller

import (
	"notekeeper-be/internal/apperror"
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/pkg/serverutils"
	"notekeeper-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITaskController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type taskController struct {
	taskService service.ITaskService
}

func NewTaskController(taskService service.ITaskService) ITaskController {
	return &taskController{
		taskService: taskService,
	}
}

func (c *taskController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/v1/tasks")
	h.Get("/", c.List)
	h.Post("/", c.Create)
	h.Patch("/", c.Update)
	h.Delete("/", c.Delete)
}

func (c *taskController) List(ctx *fiber.Ctx) error {
	var req dto.ListTasksRequest
	if err := ctx.QueryParser(&req); err != nil {
		return apperror.Validation("malformed query: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taskService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list tasks", res))
}

func (c *taskController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("malformed body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taskService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create task", res))
}

func (c *taskController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("malformed body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taskService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update task", res))
}

func (c *taskController) Delete(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return apperror.Validation("id is required")
	}

	res, err := c.taskService.Delete(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete task", res))
}
