package controller

import (
	"time"

	"notekeeper-be/internal/apperror"
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/pkg/serverutils"
	"notekeeper-be/internal/service"
	"notekeeper-be/pkg/cache"

	"github.com/gofiber/fiber/v2"
)

// IInternalController exposes the trusted operational surface under
// /_internal. It bypasses the entity use cases on purpose: simple mode runs
// single statements without a transaction, transaction mode wraps writes in
// one, and transaction_exception mode fails after the write so rollback can
// be observed end to end. Not for untrusted callers.
type IInternalController interface {
	RegisterRoutes(r fiber.Router)
}

type internalController struct {
	internalService service.IInternalService
	cacheClient     cache.Client
}

func NewInternalController(internalService service.IInternalService, cacheClient cache.Client) IInternalController {
	return &internalController{
		internalService: internalService,
		cacheClient:     cacheClient,
	}
}

func (c *internalController) RegisterRoutes(r fiber.Router) {
	pg := r.Group("/v1/postgres")

	simple := pg.Group("/simple")
	simple.Get("/", c.ListSettings)
	simple.Post("/", c.CreateSetting)
	simple.Patch("/", c.UpdateSetting)
	simple.Delete("/", c.DeleteSetting)

	tx := pg.Group("/transaction")
	tx.Post("/", c.CreateSettingTx)
	tx.Patch("/", c.UpdateSettingTx)
	tx.Delete("/", c.DeleteSettingTx)

	txExc := pg.Group("/transaction_exception")
	txExc.Post("/", c.CreateSettingTxExc)
	txExc.Patch("/", c.UpdateSettingTxExc)
	txExc.Delete("/", c.DeleteSettingTxExc)

	rd := r.Group("/v1/redis")
	rd.Get("/", c.CacheGet)
	rd.Post("/", c.CacheSet)
}

func (c *internalController) ListSettings(ctx *fiber.Ctx) error {
	var req dto.ListSettingsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return apperror.Validation("malformed query: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.internalService.ListSettings(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list settings", res))
}

func (c *internalController) CreateSetting(ctx *fiber.Ctx) error {
	req, err := c.parseCreate(ctx)
	if err != nil {
		return err
	}

	res, err := c.internalService.CreateSetting(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create setting", res))
}

func (c *internalController) UpdateSetting(ctx *fiber.Ctx) error {
	req, err := c.parseUpdate(ctx)
	if err != nil {
		return err
	}

	res, err := c.internalService.UpdateSetting(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update setting", res))
}

func (c *internalController) DeleteSetting(ctx *fiber.Ctx) error {
	name := ctx.Query("name")
	if name == "" {
		return apperror.Validation("name is required")
	}

	res, err := c.internalService.DeleteSetting(ctx.Context(), name)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete setting", res))
}

func (c *internalController) CreateSettingTx(ctx *fiber.Ctx) error {
	req, err := c.parseCreate(ctx)
	if err != nil {
		return err
	}

	res, err := c.internalService.CreateSettingTx(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create setting", res))
}

func (c *internalController) UpdateSettingTx(ctx *fiber.Ctx) error {
	req, err := c.parseUpdate(ctx)
	if err != nil {
		return err
	}

	res, err := c.internalService.UpdateSettingTx(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update setting", res))
}

func (c *internalController) DeleteSettingTx(ctx *fiber.Ctx) error {
	name := ctx.Query("name")
	if name == "" {
		return apperror.Validation("name is required")
	}

	res, err := c.internalService.DeleteSettingTx(ctx.Context(), name)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete setting", res))
}

func (c *internalController) CreateSettingTxExc(ctx *fiber.Ctx) error {
	req, err := c.parseCreate(ctx)
	if err != nil {
		return err
	}
	return c.internalService.CreateSettingTxExc(ctx.Context(), req)
}

func (c *internalController) UpdateSettingTxExc(ctx *fiber.Ctx) error {
	req, err := c.parseUpdate(ctx)
	if err != nil {
		return err
	}
	return c.internalService.UpdateSettingTxExc(ctx.Context(), req)
}

func (c *internalController) DeleteSettingTxExc(ctx *fiber.Ctx) error {
	name := ctx.Query("name")
	if name == "" {
		return apperror.Validation("name is required")
	}
	return c.internalService.DeleteSettingTxExc(ctx.Context(), name)
}

func (c *internalController) CacheGet(ctx *fiber.Ctx) error {
	key := ctx.Query("key")
	if key == "" {
		return apperror.Validation("key is required")
	}

	val, err := c.cacheClient.Get(ctx.Context(), key)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get key", dto.CacheGetResponse{
		Key:   key,
		Value: val,
	}))
}

func (c *internalController) CacheSet(ctx *fiber.Ctx) error {
	var req dto.CacheSetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("malformed body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	ttl := time.Duration(req.TTL) * time.Second
	if err := c.cacheClient.Set(ctx.Context(), req.Key, req.Value, ttl); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success set key", nil))
}

func (c *internalController) parseCreate(ctx *fiber.Ctx) (*dto.CreateSettingRequest, error) {
	var req dto.CreateSettingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, apperror.Validation("malformed body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *internalController) parseUpdate(ctx *fiber.Ctx) (*dto.UpdateSettingRequest, error) {
	var req dto.UpdateSettingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, apperror.Validation("malformed body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}
	return &req, nil
}
