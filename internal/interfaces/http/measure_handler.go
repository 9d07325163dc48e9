package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/uom-core/internal/application/dto"
	"github.com/tu-usuario/uom-core/internal/application/usecase"
	"github.com/tu-usuario/uom-core/internal/domain/measure"
)

// MeasureHandler maneja las peticiones HTTP de conversión de unidades.
type MeasureHandler struct {
	uc *usecase.MeasureUseCase
}

// NewMeasureHandler construye el handler.
func NewMeasureHandler(uc *usecase.MeasureUseCase) *MeasureHandler {
	return &MeasureHandler{uc: uc}
}

// ListDimensions devuelve el catálogo de dimensiones con sus unidades.
func (h *MeasureHandler) ListDimensions(c *fiber.Ctx) error {
	dims := h.uc.ListDimensions()
	return c.JSON(fiber.Map{"total": len(dims), "dimensions": dims})
}

// AllowedUnits devuelve las unidades admitidas para ?dimension=.
// Dimensión desconocida → lista vacía, igual que el motor; no es un error.
func (h *MeasureHandler) AllowedUnits(c *fiber.Ctx) error {
	dimension := c.Query("dimension")
	units := h.uc.AllowedUnits(dimension)
	return c.JSON(fiber.Map{
		"dimension": measure.NormalizeDimension(dimension),
		"units":     units,
	})
}

// QuantityToBase convierte {value, dimension, uom} a cantidad base entera.
func (h *MeasureHandler) QuantityToBase(c *fiber.Ctx) error {
	var in dto.QuantityToBaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.QuantityToBase(in)
	if err != nil {
		return measureError(c, err)
	}
	return c.JSON(out)
}

// QuantityFromBase convierte {qty_base, dimension, uom} a cantidad display.
func (h *MeasureHandler) QuantityFromBase(c *fiber.Ctx) error {
	var in dto.QuantityFromBaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.QuantityFromBase(in)
	if err != nil {
		return measureError(c, err)
	}
	return c.JSON(out)
}

// PriceToBase convierte {price_per_unit, dimension, uom} a precio por base.
func (h *MeasureHandler) PriceToBase(c *fiber.Ctx) error {
	var in dto.PriceToBaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.PriceToBase(in)
	if err != nil {
		return measureError(c, err)
	}
	return c.JSON(out)
}

// PriceFromBase convierte {price_per_base, dimension, uom} a precio por unidad.
func (h *MeasureHandler) PriceFromBase(c *fiber.Ctx) error {
	var in dto.PriceFromBaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.PriceFromBase(in)
	if err != nil {
		return measureError(c, err)
	}
	return c.JSON(out)
}

// measureError traduce errores del motor a HTTP. El mensaje del par inválido
// viaja al cliente sin alterar: es parte del contrato de compatibilidad.
func measureError(c *fiber.Ctx, err error) error {
	var invalid *measure.InvalidUnitError
	if errors.As(err, &invalid) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_UOM", Message: invalid.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
