package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/uom-core/internal/domain"
	"github.com/tu-usuario/uom-core/internal/domain/measure"
)

// QuantityStored esquema de captura para cantidades canónicas del ledger.
// QtyStored llega ya derivado en unidades base por el llamador; aquí no se
// reconvierte, solo se valida el par (dimension, uom) contra el motor.
type QuantityStored struct {
	Dimension string `json:"dimension"`
	UOM       string `json:"uom"`
	QtyStored int64  `json:"qty_stored"` // entero en unidades base; puede ser negativo (ajustes)
}

// Validate normaliza la dimensión ("mass" → "weight", nunca se almacena el
// sinónimo) y rechaza cualquier par (dimension, uom) que el motor reporte como
// inválido, propagando su InvalidUnitError sin alterar.
func (q *QuantityStored) Validate() error {
	q.Dimension = measure.NormalizeDimension(q.Dimension)
	if _, ok := measure.Dimensions[q.Dimension]; !ok {
		return domain.ErrInvalidInput
	}
	if measure.Multiplier(q.Dimension, q.UOM) == 0 {
		return &measure.InvalidUnitError{
			Unit:      measure.NormalizeUnit(q.UOM),
			Dimension: q.Dimension,
		}
	}
	q.UOM = measure.NormalizeUnit(q.UOM)
	return nil
}

// ── Conversión de cantidades ──────────────────────────────────────────────────

// QuantityToBaseRequest petición de conversión cantidad → unidades base.
type QuantityToBaseRequest struct {
	Value     decimal.Decimal `json:"value"`
	Dimension string          `json:"dimension"`
	UOM       string          `json:"uom"`
}

// QuantityToBaseResponse cantidad canónica resultante.
type QuantityToBaseResponse struct {
	QtyBase   int64  `json:"qty_base"`
	Dimension string `json:"dimension"`
	BaseUnit  string `json:"base_unit"`
}

// QuantityFromBaseRequest petición de conversión base → cantidad display.
type QuantityFromBaseRequest struct {
	QtyBase   int64  `json:"qty_base"`
	Dimension string `json:"dimension"`
	UOM       string `json:"uom"`
}

// QuantityFromBaseResponse cantidad display, siempre con 2 decimales.
type QuantityFromBaseResponse struct {
	Value string `json:"value"`
	UOM   string `json:"uom"`
}

// ── Conversión de precios ─────────────────────────────────────────────────────

// PriceToBaseRequest petición precio por unidad → precio por unidad base.
type PriceToBaseRequest struct {
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Dimension    string          `json:"dimension"`
	UOM          string          `json:"uom"`
}

// PriceToBaseResponse precio por unidad base, 2 decimales.
type PriceToBaseResponse struct {
	PricePerBase string `json:"price_per_base"`
	BaseUnit     string `json:"base_unit"`
}

// PriceFromBaseRequest petición precio por unidad base → precio por unidad.
type PriceFromBaseRequest struct {
	PricePerBase decimal.Decimal `json:"price_per_base"`
	Dimension    string          `json:"dimension"`
	UOM          string          `json:"uom"`
}

// PriceFromBaseResponse precio por la unidad pedida, 2 decimales.
type PriceFromBaseResponse struct {
	PricePerUnit string `json:"price_per_unit"`
	UOM          string `json:"uom"`
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

// DimensionResponse una dimensión con su unidad base y unidades admitidas.
type DimensionResponse struct {
	Dimension string   `json:"dimension"`
	BaseUnit  string   `json:"base_unit"`
	Units     []string `json:"units"`
}
