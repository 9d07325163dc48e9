package usecase

import (
	"errors"
	"sort"

	"github.com/tu-usuario/uom-core/internal/application/dto"
	"github.com/tu-usuario/uom-core/internal/domain/measure"
	"github.com/tu-usuario/uom-core/internal/infrastructure/metrics"
	"github.com/tu-usuario/uom-core/pkg/logger"
)

// MeasureUseCase expone el motor de conversión a la capa HTTP, con logging y
// métricas. El motor es puro y sin estado; este caso de uso tampoco guarda
// nada, así que es seguro compartirlo entre peticiones concurrentes.
type MeasureUseCase struct {
	log *logger.Logger
}

// NewMeasureUseCase construye el caso de uso.
func NewMeasureUseCase(log *logger.Logger) *MeasureUseCase {
	return &MeasureUseCase{log: log}
}

// ListDimensions devuelve el catálogo: dimensiones, unidad base y unidades
// admitidas, en orden estable.
func (uc *MeasureUseCase) ListDimensions() []dto.DimensionResponse {
	dims := measure.DimensionNames()
	out := make([]dto.DimensionResponse, 0, len(dims))
	for _, d := range dims {
		base, err := measure.BaseUnitLabel(d)
		if err != nil {
			// Imposible para dimensiones salidas de la propia tabla.
			continue
		}
		out = append(out, dto.DimensionResponse{
			Dimension: d,
			BaseUnit:  base,
			Units:     sortedUnits(d),
		})
	}
	return out
}

// AllowedUnits devuelve las unidades admitidas para una dimensión; dimensión
// desconocida → lista vacía, igual que el motor.
func (uc *MeasureUseCase) AllowedUnits(dimension string) []string {
	return sortedUnits(dimension)
}

// QuantityToBase convierte una cantidad display a la cantidad entera canónica.
func (uc *MeasureUseCase) QuantityToBase(in dto.QuantityToBaseRequest) (*dto.QuantityToBaseResponse, error) {
	qtyBase, err := measure.ToBaseQty(in.Value, in.Dimension, in.UOM)
	if err != nil {
		uc.observe("quantity_to_base", in.Dimension, err)
		return nil, err
	}
	dim := measure.NormalizeDimension(in.Dimension)
	base, _ := measure.BaseUnitLabel(dim) // la conversión ya validó la dimensión
	uc.observe("quantity_to_base", dim, nil)
	uc.log.Debug().
		Str("dimension", dim).
		Str("uom", measure.NormalizeUnit(in.UOM)).
		Int64("qty_base", qtyBase).
		Msg("cantidad convertida a base")
	return &dto.QuantityToBaseResponse{QtyBase: qtyBase, Dimension: dim, BaseUnit: base}, nil
}

// QuantityFromBase convierte una cantidad base al decimal display (2 decimales).
func (uc *MeasureUseCase) QuantityFromBase(in dto.QuantityFromBaseRequest) (*dto.QuantityFromBaseResponse, error) {
	value, err := measure.FromBaseQty(in.QtyBase, in.Dimension, in.UOM)
	if err != nil {
		uc.observe("quantity_from_base", in.Dimension, err)
		return nil, err
	}
	uc.observe("quantity_from_base", measure.NormalizeDimension(in.Dimension), nil)
	return &dto.QuantityFromBaseResponse{
		Value: value.StringFixed(2),
		UOM:   measure.NormalizeUnit(in.UOM),
	}, nil
}

// PriceToBase convierte un precio por unidad a precio por unidad base.
func (uc *MeasureUseCase) PriceToBase(in dto.PriceToBaseRequest) (*dto.PriceToBaseResponse, error) {
	price, err := measure.PriceToBase(in.PricePerUnit, in.Dimension, in.UOM)
	if err != nil {
		uc.observe("price_to_base", in.Dimension, err)
		return nil, err
	}
	dim := measure.NormalizeDimension(in.Dimension)
	base, _ := measure.BaseUnitLabel(dim)
	uc.observe("price_to_base", dim, nil)
	return &dto.PriceToBaseResponse{PricePerBase: price.StringFixed(2), BaseUnit: base}, nil
}

// PriceFromBase convierte un precio por unidad base a precio por la unidad pedida.
func (uc *MeasureUseCase) PriceFromBase(in dto.PriceFromBaseRequest) (*dto.PriceFromBaseResponse, error) {
	price, err := measure.PriceFromBase(in.PricePerBase, in.Dimension, in.UOM)
	if err != nil {
		uc.observe("price_from_base", in.Dimension, err)
		return nil, err
	}
	uc.observe("price_from_base", measure.NormalizeDimension(in.Dimension), nil)
	return &dto.PriceFromBaseResponse{
		PricePerUnit: price.StringFixed(2),
		UOM:          measure.NormalizeUnit(in.UOM),
	}, nil
}

// observe alimenta los contadores y deja rastro de los rechazos.
func (uc *MeasureUseCase) observe(operation, dimension string, err error) {
	if err == nil {
		metrics.Conversions.WithLabelValues(operation, dimension).Inc()
		return
	}
	var invalid *measure.InvalidUnitError
	if errors.As(err, &invalid) {
		metrics.InvalidUnit.WithLabelValues(operation).Inc()
		uc.log.Warn().
			Str("operation", operation).
			Str("dimension", invalid.Dimension).
			Str("uom", invalid.Unit).
			Msg("par (dimensión, unidad) rechazado")
	}
}

func sortedUnits(dimension string) []string {
	set := measure.AllowedUnits(dimension)
	units := make([]string, 0, len(set))
	for u := range set {
		units = append(units, u)
	}
	sort.Strings(units)
	return units
}
