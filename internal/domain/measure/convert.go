package measure

import "github.com/shopspring/decimal"

// Motor de conversión cantidad/precio ↔ unidad base.
//
// Contrato de redondeo, deliberadamente asimétrico:
//   - valor → base: mitades lejos de cero (Decimal.Round)
//   - base → valor y ambos sentidos de precio: bancario a 2 decimales
//     (Decimal.RoundBank)
//
// No unificar ambos modos: cambiaría cantidades ya almacenadas en el ledger.

// ToBaseQty convierte una cantidad expresada en 'unit' a la cantidad entera
// canónica en unidades base de 'dimension'. El producto se redondea al entero
// más cercano con mitades lejos de cero (0.5 → 1, -0.5 → -1).
func ToBaseQty(value decimal.Decimal, dimension, unit string) (int64, error) {
	mult := Multiplier(dimension, unit)
	if mult == 0 {
		return 0, &InvalidUnitError{Unit: NormalizeUnit(unit), Dimension: dimension}
	}
	return value.Mul(decimal.NewFromInt(mult)).Round(0).IntPart(), nil
}

// FromBaseQty convierte una cantidad base entera a un decimal en la unidad
// pedida, con exactamente 2 decimales.
func FromBaseQty(qtyBase int64, dimension, unit string) (decimal.Decimal, error) {
	mult := Multiplier(dimension, unit)
	if mult == 0 {
		return decimal.Zero, &InvalidUnitError{Unit: NormalizeUnit(unit), Dimension: dimension}
	}
	return decimal.NewFromInt(qtyBase).Div(decimal.NewFromInt(mult)).RoundBank(2), nil
}

// PriceToBase convierte un precio por 'unit' a precio por unidad base,
// redondeado a 2 decimales.
func PriceToBase(pricePerUnit decimal.Decimal, dimension, unit string) (decimal.Decimal, error) {
	mult := Multiplier(dimension, unit)
	if mult == 0 {
		return decimal.Zero, &InvalidUnitError{Unit: NormalizeUnit(unit), Dimension: dimension}
	}
	return pricePerUnit.Div(decimal.NewFromInt(mult)).RoundBank(2), nil
}

// PriceFromBase convierte un precio por unidad base a precio por la unidad
// pedida, redondeado a 2 decimales.
func PriceFromBase(pricePerBase decimal.Decimal, dimension, unit string) (decimal.Decimal, error) {
	mult := Multiplier(dimension, unit)
	if mult == 0 {
		return decimal.Zero, &InvalidUnitError{Unit: NormalizeUnit(unit), Dimension: dimension}
	}
	return pricePerBase.Mul(decimal.NewFromInt(mult)).RoundBank(2), nil
}
