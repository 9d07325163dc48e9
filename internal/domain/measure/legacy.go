package measure

import "github.com/shopspring/decimal"

// Adaptador de compatibilidad: el from_base histórico admitía dos formas de
// llamada desde dos sitios de integración distintos. Se modela como despacho
// etiquetado sobre dos structs de llamada, de modo que ambas formas siguen
// siendo distinguibles estáticamente y testeables por separado.

// LegacyQuantityCall forma posicional histórica (qty_base, unit, dimension).
// QtyBase admite cualquier numérico; si no es entero se trunca hacia cero,
// igual que hacía el llamador original.
type LegacyQuantityCall struct {
	QtyBase   any
	Unit      string
	Dimension string
}

// LegacyPriceCall forma nombrada nueva (price_per_base, dimension, unit).
type LegacyPriceCall struct {
	PricePerBase decimal.Decimal
	Dimension    string
	Unit         string
}

// FromBase despacha según la forma de llamada recibida:
//   - LegacyQuantityCall → FromBaseQty: cantidad display en la unidad pedida.
//   - LegacyPriceCall → PriceFromBase: precio por la unidad pedida.
//
// Cualquier otro valor produce ErrSignatureMismatch, nunca InvalidUnitError:
// una forma desconocida es un bug del integrador, no una unidad inválida.
func FromBase(call any) (decimal.Decimal, error) {
	switch c := call.(type) {
	case LegacyQuantityCall:
		qtyBase, ok := coerceQtyBase(c.QtyBase)
		if !ok {
			return decimal.Zero, ErrSignatureMismatch
		}
		return FromBaseQty(qtyBase, c.Dimension, c.Unit)
	case LegacyPriceCall:
		return PriceFromBase(c.PricePerBase, c.Dimension, c.Unit)
	default:
		return decimal.Zero, ErrSignatureMismatch
	}
}

// coerceQtyBase reproduce la coerción a entero del adaptador histórico:
// enteros pasan tal cual, flotantes y decimales se truncan hacia cero.
func coerceQtyBase(v any) (int64, bool) {
	switch q := v.(type) {
	case int:
		return int64(q), true
	case int32:
		return int64(q), true
	case int64:
		return q, true
	case float64:
		return int64(q), true
	case decimal.Decimal:
		return q.IntPart(), true
	default:
		return 0, false
	}
}
