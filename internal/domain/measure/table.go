package measure

import "sort"

// Dimensions dimensiones de medida reconocidas por el motor.
// "mass" no aparece aquí: es un sinónimo histórico de "weight" que se
// normaliza en la entrada y nunca se almacena ni se expone como valor propio.
var Dimensions = map[string]struct{}{
	"length": {},
	"area":   {},
	"volume": {},
	"weight": {},
	"count":  {},
}

// unitMultiplier escalera de unidades: dimensión → {unidad → multiplicador
// entero hacia la unidad base}. Invariante de la tabla: todos los
// multiplicadores son enteros positivos y exactamente una unidad por dimensión
// tiene multiplicador 1 (la unidad base), de modo que toda cantidad derivada de
// un múltiplo exacto es representable como entero sin pérdida.
var unitMultiplier = map[string]map[string]int64{
	"length": {"mm": 1, "cm": 10, "m": 1000},
	"area":   {"mm2": 1, "cm2": 100, "m2": 1_000_000},
	"volume": {"mm3": 1, "cm3": 1_000, "ml": 1_000, "l": 1_000_000, "m3": 1_000_000_000},
	"weight": {"mg": 1, "g": 1_000, "kg": 1_000_000},
	"count":  {"mc": 1, "ea": 1_000},
}

// baseUnitLabel etiqueta de la unidad base por dimensión.
var baseUnitLabel = map[string]string{
	"length": "mm",
	"area":   "mm2",
	"volume": "mm3",
	"weight": "mg",
	"count":  "mc",
}

// AllowedUnits devuelve el conjunto de unidades definidas para la dimensión
// (normalizada antes de buscar). Dimensión desconocida → conjunto vacío.
func AllowedUnits(dimension string) map[string]struct{} {
	units, ok := unitMultiplier[NormalizeDimension(dimension)]
	if !ok {
		return map[string]struct{}{}
	}
	set := make(map[string]struct{}, len(units))
	for u := range units {
		set[u] = struct{}{}
	}
	return set
}

// Multiplier devuelve el multiplicador entero de la unidad hacia la unidad
// base de su dimensión, o 0 si el par (dimensión, unidad) no existe en la
// tabla. 0 nunca es un multiplicador legítimo, así que funciona como centinela
// de "par inválido": el llamador no debe operar con él.
func Multiplier(dimension, unit string) int64 {
	return unitMultiplier[NormalizeDimension(dimension)][NormalizeUnit(unit)]
}

// BaseUnitLabel devuelve la etiqueta de la unidad base de una dimensión
// conocida (ej. "mm" para length). Dimensión desconocida → ErrUnknownDimension;
// el contrato del llamador es validar la dimensión antes de pedir la etiqueta.
func BaseUnitLabel(dimension string) (string, error) {
	label, ok := baseUnitLabel[NormalizeDimension(dimension)]
	if !ok {
		return "", ErrUnknownDimension
	}
	return label, nil
}

// DefaultUnitFor alias histórico de BaseUnitLabel: la unidad por defecto de
// una dimensión es su unidad base.
func DefaultUnitFor(dimension string) (string, error) {
	return BaseUnitLabel(dimension)
}

// DimensionNames devuelve las dimensiones conocidas en orden estable.
func DimensionNames() []string {
	names := make([]string, 0, len(Dimensions))
	for d := range Dimensions {
		names = append(names, d)
	}
	sort.Strings(names)
	return names
}
