package measure

import "strings"

var superscripts = strings.NewReplacer("²", "2", "³", "3")

// NormalizeUnit canonicaliza un token de unidad para búsqueda en la tabla:
// recorta espacios, pasa a minúsculas, reemplaza los superíndices ²/³ por 2/3
// y aplica el alias histórico "piece" → "ea". Nunca falla: un token vacío
// produce cadena vacía, que simplemente no encontrará multiplicador.
func NormalizeUnit(unit string) string {
	u := superscripts.Replace(strings.ToLower(strings.TrimSpace(unit)))
	if u == "piece" {
		return "ea"
	}
	return u
}

// NormalizeDimension canonicaliza un token de dimensión: recorta, minúsculas
// y el sinónimo legado "mass" → "weight". Nunca falla.
func NormalizeDimension(dimension string) string {
	d := strings.ToLower(strings.TrimSpace(dimension))
	if d == "mass" {
		return "weight"
	}
	return d
}
