package measure

import (
	"errors"
	"fmt"
)

// Errores del motor de conversión (sin dependencias externas).
var (
	// ErrUnknownDimension dimensión ausente de la tabla base. Solo lo produce
	// BaseUnitLabel; las conversiones señalan el par completo vía InvalidUnitError.
	ErrUnknownDimension = errors.New("dimensión desconocida")

	// ErrSignatureMismatch el adaptador FromBase recibió una forma de llamada
	// no soportada. Señala un bug de integración del llamador, no datos de
	// usuario inválidos: debe fallar rápido y nunca confundirse con
	// InvalidUnitError.
	ErrSignatureMismatch = errors.New("from_base: forma de llamada no soportada")
)

// InvalidUnitError par (dimensión, unidad) inexistente en la tabla. El mensaje
// conserva el contrato histórico exacto: unidad ya normalizada, dimensión tal
// como la entregó el llamador (sin normalizar). Esa asimetría es deliberada y
// los integradores dependen de ella.
type InvalidUnitError struct {
	Unit      string // unidad normalizada
	Dimension string // argumento original del llamador
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("Unsupported uom '%s' for dimension '%s'", e.Unit, e.Dimension)
}
