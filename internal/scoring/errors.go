package scoring

import (
	"errors"
	"fmt"
)

// ErrConfiguration marca un catalogo o tabla de pesos ausente o corrupta.
// El motor no produce resultados con una configuracion invalida.
var ErrConfiguration = errors.New("scoring configuration error")

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
