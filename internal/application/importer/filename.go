package importer

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/inventario-kardex/internal/domain"
)

// transferPrefix prefijo fijo de los lotes de traslado: tras_bod_LUGAR_FECHA.csv.
const transferPrefix = "tras_bod_"

// ParseTransferFilename extrae el nombre de la ubicación destino de un lote
// de traslado. El lugar es lo que queda entre el prefijo fijo y el ÚLTIMO
// guion bajo (que separa la fecha); se usa tal cual, sin reemplazos.
func ParseTransferFilename(filename string) (string, error) {
	if !strings.HasPrefix(filename, transferPrefix) || !strings.HasSuffix(filename, ".csv") {
		return "", fmt.Errorf("%w: el nombre del archivo debe tener el formato tras_bod_LUGAR_AAAAMMDD.csv", domain.ErrInvalidInput)
	}
	last := strings.LastIndex(filename, "_")
	if last < len(transferPrefix) {
		return "", fmt.Errorf("%w: nombre de archivo sin fecha: %s", domain.ErrInvalidInput, filename)
	}
	place := filename[len(transferPrefix):last]
	if place == "" {
		return "", fmt.Errorf("%w: nombre de archivo sin lugar: %s", domain.ErrInvalidInput, filename)
	}
	return place, nil
}

// ParseSalesFilename extrae el nombre de la ubicación de venta de un lote de
// ventas diarias (LUGAR_FECHA.csv). Los guiones bajos del lugar se
// restauran a espacios para buscar la ubicación por nombre.
func ParseSalesFilename(filename string) (string, error) {
	if !strings.HasSuffix(filename, ".csv") {
		return "", fmt.Errorf("%w: el nombre del archivo debe terminar en .csv", domain.ErrInvalidInput)
	}
	last := strings.LastIndex(filename, "_")
	if last <= 0 {
		return "", fmt.Errorf("%w: el nombre del archivo debe tener el formato LUGAR_AAAAMMDD.csv", domain.ErrInvalidInput)
	}
	place := strings.ReplaceAll(filename[:last], "_", " ")
	return place, nil
}
