package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/tu-usuario/inventario-kardex/internal/domain"
)

// table recorre un CSV fila a fila con acceso a columnas por nombre.
// El encabezado se valida una sola vez antes de iterar.
type table struct {
	reader *csv.Reader
	cols   map[string]int
}

// openCSV lee el encabezado, verifica que las columnas requeridas existan y
// deja el lector posicionado en la primera fila de datos. Los archivos que
// exportan las cajas suelen venir en latin-1; si el contenido no es UTF-8
// válido se decodifica como ISO 8859-1.
func openCSV(r io.Reader, required []string) (*table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	if !utf8.Valid(raw) {
		raw, err = charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("decodificar archivo: %w", err)
		}
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.FieldsPerRecord = -1 // el largo se verifica por fila, no aborta el lote
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: encabezado CSV ilegible", domain.ErrInvalidInput)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: faltan columnas obligatorias: %s",
			domain.ErrInvalidInput, strings.Join(missing, ", "))
	}

	return &table{reader: cr, cols: cols}, nil
}

// row es una fila de datos con acceso por nombre de columna.
type row struct {
	fields []string
	cols   map[string]int
}

// next devuelve la siguiente fila o io.EOF al terminar el archivo.
func (t *table) next() (*row, error) {
	fields, err := t.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	return &row{fields: fields, cols: t.cols}, nil
}

// get devuelve el valor de la columna, recortado. Error si la fila es más
// corta que la posición de la columna.
func (r *row) get(col string) (string, error) {
	i, ok := r.cols[col]
	if !ok || i >= len(r.fields) {
		return "", fmt.Errorf("falta el valor de la columna %q", col)
	}
	return strings.TrimSpace(r.fields[i]), nil
}
