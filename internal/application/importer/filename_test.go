package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-kardex/internal/application/importer"
	"github.com/tu-usuario/inventario-kardex/internal/domain"
)

func TestParseTransferFilename(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		place    string
		wantErr  bool
	}{
		{"lugar simple", "tras_bod_Kiosko1_20240101.csv", "Kiosko1", false},
		{"lugar con espacio se usa tal cual", "tras_bod_Kiosko Norte_20240101.csv", "Kiosko Norte", false},
		{"lugar con guion bajo NO se reemplaza", "tras_bod_Punto_Centro_20240101.csv", "Punto_Centro", false},
		{"sin prefijo", "traslado_Kiosko1_20240101.csv", "", true},
		{"sin extensión csv", "tras_bod_Kiosko1_20240101.txt", "", true},
		{"sin fecha", "tras_bod_Kiosko1.csv", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			place, err := importer.ParseTransferFilename(tc.filename)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.place, place)
		})
	}
}

func TestParseSalesFilename(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		place    string
		wantErr  bool
	}{
		{"lugar simple", "Kiosko1_20240102.csv", "Kiosko1", false},
		{"guiones bajos se vuelven espacios", "Punto_Centro_20240102.csv", "Punto Centro", false},
		{"sin extensión csv", "Kiosko1_20240102.xlsx", "", true},
		{"sin guion bajo", "Kiosko1.csv", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			place, err := importer.ParseSalesFilename(tc.filename)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.place, place)
		})
	}
}
