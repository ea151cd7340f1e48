package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestLeerCSV_UTF8ConCabecera(t *testing.T) {
	u, err := leerCSV([]byte("provincia;municipio\nMatanzas;Cárdenas\nMatanzas;Colón\nMatanzas;Cárdenas\nHolguín;Gibara\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Holguín", "Matanzas"}, u.provincias())
	assert.Len(t, u["Matanzas"], 2)
}

func TestLeerCSV_ISO88591(t *testing.T) {
	latin1, err := charmap.ISO8859_1.NewEncoder().String("Camagüey;Nuevitas\nPinar del Río;Viñales\n")
	require.NoError(t, err)

	u, err := leerCSV([]byte(latin1))
	require.NoError(t, err)
	assert.Contains(t, u, "Camagüey")
	assert.Contains(t, u["Pinar del Río"], "Viñales")
}

func TestLeerCSV_Errores(t *testing.T) {
	_, err := leerCSV([]byte("provincia;municipio\n"))
	assert.Error(t, err)

	_, err = leerCSV([]byte("Matanzas;\n"))
	assert.Error(t, err)

	_, err = leerCSV([]byte("solo una columna\n"))
	assert.Error(t, err)
}

func TestSQL(t *testing.T) {
	u := ubicaciones{"Ciego de Ávila": {"Morón": {}}, "L'Habana": {"Playa": {}}}

	up := sqlUp(u)
	assert.Contains(t, up, "('Ciego de Ávila'),\n    ('L''Habana')\nON CONFLICT (nombre) DO NOTHING;")
	assert.Contains(t, up, "SELECT id, 'Playa' FROM provincias WHERE nombre = 'L''Habana'")

	assert.Equal(t, "DELETE FROM provincias WHERE nombre IN ('Ciego de Ávila', 'L''Habana');\n", sqlDown(u))
}
