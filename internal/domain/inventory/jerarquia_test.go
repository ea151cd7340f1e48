package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caguayo/inventario-api/internal/domain/inventory"
)

func ptr(v int64) *int64 { return &v }

// Cadena A(1) <- B(2) <- C(3): el padre de C es B y el de B es A.
func cadenaABC() inventory.Padres {
	return inventory.Padres{
		1: nil,
		2: ptr(1),
		3: ptr(2),
	}
}

func TestTieneCiclo_CadenaABC(t *testing.T) {
	padres := cadenaABC()

	assert.True(t, inventory.TieneCiclo(padres, 1, ptr(3)), "A con padre C cierra el ciclo")
	assert.True(t, inventory.TieneCiclo(padres, 1, ptr(2)), "A con padre B cierra el ciclo")
	assert.False(t, inventory.TieneCiclo(padres, 1, nil), "A sin padre no forma ciclo")
	assert.False(t, inventory.TieneCiclo(padres, 0, ptr(1)), "una dependencia nueva bajo A no forma ciclo")
	assert.False(t, inventory.TieneCiclo(padres, 3, ptr(1)), "mover C bajo A no forma ciclo")
}

func TestTieneCiclo_PadreDeSiMismo(t *testing.T) {
	assert.True(t, inventory.TieneCiclo(cadenaABC(), 2, ptr(2)))
}

func TestTieneCiclo_CicloPreexistente(t *testing.T) {
	// 5 <-> 6 ya forman un ciclo en los datos; colgar 7 de 5 debe rechazarse.
	padres := inventory.Padres{5: ptr(6), 6: ptr(5), 7: nil}
	assert.True(t, inventory.TieneCiclo(padres, 7, ptr(5)))
}

func TestTieneCiclo_PadreDesconocido(t *testing.T) {
	assert.False(t, inventory.TieneCiclo(cadenaABC(), 1, ptr(99)))
}
