package inventory

// Padres mapa id de dependencia -> id de su padre (nil si es raíz).
type Padres map[int64]*int64

// TieneCiclo indica si asignar padrePropuesto como padre de id formaría un ciclo.
// Para una dependencia nueva se pasa id = 0. Un padre nil nunca forma ciclo.
//
// Recorre hacia arriba desde padrePropuesto: si llega a id, o si revisita un nodo
// (ciclo ya existente en los datos), hay ciclo; si llega a una raíz, no.
func TieneCiclo(padres Padres, id int64, padrePropuesto *int64) bool {
	if padrePropuesto == nil {
		return false
	}
	if *padrePropuesto == id {
		return true
	}
	visitados := make(map[int64]struct{})
	actual := *padrePropuesto
	for {
		if _, ok := visitados[actual]; ok {
			return true
		}
		visitados[actual] = struct{}{}
		padre, ok := padres[actual]
		if !ok || padre == nil {
			return false
		}
		if *padre == id {
			return true
		}
		actual = *padre
	}
}
