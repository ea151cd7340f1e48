// seed_ubicaciones genera la migración que puebla provincias y municipios a partir de un
// CSV "provincia;municipio" (UTF-8 o ISO-8859-1).
//
// Uso: go run ./cmd/seed_ubicaciones [ruta/ubicaciones.csv]
// Por defecto busca ubicaciones.csv en el directorio actual.
// Escribe: migrations/000003_seed_ubicaciones.{up,down}.sql
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const migracion = "000003_seed_ubicaciones"

// ubicaciones provincia -> municipios, sin duplicados.
type ubicaciones map[string]map[string]struct{}

func main() {
	csvPath := "ubicaciones.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	data, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}

	u, err := leerCSV(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	dir := filepath.Join(findModuleRoot(), "migrations")
	up := filepath.Join(dir, migracion+".up.sql")
	down := filepath.Join(dir, migracion+".down.sql")
	if err := os.WriteFile(up, []byte(sqlUp(u)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", up, err)
		os.Exit(1)
	}
	if err := os.WriteFile(down, []byte(sqlDown(u)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", down, err)
		os.Exit(1)
	}

	municipios := 0
	for _, m := range u {
		municipios += len(m)
	}
	fmt.Printf("Generado %s: %d provincias, %d municipios\n", up, len(u), municipios)
}

// leerCSV acepta UTF-8 o ISO-8859-1; la primera fila se descarta si es la cabecera.
func leerCSV(data []byte) (ubicaciones, error) {
	var r io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	u := ubicaciones{}
	for fila := 1; ; fila++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		provincia := strings.TrimSpace(strings.TrimPrefix(rec[0], "\ufeff"))
		municipio := strings.TrimSpace(rec[1])
		if fila == 1 && strings.EqualFold(provincia, "provincia") {
			continue
		}
		if provincia == "" || municipio == "" {
			return nil, fmt.Errorf("fila %d: provincia y municipio son obligatorios", fila)
		}
		if u[provincia] == nil {
			u[provincia] = map[string]struct{}{}
		}
		u[provincia][municipio] = struct{}{}
	}
	if len(u) == 0 {
		return nil, errors.New("el archivo no contiene ubicaciones")
	}
	return u, nil
}

func (u ubicaciones) provincias() []string {
	out := make([]string, 0, len(u))
	for p := range u {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func sqlUp(u ubicaciones) string {
	var b strings.Builder
	b.WriteString("-- Provincias y municipios\n")
	b.WriteString("-- Generado por cmd/seed_ubicaciones\n\n")

	provincias := u.provincias()
	b.WriteString("INSERT INTO provincias (nombre) VALUES\n")
	for i, p := range provincias {
		sep := ","
		if i == len(provincias)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "    ('%s')%s\n", escapeSQL(p), sep)
	}
	b.WriteString("ON CONFLICT (nombre) DO NOTHING;\n\n")

	for _, p := range provincias {
		municipios := make([]string, 0, len(u[p]))
		for m := range u[p] {
			municipios = append(municipios, m)
		}
		sort.Strings(municipios)
		for _, m := range municipios {
			fmt.Fprintf(&b, "INSERT INTO municipios (id_provincia, nombre)\n")
			fmt.Fprintf(&b, "SELECT id, '%s' FROM provincias WHERE nombre = '%s'\n", escapeSQL(m), escapeSQL(p))
			b.WriteString("ON CONFLICT (id_provincia, nombre) DO NOTHING;\n")
		}
	}
	return b.String()
}

func sqlDown(u ubicaciones) string {
	provincias := u.provincias()
	quoted := make([]string, 0, len(provincias))
	for _, p := range provincias {
		quoted = append(quoted, "'"+escapeSQL(p)+"'")
	}
	// municipios se borran en cascada
	return fmt.Sprintf("DELETE FROM provincias WHERE nombre IN (%s);\n", strings.Join(quoted, ", "))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
