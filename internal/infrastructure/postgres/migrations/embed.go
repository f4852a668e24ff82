// Package migrations contiene el esquema SQL versionado, embebido en el binario.
package migrations

import "embed"

// FS archivos NNNNNN_nombre.up.sql / .down.sql para golang-migrate.
//
//go:embed *.sql
var FS embed.FS
