package schema

import _ "embed"

// Desserts contém o DDL idempotente da tabela desserts.
//
//go:embed desserts.sql
var Desserts string
