package postgres

import _ "embed"

// Schema is the DDL of the tables NewDatasetSource reads from
//
//go:embed schema.sql
var Schema string
