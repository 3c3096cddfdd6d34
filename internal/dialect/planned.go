// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package dialect

import (
	"github.com/dacolabs/schemalint/internal/naming"
	"github.com/dacolabs/schemalint/internal/report"
	"github.com/dacolabs/schemalint/internal/schema"
)

// planned is a dialect whose attribute table is known but whose rules are not
// implemented yet. The registry refuses to hand it out for validation.
type planned struct {
	info Info
}

func newPlanned(name string, types, modes, required, optional []string) *planned {
	return &planned{info: Info{
		Name:          name,
		Types:         sorted(types),
		Modes:         sorted(modes),
		RequiredAttrs: sorted(required),
		OptionalAttrs: sorted(optional),
	}}
}

func (p *planned) Name() string { return p.info.Name }

func (p *planned) Info() Info { return p.info }

func (p *planned) ValidateField(*schema.Field, []string, naming.Convention) []report.Violation {
	return nil
}

var sqlModes = []string{"NOT NULL", "NULL"}

var plannedDialects = []*planned{
	newPlanned("postgresql",
		[]string{
			"bigint", "bigserial", "bit", "boolean", "box", "bytea", "character",
			"character varying", "cidr", "circle", "date", "double precision",
			"inet", "integer", "interval", "json", "jsonb", "line", "lseg",
			"macaddr", "money", "numeric", "path", "pg_lsn", "point", "polygon",
			"real", "smallint", "smallserial", "serial", "text", "time",
			"timestamp", "tsquery", "tsvector", "txid_snapshot", "uuid", "xml",
		},
		sqlModes,
		[]string{"name", "type", "description"},
		[]string{"constraints", "default"},
	),
	newPlanned("hive",
		[]string{
			"tinyint", "smallint", "int", "bigint", "boolean", "float", "double",
			"string", "timestamp", "binary", "decimal", "char", "varchar", "date",
			"array", "map", "struct", "uniontype",
		},
		sqlModes,
		[]string{"name", "type", "description"},
		[]string{"comment", "partitioned"},
	),
	newPlanned("sqlserver",
		[]string{
			"bigint", "binary", "bit", "char", "date", "datetime", "datetime2",
			"datetimeoffset", "decimal", "float", "geography", "geometry",
			"hierarchyid", "image", "int", "money", "nchar", "ntext", "numeric",
			"nvarchar", "real", "smalldatetime", "smallint", "smallmoney",
			"sql_variant", "text", "time", "timestamp", "tinyint", "uniqueidentifier",
			"varbinary", "varchar", "xml",
		},
		sqlModes,
		[]string{"name", "type", "description"},
		[]string{"constraints", "default", "identity"},
	),
}
