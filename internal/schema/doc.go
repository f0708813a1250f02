// Package schema provides the declarative struct/field schema model,
// YAML parsing, and load-time validation.
//
// The schema is maintainer-authored, version-controlled YAML describing
// each struct as an ordered field list. Fields carry a domain type token
// and an optional minimum format version; field order is significant and
// fixes both generation order and columnar layout.
//
// Key types:
//   - Version: major/minor format version, totally ordered
//   - FieldDef: optional name, type token, declaration index, optional MinVersion
//   - StructDef: name + ordered fields; named iff every field has a name
//   - Schema: ordered struct list with by-name lookup
package schema
