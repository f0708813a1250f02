// Package gen generates columnar conversion code for versioned struct
// schemas.
//
// For every struct declaration it produces one declaration group: a
// module-use statement plus an impl block with three functions:
//
//   - data_type: builds the struct-array layout descriptor
//   - into_struct_array: serializes an instance into a struct array
//   - from_struct_array: reconstructs an instance from a struct array
//
// The generated schema and serialize functions gate version-dependent
// fields with shared, nested guards (see GroupByVersion); deserialize
// indexes each field by its absolute declared position with an explicit
// per-field version check, because positional indexing has to line up
// with the synthetic "_dummy" element a fully-gated serialization
// produces.
package gen
