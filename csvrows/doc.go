// Package csvrows reads and writes CSV data as rows of maps or records.
//
// Reading treats the first record as a header unless WithoutHeader is given.
// Writing derives the header from WithColumns, from an ordered rename list
// given with WithColumnMap, or from the sorted union of the row keys. Output
// uses CRLF line endings by default.
package csvrows
