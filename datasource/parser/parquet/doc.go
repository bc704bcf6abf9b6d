// Package parquet loads Columns from Apache Parquet files using
// https://github.com/parquet-go/parquet-go. Only the column chunks for requested
// columns are read. Nested and repeated columns are not supported.
package parquet
