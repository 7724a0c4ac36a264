// Package arrowframe adapts Apache Arrow schemas, records and tables to valido.DataFrame,
// and opens Arrow IPC and Parquet files as DataFrames. Only the schema of a file is read.
//
// Arrow types are reported with Spark-style dtype names (utf8 as string, int32 as int,
// int64 as bigint, float64 as double, ...), so that the same contract validates DataFrames
// from either engine. Types without a Spark equivalent keep Arrow's own name.
package arrowframe
