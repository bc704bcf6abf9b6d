// Package jsonl loads Columns from JSON Lines files. This parser uses https://github.com/tidwall/gjson to process data, and supports Schema column names formatted as gjson paths.
package jsonl
