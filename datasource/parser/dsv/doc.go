// Package dsv loads Columns from delimiter-separated values files, such as CSV or TSV.
package dsv
