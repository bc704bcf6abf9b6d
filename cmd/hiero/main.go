// Command hiero computes sketches, such as histograms, over files of tabular data.
package main

import (
	"github.com/spf13/cobra"
)

func addCommands(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the schema of the first matching file",
		Args:  cobra.NoArgs,
		Run:   runSchema}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "files",
		Short: "Count the matching files and their total size",
		Args:  cobra.NoArgs,
		Run:   runFiles}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "count",
		Short: "Count the rows in the matching files",
		Args:  cobra.NoArgs,
		Run:   runCount}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "sum",
		Short: "Sum a numeric column",
		Args:  cobra.NoArgs,
		Run:   runSum}
	cmd.Flags().String("column", "", "column to sum")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "histogram",
		Short: "Compute a histogram of a column, optionally grouped by a second column",
		Args:  cobra.NoArgs,
		Run:   runHistogram}
	cmd.Flags().String("column", "", "column to bucket")
	cmd.Flags().StringSlice("buckets", nil, "bucket boundaries, in ascending order")
	cmd.Flags().String("group-by", "", "column to group by (optional)")
	cmd.Flags().StringSlice("groups", nil, "group boundaries, in ascending order")
	root.AddCommand(cmd)
}

func main() {
	var root = &cobra.Command{Use: "hiero"}
	root.PersistentFlags().String("file", "", "glob matching the input files")
	root.PersistentFlags().String("format", "csv", "input format, 'csv', 'jsonl' or 'parquet'")
	root.PersistentFlags().StringSlice("schema", nil, "column definitions as name:kind, required for csv and jsonl")
	root.PersistentFlags().String("delimiter", ",", "csv field delimiter")
	root.PersistentFlags().Int("header-lines", 0, "number of leading lines to skip in each file")
	root.PersistentFlags().String("nil-value", "", "csv field value representing a missing value")
	root.PersistentFlags().Int("fragment", 0, "maximum rows per partition, 0 for one partition per file")
	root.PersistentFlags().Bool("lazy", false, "load columns on first use")
	root.PersistentFlags().Int("parallelism", 0, "maximum concurrent partition operations (default: number of CPUs)")
	root.PersistentFlags().String("log-level", "info", "log level")
	root.PersistentFlags().String("output", "", "also write the compressed protobuf result to this path")
	root.PersistentFlags().String("codec", "lz4", "compression for --output, 'lz4' or 'zstd'")
	addCommands(root)
	root.Execute()
}
