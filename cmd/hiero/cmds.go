package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/column"
	"github.com/go-sif/hiero/dataset"
	"github.com/go-sif/hiero/datasource/file"
	"github.com/go-sif/hiero/datasource/parser/dsv"
	"github.com/go-sif/hiero/datasource/parser/jsonl"
	"github.com/go-sif/hiero/datasource/parser/parquet"
	"github.com/go-sif/hiero/logging"
	"github.com/go-sif/hiero/result"
	"github.com/go-sif/hiero/schema"
	"github.com/go-sif/hiero/sketches"
	"github.com/spf13/cobra"
)

func fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

// Action represents the state of a single CLI command
type Action struct {
	cmd    *cobra.Command
	start  time.Time
	logger log.Logger
}

func newAction(cmd *cobra.Command) *Action {
	result := &Action{cmd: cmd, start: time.Now()}
	logger, err := logging.NewLogger(os.Stderr, result.getString("log-level"))
	if err != nil {
		fatal("%s", err)
	}
	result.logger = logger
	return result
}

func (a *Action) getBool(name string) bool {
	result, _ := a.cmd.Flags().GetBool(name)
	return result
}

func (a *Action) getInt(name string) int {
	result, _ := a.cmd.Flags().GetInt(name)
	return result
}

func (a *Action) getRune(name string) rune {
	s, _ := a.cmd.Flags().GetString(name)
	if len(s) == 0 {
		return 0
	}
	return []rune(s)[0]
}

func (a *Action) getString(name string) string {
	result, _ := a.cmd.Flags().GetString(name)
	return result
}

func (a *Action) getStringSlice(name string) []string {
	result, _ := a.cmd.Flags().GetStringSlice(name)
	return result
}

func (a *Action) options() *dataset.ExecutionOptions {
	return &dataset.ExecutionOptions{
		MaxParallelism: a.getInt("parallelism"),
		Logger:         a.logger,
	}
}

func (a *Action) input() *input {
	return &input{
		glob:        a.getString("file"),
		format:      a.getString("format"),
		schema:      a.getStringSlice("schema"),
		delimiter:   a.getRune("delimiter"),
		headerLines: a.getInt("header-lines"),
		nilValue:    a.getString("nil-value"),
		fragment:    a.getInt("fragment"),
		lazy:        a.getBool("lazy"),
		opts:        a.options(),
	}
}

// Exit prints the result as JSON, or reports the error, and terminates the process
func (a *Action) Exit(r interface{}, err error) {
	if err != nil {
		level.Error(a.logger).Log("msg", "command failed", "command", a.cmd.Name(), "err", err)
		fatal("%s", err)
	}
	out, err := result.ToJSON(r)
	if err != nil {
		fatal("%s", err)
	}
	fmt.Println(string(out))
	if path := a.getString("output"); path != "" {
		codec, err := result.ParseCodec(a.getString("codec"))
		if err != nil {
			fatal("%s", err)
		}
		encoded, err := result.EncodeWith(r, codec)
		if err != nil {
			fatal("%s", err)
		}
		if err = os.WriteFile(path, encoded, 0644); err != nil {
			fatal("%s", err)
		}
	}
	level.Info(a.logger).Log("msg", "done", "command", a.cmd.Name(), "elapsed", time.Since(a.start))
	os.Exit(0)
}

// input describes the files a command reads, and how to read them
type input struct {
	glob        string
	format      string
	schema      []string
	delimiter   rune
	headerLines int
	nilValue    string
	fragment    int
	lazy        bool
	opts        *dataset.ExecutionOptions
}

// parseSchema builds a Schema from column definitions of the form name:kind
func parseSchema(defs []string) (hiero.Schema, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("A schema is required for this format")
	}
	s := schema.CreateSchema()
	for _, def := range defs {
		idx := strings.LastIndex(def, ":")
		if idx < 1 {
			return nil, fmt.Errorf("Column definition %q must have the form name:kind", def)
		}
		kind, err := hiero.ParseKind(def[idx+1:])
		if err != nil {
			return nil, err
		}
		if _, err = s.CreateColumn(def[:idx], kind); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (in *input) opener() (file.Opener, error) {
	switch in.format {
	case "parquet":
		return parquet.Open, nil
	case "csv":
		s, err := parseSchema(in.schema)
		if err != nil {
			return nil, err
		}
		parser := dsv.CreateParser(&dsv.ParserConf{
			HeaderLines: in.headerLines,
			Delimiter:   in.delimiter,
			NilValue:    in.nilValue,
		})
		return dsv.Opener(s, parser), nil
	case "jsonl":
		s, err := parseSchema(in.schema)
		if err != nil {
			return nil, err
		}
		return jsonl.Opener(s, jsonl.CreateParser(&jsonl.ParserConf{HeaderLines: in.headerLines})), nil
	default:
		return nil, fmt.Errorf("Unknown format %q", in.format)
	}
}

func (in *input) files() (*dataset.ParallelDataset[hiero.FileLoader], error) {
	open, err := in.opener()
	if err != nil {
		return nil, err
	}
	return file.Find(in.glob, open, in.opts)
}

// tables loads one Table per file, optionally splitting each into fragments
func (in *input) tables(ctx context.Context) (dataset.Dataset[hiero.Table], error) {
	open, err := in.opener()
	if err != nil {
		return nil, err
	}
	tables, err := file.Load(ctx, in.glob, open, in.lazy, in.opts)
	if err != nil || in.fragment <= 0 {
		return tables, err
	}
	leaves := dataset.Leaves[hiero.Table](tables)
	children := make([]dataset.Dataset[hiero.Table], len(leaves))
	for i, t := range leaves {
		children[i], err = dataset.FromTable(t, in.fragment, in.opts)
		if err != nil {
			return nil, err
		}
	}
	return dataset.MakeParallel(children, in.opts)
}

// columnDescriptions is the result of the schema command
type columnDescriptions []hiero.ColumnDescription

func (c columnDescriptions) ToValue() interface{} {
	result := make([]interface{}, len(c))
	for i, desc := range c {
		result[i] = map[string]interface{}{"name": desc.Name, "kind": desc.Kind.String()}
	}
	return result
}

func describe(in *input) (interface{}, error) {
	loaders, err := in.files()
	if err != nil {
		return nil, err
	}
	s, err := dataset.Leaves[hiero.FileLoader](loaders)[0].Schema()
	if err != nil {
		return nil, err
	}
	return columnDescriptions(s.Descriptions()), nil
}

func fileSizes(ctx context.Context, in *input) (interface{}, error) {
	loaders, err := in.files()
	if err != nil {
		return nil, err
	}
	return dataset.Sketch[hiero.FileLoader, *sketches.FileInfo](ctx, loaders, sketches.FileSize())
}

func count(ctx context.Context, in *input) (interface{}, error) {
	tables, err := in.tables(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.Sketch[hiero.Table, *sketches.CountResult](ctx, tables, sketches.Count())
}

func sum(ctx context.Context, in *input, colName string) (interface{}, error) {
	tables, err := in.tables(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.Sketch[hiero.Table, *sketches.SumResult](ctx, tables, sketches.Sum(colName))
}

// makeBuckets chooses a bucketing function suitable for the kind of the named column
func makeBuckets(s hiero.Schema, colName string, boundaries []string) (hiero.Buckets, error) {
	desc, err := s.GetDescription(colName)
	if err != nil {
		return nil, err
	}
	if desc.Kind.IsString() {
		return sketches.NewStringBuckets(colName, boundaries...)
	}
	values := make([]float64, len(boundaries))
	for i, raw := range boundaries {
		if desc.Kind == hiero.DateKind {
			v, err := column.Parse(desc, raw)
			if err != nil {
				return nil, err
			}
			values[i] = float64(v.(time.Time).UnixMilli())
			continue
		}
		values[i], err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("Bucket boundary %q is not a number: %w", raw, err)
		}
	}
	return sketches.NewExplicitBuckets(colName, values...)
}

func histogram(ctx context.Context, in *input, colName string, boundaries []string, groupBy string, groups []string) (interface{}, error) {
	tables, err := in.tables(ctx)
	if err != nil {
		return nil, err
	}
	s := dataset.Leaves[hiero.Table](tables)[0].Schema()
	buckets, err := makeBuckets(s, colName, boundaries)
	if err != nil {
		return nil, err
	}
	if groupBy == "" {
		return dataset.Sketch[hiero.Table, *sketches.Groups[*sketches.CountResult]](ctx, tables, sketches.Histogram(buckets))
	}
	groupBuckets, err := makeBuckets(s, groupBy, groups)
	if err != nil {
		return nil, err
	}
	// groups form the outer level
	h := sketches.Histogram2D(buckets, groupBuckets)
	return dataset.Sketch[hiero.Table, *sketches.Groups[*sketches.Groups[*sketches.CountResult]]](ctx, tables, h)
}

func runSchema(cmd *cobra.Command, args []string) {
	action := newAction(cmd)
	action.Exit(describe(action.input()))
}

func runFiles(cmd *cobra.Command, args []string) {
	action := newAction(cmd)
	action.Exit(fileSizes(cmd.Context(), action.input()))
}

func runCount(cmd *cobra.Command, args []string) {
	action := newAction(cmd)
	action.Exit(count(cmd.Context(), action.input()))
}

func runSum(cmd *cobra.Command, args []string) {
	action := newAction(cmd)
	action.Exit(sum(cmd.Context(), action.input(), action.getString("column")))
}

func runHistogram(cmd *cobra.Command, args []string) {
	action := newAction(cmd)
	action.Exit(histogram(cmd.Context(), action.input(),
		action.getString("column"), action.getStringSlice("buckets"),
		action.getString("group-by"), action.getStringSlice("groups")))
}
