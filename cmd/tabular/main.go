package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/tabular/pkg/frame"
	"github.com/ajitpratap0/tabular/pkg/logger"
)

var version = "0.1.0"

func main() {
	var logLevel string

	root := &cobra.Command{
		Use:   "tabular",
		Short: "Tabular - inspection utilities for in-memory tables",
		Long: `Tabular builds an in-memory columnar table from JSON records on stdin
(one object per line) and runs convenience operations over it: schema
description, text-column detection, and value-frequency summaries.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{
				Level:    logLevel,
				Encoding: "console",
			})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Tabular v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "describe",
		Short: "Describe the table built from stdin records",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readTable(os.Stdin)
			if err != nil {
				return err
			}
			fmt.Printf("rows: %d\n", t.RowCount())
			fmt.Printf("columns: %d\n", t.ColumnCount())
			for _, name := range t.ColumnNames() {
				col, err := t.Column(name)
				if err != nil {
					return err
				}
				fmt.Printf("  %s\t%s\n", name, col.Type())
			}
			fmt.Printf("text columns: %v\n", t.TextColumnNames())
			return nil
		},
	})

	var maxRows int
	var columns []string
	countsCmd := &cobra.Command{
		Use:   "counts",
		Short: "Summarize value frequencies for stdin records",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readTable(os.Stdin)
			if err != nil {
				return err
			}
			counts, err := t.ValueCounts(maxRows, columns...)
			if err != nil {
				return err
			}
			fmt.Print(counts.String())
			return nil
		},
	}
	countsCmd.Flags().IntVar(&maxRows, "max-rows", frame.DefaultValueCountsLength, "maximum output rows per column")
	countsCmd.Flags().StringSliceVar(&columns, "columns", nil, "columns to summarize (default all)")
	root.AddCommand(countsCmd)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// readTable decodes one JSON object per input line and assembles the rows
// into a table. The schema is inferred from the first record (columns
// sorted by name); later records may omit fields, which become missing
// entries.
func readTable(r io.Reader) (*frame.Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows []map[string]interface{}
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		var row map[string]interface{}
		if err := gojson.Unmarshal(data, &row); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no records on stdin")
	}

	logger.Debug("read records", zap.Int("count", len(rows)))
	return frame.FromMaps(inferSchema(rows[0]), rows)
}

// inferSchema maps the first record's JSON value types to column types.
// JSON numbers decode as float64, so numeric columns are floats.
func inferSchema(row map[string]interface{}) *frame.Schema {
	names := make([]string, 0, len(row))
	for name := range row {
		names = append(names, name)
	}
	sort.Strings(names)

	schema := &frame.Schema{Fields: make([]frame.Field, 0, len(names))}
	for _, name := range names {
		typ := frame.TypeString
		switch row[name].(type) {
		case float64:
			typ = frame.TypeFloat
		case bool:
			typ = frame.TypeBool
		}
		schema.Fields = append(schema.Fields, frame.Field{
			Name:     name,
			Type:     typ,
			Nullable: true,
		})
	}
	return schema
}
