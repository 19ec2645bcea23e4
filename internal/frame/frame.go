// Package frame queries copy-number tables with an in-memory DuckDB engine.
// The table is a headerless BED-like file: chrom, start, end, name, CN.
package frame

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
)

// Frame wraps an in-memory DuckDB connection. Nothing is persisted; each
// query reads its file directly.
type Frame struct {
	db *sql.DB
}

// Open starts an in-memory DuckDB engine.
func Open() (*Frame, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	return &Frame{db: db}, nil
}

// Close closes the database connection.
func (f *Frame) Close() error {
	return f.db.Close()
}

// source renders a read_csv call over path with the fixed CN columns.
func source(path string) string {
	quoted := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	return `read_csv(` + quoted + `,
		delim = '\t',
		header = false,
		columns = {'chrom': 'VARCHAR', 'start': 'BIGINT', 'end': 'BIGINT', 'name': 'VARCHAR', 'cn': 'DOUBLE'})`
}

// CopyNumber returns the start positions and copy numbers of the segments
// on chrom, in start order. A chromosome with no segments yields empty
// slices and no error.
func (f *Frame) CopyNumber(path, chrom string) (x []int64, cn []float64, err error) {
	rows, err := f.db.Query(`SELECT start, cn FROM `+source(path)+`
		WHERE chrom = ?
		ORDER BY start`, chrom)
	if err != nil {
		return nil, nil, fmt.Errorf("query copy number: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var start int64
		var value float64
		if err := rows.Scan(&start, &value); err != nil {
			return nil, nil, fmt.Errorf("scan copy number: %w", err)
		}
		x = append(x, start)
		cn = append(cn, value)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("query copy number: %w", err)
	}
	return x, cn, nil
}

// Chroms returns the distinct chromosome names in a CN table, sorted.
func (f *Frame) Chroms(path string) ([]string, error) {
	rows, err := f.db.Query(`SELECT DISTINCT chrom FROM ` + source(path) + ` ORDER BY chrom`)
	if err != nil {
		return nil, fmt.Errorf("query chromosomes: %w", err)
	}
	defer rows.Close()

	var chroms []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan chromosome: %w", err)
		}
		chroms = append(chroms, c)
	}
	return chroms, rows.Err()
}

// Summary describes the CN segments of one chromosome.
type Summary struct {
	Segments int
	MinCN    float64
	MaxCN    float64
	States   int // distinct CN values
}

// Summarize aggregates the CN segments on chrom. The number of distinct
// states is what an oscillating copy-number pattern is judged by.
func (f *Frame) Summarize(path, chrom string) (Summary, error) {
	var s Summary
	var lo, hi sql.NullFloat64
	err := f.db.QueryRow(`SELECT count(*), min(cn), max(cn), count(DISTINCT cn) FROM `+source(path)+`
		WHERE chrom = ?`, chrom).Scan(&s.Segments, &lo, &hi, &s.States)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize copy number: %w", err)
	}
	s.MinCN, s.MaxCN = lo.Float64, hi.Float64
	return s, nil
}
