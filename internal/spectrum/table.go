// Package spectrum loads vibrational-spectrum tables produced by the
// external molecular-dynamics driver's analysis tool.
package spectrum

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// HartreeToCm converts angular frequencies in atomic units to
// wavenumbers (cm^-1).
const HartreeToCm = 219474.0

// Table is a loaded spectrum: frequency, intensity and an optional error
// estimate per row. Err is nil when the source had two columns.
type Table struct {
	Freq   []float64
	Intens []float64
	Err    []float64
}

func (t *Table) Len() int { return len(t.Freq) }

// ToWavenumbers returns a copy with frequencies rescaled from atomic
// units to cm^-1.
func (t *Table) ToWavenumbers() *Table {
	out := &Table{
		Freq:   make([]float64, len(t.Freq)),
		Intens: append([]float64(nil), t.Intens...),
	}
	if t.Err != nil {
		out.Err = append([]float64(nil), t.Err...)
	}
	for i, f := range t.Freq {
		out.Freq[i] = f * HartreeToCm
	}
	return out
}

// Load reads a whitespace-delimited table of (frequency, intensity
// [, error]) rows from path. Blank lines and lines starting with # are
// skipped; any other malformed line is an error.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func Read(r io.Reader) (*Table, error) {
	t := &Table{}
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("spectrum: line %d: expected 2 or 3 columns, got %d", line, len(fields))
		}

		vals := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("spectrum: line %d: %w", line, err)
			}
			vals[i] = v
		}

		t.Freq = append(t.Freq, vals[0])
		t.Intens = append(t.Intens, vals[1])
		if len(vals) == 3 {
			t.Err = append(t.Err, vals[2])
		} else if t.Err != nil {
			return nil, fmt.Errorf("spectrum: line %d: inconsistent column count", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(t.Err) > 0 && len(t.Err) != len(t.Freq) {
		return nil, fmt.Errorf("spectrum: inconsistent error column (%d of %d rows)", len(t.Err), len(t.Freq))
	}
	return t, nil
}
