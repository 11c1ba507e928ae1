/*package pair evaluates tabulated pair potentials.

Tables are read from text files in which every line before the one starting
with the token "N" is a header, and every line after it is a row of the form

    index distance energy force

Distances must be strictly increasing. Energies and forces are linearly
interpolated between rows and are exactly zero for any separation outside the
tabulated range, so a table with a finite largest distance acts as a cutoff.
*/
package pair

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/phil-mansfield/mcase/math/interpolate"
)

const (
	// marker is the first token of the line which precedes the table rows.
	marker = "N"
	// rowColumns is the minimum number of columns in a table row.
	rowColumns = 4
)

// Potential is a central pair potential. Force is the magnitude of the force
// along the separation vector, positive for repulsion.
type Potential interface {
	Energy(r float64) float64
	Force(r float64) float64
}

var _ Potential = &Table{}

// Table is a tabulated pair potential. It is safe for concurrent use once
// constructed.
type Table struct {
	Distances, Energies, Forces []float64

	energy, force *interpolate.Bounded
}

// NewTable creates a table from its columns. rs must be strictly increasing
// and contain at least two points.
func NewTable(rs, energies, forces []float64) (*Table, error) {
	if len(rs) != len(energies) || len(rs) != len(forces) {
		return nil, fmt.Errorf(
			"Table columns have lengths %d, %d, and %d.",
			len(rs), len(energies), len(forces),
		)
	} else if len(rs) < 2 {
		return nil, fmt.Errorf(
			"Table has %d rows, but at least 2 are required.", len(rs),
		)
	}

	for i := range rs {
		if math.IsNaN(rs[i]) || math.IsInf(rs[i], 0) {
			return nil, fmt.Errorf("Table row %d has distance %g.", i, rs[i])
		}
	}
	for i := 1; i < len(rs); i++ {
		if rs[i] <= rs[i-1] {
			return nil, fmt.Errorf(
				"Table distances are not strictly increasing: row %d has " +
					"distance %g and row %d has distance %g.",
				i-1, rs[i-1], i, rs[i],
			)
		}
	}

	return &Table{
		Distances: rs, Energies: energies, Forces: forces,
		energy: interpolate.NewBoundedLinear(rs, energies),
		force:  interpolate.NewBoundedLinear(rs, forces),
	}, nil
}

// ReadTableFile reads a pair table from the file fname.
func ReadTableFile(fname string) (*Table, error) {
	f, err := os.Open(fname)
	if err != nil { return nil, err }
	defer f.Close()

	tab, err := ReadTable(f)
	if err != nil { return nil, fmt.Errorf("%s: %w", fname, err) }

	logrus.Debugf(
		"Read %d rows from pair table %s, r in [%g, %g].",
		len(tab.Distances), fname, tab.Min(), tab.Max(),
	)
	return tab, nil
}

// ReadTable reads a pair table from r. Any malformed row is an error.
func ReadTable(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)

	line := 0
	found := false
	for scanner.Scan() {
		line++
		words := strings.Fields(scanner.Text())
		if len(words) > 0 && words[0] == marker {
			found = true
			break
		}
	}
	if err := scanner.Err(); err != nil { return nil, err }
	if !found {
		return nil, fmt.Errorf("No line starting with '%s' in table.", marker)
	}

	var rs, energies, forces []float64
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' { continue }

		words := strings.Fields(text)
		if len(words) < rowColumns {
			return nil, fmt.Errorf(
				"Line %d of table has %d columns, but at least %d are " +
					"required: '%s'.", line, len(words), rowColumns, text,
			)
		}

		var row [rowColumns]float64
		for i := range row {
			x, err := strconv.ParseFloat(words[i], 64)
			if err != nil {
				return nil, fmt.Errorf(
					"Could not parse column %d of line %d of table: %w",
					i, line, err,
				)
			}
			row[i] = x
		}

		rs = append(rs, row[1])
		energies = append(energies, row[2])
		forces = append(forces, row[3])
	}
	if err := scanner.Err(); err != nil { return nil, err }

	return NewTable(rs, energies, forces)
}

// Energy returns the pair energy at separation r, or zero if r is outside the
// table.
func (tab *Table) Energy(r float64) float64 { return tab.energy.Eval(r) }

// Force returns the force magnitude at separation r, or zero if r is outside
// the table.
func (tab *Table) Force(r float64) float64 { return tab.force.Eval(r) }

// Min returns the smallest tabulated distance.
func (tab *Table) Min() float64 { return tab.Distances[0] }

// Max returns the largest tabulated distance.
func (tab *Table) Max() float64 { return tab.Distances[len(tab.Distances)-1] }
