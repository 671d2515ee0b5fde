// Command mietable prints angular scattering tables as CSV, for loading
// into a Monte Carlo transport engine or for plotting.
//
// Models come either from a TOML config file (-config) or from flags for
// the common single-sphere case:
//
//	mietable -x 10 -index-re 1.5 -index-im 0.01 -angles 1000 -out table.csv
//	mietable -config beads.toml
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/modulim/miescatter"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML model description (overrides the sphere flags)")
		sizeParam  = flag.Float64("x", 0, "Sphere size parameter 2*pi*r*n_med/lambda")
		indexRe    = flag.Float64("index-re", defaultIndexRe, "Relative refractive index, real part")
		indexIm    = flag.Float64("index-im", 0, "Relative refractive index, imaginary part")
		angles     = flag.Int("angles", miescatter.NAngles, "Number of scattering-angle rows")
		output     = flag.String("out", "-", "Output CSV path, - for stdout")
	)
	flag.Parse()

	table, err := buildTable(*configPath, *sizeParam, *indexRe, *indexIm, *angles)
	if err != nil {
		log.Fatalf("mietable: %v", err)
	}

	if *output == "" || *output == "-" {
		err = writeCSV(os.Stdout, table)
	} else {
		err = writeTableFile(*output, table)
	}
	if err != nil {
		log.Fatalf("mietable: %v", err)
	}

	fmt.Fprintf(os.Stderr, "Qsca = %.6g  g = %.6g  rows = %d\n", table.Qsca, table.G, table.Len())
}

// buildTable resolves the model from the config file or the sphere flags.
func buildTable(configPath string, x, indexRe, indexIm float64, angles int) (*miescatter.Table, error) {
	if configPath != "" {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		return cfg.Table()
	}

	spec := &miescatter.SphereSpec{
		SizeParameter:   x,
		RefractiveIndex: complex(indexRe, indexIm),
	}
	return miescatter.Compute(spec, miescatter.CosineGrid(angles))
}

// writeTableFile writes the CSV to a file. The close error is checked: a
// write failure can surface only at close once the csv writer has flushed.
func writeTableFile(path string, table *miescatter.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeCSV(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeCSV emits a header row and one row per sampled angle.
func writeCSV(f *os.File, table *miescatter.Table) error {
	w := csv.NewWriter(f)
	if err := w.Write([]string{"mu", "s11", "s12", "s33", "s43"}); err != nil {
		return err
	}
	row := make([]string, csvColumns)
	for k := range table.Mu {
		row[0] = formatValue(table.Mu[k])
		row[1] = formatValue(table.S11[k])
		row[2] = formatValue(table.S12[k])
		row[3] = formatValue(table.S33[k])
		row[4] = formatValue(table.S43[k])
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
