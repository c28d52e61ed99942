package spectrum

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/astrosnid/snid/internal/xerrors"
)

// csvLoader reads a header-driven CSV, selecting the wave/flux columns by
// name (case-insensitive, a few common aliases) rather than assuming column
// order.
type csvLoader struct{}

var waveAliases = []string{"wave", "wavelength", "lambda", "lam"}
var fluxAliases = []string{"flux", "intensity", "counts"}

func (l *csvLoader) Load(path string) (*Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.New(xerrors.BadInput, "spectrum.csvLoader.Load", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, xerrors.New(xerrors.BadInput, "spectrum.csvLoader.Load", err)
	}

	waveCol := findColumn(header, waveAliases)
	fluxCol := findColumn(header, fluxAliases)
	if waveCol < 0 || fluxCol < 0 {
		return nil, xerrors.New(xerrors.BadInput, "spectrum.csvLoader.Load", errNoHeaderMatch(header))
	}

	var wave, flux []float64
	for {
		row, err := r.Read()
		if err != nil {
			break
		}
		if waveCol >= len(row) || fluxCol >= len(row) {
			continue
		}
		w, err1 := strconv.ParseFloat(strings.TrimSpace(row[waveCol]), 64)
		fl, err2 := strconv.ParseFloat(strings.TrimSpace(row[fluxCol]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		wave = append(wave, w)
		flux = append(flux, fl)
	}

	sw, sf, err := sanitize(wave, flux)
	if err != nil {
		return nil, err
	}
	return &Spectrum{Wave: sw, Flux: sf}, nil
}

func findColumn(header []string, aliases []string) int {
	for i, h := range header {
		hl := strings.ToLower(strings.TrimSpace(h))
		for _, a := range aliases {
			if hl == a {
				return i
			}
		}
	}
	return -1
}
