package spectrum

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/astrosnid/snid/internal/xerrors"
)

// textLoader reads whitespace- or comma-separated two-column (wave, flux)
// text, ignoring blank lines and lines starting with '#' or '%'.
type textLoader struct{}

func (l *textLoader) Load(path string) (*Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.New(xerrors.BadInput, "spectrum.textLoader.Load", err)
	}
	defer f.Close()

	var wave, flux []float64

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}

		fields := splitFields(line)
		if len(fields) < 2 {
			continue
		}

		w, err1 := strconv.ParseFloat(fields[0], 64)
		fl, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}

		wave = append(wave, w)
		flux = append(flux, fl)
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.New(xerrors.BadInput, "spectrum.textLoader.Load", err)
	}

	sw, sf, err := sanitize(wave, flux)
	if err != nil {
		return nil, err
	}
	return &Spectrum{Wave: sw, Flux: sf}, nil
}

// splitFields splits on whitespace and commas, the minimal delimiter
// sniffing the format warrants.
func splitFields(line string) []string {
	line = strings.ReplaceAll(line, ",", " ")
	return strings.Fields(line)
}
