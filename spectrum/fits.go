package spectrum

import (
	"math"
	"os"

	fits "github.com/astrogo/fitsio"

	"github.com/astrosnid/snid/internal/xerrors"
)

// fitsLoader reads a minimal single-extension FITS spectrum: the primary
// HDU is a 1-D flux array, and wavelength is reconstructed from the
// standard linear WCS header keywords (CRVAL1, CDELT1/CD1_1, CRPIX1),
// optionally log-linear when CTYPE1 says so. This covers the common case
// of a reduced, wavelength-calibrated 1-D spectrum; multi-extension FITS
// and WCS other than linear/log-linear in the dispersion axis are out of
// scope.
type fitsLoader struct{}

func (l *fitsLoader) Load(path string) (*Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.New(xerrors.BadInput, "spectrum.fitsLoader.Load", err)
	}
	defer f.Close()

	file, err := fits.Open(f)
	if err != nil {
		return nil, xerrors.New(xerrors.BadInput, "spectrum.fitsLoader.Load", err)
	}
	defer file.Close()

	if len(file.HDUs()) == 0 {
		return nil, xerrors.New(xerrors.BadInput, "spectrum.fitsLoader.Load", errNoHDUs())
	}

	hdu := file.HDU(0)
	img, ok := hdu.(fits.Image)
	if !ok {
		return nil, xerrors.New(xerrors.BadInput, "spectrum.fitsLoader.Load", errNotImageHDU())
	}

	flux := make([]float64, 0)
	if err := img.Read(&flux); err != nil {
		return nil, xerrors.New(xerrors.BadInput, "spectrum.fitsLoader.Load", err)
	}
	if len(flux) == 0 {
		return nil, xerrors.New(xerrors.EmptySpectrum, "spectrum.fitsLoader.Load", errNoFluxData())
	}

	hdr := img.Header()
	crval1 := headerFloat(hdr, "CRVAL1", 1.0)
	crpix1 := headerFloat(hdr, "CRPIX1", 1.0)
	cdelt1 := headerFloat(hdr, "CDELT1", headerFloat(hdr, "CD1_1", 1.0))
	logLinear := headerString(hdr, "CTYPE1") == "AWAV-LOG" || headerString(hdr, "DC-FLAG") == "1"

	wave := make([]float64, len(flux))
	for i := range wave {
		pix := float64(i+1) - crpix1
		if logLinear {
			wave[i] = math.Pow(10, crval1+pix*cdelt1)
		} else {
			wave[i] = crval1 + pix*cdelt1
		}
	}

	sw, sf, err := sanitize(wave, flux)
	if err != nil {
		return nil, err
	}
	return &Spectrum{Wave: sw, Flux: sf}, nil
}

func headerFloat(hdr *fits.Header, key string, def float64) float64 {
	card := hdr.Get(key)
	if card == nil {
		return def
	}
	if v, ok := card.Value.(float64); ok {
		return v
	}
	if v, ok := card.Value.(int64); ok {
		return float64(v)
	}
	return def
}

func headerString(hdr *fits.Header, key string) string {
	card := hdr.Get(key)
	if card == nil {
		return ""
	}
	if v, ok := card.Value.(string); ok {
		return v
	}
	return ""
}
