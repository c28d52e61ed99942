package spectrum

import "fmt"

func errLengthMismatch(nwave, nflux int) error {
	return fmt.Errorf("wave and flux length mismatch: %d vs %d", nwave, nflux)
}

func errTooFewSamples(n int) error {
	return fmt.Errorf("only %d usable samples after trimming, need at least %d", n, minSamples)
}

func errNoHeaderMatch(header []string) error {
	return fmt.Errorf("no wave/flux column found in header %v", header)
}

func errNoHDUs() error {
	return fmt.Errorf("fits file has no HDUs")
}

func errNotImageHDU() error {
	return fmt.Errorf("primary HDU is not an image")
}

func errNoFluxData() error {
	return fmt.Errorf("fits image HDU contains no flux samples")
}
