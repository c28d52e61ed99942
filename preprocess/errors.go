package preprocess

import "fmt"

func errNoActiveRegion() error {
	return fmt.Errorf("no nonzero samples after rebinning onto the shared grid")
}
