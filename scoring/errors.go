package scoring

import "fmt"

func errNoEligibleTemplates() error {
	return fmt.Errorf("no templates in library survive the configured filters")
}
