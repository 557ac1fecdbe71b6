// Command cdagen generates sample NEHTA CDA documents, validates model XML
// documents and renders them as HL7 CDA.
package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/gofhir/cda/pkg/logger"
)

func main() {
	app := GetApp()
	if err := app.Run(os.Args); err != nil {
		if !errors.Is(err, errInvalid) {
			logger.Errorf("%s: %v", Name, err)
		}
		os.Exit(1)
	}
}
