// Command logsift filters, summarizes, and follows text log files.
package main

import (
	"os"

	"logsift/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
