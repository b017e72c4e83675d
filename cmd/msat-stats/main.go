// cmd/msat-stats/main.go
package main

import (
	"os"

	"msat/internal/statsapp"
)

func main() {
	os.Exit(statsapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
