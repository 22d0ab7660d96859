package config

import (
	"fmt"
	"log"
	"os"
)

// Exitf writes a formatted error message, prefixed with the standard logger
// prefix, to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprint(os.Stderr, log.Prefix())
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
