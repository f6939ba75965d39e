// Command verify-cli runs C5 offline against a receipt read from a file
// or stdin. It talks directly to pkg/verifier and never touches a
// network: the HTTP wrapper around the verifier, and a CLI that posts to
// that wrapper instead, are explicitly out of scope for this module.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/abrarahmad1510/ChainAudit-LLMs/pkg/verifier"
)

func main() {
	os.Exit(Run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// Run is the verify-cli entrypoint; args mirrors os.Args.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("verify-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("receipt", "", "path to a receipt JSON file (default: read from stdin)")
	asJSON := fs.Bool("json", false, "print the full check report as JSON instead of a summary")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	var data []byte
	var err error
	if *path == "" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(*path)
	}
	if err != nil {
		fmt.Fprintf(stderr, "verify-cli: read receipt: %v\n", err)
		return 1
	}

	outcome, report, err := verifier.Verify(data)
	if err != nil {
		fmt.Fprintf(stderr, "verify-cli: malformed receipt: %v\n", err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(stderr, "verify-cli: encode report: %v\n", err)
			return 1
		}
	} else {
		fmt.Fprintf(stdout, "outcome: %s\n", outcome)
		for _, c := range report.Checks {
			status := "pass"
			if !c.Pass {
				status = "fail"
			}
			if c.Reason != "" {
				fmt.Fprintf(stdout, "  %-20s %s (%s)\n", c.Name, status, c.Reason)
			} else {
				fmt.Fprintf(stdout, "  %-20s %s\n", c.Name, status)
			}
		}
	}

	if outcome != verifier.Valid {
		return 1
	}
	return 0
}
