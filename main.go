package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/magooey2/Generate-Prime-Pair/internal/keygen"
	"github.com/magooey2/Generate-Prime-Pair/internal/params"
	"github.com/magooey2/Generate-Prime-Pair/internal/randeng"
	"github.com/magooey2/Generate-Prime-Pair/internal/report"
)

func main() {
	exportPath := flag.String("export", "", "Write the private key here in PEM form, plus <path>.pub in OpenSSH form")
	flag.Parse()

	if err := run(*exportPath); err != nil {
		fmt.Fprintf(os.Stderr, "   ### FAILURE: %v\n", err)
		os.Exit(1)
	}
}

// run sequences one generation pass. It is the only place that maps
// failures onto the process exit status.
func run(exportPath string) error {
	source := params.New(os.Stdin, os.Stdout)
	printer := &report.Printer{Out: os.Stdout, Err: os.Stderr}

	nlen, err := source.KeyLength()
	if err != nil {
		return err
	}
	seed, err := source.Seed()
	if err != nil {
		return err
	}
	fixedE, sampleE, err := source.Exponent()
	if err != nil {
		return err
	}

	rng := randeng.New(seed)
	printer.Seed(seed)

	gen := keygen.New(rng)
	e := fixedE
	if sampleE {
		if e, err = gen.RandomExponent(); err != nil {
			return err
		}
	}

	pair, err := gen.GenerateKeyPair(nlen, e)
	if err != nil {
		return err
	}
	printer.Result(pair)

	if exportPath != "" {
		if err := writeExport(pair, exportPath); err != nil {
			return err
		}
		fmt.Printf("  Key pair written to %s and %s.pub\n", exportPath, exportPath)
	}
	return nil
}

func writeExport(pair *keygen.KeyPair, path string) error {
	priv, pub, err := pair.Export()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, priv, 0o600); err != nil {
		return fmt.Errorf("writing private key: %w", err)
	}
	if err := os.WriteFile(path+".pub", pub, 0o644); err != nil {
		return fmt.Errorf("writing public key: %w", err)
	}
	return nil
}
