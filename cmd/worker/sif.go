package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/service"
)

// runSIF writes the binary relations of a BioPAX file to outPath, or to
// stdout when outPath is "-" or missing.
func runSIF(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: sif <owlPath> [outPath] [rule,rule...]")
	}
	var rules []string
	if len(args) > 2 {
		for _, r := range strings.Split(args[2], ",") {
			if r = strings.TrimSpace(r); r != "" {
				rules = append(rules, r)
			}
		}
	}

	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	ctx := context.Background()
	m, err := service.Read(ctx, in)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if len(args) > 1 && args[1] != "-" {
		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	n, err := service.ConvertToSIF(ctx, m, rules, w)
	if err != nil {
		return err
	}
	logger.Info("sif written", "relations", n)
	return nil
}
