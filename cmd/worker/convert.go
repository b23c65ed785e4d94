package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/graph/export"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/service"
)

// runConvert builds the default network of a BioPAX file and writes it as
// network.json and network.yaml plus a network.dot rendering into outDir.
func runConvert(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: convert <owlPath> [outDir] [name]")
	}
	out := "out"
	if len(args) > 1 {
		out = args[1]
	}
	name := ""
	if len(args) > 2 {
		name = args[2]
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := service.Run(context.Background(), f, service.Options{Name: name, Mode: service.ModeDefault})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(out, 0755); err != nil {
		return err
	}

	if err := export.WriteJSON(filepath.Join(out, "network.json"), res); err != nil {
		return err
	}
	if err := export.WriteYAML(filepath.Join(out, "network.yaml"), res); err != nil {
		return err
	}
	if err := writeDOT(res, filepath.Join(out, "network.dot")); err != nil {
		return err
	}

	logger.Info("network written", "dir", out, "name", res.Network.Name(),
		"nodes", res.Stats.Nodes, "edges", res.Stats.Edges, "dropped", res.Stats.Dropped)
	return nil
}
