package main

import (
	"os"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/graph/export"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/ingest/mapper"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/service"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/style"
)

func writeDOT(res *service.Result, outPath string) error {
	typ, _ := res.Network.Row.GetString(mapper.AttrNetworkType)
	st, err := style.NewCache().ForNetworkType(typ)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(export.ToDOT(res.Network, st)), 0o644)
}
