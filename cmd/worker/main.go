package main

import (
	"fmt"
	"os"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger/console"
)

const usage = `usage:
  worker convert <owlPath> [outDir] [name]
  worker sif <owlPath> [outPath] [rule,rule...]`

func main() {
	logger.Init(console.New(console.Params{Level: os.Getenv("LOG_LEVEL"), Prefix: "worker"}))

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "convert":
		err = runConvert(os.Args[2:])
	case "sif":
		err = runSIF(os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Fatal("worker failed", "command", os.Args[1], "error", err)
	}
}
