package sif

import (
	"bufio"
	"io"
	"strings"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
)

// Write emits one tab separated line per relation: A, type, B, data
// sources, PubMed ids and pathway names, the last three joined with ";".
// Nothing is written for an empty slice.
func Write(w io.Writer, rels []Relation) error {
	if len(rels) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)
	for _, r := range rels {
		fields := []string{
			r.A,
			string(r.Type),
			r.B,
			strings.Join(r.DataSources, ";"),
			strings.Join(r.Publications, ";"),
			strings.Join(r.Pathways, ";"),
		}
		if _, err := bw.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
			return &domain.SerializationError{Cause: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &domain.SerializationError{Cause: err}
	}
	return nil
}
