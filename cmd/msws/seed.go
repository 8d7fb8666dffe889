package main

import (
	"fmt"

	"github.com/lox/msws"
)

// SeedCmd derives seeds the way gen does for its --seed flag.
type SeedCmd struct {
	Inputs []uint64 `arg:"" name:"n" help:"Integers to derive seeds from"`
}

func (cmd *SeedCmd) Run(g *Globals) error {
	for _, n := range cmd.Inputs {
		fmt.Fprintf(g.stdout(), "%d\t0x%016x\n", n, msws.Seed(n))
	}
	return nil
}
