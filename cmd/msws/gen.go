package main

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/lox/msws"
	"github.com/lox/msws/internal/fileutil"
)

// GenCmd prints outputs of one stream, optionally resuming from a checkpoint.
type GenCmd struct {
	Seed       string `help:"Integer passed through the seed deriver (overrides config)"`
	RawSeed    string `name:"raw-seed" help:"Literal odd seed used as-is, hex with 0x prefix or decimal"`
	Count      int    `short:"n" help:"Number of outputs to print (overrides config)"`
	Format     string `short:"f" help:"Output format: hex, dec or bin (overrides config)"`
	Checkpoint string `type:"path" help:"Resume from this state file if present and save the final state to it"`
}

func (cmd *GenCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if cmd.Seed != "" {
		seed, err := strconv.ParseUint(cmd.Seed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid --seed: %w", err)
		}
		cfg.Generator.Seed = seed
		cfg.Generator.RawSeed = ""
	}
	if cmd.RawSeed != "" {
		cfg.Generator.RawSeed = cmd.RawSeed
	}
	if cmd.Count != 0 {
		cfg.Generator.Count = cmd.Count
	}
	if cmd.Format != "" {
		cfg.Generator.Format = cmd.Format
	}

	logger, err := g.finish(cfg)
	if err != nil {
		return err
	}

	seed, err := cfg.InitialSeed()
	if err != nil {
		return err
	}
	r, err := msws.New(seed)
	if err != nil {
		return err
	}

	if cmd.Checkpoint != "" {
		var st msws.State
		ok, err := fileutil.ReadJSON(cmd.Checkpoint, &st)
		if err != nil {
			return fmt.Errorf("load checkpoint: %w", err)
		}
		if ok {
			if r, err = msws.Restore(st); err != nil {
				return fmt.Errorf("load checkpoint: %w", err)
			}
			if st.S != seed {
				logger.Warn("Checkpoint seed differs from configured seed, using checkpoint",
					"checkpoint", fmt.Sprintf("%#x", st.S),
					"configured", fmt.Sprintf("%#x", seed))
			}
			logger.Info("Resuming from checkpoint", "path", cmd.Checkpoint)
		}
	}

	logger.Debug("Generating", "seed", fmt.Sprintf("%#x", r.Seed()), "count", cfg.Generator.Count)

	w := bufio.NewWriter(g.stdout())
	for i := 0; i < cfg.Generator.Count; i++ {
		fmt.Fprintln(w, formatOutput(r.Uint32(), cfg.Generator.Format))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if cmd.Checkpoint != "" {
		if err := fileutil.WriteJSONAtomic(cmd.Checkpoint, r.State()); err != nil {
			return fmt.Errorf("save checkpoint: %w", err)
		}
		logger.Debug("Checkpoint saved", "path", cmd.Checkpoint)
	}
	return nil
}

func formatOutput(v uint32, format string) string {
	switch format {
	case "dec":
		return strconv.FormatUint(uint64(v), 10)
	case "bin":
		return fmt.Sprintf("%032b", v)
	default:
		return fmt.Sprintf("%08x", v)
	}
}
