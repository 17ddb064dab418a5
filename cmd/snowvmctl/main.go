// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command snowvmctl drives an in-process chainvm.Engine from a JSON
// fixture file of blocks and votes, printing one NDJSON decision record
// per accepted or rejected block. It exists to exercise the engine
// outside of a host process during development.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"github.com/luxfi/consensus/ids"
	"github.com/luxfi/consensus/snow/consensus/snowvm"
	"github.com/luxfi/consensus/snow/engine/chainvm"
	"github.com/luxfi/consensus/utils/logging"
)

// fixtureBlock and fixtureVote mirror the JSON shape a fixture file
// uses. IDs are base58 strings (ids.FromString), the same form the
// decision records print; an empty parent_id or voter_id means the
// all-zero ID.
type fixtureBlock struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id"`
	Height   uint64 `json:"height"`
}

type fixtureVote struct {
	VoterID      string `json:"voter_id"`
	BlockID      string `json:"block_id"`
	IsPreference bool   `json:"is_preference"`
}

type fixture struct {
	Blocks []fixtureBlock `json:"blocks"`
	Votes  []fixtureVote  `json:"votes"`
}

type decisionRecord struct {
	BlockID string `json:"block_id"`
	Status  string `json:"status"`
}

func main() {
	var (
		fixturePath = pflag.StringP("fixture", "f", "", "path to a JSON fixture of blocks and votes")
		kind        = pflag.StringP("kind", "k", "chain", "engine kind: chain, dag or pq")
		alphaPref   = pflag.Uint64("alpha-preference", 2, "preference threshold")
		alphaConf   = pflag.Uint64("alpha-confidence", 2, "confidence threshold")
		beta        = pflag.Uint64("beta", 4, "acceptance threshold")
		sampleSize  = pflag.Uint32P("k", "K", 5, "poll sample size")
	)
	pflag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "snowvmctl: --fixture is required")
		os.Exit(2)
	}

	engineKind, err := parseKind(*kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "snowvmctl:", err)
		os.Exit(2)
	}

	f, err := loadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "snowvmctl:", err)
		os.Exit(1)
	}

	log, err := logging.NewZapLogger("snowvmctl")
	if err != nil {
		fmt.Fprintln(os.Stderr, "snowvmctl:", err)
		os.Exit(1)
	}

	eng, err := chainvm.New(chainvm.Config{
		Namespace:  "snowvmctl",
		Log:        log,
		Registerer: prometheus.NewRegistry(),
		Parameters: snowvm.Parameters{
			K:                   *sampleSize,
			AlphaPreference:     *alphaPref,
			AlphaConfidence:     *alphaConf,
			Beta:                *beta,
			MaxOutstandingItems: 1024,
			EngineKind:          engineKind,
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "snowvmctl: creating engine:", err)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	eng.RegisterDecisionCallback(func(id ids.ID) {
		emit(out, id, "accepted")
	})

	if err := run(eng, f, out); err != nil {
		fmt.Fprintln(os.Stderr, "snowvmctl:", err)
		os.Exit(1)
	}
}

func run(eng *chainvm.Engine, f fixture, out *bufio.Writer) error {
	for _, b := range f.Blocks {
		block, err := toBlock(b)
		if err != nil {
			return fmt.Errorf("decoding block %q: %w", b.ID, err)
		}
		if _, err := eng.AddBlock(block); err != nil {
			return fmt.Errorf("adding block %q: %w", b.ID, err)
		}
	}

	for _, v := range f.Votes {
		vote, err := toVote(v)
		if err != nil {
			return fmt.Errorf("decoding vote for %q: %w", v.BlockID, err)
		}
		result, err := eng.ProcessVote(vote)
		if err != nil {
			return fmt.Errorf("processing vote for %q: %w", v.BlockID, err)
		}
		for _, rejected := range result.Rejected {
			emit(out, rejected, "rejected")
		}
	}
	return nil
}

func emit(out *bufio.Writer, id ids.ID, status string) {
	rec := decisionRecord{BlockID: id.String(), Status: status}
	line, err := json.Marshal(rec)
	if err != nil {
		return
	}
	out.Write(line)
	out.WriteByte('\n')
	out.Flush()
}

func loadFixture(path string) (fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixture{}, err
	}
	var f fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return fixture{}, err
	}
	return f, nil
}

func toBlock(b fixtureBlock) (snowvm.Block, error) {
	id, err := ids.FromString(b.ID)
	if err != nil {
		return snowvm.Block{}, err
	}
	parentID := ids.Empty
	if b.ParentID != "" {
		parentID, err = ids.FromString(b.ParentID)
		if err != nil {
			return snowvm.Block{}, err
		}
	}
	return snowvm.Block{ID: id, ParentID: parentID, Height: b.Height}, nil
}

func toVote(v fixtureVote) (snowvm.Vote, error) {
	blockID, err := ids.FromString(v.BlockID)
	if err != nil {
		return snowvm.Vote{}, err
	}
	voterID := ids.NodeID(ids.Empty)
	if v.VoterID != "" {
		raw, err := ids.FromString(v.VoterID)
		if err != nil {
			return snowvm.Vote{}, err
		}
		voterID = ids.NodeID(raw)
	}
	return snowvm.Vote{VoterID: voterID, BlockID: blockID, IsPreference: v.IsPreference}, nil
}

func parseKind(s string) (snowvm.EngineKind, error) {
	switch s {
	case "chain":
		return snowvm.Chain, nil
	case "dag":
		return snowvm.DAG, nil
	case "pq":
		return snowvm.PQ, nil
	default:
		return 0, fmt.Errorf("unknown engine kind %q", s)
	}
}
