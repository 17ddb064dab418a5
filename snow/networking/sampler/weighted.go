// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sampler draws the K-sized, weighted-without-replacement
// validator samples a Snow* poll round needs each query. It is built on
// gonum's sampling primitives rather than a hand-rolled weighted
// reservoir, the way the rest of this repo prefers an ecosystem library
// over a bespoke algorithm once one exists for the job.
package sampler

import (
	"errors"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/luxfi/consensus/ids"
	"github.com/luxfi/consensus/snow/validators"
)

var (
	errEmptySet  = errors.New("sampler: validator set is empty")
	errSampleTooLarge = errors.New("sampler: k exceeds validator set size")
)

// Sample draws k distinct validators from vs without replacement,
// weighted by stake, using gonum's weighted-without-replacement sampler.
func Sample(vs *validators.Set, k int) ([]ids.NodeID, error) {
	if vs.Len() == 0 {
		return nil, errEmptySet
	}
	if k > vs.Len() {
		return nil, errSampleTooLarge
	}

	ids_ := vs.List()
	weights := vs.Weights()

	ws := sampleuv.NewWeightedWithoutReplacement(weights, nil)
	out := make([]ids.NodeID, 0, k)
	for len(out) < k {
		idx, ok := ws.Take()
		if !ok {
			break
		}
		out = append(out, ids_[idx])
	}
	return out, nil
}
