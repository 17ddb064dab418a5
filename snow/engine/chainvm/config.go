// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainvm

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/consensus/ids"
	"github.com/luxfi/consensus/snow"
	"github.com/luxfi/consensus/snow/consensus/snowvm"
	"github.com/luxfi/consensus/utils/logging"
)

// Config is the host-supplied configuration for a single engine
// instance: the consensus parameters plus the ambient fields (chain
// ID, logger, metrics namespace/registerer) every engine in this repo
// threads through a *snow.Context.
type Config struct {
	ChainID   ids.ID
	Namespace string
	Log       logging.Logger
	Registerer prometheus.Registerer

	Parameters snowvm.Parameters
}

// context builds the *snow.Context this config implies, falling back to
// sane defaults for any field left zero.
func (c Config) context() *snow.Context {
	ctx := snow.DefaultContext()
	if !c.ChainID.Empty() {
		ctx.ChainID = c.ChainID
	}
	if c.Namespace != "" {
		ctx.Namespace = c.Namespace
	}
	if c.Log != nil {
		ctx.Log = c.Log
	}
	if c.Registerer != nil {
		ctx.Metrics = c.Registerer
	}
	return ctx
}
