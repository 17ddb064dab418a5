// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

// Errs is a simple error accumulator used to batch Prometheus
// registration errors. Once Err is non-nil, further Add calls are
// no-ops.
type Errs struct {
	Err error
}

// Add records the first non-nil error passed to it.
func (errs *Errs) Add(errList ...error) {
	if errs.Err != nil {
		return
	}
	for _, err := range errList {
		if err != nil {
			errs.Err = err
			return
		}
	}
}

// Errored returns true iff an error has been recorded.
func (errs *Errs) Errored() bool { return errs.Err != nil }
