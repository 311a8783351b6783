package query

import "github.com/mleoca/ucn/internal/diffimpact"

// DiffImpactOptions is `diffImpact`'s option bag.
type DiffImpactOptions struct {
	Base   string
	Staged bool
}

// DiffImpact implements `diffImpact({base?, staged?})` by delegating to
// internal/diffimpact's git-backed implementation.
func (e *Engine) DiffImpact(opts DiffImpactOptions) (*diffimpact.Result, error) {
	return diffimpact.Run(e.Idx, diffimpact.Options{Base: opts.Base, Staged: opts.Staged})
}
