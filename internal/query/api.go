package query

import (
	"github.com/mleoca/ucn/internal/discover"
	"github.com/mleoca/ucn/internal/model"
)

// ApiOptions is `api`'s option bag.
type ApiOptions struct {
	IncludeTests bool
}

// Api implements `api()`: every exported symbol, excluding test files by
// default.
func (e *Engine) Api(opts ApiOptions) []*model.Symbol {
	var out []*model.Symbol
	for _, s := range e.Idx.Symbols {
		if !s.IsExported {
			continue
		}
		file := e.Idx.File(s.RelativePath)
		if file == nil {
			continue
		}
		if !opts.IncludeTests && discover.IsTestFile(s.RelativePath, file.Language) {
			continue
		}
		out = append(out, s)
	}
	return out
}
