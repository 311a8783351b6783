package query

import (
	"sort"

	"github.com/mleoca/ucn/internal/model"
)

// TocFile is one file-level summary entry in `getToc`'s result.
type TocFile struct {
	File       string
	Language   model.Language
	SymbolCount int
	Symbols    []string // present only when detailed
}

// TocResult is `getToc`'s return shape.
type TocResult struct {
	Files       []TocFile
	TotalFiles  int
	HiddenFiles int
}

// TocOptions is `getToc`'s option bag.
type TocOptions struct {
	Detailed bool
	All      bool
	Top      int
}

// GetToc implements `getToc({detailed?, all?, top?=50})`: a file-level
// summary, sorted by symbol count descending, truncated to Top files unless
// All is set.
func (e *Engine) GetToc(opts TocOptions) *TocResult {
	if opts.Top <= 0 {
		opts.Top = 50
	}

	var files []TocFile
	for _, relPath := range e.Idx.AllFiles() {
		f := e.Idx.File(relPath)
		if f == nil {
			continue
		}
		syms := e.Idx.SymbolsInFile(relPath)
		entry := TocFile{File: relPath, Language: f.Language, SymbolCount: len(syms)}
		if opts.Detailed {
			for _, s := range syms {
				entry.Symbols = append(entry.Symbols, s.Name)
			}
		}
		files = append(files, entry)
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].SymbolCount != files[j].SymbolCount {
			return files[i].SymbolCount > files[j].SymbolCount
		}
		return files[i].File < files[j].File
	})

	result := &TocResult{TotalFiles: len(files)}
	if opts.All || len(files) <= opts.Top {
		result.Files = files
		return result
	}
	result.Files = files[:opts.Top]
	result.HiddenFiles = len(files) - opts.Top
	return result
}
