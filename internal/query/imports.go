package query

import (
	"path/filepath"

	"github.com/mleoca/ucn/internal/model"
)

// Imports implements `imports(file)`: the import records of file.
func (e *Engine) Imports(file string) ([]model.ImportRecord, *FileNotFound) {
	rel := filepath.ToSlash(file)
	if e.Idx.File(rel) == nil {
		return nil, &FileNotFound{FilePath: file}
	}
	return e.Idx.ImportGraph[rel], nil
}

// Exporters implements `exporters(file)`: every file that imports file.
func (e *Engine) Exporters(file string) ([]model.Importer, *FileNotFound) {
	rel := filepath.ToSlash(file)
	if e.Idx.File(rel) == nil {
		return nil, &FileNotFound{FilePath: file}
	}
	return e.Idx.ExportGraph[rel], nil
}

// FileExports implements `fileExports(file)`: the exported symbols declared
// in file.
func (e *Engine) FileExports(file string) ([]*model.Symbol, *FileNotFound) {
	rel := filepath.ToSlash(file)
	if e.Idx.File(rel) == nil {
		return nil, &FileNotFound{FilePath: file}
	}
	var out []*model.Symbol
	for _, s := range e.Idx.SymbolsInFile(rel) {
		if s.IsExported {
			out = append(out, s)
		}
	}
	return out, nil
}
