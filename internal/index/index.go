// Package index implements C4: the project index that owns every table
// (symbols, bindings, files, import/export graphs, calls cache) and drives
// the full and incremental build passes over C1-C3's output.
package index

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/mleoca/ucn/internal/cachestore"
	"github.com/mleoca/ucn/internal/completeness"
	"github.com/mleoca/ucn/internal/config"
	"github.com/mleoca/ucn/internal/discover"
	"github.com/mleoca/ucn/internal/lang"
	"github.com/mleoca/ucn/internal/model"
	"github.com/mleoca/ucn/internal/parser"
	"github.com/mleoca/ucn/internal/resolve"
)

// Index owns every table the query layer (C6) and call resolver (C5)
// consult. All mutation happens during Build/Rebuild; queries only read.
type Index struct {
	Root   string
	Config *config.Config
	Ignore *discover.IgnoreSet

	mu sync.RWMutex

	Files       map[string]*model.File   // relPath -> File
	Symbols     []*model.Symbol          // all symbols, project-wide
	symbolsByBindingID map[string]*model.Symbol
	Bindings    map[string][]model.Binding // relPath -> local binding table
	ImportGraph map[string][]model.ImportRecord // relPath -> its imports
	ExportGraph map[string][]model.Importer     // relPath -> importers of that file
	Calls       map[string][]model.CallRecord   // relPath -> parsed calls
	AttrTypes   map[string]model.ClassAttrTypes // relPath -> Python this-tracking table

	completenessCache *completeness.Report
}

// fileResult is one worker's output for a single file, merged into the
// Index single-threaded after the parallel parse pass (spec §5: no
// cross-file writes collide during the parallel phase).
type fileResult struct {
	relPath string
	file    *model.File
	symbols []*model.Symbol
	imports []model.ImportRecord
	calls   []model.CallRecord
	attrs   model.ClassAttrTypes
}

// Build performs a full, from-scratch index build over root.
func Build(root string) (*Index, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	ig := discover.Build(root)

	idx := newEmptyIndex(root, cfg, ig)

	paths, err := indexablePaths(root, ig)
	if err != nil {
		return nil, err
	}

	results := parseFilesParallel(root, paths)
	idx.merge(results)
	idx.rebuildExportGraph()
	idx.recomputeCompleteness()
	return idx, nil
}

// Open implements spec.md §3.2's incremental-build lifecycle: it loads the
// C7 snapshot at .ucn/index.json if one validates and is still fresh,
// restoring the file, symbol, import-graph and call tables straight from
// disk with no re-parse at all (Python class-attribute types and bindings
// are not part of the snapshot and stay empty for restored files); if the
// snapshot is stale, it restores what it can and re-parses only the added
// or modified files via Rebuild, skipping deleted ones entirely. Falls
// back to a full Build when no usable snapshot exists.
func Open(root string) (*Index, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	ig := discover.Build(root)

	snap, ok := cachestore.Load(cachestore.Path(root))
	if !ok {
		return Build(root)
	}

	paths, err := indexablePaths(root, ig)
	if err != nil {
		return nil, err
	}
	current, err := statAll(root, paths)
	if err != nil {
		return nil, err
	}

	idx := newEmptyIndex(root, cfg, ig)
	idx.restoreFromSnapshot(snap, current)

	if !cachestore.IsStale(snap, current) {
		idx.rebuildExportGraph()
		idx.recomputeCompleteness()
		return idx, nil
	}

	var changed []string
	cachedByPath := make(map[string]cachestore.FileEntry, len(snap.Files))
	for _, f := range snap.Files {
		cachedByPath[f.RelPath] = f
	}
	for relPath, info := range current {
		entry, ok := cachedByPath[relPath]
		if !ok || entry.ModTime != info.ModTime().UnixNano() || entry.Size != info.Size() {
			changed = append(changed, relPath)
		}
	}

	idx.Rebuild(changed)
	return idx, nil
}

// newEmptyIndex builds an Index with every table initialized but empty,
// shared by Build and Open before either populates it.
func newEmptyIndex(root string, cfg *config.Config, ig *discover.IgnoreSet) *Index {
	return &Index{
		Root:   root,
		Config: cfg,
		Ignore: ig,

		Files:              map[string]*model.File{},
		symbolsByBindingID: map[string]*model.Symbol{},
		Bindings:           map[string][]model.Binding{},
		ImportGraph:        map[string][]model.ImportRecord{},
		ExportGraph:        map[string][]model.Importer{},
		Calls:              map[string][]model.CallRecord{},
		AttrTypes:          map[string]model.ClassAttrTypes{},
	}
}

// indexablePaths walks root and returns every relative path lang.IsIndexable
// accepts.
func indexablePaths(root string, ig *discover.IgnoreSet) ([]string, error) {
	var paths []string
	err := discover.Walk(root, ig, func(absPath, relPath string) error {
		if !lang.IsIndexable(absPath) {
			return nil
		}
		paths = append(paths, relPath)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// statAll os.Stats every path (relative to root), keyed by relative path,
// for cachestore.IsStale's mtime+size comparison.
func statAll(root string, relPaths []string) (map[string]os.FileInfo, error) {
	out := make(map[string]os.FileInfo, len(relPaths))
	for _, relPath := range relPaths {
		info, err := os.Stat(filepath.Join(root, relPath))
		if err != nil {
			return nil, err
		}
		out[relPath] = info
	}
	return out, nil
}

// restoreFromSnapshot copies every snapshot table entry whose file still
// exists in current into idx, ahead of either returning as-is (fresh
// snapshot) or calling Rebuild on the changed subset. Deleted files are
// silently dropped by virtue of not appearing in current.
func (idx *Index) restoreFromSnapshot(snap *cachestore.Snapshot, current map[string]os.FileInfo) {
	callsByPath := make(map[string]cachestore.CallsCacheEntry, len(snap.CallsCache))
	for _, c := range snap.CallsCache {
		callsByPath[c.FilePath] = c
	}

	for _, f := range snap.Files {
		if _, ok := current[f.RelPath]; !ok {
			continue
		}
		idx.Files[f.RelPath] = &model.File{
			AbsPath:         f.AbsPath,
			RelPath:         f.RelPath,
			Language:        f.Language,
			ContentHash:     f.ContentHash,
			ModTime:         f.ModTime,
			Size:            f.Size,
			StringRanges:    f.StringRanges,
			CommentRanges:   f.CommentRanges,
			DynamicPatterns: map[string]int{},
		}
		if calls, ok := callsByPath[f.RelPath]; ok && calls.Hash == f.ContentHash {
			idx.Calls[f.RelPath] = calls.Calls
		}
	}

	for relPath, imports := range snap.ImportGraph {
		if _, ok := current[relPath]; !ok {
			continue
		}
		idx.ImportGraph[relPath] = imports
	}

	for i := range snap.Symbols {
		s := snap.Symbols[i]
		if _, ok := current[s.RelativePath]; !ok {
			continue
		}
		sym := s
		idx.Symbols = append(idx.Symbols, &sym)
		idx.symbolsByBindingID[sym.BindingID] = &sym
	}
}

// ToSnapshot builds the C7 persisted form of idx, including a fresh
// CallsCache keyed by each file's content hash so Open can skip re-parsing
// call sites for files that come back unchanged next run.
func (idx *Index) ToSnapshot() *cachestore.Snapshot {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	snap := &cachestore.Snapshot{
		Root:        idx.Root,
		ImportGraph: idx.ImportGraph,
		ExportGraph: idx.ExportGraph,
	}
	for relPath, f := range idx.Files {
		snap.Files = append(snap.Files, cachestore.FileEntry{
			RelPath:       f.RelPath,
			AbsPath:       f.AbsPath,
			Language:      f.Language,
			ContentHash:   f.ContentHash,
			ModTime:       f.ModTime,
			Size:          f.Size,
			StringRanges:  f.StringRanges,
			CommentRanges: f.CommentRanges,
		})
		snap.CallsCache = append(snap.CallsCache, cachestore.CallsCacheEntry{
			FilePath: relPath,
			ModTime:  f.ModTime,
			Size:     f.Size,
			Hash:     f.ContentHash,
			Calls:    idx.Calls[relPath],
		})
	}
	for _, s := range idx.Symbols {
		snap.Symbols = append(snap.Symbols, *s)
	}
	return snap
}

// workerCount mirrors the teacher's getOptimalWorkerCount: 75% of CPUs,
// clamped to [2,16], overridable via UCN_MAX_WORKERS for CI/sandboxed
// environments with unreliable CPU counts.
func workerCount() int {
	if env := os.Getenv("UCN_MAX_WORKERS"); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			if n > 32 {
				n = 32
			}
			return n
		}
	}
	n := int(float64(runtime.NumCPU()) * 0.75)
	if n < 2 {
		n = 2
	}
	if n > 16 {
		n = 16
	}
	return n
}

func parseFilesParallel(root string, relPaths []string) []fileResult {
	jobs := make(chan string)
	out := make(chan fileResult, len(relPaths))

	var wg sync.WaitGroup
	workers := workerCount()
	if workers > len(relPaths) && len(relPaths) > 0 {
		workers = len(relPaths)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for relPath := range jobs {
				if r, ok := parseOneFile(root, relPath); ok {
					out <- r
				}
			}
		}()
	}
	for _, p := range relPaths {
		jobs <- p
	}
	close(jobs)
	wg.Wait()
	close(out)

	results := make([]fileResult, 0, len(relPaths))
	for r := range out {
		results = append(results, r)
	}
	// Deterministic merge order regardless of goroutine completion order.
	sort.Slice(results, func(i, j int) bool { return results[i].relPath < results[j].relPath })
	return results
}

func parseOneFile(root, relPath string) (fileResult, bool) {
	absPath := filepath.Join(root, relPath)
	src, err := os.ReadFile(absPath)
	if err != nil {
		return fileResult{}, false
	}
	language, _ := lang.Detect(absPath)
	adapter := parser.For(language)
	if adapter == nil {
		return fileResult{}, false
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return fileResult{}, false
	}

	strRanges, commentRanges := adapter.StringAndCommentRanges(src)
	file := &model.File{
		AbsPath:       absPath,
		RelPath:       relPath,
		Language:      language,
		ContentHash:   hashContent(src),
		ModTime:       info.ModTime().UnixNano(),
		Size:          info.Size(),
		StringRanges:  strRanges,
		CommentRanges: commentRanges,
	}

	funcs := adapter.FindFunctions(src)
	classes := adapter.FindClasses(src)
	imports := adapter.FindImports(src)
	calls := adapter.FindCallsInCode(src)

	var symbols []*model.Symbol
	for i := range funcs {
		s := funcs[i]
		finishSymbol(&s, relPath)
		symbols = append(symbols, &s)
	}
	for i := range classes {
		s := classes[i]
		finishSymbol(&s, relPath)
		symbols = append(symbols, &s)
	}

	var attrs model.ClassAttrTypes
	if ia, ok := adapter.(parser.InstanceAttributeAdapter); ok {
		attrs = ia.FindInstanceAttributeTypes(src)
	}

	file.DynamicPatterns = map[string]int{}
	return fileResult{
		relPath: relPath,
		file:    file,
		symbols: symbols,
		imports: imports,
		calls:   calls,
		attrs:   attrs,
	}, true
}

func finishSymbol(s *model.Symbol, relPath string) {
	s.RelativePath = relPath
	s.BindingID = model.MakeBindingID(relPath, s.Kind, s.StartLine)
}

func hashContent(src []byte) string {
	sum := sha256.Sum256(src)
	return hex.EncodeToString(sum[:])[:16]
}

// merge writes every worker result into the index's tables single-
// threaded, resolving imports (C3) along the way.
func (idx *Index) merge(results []fileResult) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for _, r := range results {
		idx.Files[r.relPath] = r.file
		idx.Calls[r.relPath] = r.calls
		if r.attrs != nil {
			idx.AttrTypes[r.relPath] = r.attrs
		}
		for _, sym := range r.symbols {
			if _, dup := idx.symbolsByBindingID[sym.BindingID]; dup {
				continue
			}
			idx.Symbols = append(idx.Symbols, sym)
			idx.symbolsByBindingID[sym.BindingID] = sym
		}

		absFile := r.file.AbsPath
		resolvedImports := make([]model.ImportRecord, len(r.imports))
		for i, imp := range r.imports {
			resolved := resolve.Resolve(imp, absFile, r.file.Language, idx.Root, idx.Config)
			imp.Resolved = resolved
			resolvedImports[i] = imp
		}
		idx.ImportGraph[r.relPath] = resolvedImports
	}
}

// rebuildExportGraph walks ImportGraph and writes the reverse `importedBy`
// entries the spec calls exportGraph: exportGraph[targetFile] lists every
// file importing it.
func (idx *Index) rebuildExportGraph() {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.ExportGraph = map[string][]model.Importer{}
	for relPath, imports := range idx.ImportGraph {
		for _, imp := range imports {
			if imp.Resolved == "" {
				continue
			}
			targetRel, err := filepath.Rel(idx.Root, imp.Resolved)
			if err != nil {
				continue
			}
			targetRel = filepath.ToSlash(targetRel)
			idx.ExportGraph[targetRel] = append(idx.ExportGraph[targetRel], model.Importer{
				File:       relPath,
				ImportLine: imp.Line,
				Names:      imp.Names,
			})
		}
	}
}

func (idx *Index) recomputeCompleteness() {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	scanner := completeness.New()
	for relPath, imports := range idx.ImportGraph {
		for _, imp := range imports {
			scanner.ObserveImport(relPath, imp)
		}
	}
	for relPath, calls := range idx.Calls {
		for _, c := range calls {
			scanner.ObserveCall(relPath, c)
		}
	}
	report := scanner.Report()
	idx.completenessCache = &report
}

// DetectCompleteness returns the cached completeness report, computing it
// on first access.
func (idx *Index) DetectCompleteness() completeness.Report {
	idx.mu.RLock()
	cached := idx.completenessCache
	idx.mu.RUnlock()
	if cached != nil {
		return *cached
	}
	idx.recomputeCompleteness()
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return *idx.completenessCache
}

// ResolveOptions filters resolveSymbol/find's candidate set.
type ResolveOptions struct {
	File string
	Type model.SymbolKind
}

// ResolveSymbol implements resolveSymbol(name, {file?, type?}): filters by
// name, intersects optional file-substring and kind filters, then applies
// pickBestDefinition when more than one candidate remains.
func (idx *Index) ResolveSymbol(name string, opts ResolveOptions) (*model.Symbol, []*model.Symbol) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var matches []*model.Symbol
	for _, s := range idx.Symbols {
		if s.Name != name {
			continue
		}
		if opts.File != "" && !strings.Contains(s.RelativePath, opts.File) {
			continue
		}
		if opts.Type != "" && s.Kind != opts.Type {
			continue
		}
		matches = append(matches, s)
	}
	if len(matches) == 0 {
		return nil, nil
	}
	if len(matches) == 1 {
		return matches[0], matches
	}
	best := pickBestDefinition(matches)
	return best, matches
}

// pickBestDefinition implements spec.md §4.4's scoring rubric.
func pickBestDefinition(candidates []*model.Symbol) *model.Symbol {
	type scored struct {
		sym   *model.Symbol
		score int
	}
	scoredList := make([]scored, len(candidates))
	for i, s := range candidates {
		score := 0
		if s.Kind.IsClassLike() {
			score += 1000
		}
		if hasPathPrefix(s.RelativePath, "lib", "src", "core", "internal", "pkg", "crates") {
			score += 200
		}
		if hasPathPrefix(s.RelativePath, "examples", "docs", "vendor", "third_party", "benchmarks", "samples") {
			score -= 300
		}
		if discoverIsTestFile(s.RelativePath) {
			score -= 150
		}
		bodySize := s.EndLine - s.StartLine
		if bodySize > 100 {
			bodySize = 100
		}
		if bodySize > 0 {
			score += bodySize
		}
		scoredList[i] = scored{sym: s, score: score}
	}
	sort.SliceStable(scoredList, func(i, j int) bool {
		if scoredList[i].score != scoredList[j].score {
			return scoredList[i].score > scoredList[j].score
		}
		return scoredList[i].sym.BindingID < scoredList[j].sym.BindingID
	})
	return scoredList[0].sym
}

func hasPathPrefix(relPath string, prefixes ...string) bool {
	rel := strings.TrimPrefix(relPath, "/")
	for _, p := range prefixes {
		if rel == p || strings.HasPrefix(rel, p+"/") {
			return true
		}
	}
	return false
}

// discoverIsTestFile avoids importing discover's Language-dependent variant
// where the caller doesn't have a language tag at hand (pickBestDefinition
// only has a relative path).
func discoverIsTestFile(relPath string) bool {
	return discover.IsTestFile(relPath, "")
}

// MatchesOptions is matchesFilters' option bag.
type MatchesOptions struct {
	Exclude      []string
	In           string
	IncludeTests bool
}

// MatchesFilters implements spec.md §4.4's matchesFilters: `in` is a
// prefix-or-substring restriction; `exclude` patterns must match at a path
// boundary, never as a bare substring.
func MatchesFilters(relativePath string, opts MatchesOptions) bool {
	rel := filepath.ToSlash(relativePath)
	if opts.In != "" && !strings.Contains(rel, opts.In) {
		return false
	}
	for _, pat := range opts.Exclude {
		if excludeMatchesBoundary(rel, pat) {
			return false
		}
	}
	if !opts.IncludeTests && discoverIsTestFile(rel) {
		return false
	}
	return true
}

// excludeMatchesBoundary implements the path-boundary exclude rule: `/pat/`,
// starts-with `pat/`, ends-with `/pat` or `.pat`, exactly equals `pat`, or a
// suffix with a separator before the extension (e.g. `.test.js` for `test`).
func excludeMatchesBoundary(rel, pat string) bool {
	if rel == pat {
		return true
	}
	if strings.Contains(rel, "/"+pat+"/") {
		return true
	}
	if strings.HasPrefix(rel, pat+"/") {
		return true
	}
	if strings.HasSuffix(rel, "/"+pat) {
		return true
	}
	if strings.HasSuffix(rel, "."+pat) {
		return true
	}
	// Suffix form: a separator (`.` or `_`) immediately before pat, itself
	// immediately before the final extension, e.g. "foo.test.js" / "test".
	base := filepath.Base(rel)
	for _, sep := range []string{".", "_"} {
		if strings.LastIndex(base, sep+pat+".") > 0 {
			return true
		}
	}
	return false
}

// File returns the indexed file record for relPath, or nil.
func (idx *Index) File(relPath string) *model.File {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.Files[relPath]
}

// SymbolByBindingID looks up a symbol by its stable bindingId.
func (idx *Index) SymbolByBindingID(id string) *model.Symbol {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.symbolsByBindingID[id]
}

// SymbolsInFile returns every symbol whose RelativePath equals relPath, in
// source order.
func (idx *Index) SymbolsInFile(relPath string) []*model.Symbol {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	var out []*model.Symbol
	for _, s := range idx.Symbols {
		if s.RelativePath == relPath {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartLine < out[j].StartLine })
	return out
}

// AllFiles returns every indexed relative path, sorted.
func (idx *Index) AllFiles() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]string, 0, len(idx.Files))
	for rel := range idx.Files {
		out = append(out, rel)
	}
	sort.Strings(out)
	return out
}

// RemoveFileSymbols drops every table entry owned by relPath, in
// preparation for re-parsing it during an incremental rebuild.
func (idx *Index) RemoveFileSymbols(relPath string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	kept := idx.Symbols[:0]
	for _, s := range idx.Symbols {
		if s.RelativePath == relPath {
			delete(idx.symbolsByBindingID, s.BindingID)
			continue
		}
		kept = append(kept, s)
	}
	idx.Symbols = kept
	delete(idx.Files, relPath)
	delete(idx.ImportGraph, relPath)
	delete(idx.Calls, relPath)
	delete(idx.AttrTypes, relPath)
	delete(idx.Bindings, relPath)
	for target, importers := range idx.ExportGraph {
		keptImporters := make([]model.Importer, 0, len(importers))
		for _, imp := range importers {
			if imp.File != relPath {
				keptImporters = append(keptImporters, imp)
			}
		}
		idx.ExportGraph[target] = keptImporters
	}
}

// Rebuild re-parses exactly the given relative paths (added or modified
// since the last build) and merges the result, then recomputes the
// derived tables (export graph, completeness). Deleted paths should be
// passed through RemoveFileSymbols first by the caller.
func (idx *Index) Rebuild(changedRelPaths []string) {
	for _, rel := range changedRelPaths {
		idx.RemoveFileSymbols(rel)
	}
	results := parseFilesParallel(idx.Root, changedRelPaths)
	idx.merge(results)
	idx.rebuildExportGraph()
	idx.recomputeCompleteness()
}
