package query

import "path/filepath"

// GraphDirection selects which edges `graph` follows.
type GraphDirection string

const (
	DirImports   GraphDirection = "imports"
	DirImporters GraphDirection = "importers"
	DirBoth      GraphDirection = "both"
)

// GraphEdge is one deduplicated `(from,to)` edge, labeled when it closes a
// diamond ("already shown") or a true cycle ("circular").
type GraphEdge struct {
	From  string
	To    string
	Label string
}

// GraphResult is `graph`'s single-direction return shape.
type GraphResult struct {
	Root  string
	Nodes []string
	Edges []GraphEdge
}

// GraphBothResult is returned when direction=both.
type GraphBothResult struct {
	Root      string
	Direction GraphDirection
	Imports   GraphResult
	Importers GraphResult
}

// GraphOptions is `graph`'s option bag.
type GraphOptions struct {
	Direction GraphDirection
	MaxDepth  int
}

// Graph implements `graph(filePath, {direction, maxDepth})`. Returns
// (nil, &FileNotFound{filePath}) if filePath is not indexed.
func (e *Engine) Graph(filePath string, opts GraphOptions) (*GraphResult, *GraphBothResult, *FileNotFound) {
	rel := filepath.ToSlash(filePath)
	if e.Idx.File(rel) == nil {
		return nil, nil, &FileNotFound{FilePath: filePath}
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 5
	}

	if opts.Direction == DirBoth {
		imp := e.walkGraph(rel, opts.MaxDepth, true)
		imp.Root = rel
		byImp := e.walkGraph(rel, opts.MaxDepth, false)
		byImp.Root = rel
		return nil, &GraphBothResult{Root: rel, Direction: DirBoth, Imports: imp, Importers: byImp}, nil
	}

	forward := opts.Direction != DirImporters
	result := e.walkGraph(rel, opts.MaxDepth, forward)
	result.Root = rel
	return &result, nil, nil
}

// walkGraph performs a deduplicated recursive depth-first walk over either ImportGraph (forward,
// "imports") or ExportGraph (reverse, "importers"), labeling diamond
// re-visits "already shown" and true back-edges (an ancestor on the current
// path) "circular".
func (e *Engine) walkGraph(root string, maxDepth int, forward bool) GraphResult {
	nodesSeen := map[string]bool{root: true}
	edgesSeen := map[string]bool{}
	onPath := map[string]bool{root: true}

	var nodes []string
	var edges []GraphEdge
	nodes = append(nodes, root)

	var walk func(current string, depth int, ancestry map[string]bool)
	walk = func(current string, depth int, ancestry map[string]bool) {
		if depth >= maxDepth {
			return
		}
		neighbors := e.neighbors(current, forward)
		for _, n := range neighbors {
			edgeKey := current + "->" + n
			label := ""
			if ancestry[n] {
				label = "circular"
			} else if nodesSeen[n] {
				label = "already shown"
			}
			if !edgesSeen[edgeKey] {
				edgesSeen[edgeKey] = true
				edges = append(edges, GraphEdge{From: current, To: n, Label: label})
			}
			if !nodesSeen[n] {
				nodesSeen[n] = true
				nodes = append(nodes, n)
			}
			if label == "circular" || label == "already shown" {
				continue
			}
			nextAncestry := map[string]bool{}
			for k := range ancestry {
				nextAncestry[k] = true
			}
			nextAncestry[n] = true
			walk(n, depth+1, nextAncestry)
		}
	}
	walk(root, 0, onPath)

	return GraphResult{Nodes: nodes, Edges: edges}
}

func (e *Engine) neighbors(relPath string, forward bool) []string {
	var out []string
	if forward {
		for _, imp := range e.Idx.ImportGraph[relPath] {
			if imp.Resolved == "" {
				continue
			}
			if r, err := filepath.Rel(e.Idx.Root, imp.Resolved); err == nil {
				out = append(out, filepath.ToSlash(r))
			}
		}
		return out
	}
	for _, importer := range e.Idx.ExportGraph[relPath] {
		out = append(out, importer.File)
	}
	return out
}
