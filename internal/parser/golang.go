package parser

import (
	"context"
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/mleoca/ucn/internal/model"
	"github.com/mleoca/ucn/internal/tsutil"
)

var goBuiltins = map[string]bool{
	"append": true, "len": true, "make": true, "cap": true, "copy": true,
	"new": true, "delete": true, "panic": true, "recover": true,
	"print": true, "println": true, "close": true,
}

func isExportedGo(name string) bool {
	r := []rune(name)
	return len(r) > 0 && unicode.IsUpper(r[0])
}

type goAdapter struct{}

func newGoAdapter() *goAdapter { return &goAdapter{} }

func (a *goAdapter) Language() model.Language { return model.LangGo }

func (a *goAdapter) parse(src []byte) (*sitter.Node, func(), error) {
	return tsutil.Parse(context.Background(), src, golang.GetLanguage())
}

func (a *goAdapter) FindFunctions(src []byte) []model.Symbol {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	var out []model.Symbol
	tsutil.Walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "function_declaration":
			name := tsutil.Text(n.ChildByFieldName("name"), src)
			if name == "" {
				return true
			}
			sym := goSymbolFrom(n, src, name, model.KindFunction)
			out = append(out, sym)
		case "method_declaration":
			name := tsutil.Text(n.ChildByFieldName("name"), src)
			if name == "" {
				return true
			}
			sym := goSymbolFrom(n, src, name, model.KindMethod)
			sym.IsMethod = true
			recv := n.ChildByFieldName("receiver")
			sym.Receiver = strings.TrimSuffix(strings.TrimPrefix(tsutil.Text(recv, src), "("), ")")
			sym.ClassName = goReceiverTypeName(recv, src)
			out = append(out, sym)
		}
		return true
	})
	return out
}

func goSymbolFrom(n *sitter.Node, src []byte, name string, kind model.SymbolKind) model.Symbol {
	params := n.ChildByFieldName("parameters")
	result := n.ChildByFieldName("result")
	return model.Symbol{
		Name:       name,
		Kind:       kind,
		StartLine:  tsutil.Line(n),
		EndLine:    tsutil.EndLine(n),
		Indent:     0,
		Params:     strings.TrimSuffix(strings.TrimPrefix(tsutil.Text(params, src), "("), ")"),
		ReturnType: tsutil.Text(result, src),
		Docstring:  tsutil.PrecedingComment(n, src, "comment"),
		IsExported: isExportedGo(name),
	}
}

// goReceiverTypeName extracts the bare type name from a receiver parameter
// list like `(c *Client)` or `(c Client)`.
func goReceiverTypeName(recv *sitter.Node, src []byte) string {
	if recv == nil {
		return ""
	}
	for i := 0; i < int(recv.NamedChildCount()); i++ {
		param := recv.NamedChild(i)
		typeNode := param.ChildByFieldName("type")
		if typeNode == nil {
			continue
		}
		text := tsutil.Text(typeNode, src)
		return strings.TrimPrefix(text, "*")
	}
	return ""
}

func (a *goAdapter) FindClasses(src []byte) []model.Symbol {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	methodsByType := map[string][]string{}
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "method_declaration" {
			return true
		}
		recv := n.ChildByFieldName("receiver")
		typeName := goReceiverTypeName(recv, src)
		name := tsutil.Text(n.ChildByFieldName("name"), src)
		if typeName != "" && name != "" {
			methodsByType[typeName] = append(methodsByType[typeName], name)
		}
		return true
	})

	var out []model.Symbol
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "type_declaration" {
			return true
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			spec := n.NamedChild(i)
			if spec.Type() != "type_spec" {
				continue
			}
			name := tsutil.Text(spec.ChildByFieldName("name"), src)
			if name == "" {
				continue
			}
			typeNode := spec.ChildByFieldName("type")
			kind := model.KindType
			var implements string
			switch {
			case typeNode != nil && typeNode.Type() == "struct_type":
				kind = model.KindStruct
			case typeNode != nil && typeNode.Type() == "interface_type":
				kind = model.KindInterface
				implements = tsutil.Text(typeNode, src)
			}
			sym := model.Symbol{
				Name:       name,
				Kind:       kind,
				StartLine:  tsutil.Line(spec),
				EndLine:    tsutil.EndLine(spec),
				Implements: implements,
				Docstring:  tsutil.PrecedingComment(n, src, "comment"),
				IsExported: isExportedGo(name),
				Members:    methodsByType[name],
			}
			out = append(out, sym)
		}
		return true
	})
	return out
}

func (a *goAdapter) FindImports(src []byte) []model.ImportRecord {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	var out []model.ImportRecord
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "import_spec" {
			return true
		}
		pathNode := n.ChildByFieldName("path")
		module := strings.Trim(tsutil.Text(pathNode, src), `"`)
		alias := ""
		if name := n.ChildByFieldName("name"); name != nil {
			alias = tsutil.Text(name, src)
		}
		rec := model.ImportRecord{Module: module, Type: "from-import", Line: tsutil.Line(n)}
		if alias != "" {
			rec.Names = []string{alias}
		}
		out = append(out, rec)
		return true
	})
	return out
}

func (a *goAdapter) FindExports(src []byte) []model.ExportRecord {
	var out []model.ExportRecord
	for _, sym := range a.FindFunctions(src) {
		if sym.IsExported && sym.Kind == model.KindFunction {
			out = append(out, model.ExportRecord{Name: sym.Name, Kind: model.KindFunction, Line: sym.StartLine})
		}
	}
	for _, sym := range a.FindClasses(src) {
		if sym.IsExported {
			out = append(out, model.ExportRecord{Name: sym.Name, Kind: sym.Kind, Line: sym.StartLine})
		}
	}
	return out
}

func (a *goAdapter) FindCallsInCode(src []byte) []model.CallRecord {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	lines := strings.Split(string(src), "\n")
	lineContent := func(line int) string {
		if line-1 >= 0 && line-1 < len(lines) {
			return strings.TrimSpace(lines[line-1])
		}
		return ""
	}

	var out []model.CallRecord
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "call_expression" {
			return true
		}
		fn := n.ChildByFieldName("function")
		if fn == nil {
			return true
		}
		rec := model.CallRecord{Line: tsutil.Line(n), Column: tsutil.Column(n)}
		rec.Content = lineContent(rec.Line)
		args := n.ChildByFieldName("arguments")
		rec.ArgCount = tsutil.ArgCount(args)

		switch fn.Type() {
		case "selector_expression":
			obj := fn.ChildByFieldName("operand")
			field := fn.ChildByFieldName("field")
			rec.Name = tsutil.Text(field, src)
			rec.Receiver = tsutil.Text(obj, src)
			rec.IsMethod = true
		case "identifier":
			name := tsutil.Text(fn, src)
			if goBuiltins[name] {
				return true
			}
			rec.Name = name
		default:
			return true
		}
		if rec.Name != "" {
			out = append(out, rec)
		}
		return true
	})
	return out
}

func (a *goAdapter) FindUsagesInCode(src []byte, name string) []model.Usage {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	lines := strings.Split(string(src), "\n")
	var out []model.Usage
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "identifier" && n.Type() != "type_identifier" && n.Type() != "field_identifier" {
			return true
		}
		if tsutil.Text(n, src) != name {
			return true
		}
		line := tsutil.Line(n)
		content := ""
		if line-1 >= 0 && line-1 < len(lines) {
			content = strings.TrimSpace(lines[line-1])
		}
		kind := model.UsageReference
		parent := n.Parent()
		if parent != nil {
			switch parent.Type() {
			case "call_expression":
				kind = model.UsageCall
			case "composite_literal":
				kind = model.UsageCall
			case "function_declaration", "method_declaration", "type_spec":
				if parent.ChildByFieldName("name") == n {
					kind = model.UsageDefinition
				}
			}
			if n.Type() == "type_identifier" && parent.Type() == "qualified_type" {
				kind = model.UsageReference
			}
		}
		out = append(out, model.Usage{Line: line, Column: tsutil.Column(n), Content: content, Kind: kind})
		return true
	})
	return out
}

func (a *goAdapter) StringAndCommentRanges(src []byte) ([]model.LineRange, []model.LineRange) {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil, nil
	}
	defer closer()

	var strs, comments []model.LineRange
	tsutil.Walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "interpreted_string_literal", "raw_string_literal":
			strs = append(strs, model.LineRange{Start: tsutil.Line(n), End: tsutil.EndLine(n)})
			return false
		case "comment":
			comments = append(comments, model.LineRange{Start: tsutil.Line(n), End: tsutil.EndLine(n)})
		}
		return true
	})
	return strs, comments
}
