package parser

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/mleoca/ucn/internal/model"
	"github.com/mleoca/ucn/internal/tsutil"
)

type rustAdapter struct{}

func newRustAdapter() *rustAdapter { return &rustAdapter{} }

func (a *rustAdapter) Language() model.Language { return model.LangRust }

func (a *rustAdapter) parse(src []byte) (*sitter.Node, func(), error) {
	return tsutil.Parse(context.Background(), src, rust.GetLanguage())
}

func rustIsPub(n *sitter.Node, src []byte) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "visibility_modifier" {
			return true
		}
	}
	return false
}

func rustSelfTypeFromImpl(n *sitter.Node, src []byte) string {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == "impl_item" {
			if t := p.ChildByFieldName("type"); t != nil {
				return tsutil.Text(t, src)
			}
		}
	}
	return ""
}

func (a *rustAdapter) FindFunctions(src []byte) []model.Symbol {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	var out []model.Symbol
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "function_item" {
			return true
		}
		name := tsutil.Text(n.ChildByFieldName("name"), src)
		if name == "" {
			return true
		}
		params := n.ChildByFieldName("parameters")
		returnType := n.ChildByFieldName("return_type")
		className := rustSelfTypeFromImpl(n, src)
		kind := model.KindFunction
		hasSelfRecv := false
		if params != nil && params.NamedChildCount() > 0 {
			first := params.NamedChild(0)
			if first.Type() == "self_parameter" {
				hasSelfRecv = true
			}
		}
		if className != "" && hasSelfRecv {
			kind = model.KindMethod
		}
		sym := model.Symbol{
			Name:       name,
			Kind:       kind,
			StartLine:  tsutil.Line(n),
			EndLine:    tsutil.EndLine(n),
			Params:     strings.TrimSuffix(strings.TrimPrefix(tsutil.Text(params, src), "("), ")"),
			ReturnType: strings.TrimPrefix(tsutil.Text(returnType, src), "->"),
			ClassName:  className,
			IsMethod:   kind == model.KindMethod,
			Receiver:   className,
			Docstring:  rustDocComment(n, src),
			IsExported: rustIsPub(n, src),
		}
		if name == "main" {
			sym.Modifiers = append(sym.Modifiers, "entry-point")
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			if n.Child(i).Type() == "attribute_item" {
				attr := tsutil.Text(n.Child(i), src)
				sym.Decorators = append(sym.Decorators, attr)
			}
		}
		out = append(out, sym)
		return true
	})
	return out
}

func rustDocComment(n *sitter.Node, src []byte) string {
	doc := tsutil.PrecedingComment(n, src, "line_comment")
	if strings.HasPrefix(doc, "///") || strings.HasPrefix(doc, "//!") {
		return doc
	}
	return ""
}

func (a *rustAdapter) FindClasses(src []byte) []model.Symbol {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	implMethods := map[string][]string{}
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "impl_item" {
			return true
		}
		typeName := tsutil.Text(n.ChildByFieldName("type"), src)
		body := n.ChildByFieldName("body")
		if body != nil {
			for _, fn := range tsutil.FindAll(body, "function_item") {
				implMethods[typeName] = append(implMethods[typeName], tsutil.Text(fn.ChildByFieldName("name"), src))
			}
		}
		return true
	})

	var out []model.Symbol
	tsutil.Walk(root, func(n *sitter.Node) bool {
		var kind model.SymbolKind
		switch n.Type() {
		case "struct_item":
			kind = model.KindStruct
		case "enum_item":
			kind = model.KindEnum
		case "trait_item":
			kind = model.KindTrait
		case "impl_item":
			kind = model.KindImpl
		default:
			return true
		}
		nameNode := n.ChildByFieldName("name")
		name := tsutil.Text(nameNode, src)
		if kind == model.KindImpl {
			name = tsutil.Text(n.ChildByFieldName("type"), src)
		}
		if name == "" {
			return true
		}
		sym := model.Symbol{
			Name:       name,
			Kind:       kind,
			StartLine:  tsutil.Line(n),
			EndLine:    tsutil.EndLine(n),
			Docstring:  rustDocComment(n, src),
			IsExported: kind == model.KindImpl || rustIsPub(n, src),
			Members:    implMethods[name],
		}
		if bounds := n.ChildByFieldName("bounds"); bounds != nil {
			sym.Implements = tsutil.Text(bounds, src)
		}
		if traitRef := n.ChildByFieldName("trait"); traitRef != nil {
			sym.Implements = tsutil.Text(traitRef, src)
		}
		out = append(out, sym)
		return true
	})
	return out
}

func (a *rustAdapter) FindImports(src []byte) []model.ImportRecord {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	var out []model.ImportRecord
	tsutil.Walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "use_declaration":
			arg := n.ChildByFieldName("argument")
			out = append(out, model.ImportRecord{Module: tsutil.Text(arg, src), Type: "use", Line: tsutil.Line(n)})
		case "mod_item":
			name := tsutil.Text(n.ChildByFieldName("name"), src)
			if n.ChildByFieldName("body") == nil {
				out = append(out, model.ImportRecord{Module: name, Type: "mod", Line: tsutil.Line(n)})
			}
		case "macro_invocation":
			macro := tsutil.Text(n.ChildByFieldName("macro"), src)
			if macro == "include" || macro == "include_str" || macro == "include_bytes" {
				args := n.ChildByFieldName("arguments")
				out = append(out, model.ImportRecord{Module: strings.Trim(tsutil.Text(args, src), `!()"`), Type: "include", Line: tsutil.Line(n)})
			}
		}
		return true
	})
	return out
}

func (a *rustAdapter) FindExports(src []byte) []model.ExportRecord {
	var out []model.ExportRecord
	for _, sym := range a.FindFunctions(src) {
		if sym.IsExported {
			out = append(out, model.ExportRecord{Name: sym.Name, Kind: sym.Kind, Line: sym.StartLine})
		}
	}
	for _, sym := range a.FindClasses(src) {
		if sym.IsExported && sym.Kind != model.KindImpl {
			out = append(out, model.ExportRecord{Name: sym.Name, Kind: sym.Kind, Line: sym.StartLine})
		}
	}
	return out
}

func (a *rustAdapter) FindCallsInCode(src []byte) []model.CallRecord {
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
		case "field_expression":
			obj := fn.ChildByFieldName("value")
			field := fn.ChildByFieldName("field")
			rec.Name = tsutil.Text(field, src)
			rec.Receiver = tsutil.Text(obj, src)
			rec.IsMethod = true
		case "scoped_identifier":
			rec.Name = tsutil.Text(fn, src)
			if strings.Count(rec.Name, "::") > 0 {
				parts := strings.Split(rec.Name, "::")
				rec.ResolvedName = parts[len(parts)-1]
			}
		case "identifier":
			rec.Name = tsutil.Text(fn, src)
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

func (a *rustAdapter) FindUsagesInCode(src []byte, name string) []model.Usage {
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
		// Filter Enum::Variant occurrences when searching for a same-named
		// struct: if the left side of a `::` is uppercase and equals a
		// different identifier than `name`, this is an enum variant, not a
		// struct reference.
		if n.Type() == "type_identifier" {
			if parent := n.Parent(); parent != nil && parent.Type() == "scoped_identifier" {
				path := parent.ChildByFieldName("path")
				if path != nil && path != n {
					return true
				}
			}
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
			case "struct_expression":
				kind = model.UsageCall
			case "function_item", "struct_item", "enum_item", "trait_item":
				if parent.ChildByFieldName("name") == n {
					kind = model.UsageDefinition
				}
			}
		}
		out = append(out, model.Usage{Line: line, Column: tsutil.Column(n), Content: content, Kind: kind})
		return true
	})
	return out
}

func (a *rustAdapter) StringAndCommentRanges(src []byte) ([]model.LineRange, []model.LineRange) {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil, nil
	}
	defer closer()

	var strs, comments []model.LineRange
	tsutil.Walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "string_literal", "raw_string_literal":
			strs = append(strs, model.LineRange{Start: tsutil.Line(n), End: tsutil.EndLine(n)})
			return false
		case "line_comment", "block_comment":
			comments = append(comments, model.LineRange{Start: tsutil.Line(n), End: tsutil.EndLine(n)})
		}
		return true
	})
	return strs, comments
}
