package parser

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/mleoca/ucn/internal/model"
	"github.com/mleoca/ucn/internal/tsutil"
)

type javaAdapter struct{}

func newJavaAdapter() *javaAdapter { return &javaAdapter{} }

func (a *javaAdapter) Language() model.Language { return model.LangJava }

func (a *javaAdapter) parse(src []byte) (*sitter.Node, func(), error) {
	return tsutil.Parse(context.Background(), src, java.GetLanguage())
}

func javaModifiers(n *sitter.Node, src []byte) ([]string, []string) {
	var mods, annotations []string
	modsNode := tsutil.ChildByType(n, "modifiers")
	if modsNode == nil {
		return nil, nil
	}
	for i := 0; i < int(modsNode.ChildCount()); i++ {
		c := modsNode.Child(i)
		switch c.Type() {
		case "public", "private", "protected", "static", "final", "abstract", "synchronized":
			mods = append(mods, c.Type())
		case "marker_annotation", "annotation":
			name := tsutil.ChildByType(c, "identifier")
			annotations = append(annotations, strings.ToLower(tsutil.Text(name, src)))
		}
	}
	return mods, annotations
}

func javaEnclosingClassName(n *sitter.Node, src []byte) string {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch p.Type() {
		case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration":
			if name := p.ChildByFieldName("name"); name != nil {
				return tsutil.Text(name, src)
			}
		}
	}
	return ""
}

func (a *javaAdapter) FindFunctions(src []byte) []model.Symbol {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	var out []model.Symbol
	seenConstructors := map[string]bool{}
	tsutil.Walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "method_declaration":
			name := tsutil.Text(n.ChildByFieldName("name"), src)
			if name == "" {
				return true
			}
			className := javaEnclosingClassName(n, src)
			params := n.ChildByFieldName("parameters")
			returnType := n.ChildByFieldName("type")
			mods, annots := javaModifiers(n, src)
			isMain := name == "main" && containsStr(mods, "public") && containsStr(mods, "static")
			sym := model.Symbol{
				Name:       name,
				Kind:       model.KindMethod,
				StartLine:  tsutil.Line(n),
				EndLine:    tsutil.EndLine(n),
				Params:     strings.TrimSuffix(strings.TrimPrefix(tsutil.Text(params, src), "("), ")"),
				ReturnType: tsutil.Text(returnType, src),
				ClassName:  className,
				IsMethod:   true,
				Modifiers:  mods,
				Decorators: annots,
				Docstring:  javaJavadoc(n, src),
				IsExported: containsStr(mods, "public"),
			}
			if isMain {
				sym.Modifiers = append(sym.Modifiers, "entry-point")
			}
			out = append(out, sym)
		case "constructor_declaration":
			name := tsutil.Text(n.ChildByFieldName("name"), src)
			if name == "" {
				return true
			}
			key := name + ":" + itoa(tsutil.Line(n))
			if seenConstructors[key] {
				return true
			}
			seenConstructors[key] = true
			params := n.ChildByFieldName("parameters")
			mods, annots := javaModifiers(n, src)
			sym := model.Symbol{
				Name:       name,
				Kind:       model.KindConstructor,
				StartLine:  tsutil.Line(n),
				EndLine:    tsutil.EndLine(n),
				Params:     strings.TrimSuffix(strings.TrimPrefix(tsutil.Text(params, src), "("), ")"),
				ClassName:  javaEnclosingClassName(n, src),
				IsMethod:   true,
				Modifiers:  mods,
				Decorators: annots,
				Docstring:  javaJavadoc(n, src),
				IsExported: containsStr(mods, "public"),
			}
			out = append(out, sym)
		}
		return true
	})
	return out
}

func containsStr(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var b []byte
	for i > 0 {
		b = append([]byte{byte('0' + i%10)}, b...)
		i /= 10
	}
	if neg {
		b = append([]byte{'-'}, b...)
	}
	return string(b)
}

func javaJavadoc(n *sitter.Node, src []byte) string {
	doc := tsutil.PrecedingComment(n, src, "block_comment")
	if strings.HasPrefix(doc, "/**") {
		return doc
	}
	return ""
}

func (a *javaAdapter) FindClasses(src []byte) []model.Symbol {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	var out []model.Symbol
	tsutil.Walk(root, func(n *sitter.Node) bool {
		var kind model.SymbolKind
		switch n.Type() {
		case "class_declaration":
			kind = model.KindClass
		case "interface_declaration":
			kind = model.KindInterface
		case "enum_declaration":
			kind = model.KindEnum
		default:
			return true
		}
		nameNode := n.ChildByFieldName("name")
		name := tsutil.Text(nameNode, src)
		if name == "" {
			return true
		}
		mods, annots := javaModifiers(n, src)
		sym := model.Symbol{
			Name:       name,
			Kind:       kind,
			StartLine:  tsutil.Line(n),
			EndLine:    tsutil.EndLine(n),
			Modifiers:  mods,
			Decorators: annots,
			Docstring:  javaJavadoc(n, src),
			IsExported: containsStr(mods, "public"),
		}
		if super := n.ChildByFieldName("superclass"); super != nil {
			sym.Extends = strings.TrimPrefix(tsutil.Text(super, src), "extends")
		}
		if iface := tsutil.ChildByType(n, "super_interfaces"); iface != nil {
			sym.Implements = strings.TrimPrefix(tsutil.Text(iface, src), "implements")
		}
		body := n.ChildByFieldName("body")
		if body != nil {
			for i := 0; i < int(body.NamedChildCount()); i++ {
				c := body.NamedChild(i)
				if c.Type() == "method_declaration" || c.Type() == "constructor_declaration" {
					if mn := c.ChildByFieldName("name"); mn != nil {
						sym.Members = append(sym.Members, tsutil.Text(mn, src))
					}
				}
			}
		}
		out = append(out, sym)
		return true
	})
	return out
}

func (a *javaAdapter) FindImports(src []byte) []model.ImportRecord {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	var out []model.ImportRecord
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "import_declaration" {
			return true
		}
		isStatic := tsutil.ChildByType(n, "static") != nil
		text := tsutil.Text(n, src)
		module := strings.TrimSuffix(strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(text, "import"), " static"), ";")), ";")
		module = strings.TrimSpace(module)
		typ := "java-import"
		if isStatic {
			typ = "java-static-import"
		}
		out = append(out, model.ImportRecord{Module: module, Type: typ, Line: tsutil.Line(n)})
		return true
	})
	return out
}

func (a *javaAdapter) FindExports(src []byte) []model.ExportRecord {
	var out []model.ExportRecord
	for _, sym := range a.FindFunctions(src) {
		if sym.IsExported {
			out = append(out, model.ExportRecord{Name: sym.Name, Kind: sym.Kind, Line: sym.StartLine})
		}
	}
	for _, sym := range a.FindClasses(src) {
		if sym.IsExported {
			out = append(out, model.ExportRecord{Name: sym.Name, Kind: sym.Kind, Line: sym.StartLine})
		}
	}
	return out
}

func (a *javaAdapter) FindCallsInCode(src []byte) []model.CallRecord {
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
		switch n.Type() {
		case "method_invocation":
			name := tsutil.Text(n.ChildByFieldName("name"), src)
			if name == "" {
				return true
			}
			rec := model.CallRecord{Line: tsutil.Line(n), Column: tsutil.Column(n), Name: name, IsMethod: true}
			rec.Content = lineContent(rec.Line)
			args := n.ChildByFieldName("arguments")
			rec.ArgCount = tsutil.ArgCount(args)
			if obj := n.ChildByFieldName("object"); obj != nil {
				rec.Receiver = tsutil.Text(obj, src)
			}
			out = append(out, rec)
		case "object_creation_expression":
			typeNode := n.ChildByFieldName("type")
			name := tsutil.Text(typeNode, src)
			if name == "" {
				return true
			}
			rec := model.CallRecord{
				Line:         tsutil.Line(n),
				Column:       tsutil.Column(n),
				Content:      lineContent(tsutil.Line(n)),
				Name:         name,
				ResolvedName: name,
			}
			args := n.ChildByFieldName("arguments")
			rec.ArgCount = tsutil.ArgCount(args)
			out = append(out, rec)
		}
		return true
	})
	return out
}

func (a *javaAdapter) FindUsagesInCode(src []byte, name string) []model.Usage {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	lines := strings.Split(string(src), "\n")
	var out []model.Usage
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "identifier" && n.Type() != "type_identifier" {
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
			case "method_invocation", "object_creation_expression":
				kind = model.UsageCall
			case "class_declaration", "interface_declaration", "enum_declaration", "method_declaration", "constructor_declaration":
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

func (a *javaAdapter) StringAndCommentRanges(src []byte) ([]model.LineRange, []model.LineRange) {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil, nil
	}
	defer closer()

	var strs, comments []model.LineRange
	tsutil.Walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "string_literal":
			strs = append(strs, model.LineRange{Start: tsutil.Line(n), End: tsutil.EndLine(n)})
			return false
		case "line_comment", "block_comment":
			comments = append(comments, model.LineRange{Start: tsutil.Line(n), End: tsutil.EndLine(n)})
		}
		return true
	})
	return strs, comments
}
