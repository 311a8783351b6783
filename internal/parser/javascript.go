package parser

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/mleoca/ucn/internal/model"
	"github.com/mleoca/ucn/internal/tsutil"
)

// jsBuiltins are receivers/calls the JS/TS call extractor never reports as
// user calls (spec §4.2 findCallsInCode rule 5). A matching call is dropped
// here whatever its receiver is bound to, including a local or imported
// identifier that shares a builtin's name.
var jsBuiltins = map[string]bool{
	"JSON.parse": true, "JSON.stringify": true,
	"Array.isArray": true, "Array.from": true, "Array.of": true,
	"Object.keys": true, "Object.values": true, "Object.entries": true,
	"Object.assign": true, "Object.freeze": true,
	"console.log": true, "console.warn": true, "console.error": true,
	"console.info": true, "console.debug": true,
	"Math.max": true, "Math.min": true, "Math.floor": true, "Math.ceil": true, "Math.round": true,
	"Promise.all": true, "Promise.race": true, "Promise.resolve": true, "Promise.reject": true,
	"path.parse": true, "path.join": true, "path.resolve": true,
}

// callbackPositions maps a method name to the argument index that is
// callback-position for JSX-prop / HOF-callback detection (spec §4.2 rule 6).
var callbackPositions = map[string]int{
	"then": 0, "catch": 0, "map": 0, "filter": 0, "forEach": 0, "reduce": 0,
	"setTimeout": 0, "setInterval": 0, "addEventListener": 1,
}

// isFunctionLikeArg reports whether n denotes a function value passed by
// reference: an inline arrow/function expression, or a bare identifier
// naming one (left for the binding table to resolve downstream).
func isFunctionLikeArg(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	switch n.Type() {
	case "arrow_function", "function_expression", "function", "identifier":
		return true
	}
	return false
}

type javascriptAdapter struct{}

func newJavaScriptAdapter() *javascriptAdapter { return &javascriptAdapter{} }

func (a *javascriptAdapter) Language() model.Language { return model.LangJavaScript }

func (a *javascriptAdapter) parse(src []byte) (*sitter.Node, func(), error) {
	return tsutil.Parse(context.Background(), src, javascript.GetLanguage())
}

func (a *javascriptAdapter) FindFunctions(src []byte) []model.Symbol {
	return findJSFunctions(src, a.parse)
}

func (a *javascriptAdapter) FindClasses(src []byte) []model.Symbol {
	return findJSClasses(src, a.parse)
}

func (a *javascriptAdapter) FindImports(src []byte) []model.ImportRecord {
	return findJSImports(src, a.parse)
}

func (a *javascriptAdapter) FindExports(src []byte) []model.ExportRecord {
	return findJSExports(src, a.parse)
}

func (a *javascriptAdapter) FindCallsInCode(src []byte) []model.CallRecord {
	return findJSCalls(src, a.parse)
}

func (a *javascriptAdapter) FindUsagesInCode(src []byte, name string) []model.Usage {
	return findJSUsages(src, name, a.parse)
}

func (a *javascriptAdapter) StringAndCommentRanges(src []byte) ([]model.LineRange, []model.LineRange) {
	return jsStringAndCommentRanges(src, a.parse)
}

// --- shared JS/TS/TSX implementation -------------------------------------
//
// TypeScript and TSX reuse every function below by parsing with their own
// grammar (see typescript.go); the node-type vocabulary tree-sitter's JS,
// TS and TSX grammars share for functions/classes/calls is large enough
// that spec.md's per-language adapter contract is satisfied by one set of
// walkers parameterized on the parse function, matching how the teacher
// shares logic across sibling language packages where node shapes coincide.

type parseFn func(src []byte) (*sitter.Node, func(), error)

func findJSFunctions(src []byte, parse parseFn) []model.Symbol {
	root, closer, err := parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	var out []model.Symbol
	tsutil.Walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "function_declaration", "generator_function_declaration":
			if sym, ok := jsFunctionSymbol(n, src, ""); ok {
				out = append(out, sym)
			}
		case "method_definition":
			className := jsEnclosingClassName(n, src)
			if sym, ok := jsFunctionSymbol(n, src, className); ok {
				sym.IsMethod = true
				sym.ClassName = className
				out = append(out, sym)
			}
		case "variable_declarator":
			// const name = (...) => ... / function(...) {}
			valueNode := n.ChildByFieldName("value")
			if valueNode == nil {
				return true
			}
			if valueNode.Type() != "arrow_function" && valueNode.Type() != "function" {
				return true
			}
			nameNode := n.ChildByFieldName("name")
			if nameNode == nil {
				return true
			}
			sym := model.Symbol{
				Name:      tsutil.Text(nameNode, src),
				Kind:      model.KindFunction,
				StartLine: tsutil.Line(n),
				EndLine:   tsutil.EndLine(valueNode),
				Indent:    jsIndent(n, src),
				Params:    jsParamsText(valueNode, src),
				Docstring: jsDocComment(n, src),
			}
			sym.Modifiers = jsModifiers(n, src)
			out = append(out, sym)
		}
		return true
	})
	return out
}

func jsFunctionSymbol(n *sitter.Node, src []byte, className string) (model.Symbol, bool) {
	nameNode := n.ChildByFieldName("name")
	name := tsutil.Text(nameNode, src)
	if name == "" {
		return model.Symbol{}, false
	}
	kind := model.KindFunction
	if className != "" {
		kind = model.KindMethod
		if name == "constructor" {
			kind = model.KindConstructor
		}
	}
	paramsNode := n.ChildByFieldName("parameters")
	returnNode := n.ChildByFieldName("return_type")
	sym := model.Symbol{
		Name:       name,
		Kind:       kind,
		StartLine:  tsutil.Line(n),
		EndLine:    tsutil.EndLine(n),
		Indent:     jsIndent(n, src),
		Params:     jsParamsText(paramsNode, src),
		ReturnType: strings.TrimSpace(strings.TrimPrefix(tsutil.Text(returnNode, src), ":")),
		Docstring:  jsDocComment(n, src),
		Modifiers:  jsModifiers(n, src),
	}
	return sym, true
}

func jsParamsText(fn *sitter.Node, src []byte) string {
	if fn == nil {
		return ""
	}
	p := fn.ChildByFieldName("parameters")
	if p == nil && fn.Type() != "formal_parameters" {
		// arrow function with a single bare identifier param: `x => x+1`
		for i := 0; i < int(fn.ChildCount()); i++ {
			c := fn.Child(i)
			if c.Type() == "identifier" {
				return tsutil.Text(c, src)
			}
		}
		return ""
	}
	if p == nil {
		p = fn
	}
	text := tsutil.Text(p, src)
	return strings.TrimSuffix(strings.TrimPrefix(text, "("), ")")
}

func jsModifiers(n *sitter.Node, src []byte) []string {
	var mods []string
	text := tsutil.Text(n, src)
	if strings.Contains(text, "async ") || strings.HasPrefix(text, "async") {
		mods = append(mods, "async")
	}
	if strings.Contains(text, "static ") {
		mods = append(mods, "static")
	}
	if p := n.Parent(); p != nil && p.Type() == "export_statement" {
		mods = append(mods, "export")
	}
	return mods
}

func jsIndent(n *sitter.Node, src []byte) int {
	line := tsutil.Line(n)
	lines := strings.Split(string(src), "\n")
	if line-1 < 0 || line-1 >= len(lines) {
		return 0
	}
	l := lines[line-1]
	return len(l) - len(strings.TrimLeft(l, " \t"))
}

func jsDocComment(n *sitter.Node, src []byte) string {
	target := n
	if p := n.Parent(); p != nil && p.Type() == "export_statement" {
		target = p
	}
	doc := tsutil.PrecedingComment(target, src, "comment")
	if strings.HasPrefix(doc, "/**") {
		return doc
	}
	return doc
}

func jsEnclosingClassName(n *sitter.Node, src []byte) string {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == "class_declaration" || p.Type() == "class" {
			if name := p.ChildByFieldName("name"); name != nil {
				return tsutil.Text(name, src)
			}
		}
	}
	return ""
}

func findJSClasses(src []byte, parse parseFn) []model.Symbol {
	root, closer, err := parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	var out []model.Symbol
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "class_declaration" && n.Type() != "class" {
			return true
		}
		nameNode := n.ChildByFieldName("name")
		name := tsutil.Text(nameNode, src)
		if name == "" {
			return true
		}
		heritage := tsutil.ChildByType(n, "class_heritage")
		extends, implements := "", ""
		if heritage != nil {
			text := tsutil.Text(heritage, src)
			if idx := strings.Index(text, "implements"); idx >= 0 {
				implements = strings.TrimSpace(text[idx+len("implements"):])
				extends = strings.TrimSpace(strings.TrimPrefix(text[:idx], "extends"))
			} else {
				extends = strings.TrimSpace(strings.TrimPrefix(text, "extends"))
			}
		}
		sym := model.Symbol{
			Name:       name,
			Kind:       model.KindClass,
			StartLine:  tsutil.Line(n),
			EndLine:    tsutil.EndLine(n),
			Indent:     jsIndent(n, src),
			Extends:    extends,
			Implements: implements,
			Docstring:  jsDocComment(n, src),
			Modifiers:  jsModifiers(n, src),
		}
		body := n.ChildByFieldName("body")
		if body != nil {
			for i := 0; i < int(body.ChildCount()); i++ {
				m := body.Child(i)
				if m.Type() == "method_definition" {
					if mn := m.ChildByFieldName("name"); mn != nil {
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

func findJSImports(src []byte, parse parseFn) []model.ImportRecord {
	root, closer, err := parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	var out []model.ImportRecord
	tsutil.Walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "import_statement":
			rec := model.ImportRecord{Type: "esm", Line: tsutil.Line(n)}
			if src2 := tsutil.ChildByType(n, "string"); src2 != nil {
				rec.Module = strings.Trim(tsutil.Text(src2, src), `"'`)
			}
			if clause := tsutil.ChildByType(n, "import_clause"); clause != nil {
				rec.Names = jsImportNames(clause, src)
			}
			out = append(out, rec)
		case "call_expression":
			fn := n.ChildByFieldName("function")
			if fn == nil {
				return true
			}
			txt := tsutil.Text(fn, src)
			args := n.ChildByFieldName("arguments")
			switch txt {
			case "require":
				rec := model.ImportRecord{Type: "cjs", Line: tsutil.Line(n)}
				if args != nil && args.NamedChildCount() > 0 {
					argNode := args.NamedChild(0)
					if argNode.Type() == "string" {
						rec.Module = strings.Trim(tsutil.Text(argNode, src), `"'`)
					} else {
						rec.Module = tsutil.Text(argNode, src)
						rec.IsDynamic = true
					}
				}
				out = append(out, rec)
			case "import":
				rec := model.ImportRecord{Type: "dynamic", IsDynamic: true, Line: tsutil.Line(n)}
				if args != nil && args.NamedChildCount() > 0 {
					argNode := args.NamedChild(0)
					if argNode.Type() == "string" {
						rec.Module = strings.Trim(tsutil.Text(argNode, src), `"'`)
					} else {
						rec.Module = tsutil.Text(argNode, src)
					}
				}
				out = append(out, rec)
			}
		}
		return true
	})
	return out
}

func jsImportNames(clause *sitter.Node, src []byte) []string {
	var names []string
	tsutil.Walk(clause, func(n *sitter.Node) bool {
		switch n.Type() {
		case "identifier":
			names = append(names, tsutil.Text(n, src))
		case "import_specifier":
			if alias := n.ChildByFieldName("alias"); alias != nil {
				names = append(names, tsutil.Text(alias, src))
				return false
			}
			if name := n.ChildByFieldName("name"); name != nil {
				names = append(names, tsutil.Text(name, src))
				return false
			}
		}
		return true
	})
	return names
}

func findJSExports(src []byte, parse parseFn) []model.ExportRecord {
	root, closer, err := parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	var out []model.ExportRecord
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "export_statement" {
			return true
		}
		line := tsutil.Line(n)
		text := tsutil.Text(n, src)
		if strings.Contains(text, " from ") && strings.Contains(text, "{") {
			// re-export: export { x } from './other'
			fromIdx := strings.LastIndex(text, "from")
			module := strings.Trim(strings.TrimSpace(text[fromIdx+4:]), "\"';")
			inner := n.ChildByFieldName("source")
			if inner != nil {
				module = strings.Trim(tsutil.Text(inner, src), `"'`)
			}
			for _, name := range jsExportSpecifierNames(n, src) {
				out = append(out, model.ExportRecord{Name: name, Kind: model.KindVariable, Line: line, IsReExport: true, ReExportFrom: module})
			}
			return false
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			c := n.Child(i)
			switch c.Type() {
			case "function_declaration", "generator_function_declaration":
				if name := c.ChildByFieldName("name"); name != nil {
					out = append(out, model.ExportRecord{Name: tsutil.Text(name, src), Kind: model.KindFunction, Line: line})
				}
			case "class_declaration":
				if name := c.ChildByFieldName("name"); name != nil {
					out = append(out, model.ExportRecord{Name: tsutil.Text(name, src), Kind: model.KindClass, Line: line})
				}
			case "interface_declaration":
				if name := c.ChildByFieldName("name"); name != nil {
					out = append(out, model.ExportRecord{Name: tsutil.Text(name, src), Kind: model.KindInterface, Line: line, IsTypeExport: true})
				}
			case "enum_declaration":
				if name := c.ChildByFieldName("name"); name != nil {
					out = append(out, model.ExportRecord{Name: tsutil.Text(name, src), Kind: model.KindEnum, Line: line, IsTypeExport: true})
				}
			case "type_alias_declaration":
				if name := c.ChildByFieldName("name"); name != nil {
					out = append(out, model.ExportRecord{Name: tsutil.Text(name, src), Kind: model.KindType, Line: line, IsTypeExport: true})
				}
			case "lexical_declaration", "variable_declaration":
				declKind := strings.Fields(tsutil.Text(c, src))[0]
				for _, decl := range tsutil.FindAll(c, "variable_declarator") {
					nameNode := decl.ChildByFieldName("name")
					if nameNode == nil {
						continue
					}
					rec := model.ExportRecord{Name: tsutil.Text(nameNode, src), Kind: model.KindVariable, Line: line, DeclKind: declKind}
					if typeNode := nameNode.NextSibling(); typeNode != nil && typeNode.Type() == "type_annotation" {
						rec.TypeAnnotation = strings.TrimPrefix(tsutil.Text(typeNode, src), ":")
					}
					out = append(out, rec)
				}
			case "identifier":
				// export default name;
				out = append(out, model.ExportRecord{Name: tsutil.Text(c, src), Kind: model.KindVariable, Line: line})
			}
		}
		return true
	})

	// CJS: module.exports = {...} / module.exports.x = ...
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "assignment_expression" {
			return true
		}
		left := n.ChildByFieldName("left")
		if left == nil {
			return true
		}
		leftText := tsutil.Text(left, src)
		switch {
		case leftText == "module.exports":
			right := n.ChildByFieldName("right")
			if right != nil && right.Type() == "object" {
				for i := 0; i < int(right.NamedChildCount()); i++ {
					prop := right.NamedChild(i)
					if key := prop.ChildByFieldName("key"); key != nil {
						out = append(out, model.ExportRecord{Name: tsutil.Text(key, src), Kind: model.KindVariable, Line: tsutil.Line(n)})
					}
				}
			}
		case strings.HasPrefix(leftText, "module.exports."):
			name := strings.TrimPrefix(leftText, "module.exports.")
			out = append(out, model.ExportRecord{Name: name, Kind: model.KindVariable, Line: tsutil.Line(n)})
		}
		return true
	})
	return out
}

func jsExportSpecifierNames(n *sitter.Node, src []byte) []string {
	var names []string
	for _, spec := range tsutil.FindAll(n, "export_specifier") {
		if alias := spec.ChildByFieldName("alias"); alias != nil {
			names = append(names, tsutil.Text(alias, src))
			continue
		}
		if name := spec.ChildByFieldName("name"); name != nil {
			names = append(names, tsutil.Text(name, src))
		}
	}
	return names
}

func findJSCalls(src []byte, parse parseFn) []model.CallRecord {
	root, closer, err := parse(src)
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
		case "call_expression":
			fn := n.ChildByFieldName("function")
			if fn == nil {
				return true
			}
			rec := model.CallRecord{Line: tsutil.Line(n), Column: tsutil.Column(n)}
			rec.Content = lineContent(rec.Line)
			args := n.ChildByFieldName("arguments")
			rec.ArgCount = tsutil.ArgCount(args)

			switch fn.Type() {
			case "member_expression":
				obj := fn.ChildByFieldName("object")
				prop := fn.ChildByFieldName("property")
				rec.Name = tsutil.Text(prop, src)
				rec.Receiver = tsutil.Text(obj, src)
				rec.IsMethod = true
				full := rec.Receiver + "." + rec.Name
				if jsBuiltins[full] {
					return true
				}
			case "identifier":
				rec.Name = tsutil.Text(fn, src)
			case "new_expression":
				// handled separately below
			default:
				if n.Type() == "new_expression" {
					break
				}
				return true
			}
			if fn.Type() == "identifier" && strings.Contains(tsutil.Text(n, src), "?.") {
				rec.Uncertain = true
			}
			if idx, ok := callbackPositions[rec.Name]; ok && args != nil && idx < int(args.NamedChildCount()) {
				if isFunctionLikeArg(args.NamedChild(idx)) {
					rec.IsFunctionReference = true
					rec.IsPotentialCallback = true
				}
			}
			if rec.Name != "" {
				out = append(out, rec)
			}
		case "new_expression":
			ctor := n.ChildByFieldName("constructor")
			if ctor == nil {
				return true
			}
			rec := model.CallRecord{
				Line:         tsutil.Line(n),
				Column:       tsutil.Column(n),
				Content:      lineContent(tsutil.Line(n)),
				Name:         tsutil.Text(ctor, src),
				ResolvedName: tsutil.Text(ctor, src),
			}
			out = append(out, rec)
		case "jsx_self_closing_element", "jsx_opening_element":
			nameNode := n.ChildByFieldName("name")
			name := tsutil.Text(nameNode, src)
			if name == "" {
				return true
			}
			firstRune := []rune(name)[0]
			if !(firstRune >= 'A' && firstRune <= 'Z') && !strings.Contains(name, ".") {
				return true
			}
			out = append(out, model.CallRecord{
				Name:    name,
				Line:    tsutil.Line(n),
				Column:  tsutil.Column(n),
				Content: lineContent(tsutil.Line(n)),
			})
		case "jsx_attribute":
			nameNode := n.NamedChild(0)
			if nameNode == nil {
				return true
			}
			propName := tsutil.Text(nameNode, src)
			if !strings.HasPrefix(propName, "on") {
				return true
			}
			valueNode := n.NamedChild(1)
			if valueNode == nil {
				return true
			}
			if valueNode.Type() == "jsx_expression" && valueNode.NamedChildCount() > 0 {
				expr := valueNode.NamedChild(0)
				rec := model.CallRecord{
					Line:                tsutil.Line(n),
					Column:              tsutil.Column(n),
					Content:             lineContent(tsutil.Line(n)),
					IsFunctionReference: true,
					IsPotentialCallback: true,
				}
				switch expr.Type() {
				case "identifier":
					rec.Name = tsutil.Text(expr, src)
				case "member_expression":
					obj := expr.ChildByFieldName("object")
					prop := expr.ChildByFieldName("property")
					rec.Name = tsutil.Text(prop, src)
					rec.Receiver = tsutil.Text(obj, src)
				default:
					return true
				}
				out = append(out, rec)
			}
		}
		return true
	})
	return out
}

func findJSUsages(src []byte, name string, parse parseFn) []model.Usage {
	root, closer, err := parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	lines := strings.Split(string(src), "\n")
	var out []model.Usage
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "identifier" && n.Type() != "type_identifier" && n.Type() != "property_identifier" {
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
			case "new_expression":
				kind = model.UsageCall
			case "function_declaration", "class_declaration", "method_definition":
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

func jsStringAndCommentRanges(src []byte, parse parseFn) ([]model.LineRange, []model.LineRange) {
	root, closer, err := parse(src)
	if err != nil {
		return nil, nil
	}
	defer closer()

	var strs, comments []model.LineRange
	tsutil.Walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "string":
			strs = append(strs, model.LineRange{Start: tsutil.Line(n), End: tsutil.EndLine(n)})
			return false
		case "template_string":
			// Mark only the literal fragments as string ranges; a
			// `${...}` substitution is code and must stay walkable so
			// calls inside it are still found (spec §4.2 rule 6 /
			// §4.5 step 6).
			for i := 0; i < int(n.ChildCount()); i++ {
				c := n.Child(i)
				if c.Type() == "string_fragment" {
					strs = append(strs, model.LineRange{Start: tsutil.Line(c), End: tsutil.EndLine(c)})
				}
			}
		case "comment":
			comments = append(comments, model.LineRange{Start: tsutil.Line(n), End: tsutil.EndLine(n)})
		}
		return true
	})
	return strs, comments
}
