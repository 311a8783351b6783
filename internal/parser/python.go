package parser

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/mleoca/ucn/internal/model"
	"github.com/mleoca/ucn/internal/tsutil"
)

var pyEntryLike = map[string]bool{
	"__init__": true, "__call__": true, "__enter__": true, "__exit__": true,
}

type pythonAdapter struct{}

func newPythonAdapter() *pythonAdapter { return &pythonAdapter{} }

func (a *pythonAdapter) Language() model.Language { return model.LangPython }

func (a *pythonAdapter) parse(src []byte) (*sitter.Node, func(), error) {
	return tsutil.Parse(context.Background(), src, python.GetLanguage())
}

func (a *pythonAdapter) FindFunctions(src []byte) []model.Symbol {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	var out []model.Symbol
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "function_definition" {
			return true
		}
		nameNode := n.ChildByFieldName("name")
		name := tsutil.Text(nameNode, src)
		if name == "" {
			return true
		}
		className := pyEnclosingClassName(n, src)
		kind := model.KindFunction
		if className != "" {
			kind = model.KindMethod
			if name == "__init__" {
				kind = model.KindConstructor
			}
		}
		params := n.ChildByFieldName("parameters")
		returnType := n.ChildByFieldName("return_type")
		sym := model.Symbol{
			Name:       name,
			Kind:       kind,
			StartLine:  tsutil.Line(n),
			EndLine:    tsutil.EndLine(n),
			Indent:     pyIndent(n, src),
			Params:     strings.TrimSuffix(strings.TrimPrefix(tsutil.Text(params, src), "("), ")"),
			ReturnType: strings.TrimPrefix(tsutil.Text(returnType, src), "->"),
			ClassName:  className,
			IsMethod:   className != "",
			Docstring:  pyDocstring(n, src),
			Decorators: pyDecorators(n, src),
			IsExported: !strings.HasPrefix(name, "_"),
		}
		if pyEntryLike[name] {
			sym.Modifiers = append(sym.Modifiers, "entry-point")
		}
		out = append(out, sym)
		return true
	})
	return out
}

func pyEnclosingClassName(n *sitter.Node, src []byte) string {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == "class_definition" {
			if name := p.ChildByFieldName("name"); name != nil {
				return tsutil.Text(name, src)
			}
		}
	}
	return ""
}

func pyIndent(n *sitter.Node, src []byte) int {
	lines := strings.Split(string(src), "\n")
	line := tsutil.Line(n)
	if line-1 < 0 || line-1 >= len(lines) {
		return 0
	}
	l := lines[line-1]
	return len(l) - len(strings.TrimLeft(l, " \t"))
}

// pyDocstring returns the string literal that is the first statement of a
// function/class body, Python's actual docstring convention (unlike JS/Java
// this is a body statement, not a preceding comment).
func pyDocstring(n *sitter.Node, src []byte) string {
	body := n.ChildByFieldName("body")
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}
	first := body.NamedChild(0)
	if first.Type() != "expression_statement" {
		return ""
	}
	expr := first.NamedChild(0)
	if expr == nil || expr.Type() != "string" {
		return ""
	}
	return tsutil.Text(expr, src)
}

// pyDecorators returns the raw decorator expressions immediately preceding a
// function/class definition, ordered.
func pyDecorators(n *sitter.Node, src []byte) []string {
	parent := n.Parent()
	target := n
	if parent != nil && parent.Type() == "decorated_definition" {
		target = parent
	} else {
		return nil
	}
	var decs []string
	for i := 0; i < int(target.ChildCount()); i++ {
		c := target.Child(i)
		if c.Type() == "decorator" {
			decs = append(decs, strings.TrimPrefix(tsutil.Text(c, src), "@"))
		}
	}
	return decs
}

func (a *pythonAdapter) FindClasses(src []byte) []model.Symbol {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	var out []model.Symbol
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "class_definition" {
			return true
		}
		nameNode := n.ChildByFieldName("name")
		name := tsutil.Text(nameNode, src)
		if name == "" {
			return true
		}
		sym := model.Symbol{
			Name:       name,
			Kind:       model.KindClass,
			StartLine:  tsutil.Line(n),
			EndLine:    tsutil.EndLine(n),
			Indent:     pyIndent(n, src),
			Docstring:  pyDocstring(n, src),
			Decorators: pyDecorators(n, src),
			IsExported: !strings.HasPrefix(name, "_"),
		}
		if superclasses := n.ChildByFieldName("superclasses"); superclasses != nil {
			sym.Extends = strings.TrimSuffix(strings.TrimPrefix(tsutil.Text(superclasses, src), "("), ")")
		}
		body := n.ChildByFieldName("body")
		if body != nil {
			for i := 0; i < int(body.NamedChildCount()); i++ {
				c := body.NamedChild(i)
				def := c
				if c.Type() == "decorated_definition" {
					def = tsutil.ChildByType(c, "function_definition")
				}
				if def != nil && def.Type() == "function_definition" {
					if mn := def.ChildByFieldName("name"); mn != nil {
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

func (a *pythonAdapter) FindImports(src []byte) []model.ImportRecord {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	var out []model.ImportRecord
	tsutil.Walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "import_statement":
			for i := 0; i < int(n.NamedChildCount()); i++ {
				c := n.NamedChild(i)
				module, alias := pyDottedNameAndAlias(c, src)
				if module == "" {
					continue
				}
				out = append(out, model.ImportRecord{Module: module, Names: []string{firstNonEmpty(alias, module)}, Type: "mod", Line: tsutil.Line(n)})
			}
		case "import_from_statement":
			moduleNode := n.ChildByFieldName("module_name")
			module := tsutil.Text(moduleNode, src)
			var names []string
			for i := 0; i < int(n.NamedChildCount()); i++ {
				c := n.NamedChild(i)
				if c == moduleNode {
					continue
				}
				if c.Type() == "dotted_name" || c.Type() == "identifier" || c.Type() == "aliased_import" || c.Type() == "wildcard_import" {
					_, alias := pyDottedNameAndAlias(c, src)
					if c.Type() == "wildcard_import" {
						names = append(names, "*")
						continue
					}
					name := tsutil.Text(c, src)
					if c.Type() == "aliased_import" {
						name = alias
					}
					names = append(names, name)
				}
			}
			out = append(out, model.ImportRecord{Module: module, Names: names, Type: "from-import", Line: tsutil.Line(n)})
		}
		return true
	})
	return out
}

func pyDottedNameAndAlias(n *sitter.Node, src []byte) (module, alias string) {
	switch n.Type() {
	case "dotted_name", "identifier", "relative_import":
		return tsutil.Text(n, src), ""
	case "aliased_import":
		name := n.ChildByFieldName("name")
		aliasNode := n.ChildByFieldName("alias")
		return tsutil.Text(name, src), tsutil.Text(aliasNode, src)
	}
	return "", ""
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func (a *pythonAdapter) FindExports(src []byte) []model.ExportRecord {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	var out []model.ExportRecord
	for i := 0; i < int(root.NamedChildCount()); i++ {
		n := root.NamedChild(i)
		def := n
		if n.Type() == "decorated_definition" {
			def = n.NamedChild(n.NamedChildCount() - 1)
		}
		if def == nil {
			continue
		}
		switch def.Type() {
		case "function_definition":
			if name := def.ChildByFieldName("name"); name != nil {
				n := tsutil.Text(name, src)
				if !strings.HasPrefix(n, "_") {
					out = append(out, model.ExportRecord{Name: n, Kind: model.KindFunction, Line: tsutil.Line(def)})
				}
			}
		case "class_definition":
			if name := def.ChildByFieldName("name"); name != nil {
				n := tsutil.Text(name, src)
				if !strings.HasPrefix(n, "_") {
					out = append(out, model.ExportRecord{Name: n, Kind: model.KindClass, Line: tsutil.Line(def)})
				}
			}
		}
	}
	return out
}

func (a *pythonAdapter) FindCallsInCode(src []byte) []model.CallRecord {
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
		if n.Type() != "call" {
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
		case "attribute":
			obj := fn.ChildByFieldName("object")
			attr := fn.ChildByFieldName("attribute")
			rec.Name = tsutil.Text(attr, src)
			rec.Receiver = tsutil.Text(obj, src)
			rec.IsMethod = true
			if obj.Type() == "attribute" {
				innerObj := obj.ChildByFieldName("object")
				innerAttr := obj.ChildByFieldName("attribute")
				if tsutil.Text(innerObj, src) == "self" {
					rec.SelfAttribute = tsutil.Text(innerAttr, src)
				}
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

func (a *pythonAdapter) FindUsagesInCode(src []byte, name string) []model.Usage {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	lines := strings.Split(string(src), "\n")
	var out []model.Usage
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "identifier" {
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
		if parent := n.Parent(); parent != nil {
			switch parent.Type() {
			case "call":
				kind = model.UsageCall
			case "function_definition", "class_definition":
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

func (a *pythonAdapter) StringAndCommentRanges(src []byte) ([]model.LineRange, []model.LineRange) {
	root, closer, err := a.parse(src)
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
		case "comment":
			comments = append(comments, model.LineRange{Start: tsutil.Line(n), End: tsutil.EndLine(n)})
		}
		return true
	})
	return strs, comments
}

// FindInstanceAttributeTypes implements spec §4.2's Python this-tracking
// table: for every class, scan __init__ (and @dataclass field annotations)
// for `self.x = T(...)` style assignments and record className -> T.
func (a *pythonAdapter) FindInstanceAttributeTypes(src []byte) model.ClassAttrTypes {
	root, closer, err := a.parse(src)
	if err != nil {
		return nil
	}
	defer closer()

	result := model.ClassAttrTypes{}
	tsutil.Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "class_definition" {
			return true
		}
		className := tsutil.Text(n.ChildByFieldName("name"), src)
		if className == "" {
			return true
		}
		attrs := map[string]string{}
		isDataclass := false
		for _, dec := range pyDecorators(n, src) {
			if strings.HasPrefix(dec, "dataclass") {
				isDataclass = true
			}
		}

		body := n.ChildByFieldName("body")
		for _, fn := range tsutil.FindAll(body, "function_definition") {
			if tsutil.Text(fn.ChildByFieldName("name"), src) != "__init__" {
				continue
			}
			for _, assign := range tsutil.FindAll(fn, "assignment") {
				left := assign.ChildByFieldName("left")
				right := assign.ChildByFieldName("right")
				if left == nil || right == nil || left.Type() != "attribute" {
					continue
				}
				obj := left.ChildByFieldName("object")
				if tsutil.Text(obj, src) != "self" {
					continue
				}
				attr := tsutil.Text(left.ChildByFieldName("attribute"), src)
				if t := pyResolveInitValueType(right, src); t != "" {
					attrs[attr] = t
				}
			}
		}
		if isDataclass {
			for i := 0; i < int(body.NamedChildCount()); i++ {
				stmt := body.NamedChild(i)
				if stmt.Type() != "expression_statement" {
					continue
				}
				assign := stmt.NamedChild(0)
				if assign == nil || assign.Type() != "assignment" {
					continue
				}
				left := assign.ChildByFieldName("left")
				typeNode := assign.ChildByFieldName("type")
				if left == nil || typeNode == nil {
					continue
				}
				attrs[tsutil.Text(left, src)] = tsutil.Text(typeNode, src)
			}
		}
		if len(attrs) > 0 {
			result[className] = attrs
		}
		return true
	})
	return result
}

// pyResolveInitValueType resolves the class name of the first non-literal
// call-expression target in an __init__ assignment's right-hand side,
// unwrapping conditional (`x if p else T()`), or/and chains (`x or T()`),
// and parenthesized expressions, per spec §4.2.
func pyResolveInitValueType(n *sitter.Node, src []byte) string {
	switch n.Type() {
	case "parenthesized_expression":
		if n.NamedChildCount() > 0 {
			return pyResolveInitValueType(n.NamedChild(0), src)
		}
	case "conditional_expression":
		// `x if p else T()`: consequence is the first named child, the
		// else-branch is the last.
		if n.NamedChildCount() > 0 {
			if t := pyResolveInitValueType(n.NamedChild(0), src); t != "" {
				return t
			}
		}
		if n.NamedChildCount() > 2 {
			return pyResolveInitValueType(n.NamedChild(n.NamedChildCount()-1), src)
		}
	case "boolean_operator":
		left := n.ChildByFieldName("left")
		right := n.ChildByFieldName("right")
		if t := pyResolveInitValueType(left, src); t != "" {
			return t
		}
		return pyResolveInitValueType(right, src)
	case "call":
		fn := n.ChildByFieldName("function")
		if fn == nil {
			return ""
		}
		if fn.Type() == "identifier" {
			name := tsutil.Text(fn, src)
			if len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z' {
				return name
			}
		}
	case "integer", "float", "string", "true", "false", "none":
		return ""
	}
	return ""
}
