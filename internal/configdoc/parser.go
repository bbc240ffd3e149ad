// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package configdoc

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"grimm.is/confhelp/internal/errors"
	"grimm.is/confhelp/internal/logging"
)

// tagKeys are the struct tags consulted for a property name, in priority order.
var tagKeys = []string{"yaml", "hcl", "json"}

// Parser extracts struct definitions and their documentation from Go source files.
type Parser struct {
	fset    *token.FileSet
	pkgName string
	structs map[string]*ParsedStruct
	order   []string
	log     *logging.Logger
}

// NewParser creates a new parser.
func NewParser() *Parser {
	return &Parser{
		fset:    token.NewFileSet(),
		structs: make(map[string]*ParsedStruct),
		log:     logging.WithComponent("configdoc"),
	}
}

// ParseDir parses all Go files in a directory and extracts struct definitions.
// It may be called for several directories; later definitions replace earlier
// ones of the same name.
func (p *Parser) ParseDir(dir string) error {
	pkgs, err := parser.ParseDir(p.fset, dir, nil, parser.ParseComments)
	if err != nil {
		return errors.Attr(errors.Wrap(err, errors.KindIO, "parse Go sources"), "dir", dir)
	}

	names := make([]string, 0, len(pkgs))
	for name := range pkgs {
		// Skip test packages
		if strings.HasSuffix(name, "_test") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return errors.Attr(errors.New(errors.KindNotFound, "no Go package found"), "dir", dir)
	}

	for _, name := range names {
		if p.pkgName == "" {
			p.pkgName = name
		}
		p.extractStructs(pkgs[name])
	}
	p.log.Debug("parsed directory", "dir", dir, "structs", len(p.structs))
	return nil
}

// PackageName returns the name of the first package parsed.
func (p *Parser) PackageName() string {
	return p.pkgName
}

// extractStructs records every struct type of a package in source order.
func (p *Parser) extractStructs(pkg *ast.Package) {
	files := make([]string, 0, len(pkg.Files))
	for filename := range pkg.Files {
		files = append(files, filename)
	}
	sort.Strings(files)

	for _, filename := range files {
		for _, decl := range pkg.Files[filename].Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				structType, ok := typeSpec.Type.(*ast.StructType)
				if !ok {
					continue
				}

				// A lone declaration carries its doc on the GenDecl.
				doc := typeSpec.Doc
				if doc == nil {
					doc = genDecl.Doc
				}

				parsed := p.parseStruct(typeSpec.Name.Name, structType, doc)
				parsed.SourceFile = filepath.Base(filename)
				if _, seen := p.structs[parsed.Name]; !seen {
					p.order = append(p.order, parsed.Name)
				}
				p.structs[parsed.Name] = parsed
			}
		}
	}
}

// parseStruct parses a struct definition into a ParsedStruct.
func (p *Parser) parseStruct(name string, s *ast.StructType, docGroup *ast.CommentGroup) *ParsedStruct {
	doc := extractDocComment(docGroup)
	parsed := &ParsedStruct{
		Name:       name,
		Doc:        cleanDescription(stripTypeName(doc, name)),
		Annotation: parseAnnotations(doc),
	}

	if s.Fields == nil {
		return parsed
	}

	for _, field := range s.Fields.List {
		if len(field.Names) == 0 {
			pf := p.parseField(field, typeName(field.Type))
			pf.Embedded = true
			if !pf.Tag.Skip {
				parsed.Fields = append(parsed.Fields, pf)
			}
			continue
		}

		for _, ident := range field.Names {
			if !ident.IsExported() {
				continue
			}
			pf := p.parseField(field, ident.Name)
			if !pf.Tag.Skip {
				parsed.Fields = append(parsed.Fields, pf)
			}
		}
	}

	return parsed
}

// parseField parses a struct field into a ParsedField.
func (p *Parser) parseField(field *ast.Field, name string) ParsedField {
	pf := ParsedField{
		Name:   name,
		GoType: typeToString(field.Type),
		Expr:   field.Type,
		Doc:    extractDocComment(field.Doc),
	}

	// Also include inline comments, as a separate line.
	if field.Comment != nil {
		inlineDoc := extractDocComment(field.Comment)
		if pf.Doc == "" {
			pf.Doc = inlineDoc
		} else if inlineDoc != "" {
			pf.Doc = pf.Doc + "\n" + inlineDoc
		}
	}

	tag := ""
	if field.Tag != nil {
		tag = strings.Trim(field.Tag.Value, "`")
	}
	pf.Tag = parseTag(reflect.StructTag(tag), name)
	if len(field.Names) == 0 {
		// Embedded structs are flattened unless a tag gives them a key.
		if _, named := lookupTag(reflect.StructTag(tag)); !named {
			pf.Tag.Inline = true
		}
	}

	pf.Annotation = parseAnnotations(pf.Doc)
	pf.Doc = cleanDescription(pf.Doc)
	return pf
}

func lookupTag(tag reflect.StructTag) (string, bool) {
	for _, key := range tagKeys {
		if v, ok := tag.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// parseTag resolves the property name of a field. Untagged fields use the
// lowercased Go name, as yaml.v3 does.
func parseTag(tag reflect.StructTag, goName string) FieldTag {
	value, ok := lookupTag(tag)
	if !ok {
		return FieldTag{Name: strings.ToLower(goName)}
	}
	if value == "-" {
		return FieldTag{Skip: true}
	}

	parts := strings.Split(value, ",")
	ft := FieldTag{Name: parts[0]}
	for _, part := range parts[1:] {
		switch part {
		case "inline", "squash":
			ft.Inline = true
		case "remain":
			// Leftover HCL bodies have no documented shape.
			ft.Skip = true
		}
	}
	if ft.Name == "" && !ft.Inline {
		ft.Name = strings.ToLower(goName)
	}
	return ft
}

// parseAnnotations extracts @-annotations from doc comments.
func parseAnnotations(doc string) Annotation {
	var ann Annotation
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "@") {
			continue
		}

		key, val, _ := strings.Cut(strings.TrimPrefix(line, "@"), ":")
		val = strings.TrimSpace(val)
		switch strings.TrimSpace(key) {
		case "abstract":
			ann.Abstract = true
		case "type":
			ann.Type = val
		case "type-label":
			ann.TypeLabel = val
		case "subtype-of":
			ann.SubtypeOf = val
		}
	}
	return ann
}

// extractDocComment extracts clean doc text from a comment group.
func extractDocComment(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	return strings.TrimSpace(cg.Text())
}

// stripTypeName turns "Server is the ..." into "The ...". Other sentences
// are kept as written.
func stripTypeName(doc, name string) string {
	for _, verb := range []string{" is ", " are "} {
		rest, ok := strings.CutPrefix(doc, name+verb)
		if ok && rest != "" {
			return strings.ToUpper(rest[:1]) + rest[1:]
		}
	}
	return doc
}

// typeToString converts an AST type expression to a string.
func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + typeToString(t.X)
	case *ast.ArrayType:
		return "[]" + typeToString(t.Elt)
	case *ast.MapType:
		return "map[" + typeToString(t.Key) + "]" + typeToString(t.Value)
	case *ast.SelectorExpr:
		return typeToString(t.X) + "." + t.Sel.Name
	case *ast.InterfaceType:
		return "interface{}"
	default:
		return "unknown"
	}
}

// typeName returns the bare type name of an embedded field.
func typeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return typeName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	default:
		return typeToString(expr)
	}
}

// GetStruct returns a parsed struct by name.
func (p *Parser) GetStruct(name string) *ParsedStruct {
	return p.structs[name]
}

// GetAllStructs returns all parsed structs in declaration order.
func (p *Parser) GetAllStructs() []*ParsedStruct {
	all := make([]*ParsedStruct, 0, len(p.order))
	for _, name := range p.order {
		all = append(all, p.structs[name])
	}
	return all
}

// cleanDescription removes annotation lines from description and joins
// source-wrapped lines. Blank lines still separate paragraphs.
func cleanDescription(doc string) string {
	var paras []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			paras = append(paras, strings.Join(cur, " "))
			cur = nil
		}
	}
	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "@") {
			continue
		}
		if trimmed == "" {
			flush()
			continue
		}
		cur = append(cur, trimmed)
	}
	flush()
	return strings.Join(paras, "\n\n")
}
