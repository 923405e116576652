/*
 * Code taken and changed from https://github.com/oracle/coherence-operator/blob/v3.2.5/docgen/main.go
 *
 * Copyright (c) 2020 Oracle and/or its affiliates.
 * Licensed under the Universal Permissive License v 1.0 as shown at
 * http://oss.oracle.com/licenses/upl.
 */

// Command apidocgen writes the AsciiDoc reference of the wizard state file from the Go types
// that define it.
package main

import (
	"fmt"
	"go/ast"
	"go/doc"
	"go/parser"
	"go/token"
	"io"
	"os"
	"reflect"
	"strings"
)

const firstParagraph = `
= Cache Console State File Reference

A wizard state file holds one cache configuration being built or edited. It is written in JSON
or YAML and consumed by the compile and submit commands.

TIP: This document was generated from comments in the Go code in the api/ directory.`

type Field struct {
	Name, Doc, Type string
	Mandatory       bool
}

type StructType struct {
	Name, Doc string
	Fields    []Field
}

type Const struct {
	Name, Doc, Value string
}

type StringType struct {
	Name, Doc string
	Consts    []Const
}

func main() {
	if err := writeAPIDocs(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writeAPIDocs(w io.Writer, paths []string) error {
	var types []*doc.Type
	for _, p := range paths {
		pkg, err := docFrom(p)
		if err != nil {
			return err
		}
		types = append(types, pkg.Types...)
	}

	g := &generator{w: w, links: map[string]string{}}
	for _, t := range types {
		g.links[t.Name] = fmt.Sprintf("<<%s,%s>>", t.Name, t.Name)
	}

	g.printf("%s\n", firstParagraph)
	g.printContentTable(types)
	g.printStructs(g.structTypes(types))
	g.printStrings(stringTypes(types))
	return g.err
}

type generator struct {
	w     io.Writer
	links map[string]string
	err   error
}

func (g *generator) printf(format string, args ...interface{}) {
	if g.err != nil {
		return
	}
	_, g.err = fmt.Fprintf(g.w, format, args...)
}

func docFrom(filePath string) (*doc.Package, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	apkg, _ := ast.NewPackage(fset, map[string]*ast.File{filePath: f}, nil, nil) //nolint:staticcheck
	return doc.New(apkg, "", 0), nil
}

func (g *generator) structTypes(types []*doc.Type) []StructType {
	var out []StructType
	for _, t := range types {
		st, ok := t.Decl.Specs[0].(*ast.TypeSpec).Type.(*ast.StructType)
		if !ok {
			continue
		}
		out = append(out, StructType{Name: t.Name, Doc: fmtRawDoc(t.Doc), Fields: g.fields(st)})
	}
	return out
}

func stringTypes(types []*doc.Type) []StringType {
	var out []StringType
	for _, t := range types {
		if ident, ok := t.Decl.Specs[0].(*ast.TypeSpec).Type.(*ast.Ident); !ok || ident.Name != "string" {
			continue
		}
		var cs []Const
		for _, c := range t.Consts {
			for _, spec := range c.Decl.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok || len(vs.Values) == 0 {
					continue
				}
				lit, ok := vs.Values[0].(*ast.BasicLit)
				if !ok {
					continue
				}
				cs = append(cs, Const{Name: vs.Names[0].Name, Doc: fmtRawDoc(vs.Doc.Text()), Value: lit.Value})
			}
		}
		out = append(out, StringType{Name: t.Name, Doc: fmtRawDoc(t.Doc), Consts: cs})
	}
	return out
}

func fmtRawDoc(rawDoc string) string {
	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}
	for _, line := range strings.Split(rawDoc, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "+"): // markers
		default:
			current = append(current, line)
		}
	}
	flush()

	out := strings.Join(paragraphs, " +\n")
	return strings.ReplaceAll(out, "|", "\\|")
}

func (g *generator) fields(st *ast.StructType) []Field {
	var fs []Field
	for _, f := range st.Fields.List {
		name := fieldName(f)
		if name == "-" {
			continue
		}
		fs = append(fs, Field{
			Name:      name,
			Doc:       fmtRawDoc(f.Doc.Text()),
			Type:      g.fieldType(f.Type),
			Mandatory: fieldRequired(f),
		})
	}
	return fs
}

func (g *generator) fieldType(typ ast.Expr) string {
	switch t := typ.(type) {
	case *ast.Ident:
		return g.link(t.Name)
	case *ast.StarExpr:
		return "&#42;" + g.fieldType(t.X)
	case *ast.SelectorExpr:
		return t.X.(*ast.Ident).Name + "." + t.Sel.Name
	case *ast.ArrayType:
		return "[]" + g.fieldType(t.Elt)
	case *ast.MapType:
		return "map[" + g.fieldType(t.Key) + "]" + g.fieldType(t.Value)
	}
	return ""
}

func (g *generator) link(typeName string) string {
	if l, ok := g.links[typeName]; ok {
		return l
	}
	return typeName
}

func structTag(f *ast.Field, key string) string {
	if f.Tag == nil {
		return ""
	}
	return reflect.StructTag(f.Tag.Value[1 : len(f.Tag.Value)-1]).Get(key)
}

// fieldRequired reports false for fields tagged omitempty or marked +optional.
func fieldRequired(f *ast.Field) bool {
	if strings.Contains(structTag(f, "json"), "omitempty") {
		return false
	}
	for _, line := range strings.Split(f.Doc.Text(), "\n") {
		if strings.TrimSpace(line) == "+optional" {
			return false
		}
	}
	return true
}

// fieldName returns the key of the field in a state file, or "-" when it is not written.
func fieldName(f *ast.Field) string {
	tag := strings.Split(structTag(f, "json"), ",")[0]
	if tag != "" {
		return tag
	}
	if len(f.Names) > 0 {
		return f.Names[0].Name
	}
	return "-"
}

func (g *generator) printContentTable(types []*doc.Type) {
	g.printf("\n=== Table of Contents\n")
	for _, t := range types {
		g.printf("* <<%s,%s>>\n", t.Name, t.Name)
	}
}

func (g *generator) printStructs(structs []StructType) {
	for _, t := range structs {
		if len(t.Fields) == 0 {
			continue
		}
		g.printf("\n=== %s\n\n%s\n\n", t.Name, t.Doc)
		g.printf("[cols=\"4,8,4,2\"options=\"header\"]\n|===\n| Field | Description | Type | Required\n")
		for _, f := range t.Fields {
			g.printf("m| %s | %s m| %s | %t\n", f.Name, orBlank(f.Doc), f.Type, f.Mandatory)
		}
		g.printf("|===\n\n<<Table of Contents,Back to TOC>>\n")
	}
}

func (g *generator) printStrings(types []StringType) {
	for _, t := range types {
		g.printf("\n=== %s\n\n%s\n\n", t.Name, t.Doc)
		g.printf("[cols=\"5,10\"options=\"header\"]\n|===\n| Value | Description\n")
		for _, c := range t.Consts {
			g.printf("m| %s | %s\n", c.Value, orBlank(c.Doc))
		}
		g.printf("|===\n\n<<Table of Contents,Back to TOC>>\n")
	}
}

func orBlank(s string) string {
	if s == "" {
		return "&#160;"
	}
	return s
}
