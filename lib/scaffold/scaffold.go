// Package scaffold derives starter table configurations from Go struct
// declarations.
package scaffold

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/pthm/elemental"
)

// ErrTypeNotFound is returned when no struct of the requested name exists.
var ErrTypeNotFound = errors.New("scaffold: struct type not found")

// Options configures the scaffolder.
type Options struct {
	DryRun bool
}

// Scaffolder reads Go packages and builds table configs for their structs.
type Scaffolder struct {
	opts Options
	fset *token.FileSet
}

// New creates a new scaffolder.
func New(opts Options) *Scaffolder {
	return &Scaffolder{
		opts: opts,
		fset: token.NewFileSet(),
	}
}

// Columns builds a table config for typeName declared in the package at
// dir. See (*Scaffolder).Columns.
func Columns(dir, typeName string) (elemental.TableConfig, error) {
	return New(Options{}).Columns(dir, typeName)
}

// FieldInfo describes one exported struct field.
type FieldInfo struct {
	Name      string
	Type      string
	Attribute string // column attribute, from the json/yaml tag or snake_case name
	Exclude   bool   // tagged "-"
}

// Columns parses the package at dir and returns a config with one column per
// exported field of typeName. An "id" column is moved first and made
// sortable; time.Time fields become datetime columns and bools boolean
// columns.
func (s *Scaffolder) Columns(dir, typeName string) (elemental.TableConfig, error) {
	st, err := s.findStruct(dir, typeName)
	if err != nil {
		return elemental.TableConfig{}, err
	}

	var cfg elemental.TableConfig
	for _, f := range s.fields(st) {
		if f.Exclude {
			continue
		}
		col := elemental.Column{Attribute: f.Attribute, Type: columnType(f.Type)}
		if f.Attribute == "id" {
			col.Sort = elemental.Sort{Enabled: true}
			cfg.Columns = append([]elemental.Column{col}, cfg.Columns...)
			continue
		}
		cfg.Columns = append(cfg.Columns, col)
	}
	cfg.Rows.IDPrefix = snakeCase(typeName)
	return cfg, nil
}

// Structs lists the struct types declared in the package at dir, sorted.
func (s *Scaffolder) Structs(dir string) ([]string, error) {
	pkgs, err := s.parse(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, pkg := range pkgs {
		for _, file := range pkg.Files {
			eachStruct(file, func(name string, _ *ast.StructType) bool {
				names = append(names, name)
				return true
			})
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *Scaffolder) parse(dir string) (map[string]*ast.Package, error) {
	return parser.ParseDir(s.fset, dir, func(info os.FileInfo) bool {
		return !strings.HasSuffix(info.Name(), "_test.go")
	}, 0)
}

// findStruct locates the declaration of typeName.
func (s *Scaffolder) findStruct(dir, typeName string) (*ast.StructType, error) {
	pkgs, err := s.parse(dir)
	if err != nil {
		return nil, err
	}
	for _, pkg := range pkgs {
		for _, file := range pkg.Files {
			var found *ast.StructType
			eachStruct(file, func(name string, st *ast.StructType) bool {
				if name == typeName {
					found = st
					return false
				}
				return true
			})
			if found != nil {
				return found, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrTypeNotFound, typeName, dir)
}

func eachStruct(file *ast.File, fn func(name string, st *ast.StructType) bool) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue
			}
			if !fn(typeSpec.Name.Name, st) {
				return
			}
		}
	}
}

// fields lists the exported, named fields of st.
func (s *Scaffolder) fields(st *ast.StructType) []FieldInfo {
	var fields []FieldInfo
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			continue // embedded
		}
		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}
			fi := FieldInfo{
				Name: name.Name,
				Type: typeToString(field.Type),
			}
			if field.Tag != nil {
				if tag, err := strconv.Unquote(field.Tag.Value); err == nil {
					fi.Attribute, fi.Exclude = parseTag(reflect.StructTag(tag))
				}
			}
			if fi.Attribute == "" && !fi.Exclude {
				fi.Attribute = snakeCase(name.Name)
			}
			fields = append(fields, fi)
		}
	}
	return fields
}

// parseTag reads the attribute name from a json or yaml tag.
func parseTag(tag reflect.StructTag) (name string, exclude bool) {
	for _, key := range []string{"json", "yaml"} {
		value, ok := tag.Lookup(key)
		if !ok {
			continue
		}
		if value == "-" {
			return "", true
		}
		if name, _, _ = strings.Cut(value, ","); name != "" {
			return name, false
		}
	}
	return "", false
}

// typeToString converts an AST type to a string representation.
func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + typeToString(t.X)
	case *ast.SelectorExpr:
		return typeToString(t.X) + "." + t.Sel.Name
	case *ast.ArrayType:
		return "[]" + typeToString(t.Elt)
	case *ast.MapType:
		return "map[" + typeToString(t.Key) + "]" + typeToString(t.Value)
	default:
		return fmt.Sprintf("%T", expr)
	}
}

func columnType(goType string) string {
	switch strings.TrimPrefix(goType, "*") {
	case "time.Time":
		return elemental.TypeDateTime
	case "bool":
		return elemental.TypeBoolean
	}
	return ""
}

// snakeCase converts "CreatedAt" to "created_at" and "UserID" to "user_id".
func snakeCase(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))) {
				sb.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
