package walker

import (
	"context"
	"encoding"
	"encoding/xml"
	"reflect"

	"github.com/pkg/errors"

	"github.com/gofhir/cda/validation"
)

// SkipChildren may be returned by a visitor to prune the subtree below the
// current node without stopping the walk.
var SkipChildren = errors.New("skip children")

// Node is a value found in the document graph.
type Node struct {
	// Path locates the value from the document root.
	Path string

	// Value is a pointer for struct values and the plain value otherwise.
	// Typed strings such as vocabulary codes are passed by value.
	Value any

	// Field is the Go field name the value was reached through; empty for
	// the root and for slice elements.
	Field string

	// Depth is the number of fields and indexes between the root and Value.
	Depth int
}

// VisitorFunc is called for each node. Returning SkipChildren prunes the
// node's children; any other error stops the walk.
type VisitorFunc func(n *Node) error

var (
	textMarshaler = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	xmlNameType   = reflect.TypeOf(xml.Name{})
)

// Walk visits root and every non-empty value reachable from it. The root
// itself is visited with an empty path.
func Walk(ctx context.Context, root any, visit VisitorFunc) error {
	if root == nil || visit == nil {
		return nil
	}
	err := walk(ctx, reflect.ValueOf(root), "", "", 0, visit)
	if errors.Is(err, SkipChildren) {
		return nil
	}
	return err
}

func walk(ctx context.Context, v reflect.Value, path, field string, depth int, visit VisitorFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		if v.Elem().Kind() != reflect.Struct {
			return walk(ctx, v.Elem(), path, field, depth, visit)
		}
		return walkStruct(ctx, v, path, field, depth, visit)

	case reflect.Struct:
		if v.CanAddr() {
			return walkStruct(ctx, v.Addr(), path, field, depth, visit)
		}
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		return walkStruct(ctx, p, path, field, depth, visit)

	case reflect.Slice, reflect.Array:
		if v.Type().Implements(textMarshaler) || v.Len() == 0 {
			if v.Len() == 0 {
				return nil
			}
			return visitLeaf(v, path, field, depth, visit)
		}
		for i := 0; i < v.Len(); i++ {
			if err := walk(ctx, v.Index(i), validation.Index(path, i), "", depth+1, visit); err != nil {
				return err
			}
		}
		return nil

	case reflect.String:
		if v.Len() == 0 {
			return nil
		}
		return visitLeaf(v, path, field, depth, visit)

	case reflect.Invalid, reflect.Map, reflect.Func, reflect.Chan:
		return nil
	}
	return visitLeaf(v, path, field, depth, visit)
}

func visitLeaf(v reflect.Value, path, field string, depth int, visit VisitorFunc) error {
	err := visit(&Node{Path: path, Value: v.Interface(), Field: field, Depth: depth})
	if errors.Is(err, SkipChildren) {
		return nil
	}
	return err
}

func walkStruct(ctx context.Context, ptr reflect.Value, path, field string, depth int, visit VisitorFunc) error {
	if err := visit(&Node{Path: path, Value: ptr.Interface(), Field: field, Depth: depth}); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	if ptr.Type().Implements(textMarshaler) || ptr.Elem().Type().Implements(textMarshaler) {
		return nil
	}

	s := ptr.Elem()
	t := s.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Type == xmlNameType {
			continue
		}
		fv := s.Field(i)
		if validation.IsEmpty(fv.Interface()) {
			continue
		}
		childPath, childDepth := path, depth
		if !f.Anonymous {
			childPath = validation.Path(path, f.Name)
			childDepth++
		}
		if err := walk(ctx, fv, childPath, f.Name, childDepth, visit); err != nil {
			return err
		}
	}
	return nil
}
