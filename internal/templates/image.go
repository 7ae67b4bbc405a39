// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package templates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/a-h/templ"
)

// ImageProps are the attributes of an <img> element.
// Src is an asset reference and is resolved at render time.
type ImageProps struct {
	Src    string
	Alt    string
	Class  string
	Width  int
	Height int
	Attrs  templ.Attributes
}

// ErrInvalidAttributeName is returned when an attribute name could break
// out of the tag it is written into.
var ErrInvalidAttributeName = errors.New("invalid attribute name")

var imageDefaults = templ.Attributes{
	"loading":  "lazy",
	"decoding": "async",
}

// Image renders an <img> whose src is resolved through AssetPath.
// Rendering fails if Src is not a valid asset reference or an attribute
// name is invalid. Class, Width and Height win over the same keys in Attrs.
func Image(props ImageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		src, err := AssetPath(ctx, props.Src)
		if err != nil {
			return fmt.Errorf("image: %w", err)
		}

		attrs, err := mergeAttrs(imageDefaults, props.Attrs)
		if err != nil {
			return fmt.Errorf("image: %w", err)
		}
		if props.Class != "" {
			attrs["class"] = props.Class
		}
		if props.Width > 0 {
			attrs["width"] = props.Width
		}
		if props.Height > 0 {
			attrs["height"] = props.Height
		}

		var b strings.Builder
		b.WriteString(`<img src="`)
		b.WriteString(templ.EscapeString(src))
		b.WriteString(`" alt="`)
		b.WriteString(templ.EscapeString(props.Alt))
		b.WriteString(`"`)
		writeAttrs(&b, attrs)
		b.WriteString(">")

		_, err = io.WriteString(w, b.String())
		return err
	})
}

// mergeAttrs returns defaults overlaid with attrs. Names are lower-cased
// so each attribute is written once; src and alt are owned by the component.
func mergeAttrs(defaults, attrs templ.Attributes) (templ.Attributes, error) {
	merged := make(templ.Attributes, len(defaults)+len(attrs))
	for k, v := range defaults {
		merged[k] = v
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !validAttrName(k) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAttributeName, k)
		}
		name := strings.ToLower(k)
		switch name {
		case "src", "alt":
			continue
		}
		merged[name] = attrs[k]
	}
	return merged, nil
}

// validAttrName reports whether name is a valid HTML attribute name.
func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case unicode.IsSpace(r), unicode.IsControl(r):
			return false
		case strings.ContainsRune("\"'>/=<`", r):
			return false
		}
	}
	return true
}

// writeAttrs writes attrs in key order.
func writeAttrs(b *strings.Builder, attrs templ.Attributes) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			if v {
				b.WriteString(" ")
				b.WriteString(k)
			}
		case string:
			writeAttr(b, k, v)
		case int:
			writeAttr(b, k, strconv.Itoa(v))
		default:
			writeAttr(b, k, fmt.Sprint(v))
		}
	}
}

// writeAttr writes name="value". name must have passed validAttrName.
func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(templ.EscapeString(value))
	b.WriteString(`"`)
}
