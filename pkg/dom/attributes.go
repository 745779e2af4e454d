package dom

import "strings"

// Class returns a class attribute. Multiple names are joined with spaces;
// empty names are dropped.
func Class(names ...string) Attr {
	kept := names[:0:0]
	for _, n := range names {
		if n != "" {
			kept = append(kept, n)
		}
	}
	return Attr{Key: "class", Value: strings.Join(kept, " ")}
}

// ID returns an id attribute.
func ID(id string) Attr {
	return Attr{Key: "id", Value: id}
}

// Href returns an href attribute.
func Href(url string) Attr {
	return Attr{Key: "href", Value: url}
}

// Src returns a src attribute.
func Src(url string) Attr {
	return Attr{Key: "src", Value: url}
}

// Type returns a type attribute.
func Type(t string) Attr {
	return Attr{Key: "type", Value: t}
}

// Name returns a name attribute.
func Name(name string) Attr {
	return Attr{Key: "name", Value: name}
}

// Value returns a value attribute.
func Value(v string) Attr {
	return Attr{Key: "value", Value: v}
}

// Placeholder returns a placeholder attribute.
func Placeholder(p string) Attr {
	return Attr{Key: "placeholder", Value: p}
}

// For returns a for attribute, used on labels.
func For(id string) Attr {
	return Attr{Key: "for", Value: id}
}

// Style returns an inline style attribute.
func Style(css string) Attr {
	return Attr{Key: "style", Value: css}
}

// Data returns a data-* attribute. The key is given without the "data-"
// prefix: Data("tooltip", "Hi") renders data-tooltip="Hi".
func Data(key, value string) Attr {
	return Attr{Key: "data-" + key, Value: value}
}

// Required returns the boolean required attribute.
func Required() Attr {
	return Attr{Key: "required", Value: ""}
}

// Disabled returns the boolean disabled attribute.
func Disabled() Attr {
	return Attr{Key: "disabled", Value: ""}
}

// Charset returns a charset attribute, used on meta tags.
func Charset(cs string) Attr {
	return Attr{Key: "charset", Value: cs}
}

// Rel returns a rel attribute, used on link tags.
func Rel(rel string) Attr {
	return Attr{Key: "rel", Value: rel}
}

// Lang returns a lang attribute.
func Lang(code string) Attr {
	return Attr{Key: "lang", Value: code}
}
