package dom

import (
	"fmt"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/npillmayer/wxcss/diag"
	"github.com/npillmayer/wxcss/sheet"
	"github.com/npillmayer/wxcss/token"
	"github.com/npillmayer/wxcss/value"
)

// ExtractStyleElements visits <head> and <body> and returns the raw
// CSS text of every embedded <style> element, in document order. It
// mirrors the teacher's douceuradapter.ExtractStyleElements, but
// returns source text rather than an already-parsed stylesheet, since
// the typed pipeline (sheet.Build) owns parsing here.
func ExtractStyleElements(htmldoc *html.Node) []string {
	var out []string
	out = append(out, extractStyleText(findElement(atom.Head, htmldoc))...)
	out = append(out, extractStyleText(findElement(atom.Body, htmldoc))...)
	return out
}

func extractStyleText(h *html.Node) []string {
	if h == nil {
		return nil
	}
	var out []string
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom == atom.Style && ch.FirstChild != nil {
			out = append(out, ch.FirstChild.Data)
		}
	}
	return out
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}

// ParseStyleAttribute parses a `style="..."` attribute value into a
// flat declaration list. It first splits the attribute permissively
// with douceur/parser.ParseDeclarations — which tolerates the kind of
// malformed, trailing-garbage markup real HTML documents carry far
// better than a strict grammar would — then re-parses each surviving
// declaration's raw text through the typed props pipeline
// (sheet.ParseInlineStyle) so the result is a typed value.PropertyMeta
// list rather than douceur's raw name/value strings.
func ParseStyleAttribute(raw string, r *diag.Reporter) []value.PropertyMeta {
	decls, err := parser.ParseDeclarations(raw)
	if err != nil {
		r.Warnf(diag.InvalidProperty, token.SourceLocation{}, "style attribute: %v", err)
		return nil
	}
	var out []value.PropertyMeta
	for _, d := range decls {
		text := fmt.Sprintf("%s: %s", d.Property, d.Value)
		if d.Important {
			text += " !important"
		}
		out = append(out, sheet.ParseInlineStyle(text, r)...)
	}
	return out
}
