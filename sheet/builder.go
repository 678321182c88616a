package sheet

import (
	"strings"

	"github.com/npillmayer/wxcss/diag"
	"github.com/npillmayer/wxcss/props"
	"github.com/npillmayer/wxcss/selector"
	"github.com/npillmayer/wxcss/token"
	"github.com/npillmayer/wxcss/value"
)

const (
	defaultInputExtension  = ".wxss"
	defaultOutputExtension = ".css"
)

// Build parses source into a CompiledStyleSheet, reporting recoverable
// diagnostics to r instead of aborting (§4.4/§7). importBasePath seeds
// the path `@import`/`@font-face` URLs resolve relative to; an empty
// string means the sheet has no location of its own, so a leading
// `@import` produces ImportNotOnTop rather than being silently resolved
// against an empty base.
func Build(source, importBasePath string, r *diag.Reporter) *CompiledStyleSheet {
	b := &builder{
		cur:   token.NewCursor(source),
		sheet: &CompiledStyleSheet{},
		r:     r,
	}
	if importBasePath != "" {
		b.importBase, b.hasImportBase = importBasePath, true
	}
	b.parseSegment()
	return b.sheet
}

// builder walks the token cursor, accumulating state the original
// carries in ParseState: the live import base path (cleared the moment
// a real rule or non-@import/@font-face at-block is seen) and the
// enclosing @media context, if any (§4.5's state table).
type builder struct {
	cur           *token.Cursor
	sheet         *CompiledStyleSheet
	r             *diag.Reporter
	importBase    string
	hasImportBase bool
	media         *value.Media
}

func (b *builder) parseSegment() {
	for !b.cur.AtEnd() {
		b.parseBlock()
	}
}

func (b *builder) parseBlock() {
	if b.cur.Peek().Kind == token.AtKeyword {
		tok, _ := b.cur.Next()
		b.parseAtKeywordBlock(tok.Text)
		return
	}
	b.clearImportBase()
	b.parseRule()
}

func (b *builder) clearImportBase() {
	b.importBase, b.hasImportBase = "", false
}

func (b *builder) parseRule() {
	startLoc := b.cur.CurrentSourceLocation()
	sels, err := token.ParseUntilBefore(b.cur, []token.Kind{token.CurlyBracketBlock}, func(inner *token.Cursor) ([]selector.Selector, error) {
		return selector.ParseList(inner)
	})
	if err != nil {
		b.r.Warnf(diag.InvalidSelector, startLoc, "invalid selector: %v", err)
		b.skipToBlockEnd()
		return
	}
	if b.cur.Peek().Kind != token.CurlyBracketBlock {
		b.r.Warnf(diag.InvalidSelector, startLoc, "expected a declaration block")
		return
	}
	b.cur.Next()
	decls, err := token.ParseNestedBlock(b.cur, func(inner *token.Cursor) ([]value.PropertyMeta, error) {
		return props.ParseDeclarationList(inner, b.r), nil
	})
	if err != nil {
		b.r.Warnf(diag.InvalidProperty, startLoc, "invalid declaration block: %v", err)
		return
	}
	b.sheet.AddRule(Rule{Selectors: sels, Properties: decls, Media: b.media})
}

func (b *builder) parseAtKeywordBlock(key string) {
	lower := strings.ToLower(key)
	if lower != "import" && lower != "font-face" {
		b.clearImportBase()
	}
	switch lower {
	case "import":
		b.parseImport()
	case "media":
		b.parseMedia()
	case "keyframes":
		b.parseKeyframes()
	case "font-face":
		b.parseFontFace()
	default:
		startLoc := b.cur.CurrentSourceLocation()
		b.skipToBlockEnd()
		b.r.Warnf(diag.UnknownAtBlock, startLoc, "unsupported @%s block", key)
	}
}

// skipToBlockEnd discards tokens up to and including the next
// Semicolon, or the next CurlyBracketBlock and its matching close;
// parentheses and square brackets before it are not skipped as a
// unit, so a Semicolon inside them ends the skip. Used to recover from a malformed at-rule without losing sync
// with the rest of the sheet (§4.4/§7).
func (b *builder) skipToBlockEnd() {
	for {
		t := b.cur.Peek()
		switch t.Kind {
		case token.EOF:
			return
		case token.Semicolon:
			b.cur.Next()
			return
		case token.CurlyBracketBlock:
			b.cur.Next()
			token.ParseNestedBlock(b.cur, func(inner *token.Cursor) (struct{}, error) {
				return struct{}{}, nil
			})
			return
		default:
			b.cur.Next()
		}
	}
}

func (b *builder) parseImport() {
	startLoc := b.cur.CurrentSourceLocation()
	tok, err := b.cur.Next()
	if err != nil || (tok.Kind != token.String && tok.Kind != token.Url) {
		b.skipToBlockEnd()
		b.r.Warnf(diag.InvalidImportURL, startLoc, "expected a url or string after @import")
		return
	}
	url := tok.Text

	var media *value.Media
	if b.cur.Peek().Kind == token.Semicolon {
		b.cur.Next()
	} else {
		m, err := parseMediaExpressionSeries(b.cur, nil)
		if err != nil {
			b.skipToBlockEnd()
			b.r.Warnf(diag.UnsupportedMediaSyntax, startLoc, "invalid @import media: %v", err)
		} else {
			media = m
			b.skipToBlockEnd()
		}
	}

	if !b.hasImportBase {
		b.r.Warnf(diag.ImportNotOnTop, startLoc, "@import must appear before any rule or non-@import/@font-face block")
		return
	}
	resolved := url
	if !isURL(url) {
		resolved = resolveRelativePath(b.importBase, url, defaultInputExtension, defaultOutputExtension)
	}
	b.sheet.AddImport(Import{URL: resolved, Media: media})
}

func (b *builder) parseMedia() {
	startLoc := b.cur.CurrentSourceLocation()
	m, err := parseMediaExpressionSeries(b.cur, b.media)
	if err != nil {
		b.skipToBlockEnd()
		b.r.Warnf(diag.UnsupportedMediaSyntax, startLoc, "invalid @media expression: %v", err)
		return
	}
	if b.cur.Peek().Kind != token.CurlyBracketBlock {
		b.r.Warnf(diag.UnsupportedMediaSyntax, startLoc, "expected a block after @media")
		return
	}
	b.cur.Next()
	outer := b.cur
	oldMedia := b.media
	b.media = m
	token.ParseNestedBlock(outer, func(inner *token.Cursor) (struct{}, error) {
		b.cur = inner
		b.parseSegment()
		return struct{}{}, nil
	})
	b.cur = outer
	b.media = oldMedia
}

func (b *builder) parseKeyframes() {
	startLoc := b.cur.CurrentSourceLocation()
	ident, err := token.ParseUntilBefore(b.cur, []token.Kind{token.CurlyBracketBlock}, func(inner *token.Cursor) (string, error) {
		return inner.ExpectIdent()
	})
	if err != nil {
		b.r.Warnf(diag.IllegalKeyframesIdentifier, startLoc, "invalid @keyframes name: %v", err)
		b.skipToBlockEnd()
		return
	}
	if b.cur.Peek().Kind != token.CurlyBracketBlock {
		b.r.Warnf(diag.IllegalKeyframesBlock, startLoc, "expected a block after @keyframes %s", ident)
		return
	}
	b.cur.Next()
	kf, err := token.ParseNestedBlock(b.cur, func(inner *token.Cursor) (KeyFrames, error) {
		var rules []KeyFrameRule
		for !inner.AtEnd() {
			rule, err := b.parseKeyframeRule(inner)
			if err != nil {
				return KeyFrames{}, err
			}
			rules = append(rules, rule)
		}
		return KeyFrames{Name: ident, Rules: rules}, nil
	})
	if err != nil {
		b.r.Warnf(diag.UnsupportedKeyframesSyntax, startLoc, "invalid @keyframes body: %v", err)
		return
	}
	b.sheet.AddKeyframes(kf)
}

func (b *builder) parseKeyframeRule(c *token.Cursor) (KeyFrameRule, error) {
	sels, err := token.ParseUntilBefore(c, []token.Kind{token.CurlyBracketBlock}, func(inner *token.Cursor) ([]KeyFrame, error) {
		return parseKeyframeSelectorList(inner)
	})
	if err != nil {
		return KeyFrameRule{}, err
	}
	if c.Peek().Kind != token.CurlyBracketBlock {
		return KeyFrameRule{}, token.NewError(token.UnexpectedToken, c.CurrentSourceLocation(), "expected a declaration block")
	}
	c.Next()
	decls, err := token.ParseNestedBlock(c, func(inner *token.Cursor) ([]value.PropertyMeta, error) {
		return props.ParseDeclarationList(inner, b.r), nil
	})
	if err != nil {
		return KeyFrameRule{}, err
	}
	return KeyFrameRule{Selectors: sels, Properties: decls}, nil
}

func parseKeyframeSelectorList(c *token.Cursor) ([]KeyFrame, error) {
	var out []KeyFrame
	for {
		tok, err := c.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case token.Percentage:
			out = append(out, KeyFrame{Kind: KeyFrameRatio, Ratio: float32(tok.Num) / 100})
		case token.Ident:
			switch strings.ToLower(tok.Text) {
			case "from":
				out = append(out, KeyFrame{Kind: KeyFrameFrom})
			case "to":
				out = append(out, KeyFrame{Kind: KeyFrameTo})
			default:
				return nil, token.NewError(token.Unsupported, tok.Loc, tok.Text)
			}
		default:
			return nil, token.NewError(token.Unsupported, tok.Loc, tok.Text)
		}
		if c.AtEnd() || c.Peek().Kind != token.Comma {
			break
		}
		c.Next()
	}
	return out, nil
}

func (b *builder) parseFontFace() {
	startLoc := b.cur.CurrentSourceLocation()
	if b.cur.Peek().Kind != token.CurlyBracketBlock {
		b.r.Warnf(diag.InvalidFontFaceProperty, startLoc, "expected a block after @font-face")
		return
	}
	b.cur.Next()
	face, err := token.ParseNestedBlock(b.cur, func(inner *token.Cursor) (value.FontFace, error) {
		return props.ParseFontFaceDescriptors(inner)
	})
	if err != nil {
		b.r.Warnf(diag.InvalidFontFaceProperty, startLoc, "invalid @font-face descriptor: %v", err)
		return
	}
	if b.hasImportBase {
		for i, src := range face.Sources {
			if src.URL != "" && !isURL(src.URL) {
				face.Sources[i].URL = resolveRelativePath(b.importBase, src.URL, "", "")
			}
		}
	}
	b.sheet.AddFontFace(face)
}
