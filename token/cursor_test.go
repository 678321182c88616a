package token_test

import (
	"testing"

	"github.com/npillmayer/wxcss/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeBasics(t *testing.T) {
	c := token.NewCursor(`.a { color: red; width: 12px; }`)
	tok, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, token.Delim, tok.Kind)
	assert.Equal(t, ".", tok.Text)

	tok, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, token.Ident, tok.Kind)
	assert.Equal(t, "a", tok.Text)
}

func TestTryParseRewindsOnError(t *testing.T) {
	c := token.NewCursor(`ident`)
	_, err := token.TryParse(c, func(c *token.Cursor) (string, error) {
		_, _ = c.ExpectIdent()
		return "", token.NewError(token.Reason, c.CurrentSourceLocation(), "forced failure")
	})
	require.Error(t, err)
	// position must have rewound to before the ident was consumed
	name, err := c.ExpectIdent()
	require.NoError(t, err)
	assert.Equal(t, "ident", name)
}

func TestParseUntilBeforeLeavesDelimiter(t *testing.T) {
	c := token.NewCursor(`red; width`)
	text, err := token.ParseUntilBefore(c, []token.Kind{token.Semicolon}, func(c *token.Cursor) (string, error) {
		tok, err := c.Next()
		if err != nil {
			return "", err
		}
		return tok.Text, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "red", text)
	tok, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, token.Semicolon, tok.Kind)
}

func TestParseNestedBlockRestoresPosition(t *testing.T) {
	c := token.NewCursor(`rgb(1, 2, 3) next`)
	tok, err := c.Next()
	require.NoError(t, err)
	require.Equal(t, token.Function, tok.Kind)

	_, err = token.ParseNestedBlock(c, func(inner *token.Cursor) (int, error) {
		count := 0
		for !inner.AtEnd() {
			if _, err := inner.Next(); err != nil {
				break
			}
			count++
		}
		return count, nil
	})
	require.NoError(t, err)

	tok, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, token.Ident, tok.Kind)
	assert.Equal(t, "next", tok.Text)
}

func TestAttributeMatchOperatorsAreMerged(t *testing.T) {
	c := token.NewCursor(`[a^="b"]`)
	_, _ = c.Next() // [
	_, _ = c.Next() // a
	tok, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, token.PrefixMatch, tok.Kind)
}
