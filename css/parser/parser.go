// Package parser splits CSS text into declarations and qualified rules.
// Tokenization is delegated to tdewolff/parse; values are kept as a flat
// list of significant tokens, validated later by the validation package.
package parser

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

type Fl = float32

// TokenKind is the subset of CSS token types values are made of.
type TokenKind uint8

const (
	Ident TokenKind = iota + 1
	Number
	Percentage
	Dimension
	Hash
	String
	Function // the function name, without the parenthesis
	Comma
	Delim
	CloseParen
)

// Token is a significant (non whitespace) component of a declaration value.
type Token struct {
	Kind  TokenKind
	Value string // lower cased for identifiers, function names and units
	Num   Fl     // for Number, Percentage, Dimension
	Unit  string // for Dimension
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return strconv.FormatFloat(float64(t.Num), 'g', -1, 32)
	case Percentage:
		return strconv.FormatFloat(float64(t.Num), 'g', -1, 32) + "%"
	case Dimension:
		return strconv.FormatFloat(float64(t.Num), 'g', -1, 32) + t.Unit
	case Hash:
		return "#" + t.Value
	case Function:
		return t.Value + "("
	default:
		return t.Value
	}
}

// Declaration is one "name: value" pair.
type Declaration struct {
	Name      string // lower case
	Value     []Token
	Important bool
}

// QualifiedRule is a list of selectors sharing a declaration block.
type QualifiedRule struct {
	Selectors    []string
	Declarations []Declaration
}

func newToken(tk css.Token) (Token, bool) {
	data := string(tk.Data)
	switch tk.TokenType {
	case css.IdentToken:
		return Token{Kind: Ident, Value: strings.ToLower(data)}, true
	case css.NumberToken:
		f, err := strconv.ParseFloat(data, 32)
		return Token{Kind: Number, Num: Fl(f), Value: data}, err == nil
	case css.PercentageToken:
		f, err := strconv.ParseFloat(strings.TrimSuffix(data, "%"), 32)
		return Token{Kind: Percentage, Num: Fl(f), Value: data}, err == nil
	case css.DimensionToken:
		num, unit := splitDimension(data)
		f, err := strconv.ParseFloat(num, 32)
		return Token{Kind: Dimension, Num: Fl(f), Unit: strings.ToLower(unit), Value: data}, err == nil
	case css.HashToken:
		return Token{Kind: Hash, Value: strings.TrimPrefix(data, "#")}, true
	case css.StringToken:
		return Token{Kind: String, Value: unquote(data)}, true
	case css.FunctionToken:
		return Token{Kind: Function, Value: strings.ToLower(strings.TrimSuffix(data, "("))}, true
	case css.CommaToken:
		return Token{Kind: Comma, Value: ","}, true
	case css.RightParenthesisToken:
		return Token{Kind: CloseParen, Value: ")"}, true
	case css.DelimToken:
		return Token{Kind: Delim, Value: data}, true
	}
	return Token{}, false
}

func splitDimension(s string) (num, unit string) {
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			continue
		}
		if (r == 'e' || r == 'E') && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9' {
			continue
		}
		return s[:i], s[i:]
	}
	return s, ""
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// tokens converts the raw tokens of a declaration, dropping whitespace
// and extracting the !important flag.
func tokens(values []css.Token) (out []Token, important bool) {
	for _, v := range values {
		tk, ok := newToken(v)
		if !ok {
			continue
		}
		out = append(out, tk)
	}
	if n := len(out); n >= 2 && out[n-2].Kind == Delim && out[n-2].Value == "!" &&
		out[n-1].Kind == Ident && out[n-1].Value == "important" {
		out, important = out[:n-2], true
	}
	return out, important
}

// ParseDeclarationListString parses the content of a style attribute.
func ParseDeclarationListString(css string) []Declaration {
	return ParseDeclarationList(strings.NewReader(css))
}

// ParseDeclarationList parses a list of declarations, as found in
// a style attribute. Invalid declarations are skipped.
func ParseDeclarationList(r io.Reader) []Declaration {
	p := css.NewParser(parse.NewInput(r), true)
	var out []Declaration
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return out
		case css.DeclarationGrammar:
			values, important := tokens(p.Values())
			if len(values) == 0 {
				continue
			}
			out = append(out, Declaration{Name: strings.ToLower(string(data)), Value: values, Important: important})
		}
	}
}

// ParseStylesheet parses a style sheet made of qualified rules.
// At-rules are skipped. Parse errors are logged with [log], which may be nil.
func ParseStylesheet(data []byte, log *zap.Logger) []QualifiedRule {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("css-parser")

	p := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	var (
		out       []QualifiedRule
		selectors []string
		depth     int // nesting level of skipped at-rules
	)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				log.Debug("CSS parse error", zap.Error(err))
			}
			return out
		case css.BeginAtRuleGrammar:
			depth++
		case css.EndAtRuleGrammar:
			depth--
		case css.QualifiedRuleGrammar:
			selectors = append(selectors, parseSelectors(data, p.Values())...)
		case css.BeginRulesetGrammar:
			selectors = append(selectors, parseSelectors(data, p.Values())...)
			rule := QualifiedRule{Selectors: selectors, Declarations: parseDeclarations(p)}
			selectors = nil
			if depth > 0 {
				log.Debug("Skipping rule nested in at-rule", zap.Strings("selectors", rule.Selectors))
				continue
			}
			out = append(out, rule)
		}
	}
}

func parseSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	var out []string
	for _, s := range strings.Split(sb.String(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseDeclarations(p *css.Parser) []Declaration {
	var out []Declaration
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return out
		case css.DeclarationGrammar:
			values, important := tokens(p.Values())
			if len(values) == 0 {
				continue
			}
			out = append(out, Declaration{Name: strings.ToLower(string(data)), Value: values, Important: important})
		}
	}
}
