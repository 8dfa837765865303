// Package naming converts between Go identifiers and property names.
//
// Property names are lower camel case ("name", "orderID", "url"). Go names
// are exported identifiers usable as struct field names ("Name", "OrderID").
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Accessor method prefixes, in match order.
const (
	GetPrefix = "Get"
	IsPrefix  = "Is"
)

// PropertyName returns the property name exposed for a Go identifier.
// The first camel-case token is lowered, so leading acronyms fold too:
//   - "Name" -> "name"
//   - "OrderID" -> "orderID"
//   - "URL" -> "url"
//   - "XMLParser" -> "xmlParser"
func PropertyName(ident string) string {
	tokens := tokenizeCamelCase(ident)
	if len(tokens) == 0 {
		return ""
	}

	tokens[0] = strings.ToLower(tokens[0])

	return strings.Join(tokens, "")
}

// GoName returns an exported Go identifier for a property name.
// Characters that cannot appear in an identifier are dropped, and a "P"
// prefix is added when the result would not start with an upper-case letter.
func GoName(property string) string {
	var sb strings.Builder

	for _, token := range tokenizeCamelCase(property) {
		r, size := utf8.DecodeRuneInString(token)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(token[size:])
	}

	ident := strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}

		return -1
	}, sb.String())

	first, _ := utf8.DecodeRuneInString(ident)
	if !unicode.IsUpper(first) {
		ident = "P" + ident
	}

	return ident
}

// TrimAccessorPrefix strips a "Get" or "Is" prefix from a method name.
// The prefix only counts when followed by an upper-case letter, so
// "Getaway" and "Issue" are not accessors.
func TrimAccessorPrefix(method string) (rest, prefix string, ok bool) {
	for _, p := range []string{GetPrefix, IsPrefix} {
		if !strings.HasPrefix(method, p) {
			continue
		}

		rest = method[len(p):]

		r, _ := utf8.DecodeRuneInString(rest)
		if unicode.IsUpper(r) {
			return rest, p, true
		}
	}

	return "", "", false
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "middle_name" -> ["middle", "name"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// "orderID": split before 'I'
	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	// "XMLParser": split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
