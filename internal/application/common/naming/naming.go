// Package naming converts the snake_case identifiers found in binding
// headers into the casing styles target-language emitters need.
package naming

import "strings"

// ToCamelCase converts a snake_case identifier to camelCase.
func ToCamelCase(identifier string) string {
	parts := strings.Split(identifier, "_")
	var builder strings.Builder
	for i, part := range parts {
		if i == 0 {
			builder.WriteString(part)
			continue
		}
		builder.WriteString(upperFirst(part))
	}
	return builder.String()
}

// ToPascalCase converts a snake_case identifier to PascalCase.
func ToPascalCase(identifier string) string {
	parts := strings.Split(identifier, "_")
	var builder strings.Builder
	for _, part := range parts {
		builder.WriteString(upperFirst(part))
	}
	return builder.String()
}

func upperFirst(word string) string {
	if word == "" {
		return ""
	}
	runes := []rune(word)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
