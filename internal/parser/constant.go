package parser

// Log prefixes
const (
	LogPrefixParse = "internal.parser.Parse"
)
