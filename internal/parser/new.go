package parser

import (
	pkgLog "conversational-task-assistant/pkg/log"
)

// Parser turns one free-form user turn into a ParsedCommand.
type Parser struct {
	l pkgLog.Logger
}

// New creates a new Parser.
// Convention: factory function returns concrete type for internal packages.
func New(l pkgLog.Logger) *Parser {
	return &Parser{l: l}
}
