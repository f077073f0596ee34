package shell

import (
	"strings"
)

type Parser interface {
	Parse(line string) ([]string, error)
}

// FieldsParser splits a line on runs of Unicode whitespace. It has no
// notion of quoting or escaping.
type FieldsParser struct{}

func NewFieldsParser() *FieldsParser {
	return &FieldsParser{}
}

func (p *FieldsParser) Parse(line string) ([]string, error) {
	return strings.Fields(line), nil
}
