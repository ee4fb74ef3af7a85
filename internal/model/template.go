package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Template is a user-defined layout for the monthly report. Content may
// contain {{month}}, {{total_days}} and {{total_hours}} placeholders; the
// renderer recognizes exactly that set and leaves anything else untouched.
type Template struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	IsDefault bool   `json:"isDefault"`
}

// NewTemplateID generates a template identifier, e.g. "tmpl-9c4e01aa".
func NewTemplateID() string {
	return fmt.Sprintf("tmpl-%s", strings.SplitN(uuid.NewString(), "-", 2)[0])
}

// NewTemplate builds a template with a fresh identifier.
func NewTemplate(name, typ, content string, isDefault bool) *Template {
	return &Template{
		ID:        NewTemplateID(),
		Name:      name,
		Type:      typ,
		Content:   content,
		IsDefault: isDefault,
	}
}
