// Package export writes generated reports and report listings to external
// formats (standalone HTML, CSV).
package export

import (
	"bytes"
	"fmt"
	"html"
	"os"

	"github.com/yuin/goldmark"

	"nippou/internal/errors"
)

const htmlShell = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.6; }
h1, h2, h3 { line-height: 1.3; }
code { background: #f4f4f4; padding: 0.1rem 0.3rem; }
</style>
</head>
<body>
%s</body>
</html>
`

// ToHTML converts a markdown monthly report to a standalone HTML document
// and writes it to path.
func ToHTML(markdown, title, path string) error {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &body); err != nil {
		return errors.NewSystemErrorWithOp("export", "convert markdown", err)
	}

	doc := fmt.Sprintf(htmlShell, html.EscapeString(title), body.String())
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return errors.NewSystemErrorWithOp("export", "write html file", err)
	}
	return nil
}
