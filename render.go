package widgets

import (
	"context"
	"fmt"
	"html/template"
	"io"
)

// documentShell wraps a PageContent in a minimal HTML document. Head and
// Body are template.HTML, so they land in the output exactly as reduced;
// only the title gets escaped.
const documentShell = `<!doctype html>
<html lang="en">
	<head>
		<title>{{ .Title }}</title>
		{{- .Head -}}
	</head>
	<body>
		{{- .Body -}}
	</body>
</html>
`

var documentTemplate = template.Must(template.New("document").Parse(documentShell))

// RenderDocument writes the passed PageContent to the Writer as a complete
// HTML document, embedding the title, head markup, and body markup in a
// minimal doctype/html shell. Applications with their own layout template
// should embed the PageContent fields themselves instead; RenderDocument is
// for the common case where nothing more than a well-formed document is
// needed.
//
// Errors are logged to the context logger (see LoggingContext) as well as
// returned.
func RenderDocument(ctx context.Context, out io.Writer, content PageContent) error {
	ctx, span := tracer().Start(ctx, "RenderDocument")
	defer span.End()

	err := documentTemplate.Execute(out, content)
	if err != nil {
		logger(ctx).ErrorContext(ctx, "error rendering document", "error", err)
		return fmt.Errorf("error rendering document: %w", err)
	}
	return nil
}
