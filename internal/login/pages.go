package login

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	loginPage   = "login.html"
	welcomePage = "welcome.html"
)

type loginPageData struct {
	Flashes []string
}

type welcomePageData struct {
	Username string
}

func parsePages() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}

// renderPage executes the named template into a buffer, so a failed render
// never leaves a half written response.
func renderPage(pages *template.Template, name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
