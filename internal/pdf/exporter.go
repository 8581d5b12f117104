// Package pdf renders the CV view through an HTML template and a headless
// Chromium page into a single A4 PDF download.
package pdf

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/playwright-community/playwright-go"

	"github.com/mubarakmsm/myweb/internal/view"
)

// Filename is the fixed download name for the exported CV.
const Filename = "CV-Mubarak-Saeed.pdf"

//go:embed templates/cv.html
var templates embed.FS

type Exporter struct {
	tmpl *template.Template
}

func NewExporter() (*Exporter, error) {
	tmpl, err := template.ParseFS(templates, "templates/cv.html")
	if err != nil {
		return nil, fmt.Errorf("parsing cv template: %w", err)
	}
	return &Exporter{tmpl: tmpl}, nil
}

// RenderHTML executes the CV template. Split out from Export so the
// template can be exercised without a browser.
func (e *Exporter) RenderHTML(cv view.CV) (string, error) {
	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, cv); err != nil {
		return "", fmt.Errorf("executing cv template: %w", err)
	}
	return buf.String(), nil
}

// Export rasterizes the rendered CV into a single A4 page. Content taller
// than one page is not paginated specially; the page simply grows the
// document, a known limitation of the raster export.
func (e *Exporter) Export(ctx context.Context, cv view.CV) ([]byte, error) {
	html, err := e.RenderHTML(cv)
	if err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("launching chromium: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	if err := page.SetContent(html, playwright.PageSetContentOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return nil, fmt.Errorf("setting page content: %w", err)
	}

	pdfBytes, err := page.PDF(playwright.PagePdfOptions{
		Format:          playwright.String("A4"),
		PrintBackground: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}

	return pdfBytes, nil
}
