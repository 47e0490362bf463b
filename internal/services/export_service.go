package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"tripdoc/pkg/utils"
)

// ExportFileName is fixed, never derived from trip content.
const ExportFileName = "travel_itinerary.pdf"

type ExportServiceInterface interface {
	// BuildPDF composes the projected markdown document into a downloadable
	// PDF. Selected images are fetched and embedded when they decode as
	// JPEG or PNG; anything else falls back to printing the URL.
	//
	// Core PDF fonts cannot encode CJK text. When FontPath names a unicode
	// TTF it is embedded and the full catalog renders; without one, runes
	// outside Latin-1 are substituted with "?" rather than emitted as
	// garbled cp1252 bytes.
	BuildPDF(ctx context.Context, markdown string) ([]byte, string, error)
}

type ExportService struct {
	HTTP *http.Client
	// FontPath points at a unicode-capable TTF file to embed; empty means
	// core Helvetica with Latin-1 substitution.
	FontPath string
}

func NewExportService(fontPath string) ExportServiceInterface {
	return &ExportService{
		HTTP:     &http.Client{Timeout: 20 * time.Second},
		FontPath: fontPath,
	}
}

var imageLineRe = regexp.MustCompile(`^!\[(.*)\]\((.+)\)$`)

func (s *ExportService) BuildPDF(ctx context.Context, markdown string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Travel Itinerary", false)
	family, latin1Only := s.selectFont(pdf)
	pdf.AddPage()

	cell := func(style string, size, height float64, text string) {
		if latin1Only {
			text = latin1Fallback(text)
		}
		pdf.SetFont(family, style, size)
		pdf.MultiCell(0, height, text, "", "L", false)
	}

	imageCount := 0
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimRight(line, " \t")
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "# "):
			cell("B", 18, 10, strings.TrimPrefix(line, "# "))
			pdf.Ln(4)
		case strings.HasPrefix(line, "## "):
			cell("B", 14, 8, strings.TrimPrefix(line, "## "))
			pdf.Ln(2)
		case strings.HasPrefix(line, "### "):
			cell("B", 12, 7, strings.TrimPrefix(line, "### "))
		case line == "---":
			pdf.Ln(3)
		default:
			if m := imageLineRe.FindStringSubmatch(line); m != nil {
				imageCount++
				s.placeImage(ctx, pdf, m[2], imageCount)
				continue
			}
			cell("", 11, 6, line)
			pdf.Ln(2)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("%w: %v", utils.ErrExportFailed, err)
	}
	return buf.Bytes(), ExportFileName, nil
}

// selectFont embeds the configured unicode TTF under one family for every
// style used. A missing or unreadable font file logs and falls back to core
// Helvetica with Latin-1 substitution instead of failing the export.
func (s *ExportService) selectFont(pdf *gofpdf.Fpdf) (family string, latin1Only bool) {
	if s.FontPath == "" {
		return "Helvetica", true
	}
	for _, style := range []string{"", "B", "I"} {
		pdf.AddUTF8Font("unicode", style, s.FontPath)
	}
	if pdf.Err() {
		log.Printf("Could not load unicode font %s: %v", s.FontPath, pdf.Error())
		pdf.ClearError()
		return "Helvetica", true
	}
	return "unicode", false
}

// latin1Fallback substitutes runes the cp1252 core fonts cannot encode.
func latin1Fallback(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if r > 0xFF {
			r = '?'
		}
		out = append(out, r)
	}
	return string(out)
}

func (s *ExportService) placeImage(ctx context.Context, pdf *gofpdf.Fpdf, imageURL string, seq int) {
	data, imageType, err := s.fetchImage(ctx, imageURL)
	if err != nil {
		log.Printf("Skipping image embed for %s: %v", imageURL, err)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, imageURL, "", "L", false)
		pdf.Ln(2)
		return
	}

	name := fmt.Sprintf("itinerary-image-%d", seq)
	opts := gofpdf.ImageOptions{ImageType: imageType, ReadDpi: true}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if pdf.Err() {
		log.Printf("Could not register image %s: %v", imageURL, pdf.Error())
		pdf.ClearError()
		return
	}
	pdf.ImageOptions(name, -1, -1, 90, 0, true, opts, 0, "")
	pdf.Ln(4)
}

func (s *ExportService) fetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, "", fmt.Errorf("bad status: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, "", err
	}
	switch http.DetectContentType(data) {
	case "image/jpeg":
		return data, "JPG", nil
	case "image/png":
		return data, "PNG", nil
	default:
		return nil, "", fmt.Errorf("unsupported image type")
	}
}
