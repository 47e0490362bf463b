package services

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPDFFromMarkdown(t *testing.T) {
	svc := NewExportService("")

	markdown := "# Your Travel Itinerary\n\n## Day 1\n\n### Tokyo Tower - 09:00\n\nAn iconic tower.\n\n---\n"
	data, name, err := svc.BuildPDF(context.Background(), markdown)
	require.NoError(t, err)
	assert.Equal(t, "travel_itinerary.pdf", name)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestBuildPDFUnreachableImageFallsBack(t *testing.T) {
	svc := NewExportService("")

	markdown := "# Trip\n![Tokyo Tower](http://127.0.0.1:1/img.jpg)\nText after.\n"
	data, _, err := svc.BuildPDF(context.Background(), markdown)
	require.NoError(t, err, "a missing image never fails the export")
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestBuildPDFEmbedsPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(buf.Bytes())
	}))
	defer server.Close()

	svc := NewExportService("")
	withImage, _, err := svc.BuildPDF(context.Background(), "# Trip\n!["+"Spot"+"]("+server.URL+"/img.png)\n")
	require.NoError(t, err)
	plain, _, err := svc.BuildPDF(context.Background(), "# Trip\n")
	require.NoError(t, err)

	assert.Greater(t, len(withImage), len(plain), "embedded image grows the document")
}

func TestLatin1FallbackSubstitutesWideRunes(t *testing.T) {
	assert.Equal(t, "??????", latin1Fallback("您的旅行行程"))
	assert.Equal(t, "? 1 ?", latin1Fallback("第 1 天"))
	assert.Equal(t, "Café", latin1Fallback("Café"))
	assert.Equal(t, "plain ascii", latin1Fallback("plain ascii"))
}

func TestBuildPDFChineseWithoutUnicodeFont(t *testing.T) {
	svc := NewExportService("")

	markdown := "# 您的旅行行程\n\n## 第 1 天\n\n### 東京鐵塔 - 09:00\n\n暫無介紹。\n"
	data, _, err := svc.BuildPDF(context.Background(), markdown)
	require.NoError(t, err, "CJK text never fails the export, it degrades")
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestBuildPDFUnreadableFontFallsBack(t *testing.T) {
	svc := NewExportService("/nonexistent/font.ttf")

	data, name, err := svc.BuildPDF(context.Background(), "# 您的旅行行程\n")
	require.NoError(t, err)
	assert.Equal(t, ExportFileName, name)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestBuildPDFEmptyMarkdown(t *testing.T) {
	svc := NewExportService("")

	data, name, err := svc.BuildPDF(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, ExportFileName, name)
	assert.NotEmpty(t, data)
}
