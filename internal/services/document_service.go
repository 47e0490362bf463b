package services

import (
	"fmt"
	"strings"

	"tripdoc/internal/models/trip_models"
	"tripdoc/pkg/locale"
)

const (
	LayoutModern     = "modern"
	LayoutClassic    = "classic"
	LayoutMinimalist = "minimalist"
)

type DocumentServiceInterface interface {
	// Render projects the draft into a markdown document. It is total over
	// any well-formed draft: empty days, empty names, and missing images or
	// introductions all render without placeholders leaking nil.
	Render(draft trip_models.TripData, layout, lang string) string
}

type DocumentService struct{}

func NewDocumentService() DocumentServiceInterface {
	return &DocumentService{}
}

func (s *DocumentService) Render(draft trip_models.TripData, layout, lang string) string {
	lang = locale.Normalize(lang)
	switch layout {
	case LayoutClassic:
		return renderClassic(draft, lang)
	case LayoutMinimalist:
		return renderMinimalist(draft, lang)
	default:
		return renderModern(draft, lang)
	}
}

func dayHeading(lang string, dayNumber int) string {
	heading := fmt.Sprintf("%s %d %s", locale.T(lang, "day", nil), dayNumber, locale.T(lang, "day_2", nil))
	return strings.TrimSpace(heading)
}

func introductionFor(draft trip_models.TripData, name, lang string) string {
	if text, ok := draft.Introductions[name]; ok && text != "" {
		return text
	}
	return locale.T(lang, "noIntroduction", nil)
}

func renderModern(draft trip_models.TripData, lang string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", locale.T(lang, "documentTitle", nil))
	for dayIndex, day := range draft.Days {
		fmt.Fprintf(&b, "\n## %s\n", dayHeading(lang, dayIndex+1))
		for _, location := range day.Locations {
			fmt.Fprintf(&b, "\n### %s - %s\n", location.Name, location.Time)
			fmt.Fprintf(&b, "\n![%s](%s)\n", location.Name, draft.Images[location.Name])
			fmt.Fprintf(&b, "\n%s\n", introductionFor(draft, location.Name, lang))
		}
	}
	return b.String()
}

func renderClassic(draft trip_models.TripData, lang string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", locale.T(lang, "documentTitle", nil))
	for dayIndex, day := range draft.Days {
		b.WriteString("\n---\n")
		fmt.Fprintf(&b, "\n## %s\n", dayHeading(lang, dayIndex+1))
		for _, location := range day.Locations {
			fmt.Fprintf(&b, "\n### %s\n", location.Name)
			fmt.Fprintf(&b, "\n**%s:** %s\n", locale.T(lang, "time", nil), location.Time)
			fmt.Fprintf(&b, "\n![%s](%s)\n", location.Name, draft.Images[location.Name])
			fmt.Fprintf(&b, "\n%s\n", introductionFor(draft, location.Name, lang))
		}
	}
	return b.String()
}

// minimalist drops the images and keeps each location to one line.
func renderMinimalist(draft trip_models.TripData, lang string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", locale.T(lang, "documentTitle", nil))
	for dayIndex, day := range draft.Days {
		fmt.Fprintf(&b, "\n## %s\n", dayHeading(lang, dayIndex+1))
		b.WriteString("\n")
		for _, location := range day.Locations {
			fmt.Fprintf(&b, "- %s %s: %s\n", location.Time, location.Name, introductionFor(draft, location.Name, lang))
		}
	}
	return b.String()
}
