package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"tripdoc/internal/models/trip_models"
	"tripdoc/internal/providers"
	"tripdoc/pkg/utils"
)

type ImageServiceInterface interface {
	// FetchCandidates runs the image batch pass: one search per distinct
	// location name across the whole draft. A location whose search fails
	// individually degrades to zero candidates; a pass where every search
	// fails is a batch failure the caller surfaces as retryable.
	FetchCandidates(ctx context.Context, draft trip_models.TripData) (map[string][]string, error)
}

type ImageService struct {
	searcher providers.ImageSearcher
}

func NewImageService(searcher providers.ImageSearcher) ImageServiceInterface {
	return &ImageService{searcher: searcher}
}

func (s *ImageService) FetchCandidates(ctx context.Context, draft trip_models.TripData) (map[string][]string, error) {
	candidates := make(map[string][]string)
	attempts, failures := 0, 0

	for _, day := range draft.Days {
		for _, location := range day.Locations {
			name := strings.TrimSpace(location.Name)
			if name == "" {
				continue
			}
			// Candidates are keyed by name, so duplicate names share
			// one query and one candidate list.
			if _, done := candidates[name]; done {
				continue
			}
			attempts++

			urls, err := s.searcher.SearchImages(ctx, name)
			if err != nil {
				if errors.Is(err, utils.ErrImageSearchUnavailable) || ctx.Err() != nil {
					return nil, utils.ErrImageSearchUnavailable
				}
				log.Printf("Image search failed for %q: %v", name, err)
				failures++
				candidates[name] = []string{}
				continue
			}
			if urls == nil {
				urls = []string{}
			}
			candidates[name] = urls
		}
	}

	if attempts > 0 && failures == attempts {
		return nil, utils.ErrImageSearchUnavailable
	}
	return candidates, nil
}

// NamesWithoutCandidates lists the location names whose search came back
// empty, for the warning icon next to those locations.
func NamesWithoutCandidates(candidates map[string][]string) []string {
	out := make([]string, 0)
	for name, urls := range candidates {
		if len(urls) == 0 {
			out = append(out, name)
		}
	}
	return out
}
