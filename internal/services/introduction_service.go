package services

import (
	"context"
	"log"
	"strings"
	"sync"

	"tripdoc/internal/models/trip_models"
	"tripdoc/internal/providers"
	"tripdoc/pkg/utils"
)

type IntroductionServiceInterface interface {
	// GenerateIntroductions produces one introduction per distinct location
	// name. A location whose generation fails is left absent from the map;
	// a pass where every generation fails is a retryable batch failure.
	GenerateIntroductions(ctx context.Context, draft trip_models.TripData, lang string) (map[string]string, error)
}

type IntroductionService struct {
	generator providers.IntroductionGenerator
}

func NewIntroductionService(generator providers.IntroductionGenerator) IntroductionServiceInterface {
	return &IntroductionService{generator: generator}
}

func (s *IntroductionService) GenerateIntroductions(ctx context.Context, draft trip_models.TripData, lang string) (map[string]string, error) {
	names := distinctLocationNames(draft)
	if len(names) == 0 {
		return map[string]string{}, nil
	}

	// Generations are independent across locations, so run them
	// concurrently and collect under one lock.
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		intros   = make(map[string]string, len(names))
		failures int
	)
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			text, err := s.generator.GenerateIntroduction(ctx, name, lang)
			if err != nil {
				log.Printf("Introduction generation failed for %q: %v", name, err)
				mu.Lock()
				failures++
				mu.Unlock()
				return
			}
			mu.Lock()
			intros[name] = text
			mu.Unlock()
		}(name)
	}
	wg.Wait()

	if failures == len(names) {
		return nil, utils.ErrIntroductionUnavailable
	}
	return intros, nil
}

func distinctLocationNames(draft trip_models.TripData) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, day := range draft.Days {
		for _, location := range day.Locations {
			name := strings.TrimSpace(location.Name)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
