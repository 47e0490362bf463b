// cmd/fx/provider_fx/init.go
package providerfx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripdoc/internal/providers"
	mem "tripdoc/pkg/memcache"
)

var Module = fx.Provide(
	ProvideImageSearcher,
	ProvideIntroductionGenerator,
	ProvideGeocodeCache,
	ProvideMapper)

// IntroConfig holds configuration for introduction generators
type IntroConfig struct {
	Provider string
	APIKey   string
	Model    string
}

func ProvideImageSearcher() providers.ImageSearcher {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	searchEngineID := os.Getenv("GOOGLE_SEARCH_ENGINE_ID")
	if apiKey == "" || searchEngineID == "" {
		log.Println("Image search credentials missing, image batches will fail until configured")
	}
	return providers.NewGoogleImageSearcher(apiKey, searchEngineID)
}

// ProvideIntroductionGenerator creates a generator based on environment variables
func ProvideIntroductionGenerator() (providers.IntroductionGenerator, error) {
	config := getIntroConfig()

	log.Printf("Initializing %s introduction generator with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return providers.NewOpenAIIntroductionGenerator(config.APIKey, config.Model), nil
	case "gemini":
		generator, err := providers.NewGeminiIntroductionGenerator(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini generator: %w", err)
		}
		return generator, nil
	default:
		return nil, fmt.Errorf("unsupported introduction provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func ProvideGeocodeCache() mem.GeocodeCache {
	return mem.NewGeocodeResults()
}

// ProvideMapper creates the Mapbox client. A missing token is not fatal:
// the map step degrades to an empty view.
func ProvideMapper(cache mem.GeocodeCache) providers.Mapper {
	token := os.Getenv("MAPBOX_ACCESS_TOKEN")
	if token == "" {
		log.Println("MAPBOX_ACCESS_TOKEN is empty, map step will render no markers")
	}
	return providers.NewMapboxClient(token, cache)
}

// getIntroConfig reads configuration from environment variables
func getIntroConfig() IntroConfig {
	provider := getEnvWithDefault("INTRO_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-3.5-turbo")
		if apiKey == "" {
			log.Println("OPENAI_API_KEY is empty, introduction batches will fail until configured")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Println("GEMINI_API_KEY is empty, introduction batches will fail until configured")
		}
	}

	return IntroConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
