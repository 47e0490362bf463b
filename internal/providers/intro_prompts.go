package providers

import (
	"fmt"

	"tripdoc/pkg/locale"
)

// Fixed instruction pair for introduction generation: a brief travel
// introduction, roughly 50-100 characters, in the session's prose language.
func introductionPrompts(locationName, lang string) (system, user string) {
	switch locale.Normalize(lang) {
	case locale.LangEN:
		system = "You are a helpful assistant that generates brief travel introductions in English."
		user = fmt.Sprintf("Write a brief travel introduction for %s, about 50-100 words.", locationName)
	default:
		system = "You are a helpful assistant that generates brief travel introductions in Traditional Chinese."
		user = fmt.Sprintf("請用繁體中文為%s寫一個簡短的旅遊介紹，大約50-100字。", locationName)
	}
	return system, user
}
