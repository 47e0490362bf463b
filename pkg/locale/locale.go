// Package locale holds the static UI string catalog. Lookup of a missing key
// returns the key itself verbatim; there is no fallback locale.
package locale

import "strings"

const (
	LangEN = "en"
	LangZH = "zh"
)

// DefaultLang matches the reference build, which ships Traditional Chinese
// as the primary prose language.
const DefaultLang = LangZH

var translations = map[string]map[string]string{
	LangEN: {
		"title":                   "AI Travel PDF Generator",
		"subtitle":                "Create beautiful travel itineraries with AI",
		"addDay":                  "Add Day",
		"addLocation":             "Add Location",
		"removeDay":               "Remove Day",
		"removeLocation":          "Remove Location",
		"generateItinerary":       "Generate Itinerary",
		"back":                    "Back",
		"loading":                 "Loading...",
		"errorProcessingTripData": "An error occurred while processing trip data. Please try again.",
		"downloadPDF":             "Download PDF",
		"day":                     "Day",
		"day_2":                   "",
		"enterLocation":           "Enter a location",
		"preview":                 "Preview",
		"edit":                    "Edit",
		"selectImages":            "Select Images for Your Trip",
		"continueToIntroductions": "Continue to Introductions",
		"editIntroductions":       "Edit Introductions",
		"continueToPreview":       "Continue to Preview",
		"noImagesFound":           "No images found for {locationName}. Please try a different search term.",
		"backToForm":              "Back to Form",
		"tryAgain":                "Try Again",
		"failedToFetchImages":     "Failed to fetch images. Please try again.",
		"time":                    "Time",
		"allDays":                 "All Days",
		"documentTitle":           "Your Travel Itinerary",
		"noIntroduction":          "No introduction yet.",
	},
	LangZH: {
		"title":                   "AI 旅遊行程生成器",
		"subtitle":                "使用 AI 創建精美的旅遊行程",
		"addDay":                  "新增天數",
		"addLocation":             "新增地點",
		"removeDay":               "移除天數",
		"removeLocation":          "移除地點",
		"generateItinerary":       "生成行程",
		"back":                    "返回",
		"loading":                 "載入中...",
		"errorProcessingTripData": "處理行程資料時發生錯誤。請重試。",
		"downloadPDF":             "下載 PDF",
		"day":                     "第",
		"day_2":                   "天",
		"enterLocation":           "輸入地點",
		"preview":                 "預覽",
		"edit":                    "編輯",
		"selectImages":            "為您的行程選擇圖片",
		"continueToIntroductions": "繼續編輯介紹",
		"editIntroductions":       "編輯介紹",
		"continueToPreview":       "繼續預覽",
		"noImagesFound":           "找不到 {locationName} 的圖片。請嘗試不同的搜尋詞。",
		"backToForm":              "返回表單",
		"tryAgain":                "重試",
		"failedToFetchImages":     "獲取圖片失敗。請重試。",
		"time":                    "時間",
		"allDays":                 "所有天數",
		"documentTitle":           "您的旅行行程",
		"noIntroduction":          "暫無介紹。",
	},
}

// Supported reports whether lang has a catalog.
func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}

// Normalize maps request-supplied language tags onto catalog keys, falling
// back to the default language.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if Supported(lang) {
		return lang
	}
	return DefaultLang
}

// T looks up key in the lang catalog and substitutes {param} placeholders by
// exact string match. An unknown key comes back verbatim.
func T(lang, key string, params map[string]string) string {
	table := translations[lang]
	text, ok := table[key]
	if !ok {
		text = key
	}
	for param, value := range params {
		text = strings.ReplaceAll(text, "{"+param+"}", value)
	}
	return text
}
