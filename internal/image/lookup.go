// Package image resolves illustration URLs for exercises and meals. An
// optional Replicate-backed generator sits in front of a curated keyword
// table, so resolution always yields a usable URL.
package image

import "strings"

const (
	imageParams = "?w=400&h=300&fit=crop&crop=center&q=80"

	fallbackExercise = "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b" + imageParams
	fallbackFood     = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c" + imageParams
	fallbackGeneric  = fallbackExercise
)

// ExercisePrompt phrases an exercise name the way clients request its
// illustration, steering Lookup to the exercise table.
func ExercisePrompt(name string) string {
	return name + " exercise fitness gym demonstration realistic"
}

// MealPrompt phrases a meal name the way clients request its illustration,
// steering Lookup to the food table.
func MealPrompt(name string) string {
	return name + " healthy food meal delicious professional food photography"
}

type keywordImage struct {
	keyword string
	url     string
}

// Keyword tables are scanned in order, so more specific entries must precede
// the shorter substrings they contain ("plank hold" never wins after "plank",
// which is fine because they share a URL).
var exerciseImages = []keywordImage{
	{"push-ups", "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b" + imageParams},
	{"pushup", "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b" + imageParams},
	{"push up", "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b" + imageParams},
	{"squats", "https://images.unsplash.com/photo-1566351671647-63d7e2bfba74" + imageParams},
	{"squat", "https://images.unsplash.com/photo-1566351671647-63d7e2bfba74" + imageParams},
	{"plank", "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b" + imageParams},
	{"plank hold", "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b" + imageParams},
	{"lunges", "https://images.unsplash.com/photo-1518611012118-696072aa579a" + imageParams},
	{"lunge", "https://images.unsplash.com/photo-1518611012118-696072aa579a" + imageParams},
	{"burpees", "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b" + imageParams},
	{"burpee", "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b" + imageParams},
	{"mountain climber", "https://images.unsplash.com/photo-1587223962930-cb7ee86b0bf9" + imageParams},
	{"mountain climbers", "https://images.unsplash.com/photo-1587223962930-cb7ee86b0bf9" + imageParams},
	{"tricep dips", "https://images.unsplash.com/photo-1584464491033-06628f3a6b7b" + imageParams},
	{"tricep", "https://images.unsplash.com/photo-1584464491033-06628f3a6b7b" + imageParams},
	{"pike push", "https://images.unsplash.com/photo-1596357395217-80de13130e92" + imageParams},
	{"glute bridge", "https://images.unsplash.com/photo-1598300042247-d088f8ab3a91" + imageParams},
	{"glute", "https://images.unsplash.com/photo-1598300042247-d088f8ab3a91" + imageParams},
	{"calf raise", "https://images.unsplash.com/photo-1577221084712-45b0445d2b00" + imageParams},
	{"calf", "https://images.unsplash.com/photo-1577221084712-45b0445d2b00" + imageParams},
	{"russian twist", "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b" + imageParams},
	{"high knees", "https://images.unsplash.com/photo-1549476464-37392f717541" + imageParams},
	{"jumping jacks", "https://images.unsplash.com/photo-1549476464-37392f717541" + imageParams},
	{"sit-ups", "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b" + imageParams},
	{"deadlift", "https://images.unsplash.com/photo-1534438327276-14e5300c3a48" + imageParams},
	{"pull-ups", "https://images.unsplash.com/photo-1599058917765-a780eda07a3e" + imageParams},
	{"pull up", "https://images.unsplash.com/photo-1599058917765-a780eda07a3e" + imageParams},
}

var foodImages = []keywordImage{
	{"oatmeal", "https://images.unsplash.com/photo-1533089860892-a7c6f0a88666" + imageParams},
	{"greek yogurt", "https://images.unsplash.com/photo-1488477181946-6428a0291777" + imageParams},
	{"yogurt", "https://images.unsplash.com/photo-1488477181946-6428a0291777" + imageParams},
	{"scrambled eggs", "https://images.unsplash.com/photo-1482049016688-2d3e1b311543" + imageParams},
	{"eggs", "https://images.unsplash.com/photo-1482049016688-2d3e1b311543" + imageParams},
	{"chicken breast", "https://images.unsplash.com/photo-1604503468506-a8da13d82791" + imageParams},
	{"chicken", "https://images.unsplash.com/photo-1604503468506-a8da13d82791" + imageParams},
	{"grilled chicken", "https://images.unsplash.com/photo-1604503468506-a8da13d82791" + imageParams},
	{"quinoa", "https://images.unsplash.com/photo-1586201375761-83865001e31c" + imageParams},
	{"brown rice", "https://images.unsplash.com/photo-1586201375761-83865001e31c" + imageParams},
	{"veggie bowl", "https://images.unsplash.com/photo-1512621776951-a57141f2eefd" + imageParams},
	{"vegetables", "https://images.unsplash.com/photo-1512621776951-a57141f2eefd" + imageParams},
	{"mediterranean wrap", "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b" + imageParams},
	{"wrap", "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b" + imageParams},
	{"salmon", "https://images.unsplash.com/photo-1467003909585-2f8a72700288" + imageParams},
	{"fish", "https://images.unsplash.com/photo-1467003909585-2f8a72700288" + imageParams},
	{"cod", "https://images.unsplash.com/photo-1467003909585-2f8a72700288" + imageParams},
	{"fish & veggies", "https://images.unsplash.com/photo-1467003909585-2f8a72700288" + imageParams},
	{"protein shake", "https://images.unsplash.com/photo-1610970881699-44a5587cabec" + imageParams},
	{"smoothie", "https://images.unsplash.com/photo-1610970881699-44a5587cabec" + imageParams},
	{"nut mix", "https://images.unsplash.com/photo-1599599810769-bcde5a160d32" + imageParams},
	{"nuts", "https://images.unsplash.com/photo-1599599810769-bcde5a160d32" + imageParams},
	{"almonds", "https://images.unsplash.com/photo-1599599810769-bcde5a160d32" + imageParams},
	{"berries", "https://images.unsplash.com/photo-1506905925346-21bda4d32df4" + imageParams},
	{"apple", "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6" + imageParams},
	{"banana", "https://images.unsplash.com/photo-1587132137056-bfbf0166836e" + imageParams},
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func matchTable(prompt string, table []keywordImage) (string, bool) {
	for _, entry := range table {
		if strings.Contains(prompt, entry.keyword) {
			return entry.url, true
		}
	}
	return "", false
}

// Lookup maps a free-text prompt to a curated stock photo URL. Category hint
// words steer ambiguous prompts: a prompt mentioning "exercise" only matches
// the exercise table even if it also names a food. Uncategorized prompts try
// the exercise table before the food table.
func Lookup(prompt string) string {
	prompt = strings.ToLower(prompt)

	if containsAny(prompt, "exercise", "workout", "fitness", "gym") {
		if url, ok := matchTable(prompt, exerciseImages); ok {
			return url
		}
		return fallbackExercise
	}
	if containsAny(prompt, "food", "meal", "healthy", "delicious") {
		if url, ok := matchTable(prompt, foodImages); ok {
			return url
		}
		return fallbackFood
	}

	if url, ok := matchTable(prompt, exerciseImages); ok {
		return url
	}
	if url, ok := matchTable(prompt, foodImages); ok {
		return url
	}
	return fallbackGeneric
}
