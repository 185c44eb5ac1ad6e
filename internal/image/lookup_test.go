package image_test

import (
	"strings"
	"testing"

	"github.com/fitforge/fitforge/internal/image"
)

func Test_Lookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{
			name:   "exercise prompt matches exercise table",
			prompt: "Push-ups exercise fitness gym demonstration realistic",
			want:   "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop&crop=center&q=80",
		},
		{
			name:   "squat demonstration",
			prompt: "Squats exercise proper form",
			want:   "https://images.unsplash.com/photo-1566351671647-63d7e2bfba74?w=400&h=300&fit=crop&crop=center&q=80",
		},
		{
			name:   "exercise hint without table match falls back to exercise photo",
			prompt: "kettlebell swing workout",
			want:   "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop&crop=center&q=80",
		},
		{
			name:   "food prompt matches food table",
			prompt: "Grilled Chicken healthy meal photography",
			want:   "https://images.unsplash.com/photo-1604503468506-a8da13d82791?w=400&h=300&fit=crop&crop=center&q=80",
		},
		{
			name:   "food hint without table match falls back to food photo",
			prompt: "delicious mystery casserole",
			want:   "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=300&fit=crop&crop=center&q=80",
		},
		{
			name:   "exercise hint wins over food keyword",
			prompt: "chicken wing flapping exercise",
			want:   "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop&crop=center&q=80",
		},
		{
			name:   "uncategorized prompt checks exercise table first",
			prompt: "deadlift technique",
			want:   "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=400&h=300&fit=crop&crop=center&q=80",
		},
		{
			name:   "uncategorized food keyword",
			prompt: "banana bread recipe",
			want:   "https://images.unsplash.com/photo-1587132137056-bfbf0166836e?w=400&h=300&fit=crop&crop=center&q=80",
		},
		{
			name:   "no match at all",
			prompt: "abstract watercolor painting",
			want:   "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop&crop=center&q=80",
		},
		{
			name:   "case insensitive",
			prompt: "PLANK HOLD EXERCISE",
			want:   "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400&h=300&fit=crop&crop=center&q=80",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := image.Lookup(tt.prompt); got != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.prompt, got, tt.want)
			}
		})
	}
}

func Test_Prompts_routeToMatchingTable(t *testing.T) {
	t.Parallel()

	// The push-up URL lives in the exercise table, the oatmeal URL in the
	// food table. The prompt phrasing decides which table Lookup consults.
	if got, want := image.Lookup(image.ExercisePrompt("Push-ups")),
		"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop&crop=center&q=80"; got != want {
		t.Errorf("exercise prompt lookup = %s, want %s", got, want)
	}
	if got, want := image.Lookup(image.MealPrompt("Oatmeal with berries")),
		"https://images.unsplash.com/photo-1533089860892-a7c6f0a88666?w=400&h=300&fit=crop&crop=center&q=80"; got != want {
		t.Errorf("meal prompt lookup = %s, want %s", got, want)
	}
}

func Test_Lookup_alwaysReturnsURL(t *testing.T) {
	t.Parallel()

	for _, prompt := range []string{"", "   ", "🏋️", strings.Repeat("x", 10_000)} {
		if got := image.Lookup(prompt); !strings.HasPrefix(got, "https://") {
			t.Errorf("Lookup(%q) = %q, want an https URL", prompt, got)
		}
	}
}
