package main

import (
	"testing"

	"github.com/fitforge/fitforge/internal/e2etest"
	"github.com/fitforge/fitforge/internal/testhelpers"
)

// startTestServer boots the application with an in-memory database, a
// dynamically allocated port and no AI credentials.
func startTestServer(t *testing.T) *e2etest.Server {
	t.Helper()

	lookupEnv := func(key string) (string, bool) {
		switch key {
		case "FITFORGE_ADDR":
			return "localhost:0", true
		case "FITFORGE_SQLITE_URL":
			return ":memory:", true
		default:
			return "", false
		}
	}

	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), lookupEnv, run)
	if err != nil {
		t.Fatalf("start server: %v", err)
	}
	return server
}

func validPlanRequest() map[string]any {
	return map[string]any{
		"name":              "Taylor",
		"age":               32,
		"gender":            "female",
		"height":            167,
		"weight":            72,
		"fitnessGoal":       "weight_loss",
		"fitnessLevel":      "beginner",
		"workoutLocation":   "home",
		"dietaryPreference": "vegetarian",
		"planDays":          7,
	}
}
