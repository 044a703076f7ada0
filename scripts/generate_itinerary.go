package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	generativeAI "github.com/FACorreiaa/wanderplan/internal/api/generative_ai"
	"github.com/FACorreiaa/wanderplan/internal/api/itinerary"
	"github.com/FACorreiaa/wanderplan/internal/types"
)

var (
	model       = flag.String("model", generativeAI.DefaultModel, "the model name, e.g. gemini-2.5-flash")
	destination = flag.String("destination", "Kyoto, Japan", "trip destination")
	duration    = flag.Int("days", types.DefaultTripDuration, "trip length in days (1-14)")
	travelers   = flag.Int("travelers", types.DefaultTravelers, "number of travelers")
	budget      = flag.String("budget", string(types.DefaultBudgetTier), "Budget, Moderate or Luxury")
	interests   = flag.String("interests", "Food,History", "comma separated interests")
	timeout     = flag.Duration("timeout", 2*time.Minute, "generation timeout")
)

// Runs the itinerary pipeline once and prints the result as JSON.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug, TimeFormat: time.Kitchen}))

	prefs := types.TripPreferences{
		Destination: *destination,
		Duration:    *duration,
		Travelers:   *travelers,
		Budget:      types.BudgetTier(*budget),
		Interests:   []string{},
	}
	for _, tag := range strings.Split(*interests, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			prefs.Interests = append(prefs.Interests, tag)
		}
	}
	if err := prefs.Validate(); err != nil {
		log.Fatal(err)
	}

	client := generativeAI.NewAIClient(os.Getenv("GOOGLE_GEMINI_API_KEY"), *model, logger)
	service := itinerary.NewServiceImpl(client, itinerary.DefaultTemperature, *timeout, logger)

	result, err := service.Generate(context.Background(), prefs)
	if err != nil {
		log.Fatalf("%s (%v)", types.GenericGenerationMessage, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "%d days, %d citations\n", len(result.Days), len(result.GroundingMetadata))
}
