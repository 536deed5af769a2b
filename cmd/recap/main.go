// Command recap generates one weekly recap from the command line: it prints
// the transcript and writes the audio clip next to the working directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fantasy-recap-service/internal/app/recaps"
	"fantasy-recap-service/internal/audio"
	"fantasy-recap-service/internal/config"
	"fantasy-recap-service/internal/logging"
	"fantasy-recap-service/internal/providers"
	"fantasy-recap-service/internal/providers/espn"
	"fantasy-recap-service/internal/recap"
	"fantasy-recap-service/internal/season"
	"fantasy-recap-service/internal/tts/gtranslate"
)

func main() {
	os.Exit(run())
}

func run() int {
	year := flag.Int("year", 0, "season year (defaults to the current year)")
	week := flag.Int("week", 0, "week to recap (defaults to the most recently completed week)")
	personality := flag.String("personality", "", "recap tone: default, dramatic, or snarky")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		return 1
	}

	tone, err := recap.ParseTone(*personality)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "fantasy-recap-cli",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	leagueID, _ := cfg.ESPN.LeagueIDInt()
	client := espn.NewClient(espn.Config{
		BaseURL:  cfg.ESPN.BaseURL,
		LeagueID: leagueID,
		ESPNS2:   cfg.ESPN.ESPNS2,
		SWID:     cfg.ESPN.SWID,
	})
	provider := providers.NewRetryingProvider(client, logger, nil, "espn",
		cfg.Provider.MaxRetries, cfg.Provider.RetryInterval)
	synth := gtranslate.NewSynthesizer(gtranslate.Config{
		BaseURL:  cfg.TTS.BaseURL,
		Language: cfg.TTS.Language,
	})
	store := audio.NewStore(cfg.AudioDir)
	svc := recaps.NewService(provider, synth, store, logger, nil)

	res, err := svc.Generate(ctx, recaps.Request{Year: *year, Week: *week, Tone: tone})
	if err != nil {
		if errors.Is(err, season.ErrNotStarted) {
			fmt.Println("The season has no completed weeks yet; nothing to recap.")
			return 0
		}
		fmt.Fprintln(os.Stderr, "recap generation failed:", err)
		return 1
	}

	fmt.Println(res.Summary.Text)
	fmt.Println()
	fmt.Println("Audio saved to", res.AudioFilename)
	return 0
}
