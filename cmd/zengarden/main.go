package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/idilsaglam/zengarden/internal/cli"
)

func main() {
	// Optional .env next to the binary; absence is fine.
	_ = godotenv.Load()

	// Root flags (apply to every subcommand)
	verbose := flag.Bool("verbose", false, "enable log output")
	theme := flag.String("theme", "classic", "color theme: classic or mono")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	code := cli.Run(flag.Args(), cli.Options{
		Theme:   *theme,
		AppName: os.Getenv("ZENGARDEN_APP_NAME"),
		Tick:    tickFromEnv(),
	})
	os.Exit(code)
}

// tickFromEnv lets slow terminals lower the frame rate;
// zero means the TUI default.
func tickFromEnv() time.Duration {
	v := os.Getenv("ZENGARDEN_TICK_MS")
	if v == "" {
		return 0
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		log.Printf("[Main] ignoring bad ZENGARDEN_TICK_MS=%q", v)
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
