// Command promptour runs a guided prompt-engineering walkthrough in the
// terminal: narrated lessons whose examples are sent live to a hosted LLM.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/germanamz/promptour/cmd/promptour/internal/styles"
	"github.com/germanamz/promptour/pkg/course"
	"github.com/joho/godotenv"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: promptour [flags]\n\nRun a prompt-engineering lesson against a live model.\n\nFlags:\n")
		flag.PrintDefaults()
	}

	configPath := flag.String("config", "promptour.yaml", "path to configuration file (defaults used if missing)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	lessonName := flag.String("lesson", "", "lesson to run (default: interactive pick)")
	list := flag.Bool("list", false, "list available lessons and exit")
	width := flag.Int("width", 100, "render width in columns")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		printLessonList()
		return
	}

	if err := run(*configPath, *lessonName, *width); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadDotEnv loads environment variables from path. If the file does not
// exist it is silently ignored so that .env files remain optional.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func printLessonList() {
	for _, m := range course.List() {
		fmt.Printf("%s  %s\n", styles.TitleStyle.Render(m.Name), m.Title)
		fmt.Printf("    %s\n", styles.DimStyle.Render(m.Description))
	}
}

// pickLesson asks the user to choose from the embedded lessons.
func pickLesson() (string, error) {
	metas := course.List()
	if len(metas) == 0 {
		return "", fmt.Errorf("no lessons embedded")
	}

	opts := make([]huh.Option[string], len(metas))
	for i, m := range metas {
		opts[i] = huh.NewOption(fmt.Sprintf("%s — %s", m.Title, m.Description), m.Name)
	}

	var name string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Pick a lesson").
			Options(opts...).
			Value(&name),
	)).Run(); err != nil {
		return "", err
	}

	return name, nil
}

// run loads configuration, resolves the lesson, and executes it sequentially
// against the configured provider.
func run(configPath, lessonName string, width int) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := course.LoadConfig(configPath)
	if err != nil {
		return err
	}

	completer, err := cfg.NewCompleter()
	if err != nil {
		return err
	}

	if lessonName == "" {
		lessonName, err = pickLesson()
		if err != nil {
			return err
		}
	}

	lesson, err := course.Get(lessonName)
	if err != nil {
		return err
	}

	runner := &course.Runner{
		Completer: completer,
		View:      newTermView(os.Stdout, width),
	}

	return runner.Run(ctx, lesson)
}
