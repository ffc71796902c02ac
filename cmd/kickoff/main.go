// Command kickoff is a conversational project-generation assistant.
// It gathers project intent over six questions and synthesizes a project
// plan with a task breakdown.
//
// Usage:
//
//	GEMINI_API_KEY=gk-... kickoff [flags]
//
// Flags:
//
//	-model string    Model ID (default: provider default)
//	-api-key string  API key (overrides GEMINI_API_KEY)
//	-out string      Path to write the generated project JSON
//	-delay duration  Cosmetic pause before completion fires
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fwojciec/kickoff"
	"github.com/fwojciec/kickoff/agent"
	bt "github.com/fwojciec/kickoff/bubbletea"
	"github.com/fwojciec/kickoff/gemini"
	kjson "github.com/fwojciec/kickoff/json"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kickoff: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		model  = flag.String("model", "", "Model ID (provider-specific)")
		apiKey = flag.String("api-key", "", "API key (overrides GEMINI_API_KEY)")
		out    = flag.String("out", "project.json", "Path to write the generated project JSON")
		delay  = flag.Duration("delay", 3*time.Second, "Pause before completion fires")
	)
	flag.Parse()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	key := *apiKey
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key == "" {
		return fmt.Errorf("no API key: set GEMINI_API_KEY or pass -api-key")
	}

	var genOpts []gemini.Option
	if *model != "" {
		genOpts = append(genOpts, gemini.WithModel(*model))
	}
	gen, err := gemini.New(ctx, key, genOpts...)
	if err != nil {
		return err
	}

	// The TUI supplies a fresh event sink per turn; the orchestrator's
	// handler indirects through this variable. Both are touched only by
	// the turn goroutine.
	var onEvent func(kickoff.Event)

	var (
		project *kickoff.GeneratedProject
		genErr  error
	)

	orch := agent.New(gen,
		agent.WithModel(*model),
		agent.WithCompletionDelay(*delay),
		agent.WithEventHandler(func(e kickoff.Event) {
			if onEvent != nil {
				onEvent(e)
			}
		}),
		agent.WithCompletionHandler(func(p *kickoff.GeneratedProject, err error) {
			project, genErr = p, err
		}),
	)

	turn := func(ctx context.Context, text string, h func(kickoff.Event)) error {
		onEvent = h
		defer func() { onEvent = nil }()
		return orch.SubmitTurn(ctx, text, false)
	}

	m := bt.New(turn, orch.Messages(), kickoff.DefaultTheme())
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	switch {
	case genErr != nil:
		return fmt.Errorf("generation failed: %w", genErr)
	case project != nil:
		if err := kjson.SaveProject(*out, *project); err != nil {
			return err
		}
		fmt.Printf("wrote %q with %d tasks to %s\n", project.Name, len(project.Tasks), *out)
	default:
		fmt.Println("session abandoned, nothing written")
	}
	return nil
}
