package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arjun/codequest/internal/app"
	"github.com/arjun/codequest/internal/config"
	"github.com/arjun/codequest/internal/llm"
	"github.com/arjun/codequest/internal/orchestrator"
	"github.com/arjun/codequest/internal/questiongen"
	"github.com/arjun/codequest/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	orch, cfg, cleanup, err := buildOrchestrator(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.Run(orch, cfg)
}

// buildOrchestrator wires config, store, and the question generator chain.
// The returned cleanup closes the store.
func buildOrchestrator(cmd *cobra.Command) (*orchestrator.Orchestrator, config.Config, func(), error) {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, config.Config{}, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, config.Config{}, nil, fmt.Errorf("open store: %w", err)
	}

	eventRepo, err := st.EventRepo()
	if err != nil {
		st.Close()
		return nil, config.Config{}, nil, fmt.Errorf("open event repo: %w", err)
	}

	// Generator chain: LLM when configured, canned templates otherwise,
	// placeholder as the floor. Practice works without an API key.
	var llmGen questiongen.Generator
	llmCfg, ok := resolveLLMConfig(cfg)
	if ok {
		provider, perr := llm.NewProvider(ctx, llmCfg, eventRepo)
		if perr != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", perr)
			fmt.Fprintln(os.Stderr, "Falling back to built-in question templates.")
		} else {
			llmGen = questiongen.NewLLM(provider, questiongen.DefaultConfig())
		}
	}
	gen := questiongen.NewFallback(llmGen, questiongen.NewTemplate())

	orch := orchestrator.New(st.RunRepo(), gen,
		orchestrator.WithBandingPolicy(cfg.BandingPolicy()),
		orchestrator.WithNewRunToggles(cfg.Progression.Aggressive, cfg.Progression.Remediation))

	return orch, cfg, func() { st.Close() }, nil
}

// loadConfig reads config.toml using the --config flag when given.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}

// resolveLLMConfig layers LLM settings: built-in defaults, then the
// config file, then env vars, then bare-key discovery as a convenience.
// Returns false when no provider has a usable key.
func resolveLLMConfig(cfg config.Config) (llm.Config, bool) {
	out := llm.ConfigFromEnv()

	if cfg.LLM.Provider != "" && os.Getenv("CODEQUEST_LLM_PROVIDER") == "" {
		out.Provider = cfg.LLM.Provider
	}
	if cfg.LLM.Model != "" {
		switch out.Provider {
		case "anthropic":
			out.Anthropic.Model = cfg.LLM.Model
		case "openai":
			out.OpenAI.Model = cfg.LLM.Model
		case "gemini":
			out.Gemini.Model = cfg.LLM.Model
		}
	}
	if cfg.LLM.RequestsPerMinute > 0 {
		out.RateLimit.RequestsPerMinute = cfg.LLM.RequestsPerMinute
	}
	if cfg.LLM.Burst > 0 {
		out.RateLimit.Burst = cfg.LLM.Burst
	}

	if err := out.Validate(); err == nil {
		return out, true
	}

	discovered, ok := llm.DiscoverConfig()
	if !ok {
		return llm.Config{}, false
	}
	discovered.RateLimit = out.RateLimit
	return discovered, true
}
