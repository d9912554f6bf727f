package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/modelmux/modelmux/pkg/classifier"
	"github.com/modelmux/modelmux/pkg/config"
	"github.com/modelmux/modelmux/pkg/provider"
	"github.com/modelmux/modelmux/pkg/registry"
	"github.com/modelmux/modelmux/pkg/router"
)

var debugFlag bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "modelmux",
		Short: "Routes prompts to the best AI model by task type and cost",
		Long: `Modelmux classifies a prompt into a task type, picks the model with
	the best fit for the chosen budget policy, and forwards the prompt to
	it through OpenRouter.`,
	}

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	rootCmd.AddCommand(askCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(modelsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if !debugFlag {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func askCmd() *cobra.Command {
	var (
		budgetFlag     string
		dryRunFlag     bool
		classifierFlag string
		maxTokens      int
		jsonFlag       bool
	)

	cmd := &cobra.Command{
		Use:   "ask [prompt]",
		Short: "Route a prompt to the best model and send it",
		Long: `Classifies the prompt, selects the best model under the budget
	policy, and sends the prompt to it.

	Use --dry-run to see the routing decision without calling any model.
	Use --classifier llm to classify with a hosted model instead of the
	keyword engine (falls back to keywords if the call fails).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := args[0]
			logger := newLogger()
			defer func() { _ = logger.Sync() }()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			budget := budgetFlag
			if budget == "" {
				budget = cfg.DefaultBudget
			}
			method := classifierFlag
			if method == "" {
				method = cfg.ClassifierMethod
			}

			opts := []router.Option{
				router.WithBudget(router.ParseBudget(budget)),
				router.WithMaxTokens(maxTokens),
				router.WithLogger(logger),
			}

			if cfg.HasAPIKey() {
				p, err := provider.NewOpenRouter(provider.OpenRouterConfig{
					APIKey:  cfg.APIKey,
					BaseURL: cfg.BaseURL,
					Referer: cfg.Referer,
					Title:   cfg.Title,
				})
				if err != nil {
					return fmt.Errorf("failed to create provider: %w", err)
				}
				opts = append(opts, router.WithProvider(p))
			} else if !dryRunFlag {
				return fmt.Errorf("no OpenRouter API key: set OPENROUTER_API_KEY or use --dry-run")
			}

			if method == "llm" {
				opts = append(opts, router.WithLLMClassification(cfg.ClassifierModel))
			}

			r := router.New(registry.Default(), opts...)
			ctx := cmd.Context()

			if dryRunFlag {
				c, decision := r.Decide(ctx, prompt)
				if jsonFlag {
					return printJSON(map[string]any{
						"classification": c,
						"decision":       decision,
					})
				}
				printDryRun(prompt, c, decision)
				return nil
			}

			resp, err := r.Route(ctx, prompt)
			if err != nil {
				var callErr *router.CallError
				if errors.As(err, &callErr) {
					fmt.Fprintf(os.Stderr, "Model call failed: %v\n", callErr.Err)
					fmt.Fprintf(os.Stderr, "Would have called %s (%s) for task %q\n",
						callErr.Decision.Model.Name, callErr.Decision.Model.ID, callErr.Decision.TaskType)
				}
				return err
			}

			if jsonFlag {
				return printJSON(resp)
			}
			printResponse(resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&budgetFlag, "budget", "", "budget policy: best, balanced, or cheap")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "show the routing decision without calling the model")
	cmd.Flags().StringVar(&classifierFlag, "classifier", "", "classification method: rules or llm")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", provider.DefaultMaxTokens, "max completion tokens")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print machine-readable JSON")

	return cmd
}

func classifyCmd() *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "classify [prompt]",
		Short: "Classify a prompt without routing or calling a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := classifier.Classify(args[0])
			if jsonFlag {
				return printJSON(result)
			}

			fmt.Printf("Task type:  %s\n", result.TaskType)
			fmt.Printf("Confidence: %.2f\n", result.Confidence)
			fmt.Printf("Complexity: %s\n", result.Complexity)
			fmt.Printf("Keywords:   %s\n", formatKeywords(result.KeywordsMatched))
			fmt.Printf("Method:     %s\n", result.Method)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print machine-readable JSON")

	return cmd
}

func modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the model registry with scores and costs",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.Default()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MODEL\tID\tPROVIDER\tCONTEXT\t$/M IN\t$/M OUT\tIMAGES")
			for _, m := range reg.Models() {
				images := "no"
				if m.SupportsImages {
					images = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%.2f\t%s\n",
					m.Name, m.ID, m.Provider, m.MaxContext,
					m.CostPerMillionInput, m.CostPerMillionOutput, images)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println()
			w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			header := "MODEL"
			for _, t := range registry.TaskTypes {
				header += "\t" + strings.ToUpper(string(t))
			}
			fmt.Fprintln(w, header)
			for _, m := range reg.Models() {
				row := m.Name
				for _, t := range registry.TaskTypes {
					row += fmt.Sprintf("\t%.1f", m.ScoreFor(t))
				}
				fmt.Fprintln(w, row)
			}
			return w.Flush()
		},
	}
}

func printDryRun(prompt string, c classifier.Result, decision router.Decision) {
	shown := prompt
	if len(shown) > 80 {
		shown = shown[:80] + "..."
	}

	fmt.Println("=== Routing Decision (dry run) ===")
	fmt.Printf("Prompt:     %s\n", shown)
	fmt.Printf("Task type:  %s\n", decision.TaskType)
	fmt.Printf("Confidence: %.2f\n", c.Confidence)
	fmt.Printf("Keywords:   %s\n", formatKeywords(c.KeywordsMatched))
	fmt.Printf("Method:     %s\n", c.Method)
	fmt.Printf("Model:      %s (%s)\n", decision.Model.Name, decision.Model.ID)
	fmt.Printf("Score:      %g/10\n", decision.Score)
	fmt.Printf("Budget:     %s\n", decision.Budget)
	fmt.Printf("Cost:       $%g/M in, $%g/M out\n",
		decision.Model.CostPerMillionInput, decision.Model.CostPerMillionOutput)
	fmt.Println()
	fmt.Println("--- Alternatives ---")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, alt := range decision.Alternatives {
		fmt.Fprintf(w, "  %s\tscore: %g/10\tcost: $%g/M in\n",
			alt.Model.Name, alt.Score, alt.Model.CostPerMillionInput)
	}
	_ = w.Flush()
}

func printResponse(resp *router.Response) {
	fmt.Println("=== modelmux ===")
	fmt.Printf("Task type:  %s\n", resp.Decision.TaskType)
	fmt.Printf("Model:      %s\n", resp.Decision.Model.Name)
	fmt.Printf("Score:      %g/10\n", resp.Decision.Score)
	fmt.Printf("Latency:    %.1fms\n", resp.LatencyMS)
	fmt.Printf("Est. cost:  $%.6f\n", resp.EstimatedCost)
	fmt.Printf("Reasoning:  %s\n", resp.Decision.Reasoning)
	fmt.Println()
	fmt.Println("--- Response ---")
	fmt.Println(resp.Content)
}

func formatKeywords(keywords []string) string {
	if len(keywords) == 0 {
		return "(none)"
	}
	return strings.Join(keywords, ", ")
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
