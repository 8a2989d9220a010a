package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"gemini-provider/internal/readiness"
	"gemini-provider/pkg/gcpauth"
	"gemini-provider/pkg/gemini"
	"gemini-provider/pkg/log"
)

// cli carries what every subcommand needs. Flags are bound onto it.
type cli struct {
	l       log.Logger
	resolve readiness.KeyResolver

	baseURL     string
	credentials string
}

func newRootCmd(l log.Logger, resolve readiness.KeyResolver) *cobra.Command {
	c := &cli{l: l, resolve: resolve}

	root := &cobra.Command{
		Use:   "gemini-cli",
		Short: "Gemini API client",
		Long: `Talk to the Gemini generative-language API from the shell.

The API key is read from GOOGLE_AI_STUDIO_KEY, GEMINI_API_KEY or
GOOGLE_API_KEY, in that order. Use 'gemini-cli check' to validate
the key and connectivity before wiring the provider into other tools.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&c.baseURL, "base-url", "", "API base URL (default: "+gemini.DefaultAPIURL+")")
	root.PersistentFlags().StringVar(&c.credentials, "credentials", "", "Service account JSON for IAM-fronted endpoints")

	root.AddCommand(c.modelsCmd())
	root.AddCommand(c.modelCmd())
	root.AddCommand(c.generateCmd())
	root.AddCommand(c.checkCmd())
	return root
}

// --- models command ---

func (c *cli) modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd.Context())
			if err != nil {
				return err
			}
			models, err := client.ListModels(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing models: %w", err)
			}
			for _, m := range models {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}

// --- model command ---

func (c *cli) modelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "model <name>",
		Short: "Show one model's descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd.Context())
			if err != nil {
				return err
			}
			info, err := client.GetModel(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("getting model: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:        %s\n", info.Name)
			if info.DisplayName != nil {
				fmt.Fprintf(out, "Display:     %s\n", *info.DisplayName)
			}
			if info.Description != nil {
				fmt.Fprintf(out, "Description: %s\n", *info.Description)
			}
			if len(info.SupportedGenerationMethods) > 0 {
				fmt.Fprintf(out, "Methods:     %s\n", strings.Join(info.SupportedGenerationMethods, ", "))
			}
			return nil
		},
	}
}

// --- generate command ---

func (c *cli) generateCmd() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Send a single-turn prompt and print the raw response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd.Context())
			if err != nil {
				return err
			}
			text, err := client.GenerateContent(cmd.Context(), model, strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("generating content: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", gemini.DefaultModel, "Model name")
	return cmd
}

// --- check command ---

func (c *cli) checkCmd() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the API key and connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			httpClient, err := c.httpClient(cmd.Context())
			if err != nil {
				return err
			}
			checker := readiness.New(c.l, c.resolve, readiness.Options{
				Model:      model,
				BaseURL:    c.baseURL,
				HTTPClient: httpClient,
			})
			report, err := checker.Check(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Endpoint:  %s\n", report.Endpoint)
			fmt.Fprintf(out, "Model:     %s\n", report.Model)
			fmt.Fprintf(out, "Reachable: %t\n", report.Reachable)
			if report.Reachable {
				fmt.Fprintf(out, "Available: %t\n", report.ModelAvailable)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", gemini.DefaultModel, "Model expected to be available")
	return cmd
}

func (c *cli) httpClient(ctx context.Context) (*http.Client, error) {
	if c.credentials == "" {
		return nil, nil
	}
	hc, err := gcpauth.NewHTTPClient(ctx, gcpauth.Config{
		CredentialsPath: c.credentials,
		Timeout:         gemini.DefaultTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("loading credentials: %w", err)
	}
	return hc, nil
}

func (c *cli) client(ctx context.Context) (gemini.IGemini, error) {
	apiKey, err := readiness.ResolveAPIKey(c.resolve)
	if err != nil {
		return nil, err
	}
	httpClient, err := c.httpClient(ctx)
	if err != nil {
		return nil, err
	}
	return gemini.New(gemini.Config{
		APIKey:     apiKey,
		BaseURL:    c.baseURL,
		HTTPClient: httpClient,
	})
}
