package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"askgpt/pkg/client"
	"askgpt/pkg/config"
	"askgpt/pkg/logging"
	"askgpt/pkg/types"
)

const defaultMessage = "Hello"

type streamPrinter struct{}

func (streamPrinter) OnContent(content string) {
	fmt.Print(content)
}

func (streamPrinter) OnError(err error) {
	fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
}

func (streamPrinter) OnComplete() {
	fmt.Println()
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "askgpt [message]",
		Short: "Send a chat message to the OpenAI API and print the reply",
		Args:  cobra.MaximumNArgs(1),
		Run:   runAsk,
	}

	rootCmd.PersistentFlags().String("model", "", "Model to use (default from GPT_MODEL or gpt-3.5-turbo)")
	rootCmd.PersistentFlags().String("system", "", "Optional system message sent before the user message")
	rootCmd.PersistentFlags().Bool("stream", false, "Stream the reply as it is generated")
	rootCmd.PersistentFlags().Float64("temperature", 0, "Sampling temperature (0 = provider default)")
	rootCmd.PersistentFlags().Int("max-tokens", 0, "Completion token limit (0 = provider default)")
	rootCmd.PersistentFlags().Bool("json", false, "Print the full decoded response as JSON")

	askCmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Send one chat message (same as running with no subcommand)",
		Args:  cobra.MaximumNArgs(1),
		Run:   runAsk,
	}

	setupCmd := &cobra.Command{
		Use:   "setup",
		Short: "Save your API key to a .env file",
		Run: func(cmd *cobra.Command, args []string) {
			reader := bufio.NewReader(os.Stdin)
			fmt.Print("Enter your OpenAI API key: ")
			apiKey, _ := reader.ReadString('\n')
			apiKey = strings.TrimSpace(apiKey)

			envContent := fmt.Sprintf("%s=%s\n", config.EnvAPIKey, apiKey)
			if err := os.WriteFile(".env", []byte(envContent), 0o600); err != nil {
				fmt.Fprintf(os.Stderr, "Error creating .env file: %v\n", err)
				os.Exit(1)
			}

			fmt.Println("API key saved to .env file successfully!")
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion()
		},
	}

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runAsk(cmd *cobra.Command, args []string) {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	message := defaultMessage
	if len(args) > 0 {
		message = args[0]
	}

	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = cfg.Model
	}

	var messages []types.ChatMessage
	if system, _ := cmd.Flags().GetString("system"); system != "" {
		messages = append(messages, types.ChatMessage{
			Role:    types.RoleSystem,
			Content: system,
		})
	}
	messages = append(messages, types.ChatMessage{
		Role:    types.RoleUser,
		Content: message,
	})

	temperature, _ := cmd.Flags().GetFloat64("temperature")
	maxTokens, _ := cmd.Flags().GetInt("max-tokens")

	req := types.ChatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	c := client.NewClient(cfg.APIKey,
		client.WithBaseURL(cfg.BaseURL),
		client.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))

	ctx := context.Background()

	if stream, _ := cmd.Flags().GetBool("stream"); stream {
		if err := c.StreamChat(ctx, req, streamPrinter{}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	resp, err := c.RequestChat(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if dumpJSON, _ := cmd.Flags().GetBool("json"); dumpJSON {
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	if len(resp.Choices) == 0 {
		fmt.Fprintln(os.Stderr, "Error: response contained no choices")
		os.Exit(1)
	}
	fmt.Println(resp.Choices[0].Message.Content)
}
