package cmd

import (
	"context"
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/klemjul/tutorchat/internal/app"
	"github.com/klemjul/tutorchat/internal/chat"
	"github.com/klemjul/tutorchat/internal/config"
	"github.com/klemjul/tutorchat/internal/llm"
	"github.com/klemjul/tutorchat/internal/logger"
	"github.com/klemjul/tutorchat/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const tuiTitle = "tutorchat: Docker tutor"

func RootCommand(app app.App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tutorchat",
		Short: "Chat with an AI Docker tutor in the command line.",
		Args:  cobra.NoArgs,
		Example: `
tutorchat   # Start a session with the default provider and model
tutorchat --markdown   # Render replies as markdown
tutorchat --tui   # Run the session in a full-screen interface
	`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app)
		},
		PreRunE:       validate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().SortFlags = false

	rootCmd.Flags().String("provider", config.DEFAULT_PROVIDER,
		fmt.Sprintf("LLM provider to use. (env: %s)", config.GetEnvWithPrefix(config.ENV_PROVIDER)))
	rootCmd.Flags().String("model", config.DEFAULT_MODEL,
		fmt.Sprintf("LLM model to use, depends on the provider. (env: %s)", config.GetEnvWithPrefix(config.ENV_MODEL)))
	rootCmd.Flags().String("env-file", config.DEFAULT_ENV_FILE,
		fmt.Sprintf("KEY=VALUE file read for the provider credential. (env: %s)", config.GetEnvWithPrefix(config.ENV_ENV_FILE)))
	rootCmd.Flags().Bool("markdown", false,
		fmt.Sprintf("Render replies as markdown. (env: %s)", config.GetEnvWithPrefix(config.ENV_MARKDOWN)))
	rootCmd.Flags().Bool("tui", false,
		fmt.Sprintf("Run tutorchat in a full-screen interface. (env: %s)", config.GetEnvWithPrefix(config.ENV_TUI)))
	rootCmd.Flags().BoolP("verbose", "v", false,
		fmt.Sprintf("Write debug lines to stderr. (env: %s)", config.GetEnvWithPrefix(config.ENV_VERBOSE)))

	viper.BindPFlag(config.ENV_PROVIDER, rootCmd.Flags().Lookup("provider"))
	viper.BindPFlag(config.ENV_MODEL, rootCmd.Flags().Lookup("model"))
	viper.BindPFlag(config.ENV_ENV_FILE, rootCmd.Flags().Lookup("env-file"))
	viper.BindPFlag(config.ENV_MARKDOWN, rootCmd.Flags().Lookup("markdown"))
	viper.BindPFlag(config.ENV_TUI, rootCmd.Flags().Lookup("tui"))
	viper.BindPFlag(config.ENV_VERBOSE, rootCmd.Flags().Lookup("verbose"))

	viper.SetEnvPrefix(config.ENV_PREFIX)
	viper.AutomaticEnv()

	return rootCmd
}

func validate(cmd *cobra.Command, args []string) error {
	provider := viper.GetString(config.ENV_PROVIDER)
	if !slices.Contains(llm.LLMProviders, llm.LLMProvider(provider)) {
		return fmt.Errorf("invalid provider '%s'. Valid providers are: %v", provider, llm.LLMProviders)
	}

	model := viper.GetString(config.ENV_MODEL)
	if model == "" {
		return fmt.Errorf("model must be specified '%s'", model)
	}

	return nil
}

func run(cmd *cobra.Command, app app.App) error {
	provider := llm.LLMProvider(viper.GetString(config.ENV_PROVIDER))
	model := viper.GetString(config.ENV_MODEL)
	envFile := viper.GetString(config.ENV_ENV_FILE)
	markdown := viper.GetBool(config.ENV_MARKDOWN)
	tui := viper.GetBool(config.ENV_TUI)
	verbose := viper.GetBool(config.ENV_VERBOSE)

	credentialOptions, err := llm.CredentialOptions(provider, envFile)
	if err != nil {
		return err
	}
	credential, err := app.Credentials().Load(credentialOptions)
	if err != nil {
		return err
	}

	client, err := app.LLM().NewClient(provider, llm.LLMClientOptions{
		Model:      model,
		Credential: credential,
	})
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	transcript := chat.NewTranscript()

	if tui {
		TUIModel := app.TUI().InitialModel(ui.InitialModelOptions{
			Title:          tuiTitle,
			Transcript:     transcript,
			GetBotResponse: makeLLMBotResponder(client, cmd.Context()),
		})
		finalModel, err := app.TUI().Run(TUIModel)
		if err != nil {
			return fmt.Errorf("error running interactive mode: %w", err)
		}
		if m, ok := finalModel.(ui.ChatTUIModel); ok {
			return m.Err()
		}
		return nil
	}

	loopOptions := chat.LoopOptions{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Logger: logger.New(cmd.ErrOrStderr(), verbose),
	}
	if markdown {
		loopOptions.Render = app.Format().FormatMarkdown
	}
	return chat.NewLoop(client, transcript, loopOptions).Run(cmd.Context())
}

func makeLLMBotResponder(client llm.LLMClient, ctx context.Context) func([]llm.Message) tea.Cmd {
	return func(messages []llm.Message) tea.Cmd {
		return func() tea.Msg {
			return ui.ReplyMsg(llm.GetReply(ctx, client, messages))
		}
	}
}

// FormatError renders err the way it is shown to the operator on stderr.
func FormatError(err error) string {
	var configErr *config.ConfigurationError
	if errors.As(err, &configErr) {
		return fmt.Sprintf("Configuration error: %v", configErr)
	}
	return fmt.Sprintf("Unexpected error: %v", err)
}
