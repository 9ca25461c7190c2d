package config

import "fmt"

const (
	ENV_PREFIX   = "TUTORCHAT"
	ENV_PROVIDER = "PROVIDER"
	ENV_MODEL    = "MODEL"
	ENV_ENV_FILE = "ENV_FILE"
	ENV_MARKDOWN = "MARKDOWN"
	ENV_TUI      = "TUI"
	ENV_VERBOSE  = "VERBOSE"

	ENV_OPENAI_API_KEY  = "OPENAI_API_KEY"
	ENV_OLLAMA_ENDPOINT = "OLLAMA_ENDPOINT"

	DEFAULT_PROVIDER    = "openai"
	DEFAULT_MODEL       = "gpt-3.5-turbo"
	DEFAULT_ENV_FILE    = ".env"
	DEFAULT_TEMPERATURE = 0.6
	DEFAULT_MAX_TOKENS  = 100

	FALLBACK_REPLY = "I'm sorry, but I encountered an error while processing your request."
)

func GetEnvWithPrefix(env string) string {
	return fmt.Sprintf("%s_%s", ENV_PREFIX, env)
}
