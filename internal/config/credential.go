package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const redacted = "[REDACTED]"

// Secret holds a credential. It never prints its value; use Reveal to read it.
type Secret string

func (s Secret) Reveal() string { return string(s) }

func (s Secret) String() string { return redacted }

func (s Secret) GoString() string { return redacted }

func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// ConfigurationError reports a required variable that could not be resolved.
type ConfigurationError struct {
	Variable    string
	Description string
	EnvFile     string
	Err         error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to read %s while looking up %s: %v", e.EnvFile, e.Variable, e.Err)
	}
	return fmt.Sprintf("%s is not set. Make sure the %s file contains %s.", e.Description, e.EnvFile, e.Variable)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

type CredentialOptions struct {
	// Variable is the name looked up in the process environment and the dotfile.
	Variable string
	// Description names the credential in error messages, defaults to Variable.
	Description string
	// EnvFile is an optional KEY=VALUE file. A missing file is ignored.
	EnvFile string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// OpenAICredentialOptions returns the options used to load the OpenAI API key.
func OpenAICredentialOptions(envFile string) CredentialOptions {
	return CredentialOptions{
		Variable:    ENV_OPENAI_API_KEY,
		Description: "OpenAI API key",
		EnvFile:     envFile,
	}
}

// OllamaCredentialOptions returns the options used to load the Ollama endpoint.
func OllamaCredentialOptions(envFile string) CredentialOptions {
	return CredentialOptions{
		Variable:    ENV_OLLAMA_ENDPOINT,
		Description: "Ollama endpoint",
		EnvFile:     envFile,
	}
}

// LoadCredential resolves opts.Variable from the process environment, falling
// back to the dotfile. The process environment is read but never modified.
func LoadCredential(opts CredentialOptions) (Secret, error) {
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	description := opts.Description
	if description == "" {
		description = opts.Variable
	}
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DEFAULT_ENV_FILE
	}

	if value, ok := lookup(opts.Variable); ok && strings.TrimSpace(value) != "" {
		return Secret(value), nil
	}

	fileValues, err := readEnvFile(envFile)
	if err != nil {
		return "", &ConfigurationError{
			Variable:    opts.Variable,
			Description: description,
			EnvFile:     envFile,
			Err:         err,
		}
	}
	if value := fileValues[opts.Variable]; strings.TrimSpace(value) != "" {
		return Secret(value), nil
	}

	return "", &ConfigurationError{
		Variable:    opts.Variable,
		Description: description,
		EnvFile:     envFile,
	}
}

func readEnvFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	return values, err
}
