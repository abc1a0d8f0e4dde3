package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	LLM    LLMConfig    `mapstructure:"llm"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port      int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`

	// UploadDir is where uploaded documents are written before extraction.
	// Files never outlive the request that created them.
	UploadDir      string `mapstructure:"upload_dir"       validate:"required"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes" validate:"required,gt=0"`

	CORSAllowedOrigins     []string `mapstructure:"cors_allowed_origins"     validate:"required,min=1"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// Supported values for LLMConfig.Provider.
const (
	ProviderTogether = "together"
	ProviderOpenAI   = "openai"
	ProviderGemini   = "gemini"
	ProviderOffline  = "offline"
)

// DefaultTogetherEndpoint is the default llm.endpoint. Providers other than
// together treat it as unset and use their SDK's default base URL.
const DefaultTogetherEndpoint = "https://api.together.xyz/inference"

// LLMConfig contains the settings for the remote inference endpoint.
type LLMConfig struct {
	Provider string `mapstructure:"provider" validate:"required,oneof=together openai gemini offline"`

	// APIKey is the bearer credential for the inference provider.
	APIKey   string `mapstructure:"api_key"  validate:"required_unless=Provider offline"`
	Endpoint string `mapstructure:"endpoint" validate:"omitempty,url"`
	Model    string `mapstructure:"model"    validate:"required"`

	MaxTokens         int     `mapstructure:"max_tokens"         validate:"gt=0"`
	Temperature       float64 `mapstructure:"temperature"        validate:"gte=0,lte=2"`
	TopP              float64 `mapstructure:"top_p"              validate:"gt=0,lte=1"`
	RepetitionPenalty float64 `mapstructure:"repetition_penalty" validate:"gte=0"`

	// PromptTemplatePath optionally replaces the built-in prompt template.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`
}
