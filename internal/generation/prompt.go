package generation

import (
	"fmt"
	"os"
	"strings"
	"text/template"
)

// MaxPromptContentRunes bounds how much content is embedded in a prompt.
const MaxPromptContentRunes = 4000

// DefaultPromptTemplate asks for a bare JSON array of question/answer objects.
// The template receives a PromptData value.
const DefaultPromptTemplate = `Please analyze the following educational content and generate between {{.MinCards}} and {{.MaxCards}} high-quality flashcards in Q&A format.

Requirements:
- Create clear, concise questions that test understanding
- Provide accurate, informative answers
- Cover key concepts, definitions, and important details
- Vary question types (definitions, explanations, applications, comparisons)
- Ensure questions are specific and answers are comprehensive

Content to analyze:
{{.Content}}

Please respond with ONLY a valid JSON array in this exact format:
[
    {"question": "What is...", "answer": "..."},
    {"question": "How does...", "answer": "..."},
    ...
]

Generate at least {{.MinCards}} and at most {{.MaxCards}} flashcards.
`

// PromptData is the value a prompt template is executed with.
type PromptData struct {
	Content  string
	MinCards int
	MaxCards int
}

// Prompt renders flashcard prompts from a template.
type Prompt struct {
	tmpl *template.Template
}

// NewPrompt parses text as a prompt template.
func NewPrompt(text string) (*Prompt, error) {
	tmpl, err := template.New("flashcards").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}
	return &Prompt{tmpl: tmpl}, nil
}

// LoadPrompt returns the built-in prompt when path is empty, otherwise the
// template read from path.
func LoadPrompt(path string) (*Prompt, error) {
	if path == "" {
		return NewPrompt(DefaultPromptTemplate)
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template: %v", ErrInvalidConfig, err)
	}
	return NewPrompt(string(text))
}

// Render embeds the first MaxPromptContentRunes characters of content.
func (p *Prompt) Render(content string) (string, error) {
	var sb strings.Builder
	data := PromptData{
		Content:  truncateRunes(content, MaxPromptContentRunes),
		MinCards: MinCards,
		MaxCards: MaxCards,
	}
	if err := p.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return sb.String(), nil
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
