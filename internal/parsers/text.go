package parsers

import "github.com/hamb0n-3/sigscan/internal/types"

// textExtensions lists every extension the text parser claims outright.
// Unknown extensions also land here via the ForPath fallback.
var textExtensions = []string{
	"txt", "md", "log", "cfg", "ini", "env", "yaml", "yml",
	"html", "htm", "py", "js", "ts", "java", "rb", "go", "rs",
	"php", "cs", "c", "cpp", "h", "sh", "bash", "zsh",
}

// TextParser reads a file as plain text, one record per line.
type TextParser struct{}

func (p *TextParser) Name() string { return "text" }

func (p *TextParser) Extensions() []string { return textExtensions }

func (p *TextParser) Parse(path string) ([]types.Record, error) {
	content, ok := ReadTextSafely(path)
	if !ok {
		return nil, nil
	}
	return lineRecords(path, content), nil
}
