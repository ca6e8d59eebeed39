package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/lytx-reports/pkg/models/domain"
)

type TableConfig struct {
	NameWidth        int
	ValueWidth       int
	DescriptionWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:        24,
		ValueWidth:       12,
		DescriptionWidth: 60,
	}
}

// Reporter prints a run summary to the console as text tables
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(summary *domain.Summary) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, value interface{}, desc string) string {
			return fmt.Sprintf("| %-*s | %-*v | %-*s |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value,
				c.config.DescriptionWidth, desc)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.DescriptionWidth+2))
		},
	}

	tmpl := `
{{.Title}} ({{.Period.Duration}} days)
Period: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}}
{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}{{if .Details}}{{separator}}
{{formatRow "Name" "Value" "Description"}}
{{separator}}
{{range .Details}}{{formatRow .Name .Value .Description}}
{{end}}{{separator}}
{{end}}{{end}}`

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, summary)
}
