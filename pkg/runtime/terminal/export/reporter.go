package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/team-migration/pkg/models/domain"
)

type TableConfig struct {
	NameWidth  int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  28,
		ValueWidth: 48,
	}
}

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

type pricesReport struct {
	Profile string
	Locale  string
	Summary domain.PriceSummary
}

const pricesTemplate = `
Prices for {{.Profile}} ({{.Locale}})

{{separator}}
{{formatRow "Offer" "Price"}}
{{separator}}
{{formatRow "Annual (promotional)" (orNA .Summary.AnnualPromoPrice)}}
{{formatRow "Tax" (orNA .Summary.TaxLabelAnnualPromo)}}
{{formatRow "Annual (regular)" (orNA .Summary.AnnualRegularPrice)}}
{{formatRow "Tax" (orNA .Summary.TaxLabelAnnualRegular)}}
{{separator}}
`

// HandlePrices prints a price summary as a two-column table. Missing values
// show as n/a.
func (c *Reporter) HandlePrices(cfg domain.HostConfig, summary domain.PriceSummary) error {
	return c.render("prices", pricesTemplate, pricesReport{
		Profile: cfg.Profile,
		Locale:  cfg.PricingLocale(),
		Summary: summary,
	})
}

const modalTemplate = `
{{.Kind}} modal ({{.Template}}, {{.Locale}})
{{- with .Purchase}}

{{separator}}
{{formatRow "Header" .Header}}
{{formatRow "Price" (orNA .PriceMsg)}}
{{formatRow "Billing" (orNA .BillingMsg2)}}
{{formatRow "Billing (more)" .BillingMsg3}}
{{formatRow "Migration" (orNA .MigrationAction)}}
{{separator}}
{{- end}}
{{- with .AdobeID}}

{{separator}}
{{formatRow "Header" .Header}}
{{formatRow "Body" .Body}}
{{formatRow "Get started" .GetStartedBtn}}
{{separator}}
{{- end}}
{{- with .DownloadCSV}}

{{separator}}
{{formatRow "Header" .Header}}
{{formatRow "Licenses" .LicenseCount}}
{{formatRow "User list" .DownloadUserListURL}}
{{separator}}
{{- end}}
`

func (c *Reporter) HandleModal(view domain.ModalView) error {
	return c.render("modal", modalTemplate, view)
}

const profilesTemplate = `{{range .}}{{.Name}}	{{orNA (print .Environment)}}
{{end}}`

func (c *Reporter) HandleProfiles(profiles []domain.ConfigProfile) error {
	return c.render("profiles", profilesTemplate, profiles)
}

func (c *Reporter) render(name, tmpl string, data any) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, value interface{}) string {
			return fmt.Sprintf("| %-*s | %-*v |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
		"orNA": func(s string) string {
			if s == "" {
				return "n/a"
			}
			return s
		},
	}

	t, err := template.New(name).Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, data)
}
