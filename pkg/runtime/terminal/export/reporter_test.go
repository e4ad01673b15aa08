package export

import (
	"bytes"
	"testing"

	"github.com/de-tools/team-migration/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_HandlePrices(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	err := r.HandlePrices(
		domain.HostConfig{Profile: "acme", Country: "de", Language: "de"},
		domain.PriceSummary{AnnualPromoPrice: "14,99 €", TaxLabelAnnualPromo: "inkl. MwSt."},
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Prices for acme (DE_de)")
	assert.Contains(t, out, "14,99 €")
	assert.Contains(t, out, "inkl. MwSt.")
	assert.Contains(t, out, "n/a")
}

func TestReporter_HandleModal(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	err := r.HandleModal(domain.ModalView{
		Kind:     domain.ModalDownloadCSV,
		Template: domain.TemplateDownloadCSV,
		Locale:   "en_US",
		DownloadCSV: &domain.DownloadCSVModal{
			Header:              "Before you buy",
			LicenseCount:        7,
			DownloadUserListURL: "https://users.csv",
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "download-csv modal (TeamMigrationDownloadCsvModal, en_US)")
	assert.Contains(t, out, "Before you buy")
	assert.Contains(t, out, "https://users.csv")
	assert.NotContains(t, out, "Get started")
}

func TestReporter_HandleProfiles(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	err := r.HandleProfiles([]domain.ConfigProfile{
		{Name: "acme", Environment: domain.EnvironmentProd},
		{Name: "solo"},
	})
	require.NoError(t, err)
	assert.Equal(t, "acme\tprod\nsolo\tn/a\n", buf.String())
}
