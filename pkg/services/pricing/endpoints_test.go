package pricing

import (
	"strings"
	"testing"

	"github.com/de-tools/team-migration/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveEndpoints(t *testing.T) {
	stage := ResolveEndpoints(domain.EnvironmentStage)
	prod := ResolveEndpoints(domain.EnvironmentProd)

	assert.True(t, strings.HasPrefix(prod.PromoURL, "https://bps-il.adobe.io/jil-api/offers/2A02777A415E0FBCF8E64199394D7CA6?"))
	assert.True(t, strings.HasPrefix(prod.RegularURL, "https://bps-il.adobe.io/jil-api/offers/1F61C22FE9B64715930972A648B9DF78?"))
	assert.True(t, strings.HasSuffix(prod.PromoURL, "api_key=dc-prod-sign-jil"))

	assert.True(t, strings.HasPrefix(stage.PromoURL, "https://bps-il-stage.adobe.io/"))
	assert.True(t, strings.HasSuffix(stage.RegularURL, "api_key=dc-stage-sign-jil"))

	for _, env := range []domain.Environment{domain.EnvironmentAWSPreview, domain.EnvironmentAWSPerf} {
		assert.Equal(t, stage, ResolveEndpoints(env), "env %s", env)
	}
}

func TestResolveEndpoints_UnknownFallsBackToStaging(t *testing.T) {
	stage := ResolveEndpoints(domain.EnvironmentStage)
	for _, env := range []domain.Environment{"", "production", "PROD", "dev", "stag"} {
		assert.Equal(t, stage, ResolveEndpoints(env), "env %q", env)
		assert.Equal(t, ResolveEndpoints(env), ResolveEndpoints(env))
	}
}

func TestResolveEndpoints_Placeholders(t *testing.T) {
	pair := ResolveEndpoints(domain.EnvironmentProd)
	for _, u := range []string{pair.PromoURL, pair.RegularURL} {
		assert.Contains(t, u, "service_providers=PRICING&country={0}&locale={1}&show_availability_dates=false")
	}
}
