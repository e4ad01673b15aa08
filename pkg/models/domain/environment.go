package domain

// Environment is the deployment tag supplied by the host app.
type Environment string

const (
	EnvironmentProd       Environment = "prod"
	EnvironmentStage      Environment = "stage"
	EnvironmentAWSPreview Environment = "awspreview"
	EnvironmentAWSPerf    Environment = "awsperf"
)

// Known reports whether the tag maps to an explicit set of pricing endpoints.
func (e Environment) Known() bool {
	switch e {
	case EnvironmentProd, EnvironmentStage, EnvironmentAWSPreview, EnvironmentAWSPerf:
		return true
	}
	return false
}

// EndpointPair holds the two offer URL templates. {0} is the country code, {1} the locale.
type EndpointPair struct {
	PromoURL   string
	RegularURL string
}
