package domain

import (
	"fmt"
	"strings"
)

type MigrationStatus string

const (
	MigrationWindowEndedForTeamAccount         MigrationStatus = "MIGRATION_WINDOW_ENDED_FOR_TEAM_ACCOUNT"
	MigrationWindowEndedForMultiuserProAccount MigrationStatus = "MIGRATION_WINDOW_ENDED_FOR_MULTIUSER_PRO_ACCOUNT"
	DowngradedTeamToFree                       MigrationStatus = "DOWNGRADED_TEAM_TO_FREE"
	DowngradedMultiuserProToFree               MigrationStatus = "DOWNGRADED_MULTIUSER_PRO_TO_FREE"
)

func (s MigrationStatus) WindowEnded() bool {
	return s == MigrationWindowEndedForTeamAccount || s == MigrationWindowEndedForMultiuserProAccount
}

func (s MigrationStatus) Downgraded() bool {
	return s == DowngradedTeamToFree || s == DowngradedMultiuserProToFree
}

// HostConfig is the per-account configuration handed over by the host app.
type HostConfig struct {
	Profile          string
	Environment      Environment
	Country          string
	Language         string
	PluginHostDomain string
	AppRoot          string

	MigrationStatus         MigrationStatus
	IsDismissible           bool
	IsAdobeIDCreated        bool
	ShowPurchaseOptionModal bool
	ShowAdobeIDOptionModal  bool
	NumOfActiveUsers        int
	CurrentLicenseCount     int

	PurchaseURL         string
	FAQURL              string
	CreateAdobeIDURL    string
	DownloadUserListURL string
}

// CountryCode is the upper-cased country used in pricing requests.
func (c HostConfig) CountryCode() string {
	return strings.ToUpper(c.Country)
}

// PricingLocale is the COUNTRY_language locale expected by the offers API.
func (c HostConfig) PricingLocale() string {
	return c.CountryCode() + "_" + c.Language
}

type ConfigProfile struct {
	Name        string
	Environment Environment
}

func (c ConfigProfile) String() string {
	return fmt.Sprintf("%s:%s", c.Environment, c.Name)
}
