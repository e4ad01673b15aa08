package config

import (
	"context"
	"fmt"

	"github.com/de-tools/team-migration/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry reads host account profiles from an ini file. Each section is one
// profile; keys mirror the settings the host app hands to the plugin.
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.ConfigProfile, error)
	GetConfig(ctx context.Context, profile string) (domain.HostConfig, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles file: %w", err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

// NewRegistryFromBytes is used by tests and by callers holding the file in memory.
func NewRegistryFromBytes(data []byte) (Registry, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]domain.ConfigProfile, error) {
	var profiles []domain.ConfigProfile
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, domain.ConfigProfile{
			Name:        section.Name(),
			Environment: domain.Environment(section.Key("environment").String()),
		})
	}
	return profiles, nil
}

func (r *iniRegistry) GetConfig(_ context.Context, profile string) (domain.HostConfig, error) {
	section, err := r.cfg.GetSection(profile)
	if err != nil || len(section.Keys()) == 0 {
		return domain.HostConfig{}, fmt.Errorf("profile %s not found", profile)
	}

	return domain.HostConfig{
		Profile:          profile,
		Environment:      domain.Environment(section.Key("environment").String()),
		Country:          section.Key("country").MustString("US"),
		Language:         section.Key("language").MustString("en"),
		PluginHostDomain: section.Key("plugin_host_domain").String(),
		AppRoot:          section.Key("app_root").String(),

		MigrationStatus:         domain.MigrationStatus(section.Key("migration_status").String()),
		IsDismissible:           section.Key("is_dismissible").MustBool(false),
		IsAdobeIDCreated:        section.Key("is_adobe_id_created").MustBool(false),
		ShowPurchaseOptionModal: section.Key("show_purchase_option_modal").MustBool(false),
		ShowAdobeIDOptionModal:  section.Key("show_adobe_id_option_modal").MustBool(false),
		NumOfActiveUsers:        section.Key("num_of_active_users").MustInt(0),
		CurrentLicenseCount:     section.Key("current_license_count").MustInt(0),

		PurchaseURL:         section.Key("purchase_url").String(),
		FAQURL:              section.Key("faq_url").String(),
		CreateAdobeIDURL:    section.Key("create_adobe_id_url").String(),
		DownloadUserListURL: section.Key("download_user_list_url").String(),
	}, nil
}
