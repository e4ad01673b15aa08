package i18n

import (
	"slices"
	"strings"
)

const (
	DefaultLocale = "en_US"
	rootBundle    = "root"
	bundleFile    = "ui-strings.json"
)

var supportedLocales = []string{
	"ca_ES", "cs_CZ", "da_DK", "de_DE", "en_GB", "es_ES", "eu_ES", "en_US", "fi_FI", "fr_FR",
	"hr_HR", "hu_HU", "in_ID", "is_IS", "it_IT", "ja_JP", "ko_KR", "ms_MY", "nb_NO", "nl_NL",
	"nn_NO", "no_NO", "pl_PL", "pt_BR", "pt_PT", "ro_RO", "ru_RU", "sk_SK", "sl_SI", "sv_SE",
	"th_TH", "tr_TR", "uk_UA", "vi_VN", "zh_CN", "zh_TW", "zz_ZZ",
}

// ResolveLocale builds a language_COUNTRY locale and falls back to en_US when
// it is not supported.
func ResolveLocale(language, country string) string {
	locale := strings.ToLower(language) + "_" + strings.ToUpper(country)
	if slices.Contains(supportedLocales, locale) {
		return locale
	}
	return DefaultLocale
}

// bundleDir maps a locale to its bundle directory; en_US lives in "root".
func bundleDir(locale string) string {
	if locale == DefaultLocale {
		return rootBundle
	}
	return locale
}
