package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/de-tools/team-migration/pkg/models/domain"
	"github.com/de-tools/team-migration/pkg/services/events"
	"github.com/de-tools/team-migration/pkg/services/i18n"
	"github.com/de-tools/team-migration/pkg/services/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	strings *i18n.Strings
	err     error
}

func (s staticSource) For(context.Context, string, string) (*i18n.Strings, error) {
	return s.strings, s.err
}

type fakePrices struct {
	summary domain.PriceSummary
	calls   int
}

func (f *fakePrices) GetPrices(_ context.Context, _ domain.HostConfig, _ pricing.Labels, callback func(domain.PriceSummary)) {
	f.calls++
	callback(f.summary)
}

func (f *fakePrices) Summary(context.Context, domain.HostConfig, pricing.Labels) domain.PriceSummary {
	return f.summary
}

func (f *fakePrices) Refresh(context.Context, domain.HostConfig, pricing.Labels) domain.PriceSummary {
	return f.summary
}

type recordingSink struct {
	events   []string
	profiles []string
}

func (r *recordingSink) Log(ctx context.Context, name string) {
	r.events = append(r.events, name)
	r.profiles = append(r.profiles, events.ProfileFromContext(ctx))
}

var testStrings = i18n.NewStrings("en_US", map[string]string{
	"welcomeMsgForFreeAccount":        "welcome",
	"purchaseModalHeader":             "header",
	"purchaseMsg":                     "purchase",
	"buyNowBtnText":                   "buy",
	"faqContent":                      "faq {0}",
	"migrationActionMsg":              "create {0}",
	"billingMsg1":                     "window ended",
	"billingMsg2":                     "then {0} ({1})",
	"billingMsg3":                     "learn {0}",
	"regularPriceMsg":                 "regular {0} ({1})",
	"promotionalPriceMsg":             "promo {0} ({1})",
	"adobeIdModalHeader":              "adobe header",
	"contactAdminMsg":                 "contact admin",
	"getStartedBtn":                   "start {0}",
	"createAdobeIdMsg":                "create id",
	"createAdobeIdMsgAfterDowngraded": "create id after downgrade",
	"downloadCsvModalHeader":          "csv header",
	"downloadCsvMsg1":                 "csv 1",
	"downloadCsvMsg2":                 "csv 2",
	"downloadBtn":                     "download {0}",
	"skipDownloadBtn":                 "skip {0}",
})

var fullPrices = domain.PriceSummary{
	AnnualPromoPrice:      "$14.99",
	TaxLabelAnnualPromo:   "excl. tax",
	AnnualRegularPrice:    "$29.99",
	TaxLabelAnnualRegular: "incl. tax",
}

func baseConfig() domain.HostConfig {
	return domain.HostConfig{
		Profile:                 "acme",
		Country:                 "us",
		Language:                "en",
		AppRoot:                 "https://secure.example.com/",
		IsDismissible:           true,
		ShowPurchaseOptionModal: true,
		NumOfActiveUsers:        3,
		CurrentLicenseCount:     5,
		PurchaseURL:             "https://buy",
		FAQURL:                  "https://faq",
		CreateAdobeIDURL:        "https://id",
		DownloadUserListURL:     "https://users.csv",
	}
}

func newTestService(prices *fakePrices, sink events.Sink) Service {
	return NewService(staticSource{strings: testStrings}, prices, sink)
}

func TestSelect(t *testing.T) {
	cfg := domain.HostConfig{ShowPurchaseOptionModal: true, ShowAdobeIDOptionModal: true}
	assert.Equal(t, domain.ModalPurchase, Select(cfg))

	cfg.ShowPurchaseOptionModal = false
	assert.Equal(t, domain.ModalAdobeID, Select(cfg))

	cfg.ShowAdobeIDOptionModal = false
	assert.Equal(t, domain.ModalNone, Select(cfg))
}

func TestStart_NoModal(t *testing.T) {
	cfg := baseConfig()
	cfg.ShowPurchaseOptionModal = false

	_, err := newTestService(&fakePrices{}, nil).Start(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrNoModal)
}

func TestPurchaseModal_BeforeWindowEnds(t *testing.T) {
	prices := &fakePrices{summary: fullPrices}
	view, err := newTestService(prices, nil).Start(context.Background(), baseConfig())
	require.NoError(t, err)

	assert.Equal(t, domain.ModalPurchase, view.Kind)
	assert.Equal(t, domain.TemplatePurchaseWithCreateAdobeID, view.Template)
	assert.Equal(t, "en_US", view.Locale)
	assert.Equal(t, domain.ModalOptions{Closable: true, Backdrop: "static"}, view.Options)
	require.NotNil(t, view.Purchase)

	p := view.Purchase
	assert.Equal(t, "welcome", p.WelcomeMsg)
	assert.Equal(t, "faq https://faq", p.FAQContent)
	assert.Equal(t, "create https://id", p.MigrationAction)
	assert.Equal(t, "learn https://faq", p.BillingMsg3)
	assert.False(t, p.BillingMsg3IsText)
	assert.Equal(t, "promo $14.99 (excl. tax)", p.PriceMsg)
	assert.Equal(t, "then $29.99 (incl. tax)", p.BillingMsg2)
	assert.Equal(t, 1, prices.calls)
}

func TestPurchaseModal_AdobeIDAlreadyCreated(t *testing.T) {
	cfg := baseConfig()
	cfg.IsAdobeIDCreated = true

	view, err := newTestService(&fakePrices{summary: fullPrices}, nil).Start(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, domain.TemplatePurchaseWithCreateAdobeID, view.Template)
	assert.Equal(t, "", view.Purchase.MigrationAction)
}

func TestPurchaseModal_WindowEnded(t *testing.T) {
	cfg := baseConfig()
	cfg.MigrationStatus = domain.MigrationWindowEndedForMultiuserProAccount
	cfg.IsAdobeIDCreated = true

	view, err := newTestService(&fakePrices{summary: fullPrices}, nil).Start(context.Background(), cfg)
	require.NoError(t, err)

	p := view.Purchase
	assert.Equal(t, domain.TemplatePurchaseWithoutCreateAdobeID, view.Template)
	assert.Equal(t, "window ended", p.BillingMsg3)
	assert.True(t, p.BillingMsg3IsText)
	assert.Equal(t, "create https://id", p.MigrationAction)
	assert.Equal(t, "regular $29.99 (incl. tax)", p.PriceMsg)
	assert.Equal(t, "", p.BillingMsg2)
}

func TestPurchaseModal_DowngradedTemplate(t *testing.T) {
	cfg := baseConfig()
	cfg.MigrationStatus = domain.DowngradedTeamToFree
	cfg.IsAdobeIDCreated = true

	view, err := newTestService(&fakePrices{}, nil).Start(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.TemplatePurchaseWithoutCreateAdobeID, view.Template)
}

func TestPurchaseModal_MissingPricesHideMessages(t *testing.T) {
	view, err := newTestService(&fakePrices{}, nil).Start(context.Background(), baseConfig())
	require.NoError(t, err)

	assert.Equal(t, "", view.Purchase.PriceMsg)
	assert.Equal(t, "", view.Purchase.BillingMsg2)
}

func TestAdobeIDModal(t *testing.T) {
	cfg := baseConfig()
	cfg.ShowPurchaseOptionModal = false
	cfg.ShowAdobeIDOptionModal = true
	svc := newTestService(&fakePrices{}, nil)

	view, err := svc.Start(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.ModalAdobeID, view.Kind)
	assert.Equal(t, domain.TemplateCreateAdobeID, view.Template)
	assert.Equal(t, &domain.AdobeIDModal{
		Header:          "adobe header",
		ContactAdminMsg: "contact admin",
		GetStartedBtn:   "start https://id",
		Body:            "create id",
	}, view.AdobeID)

	for _, status := range []domain.MigrationStatus{
		domain.DowngradedMultiuserProToFree,
		domain.MigrationWindowEndedForTeamAccount,
	} {
		cfg.MigrationStatus = status
		view, err = svc.Start(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, "create id after downgrade", view.AdobeID.Body, string(status))
	}
}

func TestModal_UnknownKind(t *testing.T) {
	_, err := newTestService(&fakePrices{}, nil).Modal(context.Background(), baseConfig(), "bogus")
	assert.ErrorIs(t, err, ErrUnknownModal)
}

func TestModal_StringsError(t *testing.T) {
	svc := NewService(staticSource{err: errors.New("cdn down")}, &fakePrices{}, nil)
	_, err := svc.Start(context.Background(), baseConfig())
	assert.ErrorContains(t, err, "cdn down")
}

func TestBuyNow(t *testing.T) {
	svc := newTestService(&fakePrices{}, nil)

	single := baseConfig()
	single.NumOfActiveUsers = 1
	action, err := svc.BuyNow(context.Background(), single)
	require.NoError(t, err)
	assert.Equal(t, domain.Action{Kind: domain.ActionRedirect, RedirectURL: "https://buy"}, action)

	action, err = svc.BuyNow(context.Background(), baseConfig())
	require.NoError(t, err)
	assert.Equal(t, domain.ActionShowModal, action.Kind)
	require.NotNil(t, action.Modal)
	assert.Equal(t, domain.ModalDownloadCSV, action.Modal.Kind)
	assert.Equal(t, domain.TemplateDownloadCSV, action.Modal.Template)
	assert.Equal(t, " ", action.Modal.Options.Title)
	assert.Equal(t, &domain.DownloadCSVModal{
		Header:              "csv header",
		Msg1:                "csv 1",
		Msg2:                "csv 2",
		LicenseCount:        5,
		DownloadBtn:         "download https://buy",
		SkipDownloadBtn:     "skip https://buy",
		FAQContent:          "faq https://faq",
		DownloadUserListURL: "https://users.csv",
	}, action.Modal.DownloadCSV)
}

func TestClose(t *testing.T) {
	sink := &recordingSink{}
	svc := newTestService(&fakePrices{}, sink)

	action, err := svc.Close(context.Background(), baseConfig(), domain.ModalPurchase)
	require.NoError(t, err)
	assert.Equal(t, domain.Action{Kind: domain.ActionRedirect, RedirectURL: "https://secure.example.com/public/login"}, action)

	_, err = svc.Close(context.Background(), baseConfig(), domain.ModalDownloadCSV)
	require.NoError(t, err)
	_, err = svc.Close(context.Background(), baseConfig(), domain.ModalAdobeID)
	require.NoError(t, err)

	_, err = svc.Close(context.Background(), baseConfig(), "bogus")
	assert.ErrorIs(t, err, ErrUnknownModal)

	assert.Equal(t, []string{events.PurchaseModalClosed, events.DownloadCSVModalClosed, events.AdobeIDModalClosed}, sink.events)
	assert.Equal(t, []string{"acme", "acme", "acme"}, sink.profiles)
}

func TestTrack(t *testing.T) {
	sink := &recordingSink{}
	svc := newTestService(&fakePrices{}, sink)

	require.NoError(t, svc.Track(context.Background(), baseConfig(), events.FAQLinkClicked))
	require.NoError(t, svc.Track(context.Background(), baseConfig(), events.SkipDownloadClicked))
	assert.ErrorIs(t, svc.Track(context.Background(), baseConfig(), events.PriceFetchFailed), ErrUnknownEvent)

	assert.Equal(t, []string{events.FAQLinkClicked, events.SkipDownloadClicked}, sink.events)
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "/public/login", joinURL("", "public/login"))
	assert.Equal(t, "https://a/b/public/login", joinURL("https://a/b", "/public/login"))
}
