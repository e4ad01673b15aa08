package migration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/de-tools/team-migration/pkg/models/domain"
	"github.com/de-tools/team-migration/pkg/services/events"
	"github.com/de-tools/team-migration/pkg/services/i18n"
	"github.com/de-tools/team-migration/pkg/services/pricing"
	"github.com/rs/zerolog"
)

const loginPath = "public/login"

var (
	ErrNoModal      = errors.New("no migration modal applies to this account")
	ErrUnknownModal = errors.New("unknown modal")
	ErrUnknownEvent = errors.New("unknown event")
)

// StringsSource provides the translations for a host language and country.
type StringsSource interface {
	For(ctx context.Context, language, country string) (*i18n.Strings, error)
}

type Service interface {
	// Start picks the modal to show after login. ErrNoModal means none applies.
	Start(ctx context.Context, cfg domain.HostConfig) (domain.ModalView, error)
	Modal(ctx context.Context, cfg domain.HostConfig, kind domain.ModalKind) (domain.ModalView, error)
	BuyNow(ctx context.Context, cfg domain.HostConfig) (domain.Action, error)
	Close(ctx context.Context, cfg domain.HostConfig, kind domain.ModalKind) (domain.Action, error)
	Track(ctx context.Context, cfg domain.HostConfig, event string) error
}

type service struct {
	strings StringsSource
	prices  pricing.Service
	events  events.Sink
}

func NewService(source StringsSource, prices pricing.Service, sink events.Sink) Service {
	if sink == nil {
		sink = events.Discard
	}
	return &service{strings: source, prices: prices, events: sink}
}

// Select returns the modal the host should open for cfg.
func Select(cfg domain.HostConfig) domain.ModalKind {
	switch {
	case cfg.ShowPurchaseOptionModal:
		return domain.ModalPurchase
	case cfg.ShowAdobeIDOptionModal:
		return domain.ModalAdobeID
	default:
		return domain.ModalNone
	}
}

func (s *service) Start(ctx context.Context, cfg domain.HostConfig) (domain.ModalView, error) {
	kind := Select(cfg)
	if kind == domain.ModalNone {
		return domain.ModalView{}, ErrNoModal
	}
	return s.Modal(ctx, cfg, kind)
}

func (s *service) Modal(ctx context.Context, cfg domain.HostConfig, kind domain.ModalKind) (domain.ModalView, error) {
	tr, err := s.strings.For(ctx, cfg.Language, cfg.Country)
	if err != nil {
		return domain.ModalView{}, err
	}

	view := domain.ModalView{
		Kind:    kind,
		Locale:  tr.Locale(),
		Options: defaultOptions(cfg),
	}

	switch kind {
	case domain.ModalPurchase:
		view.Template = purchaseTemplate(cfg)
		view.Purchase = s.purchaseModal(ctx, cfg, tr)
	case domain.ModalAdobeID:
		view.Template = domain.TemplateCreateAdobeID
		view.AdobeID = adobeIDModal(cfg, tr)
	case domain.ModalDownloadCSV:
		view.Template = domain.TemplateDownloadCSV
		view.Options.Title = " "
		view.DownloadCSV = downloadCSVModal(cfg, tr)
	default:
		return domain.ModalView{}, fmt.Errorf("%w: %q", ErrUnknownModal, kind)
	}
	return view, nil
}

// BuyNow sends single-user accounts straight to checkout; larger teams first
// get the chance to export their user list.
func (s *service) BuyNow(ctx context.Context, cfg domain.HostConfig) (domain.Action, error) {
	if cfg.NumOfActiveUsers == 1 {
		return domain.Action{Kind: domain.ActionRedirect, RedirectURL: cfg.PurchaseURL}, nil
	}
	view, err := s.Modal(ctx, cfg, domain.ModalDownloadCSV)
	if err != nil {
		return domain.Action{}, err
	}
	return domain.Action{Kind: domain.ActionShowModal, Modal: &view}, nil
}

func (s *service) Close(ctx context.Context, cfg domain.HostConfig, kind domain.ModalKind) (domain.Action, error) {
	var event string
	switch kind {
	case domain.ModalPurchase:
		event = events.PurchaseModalClosed
	case domain.ModalAdobeID:
		event = events.AdobeIDModalClosed
	case domain.ModalDownloadCSV:
		event = events.DownloadCSVModalClosed
	default:
		return domain.Action{}, fmt.Errorf("%w: %q", ErrUnknownModal, kind)
	}

	s.events.Log(events.WithProfile(ctx, cfg.Profile), event)
	return domain.Action{Kind: domain.ActionRedirect, RedirectURL: joinURL(cfg.AppRoot, loginPath)}, nil
}

func (s *service) Track(ctx context.Context, cfg domain.HostConfig, event string) error {
	switch event {
	case events.FAQLinkClicked, events.SkipDownloadClicked, events.DownloadUserListRequested:
		s.events.Log(events.WithProfile(ctx, cfg.Profile), event)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
}

func (s *service) purchaseModal(ctx context.Context, cfg domain.HostConfig, tr *i18n.Strings) *domain.PurchaseModal {
	windowEnded := cfg.MigrationStatus.WindowEnded()

	m := &domain.PurchaseModal{
		WelcomeMsg:      tr.Get("welcomeMsgForFreeAccount"),
		Header:          tr.Get("purchaseModalHeader"),
		PurchaseMsg:     tr.Get("purchaseMsg"),
		BuyNowBtnText:   tr.Get("buyNowBtnText"),
		FAQContent:      tr.Template("faqContent", cfg.FAQURL),
		MigrationAction: tr.Template("migrationActionMsg", cfg.CreateAdobeIDURL),
	}

	if windowEnded {
		m.BillingMsg3 = tr.Get("billingMsg1")
		m.BillingMsg3IsText = true
	} else {
		if cfg.IsAdobeIDCreated {
			m.MigrationAction = ""
		}
		m.BillingMsg3 = tr.Template("billingMsg3", cfg.FAQURL)
	}

	s.prices.GetPrices(ctx, cfg, tr, func(p domain.PriceSummary) {
		if windowEnded {
			m.PriceMsg = priceMessage(tr.Template("regularPriceMsg", p.AnnualRegularPrice, p.TaxLabelAnnualRegular), p.AnnualRegularPrice)
			return
		}
		m.PriceMsg = priceMessage(tr.Template("promotionalPriceMsg", p.AnnualPromoPrice, p.TaxLabelAnnualPromo), p.AnnualPromoPrice)
		m.BillingMsg2 = priceMessage(tr.Template("billingMsg2", p.AnnualRegularPrice, p.TaxLabelAnnualRegular), p.AnnualRegularPrice)
	})

	zerolog.Ctx(ctx).Debug().
		Bool("window_ended", windowEnded).
		Bool("has_price", m.PriceMsg != "").
		Msg("purchase modal prepared")
	return m
}

func adobeIDModal(cfg domain.HostConfig, tr *i18n.Strings) *domain.AdobeIDModal {
	body := tr.Get("createAdobeIdMsg")
	if cfg.MigrationStatus.Downgraded() || cfg.MigrationStatus.WindowEnded() {
		body = tr.Get("createAdobeIdMsgAfterDowngraded")
	}
	return &domain.AdobeIDModal{
		Header:          tr.Get("adobeIdModalHeader"),
		ContactAdminMsg: tr.Get("contactAdminMsg"),
		GetStartedBtn:   tr.Template("getStartedBtn", cfg.CreateAdobeIDURL),
		Body:            body,
	}
}

func downloadCSVModal(cfg domain.HostConfig, tr *i18n.Strings) *domain.DownloadCSVModal {
	return &domain.DownloadCSVModal{
		Header:              tr.Get("downloadCsvModalHeader"),
		Msg1:                tr.Get("downloadCsvMsg1"),
		Msg2:                tr.Get("downloadCsvMsg2"),
		LicenseCount:        cfg.CurrentLicenseCount,
		DownloadBtn:         tr.Template("downloadBtn", cfg.PurchaseURL),
		SkipDownloadBtn:     tr.Template("skipDownloadBtn", cfg.PurchaseURL),
		FAQContent:          tr.Template("faqContent", cfg.FAQURL),
		DownloadUserListURL: cfg.DownloadUserListURL,
	}
}

func purchaseTemplate(cfg domain.HostConfig) string {
	status := cfg.MigrationStatus
	if (status.WindowEnded() || status.Downgraded()) && cfg.IsAdobeIDCreated {
		return domain.TemplatePurchaseWithoutCreateAdobeID
	}
	return domain.TemplatePurchaseWithCreateAdobeID
}

func defaultOptions(cfg domain.HostConfig) domain.ModalOptions {
	return domain.ModalOptions{
		Closable: cfg.IsDismissible,
		Backdrop: "static",
	}
}

// priceMessage hides msg when the price it mentions is unknown.
func priceMessage(msg, price string) string {
	if price == "" {
		return ""
	}
	return msg
}

func joinURL(root, p string) string {
	return strings.TrimSuffix(root, "/") + "/" + strings.TrimPrefix(p, "/")
}
