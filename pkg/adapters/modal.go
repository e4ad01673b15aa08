package adapters

import (
	"github.com/de-tools/team-migration/pkg/models/api"
	"github.com/de-tools/team-migration/pkg/models/domain"
)

func MapModalDomainToApi(m domain.ModalView) api.Modal {
	out := api.Modal{
		Kind:     string(m.Kind),
		Template: m.Template,
		Locale:   m.Locale,
		Options: api.ModalOptions{
			Title:            m.Options.Title,
			HasFooter:        m.Options.HasFooter,
			Close:            m.Options.Closable,
			HasHeaderDivider: m.Options.HasHeaderDivider,
			Backdrop:         m.Options.Backdrop,
			Keyboard:         m.Options.Keyboard,
			EnterSubmits:     m.Options.EnterSubmits,
		},
	}

	if p := m.Purchase; p != nil {
		out.Purchase = &api.PurchaseModal{
			WelcomeMsgForFreeAccount: p.WelcomeMsg,
			PurchaseModalHeader:      p.Header,
			PurchaseMsg:              p.PurchaseMsg,
			BuyNowBtnText:            p.BuyNowBtnText,
			FAQContent:               p.FAQContent,
			MigrationAction:          p.MigrationAction,
			BillingMsg2:              p.BillingMsg2,
			BillingMsg3:              p.BillingMsg3,
			BillingMsg3IsText:        p.BillingMsg3IsText,
			PriceMsg:                 p.PriceMsg,
		}
	}
	if a := m.AdobeID; a != nil {
		out.AdobeID = &api.AdobeIDModal{
			AdobeIDModalHeader: a.Header,
			ContactAdminMsg:    a.ContactAdminMsg,
			GetStartedBtn:      a.GetStartedBtn,
			Body:               a.Body,
		}
	}
	if d := m.DownloadCSV; d != nil {
		out.DownloadCSV = &api.DownloadCSVModal{
			DownloadCSVModalHeader: d.Header,
			DownloadCSVMsg1:        d.Msg1,
			DownloadCSVMsg2:        d.Msg2,
			LicenseCount:           d.LicenseCount,
			DownloadBtn:            d.DownloadBtn,
			SkipDownloadBtn:        d.SkipDownloadBtn,
			FAQContent:             d.FAQContent,
			DownloadUserListURL:    d.DownloadUserListURL,
		}
	}
	return out
}

func MapActionDomainToApi(a domain.Action) api.Action {
	out := api.Action{
		Kind:        string(a.Kind),
		RedirectURL: a.RedirectURL,
	}
	if a.Modal != nil {
		m := MapModalDomainToApi(*a.Modal)
		out.Modal = &m
	}
	return out
}
