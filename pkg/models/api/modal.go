package api

type ModalOptions struct {
	Title            string `json:"title"`
	HasFooter        bool   `json:"hasFooter"`
	Close            bool   `json:"close"`
	HasHeaderDivider bool   `json:"hasHeaderDivider"`
	Backdrop         string `json:"backdrop"`
	Keyboard         bool   `json:"keyboard"`
	EnterSubmits     bool   `json:"enterSubmits"`
}

type PurchaseModal struct {
	WelcomeMsgForFreeAccount string `json:"welcomeMsgForFreeAccount"`
	PurchaseModalHeader      string `json:"purchaseModalHeader"`
	PurchaseMsg              string `json:"purchaseMsg"`
	BuyNowBtnText            string `json:"buyNowBtnText"`
	FAQContent               string `json:"faqContent"`
	MigrationAction          string `json:"migrationAction"`
	BillingMsg2              string `json:"billingMsg2"`
	BillingMsg3              string `json:"billingMsg3"`
	BillingMsg3IsText        bool   `json:"billingMsg3IsText"`
	PriceMsg                 string `json:"priceMsg"`
}

type AdobeIDModal struct {
	AdobeIDModalHeader string `json:"adobeIdModalHeader"`
	ContactAdminMsg    string `json:"contactAdminMsg"`
	GetStartedBtn      string `json:"getStartedBtn"`
	Body               string `json:"body"`
}

type DownloadCSVModal struct {
	DownloadCSVModalHeader string `json:"downloadCsvModalHeader"`
	DownloadCSVMsg1        string `json:"downloadCsvMsg1"`
	DownloadCSVMsg2        string `json:"downloadCsvMsg2"`
	LicenseCount           int    `json:"licenseCount"`
	DownloadBtn            string `json:"downloadBtn"`
	SkipDownloadBtn        string `json:"skipDownloadBtn"`
	FAQContent             string `json:"faqContent"`
	DownloadUserListURL    string `json:"downloadUserListUrl"`
}

type Modal struct {
	Kind        string            `json:"kind"`
	Template    string            `json:"template"`
	Locale      string            `json:"locale"`
	Options     ModalOptions      `json:"options"`
	Purchase    *PurchaseModal    `json:"purchase,omitempty"`
	AdobeID     *AdobeIDModal     `json:"adobeId,omitempty"`
	DownloadCSV *DownloadCSVModal `json:"downloadCsv,omitempty"`
}

type Action struct {
	Kind        string `json:"kind"`
	RedirectURL string `json:"redirectUrl,omitempty"`
	Modal       *Modal `json:"modal,omitempty"`
}
