package domain

type ModalKind string

const (
	ModalNone        ModalKind = ""
	ModalPurchase    ModalKind = "purchase"
	ModalAdobeID     ModalKind = "adobe-id"
	ModalDownloadCSV ModalKind = "download-csv"
)

const (
	TemplatePurchaseWithCreateAdobeID    = "PurchaseModalWithCreateAdobeIdOption"
	TemplatePurchaseWithoutCreateAdobeID = "PurchaseModalWithoutCreateAdobeIdOption"
	TemplateCreateAdobeID                = "CreateAdobeIdModal"
	TemplateDownloadCSV                  = "TeamMigrationDownloadCsvModal"
)

// ModalOptions mirrors the presentation defaults every migration modal shares.
type ModalOptions struct {
	Title            string
	HasFooter        bool
	Closable         bool
	HasHeaderDivider bool
	Backdrop         string
	Keyboard         bool
	EnterSubmits     bool
}

type PurchaseModal struct {
	WelcomeMsg      string
	Header          string
	PurchaseMsg     string
	BuyNowBtnText   string
	FAQContent      string
	MigrationAction string
	BillingMsg2     string
	BillingMsg3     string
	// BillingMsg3IsText is set when BillingMsg3 holds plain text rather than markup.
	BillingMsg3IsText bool
	PriceMsg          string
}

type AdobeIDModal struct {
	Header          string
	ContactAdminMsg string
	GetStartedBtn   string
	Body            string
}

type DownloadCSVModal struct {
	Header              string
	Msg1                string
	Msg2                string
	LicenseCount        int
	DownloadBtn         string
	SkipDownloadBtn     string
	FAQContent          string
	DownloadUserListURL string
}

// ModalView is everything the host needs to render one modal. Exactly one of
// the content pointers is set, matching Kind.
type ModalView struct {
	Kind        ModalKind
	Template    string
	Locale      string
	Options     ModalOptions
	Purchase    *PurchaseModal
	AdobeID     *AdobeIDModal
	DownloadCSV *DownloadCSVModal
}

type ActionKind string

const (
	ActionRedirect  ActionKind = "redirect"
	ActionShowModal ActionKind = "modal"
	ActionNone      ActionKind = "none"
)

// Action is the outcome of a user interaction with a modal.
type Action struct {
	Kind        ActionKind
	RedirectURL string
	Modal       *ModalView
}
