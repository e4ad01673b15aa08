package api

import "time"

type PriceSummary struct {
	AnnualPromoPrice      string `json:"annualPromoPrice"`
	TaxLabelAnnualPromo   string `json:"taxLabelAnnualPromo"`
	AnnualRegularPrice    string `json:"annualRegularPrice"`
	TaxLabelAnnualRegular string `json:"taxLabelAnnualRegular"`
}

type Profile struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
}

type Event struct {
	Name string `json:"name"`
}

type DiagnosticEvent struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurredAt"`
}
