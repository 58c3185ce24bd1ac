package models

import (
	"github.com/shopspring/decimal"
)

// AlertType classifies a deadline alert.
type AlertType string

const (
	AlertScaduto    AlertType = "SCADUTO"
	AlertInScadenza AlertType = "IN_SCADENZA"
)

// AlertPriority is the severity consumed by the notification surface.
// Bands: overdue and due-today are critical, ≤3 days high, ≤7 days medium.
type AlertPriority string

const (
	PriorityCritica AlertPriority = "critica"
	PriorityAlta    AlertPriority = "alta"
	PriorityMedia   AlertPriority = "media"
)

// Alert is one deadline notification for an unpaid filing.
type Alert struct {
	FilingID    string          `json:"f24_id"`
	Type        AlertType       `json:"tipo"`
	Priority    AlertPriority   `json:"priorita"`
	Amount      decimal.Decimal `json:"importo"`
	DueDate     string          `json:"scadenza"`
	DaysOverdue int             `json:"giorni_ritardo,omitempty"`
	DaysLeft    int             `json:"giorni_rimanenti,omitempty"`
	Message     string          `json:"messaggio"`
}

// TaxCodeTotal aggregates filings by tax code for the dashboard.
type TaxCodeTotal struct {
	TaxCode string          `json:"codice_tributo"`
	Count   int             `json:"numero"`
	Amount  decimal.Decimal `json:"importo"`
}

// Dashboard is the reconciliation summary aggregate.
type Dashboard struct {
	Total       int             `json:"totale"`
	Paid        int             `json:"pagati"`
	Outstanding int             `json:"da_pagare"`
	TotalAmount decimal.Decimal `json:"importo_totale"`
	PaidAmount  decimal.Decimal `json:"importo_pagato"`
	PerTaxCode  []TaxCodeTotal  `json:"per_codice_tributo"`
}
