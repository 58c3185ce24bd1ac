package riconcilia

import (
	"context"
	"sort"

	"gestionale/estrazioni/internal/models"
)

// Dashboard computes the filing summary aggregate consumed by the frontend:
// totals, paid vs. outstanding counts and a per-tax-code breakdown.
func (e *Engine) Dashboard(ctx context.Context) (models.Dashboard, error) {
	filings, err := e.filings.FindAll(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}

	var d models.Dashboard
	perCode := make(map[string]*models.TaxCodeTotal)

	for _, f := range filings {
		if f.State == models.StatoAnnullato || f.State == models.StatoSostituito {
			continue
		}
		d.Total++
		d.TotalAmount = d.TotalAmount.Add(f.NetAmount)

		switch f.State {
		case models.StatoPagato:
			d.Paid++
			d.PaidAmount = d.PaidAmount.Add(f.NetAmount)
		case models.StatoDaPagare, models.StatoScaduto, models.StatoRicevuto:
			d.Outstanding++
		}

		for _, li := range f.LineItems {
			t, ok := perCode[li.TaxCode]
			if !ok {
				t = &models.TaxCodeTotal{TaxCode: li.TaxCode}
				perCode[li.TaxCode] = t
			}
			t.Count++
			t.Amount = t.Amount.Add(li.DebitAmount).Sub(li.CreditAmount)
		}
	}

	codes := make([]string, 0, len(perCode))
	for code := range perCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		d.PerTaxCode = append(d.PerTaxCode, *perCode[code])
	}
	return d, nil
}
