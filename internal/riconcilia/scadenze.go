package riconcilia

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"gestionale/estrazioni/internal/models"
)

// dueDay: periodic filings fall due on the 16th of the month following the
// reference period. Fixed rule for the filing types in scope.
const dueDay = 16

var (
	periodYM = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	periodMY = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
	periodY  = regexp.MustCompile(`^(\d{4})$`)
)

// DueDate computes a filing's deadline from its reference period. Periods
// expressed as a bare year default to a year-end reference month. Unparseable
// periods return false.
func DueDate(period string) (time.Time, bool) {
	var year, month int
	switch {
	case periodYM.MatchString(period):
		m := periodYM.FindStringSubmatch(period)
		year, month = atoi(m[1]), atoi(m[2])
	case periodMY.MatchString(period):
		m := periodMY.FindStringSubmatch(period)
		year, month = atoi(m[2]), atoi(m[1])
	case periodY.MatchString(period):
		year, month = atoi(period), 12
	default:
		return time.Time{}, false
	}
	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	// 16th of the following month; time.Date normalises month 13
	return time.Date(year, time.Month(month+1), dueDay, 0, 0, 0, 0, time.UTC), true
}

// Alerts emits the deadline notifications for unpaid filings as of today.
// A filing past its due date produces a SCADUTO alert (and its stored state
// is advanced); one inside the look-ahead window produces an IN_SCADENZA
// alert whose priority rises as the deadline nears.
func (e *Engine) Alerts(ctx context.Context, today time.Time) ([]models.Alert, error) {
	outstanding, err := e.filings.FindByState(ctx, models.StatoDaPagare)
	if err != nil {
		return nil, err
	}
	overdue, err := e.filings.FindByState(ctx, models.StatoScaduto)
	if err != nil {
		return nil, err
	}

	today = truncateDay(today)
	var alerts []models.Alert

	for _, filing := range outstanding {
		due, ok := DueDate(filing.ReferencePeriod)
		if !ok {
			continue
		}
		days := int(due.Sub(today).Hours() / 24)

		switch {
		case days < 0:
			alerts = append(alerts, overdueAlert(filing, due, -days))
			// advance the stored state; a lost race just means another run
			// already did it
			if _, err := e.filings.SetState(ctx, filing.ID,
				models.StatoDaPagare, models.StatoScaduto, nil); err != nil {
				return nil, err
			}
		case days <= e.cfg.LookAheadDays:
			alerts = append(alerts, upcomingAlert(filing, due, days))
		}
	}

	for _, filing := range overdue {
		due, ok := DueDate(filing.ReferencePeriod)
		if !ok {
			continue
		}
		days := int(today.Sub(due).Hours() / 24)
		if days > 0 {
			alerts = append(alerts, overdueAlert(filing, due, days))
		}
	}

	return alerts, nil
}

func overdueAlert(filing models.TaxFiling, due time.Time, daysLate int) models.Alert {
	return models.Alert{
		FilingID:    filing.ID,
		Type:        models.AlertScaduto,
		Priority:    models.PriorityCritica,
		Amount:      filing.NetAmount,
		DueDate:     due.Format("2006-01-02"),
		DaysOverdue: daysLate,
		Message: fmt.Sprintf("F24 %s scaduto da %d giorni (importo %s)",
			filing.ReferencePeriod, daysLate, filing.NetAmount.StringFixed(2)),
	}
}

func upcomingAlert(filing models.TaxFiling, due time.Time, daysLeft int) models.Alert {
	var priority models.AlertPriority
	var label string
	switch {
	case daysLeft == 0:
		priority, label = models.PriorityCritica, "scade oggi"
	case daysLeft <= 3:
		priority, label = models.PriorityAlta, fmt.Sprintf("scade tra %d giorni", daysLeft)
	default:
		priority, label = models.PriorityMedia, fmt.Sprintf("scade tra %d giorni", daysLeft)
	}
	return models.Alert{
		FilingID: filing.ID,
		Type:     models.AlertInScadenza,
		Priority: priority,
		Amount:   filing.NetAmount,
		DueDate:  due.Format("2006-01-02"),
		DaysLeft: daysLeft,
		Message: fmt.Sprintf("F24 %s %s (importo %s)",
			filing.ReferencePeriod, label, filing.NetAmount.StringFixed(2)),
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
