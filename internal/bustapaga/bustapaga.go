// Package bustapaga extracts payslips from payroll-software page text.
// The CSC and Zucchetti layouts each get a tuned extractor; everything else
// goes through the generic one. All three share the layered name and net-pay
// strategies, tried in decreasing order of confidence.
package bustapaga

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"gestionale/estrazioni/internal/amountutils"
	"gestionale/estrazioni/internal/logging"
	"gestionale/estrazioni/internal/models"
)

// codiceFiscalePattern matches the Italian personal fiscal code.
var codiceFiscalePattern = regexp.MustCompile(`\b[A-Z]{6}\d{2}[A-Z]\d{2}[A-Z]\d{3}[A-Z]\b`)

var importoPattern = regexp.MustCompile(`\d{1,3}(?:\.\d{3})*,\d{2}`)

// variante carries the per-layout tuning: the tag to stamp on results and the
// compact tabular header row of strategy (b), when the layout prints one.
type variante struct {
	tag models.FormatTag
	// headerRow, when set, matches the "employee code + name + date + fiscal
	// code" row; nameGroup and cfGroup index its submatches.
	headerRow *regexp.Regexp
	nameGroup int
	cfGroup   int
}

// Extractor parses payslip pages for one payroll-software layout.
type Extractor struct {
	v      variante
	bounds NetPayBounds
	logger logging.Logger
}

// NewCSC returns the extractor tuned to the CSC paghe layout.
func NewCSC(logger logging.Logger) *Extractor {
	return newExtractor(variante{
		tag: models.FormatBustaCSC,
		// e.g. "000123  ROSSI MARIO   01/03/2019  RSSMRA80A01H501U"
		headerRow: regexp.MustCompile(`^\s*(\d{3,6})\s+([A-ZÀ-Ù' ]{4,40}?)\s+(\d{2}/\d{2}/\d{2,4})\s+([A-Z]{6}\d{2}[A-Z]\d{2}[A-Z]\d{3}[A-Z])\b`),
		nameGroup: 2,
		cfGroup:   4,
	}, logger)
}

// NewZucchetti returns the extractor tuned to the Zucchetti layout.
func NewZucchetti(logger logging.Logger) *Extractor {
	return newExtractor(variante{
		tag: models.FormatBustaZucchetti,
		// e.g. "RSSMRA80A01H501U ROSSI MARIO 000123"
		headerRow: regexp.MustCompile(`^\s*([A-Z]{6}\d{2}[A-Z]\d{2}[A-Z]\d{3}[A-Z])\s+([A-ZÀ-Ù' ]{4,40}?)\s+\d{3,6}\b`),
		nameGroup: 2,
		cfGroup:   1,
	}, logger)
}

// NewGenerico returns the extractor used when no software marker is detected.
// It relies entirely on the shared fiscal-code-anchored strategies.
func NewGenerico(logger logging.Logger) *Extractor {
	return newExtractor(variante{tag: models.FormatBustaGenerica}, logger)
}

func newExtractor(v variante, logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{v: v, bounds: DefaultNetPayBounds(), logger: logger}
}

// WithNetPayBounds overrides the heuristic plausibility limits, typically
// from configuration. Invalid bounds keep the defaults.
func (e *Extractor) WithNetPayBounds(b NetPayBounds) *Extractor {
	if b.valid() {
		e.bounds = b
	}
	return e
}

// ExtractPayslips recovers the payslips on one page. A record needs at least
// an employee name and a net-pay figure; pages missing either produce nothing.
func (e *Extractor) ExtractPayslips(text string) []models.Payslip {
	name, fiscalCode := e.extractIdentity(text)
	if name == "" {
		e.logger.Debug("No employee identity found on page",
			logging.Field{Key: logging.FieldFormat, Value: string(e.v.tag)})
		return nil
	}

	net, rule, ok := e.extractNetPay(text)
	if !ok {
		e.logger.Debug("No net pay found on page",
			logging.Field{Key: logging.FieldEmployee, Value: name})
		return nil
	}

	p := models.Payslip{
		EmployeeName: name,
		FiscalCode:   fiscalCode,
		NetPay:       net,
		NetPayRule:   rule,
		SourceFormat: e.v.tag,
	}
	p.PeriodMonth, p.PeriodYear = extractPeriod(text)
	p.GrossPay = findLabelledAmount(text, grossLabels)
	p.Deductions = findLabelledAmount(text, deductionLabels)
	p.EmployerSocial = findLabelledAmount(text, employerLabels)
	p.TFRAccrual = findLabelledAmount(text, tfrLabels)

	return []models.Payslip{p}
}

// NormalizeName collapses spacing and case so repeated headers and footers
// for the same employee compare equal.
func NormalizeName(name string) string {
	fields := strings.Fields(strings.ToUpper(name))
	return strings.Join(fields, " ")
}

var (
	grossLabels     = []string{`TOTALE\s+COMPETENZE`, `RETRIBUZIONE\s+LORDA`, `TOTALE\s+LORDO`}
	deductionLabels = []string{`TOTALE\s+TRATTENUTE`, `TOTALE\s+RITENUTE`}
	employerLabels  = []string{`CONTRIBUTI\s+(?:A\s+CARICO\s+)?DITTA`, `INPS\s+DITTA`, `ONERI\s+DATORE`}
	tfrLabels       = []string{`QUOTA\s+T\.?F\.?R\.?`, `ACCANTONAMENTO\s+TFR`, `RATEO\s+TFR`}
)

// findLabelledAmount returns the first amount following any of the labels,
// or nil when no label matches. Labels are tried in the given order.
func findLabelledAmount(text string, labels []string) *decimal.Decimal {
	for _, label := range labels {
		re := regexp.MustCompile(`(?i)` + label + `\D{0,20}(\d{1,3}(?:\.\d{3})*,\d{2})`)
		if m := re.FindStringSubmatch(text); m != nil {
			d := amountutils.ParseAmount(m[1])
			return &d
		}
	}
	return nil
}

var periodoMesePattern = regexp.MustCompile(`(?i)\b(GENNAIO|FEBBRAIO|MARZO|APRILE|MAGGIO|GIUGNO|LUGLIO|AGOSTO|SETTEMBRE|OTTOBRE|NOVEMBRE|DICEMBRE)\s+(\d{4})\b`)
var periodoNumericoPattern = regexp.MustCompile(`\b(0[1-9]|1[0-2])/(\d{4})\b`)

func extractPeriod(text string) (month, year int) {
	if m := periodoMesePattern.FindStringSubmatch(text); m != nil {
		if mo, ok := monthNumber(m[1]); ok {
			return mo, atoi(m[2])
		}
	}
	if m := periodoNumericoPattern.FindStringSubmatch(text); m != nil {
		return atoi(m[1]), atoi(m[2])
	}
	return 0, 0
}

var mesi = map[string]int{
	"GENNAIO": 1, "FEBBRAIO": 2, "MARZO": 3, "APRILE": 4,
	"MAGGIO": 5, "GIUGNO": 6, "LUGLIO": 7, "AGOSTO": 8,
	"SETTEMBRE": 9, "OTTOBRE": 10, "NOVEMBRE": 11, "DICEMBRE": 12,
}

func monthNumber(name string) (int, bool) {
	n, ok := mesi[strings.ToUpper(name)]
	return n, ok
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
