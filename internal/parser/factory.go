package parser

import (
	"gestionale/estrazioni/internal/bustapaga"
	"gestionale/estrazioni/internal/cartaparser"
	"gestionale/estrazioni/internal/contoparser"
	"gestionale/estrazioni/internal/logging"
	"gestionale/estrazioni/internal/models"
	"gestionale/estrazioni/internal/tabelle"
)

// StatementFor returns the bank-statement extractor for the given tag, or
// false when the tag does not select one.
func StatementFor(tag models.FormatTag, tables *tabelle.Tables, logger logging.Logger) (StatementExtractor, bool) {
	switch tag {
	case models.FormatContoIntesa, models.FormatContoUnicredit, models.FormatContoGenerico:
		return contoparser.New(tag, tables, logger), true
	case models.FormatCartaNexi, models.FormatCartaGenerica:
		return cartaparser.New(tag, tables, logger), true
	}
	return nil, false
}

// PayslipFor returns the payslip extractor for the given tag, or false when
// the tag does not select one. The bounds tune the net-pay heuristic; a zero
// value keeps the defaults.
func PayslipFor(tag models.FormatTag, bounds bustapaga.NetPayBounds, logger logging.Logger) (PayslipExtractor, bool) {
	switch tag {
	case models.FormatBustaCSC:
		return bustapaga.NewCSC(logger).WithNetPayBounds(bounds), true
	case models.FormatBustaZucchetti:
		return bustapaga.NewZucchetti(logger).WithNetPayBounds(bounds), true
	case models.FormatBustaGenerica:
		return bustapaga.NewGenerico(logger).WithNetPayBounds(bounds), true
	}
	return nil, false
}
