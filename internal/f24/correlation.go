package f24

import (
	"strings"

	"gestionale/estrazioni/internal/models"
)

// surchargeCodes is the closed set of tax codes reserved for amendment
// surcharges: sanzioni (89xx) and interessi da ravvedimento (19xx). They are
// excluded from the base-code comparison because only the corrective filing
// carries them.
var surchargeCodes = map[string]bool{
	"8901": true, // sanzione IRPEF
	"8902": true, // sanzione addizionale regionale
	"8904": true, // sanzione IVA
	"8906": true, // sanzione sostituti d'imposta
	"8907": true, // sanzione IRAP
	"1989": true, // interessi ravvedimento IRPEF
	"1990": true, // interessi ravvedimento IRES
	"1991": true, // interessi ravvedimento IVA
}

// IsSurchargeCode reports whether the tax code belongs to the reserved
// amendment-surcharge set.
func IsSurchargeCode(code string) bool {
	return surchargeCodes[code]
}

// DefaultOverlapThreshold is the minimum share of base tax codes a candidate
// must have in common with the new filing. Empirically chosen, configurable.
const DefaultOverlapThreshold = 0.5

// IdentifyRelatedFiling classifies a newly ingested filing against the
// existing pool. The new filing is an amendment when it carries at least one
// surcharge code, shares the fiscal code and an overlapping reference period
// with a candidate, and at least the threshold share of its base tax codes
// appears in that candidate. Filings already SOSTITUITO are never candidates.
func IdentifyRelatedFiling(nuovo models.TaxFiling, existing []models.TaxFiling, threshold float64) models.Correlation {
	if threshold <= 0 {
		threshold = DefaultOverlapThreshold
	}

	baseCodes := baseCodesOf(nuovo)
	hasSurcharge := len(baseCodes) < len(nuovo.TaxCodes())
	if !hasSurcharge || len(baseCodes) == 0 {
		return models.Correlation{}
	}

	best := models.Correlation{}
	bestRatio := 0.0

	for _, cand := range existing {
		if cand.ID == nuovo.ID || cand.State == models.StatoSostituito {
			continue
		}
		if !strings.EqualFold(cand.FiscalCode, nuovo.FiscalCode) {
			continue
		}
		if !periodsOverlap(cand.ReferencePeriod, nuovo.ReferencePeriod) {
			continue
		}

		shared := intersect(baseCodes, cand.TaxCodes())
		ratio := float64(len(shared)) / float64(len(baseCodes))
		if ratio < threshold || ratio <= bestRatio {
			continue
		}

		bestRatio = ratio
		best = models.Correlation{
			IsAmendment:     true,
			OriginalID:      cand.ID,
			MatchedTaxCodes: shared,
			AmountDelta:     nuovo.ComputeNet().Sub(cand.ComputeNet()),
		}
	}
	return best
}

// baseCodesOf returns the filing's tax codes with the surcharge set removed.
func baseCodesOf(f models.TaxFiling) []string {
	var base []string
	for _, code := range f.TaxCodes() {
		if !surchargeCodes[code] {
			base = append(base, code)
		}
	}
	return base
}

// periodsOverlap compares reference periods. Equal periods overlap; a bare
// year overlaps any period of that year.
func periodsOverlap(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	// a bare year overlaps any period of that year; two distinct monthly
	// periods never overlap
	if !isBareYear(a) && !isBareYear(b) {
		return false
	}
	return yearOf(a) != "" && yearOf(a) == yearOf(b)
}

func isBareYear(period string) bool {
	return len(period) == 4 && isDigits(period)
}

// yearOf extracts the four-digit year from period spellings like "2021",
// "2021-03" or "03/2021".
func yearOf(period string) string {
	for i := 0; i+4 <= len(period); i++ {
		chunk := period[i : i+4]
		if isDigits(chunk) && (chunk[0] == '1' || chunk[0] == '2') {
			if len(chunk) == 4 {
				return chunk
			}
		}
	}
	return ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func intersect(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, code := range b {
		inB[code] = true
	}
	var shared []string
	for _, code := range a {
		if inB[code] {
			shared = append(shared, code)
		}
	}
	return shared
}
