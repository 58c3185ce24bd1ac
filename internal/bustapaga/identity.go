package bustapaga

import (
	"strings"
)

// header words that disqualify a line from being an employee name
var intestazioni = []string{
	"COGNOME", "NOME", "CODICE", "FISCALE", "DIPENDENTE", "MATRICOLA",
	"AZIENDA", "DITTA", "QUALIFICA", "LIVELLO", "CEDOLINO", "BUSTA",
}

// extractIdentity recovers the employee name and fiscal code using the
// layered strategy, in decreasing priority:
//
//	(a) a line carrying the fiscal code with adjacent all-caps name tokens
//	(b) the layout's compact tabular header row, when the variant has one
//	(c) the all-caps two-to-three-token line immediately preceding the
//	    fiscal code occurrence
func (e *Extractor) extractIdentity(text string) (name, fiscalCode string) {
	lines := strings.Split(text, "\n")

	// (a) fiscal code with name tokens on the same line
	for _, line := range lines {
		cf := codiceFiscalePattern.FindString(line)
		if cf == "" {
			continue
		}
		if n := capsTokensAround(line, cf); n != "" {
			return n, cf
		}
	}

	// (b) variant tabular header row
	if e.v.headerRow != nil {
		for _, line := range lines {
			if m := e.v.headerRow.FindStringSubmatch(line); m != nil {
				return NormalizeName(m[e.v.nameGroup]), m[e.v.cfGroup]
			}
		}
	}

	// (c) all-caps line right before the fiscal code
	for i, line := range lines {
		cf := codiceFiscalePattern.FindString(line)
		if cf == "" || i == 0 {
			continue
		}
		prev := strings.TrimSpace(lines[i-1])
		if n := plausibleNameLine(prev); n != "" {
			return n, cf
		}
	}

	return "", ""
}

// capsTokensAround picks the all-caps word tokens sharing a line with the
// fiscal code. At least two tokens are required for a plausible name.
func capsTokensAround(line, cf string) string {
	rest := strings.Replace(line, cf, " ", 1)
	var tokens []string
	for _, tok := range strings.Fields(rest) {
		if isCapsWord(tok) {
			tokens = append(tokens, tok)
			if len(tokens) == 3 {
				break
			}
		} else if len(tokens) > 0 {
			// name tokens must be adjacent
			break
		}
	}
	if len(tokens) < 2 {
		return ""
	}
	return NormalizeName(strings.Join(tokens, " "))
}

// plausibleNameLine accepts a non-header line of two or three all-caps words.
func plausibleNameLine(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return ""
	}
	for _, f := range fields {
		if !isCapsWord(f) {
			return ""
		}
	}
	upper := strings.ToUpper(line)
	for _, h := range intestazioni {
		if strings.Contains(upper, h) {
			return ""
		}
	}
	return NormalizeName(line)
}

// isCapsWord reports whether tok is an all-caps alphabetic token of at least
// two letters, apostrophes allowed (D'AMICO).
func isCapsWord(tok string) bool {
	letters := 0
	for _, r := range tok {
		switch {
		case r >= 'A' && r <= 'Z':
			letters++
		case r == '\'':
		case r >= 'À' && r <= 'Ù':
			letters++
		default:
			return false
		}
	}
	return letters >= 2
}
