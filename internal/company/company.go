// Package company parses company metadata from the raw text of a balance's
// first page. Parsing is best-effort: every failure degrades to empty
// fields, never to an error.
package company

import (
	"regexp"
	"strings"

	"fjacquet/balance-rli/internal/models"
)

const months = "ENERO|FEBRERO|MARZO|ABRIL|MAYO|JUNIO|JULIO|AGOSTO|SEPTIEMBRE|OCTUBRE|NOVIEMBRE|DICIEMBRE|" +
	"JANUARY|FEBRUARY|MARCH|APRIL|MAY|JUNE|JULY|AUGUST|SEPTEMBER|OCTOBER|NOVEMBER|DECEMBER"

var (
	// taxIDPattern matches the regulatory identifier: 1-2 leading digits,
	// optional dot-grouped digits, a dash and a numeric or K check digit.
	taxIDPattern = regexp.MustCompile(`\d{1,2}[.\d]*\d-[\dkK]`)

	periodPattern = regexp.MustCompile(
		`(?i)BALANCE\s+DESDE\s+((?:` + months + `)\s+DEL\s+\d{4})\s+HASTA\s+((?:` + months + `)\s+DEL\s+\d{4})`)

	// Street-type keywords that signal the start of an address inside a
	// concatenated header line.
	addressKeyword = regexp.MustCompile(`(?i)\b(CALLE|AVENIDA|AVDA|AV|PASAJE|PSJE|CAMINO|RUTA|CARRETERA|KM)\b`)
)

// maxHeaderLines bounds the tax-id search; the company block always sits at
// the top of the page.
const maxHeaderLines = 15

// Parse extracts company metadata from the first page's raw text. The tax-id
// line anchors the parse; extraction rules are tried in priority order and
// the first applicable one wins (see the rule functions below). The period
// is extracted independently over the whole text.
func Parse(text string) models.CompanyInfo {
	var info models.CompanyInfo
	info.Period = parsePeriod(text)

	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return info
	}

	taxID, idx := findTaxID(lines)
	if taxID == "" {
		// No anchor at all: the first line is the best guess for the legal
		// name and nothing else can be trusted.
		info.LegalName = lines[0]
		return info
	}
	info.TaxID = taxID

	rules := []extractionRule{sameLineRule, lineAnchoredRule}
	for _, rule := range rules {
		if rule(lines, idx, taxID, &info) {
			return info
		}
	}
	return info
}

// extractionRule tries one header-layout hypothesis. It fills info and
// reports whether it applied.
type extractionRule func(lines []string, idx int, taxID string, info *models.CompanyInfo) bool

// sameLineRule handles the concatenated layout where the legal name, tax id
// and the remaining fields share one line: the prefix before the id is the
// legal name and the suffix is split on a street-type keyword into activity,
// address and commune. Without a street keyword the whole suffix is the
// business activity.
func sameLineRule(lines []string, idx int, taxID string, info *models.CompanyInfo) bool {
	line := lines[idx]
	pos := strings.Index(line, taxID)
	if pos <= 0 {
		return false
	}

	info.LegalName = strings.TrimSpace(line[:pos])

	suffix := strings.TrimSpace(line[pos+len(taxID):])
	if suffix == "" {
		collectFollowing(lines, idx+1, info)
		return true
	}

	loc := addressKeyword.FindStringIndex(suffix)
	if loc == nil {
		info.BusinessActivity = suffix
		return true
	}

	info.BusinessActivity = strings.TrimSpace(suffix[:loc[0]])
	rest := strings.TrimSpace(suffix[loc[0]:])
	info.Address, info.Commune = splitCommune(rest)
	return true
}

// lineAnchoredRule handles the layout where the tax id sits on its own line:
// the previous line is the legal name and the lines after it carry activity,
// address and commune in order, up to the period banner.
func lineAnchoredRule(lines []string, idx int, taxID string, info *models.CompanyInfo) bool {
	if idx > 0 {
		info.LegalName = lines[idx-1]
	}
	collectFollowing(lines, idx+1, info)
	return true
}

// collectFollowing reads activity, address and commune from consecutive
// lines, stopping at the period banner.
func collectFollowing(lines []string, start int, info *models.CompanyInfo) {
	fields := []*string{&info.BusinessActivity, &info.Address, &info.Commune}
	n := 0
	for i := start; i < len(lines) && n < len(fields); i++ {
		upper := strings.ToUpper(lines[i])
		if strings.Contains(upper, "BALANCE") || strings.Contains(upper, "DESDE") {
			return
		}
		*fields[n] = lines[i]
		n++
	}
}

// splitCommune peels the commune off the end of an address: the last
// whitespace-delimited token when it is longer than three characters and
// carries no digits. Otherwise the whole text is the address.
func splitCommune(text string) (address, commune string) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return text, ""
	}
	last := fields[len(fields)-1]
	if len(last) <= 3 || strings.ContainsAny(last, "0123456789") {
		return text, ""
	}
	return strings.Join(fields[:len(fields)-1], " "), last
}

func parsePeriod(text string) string {
	m := periodPattern.FindStringSubmatch(strings.ToUpper(text))
	if m == nil {
		return ""
	}
	return "DESDE " + m[1] + " HASTA " + m[2]
}

func findTaxID(lines []string) (string, int) {
	limit := len(lines)
	if limit > maxHeaderLines {
		limit = maxHeaderLines
	}
	for i := 0; i < limit; i++ {
		if id := taxIDPattern.FindString(lines[i]); id != "" {
			return id, i
		}
	}
	return "", -1
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
