package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
)

var spaces = regexp.MustCompile(`\s+`)

func normalize(s string) string {
	return spaces.ReplaceAllString(strings.TrimSpace(s), " ")
}

var honorific = regexp.MustCompile(`(?i)^(?:(?:el|la)\s+(?:señor|señora)\s*:?\s*|sra?\.?\s*:?\s*)`)

func cleanPerson(name string) string {
	return strings.TrimRight(honorific.ReplaceAllString(strings.TrimSpace(name), ""), " ,;")
}

// person captures a name, skipping an optional "el señor:" style prefix.
const person = `(?:(?:el|la)\s+)?(?:(?:señora?|sra?\.?)\s*:?\s*)?([^,\n]+?)`

var (
	ownerClause = regexp.MustCompile(
		`(?is)\bentre\s+` + person + `\s*,?\s+con\s+DNI.*?denominad[oa]\s+["“]?(?:EL\s+LOCADOR|LA\s+LOCADORA)`)
	tenantClause = regexp.MustCompile(
		`(?is)\bpor\s+la\s+otra(?:\s+parte)?\s*,?\s*` + person + `\s*,?\s+con\s+DNI.*?` +
			`denominad[oa]\s+["“]?(?:EL\s+LOCATARIO|LA\s+LOCATARIA)`)
	ownerLabel  = regexp.MustCompile(`(?i)(?:LOCADORA?|PROPIETARI[OA])\s*[:\-]\s*([A-ZÁÉÍÓÚÑ][^\n]+)`)
	tenantLabel = regexp.MustCompile(`(?i)(?:LOCATARI[OA]|INQUILIN[OA])\s*[:\-]\s*([A-ZÁÉÍÓÚÑ][^\n]+)`)
)

// Names finds the owner (LOCADOR) and tenant (LOCATARIO) of a lease. Either
// may be empty.
func Names(text string) (owner, tenant string) {
	if m := ownerClause.FindStringSubmatch(text); m != nil {
		owner = normalize(m[1])
	}

	if m := tenantClause.FindStringSubmatch(text); m != nil {
		tenant = normalize(m[1])
	}

	if owner == "" {
		if m := ownerLabel.FindStringSubmatch(text); m != nil {
			owner = normalize(m[1])
		}
	}

	if tenant == "" {
		if m := tenantLabel.FindStringSubmatch(text); m != nil {
			tenant = normalize(m[1])
		}
	}

	return cleanPerson(owner), cleanPerson(tenant)
}

var (
	addressLine = regexp.MustCompile(
		`(?i)\b(AV\.?|AVENIDA|CALLE|PASAJE|PJE\.?)\s+(.{3,80}?\d{2,5}.{0,40}?)\b(?:CABA|CIUDAD\s+AUT[ÓO]NOMA\s+DE\s+BUENOS\s+AIRES)\b`)
	streetNumber = regexp.MustCompile(`\b\d{2,5}\b`)
	cabaWord     = regexp.MustCompile(`(?i)\bCABA\b`)
	quotes       = strings.NewReplacer("“", "", "”", "", `"`, "")
)

// PropertyLabel reads the property address from the first lines of the
// document, e.g. "AV. FEDERICO LACROZE 3060 9° F CABA".
func PropertyLabel(text string) string {
	var lines []string

	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}

		if len(lines) == 3 {
			break
		}
	}

	head := strings.Join(lines, " ")
	if head == "" {
		return ""
	}

	if m := addressLine.FindStringSubmatch(head); m != nil {
		prefix := strings.ToUpper(m[1])
		if prefix == "AVENIDA" {
			prefix = "AV."
		}

		middle := strings.TrimSpace(quotes.Replace(normalize(m[2])))
		middle = strings.TrimRight(middle, " –-,")

		return normalize(prefix + " " + middle + " CABA")
	}

	if streetNumber.MatchString(head) && cabaWord.MatchString(head) {
		return normalize(truncate(head, 90))
	}

	return ""
}

var months = map[string]time.Month{
	"enero": time.January, "febrero": time.February, "marzo": time.March,
	"abril": time.April, "mayo": time.May, "junio": time.June,
	"julio": time.July, "agosto": time.August, "septiembre": time.September,
	"setiembre": time.September, "octubre": time.October,
	"noviembre": time.November, "diciembre": time.December,
}

var (
	numericDate = regexp.MustCompile(`\b(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})\b`)
	signedDate  = regexp.MustCompile(
		`(?i)\b(\d{1,2})\s+d[ií]as?\s+del\s+mes\s+de\s+([a-záéíóúñ]+)\s+de\s+(\d{4})\b`)
	startPhrase = regexp.MustCompile(
		`(?is)\b(?:comienza|inicia|rige|a\s+partir\s+del)\b.*?\b(\d{1,2})\s+de\s+([a-záéíóúñ]+)\s+de\s+(\d{4})\b`)
	endPhrase = regexp.MustCompile(
		`(?is)\b(?:hasta|vence|vencer[aá]|finaliza|termina)\b.*?\b(\d{1,2})\s+de\s+([a-záéíóúñ]+)\s+de\s+(\d{4})\b`)
	termPlazo = regexp.MustCompile(
		`(?i)\bplazo\s+de\s+(?:[A-ZÁÉÍÓÚÑa-záéíóúñ]+\s*)?\(?\s*(\d{1,2})\s*\)?\s*(meses|años)\b`)
	termTermino = regexp.MustCompile(
		`(?i)\bt[eé]rmino\s+de\s+(?:[A-ZÁÉÍÓÚÑa-záéíóúñ]+\s*)?\(?\s*(\d{1,2})\s*\)?\s*(meses|años)\b`)
)

func date(y, m, d int) (time.Time, bool) {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, false
	}

	return t, true
}

// spanishDate parses the day, month name and year groups of a match.
func spanishDate(day, month, year string) (time.Time, bool) {
	mon, ok := months[strings.ToLower(month)]
	if !ok {
		return time.Time{}, false
	}

	d, _ := strconv.Atoi(day)
	y, _ := strconv.Atoi(year)

	return date(y, int(mon), d)
}

// AddMonths moves t forward by n calendar months, clamping to the last day
// of the target month.
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, n, 0)
	last := first.AddDate(0, 1, -1).Day()

	return first.AddDate(0, 0, min(t.Day(), last)-1)
}

func termMonths(text string) int {
	for _, re := range []*regexp.Regexp{termPlazo, termTermino} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		n, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(strings.ToLower(m[2]), "año") {
			return n * 12
		}

		return n
	}

	return 0
}

// Dates finds the start and end of the lease. The first two numeric dates
// win; otherwise explicit start/end phrases are used, the signature date
// stands in for a missing start, and a missing end is derived from the term.
func Dates(text string) (start, end *time.Time) {
	if all := numericDate.FindAllStringSubmatch(text, 2); len(all) == 2 {
		var found []time.Time

		for _, m := range all {
			d, _ := strconv.Atoi(m[1])
			mo, _ := strconv.Atoi(m[2])
			y, _ := strconv.Atoi(m[3])

			if t, ok := date(y, mo, d); ok {
				found = append(found, t)
			}
		}

		if len(found) == 2 {
			return &found[0], &found[1]
		}
	}

	var signed *time.Time

	if m := signedDate.FindStringSubmatch(text); m != nil {
		if t, ok := spanishDate(m[1], m[2], m[3]); ok {
			signed = &t
		}
	}

	if m := startPhrase.FindStringSubmatch(text); m != nil {
		if t, ok := spanishDate(m[1], m[2], m[3]); ok {
			start = &t
		}
	}

	if m := endPhrase.FindStringSubmatch(text); m != nil {
		if t, ok := spanishDate(m[1], m[2], m[3]); ok {
			end = &t
		}
	}

	if start == nil {
		start = signed
	}

	if end == nil && start != nil {
		if n := termMonths(text); n > 0 {
			end = new(AddMonths(*start, n))
		}
	}

	return start, end
}

var (
	rentKeyword = `(?:canon\s+locativo|alquiler|precio\s+mensual|valor\s+mensual)`
	rentPesos   = regexp.MustCompile(`(?is)` + rentKeyword + `.*?\$\s*([\d.,]+)`)
	rentDollarA = regexp.MustCompile(`(?is)` + rentKeyword + `.*?(?:USD|U\$S)\s*([\d.,]+)`)
	rentDollarB = regexp.MustCompile(`(?is)` + rentKeyword + `.*?([\d.,]*\d[\d.,]*)\s*(?:USD|U\$S)`)
	anyDollar   = regexp.MustCompile(`(?i)(?:USD|U\$S)\s*([\d.,]+)`)
	anyPesos    = regexp.MustCompile(`\$\s*([\d.,]+)`)
)

// ParseAmount reads an amount written with Argentine grouping: dots separate
// thousands and a comma separates decimals ("550.000,50").
func ParseAmount(s string) (float64, error) {
	s = strings.TrimRight(strings.TrimSpace(s), ".,")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return d.InexactFloat64(), nil
}

func isDollar(s string) bool {
	s = strings.ToUpper(s)
	return strings.Contains(s, "USD") || strings.Contains(s, "U$S")
}

// Amount finds the monthly rent and its currency. The currency is ARS unless
// the matched text names dollars. ok is false when no amount was found.
func Amount(text string) (amount float64, cur contract.Currency, ok bool) {
	text = strings.ReplaceAll(text, " ", " ")

	for _, re := range []*regexp.Regexp{rentPesos, rentDollarA, rentDollarB} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		v, err := ParseAmount(m[1])
		if err != nil {
			continue
		}

		if isDollar(m[0]) {
			return v, contract.CurrencyUSD, true
		}

		return v, contract.CurrencyARS, true
	}

	if m := anyDollar.FindStringSubmatch(text); m != nil {
		if v, err := ParseAmount(m[1]); err == nil {
			return v, contract.CurrencyUSD, true
		}
	}

	if m := anyPesos.FindStringSubmatch(text); m != nil {
		if v, err := ParseAmount(m[1]); err == nil {
			return v, contract.CurrencyARS, true
		}
	}

	return 0, contract.CurrencyARS, false
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n])
}
