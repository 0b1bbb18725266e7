package scanner

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/domain"
)

type (
	// ScannerService turns raw OCR text from a receipt into pantry line
	// items. Capture itself happens upstream; this only sees text.
	ScannerService interface {
		ParseReceiptText(text string) []domain.ParsedLineItem
	}

	scannerService struct{}
)

func NewScannerService() ScannerService {
	return &scannerService{}
}

// skipPatterns filter out receipt headers, totals, payment lines and
// other non-item noise.
var skipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^total`),
	regexp.MustCompile(`(?i)^subtotal`),
	regexp.MustCompile(`(?i)^tax`),
	regexp.MustCompile(`(?i)^vat`),
	regexp.MustCompile(`(?i)^cash`),
	regexp.MustCompile(`(?i)^card`),
	regexp.MustCompile(`(?i)^change`),
	regexp.MustCompile(`(?i)^thank you`),
	regexp.MustCompile(`(?i)^receipt`),
	regexp.MustCompile(`(?i)^bill`),
	regexp.MustCompile(`(?i)^date:`),
	regexp.MustCompile(`(?i)^time:`),
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`),
	regexp.MustCompile(`^\d{2}:\d{2}`),
	regexp.MustCompile(`(?i)^rs\.?\s*\d+`),
	regexp.MustCompile(`^₹\s*\d+`),
	regexp.MustCompile(`^\d+\.00$`),
	regexp.MustCompile(`^[*\-=_]+$`),
	regexp.MustCompile(`(?i)^(store|shop|mart|super)`),
}

var (
	priceSuffixes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\s+rs\.?\s*\d+(\.\d+)?$`),
		regexp.MustCompile(`\s+₹\s*\d+(\.\d+)?$`),
		regexp.MustCompile(`\s+\d+\.\d+$`),
	}

	quantityFirst   = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(kg|g|ml|l|pcs?|pieces?|nos?)\s+(.+)$`)
	quantityLast    = regexp.MustCompile(`(?i)^(.+?)\s+(\d+(?:\.\d+)?)\s*(kg|g|ml|l|pcs?|pieces?|nos?)$`)
	quantityAttached = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)(kg|g|ml|l)\s+(.+)$`)

	nonWord    = regexp.MustCompile(`[^\w\s]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// ingredientOrder fixes the matching priority: more specific names come
// before their substrings ("coconut oil" before "coconut", "coconut"
// before "milk").
var ingredientOrder = []string{
	"coconut oil", "rice", "onion", "tomato", "ginger", "garlic",
	"green chili", "curry leaves", "mustard seeds", "turmeric powder",
	"red chili powder", "coriander powder", "cumin powder", "garam masala",
	"coconut", "milk", "eggs", "chicken", "fish", "vegetables",
}

// ingredientVariants maps receipt spellings (including Malayalam trade
// names) to the canonical pantry ingredient.
var ingredientVariants = map[string][]string{
	"coconut oil":      {"coconut oil", "coco oil", "coconut cooking oil"},
	"rice":             {"rice", "matta rice", "basmati rice", "ponni rice"},
	"onion":            {"onion", "onions", "big onion", "shallots", "small onion"},
	"tomato":           {"tomato", "tomatoes", "tomato red"},
	"ginger":           {"ginger", "fresh ginger", "ginger fresh"},
	"garlic":           {"garlic", "garlic pods", "fresh garlic"},
	"green chili":      {"green chilli", "green chili", "chilli green"},
	"curry leaves":     {"curry leaves", "curry leaf", "karuveppila"},
	"mustard seeds":    {"mustard seeds", "mustard seed", "kadugu"},
	"turmeric powder":  {"turmeric powder", "turmeric", "manjal powder"},
	"red chili powder": {"red chilli powder", "red chili powder", "chilli powder"},
	"coriander powder": {"coriander powder", "dhania powder"},
	"cumin powder":     {"cumin powder", "jeera powder"},
	"garam masala":     {"garam masala", "garam masala powder"},
	"coconut":          {"coconut", "fresh coconut", "coconut fresh"},
	"milk":             {"milk", "fresh milk", "cow milk"},
	"eggs":             {"eggs", "egg", "hen eggs"},
	"chicken":          {"chicken", "chicken meat", "broiler chicken"},
	"fish":             {"fish", "fresh fish", "sea fish"},
	"vegetables":       {"vegetables", "mixed vegetables", "veggie mix"},
}

var unitAliases = map[string]string{
	"kg":     "kg",
	"g":      "g",
	"ml":     "ml",
	"l":      "l",
	"pcs":    "pcs",
	"pc":     "pcs",
	"piece":  "pcs",
	"pieces": "pcs",
	"no":     "pcs",
	"nos":    "pcs",
}

// ParseReceiptText extracts line items from recognized receipt text. Lines
// that cannot be parsed are dropped; a garbled receipt yields a short list,
// never an error.
func (s *scannerService) ParseReceiptText(text string) []domain.ParsedLineItem {
	parsed := make([]domain.ParsedLineItem, 0)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || shouldSkipLine(trimmed) {
			continue
		}

		if item, ok := parseLine(trimmed); ok {
			parsed = append(parsed, item)
		}
	}

	return parsed
}

func shouldSkipLine(line string) bool {
	for _, pattern := range skipPatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

func parseLine(line string) (domain.ParsedLineItem, bool) {
	clean := line
	for _, suffix := range priceSuffixes {
		clean = suffix.ReplaceAllString(clean, "")
	}
	clean = strings.TrimSpace(clean)

	if m := quantityFirst.FindStringSubmatch(clean); m != nil {
		return lineItem(line, m[3], m[1], m[2]), true
	}
	if m := quantityLast.FindStringSubmatch(clean); m != nil {
		return lineItem(line, m[1], m[2], m[3]), true
	}
	if m := quantityAttached.FindStringSubmatch(clean); m != nil {
		return lineItem(line, m[3], m[1], m[2]), true
	}

	// Bare item name with no quantity.
	if len(clean) > 2 {
		return domain.ParsedLineItem{
			Raw:  line,
			Name: normalizeIngredientName(clean),
		}, true
	}

	return domain.ParsedLineItem{}, false
}

func lineItem(raw, name, quantity, unit string) domain.ParsedLineItem {
	item := domain.ParsedLineItem{
		Raw:  raw,
		Name: normalizeIngredientName(strings.TrimSpace(name)),
		Unit: normalizeUnit(unit),
	}

	// An unparseable quantity stays nil rather than failing the line.
	if value, err := strconv.ParseFloat(quantity, 64); err == nil {
		item.Quantity = &value
	}

	return item
}

func normalizeIngredientName(name string) string {
	cleaned := strings.ToLower(name)
	cleaned = nonWord.ReplaceAllString(cleaned, " ")
	cleaned = whitespace.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	for _, canonical := range ingredientOrder {
		for _, variant := range ingredientVariants[canonical] {
			if strings.Contains(cleaned, variant) {
				return canonical
			}
		}
	}

	return cleaned
}

func normalizeUnit(unit string) string {
	if normalized, ok := unitAliases[strings.ToLower(unit)]; ok {
		return normalized
	}
	return strings.ToLower(unit)
}
