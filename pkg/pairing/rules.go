package pairing

type (
	mainPairing struct {
		Curries []string
		Sides   []string
		Score   map[string]float64
	}

	curryPairing struct {
		Mains []string
		Score map[string]float64
	}
)

// Kerala cuisine pairing rules, keyed by canonical dish name. A dish listed
// without a weight scores the 0.5 default.
var mainPairings = map[string]mainPairing{
	"appam": {
		Curries: []string{"vegetable stew", "fish curry", "chicken curry", "egg roast"},
		Sides:   []string{"coconut chutney"},
		Score:   map[string]float64{"vegetable stew": 1.0, "fish curry": 0.9, "chicken curry": 0.8},
	},
	"puttu": {
		Curries: []string{"kadala curry", "fish curry", "vegetable stew", "banana"},
		Sides:   []string{"coconut chutney", "sugar and banana"},
		Score:   map[string]float64{"kadala curry": 1.0, "fish curry": 0.8, "banana": 0.7},
	},
	"idiyappam": {
		Curries: []string{"vegetable stew", "fish curry", "coconut milk"},
		Sides:   []string{"coconut chutney", "sugar"},
		Score:   map[string]float64{"vegetable stew": 1.0, "fish curry": 0.8},
	},
	"rice": {
		Curries: []string{"sambar", "rasam", "fish curry", "chicken curry", "dal", "thoran"},
		Sides:   []string{"pickle", "papadam", "yogurt"},
		Score:   map[string]float64{"sambar": 1.0, "rasam": 1.0, "fish curry": 0.9},
	},
	"porotta": {
		Curries: []string{"chicken curry", "beef curry", "fish curry", "egg roast"},
		Sides:   []string{"pickle", "raita"},
		Score:   map[string]float64{"chicken curry": 1.0, "beef curry": 0.9, "fish curry": 0.8},
	},
	"dosa": {
		Curries: []string{"sambar", "vegetable curry"},
		Sides:   []string{"coconut chutney", "tomato chutney"},
		Score:   map[string]float64{"sambar": 1.0, "coconut chutney": 1.0},
	},
}

var curryPairings = map[string]curryPairing{
	"fish curry": {
		Mains: []string{"rice", "appam", "puttu", "porotta"},
		Score: map[string]float64{"rice": 1.0, "appam": 0.9, "puttu": 0.8},
	},
	"chicken curry": {
		Mains: []string{"rice", "porotta", "appam"},
		Score: map[string]float64{"rice": 1.0, "porotta": 1.0, "appam": 0.8},
	},
	"vegetable stew": {
		Mains: []string{"appam", "idiyappam", "puttu"},
		Score: map[string]float64{"appam": 1.0, "idiyappam": 1.0, "puttu": 0.7},
	},
	"kadala curry": {
		Mains: []string{"puttu", "appam", "rice"},
		Score: map[string]float64{"puttu": 1.0, "appam": 0.8, "rice": 0.7},
	},
	"sambar": {
		Mains: []string{"rice", "dosa", "idli"},
		Score: map[string]float64{"rice": 1.0, "dosa": 1.0},
	},
	"rasam": {
		Mains: []string{"rice"},
		Score: map[string]float64{"rice": 1.0},
	},
}

// dishAliases folds named variants onto canonical keys before rule lookup.
var dishAliases = map[string]string{
	"matta rice":            "rice",
	"basmati rice":          "rice",
	"steamed rice":          "rice",
	"coconut rice":          "rice",
	"meen curry":            "fish curry",
	"kozhi curry":           "chicken curry",
	"vegetable curry":       "vegetable stew",
	"mixed vegetable curry": "vegetable stew",
	"black chickpea curry":  "kadala curry",
	"chickpea curry":        "kadala curry",
}

var mainKeywords = []string{"appam", "puttu", "idiyappam", "rice", "porotta", "dosa", "idli", "bread"}

var curryKeywords = []string{"curry", "stew", "sambar", "rasam", "dal", "roast"}
