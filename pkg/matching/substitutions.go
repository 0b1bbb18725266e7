package matching

// substitutions maps a canonical ingredient name (lower case) to the
// substitute names that may stand in for it. Lookup is one-directional:
// a missing ingredient is satisfied by any of its listed substitutes in
// stock, never the reverse. Entries that want symmetry list each other
// explicitly (onion and shallots do).
var substitutions = map[string][]string{
	"onion":           {"shallots", "red onion", "white onion"},
	"shallots":        {"onion", "small onion"},
	"coconut oil":     {"vegetable oil", "sunflower oil"},
	"green chili":     {"serrano pepper", "jalapeno"},
	"curry leaves":    {"bay leaves"},
	"ginger":          {"ginger paste", "dry ginger"},
	"garlic":          {"garlic paste", "garlic powder"},
	"tomato":          {"canned tomato", "tomato puree"},
	"coconut":         {"coconut milk", "desiccated coconut"},
	"mustard seeds":   {"mustard oil", "mustard powder"},
	"coriander seeds": {"coriander powder"},
	"cumin seeds":     {"cumin powder"},
}

// shoppingCategories maps common ingredient names to the pantry category
// shown on the shopping list. Unknown names fall back to "Other".
var shoppingCategories = map[string]string{
	"rice":             "Staple",
	"coconut oil":      "Oil",
	"onion":            "Vegetable",
	"tomato":           "Vegetable",
	"ginger":           "Spice",
	"garlic":           "Spice",
	"curry leaves":     "Spice",
	"mustard seeds":    "Spice",
	"turmeric powder":  "Spice",
	"red chili powder": "Spice",
	"chicken":          "Protein",
	"fish":             "Protein",
	"milk":             "Dairy",
	"eggs":             "Protein",
}
