package rules

import "sort"

// FacilityKind distinguishes basic space from special order-capable rooms.
type FacilityKind string

const (
	// KindBasic is a space-only facility with no orders.
	KindBasic FacilityKind = "basic"
	// KindSpecial is an order-capable facility gated by character level.
	KindSpecial FacilityKind = "special"
)

// Size is a facility footprint.
type Size string

const (
	SizeCramped Size = "cramped"
	SizeRoomy   Size = "roomy"
	SizeVast    Size = "vast"
)

// ParseSize maps external size strings onto Size values.
func ParseSize(value string) (Size, bool) {
	switch Size(value) {
	case SizeCramped, SizeRoomy, SizeVast:
		return Size(value), true
	default:
		return "", false
	}
}

// OrderDef describes one order a special facility can run.
//
// Variable orders carry no fixed duration or cost; the issuer supplies both
// at issue time.
type OrderDef struct {
	DurationDays int
	CostGP       int
	Variable     bool
}

// FacilityDef describes one rules-catalog facility entry.
type FacilityDef struct {
	Name          string
	Kind          FacilityKind
	RequiredLevel int
	DefaultSize   Size
	Orders        map[string]OrderDef
}

// CostRow is one construction or enlargement cost table entry.
type CostRow struct {
	CostGP       int
	DurationDays int
}

// facilities is the full facility catalog. Special entries carry their order
// lists; basic entries carry none and are built at a chosen size.
var facilities = map[string]FacilityDef{
	"Arcane Study": {
		Name: "Arcane Study", Kind: KindSpecial, RequiredLevel: 5, DefaultSize: SizeRoomy,
		Orders: map[string]OrderDef{
			"Craft: Arcane Focus":        {DurationDays: 7, CostGP: 0},
			"Craft: Book":                {DurationDays: 7, CostGP: 10},
			"Craft: Magic Item (Arcana)": {Variable: true},
		},
	},
	"Smithy": {
		Name: "Smithy", Kind: KindSpecial, RequiredLevel: 5, DefaultSize: SizeRoomy,
		Orders: map[string]OrderDef{
			"Craft: Smith's Tools Item":    {Variable: true},
			"Craft: Magic Item (Armament)": {Variable: true},
		},
	},
	"Barrack": {
		Name: "Barrack", Kind: KindSpecial, RequiredLevel: 5, DefaultSize: SizeRoomy,
		Orders: map[string]OrderDef{
			"Recruit: Bastion Defenders": {DurationDays: 7, CostGP: 0},
		},
	},
	"Garden": {
		Name: "Garden", Kind: KindSpecial, RequiredLevel: 5, DefaultSize: SizeRoomy,
		Orders: map[string]OrderDef{
			"Harvest: Garden Growth": {DurationDays: 7, CostGP: 0},
		},
	},
	"Library": {
		Name: "Library", Kind: KindSpecial, RequiredLevel: 5, DefaultSize: SizeRoomy,
		Orders: map[string]OrderDef{
			"Research: Topical Lore": {DurationDays: 7, CostGP: 0},
		},
	},
	"Sanctuary": {
		Name: "Sanctuary", Kind: KindSpecial, RequiredLevel: 5, DefaultSize: SizeRoomy,
		Orders: map[string]OrderDef{
			"Craft: Sacred Focus": {DurationDays: 7, CostGP: 0},
		},
	},
	"Storehouse": {
		Name: "Storehouse", Kind: KindSpecial, RequiredLevel: 5, DefaultSize: SizeRoomy,
		Orders: map[string]OrderDef{
			"Trade: Goods": {DurationDays: 7, CostGP: 500},
		},
	},
	"Workshop": {
		Name: "Workshop", Kind: KindSpecial, RequiredLevel: 5, DefaultSize: SizeRoomy,
		Orders: map[string]OrderDef{
			"Craft: Adventuring Gear": {Variable: true},
		},
	},
	"Gaming Hall": {
		Name: "Gaming Hall", Kind: KindSpecial, RequiredLevel: 9, DefaultSize: SizeVast,
		Orders: map[string]OrderDef{
			"Run Gambling Hall": {DurationDays: 7, CostGP: 0},
		},
	},
	"Pub": {
		Name: "Pub", Kind: KindSpecial, RequiredLevel: 9, DefaultSize: SizeRoomy,
		Orders: map[string]OrderDef{
			"Research: Information Gathering": {DurationDays: 7, CostGP: 0},
		},
	},
	"War Room": {
		Name: "War Room", Kind: KindSpecial, RequiredLevel: 17, DefaultSize: SizeVast,
		Orders: map[string]OrderDef{
			"Recruit: Lieutenant": {DurationDays: 7, CostGP: 0},
			"Recruit: Soldiers":   {Variable: true},
		},
	},

	"Bedroom":     {Name: "Bedroom", Kind: KindBasic},
	"Kitchen":     {Name: "Kitchen", Kind: KindBasic},
	"Dining Room": {Name: "Dining Room", Kind: KindBasic},
	"Courtyard":   {Name: "Courtyard", Kind: KindBasic},
	"Storage":     {Name: "Storage", Kind: KindBasic},
}

// constructionCosts holds the cost to build a basic facility at each size.
// All basic facilities share the standard rows.
var constructionCosts = map[Size]CostRow{
	SizeCramped: {CostGP: 500, DurationDays: 20},
	SizeRoomy:   {CostGP: 1000, DurationDays: 45},
	SizeVast:    {CostGP: 3000, DurationDays: 125},
}

// enlargementCosts holds the cost of valid size transitions. Only
// cramped-to-roomy and roomy-to-vast are legal.
var enlargementCosts = map[Size]map[Size]CostRow{
	SizeCramped: {SizeRoomy: {CostGP: 500, DurationDays: 25}},
	SizeRoomy:   {SizeVast: {CostGP: 2000, DurationDays: 80}},
}

// Facility returns the catalog entry for a facility name.
func Facility(name string) (FacilityDef, bool) {
	def, ok := facilities[name]
	return def, ok
}

// FacilityNames returns all catalog names, special entries first,
// alphabetical within each kind. Useful for listings.
func FacilityNames() []string {
	names := make([]string, 0, len(facilities))
	for name := range facilities {
		names = append(names, name)
	}
	sortNames(names)
	return names
}

// Order returns the order definition for a facility and order name.
func Order(facilityName, orderName string) (OrderDef, bool) {
	def, ok := facilities[facilityName]
	if !ok {
		return OrderDef{}, false
	}
	order, ok := def.Orders[orderName]
	return order, ok
}

// ConstructionCost returns the cost row for building a basic facility at the
// given size.
func ConstructionCost(facilityName string, size Size) (CostRow, bool) {
	def, ok := facilities[facilityName]
	if !ok || def.Kind != KindBasic {
		return CostRow{}, false
	}
	row, ok := constructionCosts[size]
	return row, ok
}

// EnlargementCost returns the cost row for enlarging from current to target
// size. Only adjacent upward transitions exist.
func EnlargementCost(current, target Size) (CostRow, bool) {
	transitions, ok := enlargementCosts[current]
	if !ok {
		return CostRow{}, false
	}
	row, ok := transitions[target]
	return row, ok
}

func sortNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		a, b := facilities[names[i]], facilities[names[j]]
		if a.Kind != b.Kind {
			return a.Kind == KindSpecial
		}
		return a.Name < b.Name
	})
}
