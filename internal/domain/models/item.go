package models

// Category is the closed set of catalog category codes.
type Category string

const (
	CategoryBeer          Category = "B"
	CategoryThaiAlcohol   Category = "A"
	CategoryImportAlcohol Category = "I"
	CategoryMixer         Category = "M"
	CategoryOther         Category = "O"
	CategoryHostel        Category = "Z"
)

var categoryNames = map[Category]string{
	CategoryBeer:          "Beer",
	CategoryThaiAlcohol:   "Thai Alcohol",
	CategoryImportAlcohol: "Import Alcohol",
	CategoryMixer:         "Mixers",
	CategoryOther:         "Bar Supplies",
	CategoryHostel:        "Hostel Supplies",
}

// Name returns the display name of the category, or "Other" for unknown codes.
func (c Category) Name() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Other"
}

// Valid reports whether c is one of the known category codes.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Item is a catalog entry.
type Item struct {
	ID                string   `bson:"_id" json:"id"`
	Name              string   `bson:"name" json:"name"`
	Category          Category `bson:"category" json:"category"`
	CategoryName      string   `bson:"category_name" json:"category_name"`
	UnitsPerCase      int      `bson:"units_per_case" json:"units_per_case"`
	MinStock          int      `bson:"min_stock" json:"min_stock"`
	MaxStock          int      `bson:"max_stock" json:"max_stock"`
	PrimarySupplier   string   `bson:"primary_supplier" json:"primary_supplier"`
	SecondarySupplier string   `bson:"secondary_supplier,omitempty" json:"secondary_supplier,omitempty"`
	CostPerUnit       float64  `bson:"cost_per_unit" json:"cost_per_unit"`
	CostPerCase       float64  `bson:"cost_per_case,omitempty" json:"cost_per_case,omitempty"`
	BoughtByCase      bool     `bson:"bought_by_case" json:"bought_by_case"`
}

// ItemInput is the create/replace payload for catalog items.
type ItemInput struct {
	Name              string   `json:"name" binding:"required"`
	Category          Category `json:"category" binding:"required,oneof=B A I M O Z"`
	UnitsPerCase      int      `json:"units_per_case" binding:"gte=0"`
	MinStock          int      `json:"min_stock" binding:"gte=0"`
	MaxStock          int      `json:"max_stock" binding:"gte=0"`
	PrimarySupplier   string   `json:"primary_supplier" binding:"required"`
	SecondarySupplier string   `json:"secondary_supplier"`
	CostPerUnit       float64  `json:"cost_per_unit" binding:"gte=0"`
	CostPerCase       float64  `json:"cost_per_case" binding:"gte=0"`
	BoughtByCase      bool     `json:"bought_by_case"`
}

// ToItem materializes the input under the given identifier. A zero units_per_case
// defaults to 1 and the category name is always derived from the code.
func (in ItemInput) ToItem(id string) Item {
	unitsPerCase := in.UnitsPerCase
	if unitsPerCase < 1 {
		unitsPerCase = 1
	}

	return Item{
		ID:                id,
		Name:              in.Name,
		Category:          in.Category,
		CategoryName:      in.Category.Name(),
		UnitsPerCase:      unitsPerCase,
		MinStock:          in.MinStock,
		MaxStock:          in.MaxStock,
		PrimarySupplier:   in.PrimarySupplier,
		SecondarySupplier: in.SecondarySupplier,
		CostPerUnit:       in.CostPerUnit,
		CostPerCase:       in.CostPerCase,
		BoughtByCase:      in.BoughtByCase,
	}
}
