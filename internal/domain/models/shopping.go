package models

import (
	"bytes"
	"encoding/json"
)

// CaseCalculation breaks a unit deficit down into supplier cases.
type CaseCalculation struct {
	TotalUnits  int    `bson:"total_units" json:"total_units"`
	CasesNeeded int    `bson:"cases_needed" json:"cases_needed"`
	ExtraUnits  int    `bson:"extra_units" json:"extra_units"`
	CasesToBuy  int    `bson:"cases_to_buy" json:"cases_to_buy"`
	DisplayText string `bson:"display_text" json:"display_text"`
}

// ShoppingListItem is one line of a supplier's shopping list.
type ShoppingListItem struct {
	ItemID          string          `bson:"item_id" json:"item_id"`
	ItemName        string          `bson:"item_name" json:"item_name"`
	Category        string          `bson:"category" json:"category"`
	CurrentStock    int             `bson:"current_stock" json:"current_stock"`
	MinStock        int             `bson:"min_stock" json:"min_stock"`
	MaxStock        int             `bson:"max_stock" json:"max_stock"`
	NeedToBuy       int             `bson:"need_to_buy" json:"need_to_buy"`
	UnitsPerCase    int             `bson:"units_per_case" json:"units_per_case"`
	CaseCalculation CaseCalculation `bson:"case_calculation" json:"case_calculation"`
	CostPerUnit     float64         `bson:"cost_per_unit" json:"cost_per_unit"`
	CostPerCase     float64         `bson:"cost_per_case,omitempty" json:"cost_per_case,omitempty"`
	EstimatedCost   float64         `bson:"estimated_cost" json:"estimated_cost"`
	Supplier        string          `bson:"supplier" json:"supplier"`
}

// SupplierList groups the shopping-list lines of a single supplier.
type SupplierList struct {
	Supplier  string             `json:"supplier"`
	Items     []ShoppingListItem `json:"items"`
	TotalCost float64            `json:"total_cost"`
}

// ShoppingList is the full shopping list, suppliers kept in catalog order.
type ShoppingList struct {
	Suppliers []SupplierList
}

// Supplier looks up the section of the named supplier.
func (l ShoppingList) Supplier(name string) (SupplierList, bool) {
	for _, s := range l.Suppliers {
		if s.Supplier == name {
			return s, true
		}
	}
	return SupplierList{}, false
}

// MarshalJSON renders the list as an object keyed by supplier name, keeping
// the supplier order instead of sorting keys like a Go map would.
func (l ShoppingList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range l.Suppliers {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Supplier)
		if err != nil {
			return nil, err
		}
		if s.Items == nil {
			s.Items = []ShoppingListItem{}
		}
		value, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// LowStockItem is an entry of the quick restock view.
type LowStockItem struct {
	ItemID          string `json:"item_id"`
	ItemName        string `json:"item_name"`
	CurrentStock    int    `json:"current_stock"`
	MinStock        int    `json:"min_stock"`
	Category        string `json:"category"`
	PrimarySupplier string `json:"primary_supplier"`
}
