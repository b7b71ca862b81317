package models

// DemoCatalog returns the fixed catalog loaded by the seed endpoint.
func DemoCatalog() []ItemInput {
	return []ItemInput{
		{Name: "Big Chang", Category: CategoryBeer, UnitsPerCase: 15, MinStock: 30, MaxStock: 120, PrimarySupplier: "Singha99", CostPerUnit: 44.0, CostPerCase: 660.0, BoughtByCase: true},
		{Name: "Small Chang", Category: CategoryBeer, UnitsPerCase: 24, MinStock: 48, MaxStock: 192, PrimarySupplier: "Singha99", CostPerUnit: 45.0, CostPerCase: 1080.0, BoughtByCase: true},
		{Name: "Big Leo", Category: CategoryBeer, UnitsPerCase: 12, MinStock: 24, MaxStock: 96, PrimarySupplier: "Singha99", CostPerUnit: 45.0, CostPerCase: 540.0, BoughtByCase: true},
		{Name: "Small Leo", Category: CategoryBeer, UnitsPerCase: 24, MinStock: 48, MaxStock: 192, PrimarySupplier: "Singha99", CostPerUnit: 45.0, CostPerCase: 1080.0, BoughtByCase: true},
		{Name: "Big Singha", Category: CategoryBeer, UnitsPerCase: 12, MinStock: 24, MaxStock: 96, PrimarySupplier: "Singha99", CostPerUnit: 50.08, CostPerCase: 601.0, BoughtByCase: true},
		{Name: "Small Singha", Category: CategoryBeer, UnitsPerCase: 24, MinStock: 48, MaxStock: 192, PrimarySupplier: "Singha99", CostPerUnit: 27.08, CostPerCase: 650.0, BoughtByCase: true},
		{Name: "Small Heineken", Category: CategoryBeer, UnitsPerCase: 24, MinStock: 24, MaxStock: 96, PrimarySupplier: "Singha99", CostPerUnit: 31.75, CostPerCase: 762.0, BoughtByCase: true},
		{Name: "Red Bull", Category: CategoryMixer, UnitsPerCase: 50, MinStock: 100, MaxStock: 300, PrimarySupplier: "Singha99", CostPerUnit: 4.0, CostPerCase: 200.0, BoughtByCase: true},
		{Name: "Big Coke", Category: CategoryMixer, UnitsPerCase: 12, MinStock: 24, MaxStock: 96, PrimarySupplier: "Singha99", CostPerUnit: 12.0, CostPerCase: 144.0, BoughtByCase: true},
		{Name: "Soda Water", Category: CategoryMixer, UnitsPerCase: 24, MinStock: 48, MaxStock: 144, PrimarySupplier: "Singha99", CostPerUnit: 10.0, CostPerCase: 240.0, BoughtByCase: true},
		{Name: "Sangsom (Black)", Category: CategoryThaiAlcohol, UnitsPerCase: 12, MinStock: 6, MaxStock: 24, PrimarySupplier: "Singha99", CostPerUnit: 45.0, CostPerCase: 540.0, BoughtByCase: true},
		{Name: "Charles House Rum", Category: CategoryThaiAlcohol, UnitsPerCase: 12, MinStock: 6, MaxStock: 24, PrimarySupplier: "Makro", CostPerUnit: 24.0, CostPerCase: 288.0, BoughtByCase: true},
		{Name: "Jack Daniels", Category: CategoryImportAlcohol, UnitsPerCase: 1, MinStock: 1, MaxStock: 6, PrimarySupplier: "zBKK", CostPerUnit: 1200.0},
		{Name: "Grey Goose Vodka", Category: CategoryImportAlcohol, UnitsPerCase: 1, MinStock: 1, MaxStock: 4, PrimarySupplier: "zBKK", CostPerUnit: 2500.0},
		{Name: "Limes (25 pack)", Category: CategoryOther, UnitsPerCase: 25, MinStock: 50, MaxStock: 200, PrimarySupplier: "Makro", CostPerUnit: 0.4, CostPerCase: 10.0},
		{Name: "Plastic Cups (16oz)", Category: CategoryOther, UnitsPerCase: 50, MinStock: 100, MaxStock: 500, PrimarySupplier: "Makro", CostPerUnit: 2.18, CostPerCase: 109.0},
		{Name: "Toilet Paper (12 roll)", Category: CategoryHostel, UnitsPerCase: 12, MinStock: 24, MaxStock: 96, PrimarySupplier: "Makro", CostPerUnit: 9.5, CostPerCase: 114.0},
		{Name: "Shampoo Refill (1L)", Category: CategoryHostel, UnitsPerCase: 1, MinStock: 2, MaxStock: 8, PrimarySupplier: "Makro", CostPerUnit: 89.0},
	}
}
