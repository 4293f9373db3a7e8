package reference

import "github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/catalog"

// Products returns the static storefront catalog. This is reference
// data shipped with the app; the catalog is loaded once at startup and
// never mutated.
func Products() []catalog.Product {
	return []catalog.Product{
		{
			ID: "gp001", Name: "Floral Print Cotton Frock", Brand: "BabyHug",
			Category: "Clothing", Subcategory: "Frocks & Dresses",
			AgeBand: catalog.AgeBand0To6Months, Gender: catalog.GenderGirls,
			Season: catalog.SeasonSummer,
			Price:  449, OriginalPrice: 699, DiscountPercent: 35,
			Rating: 4.3, ReviewCount: 214,
			Sizes: []string{"0-3M", "3-6M"}, Color: "Pink", InStock: true,
		},
		{
			ID: "gp002", Name: "Full Sleeve Wool Sweater Set", Brand: "Mothercare",
			Category: "Clothing", Subcategory: "Sweaters",
			AgeBand: catalog.AgeBand0To6Months, Gender: catalog.GenderGirls,
			Season: catalog.SeasonWinter,
			Price:  899, OriginalPrice: 1299, DiscountPercent: 30,
			Rating: 4.6, ReviewCount: 98,
			Sizes: []string{"0-3M", "3-6M"}, Color: "Cream", InStock: true,
		},
		{
			ID: "gp003", Name: "Sleeveless Denim Dungaree", Brand: "612 League",
			Category: "Clothing", Subcategory: "Dungarees",
			AgeBand: catalog.AgeBand6To24Months, Gender: catalog.GenderGirls,
			Season: catalog.SeasonAllSeason,
			Price:  749, OriginalPrice: 999, DiscountPercent: 25,
			Rating: 4.1, ReviewCount: 167,
			Sizes: []string{"6-12M", "12-18M", "18-24M"}, Color: "Blue", InStock: true,
		},
		{
			ID: "gp004", Name: "Printed Cotton Jhabla Pack of 3", Brand: "Cuddledoo",
			Category: "Clothing", Subcategory: "Tops & Tees",
			AgeBand: catalog.AgeBand6To24Months, Gender: catalog.GenderGirls,
			Season: catalog.SeasonSummer,
			Price:  399, OriginalPrice: 599, DiscountPercent: 33,
			Rating: 3.9, ReviewCount: 312,
			Sizes: []string{"6-12M", "12-18M"}, Color: "Yellow", InStock: true,
		},
		{
			ID: "gp005", Name: "Hooded Puffer Jacket", Brand: "Little Kangaroos",
			Category: "Clothing", Subcategory: "Jackets",
			AgeBand: catalog.AgeBand2To4Years, Gender: catalog.GenderGirls,
			Season: catalog.SeasonWinter,
			Price:  1299, OriginalPrice: 1899, DiscountPercent: 32,
			Rating: 4.7, ReviewCount: 76,
			Sizes: []string{"2-3Y", "3-4Y"}, Color: "Red", InStock: true,
		},
		{
			ID: "gp006", Name: "Embroidered Lehenga Choli Set", Brand: "Gini & Jony",
			Category: "Clothing", Subcategory: "Ethnic Wear",
			AgeBand: catalog.AgeBand2To4Years, Gender: catalog.GenderGirls,
			Season: catalog.SeasonAllSeason,
			Price:  999, OriginalPrice: 1599, DiscountPercent: 38,
			Rating: 4.4, ReviewCount: 143,
			Sizes: []string{"2-3Y", "3-4Y"}, Color: "Maroon", InStock: true,
		},
		{
			ID: "gp007", Name: "Ruffle Sleeve Summer Dress", Brand: "BabyHug",
			Category: "Clothing", Subcategory: "Frocks & Dresses",
			AgeBand: catalog.AgeBand2To4Years, Gender: catalog.GenderGirls,
			Season: catalog.SeasonSummer,
			Price:  549, OriginalPrice: 799, DiscountPercent: 31,
			Rating: 4.0, ReviewCount: 228,
			Sizes: []string{"2-3Y", "3-4Y"}, Color: "White", InStock: true,
		},
		{
			ID: "gp008", Name: "Unicorn Print Tutu Skirt", Brand: "Hopscotch",
			Category: "Clothing", Subcategory: "Skirts",
			AgeBand: catalog.AgeBand4To6Years, Gender: catalog.GenderGirls,
			Season: catalog.SeasonSummer,
			Price:  649, OriginalPrice: 899, DiscountPercent: 28,
			Rating: 4.2, ReviewCount: 189,
			Sizes: []string{"4-5Y", "5-6Y"}, Color: "Purple", InStock: true,
		},
		{
			ID: "gp009", Name: "Quilted Winter Coat with Bow", Brand: "Mothercare",
			Category: "Clothing", Subcategory: "Jackets",
			AgeBand: catalog.AgeBand4To6Years, Gender: catalog.GenderGirls,
			Season: catalog.SeasonWinter,
			Price:  1799, OriginalPrice: 2499, DiscountPercent: 28,
			Rating: 4.8, ReviewCount: 54,
			Sizes: []string{"4-5Y", "5-6Y"}, Color: "Navy", InStock: true,
		},
		{
			ID: "gp010", Name: "Palazzo Kurti Set", Brand: "Gini & Jony",
			Category: "Clothing", Subcategory: "Ethnic Wear",
			AgeBand: catalog.AgeBand6To14Years, Gender: catalog.GenderGirls,
			Season: catalog.SeasonAllSeason,
			Price:  1099, OriginalPrice: 1499, DiscountPercent: 27,
			Rating: 4.5, ReviewCount: 121,
			Sizes: []string{"6-8Y", "8-10Y", "10-12Y", "12-14Y"}, Color: "Teal", InStock: true,
		},
		{
			ID: "bp001", Name: "Romper with Cap Pack of 2", Brand: "Cuddledoo",
			Category: "Clothing", Subcategory: "Rompers",
			AgeBand: catalog.AgeBand0To6Months, Gender: catalog.GenderBoys,
			Season: catalog.SeasonSummer,
			Price:  499, OriginalPrice: 749, DiscountPercent: 33,
			Rating: 4.0, ReviewCount: 276,
			Sizes: []string{"0-3M", "3-6M"}, Color: "Green", InStock: true,
		},
		{
			ID: "bp002", Name: "Fleece Lined Thermal Set", Brand: "BabyHug",
			Category: "Clothing", Subcategory: "Thermals",
			AgeBand: catalog.AgeBand6To24Months, Gender: catalog.GenderBoys,
			Season: catalog.SeasonWinter,
			Price:  799, OriginalPrice: 1099, DiscountPercent: 27,
			Rating: 4.4, ReviewCount: 88,
			Sizes: []string{"6-12M", "12-18M", "18-24M"}, Color: "Grey", InStock: true,
		},
		{
			ID: "bp003", Name: "Dino Print T-Shirt and Shorts", Brand: "Hopscotch",
			Category: "Clothing", Subcategory: "Sets",
			AgeBand: catalog.AgeBand2To4Years, Gender: catalog.GenderBoys,
			Season: catalog.SeasonSummer,
			Price:  599, OriginalPrice: 849, DiscountPercent: 29,
			Rating: 4.1, ReviewCount: 203,
			Sizes: []string{"2-3Y", "3-4Y"}, Color: "Orange", InStock: true,
		},
		{
			ID: "bp004", Name: "Checked Flannel Shirt", Brand: "Allen Solly Junior",
			Category: "Clothing", Subcategory: "Shirts",
			AgeBand: catalog.AgeBand4To6Years, Gender: catalog.GenderBoys,
			Season: catalog.SeasonWinter,
			Price:  899, OriginalPrice: 1299, DiscountPercent: 31,
			Rating: 4.6, ReviewCount: 67,
			Sizes: []string{"4-5Y", "5-6Y"}, Color: "Red", InStock: true,
		},
		{
			ID: "bp005", Name: "Kurta Pajama Festive Set", Brand: "Gini & Jony",
			Category: "Clothing", Subcategory: "Ethnic Wear",
			AgeBand: catalog.AgeBand4To6Years, Gender: catalog.GenderBoys,
			Season: catalog.SeasonAllSeason,
			Price:  1199, OriginalPrice: 1699, DiscountPercent: 29,
			Rating: 4.3, ReviewCount: 109,
			Sizes: []string{"4-5Y", "5-6Y"}, Color: "White", InStock: true,
		},
		{
			ID: "bp006", Name: "Cargo Joggers", Brand: "612 League",
			Category: "Clothing", Subcategory: "Bottoms",
			AgeBand: catalog.AgeBand6To14Years, Gender: catalog.GenderBoys,
			Season: catalog.SeasonAllSeason,
			Price:  849, OriginalPrice: 1199, DiscountPercent: 29,
			Rating: 3.8, ReviewCount: 154,
			Sizes: []string{"6-8Y", "8-10Y", "10-12Y"}, Color: "Olive", InStock: true,
		},
		{
			ID: "bp007", Name: "Colour Block Windcheater", Brand: "Little Kangaroos",
			Category: "Clothing", Subcategory: "Jackets",
			AgeBand: catalog.AgeBand6To14Years, Gender: catalog.GenderBoys,
			Season: catalog.SeasonWinter,
			Price:  1499, OriginalPrice: 2099, DiscountPercent: 29,
			Rating: 4.2, ReviewCount: 93,
			Sizes: []string{"6-8Y", "8-10Y", "10-12Y", "12-14Y"}, Color: "Blue", InStock: false,
		},
	}
}
