package service

import "github.com/sweetmoments/storefront/internal/domain"

func int64Ptr(v int64) *int64 { return &v }

// seedProducts is the built-in assortment served whenever the remote catalog
// is unavailable. It mirrors the shop's launch lineup.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            "1",
			Name:          "Classic Kaju Katli",
			Slug:          "classic-kaju-katli",
			Description:   "Silky smooth cashew fudge made with premium cashews and minimal sugar.",
			Category:      "traditional",
			Price:         450,
			DiscountPrice: int64Ptr(399),
			Image:         "https://picsum.photos/id/488/600/600",
			Weight:        "500g",
			Ingredients:   []string{"Cashews", "Sugar", "Ghee"},
			ShelfLife:     "15 days",
			InStock:       true,
			Featured:      true,
			Bestseller:    true,
			Rating:        4.8,
			ReviewsCount:  124,
		},
		{
			ID:           "2",
			Name:         "Triple Chocolate Brownies",
			Slug:         "triple-chocolate-brownies",
			Description:  "Fudgy, rich brownies loaded with three types of Belgian chocolate.",
			Category:     "cakes",
			Price:        550,
			Image:        "https://picsum.photos/id/493/600/600",
			Weight:       "6 pieces",
			Ingredients:  []string{"Belgian Chocolate", "Flour", "Butter", "Eggs"},
			ShelfLife:    "5 days",
			InStock:      true,
			Featured:     true,
			Rating:       4.9,
			ReviewsCount: 89,
		},
		{
			ID:           "3",
			Name:         "Pista Gulab Jamun",
			Slug:         "pista-gulab-jamun",
			Description:  "Soft milk solids dumplings soaked in rose-flavored syrup, garnished with pistachios.",
			Category:     "traditional",
			Price:        320,
			Image:        "https://picsum.photos/id/500/600/600",
			Weight:       "500g",
			Ingredients:  []string{"Milk Solids", "Sugar", "Cardamom", "Rose Water"},
			ShelfLife:    "7 days",
			InStock:      true,
			Bestseller:   true,
			Rating:       4.7,
			ReviewsCount: 210,
		},
		{
			ID:           "4",
			Name:         "Sea Salt Caramel Cookies",
			Slug:         "sea-salt-caramel-cookies",
			Description:  "Buttery cookies with a gooey caramel center and a pinch of Himalayan sea salt.",
			Category:     "cookies",
			Price:        280,
			Image:        "https://picsum.photos/id/504/600/600",
			Weight:       "250g",
			Ingredients:  []string{"Butter", "Flour", "Caramel", "Sea Salt"},
			ShelfLife:    "10 days",
			InStock:      true,
			Rating:       4.6,
			ReviewsCount: 45,
		},
		{
			ID:           "5",
			Name:         "Motichoor Laddu",
			Slug:         "motichoor-laddu",
			Description:  "Melt-in-the-mouth gram flour pearls fried in desi ghee and flavored with saffron.",
			Category:     "traditional",
			Price:        400,
			Image:        "https://picsum.photos/id/505/600/600",
			Weight:       "500g",
			Ingredients:  []string{"Gram Flour", "Sugar", "Ghee", "Saffron"},
			ShelfLife:    "10 days",
			InStock:      true,
			Rating:       4.8,
			ReviewsCount: 156,
		},
		{
			ID:           "6",
			Name:         "Dark Chocolate Truffles",
			Slug:         "dark-chocolate-truffles",
			Description:  "Hand-rolled truffles made with 70% dark cocoa and cream ganache.",
			Category:     "chocolates",
			Price:        650,
			Image:        "https://picsum.photos/id/506/600/600",
			Weight:       "200g",
			Ingredients:  []string{"Cocoa Mass", "Heavy Cream", "Vanilla"},
			ShelfLife:    "20 days",
			InStock:      true,
			Rating:       4.9,
			ReviewsCount: 78,
		},
	}
}

// seedCategories is the built-in category list used alongside seedProducts.
func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: "traditional", Name: "Traditional Sweets", Image: "https://picsum.photos/id/102/400/300", Count: 12},
		{ID: "cakes", Name: "Artisan Cakes", Image: "https://picsum.photos/id/106/400/300", Count: 8},
		{ID: "cookies", Name: "Homemade Cookies", Image: "https://picsum.photos/id/103/400/300", Count: 15},
		{ID: "chocolates", Name: "Premium Chocolates", Image: "https://picsum.photos/id/104/400/300", Count: 10},
	}
}
