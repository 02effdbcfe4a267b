package catalog

import "eyewear-store/internal/models"

func price(v int) *int { return &v }

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Classic Aviator",
			Description:   "Timeless metal aviator sunglasses with UV400 polarized lenses.",
			Category:      models.CategoryMen,
			Type:          models.TypeSunglasses,
			Price:         1299,
			OriginalPrice: price(1999),
			Images:        []string{"/images/products/aviator-1.jpg", "/images/products/aviator-2.jpg"},
			Colors:        []string{"gold", "black", "silver"},
			Rating:        4.6,
			Reviews:       128,
			IsBestSeller:  true,
		},
		{
			ID:           "2",
			Name:         "Urban Wayfarer",
			Description:  "Bold acetate wayfarer frame for everyday wear.",
			Category:     models.CategoryMen,
			Type:         models.TypeSunglasses,
			Price:        999,
			Images:       []string{"/images/products/wayfarer-1.jpg"},
			Colors:       []string{"black", "tortoise"},
			Rating:       4.3,
			Reviews:      86,
			IsBestSeller: true,
		},
		{
			ID:            "3",
			Name:          "Blue Shield Rectangle",
			Description:   "Lightweight rectangle power glasses with blue-light filtering lenses.",
			Category:      models.CategoryMen,
			Type:          models.TypePowerGlasses,
			Price:         1499,
			OriginalPrice: price(2199),
			Images:        []string{"/images/products/rectangle-1.jpg"},
			Colors:        []string{"black", "gunmetal"},
			Rating:        4.5,
			Reviews:       64,
			IsNew:         true,
		},
		{
			ID:          "4",
			Name:        "Titanium Half Rim",
			Description: "Featherweight titanium half-rim frame for prescription lenses.",
			Category:    models.CategoryMen,
			Type:        models.TypePowerGlasses,
			Price:       2499,
			Images:      []string{"/images/products/halfrim-1.jpg"},
			Colors:      []string{"silver", "black"},
			Rating:      4.7,
			Reviews:     41,
		},
		{
			ID:            "5",
			Name:          "Cat Eye Glam",
			Description:   "Vintage-inspired cat eye sunglasses with gradient lenses.",
			Category:      models.CategoryWomen,
			Type:          models.TypeSunglasses,
			Price:         1199,
			OriginalPrice: price(1799),
			Images:        []string{"/images/products/cateye-1.jpg", "/images/products/cateye-2.jpg"},
			Colors:        []string{"pink", "black", "tortoise"},
			Rating:        4.8,
			Reviews:       152,
			IsBestSeller:  true,
		},
		{
			ID:          "6",
			Name:        "Oversized Butterfly",
			Description: "Statement oversized butterfly frame with full UV protection.",
			Category:    models.CategoryWomen,
			Type:        models.TypeSunglasses,
			Price:       1399,
			Images:      []string{"/images/products/butterfly-1.jpg"},
			Colors:      []string{"brown", "black"},
			Rating:      4.4,
			Reviews:     57,
			IsNew:       true,
		},
		{
			ID:           "7",
			Name:         "Round Clear Frame",
			Description:  "Transparent round acetate frame, ready for power lenses.",
			Category:     models.CategoryWomen,
			Type:         models.TypePowerGlasses,
			Price:        899,
			Images:       []string{"/images/products/round-clear-1.jpg"},
			Colors:       []string{"clear", "rose"},
			Rating:       4.2,
			Reviews:      39,
			IsBestSeller: true,
		},
		{
			ID:          "8",
			Name:        "Rose Gold Geometric",
			Description: "Geometric metal frame in rose gold with anti-glare coating.",
			Category:    models.CategoryWomen,
			Type:        models.TypePowerGlasses,
			Price:       1799,
			Images:      []string{"/images/products/geometric-1.jpg"},
			Colors:      []string{"rose gold", "silver"},
			Rating:      4.6,
			Reviews:     22,
			IsNew:       true,
		},
		{
			ID:          "9",
			Name:        "Junior Flex",
			Description: "Unbreakable flexible frame for kids with soft nose pads.",
			Category:    models.CategoryKids,
			Type:        models.TypePowerGlasses,
			Price:       699,
			Images:      []string{"/images/products/junior-flex-1.jpg"},
			Colors:      []string{"blue", "red", "green"},
			Rating:      4.5,
			Reviews:     48,
		},
		{
			ID:            "10",
			Name:          "Little Star Shades",
			Description:   "Playful star-shaped sunglasses for kids with UV400 lenses.",
			Category:      models.CategoryKids,
			Type:          models.TypeSunglasses,
			Price:         499,
			OriginalPrice: price(799),
			Images:        []string{"/images/products/star-shades-1.jpg"},
			Colors:        []string{"yellow", "pink"},
			Rating:        4.1,
			Reviews:       31,
			IsNew:         true,
		},
		{
			ID:           "11",
			Name:         "Sport Wrap Kids",
			Description:  "Wraparound sports sunglasses with a rubber strap.",
			Category:     models.CategoryKids,
			Type:         models.TypeSunglasses,
			Price:        599,
			Images:       []string{"/images/products/sport-wrap-1.jpg"},
			Colors:       []string{"black", "blue"},
			Rating:       4.3,
			Reviews:      19,
			IsBestSeller: true,
		},
		{
			ID:          "12",
			Name:        "Clubmaster Retro",
			Description: "Browline clubmaster frame with polarized green lenses.",
			Category:    models.CategoryMen,
			Type:        models.TypeSunglasses,
			Price:       1599,
			Images:      []string{"/images/products/clubmaster-1.jpg"},
			Colors:      []string{"black", "tortoise"},
			Rating:      4.4,
			Reviews:     73,
		},
	}
}
