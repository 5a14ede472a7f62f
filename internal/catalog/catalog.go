// Package catalog holds the fixed fashion catalog used to seed the vector store.
package catalog

import "github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/entity"

// Products is the seed catalog. Order matters only for ingestion determinism.
var Products = []entity.Product{
	{
		Name:  "Boho Breeze Dress",
		Desc:  "Flowy midi dress with earthy tones, tassels, and relaxed silhouette—perfect for festivals and beach sunsets.",
		Vibes: []string{"boho", "free-spirited", "summer"},
	},
	{
		Name:  "Urban Sprint Sneakers",
		Desc:  "Lightweight streetwear sneakers with bold accents and responsive sole, built for energetic city walks.",
		Vibes: []string{"urban", "energetic", "athleisure"},
	},
	{
		Name:  "Cozy Cloud Hoodie",
		Desc:  "Ultra-soft oversized hoodie in heather gray with fleece lining for stay-at-home cozy winter evenings.",
		Vibes: []string{"cozy", "casual", "winter"},
	},
	{
		Name:  "Minimalist Monochrome Blazer",
		Desc:  "Clean, sharp lines in a matte black blazer—minimalist, office-friendly, and capsule-wardrobe essential.",
		Vibes: []string{"minimalist", "monochrome", "office"},
	},
	{
		Name:  "Vintage Indigo Denim Jacket",
		Desc:  "Boxy-fit denim jacket with subtle distressing and classic metal hardware for timeless street style.",
		Vibes: []string{"vintage", "street", "casual"},
	},
	{
		Name:  "Pastel Pop Skirt",
		Desc:  "Pleated A-line skirt in pastel palette with playful movement and soft satin sheen.",
		Vibes: []string{"playful", "pastel", "feminine"},
	},
	{
		Name:  "Trail Tech Windbreaker",
		Desc:  "Water-resistant windbreaker with breathable mesh panels—ideal for hikes, drizzles, and weekend getaways.",
		Vibes: []string{"outdoor", "techwear", "utility"},
	},
	{
		Name:  "Silk Evening Top",
		Desc:  "Sleek silk cami with delicate straps and subtle sheen—goes from dinner dates to cocktails effortlessly.",
		Vibes: []string{"elegant", "evening", "chic"},
	},
	{
		Name:  "Retro Court Sneakers",
		Desc:  "Low-top leather sneakers with gum sole and retro side stripes for heritage tennis aesthetics.",
		Vibes: []string{"retro", "sporty", "street"},
	},
	{
		Name:  "Ribbed Knit Co-ord",
		Desc:  "Two-piece ribbed knit set with stretch comfort—balanced lines for lounge-to-errand versatility.",
		Vibes: []string{"loungewear", "neutral", "minimal"},
	},
}
