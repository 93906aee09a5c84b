package catalog

// Default returns the built-in paper-supply catalog. Prices are per unit
// (per sheet, per item). Overridable with a YAML file via catalog.path.
func Default() Catalog {
	return Catalog{
		{ItemName: "A4 paper", Category: "paper", UnitPrice: 0.05},
		{ItemName: "Letter-sized paper", Category: "paper", UnitPrice: 0.06},
		{ItemName: "Legal-sized paper", Category: "paper", UnitPrice: 0.08},
		{ItemName: "Cardstock", Category: "paper", UnitPrice: 0.15},
		{ItemName: "Colored paper", Category: "paper", UnitPrice: 0.10},
		{ItemName: "Glossy paper", Category: "paper", UnitPrice: 0.20},
		{ItemName: "Matte paper", Category: "paper", UnitPrice: 0.18},
		{ItemName: "Recycled paper", Category: "paper", UnitPrice: 0.08},
		{ItemName: "Eco-friendly paper", Category: "paper", UnitPrice: 0.12},
		{ItemName: "Heavyweight paper", Category: "paper", UnitPrice: 0.25},
		{ItemName: "Standard copy paper", Category: "paper", UnitPrice: 0.04},
		{ItemName: "Bright-colored paper", Category: "paper", UnitPrice: 0.12},
		{ItemName: "Patterned paper", Category: "paper", UnitPrice: 0.15},
		{ItemName: "Construction paper", Category: "paper", UnitPrice: 0.07},
		{ItemName: "Kraft paper", Category: "paper", UnitPrice: 0.10},
		{ItemName: "Crepe paper", Category: "paper", UnitPrice: 0.05},
		{ItemName: "Photo paper", Category: "paper", UnitPrice: 0.25},
		{ItemName: "Poster paper", Category: "paper", UnitPrice: 0.30},
		{ItemName: "Banner paper", Category: "paper", UnitPrice: 0.30},
		{ItemName: "Wrapping paper", Category: "paper", UnitPrice: 0.15},
		{ItemName: "Glitter paper", Category: "paper", UnitPrice: 0.22},
		{ItemName: "Decorative paper", Category: "paper", UnitPrice: 0.18},
		{ItemName: "Letterhead paper", Category: "paper", UnitPrice: 0.12},
		{ItemName: "Paper plates", Category: "product", UnitPrice: 0.10},
		{ItemName: "Paper cups", Category: "product", UnitPrice: 0.08},
		{ItemName: "Paper napkins", Category: "product", UnitPrice: 0.02},
		{ItemName: "Table napkins", Category: "product", UnitPrice: 0.03},
		{ItemName: "Disposable cups", Category: "product", UnitPrice: 0.10},
		{ItemName: "Table covers", Category: "product", UnitPrice: 1.50},
		{ItemName: "Envelopes", Category: "product", UnitPrice: 0.05},
		{ItemName: "Sticky notes", Category: "product", UnitPrice: 0.03},
		{ItemName: "Notepads", Category: "product", UnitPrice: 1.00},
		{ItemName: "Invitation cards", Category: "product", UnitPrice: 0.50},
		{ItemName: "Index cards", Category: "product", UnitPrice: 0.05},
		{ItemName: "Flyers", Category: "product", UnitPrice: 0.15},
		{ItemName: "Party streamers", Category: "product", UnitPrice: 0.05},
		{ItemName: "Paper party bags", Category: "product", UnitPrice: 0.25},
		{ItemName: "Poster boards", Category: "product", UnitPrice: 1.00},
		{ItemName: "Presentation folders", Category: "product", UnitPrice: 0.50},
	}
}
