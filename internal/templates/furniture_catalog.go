package templates

import "github.com/gofloorplan/editor/internal/scene"

// LibraryItem is one entry in the furniture library: everything needed
// to instantiate a scene.Furniture via AddFromLibrary except its
// placement.
type LibraryItem struct {
	ProductID string
	Label     string
	Category  string
	Shape     scene.Shape
	W, H      float64
	Color     string
}

// FurnitureLibrary is the fixed ~30-item catalog of instantiable
// furniture, grounded on the same parametric-default pattern as
// DefaultCatalog (client/ui/board_view.go's NewBoardView).
func FurnitureLibrary() []LibraryItem {
	return []LibraryItem{
		{ProductID: "sofa-3seat", Label: "3-Seat Sofa", Category: "sofa", Shape: scene.ShapeRect, W: 7, H: 3, Color: "#8899AA"},
		{ProductID: "sofa-loveseat", Label: "Loveseat", Category: "sofa", Shape: scene.ShapeRect, W: 5, H: 3, Color: "#8899AA"},
		{ProductID: "sofa-sectional", Label: "Sectional Sofa", Category: "sofa", Shape: scene.ShapeL, W: 9, H: 7, Color: "#7A8C9E"},
		{ProductID: "armchair", Label: "Armchair", Category: "chair", Shape: scene.ShapeRound, W: 3, H: 3, Color: "#AA8866"},
		{ProductID: "dining-chair", Label: "Dining Chair", Category: "chair", Shape: scene.ShapeRect, W: 1.5, H: 1.5, Color: "#6B4F3A"},
		{ProductID: "office-chair", Label: "Office Chair", Category: "chair", Shape: scene.ShapeRound, W: 2, H: 2, Color: "#333333"},
		{ProductID: "coffee-table", Label: "Coffee Table", Category: "table", Shape: scene.ShapeRect, W: 4, H: 2, Color: "#5C4430"},
		{ProductID: "dining-table-4", Label: "Dining Table (4)", Category: "table", Shape: scene.ShapeRect, W: 4, H: 3, Color: "#5C4430"},
		{ProductID: "dining-table-6", Label: "Dining Table (6)", Category: "table", Shape: scene.ShapeRect, W: 6, H: 3.5, Color: "#5C4430"},
		{ProductID: "side-table", Label: "Side Table", Category: "table", Shape: scene.ShapeRound, W: 1.5, H: 1.5, Color: "#5C4430"},
		{ProductID: "console-table", Label: "Console Table", Category: "table", Shape: scene.ShapeRect, W: 4, H: 1.2, Color: "#5C4430"},
		{ProductID: "bed-twin", Label: "Twin Bed", Category: "bed", Shape: scene.ShapeBed, W: 3.2, H: 6.6, Color: "#DDD0C0"},
		{ProductID: "bed-full", Label: "Full Bed", Category: "bed", Shape: scene.ShapeBed, W: 4.5, H: 6.6, Color: "#DDD0C0"},
		{ProductID: "bed-queen", Label: "Queen Bed", Category: "bed", Shape: scene.ShapeBed, W: 5, H: 6.6, Color: "#DDD0C0"},
		{ProductID: "bed-king", Label: "King Bed", Category: "bed", Shape: scene.ShapeBed, W: 6.3, H: 6.6, Color: "#DDD0C0"},
		{ProductID: "nightstand", Label: "Nightstand", Category: "storage", Shape: scene.ShapeRect, W: 1.5, H: 1.5, Color: "#5C4430"},
		{ProductID: "dresser", Label: "Dresser", Category: "storage", Shape: scene.ShapeRect, W: 5, H: 1.8, Color: "#5C4430"},
		{ProductID: "wardrobe", Label: "Wardrobe", Category: "storage", Shape: scene.ShapeRect, W: 4, H: 2, Color: "#4A3627"},
		{ProductID: "bookshelf", Label: "Bookshelf", Category: "storage", Shape: scene.ShapeRect, W: 3, H: 1, Color: "#4A3627"},
		{ProductID: "tv-stand", Label: "TV Stand", Category: "storage", Shape: scene.ShapeRect, W: 5, H: 1.3, Color: "#2E2E2E"},
		{ProductID: "refrigerator", Label: "Refrigerator", Category: "appliance", Shape: scene.ShapeRect, W: 3, H: 2.8, Color: "#C7CCD1"},
		{ProductID: "range", Label: "Range", Category: "appliance", Shape: scene.ShapeRect, W: 2.5, H: 2.2, Color: "#444444"},
		{ProductID: "dishwasher", Label: "Dishwasher", Category: "appliance", Shape: scene.ShapeRect, W: 2, H: 2, Color: "#C7CCD1"},
		{ProductID: "washer", Label: "Washer", Category: "appliance", Shape: scene.ShapeRect, W: 2.4, H: 2.4, Color: "#E0E0E0"},
		{ProductID: "dryer", Label: "Dryer", Category: "appliance", Shape: scene.ShapeRect, W: 2.4, H: 2.4, Color: "#E0E0E0"},
		{ProductID: "toilet", Label: "Toilet", Category: "fixture", Shape: scene.ShapeOval, W: 1.6, H: 2.4, Color: "#F5F5F0"},
		{ProductID: "bathtub", Label: "Bathtub", Category: "fixture", Shape: scene.ShapeRect, W: 2.7, H: 5, Color: "#F5F5F0"},
		{ProductID: "vanity", Label: "Vanity", Category: "fixture", Shape: scene.ShapeRect, W: 3, H: 1.8, Color: "#FFFFFF"},
		{ProductID: "shower", Label: "Shower", Category: "fixture", Shape: scene.ShapeRect, W: 3, H: 3, Color: "#D8E0E6"},
		{ProductID: "desk", Label: "Desk", Category: "table", Shape: scene.ShapeRect, W: 4.5, H: 2.3, Color: "#5C4430"},
		{ProductID: "floor-lamp", Label: "Floor Lamp", Category: "lamp", Shape: scene.ShapeRound, W: 1, H: 1, Color: "#D6B877"},
		{ProductID: "area-rug", Label: "Area Rug", Category: "rug", Shape: scene.ShapeRect, W: 8, H: 5, Color: "#B9A98A"},
	}
}

// ByProductID returns the library item with the given product id, or
// false if none matches.
func ByProductID(library []LibraryItem, productID string) (LibraryItem, bool) {
	for _, item := range library {
		if item.ProductID == productID {
			return item, true
		}
	}
	return LibraryItem{}, false
}

// AddFromLibrary instantiates item as a new Furniture whose center is
// (x,y) and appends it front-most, mirroring scene.Duplicate's
// fresh-id-and-append pattern.
func AddFromLibrary(s scene.Scene, item LibraryItem, x, y float64) scene.Scene {
	f := scene.Furniture{
		ID:        scene.NewID(),
		ProductID: item.ProductID,
		X:         x,
		Y:         y,
		W:         item.W,
		H:         item.H,
		Color:     item.Color,
		Shape:     item.Shape,
		Label:     item.Label,
		Category:  item.Category,
	}

	next := s
	next.Furniture = append(append([]scene.Furniture(nil), s.Furniture...), f)
	return next
}
