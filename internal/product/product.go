package product

// Product represents one catalog entry the storefront sells from. JSON tags
// follow the camelCase convention used elsewhere in the project.
type Product struct {
	ID          int     `json:"productId"`
	Name        string  `json:"productName"`
	Description string  `json:"productDesc,omitempty"`
	Price       float64 `json:"productPrice"`
	Image       string  `json:"productImg,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// DefaultCatalog seeds the in-memory repository when no catalog is supplied.
func DefaultCatalog() []Product {
	return []Product{
		{ID: 1, Name: "Wireless Mouse", Description: "Ergonomic 2.4GHz mouse", Price: 19.99, Image: "/img/mouse.jpg", Category: "Accessories"},
		{ID: 2, Name: "Mechanical Keyboard", Description: "Tenkeyless, brown switches", Price: 49.99, Image: "/img/keyboard.jpg", Category: "Accessories"},
		{ID: 3, Name: "USB-C Hub", Description: "7-in-1 hub with HDMI", Price: 34.50, Image: "/img/hub.jpg", Category: "Accessories"},
		{ID: 4, Name: "Laptop Stand", Description: "Aluminium, adjustable height", Price: 27.00, Image: "/img/stand.jpg", Category: "Desk"},
		{ID: 5, Name: "Desk Mat", Description: "900x400mm felt mat", Price: 15.75, Image: "/img/mat.jpg", Category: "Desk"},
		{ID: 6, Name: "Webcam", Description: "1080p with privacy shutter", Price: 39.99, Image: "/img/webcam.jpg", Category: "Video"},
	}
}
