package models

// CartLine es una línea del carrito; la clave única es (ID, Color)
type CartLine struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
	Color    string `json:"color"`
}

func (l CartLine) LineTotal() int {
	return l.Price * l.Quantity
}

// CartTotals se deriva del carrito en cada lectura; no se guarda
type CartTotals struct {
	Subtotal int `json:"subtotal"`
	Shipping int `json:"shipping"`
	Total    int `json:"total"`
}
