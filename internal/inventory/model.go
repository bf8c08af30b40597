package inventory

import "time"

// Units are the stock units offered by the admin UI.
var Units = []string{"pcs", "kg", "liter", "box", "pack"}

type StockItem struct {
	ID           string    `json:"id"`
	ItemName     string    `json:"itemName"`
	CurrentStock int       `json:"currentStock"`
	Unit         string    `json:"unit"`
	LastUpdate   time.Time `json:"lastUpdate"`
}
