package expense

import "time"

// Categories are the presets offered by the admin UI. The column itself is
// free-form text.
var Categories = []string{"Bahan Baku", "Operasional", "Gaji", "Utilitas", "Lainnya"}

type Expense struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}
