package order

import "time"

// Item is one line of an order, denormalized with the menu name and price at
// the time of ordering.
type Item struct {
	MenuID   string `json:"menuId"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	ID          string          `json:"orderId"`
	UserID      string          `json:"userId"`
	Items       []Item          `json:"items"`
	Total       int64           `json:"total"`
	Status      Status          `json:"status"`
	Type        FulfillmentType `json:"type"`
	TableNo     *string         `json:"tableNo,omitempty"`
	Address     *string         `json:"address,omitempty"`
	PickupTime  *string         `json:"pickupTime,omitempty"`
	ShippingFee *int64          `json:"shippingFee,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
