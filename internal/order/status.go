package order

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCompleted:
		return true
	}
	return false
}

// FulfillmentType determines which detail field accompanies the order:
// dine-in carries a table number, delivery an address, pickup a pickup time.
type FulfillmentType string

const (
	TypeDineIn   FulfillmentType = "dine-in"
	TypeDelivery FulfillmentType = "delivery"
	TypePickup   FulfillmentType = "pickup"
)

func (t FulfillmentType) Valid() bool {
	switch t {
	case TypeDineIn, TypeDelivery, TypePickup:
		return true
	}
	return false
}
