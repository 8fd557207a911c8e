package models

type OrderStatus string

const (
	OrderStatusAwaitingTransfer OrderStatus = "AwaitingTransfer"
	OrderStatusProcessing       OrderStatus = "Processing"
	OrderStatusShipped          OrderStatus = "Shipped"
	OrderStatusCompleted        OrderStatus = "Completed"
	OrderStatusTransferOverdue  OrderStatus = "TransferOverdue"
	OrderStatusCancelled        OrderStatus = "Cancelled"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusAwaitingTransfer: "待匯款",
	OrderStatusProcessing:       "商品處理中",
	OrderStatusShipped:          "已出貨",
	OrderStatusCompleted:        "訂單完成",
	OrderStatusTransferOverdue:  "匯款逾期",
	OrderStatusCancelled:        "訂單取消",
}

// Label returns the zh-TW text shown to the shop owner and customers.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

type ShippingType string

const (
	ShippingTypePickup   ShippingType = "pickup"
	ShippingTypeDelivery ShippingType = "delivery"
)

// OrderTimeLayout is the layout of Order.Date and Order.LastUpdated.
// Lexical order of formatted values matches chronological order.
const OrderTimeLayout = "2006-01-02 15:04:05"

// Order is stored in the orders collection keyed by its ID.
//
// DeliveryTimeSlot is only set for delivery orders. It must stay a pointer with
// omitempty: the stored document of a pickup order has no deliveryTimeSlot key.
type Order struct {
	ID               string            `bson:"_id" json:"id"`
	CustomerName     string            `bson:"customerName" json:"customerName"`
	CustomerPhone    string            `bson:"customerPhone" json:"customerPhone"`
	Date             string            `bson:"date" json:"date"`
	LastUpdated      string            `bson:"lastUpdated" json:"lastUpdated"`
	Total            int               `bson:"total" json:"total"`
	Status           OrderStatus       `bson:"status" json:"status"`
	Items            []string          `bson:"items" json:"items"`
	ShippingType     ShippingType      `bson:"shippingType" json:"shippingType"`
	ShippingAddress  string            `bson:"shippingAddress" json:"shippingAddress"`
	DeliveryTimeSlot *DeliveryTimeSlot `bson:"deliveryTimeSlot,omitempty" json:"deliveryTimeSlot,omitempty"`
}
