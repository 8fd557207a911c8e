package models

type ProductCategory string

const (
	CategoryPickup   ProductCategory = "pickup"
	CategoryDelivery ProductCategory = "delivery"
)

type Product struct {
	ID              string          `bson:"_id" json:"id"`
	Title           string          `bson:"title" json:"title"`
	Price           int             `bson:"price" json:"price"`
	Description     []string        `bson:"description" json:"description"`
	LongDescription string          `bson:"longDescription,omitempty" json:"longDescription,omitempty"`
	Badge           string          `bson:"badge,omitempty" json:"badge,omitempty"`
	Images          []string        `bson:"images" json:"images"`
	IsActive        *bool           `bson:"isActive,omitempty" json:"isActive,omitempty"`
	Category        ProductCategory `bson:"category,omitempty" json:"category,omitempty"`
}

// Active reports whether the product is listed. Products without the flag are listed.
func (p Product) Active() bool {
	return p.IsActive == nil || *p.IsActive
}

// ShippingType selects the checkout branch for the product. Uncategorised
// products are collected from a store.
func (p Product) ShippingType() ShippingType {
	if p.Category == CategoryDelivery {
		return ShippingTypeDelivery
	}
	return ShippingTypePickup
}
