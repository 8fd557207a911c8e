package checkout

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
)

// GenerateOrderID returns YYMMDD-NNN for t with NNN drawn from intn(1000).
// Ids are not checked against existing orders.
func GenerateOrderID(t time.Time, intn func(int) int) string {
	return fmt.Sprintf("%s-%03d", t.Format("060102"), intn(1000))
}

func InitialStatus(settings models.SiteSettings) models.OrderStatus {
	if settings.EnableOnlinePayment {
		return models.OrderStatusProcessing
	}
	return models.OrderStatusAwaitingTransfer
}

// destination is the human readable store or street address without the
// alternate phone annotation.
func destination(info models.ShippingInfo, shippingType models.ShippingType) string {
	if shippingType == models.ShippingTypeDelivery {
		return info.City + info.District + info.Address
	}
	label := "門市取貨"
	if info.StoreType != nil {
		label = info.StoreType.Label()
	}
	return fmt.Sprintf("%s (%s)", info.StoreName, label)
}

func ShippingAddress(info models.ShippingInfo, shippingType models.ShippingType) string {
	addr := destination(info, shippingType)
	if shippingType == models.ShippingTypeDelivery && info.AlternativePhone != "" {
		addr += fmt.Sprintf(" (備用: %s)", info.AlternativePhone)
	}
	return addr
}

func BuildOrder(id string, at time.Time, info models.ShippingInfo, product models.Product, settings models.SiteSettings) models.Order {
	shippingType := product.ShippingType()
	stamp := at.Format(models.OrderTimeLayout)

	order := models.Order{
		ID:              id,
		CustomerName:    info.Name,
		CustomerPhone:   info.Phone,
		Date:            stamp,
		LastUpdated:     stamp,
		Total:           product.Price,
		Status:          InitialStatus(settings),
		Items:           []string{product.Title},
		ShippingType:    shippingType,
		ShippingAddress: ShippingAddress(info, shippingType),
	}
	if shippingType == models.ShippingTypeDelivery {
		slot := info.TimeSlot
		if slot == "" {
			slot = models.TimeSlotUnspecified
		}
		order.DeliveryTimeSlot = &slot
	}
	return order
}

// NotificationMessage formats the new-order summary sent to the shop owner's chat.
// Shopper text is HTML escaped for the chat's HTML parse mode.
func NotificationMessage(order models.Order, info models.ShippingInfo, product models.Product) string {
	carrier := "超商取貨"
	if order.ShippingType == models.ShippingTypeDelivery {
		carrier = "黑貓宅配"
	}

	var b strings.Builder
	b.WriteString("<b>📦 新訂單通知！</b>\n\n")
	fmt.Fprintf(&b, "<b>單號：</b> %s\n", order.ID)
	fmt.Fprintf(&b, "<b>商品：</b> %s\n", html.EscapeString(product.Title))
	fmt.Fprintf(&b, "<b>金額：</b> $%d\n", product.Price)
	fmt.Fprintf(&b, "<b>顧客：</b> %s\n", html.EscapeString(info.Name))
	fmt.Fprintf(&b, "<b>電話：</b> %s\n", html.EscapeString(info.Phone))
	fmt.Fprintf(&b, "<b>狀態：</b> %s\n", order.Status.Label())
	fmt.Fprintf(&b, "<b>配送：</b> %s\n", carrier)
	fmt.Fprintf(&b, "<b>地址/門市：</b> %s", html.EscapeString(destination(info, order.ShippingType)))
	return b.String()
}
