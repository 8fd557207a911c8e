package database

import (
	"context"
	"testing"

	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestOrderStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("persist upserts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		store := NewOrderStore(mt.DB)

		err := store.PersistOrder(context.Background(), &models.Order{ID: "240307-042", Status: models.OrderStatusAwaitingTransfer})
		assert.NoError(mt, err)
	})

	mt.Run("persist surfaces write errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on seafood to execute command",
		}))
		store := NewOrderStore(mt.DB)

		err := store.PersistOrder(context.Background(), &models.Order{ID: "240307-042"})
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "persist order 240307-042")
	})

	mt.Run("list", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + OrdersCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "240307-042"},
				{Key: "customerName", Value: "王小明"},
				{Key: "date", Value: "2024-03-07 14:05:09"},
				{Key: "total", Value: 1880},
				{Key: "status", Value: "AwaitingTransfer"},
				{Key: "items", Value: bson.A{"大閘蟹禮盒"}},
				{Key: "shippingType", Value: "delivery"},
				{Key: "deliveryTimeSlot", Value: "evening"},
			},
			bson.D{
				{Key: "_id", Value: "240306-001"},
				{Key: "date", Value: "2024-03-06 09:00:00"},
				{Key: "shippingType", Value: "pickup"},
			},
		))
		store := NewOrderStore(mt.DB)

		orders, err := store.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, orders, 2)
		assert.Equal(mt, "240307-042", orders[0].ID)
		assert.Equal(mt, 1880, orders[0].Total)
		require.NotNil(mt, orders[0].DeliveryTimeSlot)
		assert.Equal(mt, models.TimeSlotEvening, *orders[0].DeliveryTimeSlot)
		assert.Nil(mt, orders[1].DeliveryTimeSlot)
	})

	mt.Run("update status", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		store := NewOrderStore(mt.DB)

		err := store.UpdateStatus(context.Background(), "240307-042", models.OrderStatusShipped, "2024-03-08 10:00:00")
		assert.NoError(mt, err)
	})

	mt.Run("update status of missing order", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))
		store := NewOrderStore(mt.DB)

		err := store.UpdateStatus(context.Background(), "nope", models.OrderStatusShipped, "2024-03-08 10:00:00")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("delete all", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}))
		store := NewOrderStore(mt.DB)

		n, err := store.DeleteAll(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), n)
	})
}

func TestProductStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + ProductsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "p-crab"},
			{Key: "title", Value: "大閘蟹禮盒"},
			{Key: "price", Value: 1880},
			{Key: "category", Value: "delivery"},
			{Key: "isActive", Value: false},
		}))
		store := NewProductStore(mt.DB)

		p, err := store.Get(context.Background(), "p-crab")
		require.NoError(mt, err)
		assert.Equal(mt, "大閘蟹禮盒", p.Title)
		assert.Equal(mt, models.ShippingTypeDelivery, p.ShippingType())
		assert.False(mt, p.Active())
	})

	mt.Run("get missing", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + ProductsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		store := NewProductStore(mt.DB)

		_, err := store.Get(context.Background(), "nope")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("list", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + ProductsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "p1"}, {Key: "title", Value: "白蝦"}},
			bson.D{{Key: "_id", Value: "p2"}, {Key: "title", Value: "干貝"}},
		))
		store := NewProductStore(mt.DB)

		products, err := store.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, products, 2)
		assert.True(mt, products[0].Active())
		assert.Equal(mt, models.ShippingTypePickup, products[1].ShippingType())
	})

	mt.Run("save", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		store := NewProductStore(mt.DB)
		assert.NoError(mt, store.Save(context.Background(), models.Product{ID: "p1", Title: "白蝦"}))
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		store := NewProductStore(mt.DB)
		assert.ErrorIs(mt, store.Delete(context.Background(), "nope"), ErrNotFound)
	})

	mt.Run("count", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + ProductsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(4)}}))
		store := NewProductStore(mt.DB)

		n, err := store.Count(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, int64(4), n)
	})
}

func TestSettingsStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("defaults when unsaved", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + SettingsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		store := NewSettingsStore(mt.DB)

		s, err := store.Get(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, models.DefaultSiteSettings(), s)
	})

	mt.Run("saved document", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + SettingsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "site_config"},
			{Key: "enableStoreIntegration", Value: true},
			{Key: "enableOnlinePayment", Value: true},
			{Key: "telegramBotToken", Value: "123:abc"},
			{Key: "telegramChatId", Value: "-100"},
		}))
		store := NewSettingsStore(mt.DB)

		s, err := store.Get(context.Background())
		require.NoError(mt, err)
		assert.True(mt, s.EnableStoreIntegration)
		assert.True(mt, s.EnableOnlinePayment)
		assert.True(mt, s.TelegramConfigured())
	})

	mt.Run("save", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		store := NewSettingsStore(mt.DB)
		assert.NoError(mt, store.Save(context.Background(), models.DefaultSiteSettings()))
	})
}
