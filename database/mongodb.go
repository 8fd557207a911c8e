package database

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/gommon/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	OrdersCollection   = "orders"
	ProductsCollection = "products"
	SettingsCollection = "settings"

	// Every store call runs under this deadline.
	callTimeout = 10 * time.Second
)

var ErrNotFound = errors.New("document not found")

// ConnectDB dials uri and pings the server before returning the database.
func ConnectDB(ctx context.Context, uri, name string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	log.Infof("🗄️ Connected to MongoDB database %s", name)
	return client, client.Database(name), nil
}
