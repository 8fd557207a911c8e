package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const siteConfigID = "site_config"

type SettingsStore struct {
	coll *mongo.Collection
}

func NewSettingsStore(db *mongo.Database) *SettingsStore {
	return &SettingsStore{coll: db.Collection(SettingsCollection)}
}

// Get returns the saved settings, or the defaults when none were saved yet.
func (s *SettingsStore) Get(ctx context.Context) (models.SiteSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var settings models.SiteSettings
	err := s.coll.FindOne(ctx, bson.M{"_id": siteConfigID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.DefaultSiteSettings(), nil
		}
		return models.SiteSettings{}, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsStore) Save(ctx context.Context, settings models.SiteSettings) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": siteConfigID}, settings, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
