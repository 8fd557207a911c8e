package cmd

import (
	"context"
	"fmt"

	"github.com/Madhav-Gupta-28/seafood-backend-go/database"
	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
	"github.com/Madhav-Gupta-28/seafood-backend-go/storefront"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the default catalog and settings to MongoDB",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		client, db, err := database.ConnectDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer client.Disconnect(context.Background())

		n, err := seedCatalog(ctx, database.NewProductStore(db), database.NewSettingsStore(db), seedForce)
		if err != nil {
			return err
		}
		log.Infof("seeded %d products", n)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "overwrite existing products and settings")
}

type catalogStore interface {
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, p models.Product) error
}

type settingsStore interface {
	Save(ctx context.Context, s models.SiteSettings) error
}

// seedCatalog writes the default catalog and settings unless products exist.
func seedCatalog(ctx context.Context, products catalogStore, settings settingsStore, force bool) (int, error) {
	if !force {
		n, err := products.Count(ctx)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			log.Infof("%d products already stored, use --force to overwrite", n)
			return 0, nil
		}
	}

	catalog := storefront.DefaultCatalog()
	for _, p := range catalog {
		if err := products.Save(ctx, p); err != nil {
			return 0, err
		}
	}
	if err := settings.Save(ctx, models.DefaultSiteSettings()); err != nil {
		return 0, err
	}
	return len(catalog), nil
}
