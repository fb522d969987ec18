package db

import (
	"fmt"

	"turiapp/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the postgres connection, runs migrations and seeds the root
// categories. TranslateError turns driver errors into gorm sentinels so the
// repository layer can map them.
func Init(dsn string, log zerolog.Logger) (*gorm.DB, error) {
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=turiapp port=5432 sslmode=disable"
	}

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Info().Msg("database connection established")

	err = database.AutoMigrate(
		&models.User{},
		&models.Person{},
		&models.Category{},
		&models.Place{},
		&models.Review{},
		&models.ReviewHelpfulVote{},
		&models.Comment{},
		&models.Favorite{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	log.Info().Msg("database migration completed")

	seedCategories(database, log)
	return database, nil
}

func seedCategories(database *gorm.DB, log zerolog.Logger) {
	var count int64
	database.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	categories := []models.Category{
		{Name: "Restaurantes", Description: "Dónde comer", Icon: "restaurant", SortOrder: 1, IsActive: true},
		{Name: "Hoteles", Description: "Dónde dormir", Icon: "hotel", SortOrder: 2, IsActive: true},
		{Name: "Museos", Description: "Arte, historia y ciencia", Icon: "museum", SortOrder: 3, IsActive: true},
		{Name: "Parques", Description: "Naturaleza y aire libre", Icon: "park", SortOrder: 4, IsActive: true},
		{Name: "Vida nocturna", Description: "Bares y discotecas", Icon: "nightlife", SortOrder: 5, IsActive: true},
	}
	for _, category := range categories {
		if err := database.Create(&category).Error; err != nil {
			log.Error().Err(err).Str("name", category.Name).Msg("seed category failed")
		}
	}
	log.Info().Int("count", len(categories)).Msg("root categories seeded")
}
