package repository

import (
	"errors"
	"time"

	"turiapp/internal/models"
)

// Sentinel errors every implementation translates its driver errors into.
// Services branch on these; they never see gorm error values.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// UserListOptions filters and pages the admin user listing.
type UserListOptions struct {
	Role   string
	Active *bool
	Limit  int
	Offset int
}

// UserStore persists user records.
type UserStore interface {
	CreateUser(u *models.User) error
	GetUser(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByIdentifier(identifier string) (*models.User, error)
	ListUsers(opts UserListOptions) ([]models.User, int64, error)
	UpdateUser(u *models.User) error
	UpdateLastLogin(id uint, when time.Time) error
	UpdatePassword(id uint, hash string) error
	DeactivateUser(id uint) error
	UserStats(id uint) (*models.UserStats, error)
}

// PersonStore persists the 1:1 person profiles.
type PersonStore interface {
	CreatePerson(p *models.Person) error
	GetPerson(id uint) (*models.Person, error)
	GetPersonByUser(userID uint) (*models.Person, error)
	UpdatePerson(p *models.Person) error
}

// PlaceListOptions filters and pages the place listing.
type PlaceListOptions struct {
	CategoryID uint
	PriceRange string
	Verified   *bool
	Search     string
	Limit      int
	Offset     int
}

// PlaceStore persists places and their category associations.
// CreatePlace and UpdatePlace run the place write and the category join
// writes inside one transaction.
type PlaceStore interface {
	CreatePlace(p *models.Place, categoryIDs []uint) error
	UpdatePlace(p *models.Place, categoryIDs []uint, replaceCategories bool) error
	GetPlace(id uint) (*models.Place, error)
	ListPlaces(opts PlaceListOptions) ([]models.Place, int64, error)
	NearbyPlaces(lat, lng, radiusKm float64, limit int) ([]models.Place, error)
	PopularPlaces(limit int) ([]models.Place, error)
	FeaturedPlaces(limit int) ([]models.Place, error)
	SoftDeletePlace(id uint) error
	IncrementVisits(id uint) error
	PlaceStats(id uint) (*models.PlaceStats, error)
}

// CategoryOrder is one entry of a bulk reorder request.
type CategoryOrder struct {
	ID        uint `json:"id"`
	SortOrder int  `json:"sort_order"`
}

// CategoryStore persists the category taxonomy.
type CategoryStore interface {
	CreateCategory(c *models.Category) error
	UpdateCategory(c *models.Category) error
	GetCategory(id uint) (*models.Category, error)
	GetCategoryByName(name string) (*models.Category, error)
	ListCategories(includeInactive bool) ([]models.Category, error)
	ListCategoriesWithPlaceCounts() ([]models.Category, error)
	CountSubcategories(id uint) (int64, error)
	CountCategoryPlaces(id uint) (int64, error)
	ReorderCategories(orders []CategoryOrder) error
	SoftDeleteCategory(id uint) error
}

// ReviewListOptions filters and pages the review listing.
type ReviewListOptions struct {
	PlaceID   uint
	UserID    uint
	MinRating int
	Limit     int
	Offset    int
}

// ReviewStore persists reviews and helpful votes. Review writes recompute
// the owning place's average_rating and total_reviews in the same
// transaction.
type ReviewStore interface {
	CreateReview(r *models.Review) error
	UpdateReview(r *models.Review) error
	DeleteReview(id uint) error
	GetReview(id uint) (*models.Review, error)
	GetReviewByPlaceAndUser(placeID, userID uint) (*models.Review, error)
	ListReviews(opts ReviewListOptions) ([]models.Review, int64, error)
	AddHelpfulVote(reviewID, userID uint) error
	HasHelpfulVote(reviewID, userID uint) (bool, error)
}

// CommentStore persists review comments.
type CommentStore interface {
	CreateComment(c *models.Comment) error
	UpdateComment(c *models.Comment) error
	DeleteComment(id uint) error
	GetComment(id uint) (*models.Comment, error)
	ListCommentsByReview(reviewID uint) ([]models.Comment, error)
	HasTopLevelComment(reviewID, userID uint) (bool, error)
	SetCommentVisibility(id uint, public bool) error
}

// FavoriteStore persists user favorites.
type FavoriteStore interface {
	CreateFavorite(f *models.Favorite) error
	DeleteFavorite(id uint) error
	GetFavorite(id uint) (*models.Favorite, error)
	GetFavoriteByUserAndPlace(userID, placeID uint) (*models.Favorite, error)
	ListFavoritesByUser(userID uint, limit, offset int) ([]models.Favorite, int64, error)
}
