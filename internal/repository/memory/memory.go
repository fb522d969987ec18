// Package memory is an in-memory implementation of the repository
// interfaces, intended for tests and local development. It mirrors the
// database-level guarantees the gorm store relies on: composite unique
// indexes surface as repository.ErrDuplicate, review writes recompute the
// owning place's aggregates.
package memory

import (
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"turiapp/internal/models"
	"turiapp/internal/repository"
)

type Store struct {
	mu              sync.Mutex
	seq             uint
	users           []models.User
	persons         []models.Person
	places          []models.Place
	placeCategories map[uint][]uint // place id -> category ids
	categories      []models.Category
	reviews         []models.Review
	helpfulVotes    []models.ReviewHelpfulVote
	comments        []models.Comment
	favorites       []models.Favorite
}

var (
	_ repository.UserStore     = (*Store)(nil)
	_ repository.PersonStore   = (*Store)(nil)
	_ repository.PlaceStore    = (*Store)(nil)
	_ repository.CategoryStore = (*Store)(nil)
	_ repository.ReviewStore   = (*Store)(nil)
	_ repository.CommentStore  = (*Store)(nil)
	_ repository.FavoriteStore = (*Store)(nil)
)

// New creates an empty store.
func New() *Store {
	return &Store{placeCategories: make(map[uint][]uint)}
}

func (s *Store) nextSeq() uint {
	s.seq++
	return s.seq
}

// ---------------------------------------------------------------------------
// Users

func (s *Store) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return repository.ErrDuplicate
		}
	}
	u.ID = s.nextSeq()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	s.users = append(s.users, *u)
	return nil
}

func (s *Store) GetUser(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUser(func(u models.User) bool { return u.ID == id })
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUser(func(u models.User) bool { return u.Email == email })
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUser(func(u models.User) bool { return u.Username == username })
}

func (s *Store) GetUserByIdentifier(identifier string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUser(func(u models.User) bool {
		return u.Email == identifier || u.Username == identifier
	})
}

func (s *Store) findUser(match func(models.User) bool) (*models.User, error) {
	for i := range s.users {
		if match(s.users[i]) {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) ListUsers(opts repository.UserListOptions) ([]models.User, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []models.User
	for _, u := range s.users {
		if opts.Role != "" && u.Role != opts.Role {
			continue
		}
		if opts.Active != nil && u.IsActive != *opts.Active {
			continue
		}
		matched = append(matched, u)
	}
	total := int64(len(matched))
	return page(matched, opts.Limit, opts.Offset), total, nil
}

func (s *Store) UpdateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == u.ID {
			u.UpdatedAt = time.Now()
			s.users[i] = *u
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) UpdateLastLogin(id uint, when time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			t := when
			s.users[i].LastLogin = &t
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) UpdatePassword(id uint, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Password = hash
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) DeactivateUser(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].IsActive = false
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) UserStats(id uint) (*models.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &models.UserStats{}
	for _, p := range s.places {
		if p.CreatedBy == id {
			stats.PlacesCreated++
		}
	}
	for _, r := range s.reviews {
		if r.UserID == id {
			stats.ReviewsWritten++
		}
	}
	for _, f := range s.favorites {
		if f.UserID == id {
			stats.FavoritesCount++
		}
	}
	for _, c := range s.comments {
		if c.UserID == id {
			stats.CommentsPosted++
		}
	}
	return stats, nil
}

// ---------------------------------------------------------------------------
// Persons

func (s *Store) CreatePerson(p *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.persons {
		if existing.UserID == p.UserID {
			return repository.ErrDuplicate
		}
	}
	p.ID = s.nextSeq()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	s.persons = append(s.persons, *p)
	return nil
}

func (s *Store) GetPerson(id uint) (*models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.persons {
		if s.persons[i].ID == id {
			person := s.persons[i]
			return &person, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) GetPersonByUser(userID uint) (*models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.persons {
		if s.persons[i].UserID == userID {
			person := s.persons[i]
			return &person, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) UpdatePerson(p *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.persons {
		if s.persons[i].ID == p.ID {
			p.UpdatedAt = time.Now()
			s.persons[i] = *p
			return nil
		}
	}
	return repository.ErrNotFound
}

// ---------------------------------------------------------------------------
// Places

func (s *Store) CreatePlace(p *models.Place, categoryIDs []uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range categoryIDs {
		if s.categoryIndex(id) < 0 {
			return repository.ErrNotFound
		}
	}
	p.ID = s.nextSeq()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	s.places = append(s.places, *p)
	s.placeCategories[p.ID] = append([]uint(nil), categoryIDs...)
	return nil
}

func (s *Store) UpdatePlace(p *models.Place, categoryIDs []uint, replaceCategories bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.places {
		if s.places[i].ID == p.ID {
			if replaceCategories {
				for _, id := range categoryIDs {
					if s.categoryIndex(id) < 0 {
						return repository.ErrNotFound
					}
				}
				s.placeCategories[p.ID] = append([]uint(nil), categoryIDs...)
			}
			p.UpdatedAt = time.Now()
			s.places[i] = *p
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) GetPlace(id uint) (*models.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getPlaceLocked(id)
}

func (s *Store) getPlaceLocked(id uint) (*models.Place, error) {
	for i := range s.places {
		if s.places[i].ID == id && s.places[i].IsActive {
			place := s.places[i]
			place.Categories = s.categoriesOf(place.ID)
			return &place, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) categoriesOf(placeID uint) []models.Category {
	var cats []models.Category
	for _, cid := range s.placeCategories[placeID] {
		if idx := s.categoryIndex(cid); idx >= 0 {
			cats = append(cats, s.categories[idx])
		}
	}
	return cats
}

func (s *Store) ListPlaces(opts repository.PlaceListOptions) ([]models.Place, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []models.Place
	for _, p := range s.places {
		if !p.IsActive {
			continue
		}
		if opts.PriceRange != "" && p.PriceRange != opts.PriceRange {
			continue
		}
		if opts.Verified != nil && p.IsVerified != *opts.Verified {
			continue
		}
		if opts.CategoryID != 0 && !containsID(s.placeCategories[p.ID], opts.CategoryID) {
			continue
		}
		if opts.Search != "" {
			needle := strings.ToLower(opts.Search)
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
		}
		p.Categories = s.categoriesOf(p.ID)
		matched = append(matched, p)
	}
	// newest first, matching the gorm store's ordering
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	return page(matched, opts.Limit, opts.Offset), total, nil
}

func (s *Store) NearbyPlaces(lat, lng, radiusKm float64, limit int) ([]models.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []models.Place
	for _, p := range s.places {
		if !p.IsActive {
			continue
		}
		d := haversineKm(lat, lng, p.Latitude, p.Longitude)
		if d <= radiusKm {
			p.Distance = d
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Distance < matched[j].Distance
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *Store) PopularPlaces(limit int) ([]models.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []models.Place
	for _, p := range s.places {
		if p.IsActive {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].TotalVisits != matched[j].TotalVisits {
			return matched[i].TotalVisits > matched[j].TotalVisits
		}
		return matched[i].AverageRating > matched[j].AverageRating
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *Store) FeaturedPlaces(limit int) ([]models.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []models.Place
	for _, p := range s.places {
		if p.IsActive && p.IsFeatured {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].AverageRating > matched[j].AverageRating
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *Store) SoftDeletePlace(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.places {
		if s.places[i].ID == id && s.places[i].IsActive {
			s.places[i].IsActive = false
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) IncrementVisits(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.places {
		if s.places[i].ID == id {
			s.places[i].TotalVisits++
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) PlaceStats(id uint) (*models.PlaceStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var place *models.Place
	for i := range s.places {
		if s.places[i].ID == id {
			place = &s.places[i]
			break
		}
	}
	if place == nil {
		return nil, repository.ErrNotFound
	}
	stats := &models.PlaceStats{
		PlaceID:         place.ID,
		AverageRating:   place.AverageRating,
		TotalVisits:     place.TotalVisits,
		RatingBreakdown: make(map[int]int64),
	}
	for _, r := range s.reviews {
		if r.PlaceID == id {
			stats.TotalReviews++
			stats.RatingBreakdown[r.Rating]++
		}
	}
	for _, f := range s.favorites {
		if f.PlaceID == id {
			stats.FavoriteCount++
		}
	}
	return stats, nil
}

// ---------------------------------------------------------------------------
// Categories

func (s *Store) CreateCategory(c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if existing.Name == c.Name {
			return repository.ErrDuplicate
		}
	}
	c.ID = s.nextSeq()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	s.categories = append(s.categories, *c)
	return nil
}

func (s *Store) UpdateCategory(c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.categoryIndex(c.ID); idx >= 0 {
		c.UpdatedAt = time.Now()
		s.categories[idx] = *c
		return nil
	}
	return repository.ErrNotFound
}

func (s *Store) categoryIndex(id uint) int {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) GetCategory(id uint) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.categoryIndex(id); idx >= 0 {
		category := s.categories[idx]
		return &category, nil
	}
	return nil, repository.ErrNotFound
}

func (s *Store) GetCategoryByName(name string) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].Name == name {
			category := s.categories[i]
			return &category, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) ListCategories(includeInactive bool) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []models.Category
	for _, c := range s.categories {
		if includeInactive || c.IsActive {
			matched = append(matched, c)
		}
	}
	sortCategories(matched)
	return matched, nil
}

func (s *Store) ListCategoriesWithPlaceCounts() ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[uint]int64)
	for placeID, catIDs := range s.placeCategories {
		for i := range s.places {
			if s.places[i].ID == placeID {
				for _, cid := range catIDs {
					counts[cid]++
				}
				break
			}
		}
	}
	var matched []models.Category
	for _, c := range s.categories {
		if c.IsActive {
			c.PlaceCount = counts[c.ID]
			matched = append(matched, c)
		}
	}
	sortCategories(matched)
	return matched, nil
}

func sortCategories(cats []models.Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].SortOrder != cats[j].SortOrder {
			return cats[i].SortOrder < cats[j].SortOrder
		}
		return cats[i].ID < cats[j].ID
	})
}

func (s *Store) CountSubcategories(id uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, c := range s.categories {
		if c.ParentID != nil && *c.ParentID == id {
			count++
		}
	}
	return count, nil
}

func (s *Store) CountCategoryPlaces(id uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, catIDs := range s.placeCategories {
		if containsID(catIDs, id) {
			count++
		}
	}
	return count, nil
}

func (s *Store) ReorderCategories(orders []repository.CategoryOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// all-or-nothing: validate every id before touching anything
	for _, o := range orders {
		if s.categoryIndex(o.ID) < 0 {
			return repository.ErrNotFound
		}
	}
	for _, o := range orders {
		s.categories[s.categoryIndex(o.ID)].SortOrder = o.SortOrder
	}
	return nil
}

func (s *Store) SoftDeleteCategory(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.categoryIndex(id); idx >= 0 && s.categories[idx].IsActive {
		s.categories[idx].IsActive = false
		return nil
	}
	return repository.ErrNotFound
}

// ---------------------------------------------------------------------------
// Reviews

func (s *Store) CreateReview(r *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.reviews {
		if existing.PlaceID == r.PlaceID && existing.UserID == r.UserID {
			return repository.ErrDuplicate
		}
	}
	r.ID = s.nextSeq()
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	s.reviews = append(s.reviews, *r)
	s.recalcPlace(r.PlaceID)
	return nil
}

func (s *Store) UpdateReview(r *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reviews {
		if s.reviews[i].ID == r.ID {
			r.UpdatedAt = time.Now()
			s.reviews[i] = *r
			s.recalcPlace(r.PlaceID)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) DeleteReview(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			placeID := s.reviews[i].PlaceID
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			s.recalcPlace(placeID)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) recalcPlace(placeID uint) {
	var sum, count int
	for _, r := range s.reviews {
		if r.PlaceID == placeID {
			sum += r.Rating
			count++
		}
	}
	for i := range s.places {
		if s.places[i].ID == placeID {
			s.places[i].TotalReviews = count
			if count > 0 {
				s.places[i].AverageRating = float64(sum) / float64(count)
			} else {
				s.places[i].AverageRating = 0
			}
			return
		}
	}
}

func (s *Store) GetReview(id uint) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			review := s.reviews[i]
			return &review, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) GetReviewByPlaceAndUser(placeID, userID uint) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reviews {
		if s.reviews[i].PlaceID == placeID && s.reviews[i].UserID == userID {
			review := s.reviews[i]
			return &review, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) ListReviews(opts repository.ReviewListOptions) ([]models.Review, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []models.Review
	for _, r := range s.reviews {
		if opts.PlaceID != 0 && r.PlaceID != opts.PlaceID {
			continue
		}
		if opts.UserID != 0 && r.UserID != opts.UserID {
			continue
		}
		if opts.MinRating > 0 && r.Rating < opts.MinRating {
			continue
		}
		matched = append(matched, r)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	return page(matched, opts.Limit, opts.Offset), total, nil
}

func (s *Store) AddHelpfulVote(reviewID, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.helpfulVotes {
		if v.ReviewID == reviewID && v.UserID == userID {
			return repository.ErrDuplicate
		}
	}
	s.helpfulVotes = append(s.helpfulVotes, models.ReviewHelpfulVote{
		ID:        s.nextSeq(),
		ReviewID:  reviewID,
		UserID:    userID,
		CreatedAt: time.Now(),
	})
	for i := range s.reviews {
		if s.reviews[i].ID == reviewID {
			s.reviews[i].HelpfulCount++
			break
		}
	}
	return nil
}

func (s *Store) HasHelpfulVote(reviewID, userID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.helpfulVotes {
		if v.ReviewID == reviewID && v.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

// ---------------------------------------------------------------------------
// Comments

func (s *Store) CreateComment(c *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextSeq()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	s.comments = append(s.comments, *c)
	return nil
}

func (s *Store) UpdateComment(c *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.comments {
		if s.comments[i].ID == c.ID {
			c.UpdatedAt = time.Now()
			s.comments[i] = *c
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) DeleteComment(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.comments {
		if s.comments[i].ID == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) GetComment(id uint) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.comments {
		if s.comments[i].ID == id {
			comment := s.comments[i]
			return &comment, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) ListCommentsByReview(reviewID uint) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []models.Comment
	for _, c := range s.comments {
		if c.ReviewID == reviewID {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].ID < matched[j].ID
	})
	return matched, nil
}

func (s *Store) HasTopLevelComment(reviewID, userID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.comments {
		if c.ReviewID == reviewID && c.UserID == userID && c.ParentID == nil {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) SetCommentVisibility(id uint, public bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.comments {
		if s.comments[i].ID == id {
			s.comments[i].IsPublic = public
			return nil
		}
	}
	return repository.ErrNotFound
}

// ---------------------------------------------------------------------------
// Favorites

func (s *Store) CreateFavorite(f *models.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.favorites {
		if existing.UserID == f.UserID && existing.PlaceID == f.PlaceID {
			return repository.ErrDuplicate
		}
	}
	f.ID = s.nextSeq()
	f.CreatedAt = time.Now()
	s.favorites = append(s.favorites, *f)
	return nil
}

func (s *Store) DeleteFavorite(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.favorites {
		if s.favorites[i].ID == id {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) GetFavorite(id uint) (*models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.favorites {
		if s.favorites[i].ID == id {
			favorite := s.favorites[i]
			if place, err := s.getPlaceLocked(favorite.PlaceID); err == nil {
				favorite.Place = *place
			}
			return &favorite, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) GetFavoriteByUserAndPlace(userID, placeID uint) (*models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.favorites {
		if s.favorites[i].UserID == userID && s.favorites[i].PlaceID == placeID {
			favorite := s.favorites[i]
			return &favorite, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) ListFavoritesByUser(userID uint, limit, offset int) ([]models.Favorite, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []models.Favorite
	for _, f := range s.favorites {
		if f.UserID == userID {
			if place, err := s.getPlaceLocked(f.PlaceID); err == nil {
				f.Place = *place
			}
			matched = append(matched, f)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	return page(matched, limit, offset), total, nil
}

// ---------------------------------------------------------------------------
// helpers

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	a := sinLat*sinLat + math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*sinLng*sinLng
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
