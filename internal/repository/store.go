package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Store is the gorm-backed implementation of every repository interface.
type Store struct {
	db *gorm.DB
}

var (
	_ UserStore     = (*Store)(nil)
	_ PersonStore   = (*Store)(nil)
	_ PlaceStore    = (*Store)(nil)
	_ CategoryStore = (*Store)(nil)
	_ ReviewStore   = (*Store)(nil)
	_ CommentStore  = (*Store)(nil)
	_ FavoriteStore = (*Store)(nil)
)

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// translate maps gorm sentinel errors onto the repository ones.
// Requires TranslateError in the gorm config so unique violations
// surface as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
