package repository

import (
	"turiapp/internal/models"
)

func (s *Store) CreatePerson(p *models.Person) error {
	return translate(s.db.Create(p).Error)
}

func (s *Store) GetPerson(id uint) (*models.Person, error) {
	var person models.Person
	if err := s.db.Preload("User").First(&person, id).Error; err != nil {
		return nil, translate(err)
	}
	return &person, nil
}

func (s *Store) GetPersonByUser(userID uint) (*models.Person, error) {
	var person models.Person
	if err := s.db.Preload("User").Where("user_id = ?", userID).First(&person).Error; err != nil {
		return nil, translate(err)
	}
	return &person, nil
}

func (s *Store) UpdatePerson(p *models.Person) error {
	return translate(s.db.Save(p).Error)
}
