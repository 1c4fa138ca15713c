package roster

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Character is one created character: the race and class the player ended up
// with and the name the generator produced for them.
type Character struct {
	ID uint64 `gorm:"primaryKey"`

	Name       string
	RaceID     int
	Female     bool
	ClassIndex int

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

// FindCharacter returns the Character with the given ID or nil if none exists.
func FindCharacter(id uint64) (*Character, error) {
	var character Character
	err := db.First(&character, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &character, nil
}

// ListCharacters returns every stored character ordered by ID.
func ListCharacters() ([]Character, error) {
	var characters []Character
	if err := db.Order("id").Find(&characters).Error; err != nil {
		return nil, err
	}
	return characters, nil
}

// CreateCharacter persists a Character to the database.
func CreateCharacter(character *Character) error {
	return db.Create(&character).Error
}

// DeleteCharacter soft-deletes a character record from the database. Deleting
// a character that does not exist is not an error.
func DeleteCharacter(id uint64) error {
	character, err := FindCharacter(id)
	if err != nil {
		return err
	} else if character != nil {
		return db.Delete(character).Error
	}
	return nil
}
