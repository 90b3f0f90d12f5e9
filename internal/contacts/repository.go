package contacts

import (
	"strings"

	"github.com/Aidin1998/contacts_manager/internal/database"
	"gorm.io/gorm"
)

// Repository runs contact queries inside a caller-provided session.
type Repository struct{}

func (Repository) List(tx *gorm.DB, filter ListFilter) ([]Contact, error) {
	q := tx.Model(&Contact{})
	q = whereContains(q, "first_name", filter.FirstName)
	q = whereContains(q, "last_name", filter.LastName)
	q = whereContains(q, "email", filter.Email)

	var items []Contact
	err := q.Order("id").Limit(filter.Limit).Offset(filter.Offset).Find(&items).Error
	return items, database.WrapError(err)
}

func (Repository) Get(tx *gorm.DB, id uint) (*Contact, error) {
	return database.FindOne[Contact](tx.Where("id = ?", id))
}

func (Repository) GetByEmail(tx *gorm.DB, email string) (*Contact, error) {
	return database.FindOne[Contact](tx.Where("LOWER(email) = ?", strings.ToLower(email)))
}

func (Repository) Create(tx *gorm.DB, c *Contact) error {
	return database.WrapError(tx.Create(c).Error)
}

func (Repository) Update(tx *gorm.DB, c *Contact) error {
	return database.WrapError(tx.Save(c).Error)
}

func (Repository) Delete(tx *gorm.DB, c *Contact) error {
	return database.WrapError(tx.Delete(c).Error)
}

// WithBirthday returns every contact that has a birthday set.
func (Repository) WithBirthday(tx *gorm.DB) ([]Contact, error) {
	var items []Contact
	err := tx.Where("birthday IS NOT NULL").Order("id").Find(&items).Error
	return items, database.WrapError(err)
}

func whereContains(q *gorm.DB, column, value string) *gorm.DB {
	value = strings.TrimSpace(value)
	if value == "" {
		return q
	}
	return q.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(value)+"%")
}
