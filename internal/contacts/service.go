package contacts

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Aidin1998/contacts_manager/internal/database"
	"github.com/Aidin1998/contacts_manager/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service implements the contacts use cases. Each call runs in its own
// session.
type Service struct {
	logger   *zap.Logger
	sessions *database.SessionManager
	repo     Repository
	now      func() time.Time
}

// NewService creates a new contacts service
func NewService(logger *zap.Logger, sessions *database.SessionManager) *Service {
	return &Service{
		logger:   logger.Named("contacts"),
		sessions: sessions,
		now:      time.Now,
	}
}

// Migrate creates the contacts table.
func (s *Service) Migrate() error {
	return s.sessions.AutoMigrate(&Contact{})
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Contact, error) {
	var items []Contact
	err := s.sessions.Session(ctx, func(tx *gorm.DB) error {
		var err error
		items, err = s.repo.List(tx, filter)
		return err
	})
	return items, err
}

func (s *Service) Get(ctx context.Context, id uint) (*Contact, error) {
	var contact *Contact
	err := s.sessions.Session(ctx, func(tx *gorm.DB) error {
		var err error
		contact, err = s.get(tx, id)
		return err
	})
	return contact, err
}

func (s *Service) Create(ctx context.Context, req *ContactRequest) (*Contact, error) {
	contact := &Contact{}
	if err := apply(contact, req); err != nil {
		return nil, err
	}

	err := s.sessions.Session(ctx, func(tx *gorm.DB) error {
		if err := s.ensureEmailFree(tx, contact.Email, 0); err != nil {
			return err
		}
		return s.conflictOnDuplicate(s.repo.Create(tx, contact), contact.Email)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("contact created", zap.Uint("id", contact.ID))
	return contact, nil
}

func (s *Service) Update(ctx context.Context, id uint, req *ContactRequest) (*Contact, error) {
	var contact *Contact
	err := s.sessions.Session(ctx, func(tx *gorm.DB) error {
		var err error
		if contact, err = s.get(tx, id); err != nil {
			return err
		}
		if err := apply(contact, req); err != nil {
			return err
		}
		if err := s.ensureEmailFree(tx, contact.Email, id); err != nil {
			return err
		}
		return s.conflictOnDuplicate(s.repo.Update(tx, contact), contact.Email)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("contact updated", zap.Uint("id", id))
	return contact, nil
}

// Delete removes the contact and returns it as it was.
func (s *Service) Delete(ctx context.Context, id uint) (*Contact, error) {
	var contact *Contact
	err := s.sessions.Session(ctx, func(tx *gorm.DB) error {
		var err error
		if contact, err = s.get(tx, id); err != nil {
			return err
		}
		return s.repo.Delete(tx, contact)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("contact deleted", zap.Uint("id", id))
	return contact, nil
}

// UpcomingBirthdays returns contacts whose next birthday falls between today
// and today+days inclusive, soonest first. A 29 February birthday is
// celebrated on 1 March in non-leap years.
func (s *Service) UpcomingBirthdays(ctx context.Context, days int) ([]Contact, error) {
	var items []Contact
	err := s.sessions.Session(ctx, func(tx *gorm.DB) error {
		var err error
		items, err = s.repo.WithBirthday(tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	until := today.AddDate(0, 0, days)

	type upcoming struct {
		contact Contact
		next    time.Time
	}
	var matches []upcoming
	for _, c := range items {
		next := nextBirthday(*c.Birthday, today)
		if !next.After(until) {
			matches = append(matches, upcoming{contact: c, next: next})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].next.Before(matches[j].next) })

	out := make([]Contact, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.contact)
	}
	return out, nil
}

func (s *Service) get(tx *gorm.DB, id uint) (*Contact, error) {
	contact, err := s.repo.Get(tx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, errors.NotFound(Resource, "id", id)
	}
	return contact, err
}

func (s *Service) ensureEmailFree(tx *gorm.DB, email string, selfID uint) error {
	existing, err := s.repo.GetByEmail(tx, email)
	switch {
	case errors.Is(err, database.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		return errors.Conflict(Resource, "email", email)
	}
	return nil
}

// conflictOnDuplicate covers the race where another request inserted the
// same email between the lookup and the write.
func (s *Service) conflictOnDuplicate(err error, email string) error {
	if errors.Is(err, database.ErrConflict) {
		return errors.Conflict(Resource, "email", email).Wrap(err)
	}
	return err
}

func apply(c *Contact, req *ContactRequest) error {
	c.FirstName = strings.TrimSpace(req.FirstName)
	c.LastName = strings.TrimSpace(req.LastName)
	c.Email = strings.ToLower(strings.TrimSpace(req.Email))
	c.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	c.AdditionalInfo = req.AdditionalInfo
	c.Birthday = nil

	if req.Birthday != nil && *req.Birthday != "" {
		b, err := time.Parse(DateLayout, *req.Birthday)
		if err != nil {
			return errors.NewValidationError().
				WithField([]string{"body", "birthday"}, "Input should be a valid date in YYYY-MM-DD format", "date_from_datetime_parsing").
				Wrap(err)
		}
		c.Birthday = &b
	}
	return nil
}

func nextBirthday(birthday, today time.Time) time.Time {
	next := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}
	return next
}
