// Package store factors the ownership rule into one place: every
// query against user-owned rows goes through a scope that already
// carries the caller's subject identifier in its predicate. A handler
// cannot forget the filter because it never builds the query from the
// bare connection.
package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Scope is a database handle restricted to one user's rows.
type Scope struct {
	db     *gorm.DB
	userID string
}

// ForUser returns a scope whose queries are filtered by the given
// subject identifier.
func ForUser(db *gorm.DB, userID string) *Scope {
	return &Scope{db: db, userID: userID}
}

// UserID reports the subject identifier the scope is bound to.
func (s *Scope) UserID() string { return s.userID }

// All loads every row of the destination type owned by the caller.
func (s *Scope) All(dest interface{}) error {
	return s.db.Where("user_id = ?", s.userID).Find(dest).Error
}

// Today loads the caller's rows whose date falls within
// [local midnight, next local midnight), per the server's clock.
func (s *Scope) Today(dest interface{}) error {
	from, to := TodayWindow(time.Now())
	return s.db.
		Where("user_id = ? AND date >= ? AND date < ?", s.userID, from, to).
		Find(dest).Error
}

// One loads the caller's unique row of the destination type, e.g.
// stats or targets. Returns gorm.ErrRecordNotFound when absent.
func (s *Scope) One(dest interface{}) error {
	return s.db.Where("user_id = ?", s.userID).First(dest).Error
}

// Create inserts a row. The caller is responsible for setting the
// UserID field on the value; see the controllers.
func (s *Scope) Create(value interface{}) error {
	return s.db.Create(value).Error
}

// Update applies the changes in values to the row identified by id AND
// the caller's subject. A row owned by someone else behaves exactly
// like a missing row: gorm.ErrRecordNotFound. The updated row is
// loaded back into model.
func (s *Scope) Update(model interface{}, id string, values interface{}) error {
	res := s.db.Model(model).
		Where("id = ? AND user_id = ?", id, s.userID).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return s.db.Where("id = ? AND user_id = ?", id, s.userID).First(model).Error
}

// Delete removes the row identified by id AND the caller's subject.
// Missing and foreign rows both yield gorm.ErrRecordNotFound, so a
// repeated delete is 404 on the second call.
func (s *Scope) Delete(model interface{}, id string) error {
	res := s.db.Where("id = ? AND user_id = ?", id, s.userID).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TodayWindow returns the half-open range covering now's calendar day
// in the server's local time zone.
func TodayWindow(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 0, 1)
}

// IsNotFound reports whether err is the data layer's "no such row for
// this id+subject" condition.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether err is a unique-constraint violation,
// e.g. a replayed user.created webhook event.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
