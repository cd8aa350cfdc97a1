package controllers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/gradsite/modteam/internal/pkg/media"
)

// mediaChanges tracks the files touched by one form submission. New uploads are
// removed again when saving the record fails, replaced files once it succeeded.
type mediaChanges struct {
	uploader *media.Uploader
	added    []string
	obsolete []string
}

func newMediaChanges(u *media.Uploader) *mediaChanges {
	return &mediaChanges{uploader: u}
}

// replace handles an image field with its "clear" checkbox. current holds the
// stored key and is updated in place.
func (m *mediaChanges) replace(c *fiber.Ctx, field, clearField, dir string, current *string) error {
	if fh := formFile(c, field); fh != nil {
		key, err := m.uploader.SaveFile(c.UserContext(), fh, dir)
		if err != nil {
			return err
		}
		m.added = append(m.added, key)
		m.discard(*current)
		*current = key
		return nil
	}
	if formBool(c, clearField) && *current != "" {
		m.discard(*current)
		*current = ""
	}
	return nil
}

// upload stores every file sent under field and returns their keys.
func (m *mediaChanges) upload(c *fiber.Ctx, field, dir string) ([]string, error) {
	var keys []string
	for _, fh := range formFiles(c, field) {
		key, err := m.uploader.SaveFile(c.UserContext(), fh, dir)
		if err != nil {
			return nil, err
		}
		m.added = append(m.added, key)
		keys = append(keys, key)
	}
	return keys, nil
}

// discard marks a stored file for removal after a successful save.
func (m *mediaChanges) discard(key string) {
	if key != "" {
		m.obsolete = append(m.obsolete, key)
	}
}

func (m *mediaChanges) rollback(c *fiber.Ctx) {
	m.uploader.Remove(c.UserContext(), m.added...)
}

func (m *mediaChanges) commit(c *fiber.Ctx) {
	m.uploader.Remove(c.UserContext(), m.obsolete...)
}

// validationMessage turns a validator error into a flash message naming the fields.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return "Проверьте поля: " + strings.Join(fields, ", ")
	}
	return err.Error()
}
