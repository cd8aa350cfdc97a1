package controllers

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
	"gorm.io/gorm"

	"github.com/gradsite/modteam/views"
	"github.com/gradsite/modteam/views/components"
)

// CSRFContextKey is the Locals key the csrf middleware stores the token under.
const CSRFContextKey = "csrf"

// AdminPerPage is the page size of the admin lists.
const AdminPerPage = 100

// renderAdmin renders an admin page inside the admin layout, adding the flash
// message and the CSRF token every form needs.
func renderAdmin(c *fiber.Ctx, name string, data fiber.Map) error {
	data["flash"] = flash.Get(c)
	data["csrf"] = c.Locals(CSRFContextKey)
	return c.Render(name, data, views.LayoutAdmin)
}

func redirectWithError(c *fiber.Ctx, location, message string) error {
	return flash.WithError(c, fiber.Map{"message": message}).Redirect(location)
}

func redirectWithSuccess(c *fiber.Ctx, location, message string) error {
	return flash.WithSuccess(c, fiber.Map{"message": message}).Redirect(location)
}

// afterSave picks the follow-up page of a change form from the pressed button.
func afterSave(c *fiber.Ctx, listURL, editURL, createURL string) string {
	switch {
	case c.FormValue("_continue") != "":
		return editURL
	case c.FormValue("_addanother") != "" && createURL != "":
		return createURL
	default:
		return listURL
	}
}

// backToList returns the list URL with the query string the bulk form was
// submitted from.
func backToList(c *fiber.Ctx, listURL string) string {
	q := strings.TrimPrefix(c.FormValue("return"), "?")
	if q == "" || strings.ContainsAny(q, "/\\") {
		return listURL
	}
	return listURL + "?" + q
}

func paramID(c *fiber.Ctx) (uint64, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	return id, err == nil && id > 0
}

// formValues returns all submitted form fields, for multipart and urlencoded bodies.
func formValues(c *fiber.Ctx) map[string][]string {
	if form, err := c.MultipartForm(); err == nil {
		return form.Value
	}
	values := make(map[string][]string)
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		values[string(k)] = append(values[string(k)], string(v))
	})
	return values
}

// formFiles returns the non-empty files uploaded under key.
func formFiles(c *fiber.Ctx, key string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	var files []*multipart.FileHeader
	for _, fh := range form.File[key] {
		if fh != nil && fh.Size > 0 && fh.Filename != "" {
			files = append(files, fh)
		}
	}
	return files
}

func formFile(c *fiber.Ctx, key string) *multipart.FileHeader {
	if files := formFiles(c, key); len(files) > 0 {
		return files[0]
	}
	return nil
}

// formIDs collects the ids of fields named prefix<id> and their first values.
func formIDs(values map[string][]string, prefix string) map[uint64]string {
	out := make(map[uint64]string)
	for key, vals := range values {
		if !strings.HasPrefix(key, prefix) || len(vals) == 0 {
			continue
		}
		id, err := strconv.ParseUint(strings.TrimPrefix(key, prefix), 10, 64)
		if err != nil {
			continue
		}
		out[id] = vals[0]
	}
	return out
}

// listIDs parses the repeated ids field of a bulk form.
func listIDs(values map[string][]string) []uint64 {
	var ids []uint64
	for _, raw := range values["ids"] {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func formBool(c *fiber.Ctx, key string) bool {
	switch strings.ToLower(c.FormValue(key)) {
	case "1", "on", "true", "yes":
		return true
	}
	return false
}

func formUint(c *fiber.Ctx, key string) (uint, error) {
	raw := strings.TrimSpace(c.FormValue(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	return uint(v), err
}

// formTime parses a datetime-local value in the server's time zone. An empty value
// keeps fallback.
func formTime(c *fiber.Ctx, key string, fallback time.Time) (time.Time, error) {
	raw := strings.TrimSpace(c.FormValue(key))
	if raw == "" {
		return fallback, nil
	}
	for _, layout := range []string{components.InputTimeLayout, components.InputTimeLayout + ":05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return fallback, fiber.NewError(fiber.StatusBadRequest, "invalid date "+raw)
}

// missingRecord redirects to the list with message when err is a not-found error
// and passes every other error on.
func missingRecord(c *fiber.Ctx, listURL, message string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return redirectWithError(c, listURL, message)
	}
	return err
}
