package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

var (
	errUnsavedContent = errors.New("content has not been saved")
	errInvalidItemID  = errors.New("invalid item id")
)

// unsavedItemID is what editors send for content that has no id yet.
const unsavedItemID = "new"

// getItemID reads the item_id query parameter. A missing or "new" id means
// the content was never saved.
func getItemID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("item_id"))
	if raw == "" || strings.EqualFold(raw, unsavedItemID) {
		return 0, errUnsavedContent
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidItemID
	}
	return id, nil
}

// getBoolQuery reads a boolean query parameter. Missing or unparsable values
// are false.
func getBoolQuery(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get(name)))
	return err == nil && v
}
