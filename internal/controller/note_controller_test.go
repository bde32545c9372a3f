package controller

import (
	"fmt"
	"net/http"
	"testing"

	"notekeeper-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteEndpoints(t *testing.T) {
	app, _ := setupTestApp(t)

	t.Run("create", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/v1/notes/", fiberMap{
			"name":    "n1",
			"content": "hello",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var note dto.NoteResponse
		decodeData(t, resp, &note)
		assert.Equal(t, uint(1), note.Id)
		assert.Equal(t, "n1", note.Name)
		assert.Equal(t, "hello", *note.Content)
		assert.False(t, note.Deleted)
	})

	t.Run("duplicate create is a conflict", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/v1/notes/", fiberMap{
			"name":    "n1",
			"content": "other",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		// row 1 unchanged
		resp = doJSON(t, app, http.MethodGet, "/v1/notes/?name=n1", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var notes []dto.NoteResponse
		decodeData(t, resp, &notes)
		require.Len(t, notes, 1)
		assert.Equal(t, "hello", *notes[0].Content)
	})

	t.Run("missing name is a validation failure", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/v1/notes/", fiberMap{"content": "x"})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("patch", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, "/v1/notes/", fiberMap{
			"id":      1,
			"content": "bye",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var note dto.NoteResponse
		decodeData(t, resp, &note)
		assert.Equal(t, "bye", *note.Content)
	})

	t.Run("patch unknown id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, "/v1/notes/", fiberMap{
			"id":      999,
			"content": "x",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("patch without id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, "/v1/notes/", fiberMap{"content": "x"})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, "/v1/notes/?id=1", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var note dto.NoteResponse
		decodeData(t, resp, &note)
		assert.True(t, note.Deleted)

		// hidden from the default listing, visible with deleted=true
		resp = doJSON(t, app, http.MethodGet, "/v1/notes/", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var notes []dto.NoteResponse
		decodeData(t, resp, &notes)
		assert.Empty(t, notes)

		resp = doJSON(t, app, http.MethodGet, "/v1/notes/?deleted=true", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeData(t, resp, &notes)
		assert.Len(t, notes, 1)
	})

	t.Run("second delete is not found", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, "/v1/notes/?id=1", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete without id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, "/v1/notes/", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestNoteListPagination(t *testing.T) {
	app, _ := setupTestApp(t)

	for _, name := range []string{"a", "b", "c", "d"} {
		resp := doJSON(t, app, http.MethodPost, "/v1/notes/", fiberMap{"name": name})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	page := func(limit, offset int) []string {
		resp := doJSON(t, app, http.MethodGet,
			fmt.Sprintf("/v1/notes/?limit=%d&offset=%d", limit, offset), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var notes []dto.NoteResponse
		decodeData(t, resp, &notes)
		out := make([]string, len(notes))
		for i, n := range notes {
			out[i] = n.Name
		}
		return out
	}

	assert.Equal(t, []string{"a", "b"}, page(2, 0))
	assert.Equal(t, []string{"c", "d"}, page(2, 2))
	assert.Equal(t, page(2, 0), page(2, 0))
}

type fiberMap = map[string]interface{}
