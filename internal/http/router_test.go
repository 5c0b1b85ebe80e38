package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/catalog/internal/services"
)

func doRequest(t *testing.T, handler http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	handler.ServeHTTP(w, req)
	return w
}

func TestRouter_CatalogPages(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedCatalog(t, db, 11)
	router := newTestRouter(t, db)

	t.Run("root redirects to catalog", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/catalog/", w.Header().Get("Location"))
	})

	t.Run("index shows counts", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/catalog/")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<strong>Books:</strong> 12")
		assert.Contains(t, body, "<strong>Copies:</strong> 2")
		assert.Contains(t, body, "<strong>Copies available:</strong> 1")
		assert.Contains(t, body, "<strong>Authors:</strong> 1")
	})

	t.Run("book list first page", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/catalog/books/")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "The Dispossessed")
		assert.Contains(t, body, "(Le Guin, Ursula)")
		assert.Contains(t, body, "Science Fiction, Fantasy")
		assert.Contains(t, body, "Filler 09")
		assert.NotContains(t, body, "Filler 10")
		assert.Contains(t, body, "Page 1 of 2.")
		assert.Contains(t, body, `href="/catalog/books/?page=2"`)
	})

	t.Run("book list second page", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/catalog/books/?page=2")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Filler 10")
		assert.Contains(t, body, "Filler 11")
		assert.NotContains(t, body, "The Dispossessed")
		assert.Contains(t, body, `href="/catalog/books/?page=1"`)
	})

	t.Run("book list past the last page is empty", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/catalog/books/?page=9")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "There are no books in the library.")
	})

	t.Run("book list rejects invalid page", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/catalog/books/?page=abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("book detail", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/catalog/book/"+strconv.Itoa(int(seeded.BookID)))
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Title: The Dispossessed")
		assert.Contains(t, body, `href="/catalog/author/`+strconv.Itoa(int(seeded.AuthorID))+`"`)
		assert.Contains(t, body, "9780061054884")
		assert.Contains(t, body, "On Loan")
		assert.Contains(t, body, "Due to be returned:</strong> 2024-03-01")
		assert.Contains(t, body, "Available")
		assert.Contains(t, body, seeded.Copies[0].ID.String())
		assert.Contains(t, body, seeded.Copies[1].ID.String())
	})

	t.Run("book detail for unknown id", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/catalog/book/9999")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Book not found")
	})

	t.Run("book detail for malformed id", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/catalog/book/abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("author list", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/catalog/authors/")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Le Guin, Ursula")
		assert.Contains(t, body, "(1929-10-21 - 2018-01-22)")
		assert.NotContains(t, body, "Page 1 of")
	})

	t.Run("author detail", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/catalog/author/"+strconv.Itoa(int(seeded.AuthorID)))
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Author: Le Guin, Ursula")
		assert.Contains(t, body, "The Dispossessed")
		assert.Contains(t, body, "An ambiguous utopia.")
	})

	t.Run("author detail for unknown id", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/catalog/author/9999")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("static files are served", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/static/catalog.css")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("security headers are set", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/catalog/")
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'self'")
	})
}

func TestRouter_EmptyCatalog(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(t, db)

	w := doRequest(t, router, "GET", "/catalog/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<strong>Books:</strong> 0")

	w = doRequest(t, router, "GET", "/catalog/books/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "There are no books in the library.")
	assert.NotContains(t, w.Body.String(), "Page 1 of")
}

func TestRouter_API(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedCatalog(t, db, 11)
	router := newTestRouter(t, db)

	t.Run("stats", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/api/stats")
		require.Equal(t, http.StatusOK, w.Code)

		var dashboard services.Dashboard
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
		assert.Equal(t, services.Dashboard{NumBooks: 12, NumInstances: 2, NumInstancesAvailable: 1, NumAuthors: 1}, dashboard)
	})

	t.Run("books page", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/api/books?page=2")
		require.Equal(t, http.StatusOK, w.Code)

		var page services.BookPage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, 2, page.Number)
		assert.Equal(t, 10, page.Size)
		assert.Equal(t, int64(12), page.Total)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Books, 2)
		assert.Equal(t, "Filler 10", page.Books[0].Title)
	})

	t.Run("books page past the end", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/api/books?page=5")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"books": []`)
	})

	t.Run("books page far past the end", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/api/books?page=9223372036854775807")
		require.Equal(t, http.StatusOK, w.Code)

		var page services.BookPage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Empty(t, page.Books)
		assert.Equal(t, int64(12), page.Total)
		assert.Equal(t, 3, page.Number)
	})

	t.Run("books rejects invalid page", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/api/books?page=x")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("book detail", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/api/books/"+strconv.Itoa(int(seeded.BookID)))
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Book struct {
				Title     string `json:"title"`
				Instances []struct {
					Status string `json:"status"`
				} `json:"instances"`
			} `json:"book"`
			DisplayGenre string `json:"display_genre"`
			URL          string `json:"url"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "The Dispossessed", response.Book.Title)
		assert.Len(t, response.Book.Instances, 2)
		assert.Equal(t, "Science Fiction, Fantasy", response.DisplayGenre)
		assert.Equal(t, "/catalog/book/"+strconv.Itoa(int(seeded.BookID)), response.URL)
	})

	t.Run("book detail not found", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/api/books/9999")
		assert.Equal(t, http.StatusNotFound, w.Code)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "book not found", response.Error)
	})

	t.Run("authors page", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/api/authors")
		require.Equal(t, http.StatusOK, w.Code)

		var page services.AuthorPage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Len(t, page.Authors, 1)
		assert.Equal(t, "Le Guin", page.Authors[0].LastName)
	})

	t.Run("author detail", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/api/authors/"+strconv.Itoa(int(seeded.AuthorID)))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "The Dispossessed")
	})

	t.Run("author detail rejects malformed id", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/api/authors/-1")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ping", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/ping")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "pong")
	})
}

func TestRouter_Delete(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedCatalog(t, db, 0)
	router := newTestRouter(t, db)
	bookPath := "/api/books/" + strconv.Itoa(int(seeded.BookID))

	t.Run("genre delete unlinks the book", func(t *testing.T) {
		w := doRequest(t, router, "DELETE", "/api/genres/"+strconv.Itoa(int(seeded.GenreID)))
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, router, "GET", bookPath)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"display_genre": "Fantasy"`)
	})

	t.Run("author delete keeps the book", func(t *testing.T) {
		w := doRequest(t, router, "DELETE", "/api/authors/"+strconv.Itoa(int(seeded.AuthorID)))
		require.Equal(t, http.StatusOK, w.Code)

		var response SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "author deleted", response.Message)

		w = doRequest(t, router, "GET", bookPath)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"author_id": null`)
	})

	t.Run("book delete keeps the copies", func(t *testing.T) {
		w := doRequest(t, router, "DELETE", bookPath)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, router, "GET", "/api/stats")
		require.Equal(t, http.StatusOK, w.Code)
		var dashboard services.Dashboard
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
		assert.Equal(t, int64(0), dashboard.NumBooks)
		assert.Equal(t, int64(2), dashboard.NumInstances)
	})

	t.Run("deleting twice is not found", func(t *testing.T) {
		w := doRequest(t, router, "DELETE", bookPath)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := doRequest(t, router, "DELETE", "/api/books/abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouter_CORS(t *testing.T) {
	db := setupTestDB(t)

	t.Run("disabled without origins", func(t *testing.T) {
		router := newTestRouter(t, db)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/stats", nil)
		req.Header.Set("Origin", "http://example.com")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allows configured origin", func(t *testing.T) {
		router := newTestRouter(t, db, "http://example.com")
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/stats", nil)
		req.Header.Set("Origin", "http://example.com")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("answers preflight", func(t *testing.T) {
		router := newTestRouter(t, db, "http://example.com")
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("OPTIONS", "/api/books", nil)
		req.Header.Set("Origin", "http://example.com")
		req.Header.Set("Access-Control-Request-Method", "GET")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "GET")
	})

	t.Run("rejects unknown origin", func(t *testing.T) {
		router := newTestRouter(t, db, "http://example.com")
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/stats", nil)
		req.Header.Set("Origin", "http://evil.example")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCORSMiddleware(t *testing.T) {
	assert.Nil(t, CORSMiddleware(nil))
	assert.Nil(t, CORSMiddleware([]string{" ", ""}))
	assert.NotNil(t, CORSMiddleware([]string{"*"}))
	assert.NotNil(t, CORSMiddleware([]string{"http://a.example", "http://b.example"}))
}
