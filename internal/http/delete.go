package http

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
)

// DeleteStore defines database operations for entity deletion.
// Deleting never cascades: dependents keep existing with their reference cleared.
type DeleteStore interface {
	DeleteAuthor(ctx context.Context, id uint) error
	DeleteBook(ctx context.Context, id uint) error
	DeleteGenre(ctx context.Context, id uint) error
}

type DeleteController struct {
	store DeleteStore
}

func NewDeleteController(store DeleteStore) *DeleteController {
	return &DeleteController{store: store}
}

// DeleteAuthor removes an author; their books lose the author reference.
// DELETE /api/authors/:id
func (dc *DeleteController) DeleteAuthor(c *gin.Context) {
	dc.delete(c, "author", dc.store.DeleteAuthor)
}

// DeleteBook removes a book; its copies lose the book reference.
// DELETE /api/books/:id
func (dc *DeleteController) DeleteBook(c *gin.Context) {
	dc.delete(c, "book", dc.store.DeleteBook)
}

// DeleteGenre removes a genre and unlinks it from its books.
// DELETE /api/genres/:id
func (dc *DeleteController) DeleteGenre(c *gin.Context) {
	dc.delete(c, "genre", dc.store.DeleteGenre)
}

func (dc *DeleteController) delete(c *gin.Context, resource string, del func(context.Context, uint) error) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := del(c.Request.Context(), id); err != nil {
		respondLookupError(c, err, resource)
		return
	}

	log.Printf("Deleted %s %d", resource, id)
	respondSuccess(c, resource+" deleted")
}
