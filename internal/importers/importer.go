package importers

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/mrlokans/catalog/internal/entities"
)

// CatalogWriter persists catalog records.
type CatalogWriter interface {
	CreateGenre(ctx context.Context, name string) (*entities.Genre, error)
	CreateAuthor(ctx context.Context, author *entities.Author) error
	CreateBook(ctx context.Context, book *entities.Book) error
	CreateBookInstance(ctx context.Context, instance *entities.BookInstance) error
}

// ImportResult counts the records created by an import.
type ImportResult struct {
	Genres    int `json:"genres"`
	Authors   int `json:"authors"`
	Books     int `json:"books"`
	Instances int `json:"instances"`
}

// Importer writes validated fixtures through a CatalogWriter.
type Importer struct {
	writer CatalogWriter
}

// NewImporter creates a new importer with the given writer.
func NewImporter(writer CatalogWriter) *Importer {
	return &Importer{writer: writer}
}

// Import validates the fixture and creates its records in dependency order:
// genres, authors, books, then copies. Nothing is written when validation fails.
// A storage error stops the import; records created before it are kept.
func (im *Importer) Import(ctx context.Context, fixture *Fixture) (ImportResult, error) {
	var result ImportResult

	if err := fixture.Validate(); err != nil {
		return result, err
	}

	genres := make(map[string]entities.Genre, len(fixture.Genres))
	for _, name := range fixture.Genres {
		genre, err := im.writer.CreateGenre(ctx, name)
		if err != nil {
			return result, fmt.Errorf("create genre %q: %w", name, err)
		}
		genres[name] = *genre
		result.Genres++
	}

	authors := make(map[string]uint, len(fixture.Authors))
	for _, record := range fixture.Authors {
		author, err := record.toEntity()
		if err != nil {
			return result, err
		}
		if err := im.writer.CreateAuthor(ctx, author); err != nil {
			return result, fmt.Errorf("create author %q: %w", record.Key, err)
		}
		authors[record.Key] = author.ID
		result.Authors++
	}

	books := make(map[string]uint, len(fixture.Books))
	for _, record := range fixture.Books {
		book := &entities.Book{
			Title:   record.Title,
			Summary: record.Summary,
			ISBN:    record.ISBN,
		}
		if record.Author != "" {
			authorID := authors[record.Author]
			book.AuthorID = &authorID
		}
		for _, name := range record.Genres {
			book.Genres = append(book.Genres, genres[name])
		}
		if err := im.writer.CreateBook(ctx, book); err != nil {
			return result, fmt.Errorf("create book %q: %w", record.Key, err)
		}
		books[record.Key] = book.ID
		result.Books++
	}

	for i, record := range fixture.Instances {
		instance, err := record.toEntity()
		if err != nil {
			return result, err
		}
		if record.Book != "" {
			bookID := books[record.Book]
			instance.BookID = &bookID
		}
		if err := im.writer.CreateBookInstance(ctx, instance); err != nil {
			return result, fmt.Errorf("create instance %d: %w", i, err)
		}
		result.Instances++
	}

	log.Printf("Imported %d genres, %d authors, %d books, %d copies",
		result.Genres, result.Authors, result.Books, result.Instances)
	return result, nil
}

func (r AuthorRecord) toEntity() (*entities.Author, error) {
	born, err := parseDate(r.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("author %q date_of_birth: %w", r.Key, err)
	}
	died, err := parseDate(r.DateOfDeath)
	if err != nil {
		return nil, fmt.Errorf("author %q date_of_death: %w", r.Key, err)
	}
	return &entities.Author{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: born,
		DateOfDeath: died,
	}, nil
}

func (r InstanceRecord) toEntity() (*entities.BookInstance, error) {
	instance := &entities.BookInstance{
		Imprint: r.Imprint,
		Status:  entities.LoanStatus(r.Status),
	}
	if r.ID != "" {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, fmt.Errorf("instance id %q: %w", r.ID, err)
		}
		instance.ID = id
	}
	dueBack, err := parseDate(r.DueBack)
	if err != nil {
		return nil, fmt.Errorf("instance due_back: %w", err)
	}
	instance.DueBack = dueBack
	return instance, nil
}
