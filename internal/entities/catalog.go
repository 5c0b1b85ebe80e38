package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// LoanStatus is the single-character availability code of a book copy.
type LoanStatus string

const (
	LoanStatusMaintenance LoanStatus = "m"
	LoanStatusOnLoan      LoanStatus = "o"
	LoanStatusAvailable   LoanStatus = "a"
	LoanStatusReserved    LoanStatus = "r"
)

// LoanStatuses lists every status in display order.
var LoanStatuses = []LoanStatus{
	LoanStatusMaintenance,
	LoanStatusOnLoan,
	LoanStatusAvailable,
	LoanStatusReserved,
}

var loanStatusLabels = map[LoanStatus]string{
	LoanStatusMaintenance: "Maintenance",
	LoanStatusOnLoan:      "On Loan",
	LoanStatusAvailable:   "Available",
	LoanStatusReserved:    "Reserved",
}

// Label returns the human-readable name of the status, or the raw code if unknown.
func (s LoanStatus) Label() string {
	if label, ok := loanStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s LoanStatus) Valid() bool {
	_, ok := loanStatusLabels[s]
	return ok
}

// Field limits shared by the gorm schema and data-entry validation.
const (
	GenreNameMaxLength       = 140
	AuthorNameMaxLength      = 100
	BookTitleMaxLength       = 200
	BookSummaryMaxLength     = 1000
	BookISBNMaxLength        = 13
	InstanceImprintMaxLength = 200
)

// DisplayGenreLimit caps how many genre names Book.DisplayGenre joins.
const DisplayGenreLimit = 3

type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:140;not null" json:"name"` // e.g. "Science Fiction"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g Genre) String() string {
	return g.Name
}

type Author struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	FirstName   string     `gorm:"size:100;not null" json:"first_name"`
	LastName    string     `gorm:"index:idx_authors_name;size:100;not null" json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"` // shown as "Died"
	Books       []Book     `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"books,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (a Author) String() string {
	return fmt.Sprintf("%s, %s", a.LastName, a.FirstName)
}

// AbsoluteURL returns the path of the author's detail page.
func (a Author) AbsoluteURL() string {
	return fmt.Sprintf("/catalog/author/%d", a.ID)
}

// Book is a title in the catalog, not a specific copy of it.
type Book struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"index;size:200;not null" json:"title"`
	Summary   string         `gorm:"type:text" json:"summary"`
	ISBN      string         `gorm:"index;size:13" json:"isbn"`
	AuthorID  *uint          `gorm:"index" json:"author_id"`
	Author    *Author        `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"author,omitempty"`
	Genres    []Genre        `gorm:"many2many:book_genres;" json:"genres,omitempty"`
	Instances []BookInstance `gorm:"foreignKey:BookID;constraint:OnDelete:SET NULL" json:"instances,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (b Book) String() string {
	return b.Title
}

// AbsoluteURL returns the path of the book's detail page.
func (b Book) AbsoluteURL() string {
	return fmt.Sprintf("/catalog/book/%d", b.ID)
}

// DisplayGenre joins the names of the first three genres in association order.
func (b Book) DisplayGenre() string {
	names := lo.Map(lo.Slice(b.Genres, 0, DisplayGenreLimit), func(g Genre, _ int) string {
		return g.Name
	})
	return strings.Join(names, ", ")
}

// BookInstance is a physical copy of a book that can be borrowed from the library.
type BookInstance struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;<-:create" json:"id"`
	BookID    *uint      `gorm:"index" json:"book_id"`
	Book      *Book      `gorm:"foreignKey:BookID;constraint:OnDelete:SET NULL" json:"book,omitempty"`
	Imprint   string     `gorm:"size:200" json:"imprint"`
	DueBack   *time.Time `gorm:"index" json:"due_back,omitempty"`
	Status    LoanStatus `gorm:"size:1;default:'m'" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BeforeCreate assigns the copy's identifier and default status.
func (i *BookInstance) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Status == "" {
		i.Status = LoanStatusMaintenance
	}
	return nil
}

func (i BookInstance) String() string {
	title := ""
	if i.Book != nil {
		title = i.Book.Title
	}
	return fmt.Sprintf("%s : %s", i.ID, title)
}

// IsOverdue reports whether the copy is on loan past its due date.
func (i BookInstance) IsOverdue(asOf time.Time) bool {
	return i.Status == LoanStatusOnLoan && i.DueBack != nil && i.DueBack.Before(asOf)
}
