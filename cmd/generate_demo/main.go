// Command generate_demo creates a demo database with a catalog of public domain books.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db] [-yaml path/to/demo.yaml]
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/importers"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	yamlPath := flag.String("yaml", "", "also write the demo catalog as a seed file")
	flag.Parse()

	fixture := demoCatalog(time.Now())

	if *yamlPath != "" {
		if err := writeFixture(*yamlPath, fixture); err != nil {
			log.Fatalf("Failed to write seed file: %v", err)
		}
		log.Printf("Wrote seed file %s", *yamlPath)
	}

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create demo directory: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	if _, err := importers.NewImporter(db).Import(context.Background(), fixture); err != nil {
		log.Fatalf("Failed to import demo catalog: %v", err)
	}

	log.Println("Demo database generated successfully!")
}

func writeFixture(path string, fixture *importers.Fixture) error {
	data, err := yaml.Marshal(fixture)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

type demoBook struct {
	importers.BookRecord
	// one status per copy; on-loan copies are due relative to the generation time
	Copies []string
}

func demoCatalog(now time.Time) *importers.Fixture {
	date := func(days int) string {
		return now.AddDate(0, 0, days).Format(importers.DateLayout)
	}

	fixture := &importers.Fixture{
		Genres: []string{
			"Philosophy",
			"Science Fiction",
			"Horror",
			"Romance",
			"Adventure",
			"Gothic",
			"Nature Writing",
		},
		Authors: []importers.AuthorRecord{
			{Key: "aurelius", FirstName: "Marcus", LastName: "Aurelius", DateOfBirth: "0121-04-26", DateOfDeath: "0180-03-17"},
			{Key: "austen", FirstName: "Jane", LastName: "Austen", DateOfBirth: "1775-12-16", DateOfDeath: "1817-07-18"},
			{Key: "shelley", FirstName: "Mary", LastName: "Shelley", DateOfBirth: "1797-08-30", DateOfDeath: "1851-02-01"},
			{Key: "melville", FirstName: "Herman", LastName: "Melville", DateOfBirth: "1819-08-01", DateOfDeath: "1891-09-28"},
			{Key: "thoreau", FirstName: "Henry David", LastName: "Thoreau", DateOfBirth: "1817-07-12", DateOfDeath: "1862-05-06"},
			{Key: "wells", FirstName: "H. G.", LastName: "Wells", DateOfBirth: "1866-09-21", DateOfDeath: "1946-08-13"},
			{Key: "stoker", FirstName: "Bram", LastName: "Stoker", DateOfBirth: "1847-11-08", DateOfDeath: "1912-04-20"},
		},
	}

	books := []demoBook{
		{
			BookRecord: importers.BookRecord{
				Key: "meditations", Title: "Meditations", Author: "aurelius",
				Summary: "Private notes of a Roman emperor on Stoic philosophy and self-discipline.",
				ISBN:    "9780140449334", Genres: []string{"Philosophy"},
			},
			Copies: []string{"a", "a", "o"},
		},
		{
			BookRecord: importers.BookRecord{
				Key: "pride", Title: "Pride and Prejudice", Author: "austen",
				Summary: "Elizabeth Bennet navigates manners, marriage and her own first impressions.",
				ISBN:    "9780141439518", Genres: []string{"Romance"},
			},
			Copies: []string{"o", "r", "a"},
		},
		{
			BookRecord: importers.BookRecord{
				Key: "frankenstein", Title: "Frankenstein", Author: "shelley",
				Summary: "A young scientist creates life and is pursued by the consequences.",
				ISBN:    "9780141439471", Genres: []string{"Gothic", "Horror", "Science Fiction"},
			},
			Copies: []string{"o", "m"},
		},
		{
			BookRecord: importers.BookRecord{
				Key: "mobydick", Title: "Moby-Dick", Author: "melville",
				Summary: "Captain Ahab hunts the white whale that took his leg.",
				ISBN:    "9780142437247", Genres: []string{"Adventure"},
			},
			Copies: []string{"a"},
		},
		{
			BookRecord: importers.BookRecord{
				Key: "walden", Title: "Walden", Author: "thoreau",
				Summary: "Two years of simple living in a cabin near Walden Pond.",
				ISBN:    "9780691096124", Genres: []string{"Nature Writing", "Philosophy"},
			},
			Copies: []string{"a", "o"},
		},
		{
			BookRecord: importers.BookRecord{
				Key: "timemachine", Title: "The Time Machine", Author: "wells",
				Summary: "A Victorian inventor travels to the distant future of mankind.",
				ISBN:    "9780141439976", Genres: []string{"Science Fiction"},
			},
			Copies: []string{"o", "a"},
		},
		{
			BookRecord: importers.BookRecord{
				Key: "worlds", Title: "The War of the Worlds", Author: "wells",
				Summary: "Martians invade southern England.",
				ISBN:    "9780141441030", Genres: []string{"Science Fiction", "Horror"},
			},
			Copies: []string{"r"},
		},
		{
			BookRecord: importers.BookRecord{
				Key: "dracula", Title: "Dracula", Author: "stoker",
				Summary: "An ancient count moves from Transylvania to England.",
				ISBN:    "9780141439846", Genres: []string{"Gothic", "Horror"},
			},
			Copies: []string{"a", "o", "m"},
		},
		{
			BookRecord: importers.BookRecord{
				Key: "beowulf", Title: "Beowulf",
				Summary: "An Old English epic of a hero who fights Grendel, his mother and a dragon.",
				Genres:  []string{"Adventure"},
			},
			Copies: []string{"a"},
		},
	}

	loans := 0
	for _, book := range books {
		fixture.Books = append(fixture.Books, book.BookRecord)
		for i, status := range book.Copies {
			instance := importers.InstanceRecord{
				Book:    book.Key,
				Imprint: imprints[i%len(imprints)],
				Status:  status,
			}
			if status == "o" {
				// every third loan is already overdue
				loans++
				if loans%3 == 0 {
					instance.DueBack = date(-loans)
				} else {
					instance.DueBack = date(7 * loans)
				}
			}
			fixture.Instances = append(fixture.Instances, instance)
		}
	}

	return fixture
}

var imprints = []string{
	"Penguin Classics, 2003",
	"Oxford World's Classics, 2008",
	"Project Gutenberg edition",
}
