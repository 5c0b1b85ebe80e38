// Package importers loads catalog records from YAML fixture files.
//
// # Architecture
//
// An import follows a simple flow:
//
//	YAML file → LoadFixture → Fixture → Validate → Importer → CatalogWriter → Storage
//
// The fixture refers to records by name or key instead of database identifiers,
// so a file can be written by hand and loaded into an empty or populated catalog:
//
//	genres:
//	  - Science Fiction
//	authors:
//	  - key: leguin
//	    first_name: Ursula
//	    last_name: Le Guin
//	    date_of_birth: 1929-10-21
//	books:
//	  - key: dispossessed
//	    title: The Dispossessed
//	    isbn: "9780061054884"
//	    author: leguin
//	    genres: [Science Fiction]
//	instances:
//	  - book: dispossessed
//	    imprint: Harper Voyager, 1994
//	    status: a
//
// Validation runs before anything is written. Every field and reference problem
// is reported at once in a single ValidationError.
//
// # Example Usage
//
//	fixture, err := importers.LoadFile("catalog.yaml")
//	if err != nil {
//		return err
//	}
//	result, err := importers.NewImporter(db).Import(ctx, fixture)
package importers
