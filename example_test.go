package simsearch_test

import (
	"fmt"
	"log"

	"github.com/simsearch-dev/simsearch"
	"github.com/simsearch-dev/simsearch/levenshtein"
)

func ExampleEngine_TopK() {
	engine := simsearch.New[string]()
	if err := engine.AddScorer(simsearch.WeightedLev(func(s string) string { return s })); err != nil {
		log.Fatal(err)
	}
	engine.AddBatch([]string{"hell", "world", "welt"})

	for _, r := range engine.TopK("hallo", 1) {
		fmt.Println(r.Value)
	}
	// Output: hell
}

// Rank sorts ascending by score, so the best match is the last element.
func ExampleEngine_Rank() {
	engine := simsearch.New[string]()
	if err := engine.AddScorer(simsearch.WeightedLev(func(s string) string { return s })); err != nil {
		log.Fatal(err)
	}
	engine.AddBatch([]string{"hell", "world", "welt"})

	results := engine.Rank("hallo")
	fmt.Println(results[len(results)-1].Value)
	// Output: hell
}

// Multi-field scoring with per-item incremental state: one scorer per field,
// each weighted, combined by taking the best weighted signal.
func Example_books() {
	type Book struct {
		Title  string
		Author string
	}

	books := []Book{
		{Title: "The Winds of Winter", Author: "George R. R. Martin"},
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald"},
		{Title: "Brave New World", Author: "Aldous Huxley"},
		{Title: "To Kill a Mockingbird", Author: "Harper Lee"},
	}

	engine := simsearch.New[Book]()
	if err := engine.AddScorer(simsearch.IncrementalLev(func(b Book) string { return b.Title })); err != nil {
		log.Fatal(err)
	}
	err := engine.AddScorer(simsearch.WeightedStatefulScore(0.8,
		func(b Book) any { return levenshtein.NewIncremental("", b.Author) },
		func(state any, _ Book, query string) float64 {
			return state.(*levenshtein.Incremental).WeightedSimilarity(query)
		},
	))
	if err != nil {
		log.Fatal(err)
	}
	engine.AddBatch(books)

	best := engine.TopK("Fitzgerald", 1)
	fmt.Println(best[0].Value.Title)
	// Output: The Great Gatsby
}
