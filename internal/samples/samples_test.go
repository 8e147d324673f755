package samples

import "testing"

func TestCatalogShape(t *testing.T) {
	jobs := Catalog()
	if len(jobs) != 24 {
		t.Fatalf("expected 24 sample jobs, got %d", len(jobs))
	}

	known := make(map[string]struct{})
	for _, c := range Categories() {
		known[c] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, job := range jobs {
		if job.Title == "" || job.Description == "" {
			t.Fatalf("sample job with empty fields: %+v", job)
		}
		if _, ok := known[job.Category]; !ok {
			t.Fatalf("sample %q has unknown category %q", job.Title, job.Category)
		}
		if _, dup := seen[job.Title]; dup {
			t.Fatalf("duplicate sample title %q", job.Title)
		}
		seen[job.Title] = struct{}{}
	}
}

func TestCategoriesPartitionCatalog(t *testing.T) {
	total := 0
	for _, category := range Categories() {
		jobs := ByCategory(category)
		if len(jobs) == 0 {
			t.Fatalf("category %q has no samples", category)
		}
		for _, job := range jobs {
			if job.Category != category {
				t.Fatalf("ByCategory(%q) returned %q sample", category, job.Category)
			}
		}
		total += len(jobs)
	}

	if total != len(Catalog()) {
		t.Fatalf("categories cover %d samples, catalog has %d", total, len(Catalog()))
	}
}

func TestFind(t *testing.T) {
	job, ok := Find("Data Scientist")
	if !ok {
		t.Fatalf("expected to find the data scientist sample")
	}
	if job.Category != CategoryTechnology {
		t.Fatalf("unexpected category: %s", job.Category)
	}

	if _, ok := Find("data scientist"); !ok {
		t.Fatalf("expected title lookup to ignore case")
	}

	if _, ok := Find("Underwater Welder"); ok {
		t.Fatalf("did not expect to find an unknown title")
	}
}

func TestTitlesMatchCatalogOrder(t *testing.T) {
	titles := Titles()
	jobs := Catalog()

	if len(titles) != len(jobs) {
		t.Fatalf("expected %d titles, got %d", len(jobs), len(titles))
	}

	for i, job := range jobs {
		if titles[i] != job.Title {
			t.Fatalf("title %d is %q, want %q", i, titles[i], job.Title)
		}
	}
}
