package job

import (
	"reflect"
	"regexp"
	"testing"
)

func TestNormalizeFilter(t *testing.T) {
	t.Run("trims whitespace-only fields to absent", func(t *testing.T) {
		f := NormalizeFilter("   ", "\t", "", "  ")
		if !f.IsEmpty() {
			t.Fatalf("expected empty spec, got %+v", f)
		}
		if !f.ActiveOnly {
			t.Fatal("listing spec must always be active-only")
		}
	})

	t.Run("splits keywords on commas and drops empty tokens", func(t *testing.T) {
		f := NormalizeFilter("", "", " react, node,, ,go ", "")
		want := []string{"react", "node", "go"}
		if !reflect.DeepEqual(f.Keywords, want) {
			t.Fatalf("expected %v, got %v", want, f.Keywords)
		}
	})

	t.Run("keeps filter fields verbatim after trimming", func(t *testing.T) {
		f := NormalizeFilter(" C++ Developer ", "Berlin", "", "backend")
		if f.Title != "C++ Developer" || f.Location != "Berlin" || f.Query != "backend" {
			t.Fatalf("unexpected spec %+v", f)
		}
	})
}

func TestEscapePattern(t *testing.T) {
	t.Run("escaped pattern matches metacharacters literally", func(t *testing.T) {
		re, err := regexp.Compile("(?i)" + EscapePattern("C++"))
		if err != nil {
			t.Fatalf("escaped pattern failed to compile: %v", err)
		}
		if !re.MatchString("Senior C++ Developer") {
			t.Fatal("expected literal match on C++")
		}
		if re.MatchString("Senior C Developer") {
			t.Fatal("escaped + must not act as a quantifier")
		}
	})

	t.Run("every reserved metacharacter compiles literally", func(t *testing.T) {
		hostile := `. * + ? ^ $ { } ( ) | [ ] \`
		re, err := regexp.Compile("(?i)" + EscapePattern(hostile))
		if err != nil {
			t.Fatalf("escaped pattern failed to compile: %v", err)
		}
		if !re.MatchString("prefix " + hostile + " suffix") {
			t.Fatal("expected literal match on metacharacter string")
		}
	})
}

func TestFilterSpecMatches(t *testing.T) {
	j := &Job{
		Title:       "C++ Developer",
		Description: "Systems programming role",
		Company:     "Initech",
		Location:    "Remote, Germany",
		Skills:      []string{"C++", "CMake", "Linux"},
		Active:      true,
	}

	t.Run("title substring is case-insensitive and literal", func(t *testing.T) {
		f := NormalizeFilter("c++", "", "", "")
		if !f.Matches(j) {
			t.Fatal("expected C++ title to match literal c++ filter")
		}
	})

	t.Run("inactive records are excluded", func(t *testing.T) {
		inactive := *j
		inactive.Active = false
		f := NormalizeFilter("c++", "", "", "")
		if f.Matches(&inactive) {
			t.Fatal("inactive record must not match")
		}
	})

	t.Run("keywords are a union across skills", func(t *testing.T) {
		f := NormalizeFilter("", "", "cmake,rust", "")
		if !f.Matches(j) {
			t.Fatal("one matching keyword must be enough")
		}
		f = NormalizeFilter("", "", "rust,java", "")
		if f.Matches(j) {
			t.Fatal("no matching keyword must reject")
		}
	})

	t.Run("general query is a disjunction across fields and skills", func(t *testing.T) {
		for _, q := range []string{"initech", "germany", "systems", "linux", "c++ dev"} {
			f := NormalizeFilter("", "", "", q)
			if !f.Matches(j) {
				t.Fatalf("query %q should match", q)
			}
		}
		f := NormalizeFilter("", "", "", "haskell")
		if f.Matches(j) {
			t.Fatal("unrelated query must reject")
		}
	})

	t.Run("all present filters must hold together", func(t *testing.T) {
		f := NormalizeFilter("c++", "germany", "linux", "systems")
		if !f.Matches(j) {
			t.Fatal("conjunction of satisfied filters should match")
		}
		f = NormalizeFilter("c++", "france", "linux", "systems")
		if f.Matches(j) {
			t.Fatal("one failing filter must reject")
		}
	})
}
