package content

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"testing"
)

// fakeContentServer answers queries by matching on the document type named in
// the GROQ string.
func fakeStore(t *testing.T, responses map[string]string) *Store {
	t.Helper()
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		for marker, result := range responses {
			if strings.Contains(query, marker) {
				w.Write([]byte(`{"result": ` + result + `}`))
				return
			}
		}
		w.Write([]byte(`{"result": null}`))
	})
	return NewStore(client)
}

func TestGetPersonalInfo(t *testing.T) {
	store := fakeStore(t, map[string]string{
		"personalInfo": `{"_id": "bio", "name": "Ada Lovelace", "firstName": "Ada"}`,
	})

	info, err := store.GetPersonalInfo(context.Background())
	if err != nil {
		t.Fatalf("GetPersonalInfo() error: %v", err)
	}
	if info == nil || info.Name != "Ada Lovelace" {
		t.Errorf("info = %+v, want bio document", info)
	}
}

func TestGetPersonalInfoAbsent(t *testing.T) {
	store := fakeStore(t, nil)

	info, err := store.GetPersonalInfo(context.Background())
	if err != nil {
		t.Fatalf("GetPersonalInfo() error: %v", err)
	}
	if info != nil {
		t.Errorf("info = %+v, want nil for missing singleton", info)
	}
}

func TestGetProjectBySlug(t *testing.T) {
	store := fakeStore(t, map[string]string{
		"slug.current == $slug": `{"_id": "p1", "title": "My App", "slug": {"current": "my-app"}}`,
	})

	project, err := store.GetProjectBySlug(context.Background(), "my-app")
	if err != nil {
		t.Fatalf("GetProjectBySlug() error: %v", err)
	}
	if project == nil || project.Slug.Current != "my-app" {
		t.Errorf("project = %+v, want matching document", project)
	}
}

func TestGetProjectBySlugUnknown(t *testing.T) {
	store := fakeStore(t, nil)

	project, err := store.GetProjectBySlug(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetProjectBySlug() error: %v", err)
	}
	if project != nil {
		t.Errorf("project = %+v, want nil for unknown slug", project)
	}
}

func TestGetSkillsWithCategories(t *testing.T) {
	store := fakeStore(t, map[string]string{
		`"categories"`: `{"categories": [{"_id": "c1", "name": "Languages"}], "skills": [{"_id": "s1", "name": "Go", "proficiency": 90}]}`,
	})

	grouped, err := store.GetSkillsWithCategories(context.Background())
	if err != nil {
		t.Fatalf("GetSkillsWithCategories() error: %v", err)
	}
	if grouped == nil || len(grouped.Categories) != 1 || len(grouped.Skills) != 1 {
		t.Fatalf("grouped = %+v, want one category and one skill", grouped)
	}
	if grouped.Skills[0].Proficiency != 90 {
		t.Errorf("proficiency = %d, want 90", grouped.Skills[0].Proficiency)
	}
}

// TestProjectSlugsRoundTrip drives both project lookups against one dataset:
// every slug the enumeration returns must resolve to its document, and a slug
// outside the dataset must resolve to nil.
func TestProjectSlugsRoundTrip(t *testing.T) {
	projects := map[string]string{
		"my-app":  `{"_id": "p1", "title": "My App", "slug": {"current": "my-app"}}`,
		"cli-kit": `{"_id": "p2", "title": "CLI Kit", "slug": {"current": "cli-kit"}}`,
	}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		switch {
		case strings.Contains(query, "slug.current == $slug"):
			slug, err := strconv.Unquote(r.URL.Query().Get("$slug"))
			if err != nil {
				t.Errorf("$slug = %q, want a quoted string", r.URL.Query().Get("$slug"))
			}
			if doc, ok := projects[slug]; ok {
				w.Write([]byte(`{"result": ` + doc + `}`))
				return
			}
			w.Write([]byte(`{"result": null}`))
		case strings.Contains(query, `"slug": slug.current`):
			entries := make([]string, 0, len(projects))
			for slug := range projects {
				entries = append(entries, `{"slug": "`+slug+`"}`)
			}
			w.Write([]byte(`{"result": [` + strings.Join(entries, ",") + `]}`))
		default:
			w.Write([]byte(`{"result": null}`))
		}
	})
	store := NewStore(client)

	slugs, err := store.GetProjectSlugs(context.Background())
	if err != nil {
		t.Fatalf("GetProjectSlugs() error: %v", err)
	}
	if len(slugs) != len(projects) {
		t.Fatalf("GetProjectSlugs() returned %d slugs, want %d", len(slugs), len(projects))
	}

	for _, s := range slugs {
		project, err := store.GetProjectBySlug(context.Background(), s.Slug)
		if err != nil {
			t.Fatalf("GetProjectBySlug(%q) error: %v", s.Slug, err)
		}
		if project == nil {
			t.Errorf("GetProjectBySlug(%q) = nil, want the enumerated project", s.Slug)
		} else if project.Slug.Current != s.Slug {
			t.Errorf("GetProjectBySlug(%q) returned slug %q", s.Slug, project.Slug.Current)
		}
	}

	retired, err := store.GetProjectBySlug(context.Background(), "retired-app")
	if err != nil {
		t.Fatalf("GetProjectBySlug(retired-app) error: %v", err)
	}
	if retired != nil {
		t.Errorf("project = %+v, want nil for a slug outside the enumeration", retired)
	}
}

func TestStoreWrapsErrors(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	store := NewStore(client)

	_, err := store.GetProjects(context.Background())
	if err == nil {
		t.Fatal("expected error from failing store")
	}
	if !strings.Contains(err.Error(), "content.GetProjects") {
		t.Errorf("error %q should name the failing operation", err)
	}
}
