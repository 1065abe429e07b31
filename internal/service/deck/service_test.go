package deck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pitchdeck/internal/domain"
	models "pitchdeck/internal/domain/models/deck"
	"pitchdeck/internal/domain/services"
	"pitchdeck/internal/repository/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sequentialIDs returns deterministic ids: id0001, id0002, ...
func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id%04d", n)
	}
}

func newTestService(t *testing.T) *deckService {
	t.Helper()
	gen, err := NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	repoConfig := &memory.RepositoryConfig{Logger: testLogger()}
	svc := newDeckService(
		memory.NewDeckRepository(repoConfig),
		memory.NewSessionRepository(repoConfig),
		gen,
		testLogger(),
	)
	svc.newID = sequentialIDs()
	return svc
}

func generate(t *testing.T, svc *deckService, session, company, description string) *models.Deck {
	t.Helper()
	d, err := svc.Generate(context.Background(), session, &services.GenerateDeckRequest{
		CompanyName: company,
		Description: description,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return d
}

func strPtr(s string) *string { return &s }

func TestGenerate(t *testing.T) {
	svc := newTestService(t)
	d := generate(t, svc, "", "Acme", "Sells widgets")

	if len(d.Slides) != 9 {
		t.Fatalf("expected 9 slides, got %d", len(d.Slides))
	}
	if d.Theme != models.ThemeMidnight {
		t.Errorf("expected theme midnight, got %s", d.Theme)
	}

	wantKinds := []models.Kind{
		models.KindTitle, models.KindProblem, models.KindSolution, models.KindMarket, models.KindProduct,
		models.KindBusinessModel, models.KindTraction, models.KindTeam, models.KindAsk,
	}
	for i, want := range wantKinds {
		if d.Slides[i].Kind != want {
			t.Errorf("slide %d: expected kind %s, got %s", i, want, d.Slides[i].Kind)
		}
	}

	title := d.Slides[0]
	if title.Title != "Acme" || title.Subtitle != "Sells widgets" || title.Icon != "🚀" {
		t.Errorf("unexpected title slide: %+v", title)
	}

	// Defaults substituted into the prose
	if got := d.Slides[1].Content; !strings.Contains(got, "The technology industry") {
		t.Errorf("problem content missing default industry: %q", got)
	}
	if got := d.Slides[2].Content; !strings.HasPrefix(got, "Acme Sells widgets.") {
		t.Errorf("solution content: %q", got)
	}
	if got := d.Slides[6].Content; got != DefaultTraction {
		t.Errorf("traction content: got %q, want %q", got, DefaultTraction)
	}
	if got := d.Slides[8].Content; got != "Raising $2M Seed round to accelerate growth." {
		t.Errorf("ask content: %q", got)
	}
	if got := d.Slides[8].Metrics[0]; got.Value != "$2M" || got.Description != "Seed round" {
		t.Errorf("ask metric: %+v", got)
	}

	seen := map[string]bool{}
	for _, s := range d.Slides {
		if seen[s.ID] {
			t.Errorf("duplicate slide id %s", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestGenerate_OptionalArguments(t *testing.T) {
	svc := newTestService(t)
	d, err := svc.Generate(context.Background(), "", &services.GenerateDeckRequest{
		CompanyName: "MedCo",
		Description: "heals people",
		Industry:    strPtr("healthtech"),
		Stage:       strPtr("Series A"),
		AskAmount:   strPtr("$10M"),
		Traction:    strPtr("50K users"),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got := d.Slides[3].Content; got != "The healthtech market is massive and growing rapidly." {
		t.Errorf("market content: %q", got)
	}
	if got := d.Slides[6].Content; got != "50K users" {
		t.Errorf("traction content: %q", got)
	}
	if got := d.Slides[8].Content; got != "Raising $10M Series A round to accelerate growth." {
		t.Errorf("ask content: %q", got)
	}
}

func TestGenerate_EmptyOptionalUsesDefault(t *testing.T) {
	svc := newTestService(t)
	d, err := svc.Generate(context.Background(), "", &services.GenerateDeckRequest{
		CompanyName: "Acme",
		Description: "x",
		Industry:    strPtr(""),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(d.Slides[1].Content, DefaultIndustry) {
		t.Errorf("expected default industry, got %q", d.Slides[1].Content)
	}
}

func TestGenerate_ReplacesCurrentKeepsPrevious(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first := generate(t, svc, "", "First", "one")
	second := generate(t, svc, "", "Second", "two")

	current, err := svc.GetCurrent(ctx, "")
	if err != nil {
		t.Fatalf("GetCurrent: %v", err)
	}
	if current.ID != second.ID {
		t.Errorf("expected current %s, got %s", second.ID, current.ID)
	}

	old, err := svc.GetDeck(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetDeck(first): %v", err)
	}
	if old.CompanyName != "First" {
		t.Errorf("unexpected previous deck: %s", old.CompanyName)
	}
}

func TestGenerate_RetriesDeckIDCollision(t *testing.T) {
	svc := newTestService(t)
	first := generate(t, svc, "", "A", "a")

	// The next deck id handed out collides with the first deck once
	next := sequentialIDs()
	collided := false
	svc.newID = func() string {
		id := next()
		if id == "id0010" && !collided {
			collided = true
			return first.ID
		}
		return "x" + id
	}

	second := generate(t, svc, "", "B", "b")
	if second.ID == first.ID {
		t.Fatal("deck id collision was not retried")
	}
	if !collided {
		t.Fatal("collision path not exercised")
	}
}

func TestOperationsWithoutDeck(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	ops := map[string]func() error{
		"update_slide": func() error {
			_, err := svc.UpdateSlide(ctx, "", &services.UpdateSlideRequest{SlideIndex: 0, Title: models.Some("X")})
			return err
		},
		"add_slide": func() error {
			_, err := svc.AddSlide(ctx, "", &services.AddSlideRequest{Title: "T", Content: "C"})
			return err
		},
		"remove_slide": func() error {
			_, err := svc.RemoveSlide(ctx, "", &services.RemoveSlideRequest{SlideIndex: 0})
			return err
		},
		"change_theme": func() error {
			_, err := svc.ChangeTheme(ctx, "", &services.ChangeThemeRequest{Theme: "forest"})
			return err
		},
		"get_current": func() error {
			_, err := svc.GetCurrent(ctx, "")
			return err
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			if !errors.Is(err, domain.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
			if !strings.Contains(err.Error(), "Generate a pitch deck first") {
				t.Errorf("unexpected message: %q", err.Error())
			}
		})
	}
}

func TestUpdateSlide_ChangesOnlyTarget(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	before := generate(t, svc, "", "Acme", "Sells widgets")

	for index := range before.Slides {
		t.Run(fmt.Sprintf("index_%d", index), func(t *testing.T) {
			current, err := svc.GetCurrent(ctx, "")
			if err != nil {
				t.Fatalf("GetCurrent: %v", err)
			}

			after, err := svc.UpdateSlide(ctx, "", &services.UpdateSlideRequest{
				SlideIndex: index,
				Title:      models.Some("X"),
			})
			if err != nil {
				t.Fatalf("UpdateSlide: %v", err)
			}

			want := current.Clone()
			want.Slides[index].Title = "X"
			if diff := cmp.Diff(want.Slides, after.Slides); diff != "" {
				t.Errorf("slides mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateSlide_FalsySkip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	before := generate(t, svc, "", "Acme", "Sells widgets")

	tests := []struct {
		name string
		req  services.UpdateSlideRequest
	}{
		{
			name: "empty bullets",
			req:  services.UpdateSlideRequest{SlideIndex: 1, Bullets: models.Some([]string{})},
		},
		{
			name: "empty title and content",
			req:  services.UpdateSlideRequest{SlideIndex: 1, Title: models.Some(""), Content: models.Some("")},
		},
		{
			name: "nothing provided",
			req:  services.UpdateSlideRequest{SlideIndex: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			after, err := svc.UpdateSlide(ctx, "", &tt.req)
			if err != nil {
				t.Fatalf("UpdateSlide: %v", err)
			}
			if diff := cmp.Diff(before.Slides, after.Slides); diff != "" {
				t.Errorf("slides changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestUpdateSlide_AllFields(t *testing.T) {
	svc := newTestService(t)
	generate(t, svc, "", "Acme", "Sells widgets")

	after, err := svc.UpdateSlide(context.Background(), "", &services.UpdateSlideRequest{
		SlideIndex: 3,
		Title:      models.Some("Big Market"),
		Content:    models.Some("Huge."),
		Bullets:    models.Some([]string{"a", "b"}),
	})
	if err != nil {
		t.Fatalf("UpdateSlide: %v", err)
	}

	got := after.Slides[3]
	if got.Title != "Big Market" || got.Content != "Huge." {
		t.Errorf("unexpected slide: %+v", got)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got.Bullets); diff != "" {
		t.Errorf("bullets (-want +got):\n%s", diff)
	}
	if len(got.Metrics) != 3 {
		t.Errorf("metrics must be untouched, got %d", len(got.Metrics))
	}
}

func TestIndexOutOfRange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	d := generate(t, svc, "", "Acme", "Sells widgets")
	count := len(d.Slides)

	for _, index := range []int{-1, count, count + 5} {
		t.Run(fmt.Sprintf("update_%d", index), func(t *testing.T) {
			_, err := svc.UpdateSlide(ctx, "", &services.UpdateSlideRequest{SlideIndex: index, Title: models.Some("X")})
			assertOutOfRange(t, err, count)
		})
		t.Run(fmt.Sprintf("remove_%d", index), func(t *testing.T) {
			_, err := svc.RemoveSlide(ctx, "", &services.RemoveSlideRequest{SlideIndex: index})
			assertOutOfRange(t, err, count)
		})
	}

	current, err := svc.GetCurrent(ctx, "")
	if err != nil {
		t.Fatalf("GetCurrent: %v", err)
	}
	if diff := cmp.Diff(d.Slides, current.Slides); diff != "" {
		t.Errorf("failed operations mutated the deck:\n%s", diff)
	}
}

func assertOutOfRange(t *testing.T, err error, count int) {
	t.Helper()
	if !errors.Is(err, domain.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	wantBounds := fmt.Sprintf("(0-%d)", count-1)
	if !strings.Contains(err.Error(), wantBounds) {
		t.Errorf("message %q does not name bounds %s", err.Error(), wantBounds)
	}
}

func TestAddThenRemoveRestoresSequence(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	before := generate(t, svc, "", "Acme", "Sells widgets")

	for _, position := range []int{0, 4, len(before.Slides)} {
		t.Run(fmt.Sprintf("position_%d", position), func(t *testing.T) {
			added, err := svc.AddSlide(ctx, "", &services.AddSlideRequest{
				Title:    "Extra",
				Content:  "More",
				Position: models.Some(position),
			})
			if err != nil {
				t.Fatalf("AddSlide: %v", err)
			}
			newID := added.Slides[position].ID
			if added.Slides[position].Title != "Extra" || added.Slides[position].Kind != models.KindCustom {
				t.Fatalf("slide not inserted at %d: %+v", position, added.Slides[position])
			}

			removed, err := svc.RemoveSlide(ctx, "", &services.RemoveSlideRequest{SlideIndex: position})
			if err != nil {
				t.Fatalf("RemoveSlide: %v", err)
			}
			if diff := cmp.Diff(before.Slides, removed.Slides); diff != "" {
				t.Errorf("sequence not restored (-want +got):\n%s", diff)
			}
			if removed.HasSlideID(newID) {
				t.Errorf("transient slide id %s still present", newID)
			}
		})
	}
}

func TestAddSlide_ClampToAppend(t *testing.T) {
	tests := []struct {
		name     string
		position func(count int) models.Optional[int]
	}{
		{"absent", func(int) models.Optional[int] { return models.None[int]() }},
		{"equal to count", func(n int) models.Optional[int] { return models.Some(n) }},
		{"past count", func(n int) models.Optional[int] { return models.Some(n + 3) }},
		{"negative", func(int) models.Optional[int] { return models.Some(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			before := generate(t, svc, "", "Acme", "Sells widgets")

			after, err := svc.AddSlide(context.Background(), "", &services.AddSlideRequest{
				Title:    "Appendix",
				Content:  "Details",
				Kind:     "appendix",
				Position: tt.position(len(before.Slides)),
				Bullets:  models.Some([]string{"one"}),
			})
			if err != nil {
				t.Fatalf("AddSlide: %v", err)
			}

			if len(after.Slides) != len(before.Slides)+1 {
				t.Fatalf("expected %d slides, got %d", len(before.Slides)+1, len(after.Slides))
			}
			if diff := cmp.Diff(before.Slides, after.Slides[:len(before.Slides)]); diff != "" {
				t.Errorf("existing slides moved (-want +got):\n%s", diff)
			}
			last := after.Slides[len(after.Slides)-1]
			if last.Title != "Appendix" || last.Kind != "appendix" {
				t.Errorf("unexpected appended slide: %+v", last)
			}
			if diff := cmp.Diff([]string{"one"}, last.Bullets); diff != "" {
				t.Errorf("bullets (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddSlide_FreshUniqueIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	d := generate(t, svc, "", "Acme", "Sells widgets")

	// Hand out an id already used by the deck first
	taken := d.Slides[2].ID
	next := sequentialIDs()
	first := true
	svc.newID = func() string {
		if first {
			first = false
			return taken
		}
		return "new-" + next()
	}

	after, err := svc.AddSlide(ctx, "", &services.AddSlideRequest{Title: "T", Content: "C"})
	if err != nil {
		t.Fatalf("AddSlide: %v", err)
	}
	added := after.Slides[len(after.Slides)-1]
	if added.ID == taken {
		t.Fatalf("slide id %s reused", taken)
	}
}

func TestLargeSlideValuesAccepted(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	generate(t, svc, "", "Acme", "Sells widgets")

	longTitle := strings.Repeat("T", 201)
	longContent := strings.Repeat("c", 6000)
	bullets := make([]string, 21)
	for i := range bullets {
		bullets[i] = strings.Repeat("b", 600)
	}

	added, err := svc.AddSlide(ctx, "", &services.AddSlideRequest{
		Title:   longTitle,
		Content: longContent,
		Kind:    models.Kind(strings.Repeat("k", 100)),
		Bullets: models.Some(bullets),
	})
	if err != nil {
		t.Fatalf("AddSlide: %v", err)
	}
	last := added.Slides[len(added.Slides)-1]
	if last.Title != longTitle || len(last.Bullets) != 21 {
		t.Errorf("added slide not stored verbatim: title %d runes, %d bullets", len(last.Title), len(last.Bullets))
	}

	updated, err := svc.UpdateSlide(ctx, "", &services.UpdateSlideRequest{
		SlideIndex: 1,
		Title:      models.Some(longTitle),
		Content:    models.Some(longContent),
		Bullets:    models.Some(bullets),
	})
	if err != nil {
		t.Fatalf("UpdateSlide: %v", err)
	}
	if updated.Slides[1].Title != longTitle || updated.Slides[1].Content != longContent {
		t.Error("update did not apply long values")
	}
	if diff := cmp.Diff(bullets, updated.Slides[1].Bullets); diff != "" {
		t.Errorf("bullets mismatch (-want +got):\n%s", diff)
	}
}

func TestChangeTheme(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	before := generate(t, svc, "", "Acme", "Sells widgets")

	for _, theme := range models.ThemeNames() {
		t.Run(theme, func(t *testing.T) {
			once, err := svc.ChangeTheme(ctx, "", &services.ChangeThemeRequest{Theme: theme})
			if err != nil {
				t.Fatalf("ChangeTheme: %v", err)
			}
			twice, err := svc.ChangeTheme(ctx, "", &services.ChangeThemeRequest{Theme: theme})
			if err != nil {
				t.Fatalf("ChangeTheme (repeat): %v", err)
			}
			if string(twice.Theme) != theme {
				t.Errorf("expected theme %s, got %s", theme, twice.Theme)
			}
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("repeat changed state (-once +twice):\n%s", diff)
			}
			if diff := cmp.Diff(before.Slides, twice.Slides); diff != "" {
				t.Errorf("theme change touched slides:\n%s", diff)
			}
		})
	}
}

func TestChangeTheme_Invalid(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	generate(t, svc, "", "Acme", "Sells widgets")

	if _, err := svc.ChangeTheme(ctx, "", &services.ChangeThemeRequest{Theme: "sunset"}); err != nil {
		t.Fatalf("ChangeTheme: %v", err)
	}

	for _, bad := range []string{"neon", "", "Midnight"} {
		_, err := svc.ChangeTheme(ctx, "", &services.ChangeThemeRequest{Theme: bad})
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("theme %q: expected ErrInvalidArgument, got %v", bad, err)
		}
		if !strings.Contains(err.Error(), "midnight, clean, sunset, forest, electric") {
			t.Errorf("message does not list themes: %q", err.Error())
		}
	}

	current, err := svc.GetCurrent(ctx, "")
	if err != nil {
		t.Fatalf("GetCurrent: %v", err)
	}
	if current.Theme != models.ThemeSunset {
		t.Errorf("theme changed by failed call: %s", current.Theme)
	}
}

func TestEndToEndExample(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	d := generate(t, svc, "", "Acme", "Sells widgets")
	if len(d.Slides) != 9 || d.Slides[0].Kind != models.KindTitle || d.Slides[0].Title != "Acme" {
		t.Fatalf("unexpected generated deck: %d slides, first %+v", len(d.Slides), d.Slides[0])
	}

	d, err := svc.RemoveSlide(ctx, "", &services.RemoveSlideRequest{SlideIndex: 8})
	if err != nil {
		t.Fatalf("RemoveSlide: %v", err)
	}
	if len(d.Slides) != 8 || d.Slides[7].Kind != models.KindTeam {
		t.Fatalf("after remove: %d slides, last kind %s", len(d.Slides), d.Slides[len(d.Slides)-1].Kind)
	}
	slides := d.Clone().Slides

	d, err = svc.ChangeTheme(ctx, "", &services.ChangeThemeRequest{Theme: "forest"})
	if err != nil {
		t.Fatalf("ChangeTheme: %v", err)
	}
	if d.Theme != models.ThemeForest {
		t.Errorf("expected forest, got %s", d.Theme)
	}
	if diff := cmp.Diff(slides, d.Slides); diff != "" {
		t.Errorf("theme change altered slides:\n%s", diff)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a := generate(t, svc, "alice", "Alpha", "a")

	if _, err := svc.GetCurrent(ctx, "bob"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected bob to have no current deck, got %v", err)
	}
	if _, err := svc.GetCurrent(ctx, ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected default session to have no current deck, got %v", err)
	}

	b := generate(t, svc, "bob", "Beta", "b")
	if _, err := svc.ChangeTheme(ctx, "bob", &services.ChangeThemeRequest{Theme: "electric"}); err != nil {
		t.Fatalf("ChangeTheme: %v", err)
	}

	alice, err := svc.GetCurrent(ctx, "alice")
	if err != nil {
		t.Fatalf("GetCurrent(alice): %v", err)
	}
	if alice.ID != a.ID || alice.Theme != models.ThemeMidnight {
		t.Errorf("alice's deck affected by bob: %+v", alice)
	}

	// Any deck is reachable by id
	if got, err := svc.GetDeck(ctx, b.ID); err != nil || got.Theme != models.ThemeElectric {
		t.Errorf("GetDeck(bob's deck) = %v, %v", got, err)
	}
}

func TestReturnedDeckIsACopy(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	d := generate(t, svc, "", "Acme", "Sells widgets")

	d.Slides[0].Title = "mutated"
	d.Slides[1].Bullets[0] = "mutated"

	stored, err := svc.GetDeck(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetDeck: %v", err)
	}
	if stored.Slides[0].Title != "Acme" || stored.Slides[1].Bullets[0] == "mutated" {
		t.Error("caller mutation leaked into the store")
	}
}

func TestConcurrentAddSlide(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	before := generate(t, svc, "", "Acme", "Sells widgets")

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := svc.AddSlide(ctx, "", &services.AddSlideRequest{
				Title:   fmt.Sprintf("slide %d", n),
				Content: "c",
			}); err != nil {
				t.Errorf("AddSlide: %v", err)
			}
		}(i)
	}
	wg.Wait()

	after, err := svc.GetCurrent(ctx, "")
	if err != nil {
		t.Fatalf("GetCurrent: %v", err)
	}
	if len(after.Slides) != len(before.Slides)+workers {
		t.Fatalf("expected %d slides, got %d", len(before.Slides)+workers, len(after.Slides))
	}
	seen := map[string]bool{}
	for _, s := range after.Slides {
		if seen[s.ID] {
			t.Fatalf("duplicate slide id %s", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestListDecks(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	empty, err := svc.ListDecks(ctx, "")
	if err != nil || len(empty) != 0 {
		t.Fatalf("ListDecks on empty store = %v, %v", empty, err)
	}

	first := generate(t, svc, "alice", "Alpha", "a")
	second := generate(t, svc, "alice", "Beta", "b")
	third := generate(t, svc, "bob", "Gamma", "c")
	if _, err := svc.RemoveSlide(ctx, "bob", &services.RemoveSlideRequest{SlideIndex: 0}); err != nil {
		t.Fatalf("RemoveSlide: %v", err)
	}

	tests := []struct {
		session     string
		wantCurrent string
	}{
		{"alice", second.ID},
		{"bob", third.ID},
		{"nobody", ""},
	}

	for _, tt := range tests {
		t.Run(tt.session, func(t *testing.T) {
			infos, err := svc.ListDecks(ctx, tt.session)
			if err != nil {
				t.Fatalf("ListDecks: %v", err)
			}
			var names []string
			current := ""
			for _, info := range infos {
				names = append(names, info.CompanyName)
				if info.Current {
					current = info.ID
				}
			}
			if diff := cmp.Diff([]string{"Alpha", "Beta", "Gamma"}, names); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
			if current != tt.wantCurrent {
				t.Errorf("current = %q, want %q", current, tt.wantCurrent)
			}
			if infos[0].ID != first.ID || infos[0].SlideCount != 9 || infos[2].SlideCount != 8 {
				t.Errorf("unexpected infos: %+v", infos)
			}
		})
	}
}
