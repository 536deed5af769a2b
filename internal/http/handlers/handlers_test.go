package handlers_test

import (
	nethttp "net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fantasy-recap-service/internal/app/recaps"
	"fantasy-recap-service/internal/audio"
	"fantasy-recap-service/internal/domain"
	router "fantasy-recap-service/internal/http"
	"fantasy-recap-service/internal/http/handlers"
	"fantasy-recap-service/internal/providers"
	"fantasy-recap-service/internal/testutil"
)

type fixture struct {
	provider *testutil.StubProvider
	synth    *testutil.StubSynthesizer
	store    *audio.Store
	dir      string
	handler  nethttp.Handler
}

func newFixture(t *testing.T, provider *testutil.StubProvider, synth *testutil.StubSynthesizer) *fixture {
	t.Helper()
	dir := t.TempDir()
	store := audio.NewStore(dir)
	svc := recaps.NewService(provider, synth, store, nil, nil)
	h := handlers.NewHandler(svc, store, nil, dir)
	return &fixture{
		provider: provider,
		synth:    synth,
		store:    store,
		dir:      dir,
		handler:  router.NewRouter(h),
	}
}

func defaultProvider() *testutil.StubProvider {
	return &testutil.StubProvider{
		League: domain.League{ID: 123, Name: "Office League", Year: 2024, CurrentWeek: 6},
		Matchups: []domain.Matchup{
			{
				Week:      5,
				HomeTeam:  domain.Team{ID: 1, Name: "Alpha"},
				AwayTeam:  domain.Team{ID: 2, Name: "Bravo"},
				HomeScore: 120.5,
				AwayScore: 98.25,
			},
		},
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t, defaultProvider(), &testutil.StubSynthesizer{})

	rr := testutil.Serve(f.handler, nethttp.MethodGet, "/api/health", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["status"] != "ok" {
		t.Fatalf("unexpected health body %v", body)
	}
}

func TestLeagueInfo(t *testing.T) {
	f := newFixture(t, defaultProvider(), &testutil.StubSynthesizer{})

	rr := testutil.Serve(f.handler, nethttp.MethodGet, "/api/league-info", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	var body struct {
		LeagueName  string `json:"league_name"`
		CurrentWeek int    `json:"current_week"`
		TargetWeek  int    `json:"target_week"`
	}
	testutil.DecodeJSON(t, rr, &body)
	if body.LeagueName != "Office League" {
		t.Fatalf("unexpected league name %q", body.LeagueName)
	}
	if body.CurrentWeek != 6 || body.TargetWeek != 5 {
		t.Fatalf("unexpected weeks %+v", body)
	}
}

func TestLeagueInfoOmitsTargetBeforeSeason(t *testing.T) {
	provider := defaultProvider()
	provider.League.CurrentWeek = 1
	f := newFixture(t, provider, &testutil.StubSynthesizer{})

	rr := testutil.Serve(f.handler, nethttp.MethodGet, "/api/league-info", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	var body map[string]any
	testutil.DecodeJSON(t, rr, &body)
	if _, ok := body["target_week"]; ok {
		t.Fatal("target_week should be omitted before the season starts")
	}
}

func TestGenerateRecapSuccess(t *testing.T) {
	f := newFixture(t, defaultProvider(), &testutil.StubSynthesizer{Data: []byte("clip")})

	rr := testutil.ServeJSON(t, f.handler, nethttp.MethodPost, "/api/generate-recap",
		map[string]any{"year": 2024, "week": 5})
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	var body struct {
		Success       bool   `json:"success"`
		Week          int    `json:"week"`
		Summary       string `json:"summary"`
		AudioFilename string `json:"audio_filename"`
	}
	testutil.DecodeJSON(t, rr, &body)
	if !body.Success {
		t.Fatal("expected success")
	}
	if body.Week != 5 || body.AudioFilename != "recap_week_5.mp3" {
		t.Fatalf("unexpected body %+v", body)
	}
	if !strings.Contains(body.Summary, "Alpha") {
		t.Fatalf("summary missing matchup text: %q", body.Summary)
	}
}

func TestGenerateRecapEmptyBodyResolvesWeek(t *testing.T) {
	f := newFixture(t, defaultProvider(), &testutil.StubSynthesizer{})

	rr := testutil.Serve(f.handler, nethttp.MethodPost, "/api/generate-recap", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	var body struct {
		Week int `json:"week"`
	}
	testutil.DecodeJSON(t, rr, &body)
	if body.Week != 5 {
		t.Fatalf("expected resolved week 5, got %d", body.Week)
	}
}

func TestGenerateRecapUnknownPersonality(t *testing.T) {
	f := newFixture(t, defaultProvider(), &testutil.StubSynthesizer{})

	rr := testutil.ServeJSON(t, f.handler, nethttp.MethodPost, "/api/generate-recap",
		map[string]any{"personality": "shakespearean"})
	testutil.AssertStatus(t, rr, nethttp.StatusBadRequest)

	var body map[string]any
	testutil.DecodeJSON(t, rr, &body)
	if body["success"] != false {
		t.Fatalf("expected success:false, got %v", body)
	}
}

func TestGenerateRecapSeasonNotStarted(t *testing.T) {
	provider := defaultProvider()
	provider.League.CurrentWeek = 1
	f := newFixture(t, provider, &testutil.StubSynthesizer{})

	rr := testutil.Serve(f.handler, nethttp.MethodPost, "/api/generate-recap", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusConflict)

	var body map[string]any
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "season_not_started" {
		t.Fatalf("unexpected error label %v", body["error"])
	}
}

func TestGenerateRecapAuthRejected(t *testing.T) {
	provider := defaultProvider()
	provider.ScoreboardErr = providers.ErrAuthRejected
	f := newFixture(t, provider, &testutil.StubSynthesizer{})

	rr := testutil.ServeJSON(t, f.handler, nethttp.MethodPost, "/api/generate-recap",
		map[string]any{"year": 2024, "week": 5})
	testutil.AssertStatus(t, rr, nethttp.StatusBadGateway)

	var body map[string]any
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "auth_rejected" {
		t.Fatalf("unexpected error label %v", body["error"])
	}
}

func TestGenerateRecapRenderFailure(t *testing.T) {
	f := newFixture(t, defaultProvider(), &testutil.StubSynthesizer{Err: os.ErrDeadlineExceeded})

	rr := testutil.ServeJSON(t, f.handler, nethttp.MethodPost, "/api/generate-recap",
		map[string]any{"year": 2024, "week": 5})
	testutil.AssertStatus(t, rr, nethttp.StatusBadGateway)

	var body map[string]any
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "render_failed" {
		t.Fatalf("unexpected error label %v", body["error"])
	}
}

func TestGenerateRecapRejectsGet(t *testing.T) {
	f := newFixture(t, defaultProvider(), &testutil.StubSynthesizer{})

	rr := testutil.Serve(f.handler, nethttp.MethodGet, "/api/generate-recap", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusMethodNotAllowed)
}

func TestGenerateRecapMalformedBody(t *testing.T) {
	f := newFixture(t, defaultProvider(), &testutil.StubSynthesizer{})

	rr := testutil.Serve(f.handler, nethttp.MethodPost, "/api/generate-recap",
		strings.NewReader("{not json"))
	testutil.AssertStatus(t, rr, nethttp.StatusBadRequest)
}

func TestAudioServesClip(t *testing.T) {
	f := newFixture(t, defaultProvider(), &testutil.StubSynthesizer{})
	if _, err := f.store.Save(3, []byte("mp3-data")); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	rr := testutil.Serve(f.handler, nethttp.MethodGet, "/api/audio/recap_week_3.mp3", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	if got := rr.Header().Get("Content-Type"); got != "audio/mpeg" {
		t.Fatalf("unexpected content type %q", got)
	}
	if rr.Body.String() != "mp3-data" {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestAudioMissingClip(t *testing.T) {
	f := newFixture(t, defaultProvider(), &testutil.StubSynthesizer{})

	rr := testutil.Serve(f.handler, nethttp.MethodGet, "/api/audio/recap_week_9.mp3", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNotFound)
}

func TestAudioRejectsNonClipNames(t *testing.T) {
	f := newFixture(t, defaultProvider(), &testutil.StubSynthesizer{})

	for _, name := range []string{"notes.txt", "recap_week_3.wav", "recap_week_x.mp3"} {
		rr := testutil.Serve(f.handler, nethttp.MethodGet, "/api/audio/"+name, nil)
		testutil.AssertStatus(t, rr, nethttp.StatusBadRequest)
	}
}

func TestAvailableAudio(t *testing.T) {
	f := newFixture(t, defaultProvider(), &testutil.StubSynthesizer{})
	for _, week := range []int{4, 1, 2} {
		if _, err := f.store.Save(week, []byte("x")); err != nil {
			t.Fatalf("failed to seed store: %v", err)
		}
	}

	rr := testutil.Serve(f.handler, nethttp.MethodGet, "/api/available-audio", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	var body struct {
		AudioFiles []audio.File `json:"audio_files"`
		Count      int          `json:"count"`
	}
	testutil.DecodeJSON(t, rr, &body)
	if body.Count != 3 {
		t.Fatalf("expected 3 files, got %d", body.Count)
	}
	for i, want := range []int{1, 2, 4} {
		if body.AudioFiles[i].Week != want {
			t.Fatalf("expected weeks sorted, got %+v", body.AudioFiles)
		}
	}
}

func TestAvailableAudioEmpty(t *testing.T) {
	f := newFixture(t, defaultProvider(), &testutil.StubSynthesizer{})

	rr := testutil.Serve(f.handler, nethttp.MethodGet, "/api/available-audio", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	var body struct {
		Count int `json:"count"`
	}
	testutil.DecodeJSON(t, rr, &body)
	if body.Count != 0 {
		t.Fatalf("expected empty listing, got %d", body.Count)
	}
}

func TestIndexServesWebForm(t *testing.T) {
	f := newFixture(t, defaultProvider(), &testutil.StubSynthesizer{})
	page := "<html><body>recap</body></html>"
	if err := os.WriteFile(filepath.Join(f.dir, "index.html"), []byte(page), 0o644); err != nil {
		t.Fatalf("failed to write index: %v", err)
	}

	rr := testutil.Serve(f.handler, nethttp.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	if !strings.Contains(rr.Body.String(), "recap") {
		t.Fatalf("unexpected index body %q", rr.Body.String())
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	f := newFixture(t, defaultProvider(), &testutil.StubSynthesizer{})

	rr := testutil.Serve(f.handler, nethttp.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNotFound)
}
