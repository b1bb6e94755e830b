package synonym

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/heartmarshall/synonymer/internal/adapter/localdict"
	"github.com/heartmarshall/synonymer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockSource struct {
	name              string
	FetchSynonymsFunc func(ctx context.Context, word string) ([]string, error)
	calls             int
}

func (m *mockSource) Name() string { return m.name }

func (m *mockSource) FetchSynonyms(ctx context.Context, word string) ([]string, error) {
	m.calls++
	return m.FetchSynonymsFunc(ctx, word)
}

func returning(words ...string) *mockSource {
	return &mockSource{
		name: "mock",
		FetchSynonymsFunc: func(context.Context, string) ([]string, error) {
			return words, nil
		},
	}
}

func unreachable() *mockSource {
	return &mockSource{
		name: "dead",
		FetchSynonymsFunc: func(_ context.Context, word string) ([]string, error) {
			return []string{}, &domain.NetworkError{URL: "https://dead.test/" + word, Err: errors.New("no such host")}
		},
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func settingsWith(fn func(*domain.Settings)) StaticSettings {
	s := domain.DefaultSettings()
	if fn != nil {
		fn(&s)
	}
	return StaticSettings(s)
}

func newTestService(t *testing.T, settings StaticSettings, sources ...Source) *Service {
	t.Helper()
	store, err := localdict.New()
	require.NoError(t, err)
	return NewService(slog.Default(), store, settings, sources...)
}

func assertDistinct(t *testing.T, words []string) {
	t.Helper()
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		assert.False(t, seen[w], "duplicate %q in %v", w, words)
		seen[w] = true
	}
}

// ---------------------------------------------------------------------------
// Local-only short circuit
// ---------------------------------------------------------------------------

func TestService_Resolve_OfflineSnabb(t *testing.T) {
	t.Parallel()

	primary, secondary := returning("x"), returning("y")
	svc := newTestService(t, settingsWith(func(s *domain.Settings) {
		s.EnableOnlineLookup = false
		s.MaxSynonyms = 5
	}), primary, secondary)

	got, err := svc.Resolve(context.Background(), "snabb")

	require.NoError(t, err)
	assert.Equal(t, []string{"hastig", "kvick", "rapp", "vig", "flink"}, got)
	assert.Zero(t, primary.calls)
	assert.Zero(t, secondary.calls)
}

func TestService_Resolve_OfflineUnknownWord(t *testing.T) {
	t.Parallel()

	primary := returning("x")
	svc := newTestService(t, settingsWith(func(s *domain.Settings) {
		s.EnableOnlineLookup = false
	}), primary)

	got, err := svc.Resolve(context.Background(), "xyzzy")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Zero(t, primary.calls)
}

func TestService_Resolve_OfflineReturnsStoredOrder(t *testing.T) {
	t.Parallel()

	store, err := localdict.New()
	require.NoError(t, err)

	for _, word := range []string{"glad", "stor", "börja", "ärlig"} {
		for _, limit := range []int{domain.MinSynonyms, 10, domain.MaxSynonyms} {
			svc := NewService(slog.Default(), store, settingsWith(func(s *domain.Settings) {
				s.EnableOnlineLookup = false
				s.MaxSynonyms = limit
			}))

			got, err := svc.Resolve(context.Background(), word)
			require.NoError(t, err)

			stored := store.Lookup(word)
			want := min(len(stored), limit)
			assert.Len(t, got, want, "word=%s max=%d", word, limit)
			assert.Equal(t, stored[:want], got)
		}
	}
}

func TestService_Resolve_LocalHitSkipsNetwork(t *testing.T) {
	t.Parallel()

	primary := returning("x")
	svc := newTestService(t, settingsWith(nil), primary)

	got, err := svc.Resolve(context.Background(), "Glad")

	require.NoError(t, err)
	assert.Len(t, got, 10)
	assert.Equal(t, "munter", got[0])
	assert.Zero(t, primary.calls, "no remote fetch when local results exist and always_try_online is off")
}

func TestService_Resolve_LocalDuplicatesRemoved(t *testing.T) {
	t.Parallel()

	store := localdict.FromMap(map[string][]string{
		"trött": {"utmattad", "sliten", "utmattad", "dåsig", "Sliten"},
	})
	svc := NewService(slog.Default(), store, settingsWith(func(s *domain.Settings) {
		s.EnableOnlineLookup = false
	}))

	got, err := svc.Resolve(context.Background(), "trött")

	require.NoError(t, err)
	assert.Equal(t, []string{"utmattad", "sliten", "dåsig", "Sliten"}, got)
}

func TestService_Resolve_BlankWord(t *testing.T) {
	t.Parallel()

	primary := returning("x")
	svc := newTestService(t, settingsWith(nil), primary)

	got, err := svc.Resolve(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, primary.calls)
}

// ---------------------------------------------------------------------------
// Remote lookup
// ---------------------------------------------------------------------------

func TestService_Resolve_MergesPrimaryThenSecondary(t *testing.T) {
	t.Parallel()

	primary := returning("munter", "lycklig")
	secondary := returning("lycklig", "nöjd")
	svc := newTestService(t, settingsWith(func(s *domain.Settings) {
		s.AlwaysTryOnline = true
		s.MaxSynonyms = 10
	}), primary, secondary)

	got, err := svc.Resolve(context.Background(), "glad")

	require.NoError(t, err)
	assert.Equal(t, []string{"munter", "lycklig", "nöjd"}, got, "local results must not be appended")
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestService_Resolve_PrimaryEnoughSkipsSecondary(t *testing.T) {
	t.Parallel()

	primary := returning("a1", "a2", "a3", "a4", "a5", "a6")
	secondary := returning("b1")
	svc := newTestService(t, settingsWith(func(s *domain.Settings) {
		s.AlwaysTryOnline = true
		s.MaxSynonyms = 5
	}), primary, secondary)

	got, err := svc.Resolve(context.Background(), "glad")

	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a3", "a4", "a5"}, got)
	assert.Zero(t, secondary.calls)
}

func TestService_Resolve_PrimaryExactlyMaxSkipsSecondary(t *testing.T) {
	t.Parallel()

	primary := returning("a1", "a2", "a3")
	secondary := returning("b1")
	svc := newTestService(t, settingsWith(func(s *domain.Settings) {
		s.MaxSynonyms = 3
	}), primary, secondary)

	got, err := svc.Resolve(context.Background(), "xyzzy")

	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a3"}, got)
	assert.Zero(t, secondary.calls)
}

func TestService_Resolve_UnknownLocallyGoesOnline(t *testing.T) {
	t.Parallel()

	primary := returning("blodig", "fräsch")
	svc := newTestService(t, settingsWith(nil), primary)

	got, err := svc.Resolve(context.Background(), "färsk")

	require.NoError(t, err)
	assert.Equal(t, []string{"blodig", "fräsch"}, got)
	assert.Equal(t, 1, primary.calls)
}

func TestService_Resolve_MergedResultTruncated(t *testing.T) {
	t.Parallel()

	primary := returning("a", "b")
	secondary := returning("c", "b", "d", "e", "f")
	svc := newTestService(t, settingsWith(func(s *domain.Settings) {
		s.MaxSynonyms = 4
	}), primary, secondary)

	got, err := svc.Resolve(context.Background(), "xyzzy")

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
	assertDistinct(t, got)
}

func TestService_Resolve_CaseVariantsKept(t *testing.T) {
	t.Parallel()

	primary := returning("Munter")
	secondary := returning("munter")
	svc := newTestService(t, settingsWith(nil), primary, secondary)

	got, err := svc.Resolve(context.Background(), "xyzzy")

	require.NoError(t, err)
	assert.Equal(t, []string{"Munter", "munter"}, got)
}

// ---------------------------------------------------------------------------
// Fallback and failure
// ---------------------------------------------------------------------------

func TestService_Resolve_EmptyRemoteFallsBackToLocal(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, settingsWith(func(s *domain.Settings) {
		s.AlwaysTryOnline = true
		s.MaxSynonyms = 3
	}), returning(), returning())

	got, err := svc.Resolve(context.Background(), "glad")

	require.NoError(t, err)
	assert.Equal(t, []string{"munter", "lycklig", "upprymd"}, got)
}

func TestService_Resolve_EmptyRemoteNoFallback(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, settingsWith(func(s *domain.Settings) {
		s.AlwaysTryOnline = true
		s.FallbackToLocalDictionary = false
	}), returning(), returning())

	got, err := svc.Resolve(context.Background(), "glad")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_Resolve_AllUnreachableFallsBackToLocal(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, settingsWith(func(s *domain.Settings) {
		s.AlwaysTryOnline = true
		s.MaxSynonyms = 5
	}), unreachable(), unreachable())

	got, err := svc.Resolve(context.Background(), "snabb")

	require.NoError(t, err)
	assert.Equal(t, []string{"hastig", "kvick", "rapp", "vig", "flink"}, got)
}

func TestService_Resolve_AllUnreachableNoLocal(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, settingsWith(nil), unreachable(), unreachable())

	got, err := svc.Resolve(context.Background(), "xyzzy")

	require.Error(t, err)
	assert.Nil(t, got)

	var resErr *domain.ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, "xyzzy", resErr.Word)
	assert.True(t, resErr.Connectivity())
	assert.ErrorIs(t, err, domain.ErrResolution)
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestService_Resolve_AllUnreachableFallbackDisabled(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, settingsWith(func(s *domain.Settings) {
		s.AlwaysTryOnline = true
		s.FallbackToLocalDictionary = false
	}), unreachable(), unreachable())

	_, err := svc.Resolve(context.Background(), "glad")

	assert.ErrorIs(t, err, domain.ErrResolution)
}

func TestService_Resolve_OneSourceUnreachable(t *testing.T) {
	t.Parallel()

	dead := unreachable()
	secondary := returning("nöjd")
	svc := newTestService(t, settingsWith(func(s *domain.Settings) {
		s.FallbackToLocalDictionary = false
	}), dead, secondary)

	got, err := svc.Resolve(context.Background(), "xyzzy")

	require.NoError(t, err)
	assert.Equal(t, []string{"nöjd"}, got)
	assert.Equal(t, 1, dead.calls)
}

func TestService_Resolve_OneUnreachableOtherEmpty(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, settingsWith(func(s *domain.Settings) {
		s.FallbackToLocalDictionary = false
	}), unreachable(), returning())

	got, err := svc.Resolve(context.Background(), "xyzzy")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_Resolve_NoSourcesConfigured(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, settingsWith(func(s *domain.Settings) {
		s.AlwaysTryOnline = true
		s.MaxSynonyms = 3
	}))

	got, err := svc.Resolve(context.Background(), "glad")

	require.NoError(t, err)
	assert.Equal(t, []string{"munter", "lycklig", "upprymd"}, got)
}

// ---------------------------------------------------------------------------
// Invariants
// ---------------------------------------------------------------------------

func TestService_Resolve_NeverExceedsMaxAndNoDuplicates(t *testing.T) {
	t.Parallel()

	store, err := localdict.New()
	require.NoError(t, err)

	words := []string{"glad", "trött", "svag", "fort", "xyzzy", "prata"}
	remote := []string{"a", "b", "a", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q", "r", "s", "t", "u", "v"}

	for _, online := range []bool{false, true} {
		for _, limit := range []int{domain.MinSynonyms, 7, domain.MaxSynonyms} {
			settings := settingsWith(func(s *domain.Settings) {
				s.EnableOnlineLookup = online
				s.AlwaysTryOnline = online
				s.MaxSynonyms = limit
			})
			svc := NewService(slog.Default(), store, settings, returning(remote...), returning(remote...))

			for _, w := range words {
				got, err := svc.Resolve(context.Background(), w)
				require.NoError(t, err)
				assert.LessOrEqual(t, len(got), limit, "word=%s max=%d online=%v", w, limit, online)
				assertDistinct(t, got)
			}
		}
	}
}

type switchingSettings struct {
	values []domain.Settings
	n      int
}

func (s *switchingSettings) Settings() domain.Settings {
	v := s.values[min(s.n, len(s.values)-1)]
	s.n++
	return v
}

func TestService_Resolve_ReadsSettingsPerCall(t *testing.T) {
	t.Parallel()

	offline := domain.DefaultSettings()
	offline.EnableOnlineLookup = false
	offline.MaxSynonyms = 3

	wide := offline
	wide.MaxSynonyms = 6

	store, err := localdict.New()
	require.NoError(t, err)
	provider := &switchingSettings{values: []domain.Settings{offline, offline, wide}}
	svc := NewService(slog.Default(), store, provider)

	first, err := svc.Resolve(context.Background(), "stor")
	require.NoError(t, err)
	second, err := svc.Resolve(context.Background(), "stor")
	require.NoError(t, err)

	assert.Len(t, first, 3)
	assert.Len(t, second, 6)
}
