package unit

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/optfm/faq-engine/internal/domain/faq"
	"github.com/optfm/faq-engine/internal/infra/corpusbolt"
	"github.com/optfm/faq-engine/internal/infra/corpusfile"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEngineBootstrapsWithDefaultCorpus(t *testing.T) {
	ctx := context.Background()
	store := corpusfile.New(filepath.Join(t.TempDir(), "faq.json"))
	eng := faq.NewEngine(faq.DefaultConfig(), store, newTestLogger())

	require.NoError(t, eng.Reload(ctx))
	require.Len(t, eng.All(), len(faq.DefaultEntries()))

	match, ok := eng.Search("доставка")
	require.True(t, ok)
	require.EqualValues(t, 4, match.Entry.ID)
}

func TestEngineSurvivesRestartThroughFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "faq.json")

	eng := faq.NewEngine(faq.DefaultConfig(), corpusfile.New(path), newTestLogger())
	require.NoError(t, eng.Reload(ctx))

	added, err := eng.Add(ctx, "Продаете ли вы сельхозтехнику?", "Нет, только электронику.", []string{"трактор"})
	require.NoError(t, err)

	// a fresh engine over the same file sees the mutation
	restarted := faq.NewEngine(faq.DefaultConfig(), corpusfile.New(path), newTestLogger())
	require.NoError(t, restarted.Reload(ctx))

	match, ok := restarted.Search("трактор")
	require.True(t, ok)
	require.Equal(t, added.ID, match.Entry.ID)
	require.Equal(t, faq.TierKeyword, match.Tier)
}

func TestEngineWorksOverBoltStore(t *testing.T) {
	ctx := context.Background()
	store, err := corpusbolt.Open(filepath.Join(t.TempDir(), "faq.db"))
	require.NoError(t, err)
	defer store.Close()

	eng := faq.NewEngine(faq.DefaultConfig(), store, newTestLogger())
	require.NoError(t, eng.Reload(ctx))
	require.Len(t, eng.All(), len(faq.DefaultEntries()))

	_, err = eng.Add(ctx, "Где находится склад?", "Адрес вышлем по запросу.", []string{"склад"})
	require.NoError(t, err)

	reopened := faq.NewEngine(faq.DefaultConfig(), store, newTestLogger())
	require.NoError(t, reopened.Reload(ctx))
	require.Len(t, reopened.All(), len(faq.DefaultEntries())+1)
}

func TestWatcherDrivesReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "faq.json")
	store := corpusfile.New(path)
	require.NoError(t, store.Save(ctx, faq.DefaultEntries()))

	eng := faq.NewEngine(faq.DefaultConfig(), store, newTestLogger())
	require.NoError(t, eng.Reload(ctx))

	watcher, err := corpusfile.Watch(path, eng.Reload, newTestLogger())
	require.NoError(t, err)
	defer watcher.Stop()

	// an external writer replaces the corpus behind the engine's back
	external := corpusfile.New(path)
	require.NoError(t, external.Save(ctx, []faq.Entry{
		{ID: 1, Question: "Единственный вопрос?", Answer: "Единственный ответ.", Keywords: []string{"вопрос"}},
	}))

	require.Eventually(t, func() bool {
		return len(eng.All()) == 1
	}, 3*time.Second, 25*time.Millisecond)
}
