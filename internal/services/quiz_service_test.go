package services

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karimfs/matchday/internal/models"
	"github.com/karimfs/matchday/internal/quiz"
	"github.com/karimfs/matchday/internal/repository"
)

type fakeSeenRepo struct {
	seen   map[models.QuizLevel][]int
	resets int
}

func newFakeSeenRepo() *fakeSeenRepo {
	return &fakeSeenRepo{seen: make(map[models.QuizLevel][]int)}
}

func (f *fakeSeenRepo) SeenIDs(ctx context.Context, clientID string, level models.QuizLevel) ([]int, error) {
	return f.seen[level], nil
}

func (f *fakeSeenRepo) MarkSeen(ctx context.Context, clientID string, level models.QuizLevel, id int) error {
	f.seen[level] = append(f.seen[level], id)
	return nil
}

func (f *fakeSeenRepo) Reset(ctx context.Context, clientID string, level models.QuizLevel) error {
	f.resets++
	delete(f.seen, level)
	return nil
}

type fakeResultRepo struct {
	inserted chan models.QuizResult
	results  []models.QuizResult
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{inserted: make(chan models.QuizResult, 8)}
}

func (f *fakeResultRepo) Insert(ctx context.Context, r models.QuizResult) (int64, error) {
	f.inserted <- r
	return 1, nil
}

func (f *fakeResultRepo) List(ctx context.Context, clientID string, filter repository.QuizResultFilter) ([]models.QuizResult, error) {
	return f.results, nil
}

func (f *fakeResultRepo) BestScores(ctx context.Context, clientID string) ([]models.QuizBestScore, error) {
	return nil, nil
}

func newTestQuizService(t *testing.T, seen *fakeSeenRepo, results *fakeResultRepo) QuizService {
	t.Helper()
	svc := NewQuizService(seen, results,
		WithRandSource(func() *rand.Rand { return rand.New(rand.NewSource(1)) }),
		// Keep the real ticker out of the way; timeout paths drive ticks
		// directly.
		WithTickInterval(time.Hour),
	)
	t.Cleanup(svc.Close)
	return svc
}

func TestQuizService_StartHidesAnswer(t *testing.T) {
	svc := newTestQuizService(t, newFakeSeenRepo(), newFakeResultRepo())

	state, err := svc.Start(context.Background(), "client-a", "en", models.LevelIntermediate)
	require.NoError(t, err)

	assert.Equal(t, PhaseInProgress, state.Phase)
	assert.Equal(t, quiz.SessionLength, state.Total)
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, quiz.CountdownStart, state.Countdown)
	require.NotNil(t, state.Question)
	assert.NotEmpty(t, state.Question.Options)
	assert.Empty(t, state.Question.Answer, "answer must be withheld until answered")
	assert.Empty(t, state.Question.Explanation)
}

func TestQuizService_StartRejectsUnknownLevel(t *testing.T) {
	svc := newTestQuizService(t, newFakeSeenRepo(), newFakeResultRepo())

	_, err := svc.Start(context.Background(), "client-a", "en", models.QuizLevel("expert"))
	assert.Error(t, err)
}

func TestQuizService_AnswerScoresAndMarksSeen(t *testing.T) {
	seen := newFakeSeenRepo()
	svc := newTestQuizService(t, seen, newFakeResultRepo())

	state, err := svc.Start(context.Background(), "client-a", "en", models.LevelIntermediate)
	require.NoError(t, err)

	// The snapshot hides the answer, so fetch it from the catalog.
	catalog, ok := quiz.ForLevel("en", models.LevelIntermediate)
	require.True(t, ok)
	var correct string
	for _, q := range catalog.Questions {
		if q.ID == state.Question.ID {
			correct = q.Answer
		}
	}
	require.NotEmpty(t, correct)

	state, err = svc.Answer(context.Background(), "client-a", correct)
	require.NoError(t, err)

	assert.Equal(t, 1, state.Score)
	assert.True(t, state.Answered)
	assert.True(t, state.ShowExplanation)
	assert.Equal(t, correct, state.Selected)
	assert.Equal(t, correct, state.Question.Answer, "answer revealed after answering")
	assert.Contains(t, seen.seen[models.LevelIntermediate], state.Question.ID)
}

func TestQuizService_AnswerWithoutSession(t *testing.T) {
	svc := newTestQuizService(t, newFakeSeenRepo(), newFakeResultRepo())

	_, err := svc.Answer(context.Background(), "nobody", "anything")
	assert.Error(t, err)
}

func TestQuizService_FinishRecordsResult(t *testing.T) {
	results := newFakeResultRepo()
	svc := newTestQuizService(t, newFakeSeenRepo(), results)

	_, err := svc.Start(context.Background(), "client-a", "en", models.LevelAdvanced)
	require.NoError(t, err)

	var state *QuizState
	for i := 0; i < quiz.SessionLength; i++ {
		state, err = svc.Answer(context.Background(), "client-a", "whatever")
		require.NoError(t, err)
		state, err = svc.Advance(context.Background(), "client-a")
		require.NoError(t, err)
	}
	assert.Equal(t, PhaseFinished, state.Phase)
	assert.Nil(t, state.Question)

	select {
	case r := <-results.inserted:
		assert.Equal(t, "client-a", r.ClientID)
		assert.Equal(t, models.LevelAdvanced, r.Level)
		assert.Equal(t, quiz.SessionLength, r.Total)
	case <-time.After(2 * time.Second):
		t.Fatal("quiz result was never recorded")
	}

	// The finished session remains readable until quit or restart.
	assert.Equal(t, PhaseFinished, svc.State(context.Background(), "client-a").Phase)
}

func TestQuizService_QuitClearsSession(t *testing.T) {
	svc := newTestQuizService(t, newFakeSeenRepo(), newFakeResultRepo())

	_, err := svc.Start(context.Background(), "client-a", "en", models.LevelChampion)
	require.NoError(t, err)
	require.NoError(t, svc.Quit(context.Background(), "client-a"))

	assert.Equal(t, PhaseLevelSelect, svc.State(context.Background(), "client-a").Phase)
}

func TestQuizService_RestartReplacesSession(t *testing.T) {
	svc := newTestQuizService(t, newFakeSeenRepo(), newFakeResultRepo())

	first, err := svc.Start(context.Background(), "client-a", "en", models.LevelIntermediate)
	require.NoError(t, err)
	_, err = svc.Answer(context.Background(), "client-a", "whatever")
	require.NoError(t, err)

	second, err := svc.Start(context.Background(), "client-a", "en", models.LevelAdvanced)
	require.NoError(t, err)

	assert.Equal(t, models.LevelIntermediate, first.Level)
	assert.Equal(t, models.LevelAdvanced, second.Level)
	assert.Equal(t, 0, second.Score, "new session starts fresh")
	assert.False(t, second.Answered)
}

func TestQuizService_ExhaustedHistoryResets(t *testing.T) {
	seen := newFakeSeenRepo()
	catalog, ok := quiz.ForLevel("en", models.LevelIntermediate)
	require.True(t, ok)
	for _, q := range catalog.Questions {
		seen.seen[models.LevelIntermediate] = append(seen.seen[models.LevelIntermediate], q.ID)
	}
	svc := newTestQuizService(t, seen, newFakeResultRepo())

	state, err := svc.Start(context.Background(), "client-a", "en", models.LevelIntermediate)
	require.NoError(t, err)

	assert.Equal(t, PhaseInProgress, state.Phase)
	assert.Equal(t, 1, seen.resets)
	assert.Empty(t, seen.seen[models.LevelIntermediate])
}

func TestQuizService_TimeoutAdvancesWithoutScore(t *testing.T) {
	seen := newFakeSeenRepo()
	svc := newTestQuizService(t, seen, newFakeResultRepo()).(*quizService)

	_, err := svc.Start(context.Background(), "client-a", "en", models.LevelIntermediate)
	require.NoError(t, err)

	svc.mu.Lock()
	rt := svc.sessions["client-a"]
	svc.mu.Unlock()
	require.NotNil(t, rt)

	for i := 0; i < quiz.CountdownStart; i++ {
		svc.tick("client-a", rt)
	}

	state := svc.State(context.Background(), "client-a")
	assert.Equal(t, 1, state.Index, "countdown expiry skips to the next question")
	assert.Equal(t, 0, state.Score)
	assert.Equal(t, quiz.CountdownStart, state.Countdown)
	assert.Empty(t, seen.seen[models.LevelIntermediate], "timed-out questions are not marked seen")
}

func TestQuizService_StaleTickIgnored(t *testing.T) {
	svc := newTestQuizService(t, newFakeSeenRepo(), newFakeResultRepo()).(*quizService)

	_, err := svc.Start(context.Background(), "client-a", "en", models.LevelIntermediate)
	require.NoError(t, err)
	svc.mu.Lock()
	old := svc.sessions["client-a"]
	svc.mu.Unlock()

	_, err = svc.Start(context.Background(), "client-a", "en", models.LevelIntermediate)
	require.NoError(t, err)

	svc.tick("client-a", old)

	state := svc.State(context.Background(), "client-a")
	assert.Equal(t, quiz.CountdownStart, state.Countdown, "tick for a replaced session must not touch the new one")
}
