package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assurscore/adapters/catalog"
	"assurscore/adapters/memory"
	"assurscore/domain/analysis"
	"assurscore/domain/analysis/strategies"
	"assurscore/domain/core"
	"assurscore/domain/insurance"
	"assurscore/domain/questionnaire"
)

func newTestServices(t *testing.T) (*QuestionnaireService, *AnalysisService, *memory.SessionRepository, *memory.AnalysisRepository) {
	t.Helper()
	sessions := memory.NewSessionRepository()
	analyses := memory.NewAnalysisRepository()
	registry := analysis.NewRegistry()
	strategies.RegisterAll(registry)
	engine := analysis.NewEngine(registry, nil)
	q := NewQuestionnaireService(sessions, analyses, catalog.New(), engine)
	a := NewAnalysisService(analyses, engine)
	return q, a, sessions, analyses
}

// autoAnswers drives a full auto questionnaire walk. None of these values
// trigger a follow-up question.
var autoAnswers = map[string]interface{}{
	"vehicule_usage":     "quotidien",
	"age_conducteur":     float64(40),
	"anciennete_permis":  "plus_5_ans",
	"type_couverture":    "tiers_plus",
	"franchise":          float64(300),
	"sinistres_3_ans":    "0",
	"garanties_incluses": []string{"assistance_0km", "protection_juridique"},
	"prime_mensuelle":    float64(45),
}

// walkToEnd answers every presented question from the given answer map until
// the walk reports the end of the sequence.
func walkToEnd(t *testing.T, svc *QuestionnaireService, sessionID core.SessionID, first questionnaire.Question, answers map[string]interface{}) *NextResult {
	t.Helper()
	ctx := context.Background()
	q := first
	for i := 0; i < 50; i++ {
		answer, ok := answers[q.ID]
		require.True(t, ok, "no scripted answer for question %s", q.ID)
		res, err := svc.Next(ctx, sessionID, q.ID, answer)
		require.NoError(t, err)
		if res.Complete {
			return res
		}
		require.NotNil(t, res.Question)
		q = *res.Question
	}
	t.Fatal("questionnaire never completed")
	return nil
}

func TestStart(t *testing.T) {
	svc, _, _, _ := newTestServices(t)

	res, err := svc.Start(context.Background(), insurance.TypeAuto, "", 0)
	require.NoError(t, err)

	assert.False(t, res.SessionID.IsEmpty())
	assert.Equal(t, "vehicule_usage", res.Question.ID)
	assert.Equal(t, 1, res.Progress.Current)
	assert.Greater(t, res.Progress.Total, 1)
}

func TestStart_UnknownType(t *testing.T) {
	svc, _, _, _ := newTestServices(t)

	_, err := svc.Start(context.Background(), insurance.Type("vie"), "", 0)
	assert.True(t, core.IsValidationError(err))
}

func TestNext_FullWalkAndComplete(t *testing.T) {
	svc, _, _, analyses := newTestServices(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, insurance.TypeAuto, "", 0)
	require.NoError(t, err)

	end := walkToEnd(t, svc, start.SessionID, start.Question, autoAnswers)
	assert.True(t, end.CanComplete)

	completed, err := svc.Complete(ctx, start.SessionID)
	require.NoError(t, err)
	require.NotNil(t, completed.Analysis)
	assert.Equal(t, insurance.TypeAuto, completed.InsuranceType)
	assert.GreaterOrEqual(t, completed.Analysis.Score, 0)
	assert.LessOrEqual(t, completed.Analysis.Score, 100)

	stored, err := analyses.Get(ctx, completed.AnalysisID)
	require.NoError(t, err)
	assert.Equal(t, start.SessionID, stored.SessionID)
	assert.False(t, stored.IsUnlocked)

	// The session is now terminal; further answers are rejected.
	_, err = svc.Next(ctx, start.SessionID, "franchise", float64(200))
	assert.True(t, core.IsInvalidStateError(err))
}

func TestNext_UnderageDriverProducesDanger(t *testing.T) {
	svc, _, _, _ := newTestServices(t)
	ctx := context.Background()

	answers := make(map[string]interface{}, len(autoAnswers))
	for k, v := range autoAnswers {
		answers[k] = v
	}
	answers["age_conducteur"] = float64(17)

	start, err := svc.Start(ctx, insurance.TypeAuto, "", 0)
	require.NoError(t, err)
	walkToEnd(t, svc, start.SessionID, start.Question, answers)

	completed, err := svc.Complete(ctx, start.SessionID)
	require.NoError(t, err)

	assert.Less(t, completed.Analysis.Score, analysis.ScoreBaseline)
	var danger bool
	for _, in := range completed.Analysis.Insights {
		if in.Status == analysis.StatusDanger {
			danger = true
		}
	}
	assert.True(t, danger)
}

func TestNext_FollowUpAppearsInWalk(t *testing.T) {
	svc, _, _, _ := newTestServices(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, insurance.TypeAuto, "", 0)
	require.NoError(t, err)
	sid := start.SessionID

	res, err := svc.Next(ctx, sid, "vehicule_usage", "quotidien")
	require.NoError(t, err)
	res, err = svc.Next(ctx, sid, res.Question.ID, float64(40))
	require.NoError(t, err)
	require.Equal(t, "anciennete_permis", res.Question.ID)

	// This answer unlocks the accompanied-driving follow-up.
	res, err = svc.Next(ctx, sid, "anciennete_permis", "moins_2_ans")
	require.NoError(t, err)
	require.NotNil(t, res.Question)
	assert.Equal(t, "conduite_accompagnee", res.Question.ID)
}

func TestNext_QuestionMismatch(t *testing.T) {
	svc, _, _, _ := newTestServices(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, insurance.TypeAuto, "", 0)
	require.NoError(t, err)

	_, err = svc.Next(ctx, start.SessionID, "franchise", float64(300))
	assert.True(t, core.IsValidationError(err))
}

func TestNext_NilAnswerOnRequiredQuestion(t *testing.T) {
	svc, _, _, _ := newTestServices(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, insurance.TypeAuto, "", 0)
	require.NoError(t, err)

	_, err = svc.Next(ctx, start.SessionID, "vehicule_usage", nil)
	assert.True(t, core.IsValidationError(err))
}

func TestNext_UnknownSession(t *testing.T) {
	svc, _, _, _ := newTestServices(t)

	_, err := svc.Next(context.Background(), core.SessionID(core.NewID()), "vehicule_usage", "quotidien")
	assert.True(t, core.IsNotFoundError(err))
}

func TestPrev(t *testing.T) {
	svc, _, _, _ := newTestServices(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, insurance.TypeAuto, "", 0)
	require.NoError(t, err)
	sid := start.SessionID

	// At the first question, prev is refused and the pointer stays put.
	_, err = svc.Prev(ctx, sid)
	assert.True(t, core.IsInvalidStateError(err))

	resumed, err := svc.Resume(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, 1, resumed.Progress.Current)

	_, err = svc.Next(ctx, sid, "vehicule_usage", "quotidien")
	require.NoError(t, err)

	prev, err := svc.Prev(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "vehicule_usage", prev.Question.ID)
	assert.Equal(t, 1, prev.Progress.Current)
}

func TestComplete_RefusedWithOpenRequiredQuestions(t *testing.T) {
	svc, _, _, _ := newTestServices(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, insurance.TypeAuto, "", 0)
	require.NoError(t, err)

	_, err = svc.Next(ctx, start.SessionID, "vehicule_usage", "quotidien")
	require.NoError(t, err)

	_, err = svc.Complete(ctx, start.SessionID)
	assert.True(t, core.IsInvalidStateError(err))
}

func TestSaveDraftAndResume(t *testing.T) {
	svc, _, sessions, _ := newTestServices(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, insurance.TypeHabitation, "", 0)
	require.NoError(t, err)

	draftID, err := svc.SaveDraft(ctx, start.SessionID, "claire@example.fr")
	require.NoError(t, err)
	assert.Equal(t, start.SessionID, draftID)

	stored, err := sessions.Get(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "claire@example.fr", stored.ContactEmail)
	assert.Equal(t, questionnaire.StatusInProgress, stored.Status)

	resumed, err := svc.Resume(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, questionnaire.StatusInProgress, resumed.Status)
	require.NotNil(t, resumed.Question)
	assert.Equal(t, start.Question.ID, resumed.Question.ID)
}

func TestAbandon(t *testing.T) {
	svc, _, _, _ := newTestServices(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, insurance.TypeGAV, "", 0)
	require.NoError(t, err)

	require.NoError(t, svc.Abandon(ctx, start.SessionID))

	// Abandoned sessions refuse answers and a second abandon.
	_, err = svc.Next(ctx, start.SessionID, "situation_famille", "celibataire")
	assert.True(t, core.IsInvalidStateError(err))
	assert.True(t, core.IsInvalidStateError(svc.Abandon(ctx, start.SessionID)))

	resumed, err := svc.Resume(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, questionnaire.StatusAbandoned, resumed.Status)
	assert.Nil(t, resumed.Question)
}

func TestResume_CompletedSessionCarriesAnalysisID(t *testing.T) {
	svc, _, _, _ := newTestServices(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, insurance.TypeAuto, "", 0)
	require.NoError(t, err)
	walkToEnd(t, svc, start.SessionID, start.Question, autoAnswers)
	completed, err := svc.Complete(ctx, start.SessionID)
	require.NoError(t, err)

	resumed, err := svc.Resume(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, questionnaire.StatusCompleted, resumed.Status)
	assert.Equal(t, completed.AnalysisID, resumed.AnalysisID)
	assert.Nil(t, resumed.Question)
}

func TestVerifySessionOwnership(t *testing.T) {
	svc, _, _, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svc.VerifySessionOwnership(ctx, core.SessionID(core.NewID()), "user-1")
	assert.True(t, core.IsNotFoundError(err))

	anon, err := svc.Start(ctx, insurance.TypeAuto, "", 0)
	require.NoError(t, err)
	_, err = svc.VerifySessionOwnership(ctx, anon.SessionID, "user-1")
	assert.NoError(t, err, "anonymous sessions are open to any caller")

	owned, err := svc.Start(ctx, insurance.TypeAuto, "user-1", 0)
	require.NoError(t, err)
	_, err = svc.VerifySessionOwnership(ctx, owned.SessionID, "user-1")
	assert.NoError(t, err)
	_, err = svc.VerifySessionOwnership(ctx, owned.SessionID, "user-2")
	assert.True(t, core.IsForbiddenError(err))
}

func TestComplete_BoundSessionAttachesUserToResult(t *testing.T) {
	svc, _, _, analyses := newTestServices(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, insurance.TypeAuto, "user-7", 0)
	require.NoError(t, err)
	walkToEnd(t, svc, start.SessionID, start.Question, autoAnswers)

	completed, err := svc.Complete(ctx, start.SessionID)
	require.NoError(t, err)

	stored, err := analyses.Get(ctx, completed.AnalysisID)
	require.NoError(t, err)
	assert.Equal(t, core.UserID("user-7"), stored.UserID)
}
