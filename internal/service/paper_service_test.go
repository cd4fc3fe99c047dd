package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lshigami/itimock/internal/dto"
	"github.com/lshigami/itimock/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 4, 28, 8, 35, 0, 0, time.UTC)

type paperFixture struct {
	svc       *paperService
	questions *fakeQuestionRepo
	papers    *fakePaperRepo
	trades    *fakeTradeRepo
}

func newPaperFixture(poolSize int, policy DuplicatePolicy) *paperFixture {
	f := &paperFixture{
		questions: newFakeQuestionRepo(1, 1, poolSize),
		papers:    &fakePaperRepo{},
		trades:    newFakeTradeRepo(model.Trade{ID: 1, Name: "Electrician"}),
	}
	f.svc = &paperService{
		pager:     NewQuestionPager(f.questions, 10, 100),
		paperRepo: f.papers,
		tradeRepo: f.trades,
		policy:    policy,
		rng:       rand.New(rand.NewPCG(1, 2)),
		now:       func() time.Time { return fixedNow },
	}
	return f
}

func generateReq(count int) dto.GeneratePaperRequest {
	return dto.GeneratePaperRequest{
		TradeID:   1,
		TradeName: "Electrician",
		Year:      1,
		QuesCount: dto.FlexInt(count),
		UserID:    "u1",
		UserName:  "Asha",
	}
}

func questionIDs(qs []model.PaperQuestion) []uint {
	ids := make([]uint, len(qs))
	for i, q := range qs {
		ids[i] = q.QuestionID
	}
	return ids
}

func TestGeneratePaperSamplesWithoutReplacement(t *testing.T) {
	f := newPaperFixture(50, DuplicatePolicyIdempotent)

	resp, err := f.svc.GeneratePaper(context.Background(), generateReq(20))
	require.NoError(t, err)

	assert.Regexp(t, paperCodePattern, resp.PaperID)
	assert.Equal(t, "ELE202504281405", resp.PaperID[:15])
	assert.NotEmpty(t, resp.DocumentID)
	assert.Empty(t, resp.Message)

	paper, err := f.papers.FindByID(context.Background(), resp.DocumentID)
	require.NoError(t, err)
	assert.Len(t, paper.Questions, 20)
	assert.Equal(t, 20, paper.QuesCount)
	assert.Equal(t, "u1", paper.UserID)
	assert.False(t, paper.Submitted)

	seen := map[uint]bool{}
	for _, q := range paper.Questions {
		assert.False(t, seen[q.QuestionID], "question %d drawn twice", q.QuestionID)
		seen[q.QuestionID] = true
		assert.Nil(t, q.Response)
		assert.Equal(t, uint(1), q.TradeID)
		assert.Equal(t, 1, q.Year)
		assert.NotEmpty(t, q.CorrectAnswer)
	}
}

func TestGeneratePaperShortPoolIssuesWholePool(t *testing.T) {
	f := newPaperFixture(7, DuplicatePolicyIdempotent)

	resp, err := f.svc.GeneratePaper(context.Background(), generateReq(25))
	require.NoError(t, err)

	paper, err := f.papers.FindByID(context.Background(), resp.DocumentID)
	require.NoError(t, err)
	assert.Len(t, paper.Questions, 7)
	assert.ElementsMatch(t, []uint{1, 2, 3, 4, 5, 6, 7}, questionIDs(paper.Questions))
	assert.Equal(t, 25, paper.QuesCount)
}

func TestGeneratePaperEmptyPool(t *testing.T) {
	f := newPaperFixture(0, DuplicatePolicyIdempotent)

	resp, err := f.svc.GeneratePaper(context.Background(), generateReq(5))

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPoolEmpty)
	assert.Zero(t, f.papers.creates)
}

func TestGeneratePaperValidation(t *testing.T) {
	f := newPaperFixture(10, DuplicatePolicyIdempotent)
	cases := map[string]func(*dto.GeneratePaperRequest){
		"missing trade":  func(r *dto.GeneratePaperRequest) { r.TradeID = 0 },
		"zero year":      func(r *dto.GeneratePaperRequest) { r.Year = 0 },
		"zero count":     func(r *dto.GeneratePaperRequest) { r.QuesCount = 0 },
		"negative count": func(r *dto.GeneratePaperRequest) { r.QuesCount = -3 },
		"blank user":     func(r *dto.GeneratePaperRequest) { r.UserID = "  " },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := generateReq(5)
			mutate(&req)
			_, err := f.svc.GeneratePaper(context.Background(), req)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
	assert.Zero(t, f.papers.creates)
}

func TestGeneratePaperResolvesTradeName(t *testing.T) {
	f := newPaperFixture(10, DuplicatePolicyIdempotent)
	req := generateReq(3)
	req.TradeName = ""

	resp, err := f.svc.GeneratePaper(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ELE", resp.PaperID[:3])

	req.TradeID = 99
	_, err = f.svc.GeneratePaper(context.Background(), req)
	assert.ErrorIs(t, err, ErrTradeNotFound)
}

func TestGeneratePaperStoreFailure(t *testing.T) {
	f := newPaperFixture(10, DuplicatePolicyIdempotent)
	f.papers.createErr = errors.New("disk full")

	_, err := f.svc.GeneratePaper(context.Background(), generateReq(3))

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "disk full")
}

func TestGeneratePaperRerollsTakenCode(t *testing.T) {
	f := newPaperFixture(10, DuplicatePolicyIdempotent)
	// replay the service's generator: a shuffle of the 10-question pool, then the first code roll
	rng := rand.New(rand.NewPCG(1, 2))
	shuffle(make([]int, 10), rng)
	taken := newPaperCode("Electrician", fixedNow, rng)
	require.NoError(t, f.papers.Create(context.Background(), &model.Paper{PaperCode: taken, UserID: "someone"}))

	resp, err := f.svc.GeneratePaper(context.Background(), generateReq(3))
	require.NoError(t, err)
	assert.NotEqual(t, taken, resp.PaperID)
}

func seedSource(t *testing.T, f *paperFixture, count int) *dto.PaperIssueResponse {
	t.Helper()
	resp, err := f.svc.GeneratePaper(context.Background(), generateReq(count))
	require.NoError(t, err)
	return resp
}

func TestClonePaperSameMultisetFreshResponses(t *testing.T) {
	f := newPaperFixture(40, DuplicatePolicyIdempotent)
	src := seedSource(t, f, 30)

	// the source owner answers a question; the clone must not inherit it
	answered := "A"
	f.papers.papers[0].Questions[0].Response = &answered

	resp, err := f.svc.ClonePaper(context.Background(), dto.ClonePaperRequest{PaperCode: src.PaperID, UserID: "u2", UserName: "Ravi"})
	require.NoError(t, err)
	assert.Equal(t, src.PaperID, resp.PaperID)
	assert.NotEqual(t, src.DocumentID, resp.DocumentID)
	assert.Empty(t, resp.Message)
	assert.False(t, resp.AlreadyExists)

	source, _ := f.papers.FindByID(context.Background(), src.DocumentID)
	clone, _ := f.papers.FindByID(context.Background(), resp.DocumentID)
	assert.ElementsMatch(t, questionIDs(source.Questions), questionIDs(clone.Questions))
	assert.NotEqual(t, questionIDs(source.Questions), questionIDs(clone.Questions), "30 questions should not keep their order")
	for _, q := range clone.Questions {
		assert.Nil(t, q.Response)
	}
	assert.Equal(t, "u2", clone.UserID)
	assert.Equal(t, source.TradeName, clone.TradeName)
	assert.Equal(t, source.QuesCount, clone.QuesCount)

	// the source keeps its own response
	require.NotNil(t, source.Questions[0].Response)
	assert.Equal(t, "A", *source.Questions[0].Response)
}

func TestClonePaperAcceptsLowercaseCode(t *testing.T) {
	f := newPaperFixture(10, DuplicatePolicyIdempotent)
	src := seedSource(t, f, 5)

	resp, err := f.svc.ClonePaper(context.Background(), dto.ClonePaperRequest{PaperCode: " " + strings.ToLower(src.PaperID) + " ", UserID: "u2"})
	require.NoError(t, err)
	assert.Equal(t, src.PaperID, resp.PaperID)
}

func TestClonePaperUnknownOrMalformedCode(t *testing.T) {
	f := newPaperFixture(10, DuplicatePolicyIdempotent)

	_, err := f.svc.ClonePaper(context.Background(), dto.ClonePaperRequest{PaperCode: "ELE202504281405ZZ", UserID: "u2"})
	assert.ErrorIs(t, err, ErrPaperNotFound)

	_, err = f.svc.ClonePaper(context.Background(), dto.ClonePaperRequest{PaperCode: "not-a-code", UserID: "u2"})
	assert.ErrorIs(t, err, ErrInvalidPaperCode)

	assert.Zero(t, f.papers.creates)
}

func TestClonePaperIdempotentForRepeatUser(t *testing.T) {
	f := newPaperFixture(10, DuplicatePolicyIdempotent)
	src := seedSource(t, f, 5)
	req := dto.ClonePaperRequest{PaperCode: src.PaperID, UserID: "u2"}

	first, err := f.svc.ClonePaper(context.Background(), req)
	require.NoError(t, err)
	second, err := f.svc.ClonePaper(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.DocumentID, second.DocumentID)
	assert.Equal(t, alreadyGeneratedMessage, second.Message)
	assert.True(t, second.AlreadyExists)
	assert.Equal(t, 1, f.papers.countFor(src.PaperID, "u2"))
}

func TestClonePaperOwnerGetsOwnPaperBack(t *testing.T) {
	f := newPaperFixture(10, DuplicatePolicyIdempotent)
	src := seedSource(t, f, 5)

	resp, err := f.svc.ClonePaper(context.Background(), dto.ClonePaperRequest{PaperCode: src.PaperID, UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, src.DocumentID, resp.DocumentID)
	assert.True(t, resp.AlreadyExists)
}

func TestClonePaperRejectPolicy(t *testing.T) {
	f := newPaperFixture(10, DuplicatePolicyReject)
	src := seedSource(t, f, 5)
	req := dto.ClonePaperRequest{PaperCode: src.PaperID, UserID: "u2"}

	_, err := f.svc.ClonePaper(context.Background(), req)
	require.NoError(t, err)
	_, err = f.svc.ClonePaper(context.Background(), req)

	assert.ErrorIs(t, err, ErrDuplicateAttempt)
	assert.Equal(t, 1, f.papers.countFor(src.PaperID, "u2"))
}

func TestClonePaperLosesRaceToConcurrentInsert(t *testing.T) {
	f := newPaperFixture(10, DuplicatePolicyIdempotent)
	src := seedSource(t, f, 5)
	require.NoError(t, f.papers.Create(context.Background(), &model.Paper{PaperCode: src.PaperID, UserID: "u2"}))
	winner := f.papers.papers[1].ID
	// the code lookup does not yet see u2's row, so the insert hits the unique index
	f.papers.hideUserFromList = "u2"

	resp, err := f.svc.ClonePaper(context.Background(), dto.ClonePaperRequest{PaperCode: src.PaperID, UserID: "u2"})
	require.NoError(t, err)
	assert.Equal(t, winner, resp.DocumentID)
	assert.Equal(t, alreadyGeneratedMessage, resp.Message)
	assert.Equal(t, 1, f.papers.countFor(src.PaperID, "u2"))
}

func TestClonePaperConcurrentRequestsCreateOneCopy(t *testing.T) {
	f := newPaperFixture(20, DuplicatePolicyIdempotent)
	src := seedSource(t, f, 10)
	// the seeded *rand.Rand is not goroutine safe
	f.svc.rng = globalRand{}

	var wg sync.WaitGroup
	docs := make([]string, 8)
	for i := range docs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := f.svc.ClonePaper(context.Background(), dto.ClonePaperRequest{PaperCode: src.PaperID, UserID: "u2"})
			if assert.NoError(t, err) {
				docs[i] = resp.DocumentID
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, f.papers.countFor(src.PaperID, "u2"))
	for _, d := range docs {
		assert.Equal(t, docs[0], d)
	}
}

func TestGetPaperHidesAnswersUntilSubmitted(t *testing.T) {
	f := newPaperFixture(10, DuplicatePolicyIdempotent)
	src := seedSource(t, f, 4)

	detail, err := f.svc.GetPaper(context.Background(), src.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, src.PaperID, detail.PaperCode)
	require.Len(t, detail.Questions, 4)
	for _, q := range detail.Questions {
		assert.Empty(t, q.CorrectAnswer)
	}

	f.papers.papers[0].Submitted = true
	detail, err = f.svc.GetPaper(context.Background(), src.DocumentID)
	require.NoError(t, err)
	for _, q := range detail.Questions {
		assert.NotEmpty(t, q.CorrectAnswer)
	}

	_, err = f.svc.GetPaper(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPaperNotFound)
}

func TestListUserPapers(t *testing.T) {
	f := newPaperFixture(10, DuplicatePolicyIdempotent)
	first := seedSource(t, f, 3)
	f.svc.now = func() time.Time { return fixedNow.Add(time.Hour) }
	second := seedSource(t, f, 3)

	papers, err := f.svc.ListUserPapers(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, papers, 2)
	assert.Equal(t, second.DocumentID, papers[0].ID)
	assert.Equal(t, first.DocumentID, papers[1].ID)

	papers, err = f.svc.ListUserPapers(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, papers)

	_, err = f.svc.ListUserPapers(context.Background(), "")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}
