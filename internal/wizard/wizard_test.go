package wizard

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	keyTitle  FieldKey = "title"
	keyTags   FieldKey = "tags"
	keyAgreed FieldKey = "agreed"
	keyJobs   FieldKey = "jobs"
)

type fakeAuth bool

func (a fakeAuth) Authenticated() bool { return bool(a) }

func testDefinition() Definition {
	return Definition{
		Name: "test",
		Steps: []StepDefinition{
			{ID: 1, Title: "One", RequiredFields: []FieldKey{keyTitle}},
			{ID: 2, Title: "Two", RequiredFields: []FieldKey{keyTags}},
			{ID: 3, Title: "Three", RequiredFields: []FieldKey{keyAgreed}},
		},
		Fields: []FieldDefinition{
			{Key: keyTitle, Kind: KindString},
			{Key: keyTags, Kind: KindList},
			{Key: keyAgreed, Kind: KindBool},
			{Key: keyJobs, Kind: KindRecords},
		},
		Encode: func(s *Store) (any, error) {
			return map[string]any{"title": s.String(keyTitle), "tags": s.List(keyTags)}, nil
		},
	}
}

type recordingSubmitter struct {
	calls   int
	payload any
	err     error
}

func (r *recordingSubmitter) Submit(_ context.Context, _ string, payload any) (Result, error) {
	r.calls++
	r.payload = payload
	if r.err != nil {
		return Result{}, r.err
	}
	return Result{ID: "42", Resource: "/things/42"}, nil
}

func newTestWizard(t *testing.T, opts ...Option) *Wizard {
	t.Helper()
	w, err := New(testDefinition(), opts...)
	require.NoError(t, err)
	return w
}

func fill(t *testing.T, w *Wizard) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, w.Dispatch(ctx, SetField{Key: keyTitle, Value: String("x")}))
	require.NoError(t, w.Dispatch(ctx, AddItem{Key: keyTags, Item: "a"}))
	require.NoError(t, w.Dispatch(ctx, SetField{Key: keyAgreed, Value: Bool(true)}))
}

func TestSequencerClampsUnderRandomMoves(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		steps := make([]StepDefinition, n)
		for i := range steps {
			steps[i] = StepDefinition{ID: i + 1}
		}
		seq := NewSequencer(steps)
		r := rand.New(rand.NewSource(int64(n)))

		for i := 0; i < 500; i++ {
			switch r.Intn(3) {
			case 0:
				seq.Advance()
			case 1:
				seq.Retreat()
			default:
				seq.JumpTo(r.Intn(20) - 10)
			}
			if seq.Current() < 1 || seq.Current() > n {
				t.Fatalf("n=%d: current step %d out of [1,%d]", n, seq.Current(), n)
			}
		}
	}
}

func TestJumpToClamps(t *testing.T) {
	tests := []struct {
		name string
		to   int
		want int
	}{
		{"below range", -3, 1},
		{"zero", 0, 1},
		{"inside", 2, 2},
		{"last", 3, 3},
		{"above range", 99, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWizard(t)
			require.NoError(t, w.Dispatch(context.Background(), JumpTo{Step: tt.to}))
			assert.Equal(t, tt.want, w.CurrentStep())
		})
	}
}

func TestAdvanceBlockedByGate(t *testing.T) {
	ctx := context.Background()
	w := newTestWizard(t)

	require.NoError(t, w.Dispatch(ctx, Advance{}))
	assert.Equal(t, 1, w.CurrentStep())
	assert.False(t, w.CanAdvance())
	assert.Equal(t, []FieldKey{keyTitle}, w.View().Missing)

	require.NoError(t, w.Dispatch(ctx, SetField{Key: keyTitle, Value: String("   ")}))
	require.NoError(t, w.Dispatch(ctx, Advance{}))
	assert.Equal(t, 1, w.CurrentStep(), "whitespace is not presence")

	require.NoError(t, w.Dispatch(ctx, SetField{Key: keyTitle, Value: String("Engineer")}))
	assert.True(t, w.CanAdvance())
	require.NoError(t, w.Dispatch(ctx, Advance{}))
	assert.Equal(t, 2, w.CurrentStep())

	require.NoError(t, w.Dispatch(ctx, Advance{}))
	assert.Equal(t, 2, w.CurrentStep(), "empty list blocks")

	require.NoError(t, w.Dispatch(ctx, Retreat{}))
	assert.Equal(t, 1, w.CurrentStep())
}

func TestStoreRejectsUnknownAndMismatchedFields(t *testing.T) {
	ctx := context.Background()
	w := newTestWizard(t)

	err := w.Dispatch(ctx, SetField{Key: "nope", Value: String("x")})
	assert.ErrorIs(t, err, ErrUnknownField)

	err = w.Dispatch(ctx, SetField{Key: keyTitle, Value: Bool(true)})
	assert.ErrorIs(t, err, ErrFieldKind)

	err = w.Dispatch(ctx, AddItem{Key: keyTitle, Item: "x"})
	assert.ErrorIs(t, err, ErrFieldKind)
}

func TestListItemsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	w := newTestWizard(t)

	require.NoError(t, w.Dispatch(ctx, AddItem{Key: keyTags, Item: "React"}))
	require.NoError(t, w.Dispatch(ctx, AddItem{Key: keyTags, Item: "React"}))
	require.NoError(t, w.Dispatch(ctx, AddItem{Key: keyTags, Item: "  "}))
	assert.Equal(t, []string{"React"}, w.Store().List(keyTags))

	require.NoError(t, w.Dispatch(ctx, RemoveItem{Key: keyTags, Item: "Go"}))
	assert.Equal(t, []string{"React"}, w.Store().List(keyTags))

	require.NoError(t, w.Dispatch(ctx, RemoveItem{Key: keyTags, Item: "React"}))
	assert.Empty(t, w.Store().List(keyTags))

	require.NoError(t, w.Dispatch(ctx, AddItem{Key: keyTags, Item: " Vue "}))
	assert.Equal(t, []string{"Vue"}, w.Store().List(keyTags))
	require.NoError(t, w.Dispatch(ctx, RemoveItem{Key: keyTags, Item: " Vue "}))
	assert.Empty(t, w.Store().List(keyTags))
}

func TestRecordsKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	w := newTestWizard(t)

	for _, company := range []string{"Acme", "Globex", "Initech"} {
		require.NoError(t, w.Dispatch(ctx, AppendRecord{Key: keyJobs, Record: Record{"company": company}}))
	}
	require.NoError(t, w.Dispatch(ctx, RemoveRecord{Key: keyJobs, Index: 1}))
	require.NoError(t, w.Dispatch(ctx, RemoveRecord{Key: keyJobs, Index: 7}))

	records := w.Store().Records(keyJobs)
	require.Len(t, records, 2)
	assert.Equal(t, "Acme", records[0]["company"])
	assert.Equal(t, "Initech", records[1]["company"])
}

func TestStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	w := newTestWizard(t)
	require.NoError(t, w.Dispatch(ctx, AddItem{Key: keyTags, Item: "a"}))

	list := w.Store().List(keyTags)
	list[0] = "mutated"
	assert.Equal(t, []string{"a"}, w.Store().List(keyTags))
}

func TestSubmitOnlyFromTerminalStep(t *testing.T) {
	ctx := context.Background()
	sub := &recordingSubmitter{}
	w := newTestWizard(t, WithSubmitter(sub))
	fill(t, w)

	err := w.Dispatch(ctx, Submit{})
	assert.ErrorIs(t, err, ErrNotTerminalStep)
	assert.Zero(t, sub.calls)
	assert.False(t, w.CanSubmit())

	require.NoError(t, w.Dispatch(ctx, JumpTo{Step: 3}))
	assert.True(t, w.CanSubmit())
	require.NoError(t, w.Dispatch(ctx, Submit{}))
	assert.Equal(t, 1, sub.calls)
	assert.True(t, w.Submitted())

	view := w.View()
	require.NotNil(t, view.Result)
	assert.Equal(t, "42", view.Result.ID)

	assert.ErrorIs(t, w.Dispatch(ctx, Advance{}), ErrAlreadySubmitted)
}

func TestSubmitChecksSkippedSteps(t *testing.T) {
	ctx := context.Background()
	sub := &recordingSubmitter{}
	w := newTestWizard(t, WithSubmitter(sub))

	require.NoError(t, w.Dispatch(ctx, SetField{Key: keyAgreed, Value: Bool(true)}))
	require.NoError(t, w.Dispatch(ctx, JumpTo{Step: 3}))

	err := w.Dispatch(ctx, Submit{})
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Zero(t, sub.calls)
	assert.Equal(t, 3, w.CurrentStep())
}

func TestSubmitRequiresAuthentication(t *testing.T) {
	ctx := context.Background()
	def := testDefinition()
	def.RequiresAuth = true
	sub := &recordingSubmitter{}

	w, err := New(def, WithSubmitter(sub), WithAuthenticator(fakeAuth(false)))
	require.NoError(t, err)
	fill(t, w)
	require.NoError(t, w.Dispatch(ctx, JumpTo{Step: 3}))

	err = w.Dispatch(ctx, Submit{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, ErrUnauthenticated.Error(), w.Banner())
	assert.Zero(t, sub.calls)
}

func TestSubmitFailureSetsBannerWithoutRetry(t *testing.T) {
	ctx := context.Background()
	sub := &recordingSubmitter{err: errors.New("upstream down")}
	w := newTestWizard(t, WithSubmitter(sub))
	fill(t, w)
	require.NoError(t, w.Dispatch(ctx, JumpTo{Step: 3}))

	err := w.Dispatch(ctx, Submit{})
	require.Error(t, err)
	assert.Equal(t, 1, sub.calls)
	assert.False(t, w.Submitted())
	assert.Contains(t, w.Banner(), "upstream down")
	assert.Equal(t, 3, w.CurrentStep())

	require.NoError(t, w.Dispatch(ctx, Retreat{}))
	assert.Empty(t, w.Banner())
}

func TestCheckBlocksSubmission(t *testing.T) {
	ctx := context.Background()
	def := testDefinition()
	def.Check = func(*Store) error { return errors.New("passwords do not match") }
	sub := &recordingSubmitter{}

	w, err := New(def, WithSubmitter(sub))
	require.NoError(t, err)
	fill(t, w)
	require.NoError(t, w.Dispatch(ctx, JumpTo{Step: 3}))

	assert.Error(t, w.Dispatch(ctx, Submit{}))
	assert.Equal(t, "passwords do not match", w.Banner())
	assert.Equal(t, 3, w.CurrentStep())
	assert.Zero(t, sub.calls)
}

func TestDefinitionValidate(t *testing.T) {
	def := testDefinition()
	def.Steps[1].ID = 5
	_, err := New(def)
	assert.ErrorIs(t, err, ErrInvalidDefinition)

	def = testDefinition()
	def.Steps[0].RequiredFields = []FieldKey{"ghost"}
	_, err = New(def)
	assert.ErrorIs(t, err, ErrInvalidDefinition)

	def = testDefinition()
	def.Steps = nil
	_, err = New(def)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestDecode(t *testing.T) {
	v, err := Decode(KindList, []byte(`["Go","SQL"]`))
	require.NoError(t, err)
	assert.Equal(t, List{"Go", "SQL"}, v)

	v, err = Decode(KindRecords, []byte(`[{"company":"Acme"}]`))
	require.NoError(t, err)
	assert.Equal(t, Records{{"company": "Acme"}}, v)

	_, err = Decode(KindBool, []byte(`"yes"`))
	assert.ErrorIs(t, err, ErrFieldKind)
}
