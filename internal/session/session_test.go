package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInOutNotifiesSubscribers(t *testing.T) {
	s := New()
	var seen []State
	sub := s.Subscribe(func(st State) { seen = append(seen, st) })

	s.SignIn("tok", "u1")
	s.SignIn("tok", "u1")
	s.SignOut()
	s.SignOut()

	require.Len(t, seen, 2)
	assert.Equal(t, State{Authenticated: true, UserID: "u1"}, seen[0])
	assert.Equal(t, State{}, seen[1])

	s.Unsubscribe(sub)
	s.SignIn("other", "u2")
	assert.Len(t, seen, 2)
}

func TestTokenSource(t *testing.T) {
	s := New()
	_, err := s.Token()
	assert.ErrorIs(t, err, ErrNoToken)
	assert.False(t, s.Authenticated())

	s.SignIn("abc", "")
	tok, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.Type())
}

func TestContextRoundTrip(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	s := New()
	got, ok := FromContext(NewContext(context.Background(), s))
	require.True(t, ok)
	assert.Same(t, s, got)
}
