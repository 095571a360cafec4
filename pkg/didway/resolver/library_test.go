package resolver

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubResolver is a configurable DID/VC resolver for policy tests.
type stubResolver struct {
	acceptTarget string // target confirmed by checks
	getValue     string
	getErr       error
	setErr       error
	delay        time.Duration

	mu   sync.Mutex
	sets []string // targets written, in call order
}

func (s *stubResolver) wait() {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}

func (s *stubResolver) CheckDID(_ context.Context, did, _ string) error {
	s.wait()
	if did == s.acceptTarget {
		return nil
	}
	return errors.New("not responsible for this did")
}

func (s *stubResolver) GetDIDDocument(_ context.Context, _ string) (string, error) {
	s.wait()
	return s.getValue, s.getErr
}

func (s *stubResolver) SetDIDDocument(_ context.Context, did, _ string) error {
	s.wait()
	if s.setErr != nil {
		return s.setErr
	}
	s.mu.Lock()
	s.sets = append(s.sets, did)
	s.mu.Unlock()
	return nil
}

func (s *stubResolver) CheckVC(_ context.Context, vcID, _ string) error {
	s.wait()
	if vcID == s.acceptTarget {
		return nil
	}
	return errors.New("not responsible for this vc")
}

func (s *stubResolver) GetVCDocument(ctx context.Context, vcID string) (string, error) {
	return s.GetDIDDocument(ctx, vcID)
}

func (s *stubResolver) SetVCDocument(ctx context.Context, vcID, value string) error {
	return s.SetDIDDocument(ctx, vcID, value)
}

func TestGetDIDDocumentFirstSuccessWins(t *testing.T) {
	failing := &stubResolver{getErr: errors.New("offline")}
	working := &stubResolver{getValue: `{"id":"did:example:123"}`}

	// Either registration order returns the succeeding resolver's value.
	for _, order := range [][]*stubResolver{{failing, working}, {working, failing}} {
		lib := NewLibrary()
		for _, r := range order {
			lib.RegisterDIDResolver(r)
		}

		doc, err := lib.GetDIDDocument(context.Background(), "did:example:123")
		require.NoError(t, err)
		assert.Equal(t, `{"id":"did:example:123"}`, doc)
	}
}

func TestGetDIDDocumentAllFail(t *testing.T) {
	lib := NewLibrary()
	lib.RegisterDIDResolver(&stubResolver{getErr: errors.New("offline")})
	lib.RegisterDIDResolver(&stubResolver{getErr: errors.New("timeout")})

	_, err := lib.GetDIDDocument(context.Background(), "did:example:123")
	assert.ErrorIs(t, err, ErrGetDIDDocument, "per-resolver detail is discarded")
}

func TestGetDIDDocumentNoResolvers(t *testing.T) {
	lib := NewLibrary()

	_, err := lib.GetDIDDocument(context.Background(), "did:example:123")
	assert.ErrorIs(t, err, ErrGetDIDDocument)
}

func TestGetVCDocument(t *testing.T) {
	lib := NewLibrary()
	lib.RegisterVCResolver(&stubResolver{getValue: `{"vc":true}`})

	doc, err := lib.GetVCDocument(context.Background(), "vc:example:1")
	require.NoError(t, err)
	assert.Equal(t, `{"vc":true}`, doc)

	lib = NewLibrary()
	lib.RegisterVCResolver(&stubResolver{getErr: errors.New("offline")})
	_, err = lib.GetVCDocument(context.Background(), "vc:example:1")
	assert.ErrorIs(t, err, ErrGetVCDocument)
}

func TestSetDIDDocumentAllOrNothing(t *testing.T) {
	first := &stubResolver{}
	second := &stubResolver{setErr: errors.New("disk full"), delay: 5 * time.Millisecond}

	lib := NewLibrary()
	lib.RegisterDIDResolver(first)
	lib.RegisterDIDResolver(second)

	err := lib.SetDIDDocument(context.Background(), "did:example:123", "{}")
	assert.ErrorIs(t, err, ErrSetDIDDocument)

	// The write the first resolver committed is not rolled back.
	assert.Equal(t, []string{"did:example:123"}, first.sets)
}

func TestSetDIDDocumentAllSucceed(t *testing.T) {
	first := &stubResolver{}
	second := &stubResolver{}

	lib := NewLibrary()
	lib.RegisterDIDResolver(first)
	lib.RegisterDIDResolver(second)

	require.NoError(t, lib.SetDIDDocument(context.Background(), "did:example:123", "{}"))
	assert.Len(t, first.sets, 1)
	assert.Len(t, second.sets, 1)
}

func TestSetDIDDocumentNoResolvers(t *testing.T) {
	lib := NewLibrary()
	assert.NoError(t, lib.SetDIDDocument(context.Background(), "did:example:123", "{}"))
}

func TestSetVCDocument(t *testing.T) {
	lib := NewLibrary()
	lib.RegisterVCResolver(&stubResolver{setErr: errors.New("disk full")})

	err := lib.SetVCDocument(context.Background(), "vc:example:1", "{}")
	assert.ErrorIs(t, err, ErrSetVCDocument)
}

func TestCheckDIDAnyConfirms(t *testing.T) {
	lib := NewLibrary()
	lib.RegisterDIDResolver(&stubResolver{acceptTarget: "test"})

	assert.NoError(t, lib.CheckDID(context.Background(), "test", "{}"))
	assert.ErrorIs(t, lib.CheckDID(context.Background(), "other", "{}"), ErrDIDNotValid)
}

func TestCheckDIDOneConfirmerSuffices(t *testing.T) {
	lib := NewLibrary()
	lib.RegisterDIDResolver(&stubResolver{acceptTarget: "nothing"})
	lib.RegisterDIDResolver(&stubResolver{acceptTarget: "test", delay: 5 * time.Millisecond})

	assert.NoError(t, lib.CheckDID(context.Background(), "test", "{}"))
}

func TestCheckVC(t *testing.T) {
	lib := NewLibrary()
	lib.RegisterVCResolver(&stubResolver{acceptTarget: "test"})

	assert.NoError(t, lib.CheckVC(context.Background(), "test", "{}"))
	assert.ErrorIs(t, lib.CheckVC(context.Background(), "other", "{}"), ErrVCNotValid)
}

func TestCheckNoResolvers(t *testing.T) {
	lib := NewLibrary()
	assert.ErrorIs(t, lib.CheckDID(context.Background(), "test", "{}"), ErrDIDNotValid)
	assert.ErrorIs(t, lib.CheckVC(context.Background(), "test", "{}"), ErrVCNotValid)
}

// recordingLogger captures fan-out log calls.
type recordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *recordingLogger) Log(message, level string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, level+":"+message)
}

func TestLoggerFanOut(t *testing.T) {
	first := &recordingLogger{}
	second := &recordingLogger{}

	lib := NewLibrary()
	lib.RegisterLogger(first)
	lib.RegisterLogger(second)

	lib.Log("hello", "debug")
	lib.Log("world", "")

	assert.Equal(t, []string{"debug:hello", ":world"}, first.entries)
	assert.Equal(t, []string{"debug:hello", ":world"}, second.entries)
}

func TestRegisterNilEntries(t *testing.T) {
	lib := NewLibrary()
	lib.RegisterDIDResolver(nil)
	lib.RegisterVCResolver(nil)
	lib.RegisterLogger(nil)

	// Nothing registered: gets fail generically, sets succeed vacuously.
	_, err := lib.GetDIDDocument(context.Background(), "did:example:123")
	assert.ErrorIs(t, err, ErrGetDIDDocument)
	assert.NoError(t, lib.SetDIDDocument(context.Background(), "did:example:123", "{}"))
}
