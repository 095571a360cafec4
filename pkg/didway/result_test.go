package didway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultConstructors(t *testing.T) {
	assert.Equal(t, StatusNotImplemented, NotImplemented().Status())
	assert.Equal(t, StatusIgnored, Ignored().Status())
	assert.Equal(t, StatusSuccess, Success("doc").Status())
	assert.Equal(t, StatusSuccess, SuccessEmpty().Status())
}

func TestResultZeroValueIsNotImplemented(t *testing.T) {
	var r Result
	assert.Equal(t, StatusNotImplemented, r.Status())
	assert.False(t, r.Artifact().Present)
}

func TestResultArtifact(t *testing.T) {
	a := Success(`{"id":"did:example:123"}`).Artifact()
	assert.True(t, a.Present)
	assert.Equal(t, `{"id":"did:example:123"}`, a.Text)

	a = SuccessEmpty().Artifact()
	assert.False(t, a.Present)
	assert.Empty(t, a.Text)

	a = Ignored().Artifact()
	assert.False(t, a.Present)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "not_implemented", StatusNotImplemented.String())
	assert.Equal(t, "ignored", StatusIgnored.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "unknown", Status(42).String())
}

func TestUnimplementedPluginDefaults(t *testing.T) {
	ctx := context.Background()
	p := UnimplementedPlugin{}

	r, err := p.DIDCreate(ctx, "did:example", "", "")
	require.NoError(t, err)
	assert.Equal(t, StatusNotImplemented, r.Status())

	r, err = p.DIDResolve(ctx, "did:example:123")
	require.NoError(t, err)
	assert.Equal(t, StatusNotImplemented, r.Status())

	r, err = p.RunCustomFunction(ctx, "did:example", "fn", "", "")
	require.NoError(t, err)
	assert.Equal(t, StatusNotImplemented, r.Status())

	r, err = p.VCZKPIssueCredential(ctx, "did:example", "", "")
	require.NoError(t, err)
	assert.Equal(t, StatusNotImplemented, r.Status())
}
