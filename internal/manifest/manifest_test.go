package manifest

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UILens-hq/uilens/pkg/model"
)

func TestBuildAndEncode(t *testing.T) {
	attr := "disabled"
	components := []model.ComponentModel{
		{
			ClassName: "Button",
			TagName:   "mdc-button",
			TagTier:   model.TierRegistrationFile,
			Properties: []model.PropertyDescriptor{
				{Name: "disabled", Type: model.TypeBoolean, Attribute: &attr, Visibility: model.VisibilityPublic},
			},
			Events: []model.EventDescriptor{
				{Name: "click-through", HandlerName: "onClickThrough"},
			},
		},
	}

	m := Build(components, t.TempDir())
	assert.Equal(t, SchemaVersion, m.SchemaVersion)
	assert.False(t, m.GeneratedAt.IsZero())
	assert.Empty(t, m.Commit, "a bare directory has no commit to stamp")

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))

	var decoded Manifest
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Components, 1)
	assert.Equal(t, "mdc-button", decoded.Components[0].TagName)
	require.Len(t, decoded.Components[0].Properties, 1)
	require.NotNil(t, decoded.Components[0].Properties[0].Attribute)
	assert.Equal(t, "disabled", *decoded.Components[0].Properties[0].Attribute)
}

func TestBuildEmptyComponents(t *testing.T) {
	m := Build(nil, t.TempDir())
	require.NotNil(t, m.Components)
	assert.Empty(t, m.Components)

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))
	assert.Contains(t, buf.String(), `"components": []`)
}

func TestHeadSHAOutsideRepository(t *testing.T) {
	_, ok := HeadSHA(t.TempDir())
	assert.False(t, ok)
}
