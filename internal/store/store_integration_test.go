package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UILens-hq/uilens/internal/testutil"
	"github.com/UILens-hq/uilens/pkg/model"
)

func sampleModel(class, tag string) *model.ComponentModel {
	attr := "disabled"
	return &model.ComponentModel{
		ClassName:       class,
		TagName:         tag,
		TagTier:         model.TierRegistrationFile,
		DiscoveryMethod: "exported-default",
		Properties: []model.PropertyDescriptor{
			{Name: "disabled", Type: model.TypeBoolean, Attribute: &attr, Visibility: model.VisibilityPublic},
		},
		Events:   []model.EventDescriptor{},
		FilePath: "/src/" + tag + ".component.ts",
	}
}

func TestSaveAndGetComponent(t *testing.T) {
	st := testutil.RequireStore(t)
	ctx := context.Background()

	rec, err := st.SaveComponent(ctx, sampleModel("Button", "mdc-button"))
	require.NoError(t, err)
	assert.Equal(t, "Button", rec.ClassName)
	assert.Equal(t, "mdc-button", rec.TagName)

	got, err := st.GetByTag(ctx, "mdc-button")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.JSONEq(t, string(rec.ModelData), string(got.ModelData))
}

func TestGetByTagNotFound(t *testing.T) {
	st := testutil.RequireStore(t)

	_, err := st.GetByTag(context.Background(), "mdc-missing")
	assert.Error(t, err)
}

func TestListComponents(t *testing.T) {
	st := testutil.RequireStore(t)
	ctx := context.Background()

	_, err := st.SaveComponent(ctx, sampleModel("Chip", "mdc-chip"))
	require.NoError(t, err)
	_, err = st.SaveComponent(ctx, sampleModel("Badge", "mdc-badge"))
	require.NoError(t, err)

	records, err := st.ListComponents(ctx, 10)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(records), 2)
}
