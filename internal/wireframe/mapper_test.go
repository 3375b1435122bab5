package wireframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptwire/agent/internal/intent"
)

func TestMap_OneComponentPerIntent(t *testing.T) {
	intents := []intent.Intent{
		{Type: intent.TypeDashboard, Confidence: 1.0},
		{Type: intent.TypeNavbar, Confidence: 1.0},
		{Type: intent.TypeTable, Confidence: 1.0},
	}
	components, err := Map(intents)
	require.NoError(t, err)
	require.Len(t, components, 3)

	assert.Equal(t, "dashboard-1", components[0].ID)
	assert.Equal(t, "navbar-1", components[1].ID)
	assert.Equal(t, "table-1", components[2].ID)
	for i, c := range components {
		assert.Equal(t, string(intents[i].Type), c.Type, "component %d", i)
	}
}

func TestMap_RepeatedTypesGetDistinctIDs(t *testing.T) {
	intents := []intent.Intent{
		{Type: intent.TypeButton},
		{Type: intent.TypeForm},
		{Type: intent.TypeButton},
		{Type: intent.TypeButton},
	}
	components, err := Map(intents)
	require.NoError(t, err)
	require.Len(t, components, 4)

	assert.Equal(t, "button-1", components[0].ID)
	assert.Equal(t, "form-1", components[1].ID)
	assert.Equal(t, "button-2", components[2].ID)
	assert.Equal(t, "button-3", components[3].ID)

	seen := map[string]bool{}
	for _, c := range components {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestMap_TemplateProps(t *testing.T) {
	components, err := Map([]intent.Intent{{Type: intent.TypeButton}})
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, "Submit", components[0].Props["label"])
	assert.Equal(t, "primary", components[0].Props["variant"])
}

func TestMap_ValueCarriedIntoProps(t *testing.T) {
	components, err := Map([]intent.Intent{
		{Type: intent.TypeButton, Value: "Save changes"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Save changes", components[0].Props["value"])
}

func TestMap_UnknownIntentKept(t *testing.T) {
	components, err := Map([]intent.Intent{
		{Type: intent.TypeUnknown, Confidence: 0.1},
	})
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, "unknown-1", components[0].ID)
	assert.Empty(t, components[0].Props)
}

func TestMap_MissingType(t *testing.T) {
	_, err := Map([]intent.Intent{
		{Type: intent.TypeButton},
		{Type: ""},
	})
	require.Error(t, err)
	var invalid *InvalidIntentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 1, invalid.Index)
}

func TestMap_UnrecognizedType(t *testing.T) {
	_, err := Map([]intent.Intent{{Type: "carousel"}})
	var invalid *InvalidIntentError
	require.ErrorAs(t, err, &invalid)
}

func TestMap_TemplateMutationDoesNotLeak(t *testing.T) {
	first, err := Map([]intent.Intent{{Type: intent.TypeNavbar}})
	require.NoError(t, err)
	first[0].Props["position"] = "bottom"

	second, err := Map([]intent.Intent{{Type: intent.TypeNavbar}})
	require.NoError(t, err)
	assert.Equal(t, "top", second[0].Props["position"])
}

func TestMap_Empty(t *testing.T) {
	components, err := Map(nil)
	require.NoError(t, err)
	assert.Empty(t, components)
}
