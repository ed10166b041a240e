package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

func TestParse_EmptyDocument(t *testing.T) {
	for _, doc := range []string{"", "   ", "[]"} {
		shapes, err := Parse(doc)
		require.NoError(t, err, "doc=%q", doc)
		assert.Empty(t, shapes)
	}
}

func TestParse_SingleShape(t *testing.T) {
	doc := `[{"id":"s1","x":50,"y":50,"width":100,"height":50,"fill":"gray","name":"Desk 1","rotation":0}]`

	shapes, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, shapes, 1)

	assert.Equal(t, domain.DeskShape{
		ID:     "s1",
		X:      50,
		Y:      50,
		Width:  100,
		Height: 50,
		Fill:   "gray",
		Name:   "Desk 1",
	}, shapes[0])
}

func TestParse_RotationNormalized(t *testing.T) {
	doc := `[{"id":"s1","x":0,"y":0,"width":10,"height":10,"rotation":450}]`

	shapes, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, 90.0, shapes[0].Rotation)
}

func TestParse_DeskIDOptional(t *testing.T) {
	doc := `[{"id":"s1","x":0,"y":0,"width":10,"height":10,"rotation":0,"desk_id":"desk-7"}]`

	shapes, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "desk-7", shapes[0].DeskID)
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":        `{`,
		"not an array":    `{"id":"s1"}`,
		"missing id":      `[{"x":0,"y":0,"width":10,"height":10,"rotation":0}]`,
		"empty id":        `[{"id":"","x":0,"y":0,"width":10,"height":10,"rotation":0}]`,
		"missing x":       `[{"id":"s1","y":0,"width":10,"height":10,"rotation":0}]`,
		"missing width":   `[{"id":"s1","x":0,"y":0,"height":10,"rotation":0}]`,
		"zero width":      `[{"id":"s1","x":0,"y":0,"width":0,"height":10,"rotation":0}]`,
		"negative height": `[{"id":"s1","x":0,"y":0,"width":10,"height":-5,"rotation":0}]`,
		"duplicate id":    `[{"id":"s1","x":0,"y":0,"width":10,"height":10,"rotation":0},{"id":"s1","x":1,"y":1,"width":10,"height":10,"rotation":0}]`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(doc)
			assert.ErrorIs(t, err, ErrMalformedLayout)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	shapes := []domain.DeskShape{
		{ID: "s1", X: 50, Y: 50, Width: 100, Height: 50, Fill: "gray", Name: "Desk 1", Rotation: 0},
		{ID: "s2", X: 200, Y: 80.5, Width: 120, Height: 60, Fill: "blue", Name: "Desk 2", Rotation: 45, DeskID: "desk-2"},
	}

	doc, err := Serialize(shapes)
	require.NoError(t, err)

	parsed, err := Parse(doc)
	require.NoError(t, err)

	// Parse(Serialize(shapes)) == shapes, включая порядок
	assert.Equal(t, shapes, parsed)
}

func TestSerialize_RejectsInvalidShape(t *testing.T) {
	_, err := Serialize([]domain.DeskShape{{ID: "", Width: 10, Height: 10}})
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = Serialize([]domain.DeskShape{{ID: "s1", Width: 0, Height: 10}})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestSerialize_Empty(t *testing.T) {
	doc, err := Serialize(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", doc)
}
