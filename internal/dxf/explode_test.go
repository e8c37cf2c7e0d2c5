package dxf

import (
	"testing"

	"dxf-scene-importer/internal/palette"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplodeByBlockColorOverride(t *testing.T) {
	// Block B: one ByBlock line, one explicitly colored line. The insert's
	// color replaces only the ByBlock one.
	scene := Parse(doc(
		"0", "SECTION",
		"2", "BLOCKS",
		"0", "BLOCK",
		"2", "B",
		"0", "LINE",
		"62", "0", // ByBlock
		"10", "0", "20", "0", "11", "1", "21", "0",
		"0", "LINE",
		"62", "1", // explicit red
		"10", "0", "20", "1", "11", "1", "21", "1",
		"0", "ENDBLK",
		"0", "ENDSEC",
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "INSERT",
		"2", "B",
		"62", "3",
		"10", "0", "20", "0",
		"0", "ENDSEC",
	))

	require.Len(t, scene.Lines, 2)
	var got []palette.RGB
	for _, l := range scene.Lines {
		got = append(got, l.Color)
		assert.False(t, l.ColorByBlock)
	}
	assert.ElementsMatch(t, []palette.RGB{palette.ByIndex(3), palette.ByIndex(1)}, got)
}

func TestExplodeNestedByBlockChain(t *testing.T) {
	// B's content is ByBlock; A inserts B with a ByBlock insert; the
	// outermost insert's concrete color wins.
	scene := Parse(doc(
		"0", "SECTION",
		"2", "BLOCKS",
		"0", "BLOCK",
		"2", "B",
		"0", "LINE",
		"62", "0",
		"10", "0", "20", "0", "11", "1", "21", "0",
		"0", "ENDBLK",
		"0", "BLOCK",
		"2", "A",
		"0", "INSERT",
		"2", "B",
		"62", "0",
		"10", "0", "20", "0",
		"0", "ENDBLK",
		"0", "ENDSEC",
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "INSERT",
		"2", "A",
		"62", "5",
		"10", "0", "20", "0",
		"0", "ENDSEC",
	))

	require.Len(t, scene.Lines, 1)
	assert.Equal(t, palette.ByIndex(5), scene.Lines[0].Color)
	assert.False(t, scene.Lines[0].ColorByBlock)
}

func TestExplodeTransform(t *testing.T) {
	// Scale 2, rotate 90° CCW, translate by (10, 5).
	scene := Parse(doc(
		"0", "SECTION",
		"2", "BLOCKS",
		"0", "BLOCK",
		"2", "SEG",
		"0", "LINE",
		"10", "1", "20", "0", "11", "2", "21", "0",
		"0", "ENDBLK",
		"0", "ENDSEC",
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "INSERT",
		"2", "SEG",
		"10", "10", "20", "5",
		"41", "2", "42", "2", "43", "2",
		"50", "90",
		"0", "ENDSEC",
	))

	require.Len(t, scene.Lines, 1)
	l := scene.Lines[0]
	// (1,0) → scale (2,0) → rotate (0,2) → translate (10,7)
	assert.InDelta(t, 10, l.Start.X, 1e-9)
	assert.InDelta(t, 7, l.Start.Y, 1e-9)
	// (2,0) → (4,0) → (0,4) → (10,9)
	assert.InDelta(t, 10, l.End.X, 1e-9)
	assert.InDelta(t, 9, l.End.Y, 1e-9)
}

func TestExplodeNestedTransformComposes(t *testing.T) {
	// OUTER places INNER at (10,0); INNER places a point at (1,0).
	scene := Parse(doc(
		"0", "SECTION",
		"2", "BLOCKS",
		"0", "BLOCK",
		"2", "INNER",
		"0", "POINT",
		"10", "1", "20", "0",
		"0", "ENDBLK",
		"0", "BLOCK",
		"2", "OUTER",
		"0", "INSERT",
		"2", "INNER",
		"10", "10", "20", "0",
		"0", "ENDBLK",
		"0", "ENDSEC",
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "INSERT",
		"2", "OUTER",
		"10", "100", "20", "0",
		"0", "ENDSEC",
	))

	require.Len(t, scene.Points, 1)
	assert.InDelta(t, 111, scene.Points[0].At.X, 1e-9)
	assert.InDelta(t, 0, scene.Points[0].At.Y, 1e-9)
}

func TestExplodeMissingBlockDroppedSilently(t *testing.T) {
	scene := Parse(doc(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "INSERT",
		"2", "NOWHERE",
		"10", "0", "20", "0",
		"0", "POINT",
		"10", "1", "20", "1",
		"0", "ENDSEC",
	))
	// Sibling survives; the dangling insert contributes nothing.
	assert.Len(t, scene.Points, 1)
	assert.Zero(t, len(scene.Lines)+len(scene.Polylines))
}

func TestExplodeSelfReferentialBlockTruncates(t *testing.T) {
	scene := Parse(doc(
		"0", "SECTION",
		"2", "BLOCKS",
		"0", "BLOCK",
		"2", "LOOP",
		"0", "INSERT",
		"2", "LOOP",
		"10", "1", "20", "0",
		"0", "ENDBLK",
		"0", "ENDSEC",
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "INSERT",
		"2", "LOOP",
		"10", "0", "20", "0",
		"0", "ENDSEC",
	))
	// The branch bottoms out at the depth ceiling instead of recursing
	// forever; nothing concrete ever materializes.
	assert.Zero(t, scene.EntityCount())
}

func TestExplodeDepthCeiling(t *testing.T) {
	ents := []Entity{Insert{BlockName: "B", ScaleX: 1, ScaleY: 1, ScaleZ: 1}}
	blocks := map[string][]Entity{
		"B": {Insert{BlockName: "B", ScaleX: 1, ScaleY: 1, ScaleZ: 1}},
	}
	assert.Empty(t, explode(ents, blocks, 0))
}

func TestExplodeBlockNameCaseInsensitive(t *testing.T) {
	scene := Parse(doc(
		"0", "SECTION",
		"2", "BLOCKS",
		"0", "BLOCK",
		"2", "Widget",
		"0", "POINT",
		"10", "1", "20", "1",
		"0", "ENDBLK",
		"0", "ENDSEC",
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "INSERT",
		"2", "WIDGET",
		"10", "0", "20", "0",
		"0", "ENDSEC",
	))
	assert.Len(t, scene.Points, 1)
}

func TestBlockRedeclarationLastWins(t *testing.T) {
	scene := Parse(doc(
		"0", "SECTION",
		"2", "BLOCKS",
		"0", "BLOCK",
		"2", "B",
		"0", "POINT",
		"10", "1", "20", "1",
		"0", "ENDBLK",
		"0", "BLOCK",
		"2", "B",
		"0", "POINT",
		"10", "9", "20", "9",
		"0", "POINT",
		"10", "8", "20", "8",
		"0", "ENDBLK",
		"0", "ENDSEC",
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "INSERT",
		"2", "B",
		"10", "0", "20", "0",
		"0", "ENDSEC",
	))
	require.Len(t, scene.Points, 2)
	assert.Equal(t, Vertex{9, 9, 0}, scene.Points[0].At)
}

func TestSceneNeverContainsByBlockColors(t *testing.T) {
	// A top-level ByBlock entity has no enclosing insert; its placeholder
	// layer color is already final once the scene is assembled.
	scene := Parse(doc(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "LINE",
		"62", "0",
		"10", "0", "20", "0", "11", "1", "21", "1",
		"0", "ENDSEC",
	))
	require.Len(t, scene.Lines, 1)
	assert.Equal(t, palette.Default, scene.Lines[0].Color)
}
