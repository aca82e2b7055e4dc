package tmx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-tmx"
)

func TestProperties(t *testing.T) {
	var p tmx.Properties
	require.Zero(t, p.Len())
	_, ok := p.Get("missing")
	require.False(t, ok)

	p.Set("Speed", "3")
	p.Set("name", "door")

	v, ok := p.Get("SPEED")
	require.True(t, ok)
	require.Equal(t, "3", v)
	require.Equal(t, "door", p.Value("Name"))
	require.Equal(t, "", p.Value("missing"))

	t.Run("Case Variants Replace", func(t *testing.T) {
		p.Set("SPEED", "5")
		require.Equal(t, 2, p.Len())
		require.Equal(t, "5", p.Value("speed"))
		require.Equal(t, map[string]string{"SPEED": "5", "name": "door"}, p.Map())
	})

	t.Run("All Sorted", func(t *testing.T) {
		require.Equal(t, []tmx.Property{
			{Name: "SPEED", Value: "5"},
			{Name: "name", Value: "door"},
		}, p.All())
	})
}

func TestPropertyBlock(t *testing.T) {
	input := `<map>
 <properties>
  <property name="Title" value="first"/>
  <property name="title" value="second"/>
  <property name="Story">line one
line two</property>
  <property name="Empty" value=""/>
  <property value="nameless"/>
 </properties>
 <properties>
  <property name="Ignored" value="x"/>
 </properties>
</map>`

	m, err := tmx.Parse([]byte(input))
	require.NoError(t, err)

	require.Equal(t, 4, m.Properties.Len())
	require.Equal(t, "second", m.Properties.Value("TITLE"))
	require.Equal(t, "line one\nline two", m.Properties.Value("Story"))

	v, ok := m.Properties.Get("Empty")
	require.True(t, ok)
	require.Equal(t, "", v)

	require.Equal(t, "nameless", m.Properties.Value(""))
	_, ok = m.Properties.Get("Ignored")
	require.False(t, ok)
}
