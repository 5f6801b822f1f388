package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"ranges.md":          {Data: []byte("# Ranges\n\nC0 and C1 controls")},
		"option-aliases.txt": {Data: []byte("Show the aliases column")},
		"styles.txxt":        {Data: []byte("Styles\n======")},
		"ignore.json":        {Data: []byte("{}")},
		"color.md":           {Data: []byte("Colors")},
		"option-color.md":    {Data: []byte("The --color flag")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"ranges", true, "# Ranges\n\nC0 and C1 controls"},
			{"option-aliases", true, "Show the aliases column"},
			{"styles", false, ""},
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".md", ".txxt"}})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"color", "option-color", "ranges", "styles"}, tm.ListTopics())
	})

	t.Run("nil filesystem has no topics", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopicFlagStyle(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"--aliases", "-aliases", "aliases"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-aliases", topic.Name)
	}

	topic, ok := tm.GetTopic("color")
	require.True(t, ok)
	assert.Equal(t, "color", topic.Name)

	topic, ok = tm.GetTopic("--color")
	require.True(t, ok)
	assert.Equal(t, "option-color", topic.Name)
}

func TestWriteList(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	var buf bytes.Buffer
	tm.WriteList(&buf, "rich-ascii")

	out := buf.String()
	assert.Contains(t, out, "General topics:\n  color\n  ranges\n")
	assert.Contains(t, out, "Option topics:\n  --aliases\n  --color\n")
	assert.Contains(t, out, "rich-ascii help <topic>")

	buf.Reset()
	New(nil).WriteList(&buf, "rich-ascii")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func TestHelpCommand(t *testing.T) {
	newRoot := func() (*cobra.Command, *bytes.Buffer) {
		root := &cobra.Command{Use: "rich-ascii", Run: func(*cobra.Command, []string) {}}
		root.AddCommand(&cobra.Command{Use: "version", Short: "Print version", Run: func(*cobra.Command, []string) {}})
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		_, err := InitializeWithOptions(root, testFS(), Options{})
		require.NoError(t, err)
		return root, &out
	}

	t.Run("shows topic", func(t *testing.T) {
		root, out := newRoot()
		root.SetArgs([]string{"help", "ranges"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "# Ranges\n\nC0 and C1 controls", out.String())
	})

	t.Run("lists topics", func(t *testing.T) {
		root, out := newRoot()
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Available help topics:")
	})

	t.Run("falls back to command help", func(t *testing.T) {
		root, out := newRoot()
		root.SetArgs([]string{"help", "version"})
		require.NoError(t, root.Execute())
		assert.True(t, strings.Contains(out.String(), "Print version"))
	})
}

func TestRenderers(t *testing.T) {
	plain := &PlainRenderer{}
	assert.Equal(t, "# Title", plain.Render("# Title", ".md"))

	g := &GlamourRenderer{Style: "notty", Width: 60}
	assert.Equal(t, "plain text", g.Render("plain text", ".txt"))

	rendered := g.Render("# Control Codes\n\nThe **C0** range.", ".md")
	assert.Contains(t, rendered, "Control Codes")
	assert.Contains(t, rendered, "C0")
}
