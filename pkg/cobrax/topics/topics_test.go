package topics

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicsFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/help/apply.txt":         "How apply creates links",
		"/help/rules.md":          "# Rules\n\nRule file formats",
		"/help/option-target.txt": "The --target flag",
		"/help/legacy.txxt":       "Old format",
		"/help/ignore.json":       "{}",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	return fs
}

func TestTopicManager_Scan(t *testing.T) {
	fs := topicsFs(t)

	t.Run("default extensions", func(t *testing.T) {
		tm := New(fs, "/help", Options{})
		require.NoError(t, tm.Scan())

		tests := []struct {
			name    string
			exists  bool
			content string
		}{
			{"apply", true, "How apply creates links"},
			{"rules", true, "# Rules\n\nRule file formats"},
			{"legacy", false, ""},
			{"ignore", false, ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, ok := tm.GetTopic(tt.name)
				assert.Equal(t, tt.exists, ok)
				if ok {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := New(fs, "/help", Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.Scan())

		assert.Equal(t, []string{"legacy"}, tm.ListTopics())
	})

	t.Run("missing directory", func(t *testing.T) {
		tm := New(fs, "/nowhere", Options{})
		require.NoError(t, tm.Scan())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopicOptionNames(t *testing.T) {
	tm := New(topicsFs(t), "/help", Options{})
	require.NoError(t, tm.Scan())

	for _, name := range []string{"--target", "-target", "target", "option-target"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-target", topic.Name)
	}
}

func TestTopicManager_WriteIndex(t *testing.T) {
	tm := New(topicsFs(t), "/help", Options{})
	require.NoError(t, tm.Scan())

	var buf bytes.Buffer
	tm.WriteIndex(&buf, "linkmirror")

	out := buf.String()
	assert.Contains(t, out, "General topics:\n  apply\n  rules\n")
	assert.Contains(t, out, "Option topics:\n  --target\n")
	assert.Contains(t, out, "Use 'linkmirror help <topic>'")
}

func TestTopicManager_WriteIndexEmpty(t *testing.T) {
	tm := New(afero.NewMemMapFs(), "/help", Options{})

	var buf bytes.Buffer
	tm.WriteIndex(&buf, "linkmirror")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

type upperRenderer struct{ seen string }

func (r *upperRenderer) Render(content string, ext string) string {
	r.seen = ext
	return "rendered:" + content
}

func TestInitialize_HelpCommand(t *testing.T) {
	root := &cobra.Command{Use: "linkmirror"}
	root.AddCommand(&cobra.Command{Use: "status", Short: "Show pairs", Run: func(*cobra.Command, []string) {}})

	renderer := &upperRenderer{}
	tm, err := Initialize(root, topicsFs(t), "/help", Options{Renderer: renderer})
	require.NoError(t, err)
	require.NotNil(t, tm)

	run := func(args ...string) string {
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return buf.String()
	}

	t.Run("topic", func(t *testing.T) {
		out := run("help", "rules")
		assert.Equal(t, "rendered:# Rules\n\nRule file formats", out)
		assert.Equal(t, ".md", renderer.seen)
	})

	t.Run("topic index", func(t *testing.T) {
		assert.Contains(t, run("help", "topics"), "Available help topics:")
	})

	t.Run("command help", func(t *testing.T) {
		assert.Contains(t, run("help", "status"), "Show pairs")
	})

	t.Run("single help command", func(t *testing.T) {
		count := 0
		for _, c := range root.Commands() {
			if c.Name() == "help" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRenderer_NonMarkdownUnchanged(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}
