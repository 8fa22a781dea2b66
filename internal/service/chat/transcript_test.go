package chat

import (
	"testing"

	"github.com/sandevgo/groundchat/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript_AppendOnlyOrder(t *testing.T) {
	tr := NewTranscript()
	tr.Append(core.Message{Role: core.RoleUser, Content: "one"})
	tr.Append(core.Message{Role: core.RoleAssistant, Content: "two"})

	got := tr.Messages()
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].Content)
	assert.Equal(t, "two", got[1].Content)
}

func TestTranscript_SnapshotIsACopy(t *testing.T) {
	tr := NewTranscript()
	tr.Append(core.Message{Role: core.RoleUser, Content: "original"})

	snapshot := tr.Messages()
	snapshot[0].Content = "tampered"

	assert.Equal(t, "original", tr.Messages()[0].Content)
}
