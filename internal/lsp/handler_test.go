package lsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"calculi/internal/lsp"
)

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	h := lsp.NewHandler()
	result, err := h.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)
	require.NotNil(t, result)

	init, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	require.NotNil(t, init.Capabilities.TextDocumentSync)
	require.NotNil(t, init.Capabilities.CompletionProvider)
}

func TestInitializedAndShutdownDoNotError(t *testing.T) {
	h := lsp.NewHandler()
	require.NoError(t, h.Initialized(&glsp.Context{}, &protocol.InitializedParams{}))
	require.NoError(t, h.Shutdown(&glsp.Context{}))
}

func TestTextDocumentCompletionReturnsEmptyList(t *testing.T) {
	h := lsp.NewHandler()
	result, err := h.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)
	require.Empty(t, list.Items)
}
